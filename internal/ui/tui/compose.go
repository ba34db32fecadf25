package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-99-FE/internal/catalog"
	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-99-FE/internal/core/domain"
	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-99-FE/internal/core/ports"
)

type postPublishedMsg struct {
	id  int64
	err error
}

const (
	fieldTitle = iota
	fieldContent
)

// Compose는 커뮤니티 글 작성 화면입니다. 제목/본문/지역/익명 여부를 모아
// ports.Community로 발행합니다. 첫 글 작성 기본값은 익명입니다.
type Compose struct {
	ctx       context.Context
	community ports.Community

	title     textinput.Model
	content   textarea.Model
	regionIdx int
	anonymous bool
	focus     int
	busy      bool
	notice    string
}

func NewCompose(ctx context.Context, community ports.Community) Compose {
	ti := textinput.New()
	ti.Placeholder = "제목"
	ti.CharLimit = 100

	ta := textarea.New()
	ta.Placeholder = "본문을 입력해 주세요."
	ta.SetHeight(6)

	return Compose{
		ctx:       ctx,
		community: community,
		title:     ti,
		content:   ta,
		anonymous: true,
	}
}

// Reset clears the form for a fresh post.
func (m Compose) Reset() (Compose, tea.Cmd) {
	m.title.Reset()
	m.content.Reset()
	m.regionIdx = 0
	m.anonymous = true
	m.focus = fieldTitle
	m.busy = false
	m.notice = ""
	m.content.Blur()
	return m, m.title.Focus()
}

func (m Compose) Update(msg tea.Msg) (Compose, tea.Cmd) {
	switch msg := msg.(type) {
	case postPublishedMsg:
		m.busy = false
		if msg.err != nil {
			m.notice = "게시글 발행에 실패했습니다: " + msg.err.Error()
			return m, nil
		}
		m.notice = fmt.Sprintf("게시글이 발행되었습니다. (번호 %d)", msg.id)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			if m.focus == fieldTitle {
				m.focus = fieldContent
				m.title.Blur()
				return m, m.content.Focus()
			}
			m.focus = fieldTitle
			m.content.Blur()
			return m, m.title.Focus()
		case "ctrl+r":
			m.regionIdx = (m.regionIdx + 1) % len(catalog.Regions)
			return m, nil
		case "ctrl+a":
			m.anonymous = !m.anonymous
			return m, nil
		case "ctrl+s":
			return m.submit()
		default:
			var cmd tea.Cmd
			if m.focus == fieldTitle {
				m.title, cmd = m.title.Update(msg)
			} else {
				m.content, cmd = m.content.Update(msg)
			}
			return m, cmd
		}
	}
	return m, nil
}

func (m Compose) submit() (Compose, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	title := strings.TrimSpace(m.title.Value())
	content := strings.TrimSpace(m.content.Value())
	if title == "" || content == "" {
		m.notice = "필수항목: 제목과 지역, 본문을 모두 입력해주세요."
		return m, nil
	}

	post := domain.NewPost{
		Title:     title,
		Content:   content,
		RegionID:  catalog.Regions[m.regionIdx].ID,
		Anonymous: m.anonymous,
	}
	m.busy = true
	m.notice = ""
	community, ctx := m.community, m.ctx
	return m, func() tea.Msg {
		id, err := community.CreatePost(ctx, post)
		return postPublishedMsg{id: id, err: err}
	}
}

func (m Compose) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("글 작성하기") + "\n\n")
	b.WriteString(m.title.View() + "\n\n")
	b.WriteString(m.content.View() + "\n\n")

	mode := "공개"
	if m.anonymous {
		mode = "익명"
	}
	b.WriteString(fmt.Sprintf("지역: %s  ·  %s\n", catalog.Regions[m.regionIdx].Name, mode))

	if m.busy {
		b.WriteString(dimStyle.Render("발행 중...") + "\n")
	}
	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice) + "\n")
	}
	b.WriteString(helpStyle.Render("\ntab 필드 이동 · ctrl+r 지역 · ctrl+a 익명 전환 · ctrl+s 발행 · esc 뒤로"))
	return b.String()
}
