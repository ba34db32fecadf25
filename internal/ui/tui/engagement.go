package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-99-FE/internal/core/domain"
	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-99-FE/internal/core/ports"
	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-99-FE/internal/engage"
)

// maskedWriter is shown instead of the author name for anonymous
// comments, even when the server leaks the real name.
const maskedWriter = "익명"

type listMsg struct{ res engage.ListResult }
type createMsg struct{ res engage.CreateResult }
type likeMsg struct{ res engage.LikeResult }
type draftLoadedMsg struct {
	key     string
	content string
}

// Engagement는 댓글 목록 + 작성 + 좋아요 화면입니다. 상태는 전적으로
// engage.Store가 소유하고, 이 모델은 순수한 투영과 의도(intent) 발행만
// 담당합니다. 네트워크는 tea.Cmd 클로저 안에서만 일어납니다.
type Engagement struct {
	ctx     context.Context
	store   *engage.Store
	storage ports.Storage

	input      textarea.Model
	spin       spinner.Model
	cursor     int
	focusInput bool
	submitBusy bool
	likeBusy   map[int64]bool
	notice     string
}

func NewEngagement(ctx context.Context, store *engage.Store, storage ports.Storage) Engagement {
	ta := textarea.New()
	ta.Placeholder = "의견을 남겨주세요."
	ta.SetHeight(3)
	ta.CharLimit = 1000

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Engagement{
		ctx:      ctx,
		store:    store,
		storage:  storage,
		input:    ta,
		spin:     sp,
		likeBusy: make(map[int64]bool),
	}
}

// Mount binds the view to a target, discarding everything tied to the
// previous one, and kicks off the list fetch. A response from the old
// target that arrives later is dropped by its generation token.
func (m Engagement) Mount(t domain.Target) (Engagement, tea.Cmd) {
	m.store.Mount(t)
	m.cursor = 0
	m.focusInput = false
	m.submitBusy = false
	m.likeBusy = make(map[int64]bool)
	m.notice = ""
	m.input.Reset()
	m.input.Blur()

	cmds := []tea.Cmd{fetchCmd(m.store.Fetch(m.ctx)), m.spin.Tick}
	if m.storage != nil {
		key := t.Key()
		storage := m.storage
		cmds = append(cmds, func() tea.Msg {
			content, _ := storage.LoadDraft(key)
			return draftLoadedMsg{key: key, content: content}
		})
	}
	return m, tea.Batch(cmds...)
}

func fetchCmd(fetch func() engage.ListResult) tea.Cmd {
	return func() tea.Msg { return listMsg{res: fetch()} }
}

// PersistDraft saves the current draft so the next run can restore it.
// Called when the view is left or the program quits.
func (m Engagement) PersistDraft() {
	if m.storage == nil {
		return
	}
	key := m.store.Target().Key()
	if draft := m.store.Draft(); strings.TrimSpace(draft) != "" {
		m.storage.SaveDraft(key, draft)
	} else {
		m.storage.ClearDraft(key)
	}
}

func (m Engagement) Update(msg tea.Msg) (Engagement, tea.Cmd) {
	switch msg := msg.(type) {
	case listMsg:
		m.store.ApplyList(msg.res)
		return m, nil

	case createMsg:
		m.submitBusy = false
		if m.store.ApplyCreate(msg.res) {
			m.input.Reset()
			if m.storage != nil {
				m.storage.ClearDraft(m.store.Target().Key())
			}
			return m, tea.Batch(fetchCmd(m.store.Fetch(m.ctx)), m.spin.Tick)
		}
		m.notice = m.store.TakeNotice()
		return m, nil

	case likeMsg:
		delete(m.likeBusy, msg.res.CommentID)
		m.store.ApplyLike(msg.res)
		if n := m.store.TakeNotice(); n != "" {
			m.notice = n
		}
		return m, nil

	case draftLoadedMsg:
		if msg.key == m.store.Target().Key() && msg.content != "" && m.store.Draft() == "" {
			m.store.SetDraft(msg.content)
			m.input.SetValue(msg.content)
		}
		return m, nil

	case spinner.TickMsg:
		if m.store.State() == engage.Loading {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Engagement) handleKey(msg tea.KeyMsg) (Engagement, tea.Cmd) {
	if m.focusInput {
		switch msg.String() {
		case "esc":
			m.focusInput = false
			m.input.Blur()
			return m, nil
		case "ctrl+s":
			return m.submit()
		case "ctrl+a":
			m.store.SetAnonymous(!m.store.Anonymous())
			return m, nil
		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			m.store.SetDraft(m.input.Value())
			return m, cmd
		}
	}

	switch msg.String() {
	case "j", "down":
		if m.cursor < m.store.Count()-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "i", "tab":
		if m.store.User() != nil {
			m.focusInput = true
			return m, m.input.Focus()
		}
	case "l", "enter":
		return m.like()
	case "e":
		if c, ok := m.selected(); ok && m.store.IsMine(c) {
			if err := m.store.RequestUpdate(c.ID, c.Content); errors.Is(err, engage.ErrNotImplemented) {
				m.notice = m.store.TakeNotice()
			}
		}
	case "d":
		if c, ok := m.selected(); ok && m.store.IsMine(c) {
			if err := m.store.RequestDelete(c.ID); errors.Is(err, engage.ErrNotImplemented) {
				m.notice = m.store.TakeNotice()
			}
		}
	case "r":
		m.store.Reload()
		return m, tea.Batch(fetchCmd(m.store.Fetch(m.ctx)), m.spin.Tick)
	}
	return m, nil
}

func (m Engagement) submit() (Engagement, tea.Cmd) {
	if m.submitBusy {
		return m, nil
	}
	create, err := m.store.Submit(m.ctx)
	if err != nil {
		// Whitespace-only drafts are dropped locally, same as the web
		// composer: no call, no notice.
		return m, nil
	}
	m.submitBusy = true
	return m, func() tea.Msg { return createMsg{res: create()} }
}

func (m Engagement) like() (Engagement, tea.Cmd) {
	c, ok := m.selected()
	if !ok || m.likeBusy[c.ID] {
		return m, nil
	}
	like, err := m.store.Like(m.ctx, c.ID)
	if err != nil {
		return m, nil
	}
	m.likeBusy[c.ID] = true
	return m, func() tea.Msg { return likeMsg{res: like()} }
}

func (m Engagement) selected() (domain.Comment, bool) {
	comments := m.store.Comments()
	if m.cursor < 0 || m.cursor >= len(comments) {
		return domain.Comment{}, false
	}
	return comments[m.cursor], true
}

func (m Engagement) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("댓글 (%d)", m.store.Count())))
	b.WriteString("\n\n")

	switch m.store.State() {
	case engage.Loading:
		b.WriteString(m.spin.View() + " 로딩 중...\n")
	case engage.Failed:
		b.WriteString(errorStyle.Render(m.store.LoadError()) + "\n")
	}

	for i, c := range m.store.Comments() {
		b.WriteString(m.renderComment(c, i == m.cursor))
	}

	b.WriteString("\n")
	b.WriteString(m.renderComposer())

	if m.notice != "" {
		b.WriteString("\n" + noticeStyle.Render(m.notice) + "\n")
	}
	b.WriteString(helpStyle.Render("\nj/k 이동 · l 좋아요 · i 댓글 입력 · r 새로고침"))
	return b.String()
}

// renderComment is a pure projection of one comment row. The masked
// label wins over the writer name whenever the comment is anonymous.
func (m Engagement) renderComment(c domain.Comment, selected bool) string {
	writer := maskedWriter
	if c.Writer != "" && !c.Anonymous {
		writer = c.Writer
	}

	meta := writer
	if c.CreatedAt != nil {
		meta += dimStyle.Render("  " + c.CreatedAt.Format("2006.01.02 15:04"))
	}

	heart := "♡"
	style := dimStyle
	if c.LikeCount > 0 {
		heart = "♥"
		style = likedStyle
	}
	like := style.Render(fmt.Sprintf("%s %d", heart, c.LikeCount))
	if m.likeBusy[c.ID] {
		like = dimStyle.Render("… " + fmt.Sprint(c.LikeCount))
	}

	line := fmt.Sprintf("%s  %s", meta, like)
	if m.store.IsMine(c) {
		line += dimStyle.Render("  [e 수정 · d 삭제]")
	}

	prefix := "  "
	if selected {
		prefix = selectedStyle.Render("> ")
	}
	return fmt.Sprintf("%s%s\n  %s\n", prefix, line, c.Content)
}

func (m Engagement) renderComposer() string {
	if m.store.User() == nil {
		return dimStyle.Render("댓글을 작성하려면 로그인이 필요합니다.")
	}

	mode := "공개"
	if m.store.Anonymous() {
		mode = maskedWriter
	}
	status := fmt.Sprintf("%s 작성", mode)
	if m.submitBusy {
		status = "등록 중..."
	}
	return m.input.View() + "\n" + dimStyle.Render(status+"  (ctrl+s 등록 · ctrl+a 익명 전환)")
}
