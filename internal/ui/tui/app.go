package tui

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-99-FE/internal/catalog"
	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-99-FE/internal/core/domain"
	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-99-FE/internal/core/ports"
	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-99-FE/internal/engage"
)

type page int

const (
	pagePolicies page = iota
	pageDetail
	pageCompose
)

// App은 전체 화면 전환을 담당하는 루트 모델입니다. 정책 목록, 정책 상세
// (댓글 포함), 글 작성 세 화면 사이를 오갑니다.
type App struct {
	ctx  context.Context
	user *domain.User
	log  *zap.SugaredLogger

	page       page
	list       PolicyList
	engagement Engagement
	compose    Compose
	policy     domain.Policy
	notice     string
	width      int
}

func New(ctx context.Context, session ports.Session, api ports.Engagement, community ports.Community, store ports.Storage, log *zap.SugaredLogger) App {
	user := session.CurrentUser()
	engStore := engage.NewStore(api, user, log)
	return App{
		ctx:        ctx,
		user:       user,
		log:        log,
		list:       NewPolicyList(catalog.BuiltIn()),
		engagement: NewEngagement(ctx, engStore, store),
		compose:    NewCompose(ctx, community),
	}
}

func (m App) Init() tea.Cmd {
	return nil
}

func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case listMsg, createMsg, likeMsg, draftLoadedMsg, spinner.TickMsg:
		var cmd tea.Cmd
		m.engagement, cmd = m.engagement.Update(msg)
		return m, cmd

	case postPublishedMsg:
		var cmd tea.Cmd
		m.compose, cmd = m.compose.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.engagement.PersistDraft()
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.page {
	case pagePolicies:
		switch msg.String() {
		case "q":
			if !m.list.searching {
				return m, tea.Quit
			}
		case "enter":
			if p, ok := m.list.Selected(); ok && !m.list.searching {
				return m.openDetail(p)
			}
		case "n":
			if m.list.searching {
				break
			}
			if m.user == nil {
				m.notice = "로그인이 필요한 기능입니다."
				return m, nil
			}
			m.page = pageCompose
			var cmd tea.Cmd
			m.compose, cmd = m.compose.Reset()
			return m, cmd
		}
		m.notice = ""
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd

	case pageDetail:
		if !m.engagement.focusInput {
			switch msg.String() {
			case "esc", "b":
				m.engagement.PersistDraft()
				m.page = pagePolicies
				return m, nil
			case "q":
				m.engagement.PersistDraft()
				return m, tea.Quit
			}
		}
		var cmd tea.Cmd
		m.engagement, cmd = m.engagement.Update(msg)
		return m, cmd

	case pageCompose:
		if msg.String() == "esc" {
			m.page = pagePolicies
			return m, nil
		}
		var cmd tea.Cmd
		m.compose, cmd = m.compose.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m App) openDetail(p domain.Policy) (tea.Model, tea.Cmd) {
	m.policy = p
	m.page = pageDetail
	target := domain.Target{
		Kind:       domain.KindPolicy,
		ID:         strconv.Itoa(p.ID),
		PolicyName: p.Title,
	}
	var cmd tea.Cmd
	m.engagement, cmd = m.engagement.Mount(target)
	if m.log != nil {
		m.log.Infow("policy opened", "id", p.ID, "title", p.Title)
	}
	return m, cmd
}

func (m App) View() string {
	switch m.page {
	case pageDetail:
		return renderPolicyDetail(m.policy) + "\n" + m.engagement.View() +
			helpStyle.Render("\nesc 목록으로")
	case pageCompose:
		return m.compose.View()
	default:
		out := m.list.View()
		if m.notice != "" {
			out += "\n" + noticeStyle.Render(m.notice)
		}
		return out
	}
}
