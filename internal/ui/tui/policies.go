package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-99-FE/internal/catalog"
	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-99-FE/internal/core/domain"
)

// PolicyList는 정책 모아보기 화면입니다. 검색어/지역/태그 필터와 정렬은
// catalog.Apply가 계산하고, 이 모델은 필터 상태와 커서만 가집니다.
type PolicyList struct {
	policies []domain.Policy
	filters  catalog.Filters
	visible  []domain.Policy
	tags     []string
	cursor   int

	search    textinput.Model
	searching bool
}

func NewPolicyList(policies []domain.Policy) PolicyList {
	ti := textinput.New()
	ti.Placeholder = "정책 제목 검색"
	ti.CharLimit = 50

	m := PolicyList{
		policies: policies,
		filters:  catalog.DefaultFilters(),
		tags:     distinctTags(policies),
		search:   ti,
	}
	m.refresh()
	return m
}

func distinctTags(policies []domain.Policy) []string {
	seen := make(map[string]bool)
	var tags []string
	for _, p := range policies {
		for _, t := range p.Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	return tags
}

func (m *PolicyList) refresh() {
	m.visible = catalog.Apply(m.policies, m.filters)
	if m.cursor >= len(m.visible) {
		m.cursor = 0
	}
}

// Selected returns the policy under the cursor.
func (m PolicyList) Selected() (domain.Policy, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return domain.Policy{}, false
	}
	return m.visible[m.cursor], true
}

func (m PolicyList) Update(msg tea.Msg) (PolicyList, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.searching {
		switch key.String() {
		case "enter", "esc":
			m.searching = false
			m.search.Blur()
		default:
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(key)
			m.filters.SearchTerm = m.search.Value()
			m.refresh()
			return m, cmd
		}
		return m, nil
	}

	switch key.String() {
	case "j", "down":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "/":
		m.searching = true
		return m, m.search.Focus()
	case "s":
		if m.filters.Sort == catalog.SortLatest {
			m.filters.Sort = catalog.SortLikes
		} else {
			m.filters.Sort = catalog.SortLatest
		}
		m.refresh()
	case "f":
		m.filters.Region = nextRegion(m.filters.Region)
		m.refresh()
	case "x":
		m.filters = catalog.DefaultFilters()
		m.search.Reset()
		m.refresh()
	default:
		if n := tagIndex(key.String()); n >= 0 && n < len(m.tags) {
			m.toggleTag(m.tags[n])
			m.refresh()
		}
	}
	return m, nil
}

func tagIndex(key string) int {
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		return int(key[0] - '1')
	}
	return -1
}

func (m *PolicyList) toggleTag(tag string) {
	for i, t := range m.filters.Tags {
		if t == tag {
			m.filters.Tags = append(m.filters.Tags[:i], m.filters.Tags[i+1:]...)
			return
		}
	}
	m.filters.Tags = append(m.filters.Tags, tag)
}

func nextRegion(current string) string {
	options := []string{catalog.RegionAll}
	for _, r := range catalog.Regions {
		options = append(options, r.Name)
	}
	for i, name := range options {
		if name == current {
			return options[(i+1)%len(options)]
		}
	}
	return catalog.RegionAll
}

func (m PolicyList) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("정책 모아보기") + "\n")
	b.WriteString(subtitleStyle.Render("청년을 위한 다양한 정책을 한눈에 확인하세요") + "\n\n")

	if m.searching {
		b.WriteString(m.search.View() + "\n")
	} else {
		b.WriteString(m.filterLine() + "\n")
	}
	b.WriteString("\n")

	if len(m.visible) == 0 {
		b.WriteString(dimStyle.Render("조건에 맞는 정책이 없습니다.") + "\n")
	}
	for i, p := range m.visible {
		prefix := "  "
		if i == m.cursor {
			prefix = selectedStyle.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%s%s %s  %s  ♥ %d\n", prefix,
			statusBadge(p.Status), p.Title, dimStyle.Render(p.Location), p.Likes))
	}

	b.WriteString(helpStyle.Render("\n/ 검색 · f 지역 · s 정렬 · 1-9 태그 · x 초기화 · enter 상세 · n 글쓰기 · q 종료"))
	return b.String()
}

func (m PolicyList) filterLine() string {
	parts := []string{"지역: " + m.filters.Region, "정렬: " + m.filters.Sort}
	if m.filters.SearchTerm != "" {
		parts = append(parts, "검색: "+m.filters.SearchTerm)
	}
	var tagParts []string
	for i, t := range m.tags {
		label := fmt.Sprintf("%d.%s", i+1, t)
		if containsTag(m.filters.Tags, t) {
			label = selectedStyle.Render(label)
		} else {
			label = dimStyle.Render(label)
		}
		tagParts = append(tagParts, label)
	}
	line := strings.Join(parts, "  ")
	if len(tagParts) > 0 {
		line += "  " + strings.Join(tagParts, " ")
	}
	return line
}

func containsTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
