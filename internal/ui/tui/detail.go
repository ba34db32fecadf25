package tui

import (
	"fmt"
	"strings"

	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-99-FE/internal/core/domain"
)

// renderPolicyDetail projects one policy onto the detail screen,
// mirroring the section layout of the web detail page.
func renderPolicyDetail(p domain.Policy) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s %s\n", statusBadge(p.Status), titleStyle.Render(p.Title)))
	b.WriteString(fmt.Sprintf("%s  ♥ %d\n\n", dimStyle.Render(p.Location), p.Likes))

	section := func(title, body string) {
		if body == "" {
			return
		}
		b.WriteString(headerStyle.Render(title) + "\n" + body + "\n\n")
	}

	section("정책 설명", p.Description)
	section("지원 내용", p.SupportContent)
	section("지원 규모", p.SupportScale)
	section("신청 기간", p.ApplicationPeriod)
	section("신청 방법", p.ApplicationMethod)
	section("자격 요건", p.Eligibility)
	section("제출 서류", p.RequiredDocuments)
	if p.ApplicationURL != "" {
		b.WriteString(headerStyle.Render("신청하기") + "\n" + p.ApplicationURL + "\n\n")
	}
	return b.String()
}
