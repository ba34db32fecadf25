package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	headerStyle   = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	noticeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	likedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	badgeActive  = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	badgePending = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	badgeDone    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Bold(true)
)

// statusBadge colors the 진행전/진행중/완료 label.
func statusBadge(status string) string {
	switch status {
	case "진행중":
		return badgeActive.Render("[" + status + "]")
	case "진행전":
		return badgePending.Render("[" + status + "]")
	case "완료":
		return badgeDone.Render("[" + status + "]")
	default:
		return "[" + status + "]"
	}
}
