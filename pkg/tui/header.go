package tui

import (
	"github.com/charmbracelet/lipgloss"
)

const appName = "blockpad"

// renderHeader draws the page title on the left and the app name on the right
func renderHeader(width int, title, subtitle string) string {
	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorTitle)).
		Bold(true)

	logoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorInactive))

	left := titleStyle.Render(title)
	if subtitle != "" {
		left += "  " + DescriptionStyle.Render(subtitle)
	}
	right := logoStyle.Render(appName)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		left,
		lipgloss.NewStyle().Width(gap).Render(""),
		right,
	)
}
