package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color constants
const (
	ColorActive   = "170" // Purple/magenta for active elements
	ColorInactive = "240" // Gray for inactive elements
	ColorSelected = "236" // Dark gray for background selection
	ColorNormal   = "245" // Light gray for normal text
	ColorDim      = "241" // Dimmer gray
	ColorWarning  = "214" // Orange/yellow for warnings
	ColorDanger   = "196" // Red for dangerous actions
	ColorSuccess  = "28"  // Green for success
	ColorWhite    = "255"
	ColorPrimary  = "33" // Blue for primary actions
	ColorTitle    = "205"
)

// Common styles
var (
	MenuBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorActive))

	HelpBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorInactive))

	// Selection styles
	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Background(lipgloss.Color(ColorSelected)).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal))

	DescriptionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDim))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorDanger))

	CursorStyle = lipgloss.NewStyle().
			Reverse(true)

	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDim)).
				Italic(true)

	// Gutter shown next to the hovered or edited block
	ActionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorInactive))

	ActionDangerStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDanger))

	MarkerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive))

	StatusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1)
)

// classStyles maps render classes to text styles
var classStyles = map[string]lipgloss.Style{
	"title": lipgloss.NewStyle().
		Bold(true).
		Underline(true).
		Foreground(lipgloss.Color(ColorTitle)),
	"heading-1": lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorWarning)),
	"heading-2": lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorPrimary)),
	"heading-3": lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorNormal)),
	"list": lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWhite)),
	"quote": lipgloss.NewStyle().
		Italic(true).
		Foreground(lipgloss.Color(ColorNormal)),
	"code": lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSuccess)).
		Background(lipgloss.Color(ColorSelected)),
	"divider": lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorInactive)),
	"text": lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWhite)),
}

// StyleForClass returns the text style for a render class
func StyleForClass(class string) lipgloss.Style {
	if s, ok := classStyles[class]; ok {
		return s
	}
	return NormalStyle
}
