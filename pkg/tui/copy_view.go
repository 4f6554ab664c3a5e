package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// CopyFallbackModel shows block content for the user to select by hand when
// the clipboard cannot be written. Mouse capture is off while it is shown so
// the terminal's own selection works.
type CopyFallbackModel struct {
	width    int
	height   int
	text     string
	viewport viewport.Model
}

func NewCopyFallbackModel() *CopyFallbackModel {
	return &CopyFallbackModel{
		viewport: viewport.New(80, 20),
	}
}

func (m *CopyFallbackModel) Init() tea.Cmd {
	return nil
}

func (m *CopyFallbackModel) SetText(text string) {
	m.text = text
	m.updateContent()
	m.viewport.GotoTop()
}

func (m *CopyFallbackModel) Text() string {
	return m.text
}

func (m *CopyFallbackModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	// border, title and hint lines
	m.viewport.Width = max(width-4, 10)
	m.viewport.Height = max(height-6, 1)
	m.updateContent()
}

func (m *CopyFallbackModel) updateContent() {
	content := m.text
	if m.viewport.Width > 0 {
		content = wordwrap.String(content, m.viewport.Width)
	}
	m.viewport.SetContent(content)
}

func (m *CopyFallbackModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q", "enter":
			return m, func() tea.Msg {
				return SwitchViewMsg{view: editorView}
			}
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *CopyFallbackModel) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorWarning))

	var b strings.Builder
	b.WriteString(titleStyle.Render("Clipboard unavailable"))
	b.WriteString("\n")
	b.WriteString(DescriptionStyle.Render("Select the text below with your terminal to copy it. esc to return."))
	b.WriteString("\n")
	b.WriteString(HelpBorderStyle.Render(m.viewport.View()))
	return b.String()
}
