package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/pluqqy/blockpad/pkg/editor"
	"github.com/pluqqy/blockpad/pkg/models"
)

type sessionState int

const (
	editorView sessionState = iota
	copyFallbackView
)

const statusTimeout = 3 * time.Second

// Options configures the TUI
type Options struct {
	Page      *models.Page
	Settings  *models.Settings
	Logger    *zerolog.Logger
	Clipboard editor.Clipboard
	IDs       editor.IDSource
}

type App struct {
	state     sessionState
	editor    *EditorModel
	copier    *CopyFallbackModel
	mouse     bool
	width     int
	height    int
	statusMsg string
	statusSeq int
}

func NewApp(opts Options) *App {
	ed := NewEditorModel(opts)
	return &App{
		state:  editorView,
		editor: ed,
		copier: NewCopyFallbackModel(),
		mouse:  ed.settings.UI.Mouse,
	}
}

// Editor returns the editor view
func (a *App) Editor() *EditorModel {
	return a.editor
}

func (a *App) Init() tea.Cmd {
	return a.editor.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.editor.SetSize(msg.Width, msg.Height)
		a.copier.SetSize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

	case StatusMsg:
		a.statusMsg = string(msg)
		a.statusSeq++
		seq := a.statusSeq
		return a, tea.Tick(statusTimeout, func(time.Time) tea.Msg {
			return clearStatusMsg{seq: seq}
		})

	case clearStatusMsg:
		if msg.seq == a.statusSeq {
			a.statusMsg = ""
		}
		return a, nil

	case showCopyMsg:
		a.state = copyFallbackView
		a.copier.SetText(msg.text)
		if a.mouse {
			return a, tea.DisableMouse
		}
		return a, nil

	case SwitchViewMsg:
		a.state = msg.view
		if a.state == editorView && a.mouse {
			return a, tea.EnableMouseCellMotion
		}
		return a, nil

	case PageReloadedMsg:
		// Reloads reach the editor whichever view is showing
		_, cmd := a.editor.Update(msg)
		return a, cmd
	}

	var cmd tea.Cmd
	switch a.state {
	case editorView:
		_, cmd = a.editor.Update(msg)
	case copyFallbackView:
		_, cmd = a.copier.Update(msg)
	}
	return a, cmd
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	var content string
	switch a.state {
	case editorView:
		content = a.editor.View()
	case copyFallbackView:
		content = a.copier.View()
	default:
		content = "Unknown view"
	}

	if a.statusMsg != "" {
		statusBar := StatusStyle.Render(a.statusMsg)
		content = lipgloss.JoinVertical(lipgloss.Top, content, statusBar)
	}

	return content
}

// Messages for communication between views
type StatusMsg string

type clearStatusMsg struct {
	seq int
}

type SwitchViewMsg struct {
	view sessionState
}
