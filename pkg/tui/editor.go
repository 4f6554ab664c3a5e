package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/pluqqy/blockpad/pkg/editor"
	"github.com/pluqqy/blockpad/pkg/models"
)

// readyMsg ends the static first frame
type readyMsg struct{}

// focusReadyMsg arrives after the view holding a newly focused block has
// been drawn
type focusReadyMsg struct {
	handle editor.FocusHandle
}

// showCopyMsg asks the app to show text for manual copying
type showCopyMsg struct {
	text string
}

// PageReloadedMsg carries a page re-read from disk by the file watcher
type PageReloadedMsg struct {
	Page *models.Page
	Err  error
}

// EditorModel is the block editor view. It owns the engine and answers its
// focus and manual copy requests.
type EditorModel struct {
	engine   *editor.Engine
	page     *models.Page
	settings *models.Settings
	log      zerolog.Logger

	keys    keyMap
	help    help.Model
	confirm *ConfirmationModel
	body    viewport.Model

	width   int
	height  int
	hover   int
	changes int

	pendingFocus *editor.FocusHandle
	manualCopy   *string

	// layout of the last refresh, used for mouse hit testing and menu anchors
	owners   []lineOwner
	blockTop map[string]int
	blockEnd map[string]int
}

func NewEditorModel(opts Options) *EditorModel {
	settings := opts.Settings
	if settings == nil {
		settings = models.DefaultSettings()
	}
	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	m := &EditorModel{
		page:     opts.Page,
		settings: settings,
		log:      logger,
		keys:     defaultKeyMap(),
		help:     help.New(),
		confirm:  NewConfirmation(),
		body:     viewport.New(80, 20),
		blockTop: map[string]int{},
		blockEnd: map[string]int{},
	}

	engineOpts := []editor.Option{
		editor.WithFocuser(m),
		editor.WithManualCopier(m),
		editor.WithChangeHandler(m.blocksChanged),
		editor.WithAnchor(m.anchorAt),
		editor.WithLogger(logger),
	}
	if opts.Clipboard != nil {
		engineOpts = append(engineOpts, editor.WithClipboard(opts.Clipboard))
	}
	if opts.IDs != nil {
		engineOpts = append(engineOpts, editor.WithIDSource(opts.IDs))
	}

	var initial []models.Block
	if opts.Page != nil {
		initial = opts.Page.Blocks
	}
	m.engine = editor.New(initial, engineOpts...)
	m.refresh()
	return m
}

// Engine exposes the underlying engine, mainly for tests
func (m *EditorModel) Engine() *editor.Engine {
	return m.engine
}

// RequestFocus records a focus move. It is answered with a focusReadyMsg
// once the current update has been rendered.
func (m *EditorModel) RequestFocus(h editor.FocusHandle) {
	m.pendingFocus = &h
}

func (m *EditorModel) ReleaseFocus() {
	m.pendingFocus = nil
}

// SelectForCopy records text that could not reach the clipboard
func (m *EditorModel) SelectForCopy(text string) {
	m.manualCopy = &text
}

func (m *EditorModel) blocksChanged(blocks []models.Block) {
	m.changes++
	m.log.Debug().Int("blocks", len(blocks)).Int("changes", m.changes).Msg("blocks changed")
}

func (m *EditorModel) Init() tea.Cmd {
	return func() tea.Msg { return readyMsg{} }
}

func (m *EditorModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.body.Width = width
	bodyHeight := height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	m.body.Height = bodyHeight
	m.refresh()
}

func (m *EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case readyMsg:
		m.engine.MarkReady()
		m.log.Debug().Int("blocks", m.engine.Len()).Msg("editor ready")

	case focusReadyMsg:
		m.engine.ConfirmFocus(msg.handle)

	case PageReloadedMsg:
		cmd = m.reload(msg)

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	case tea.MouseMsg:
		cmd = m.handleMouse(msg)
	}

	m.syncHover()
	m.refresh()
	return m, tea.Batch(cmd, m.takeEffects())
}

// takeEffects turns engine callbacks recorded during this update into
// commands. Commands run after the view is drawn.
func (m *EditorModel) takeEffects() tea.Cmd {
	var cmds []tea.Cmd
	if m.pendingFocus != nil {
		h := *m.pendingFocus
		m.pendingFocus = nil
		cmds = append(cmds, func() tea.Msg { return focusReadyMsg{handle: h} })
	}
	if m.manualCopy != nil {
		text := *m.manualCopy
		m.manualCopy = nil
		cmds = append(cmds, func() tea.Msg { return showCopyMsg{text: text} })
	}
	return tea.Batch(cmds...)
}

func (m *EditorModel) reload(msg PageReloadedMsg) tea.Cmd {
	if msg.Err != nil {
		return statusCmd("× Reload failed: %v", msg.Err)
	}
	if msg.Page == nil {
		return nil
	}
	m.page = msg.Page
	m.engine.Reset(msg.Page.Blocks)
	m.clampHover()
	return statusCmd("✓ Page reloaded")
}

func (m *EditorModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.confirm.Active() {
		return m.confirm.Update(msg)
	}

	if !m.engine.Ready() {
		if key.Matches(msg, m.keys.Idle.Quit) {
			return tea.Quit
		}
		return nil
	}

	if m.engine.Menu().Open {
		switch {
		case key.Matches(msg, m.keys.Menu.Up):
			m.engine.MenuUp()
			return nil
		case key.Matches(msg, m.keys.Menu.Down):
			m.engine.MenuDown()
			return nil
		case key.Matches(msg, m.keys.Menu.Select):
			m.engine.Enter(false)
			return nil
		case key.Matches(msg, m.keys.Menu.Close):
			m.engine.Escape()
			return nil
		}
	}

	if _, editing := m.engine.Focused(); editing {
		return m.handleEditKey(msg)
	}
	return m.handleIdleKey(msg)
}

func (m *EditorModel) handleEditKey(msg tea.KeyMsg) tea.Cmd {
	k := m.keys.Edit
	switch {
	case key.Matches(msg, k.LineBreak):
		m.engine.Enter(true)
	case key.Matches(msg, k.Split):
		m.engine.Enter(false)
	case key.Matches(msg, k.Backspace):
		m.engine.Backspace()
	case key.Matches(msg, k.Left):
		m.engine.MoveLeft()
	case key.Matches(msg, k.Right):
		m.engine.MoveRight()
	case key.Matches(msg, k.Home):
		m.engine.MoveHome()
	case key.Matches(msg, k.End):
		m.engine.MoveEnd()
	case key.Matches(msg, k.Escape):
		m.engine.Escape()
	case key.Matches(msg, k.Blur):
		m.engine.Blur()
	default:
		switch msg.Type {
		case tea.KeyRunes:
			if !msg.Alt {
				m.engine.InsertText(string(msg.Runes))
			}
		case tea.KeySpace:
			m.engine.InsertText(" ")
		}
	}
	return nil
}

func (m *EditorModel) handleIdleKey(msg tea.KeyMsg) tea.Cmd {
	k := m.keys.Idle
	switch {
	case key.Matches(msg, k.Quit):
		return tea.Quit
	case key.Matches(msg, k.Up):
		if m.hover > 0 {
			m.hover--
		}
	case key.Matches(msg, k.Down):
		if m.hover < m.engine.Len()-1 {
			m.hover++
		}
	case key.Matches(msg, k.Edit):
		if id, ok := m.hoveredID(); ok {
			m.engine.BeginEdit(id)
		}
	case key.Matches(msg, k.Add):
		if _, ok := m.engine.AddBlock(); ok {
			m.hover = m.engine.Len() - 1
		}
	case key.Matches(msg, k.Copy):
		if id, ok := m.hoveredID(); ok {
			return m.copyBlock(id)
		}
	case key.Matches(msg, k.Delete):
		if id, ok := m.hoveredID(); ok {
			return m.requestDelete(id)
		}
	}
	return nil
}

func (m *EditorModel) copyBlock(id string) tea.Cmd {
	result := m.engine.Copy(id)
	m.log.Debug().Str("block", id).Str("result", result.String()).Msg("copy")
	switch result {
	case editor.CopyClipboard:
		return statusCmd("✓ Block copied to clipboard")
	case editor.CopyManual:
		return statusCmd("Clipboard unavailable, copy the text manually")
	case editor.CopyUnavailable:
		return statusCmd("× Clipboard unavailable")
	}
	return nil
}

func (m *EditorModel) requestDelete(id string) tea.Cmd {
	if m.engine.Len() <= 1 {
		return statusCmd("× Cannot delete the only block")
	}
	if !m.settings.Editor.ConfirmDelete {
		return m.deleteBlock(id)
	}
	m.confirm.ShowInline("Delete this block?", true,
		func() tea.Cmd { return m.deleteBlock(id) },
		func() tea.Cmd { return nil },
	)
	return nil
}

func (m *EditorModel) deleteBlock(id string) tea.Cmd {
	if !m.engine.Delete(id) {
		return nil
	}
	m.clampHover()
	return statusCmd("✓ Block deleted")
}

func (m *EditorModel) hoveredID() (string, bool) {
	blocks := m.engine.Blocks()
	if m.hover < 0 || m.hover >= len(blocks) {
		return "", false
	}
	return blocks[m.hover].ID, true
}

// syncHover keeps the hover on the focused block while editing
func (m *EditorModel) syncHover() {
	id, ok := m.engine.Focused()
	if !ok {
		m.clampHover()
		return
	}
	for i, b := range m.engine.Blocks() {
		if b.ID == id {
			m.hover = i
			return
		}
	}
}

func (m *EditorModel) clampHover() {
	if m.hover >= m.engine.Len() {
		m.hover = m.engine.Len() - 1
	}
	if m.hover < 0 {
		m.hover = 0
	}
}

func statusCmd(format string, args ...interface{}) tea.Cmd {
	msg := fmt.Sprintf(format, args...)
	return func() tea.Msg { return StatusMsg(msg) }
}
