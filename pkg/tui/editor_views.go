package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	"github.com/rivo/uniseg"

	"github.com/pluqqy/blockpad/pkg/editor"
	"github.com/pluqqy/blockpad/pkg/render"
)

const (
	headerHeight = 2 // title line and a blank line
	footerHeight = 2 // help or confirmation, plus the app status bar
	gutterWidth  = 8
	menuWidth    = 44
	minTextWidth = 10
	addBlockText = "+ Add a block"
	caretGlyph   = "▌"
)

var actionGlyphs = map[render.Action]string{
	render.ActionDrag:   "⋮⋮",
	render.ActionCopy:   "⧉",
	render.ActionDelete: "✕",
}

// lineOwner records what a body line shows
type lineOwner struct {
	blockID string
	first   bool // first line of the block, where the gutter actions are
	add     bool
	menu    bool
	item    int // menu command index, -1 for the menu frame
	x0, x1  int
}

func (m *EditorModel) textWidth() int {
	w := m.width - gutterWidth - 1
	if m.width == 0 {
		w = 80 - gutterWidth
	}
	if limit := m.settings.Editor.Width; limit > 0 && limit < w {
		w = limit
	}
	if w < minTextWidth {
		w = minTextWidth
	}
	return w
}

// refresh rebuilds the body content and its line layout from the engine
func (m *EditorModel) refresh() {
	blocks := m.engine.Blocks()
	ordinals := render.Ordinals(blocks)
	focusedID, editing := m.engine.Focused()
	draft, hasDraft := m.engine.Draft()
	ready := m.engine.Ready()
	width := m.textWidth()

	var lines []string
	var owners []lineOwner
	m.blockTop = make(map[string]int, len(blocks))
	m.blockEnd = make(map[string]int, len(blocks))

	for i, b := range blocks {
		isEditing := editing && b.ID == focusedID
		var p render.Presentation
		if ready {
			p = render.Present(b, ordinals[b.ID], isEditing, i == m.hover)
		} else {
			p = render.Static(b, ordinals[b.ID])
		}
		if p.Placeholder != "" && m.settings.Editor.Placeholder != "" {
			p.Placeholder = m.settings.Editor.Placeholder
		}

		text, caret := p.Text, -1
		if isEditing {
			caret = len(text)
			if hasDraft {
				text, caret = draft, m.engine.Caret()
			}
		}

		m.blockTop[b.ID] = len(lines)
		for j, line := range renderBlock(p, text, caret, width) {
			gutter := strings.Repeat(" ", gutterWidth)
			if j == 0 {
				gutter = renderGutter(p.Actions)
			}
			lines = append(lines, gutter+line)
			owners = append(owners, lineOwner{blockID: b.ID, first: j == 0, item: -1})
		}
		m.blockEnd[b.ID] = len(lines) - 1
	}

	if ready {
		lines = append(lines, strings.Repeat(" ", gutterWidth)+DescriptionStyle.Render(addBlockText))
		owners = append(owners, lineOwner{add: true, item: -1})
	}

	if menu := m.engine.Menu(); menu.Open {
		lines, owners = m.insertMenu(lines, owners, menu)
	}

	m.owners = owners
	m.body.SetContent(strings.Join(lines, "\n"))
	m.keepVisible()
}

// renderBlock draws one block as terminal lines. caret >= 0 draws the caret
// at that byte offset of text.
func renderBlock(p render.Presentation, text string, caret, width int) []string {
	style := StyleForClass(p.Class)
	if p.Marker.Kind == render.MarkerRule {
		return []string{style.Render(strings.Repeat("─", width))}
	}

	prefix := render.Prefix(p)
	hang := runewidth.StringWidth(prefix)

	var body string
	switch {
	case caret >= 0:
		body = renderCaret(text, caret, style)
		if text == "" && p.Placeholder != "" {
			body += PlaceholderStyle.Render(p.Placeholder)
		}
	case p.Empty():
		body = PlaceholderStyle.Render(p.Placeholder)
	default:
		body = styleLines(style, text)
	}

	wrapAt := width - hang
	if wrapAt < 1 {
		wrapAt = 1
	}
	out := strings.Split(wordwrap.String(body, wrapAt), "\n")

	marker := MarkerStyle.Render(prefix)
	for i := range out {
		switch {
		case i == 0:
			out[i] = marker + out[i]
		case p.Class == "quote":
			// the quote bar runs down every line
			out[i] = marker + out[i]
		default:
			out[i] = strings.Repeat(" ", hang) + out[i]
		}
	}
	return out
}

// renderCaret styles text with a reverse-video cell at the caret. Past the
// end of a line the caret is drawn as a bar glyph.
func renderCaret(text string, caret int, style lipgloss.Style) string {
	if caret > len(text) {
		caret = len(text)
	}
	before, rest := text[:caret], text[caret:]
	cell, after := caretGlyph, rest
	if rest != "" && rest[0] != '\n' {
		cell, _, _, _ = uniseg.FirstGraphemeClusterInString(rest, -1)
		after = rest[len(cell):]
	}
	return styleLines(style, before) + CursorStyle.Render(cell) + styleLines(style, after)
}

// styleLines applies style to each line on its own so lipgloss does not pad
// lines to a common width
func styleLines(style lipgloss.Style, s string) string {
	parts := strings.Split(s, "\n")
	for i, part := range parts {
		if part != "" {
			parts[i] = style.Render(part)
		}
	}
	return strings.Join(parts, "\n")
}

func renderGutter(actions []render.Action) string {
	if len(actions) == 0 {
		return strings.Repeat(" ", gutterWidth)
	}
	var b strings.Builder
	for i, a := range actions {
		if i > 0 {
			b.WriteString(" ")
		}
		glyph := actionGlyphs[a]
		if a == render.ActionDelete {
			b.WriteString(ActionDangerStyle.Render(glyph))
		} else {
			b.WriteString(ActionStyle.Render(glyph))
		}
	}
	used := lipgloss.Width(b.String())
	if used < gutterWidth {
		b.WriteString(strings.Repeat(" ", gutterWidth-used))
	}
	return b.String()
}

// actionAt maps a gutter column to the action drawn there
func actionAt(actions []render.Action, x int) (render.Action, bool) {
	col := 0
	for _, a := range actions {
		w := runewidth.StringWidth(actionGlyphs[a])
		if x >= col && x < col+w {
			return a, true
		}
		col += w + 1
	}
	return "", false
}

// anchorAt resolves the menu position for a caret inside a block, in body
// coordinates
func (m *EditorModel) anchorAt(blockID string, line, col int) editor.Point {
	prefix := 0
	if b, ok := m.engine.Block(blockID); ok {
		prefix = runewidth.StringWidth(render.Prefix(render.Static(b, m.engine.Ordinal(blockID))))
	}
	return editor.Point{
		X: gutterWidth + prefix + col,
		Y: m.blockTop[blockID] + line + 1,
	}
}

// insertMenu splices the slash menu into the body below the caret line
func (m *EditorModel) insertMenu(lines []string, owners []lineOwner, menu editor.MenuState) ([]string, []lineOwner) {
	top, ok := m.blockTop[menu.BlockID]
	if !ok {
		return lines, owners
	}
	end := m.blockEnd[menu.BlockID]
	at := menu.Anchor.Y
	if at <= top {
		at = top + 1
	}
	if at > end+1 {
		at = end + 1
	}

	x := menu.Anchor.X
	if limit := m.width - menuWidth; m.width > 0 && x > limit {
		x = limit
	}
	if x < 0 {
		x = 0
	}

	box := strings.Split(renderMenu(menu.Selected), "\n")
	indent := strings.Repeat(" ", x)
	menuLines := make([]string, len(box))
	menuOwners := make([]lineOwner, len(box))
	for i, l := range box {
		menuLines[i] = indent + l
		item := i - 2 // top border and the section label
		if item < 0 || item >= len(editor.Commands) {
			item = -1
		}
		menuOwners[i] = lineOwner{menu: true, item: item, x0: x, x1: x + menuWidth}
	}

	lines = append(lines[:at], append(menuLines, lines[at:]...)...)
	owners = append(owners[:at], append(menuOwners, owners[at:]...)...)
	return lines, owners
}

func renderMenu(selected int) string {
	inner := menuWidth - 2
	rows := []string{DescriptionStyle.Render(runewidth.FillRight("BASIC BLOCKS", inner))}
	for i, c := range editor.Commands {
		icon := runewidth.FillRight(c.Icon, 3)
		row := fmt.Sprintf("%s %-14s %s", icon, c.Title, c.Description)
		row = runewidth.FillRight(runewidth.Truncate(row, inner, "…"), inner)
		if i == selected {
			rows = append(rows, SelectedStyle.Render(row))
		} else {
			rows = append(rows, NormalStyle.Render(row))
		}
	}
	return MenuBorderStyle.Render(strings.Join(rows, "\n"))
}

// keepVisible scrolls the body so the hovered block and any open menu show
func (m *EditorModel) keepVisible() {
	id, ok := m.hoveredID()
	if !ok {
		return
	}
	top, end := m.blockTop[id], m.blockEnd[id]
	if m.engine.Menu().Open {
		for i, o := range m.owners {
			if o.menu {
				end = i
			}
		}
	}
	h := m.body.Height
	switch {
	case top < m.body.YOffset:
		m.body.SetYOffset(top)
	case end >= m.body.YOffset+h:
		m.body.SetYOffset(end - h + 1)
	}
}

func (m *EditorModel) helpBindings() []key.Binding {
	if m.engine.Menu().Open {
		return m.keys.Menu.ShortHelp()
	}
	if _, editing := m.engine.Focused(); editing {
		return m.keys.Edit.ShortHelp()
	}
	return m.keys.Idle.ShortHelp()
}

func (m *EditorModel) View() string {
	title := "Untitled"
	subtitle := ""
	if m.page != nil {
		if t := m.page.DisplayTitle(); t != "" {
			title = t
		}
		if m.page.LastEdited != "" {
			subtitle = "Edited " + m.page.LastEdited
		}
	}

	var footer string
	switch {
	case m.confirm.Active():
		footer = m.confirm.ViewWithWidth(m.width)
	case m.settings.Editor.ShowHelp:
		footer = m.help.ShortHelpView(m.helpBindings())
	}
	if m.changes > 0 {
		count := DescriptionStyle.Render(fmt.Sprintf("%d changes", m.changes))
		if footer != "" {
			footer += "  " + count
		} else {
			footer = count
		}
	}

	return strings.Join([]string{
		renderHeader(m.width, title, subtitle),
		"",
		m.body.View(),
		footer,
	}, "\n")
}
