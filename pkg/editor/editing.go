package editor

import (
	"strings"

	"github.com/pluqqy/blockpad/pkg/models"
)

// BeginEdit gives edit focus to a block, committing any other focused block
// first. The draft starts from the committed content with the caret at the end.
func (e *Engine) BeginEdit(id string) bool {
	e.settle()
	if !e.ready {
		return false
	}
	i := e.index(id)
	if i < 0 {
		return false
	}
	if e.draft != nil {
		if e.draft.blockID == id {
			return true
		}
		e.Blur()
	}
	e.draft = newDraft(id, e.blocks[i].Content)
	e.phase = PhaseEditing
	if e.focuser != nil {
		e.seq++
		e.focuser.RequestFocus(FocusHandle{BlockID: id, seq: e.seq})
	}
	return true
}

// ConfirmFocus completes a pending focus move once the view has rendered the
// new block. Stale handles are ignored.
func (e *Engine) ConfirmFocus(h FocusHandle) bool {
	if e.phase != PhaseCommitting || e.pending == nil || e.pending.seq != h.seq {
		return false
	}
	i := e.index(e.pending.BlockID)
	e.pending = nil
	if i < 0 {
		e.phase = PhaseIdle
		return false
	}
	e.draft = newDraft(e.blocks[i].ID, e.blocks[i].Content)
	e.phase = PhaseEditing
	return true
}

// settle finishes a pending focus move before any other input is handled,
// so the new block observes everything that happened before it.
func (e *Engine) settle() {
	if e.phase == PhaseCommitting && e.pending != nil {
		e.ConfirmFocus(*e.pending)
	}
}

func (e *Engine) beginCommit(id string) FocusHandle {
	e.seq++
	h := FocusHandle{BlockID: id, seq: e.seq}
	e.draft = nil
	e.pending = &h
	e.phase = PhaseCommitting
	e.closeMenu()
	if e.focuser != nil {
		e.focuser.RequestFocus(h)
	}
	return h
}

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// InsertText types s at the caret of the focused block
func (e *Engine) InsertText(s string) {
	e.settle()
	if e.draft == nil || s == "" {
		return
	}
	e.draft.insert(lineEndings.Replace(s))
	e.textChanged()
}

// Backspace deletes the grapheme before the caret. With the menu open and the
// caret right after the trigger slash, the slash goes and the menu closes
// without being re-triggered.
func (e *Engine) Backspace() {
	e.settle()
	if e.draft == nil {
		return
	}
	if e.menu.Open && strings.HasSuffix(e.draft.beforeCaret(), "/") {
		e.closeMenu()
		e.draft.backspace()
		return
	}
	if e.draft.backspace() {
		e.textChanged()
	}
}

func (e *Engine) MoveLeft() {
	e.settle()
	if e.draft != nil {
		e.draft.left()
		e.caretMoved()
	}
}

func (e *Engine) MoveRight() {
	e.settle()
	if e.draft != nil {
		e.draft.right()
		e.caretMoved()
	}
}

func (e *Engine) MoveHome() {
	e.settle()
	if e.draft != nil {
		e.draft.home()
		e.caretMoved()
	}
}

func (e *Engine) MoveEnd() {
	e.settle()
	if e.draft != nil {
		e.draft.end()
		e.caretMoved()
	}
}

// caretMoved closes the menu once the caret has left the slash token. Moving
// the caret never opens it.
func (e *Engine) caretMoved() {
	if e.menu.Open && menuTrigger(e.draft.beforeCaret()) == triggerClose {
		e.closeMenu()
	}
}

func (e *Engine) textChanged() {
	switch menuTrigger(e.draft.beforeCaret()) {
	case triggerOpen:
		line, col := e.draft.caretColumn()
		var at Point
		if e.anchor != nil {
			at = e.anchor(e.draft.blockID, line, col)
		}
		e.menu = MenuState{Open: true, BlockID: e.draft.blockID, Anchor: at}
	case triggerClose:
		e.closeMenu()
	}
}

// Enter handles the Enter key on the focused block. With the menu open it
// applies the highlighted command. lineBreak inserts a newline instead of
// splitting. An empty list entry turns into a paragraph; anything else is
// committed and followed by a new block that receives focus through the
// returned handle.
func (e *Engine) Enter(lineBreak bool) (FocusHandle, bool) {
	e.settle()
	if e.draft == nil {
		return FocusHandle{}, false
	}
	if e.menu.Open {
		e.applyCommand(e.menu.Selected)
		return FocusHandle{}, false
	}
	if lineBreak {
		e.InsertText("\n")
		return FocusHandle{}, false
	}

	i := e.index(e.draft.blockID)
	if i < 0 {
		e.dropFocus()
		return FocusHandle{}, false
	}
	cur := e.blocks[i]

	if cur.Type.IsList() && strings.TrimSpace(e.draft.text) == "" {
		e.blocks[i].Type = models.BlockParagraph
		e.blocks[i].Content = ""
		e.dropFocus()
		e.log.Debug().Str("block", cur.ID).Msg("list break-out")
		e.notify()
		return FocusHandle{}, false
	}

	// The old block keeps exactly the text present at the key press.
	e.blocks[i].Content = e.draft.text

	next := models.BlockParagraph
	if cur.Type.IsList() {
		next = cur.Type
	}
	id := e.insertAfter(cur.ID, models.Block{Type: next})
	h := e.beginCommit(id)
	e.log.Debug().Str("block", cur.ID).Str("new", id).Msg("block split")
	e.notify()
	return h, true
}

// MenuDown moves the highlight down, wrapping to the first command
func (e *Engine) MenuDown() bool {
	if !e.menu.Open {
		return false
	}
	e.menu.Selected = (e.menu.Selected + 1) % len(Commands)
	return true
}

// MenuUp moves the highlight up, wrapping to the last command
func (e *Engine) MenuUp() bool {
	if !e.menu.Open {
		return false
	}
	e.menu.Selected = (e.menu.Selected - 1 + len(Commands)) % len(Commands)
	return true
}

// SelectCommand applies a command picked with the pointer
func (e *Engine) SelectCommand(i int) bool {
	e.settle()
	if !e.menu.Open || e.draft == nil || i < 0 || i >= len(Commands) {
		return false
	}
	e.menu.Selected = i
	e.applyCommand(i)
	return true
}

func (e *Engine) applyCommand(i int) {
	cmd := Commands[i]
	id := e.draft.blockID
	idx := e.index(id)
	e.closeMenu()
	if idx < 0 {
		return
	}

	if cmd.Type == models.BlockDivider {
		e.insertAfter(id, models.Block{Type: models.BlockDivider, Content: models.DividerContent})
		e.log.Debug().Str("block", id).Msg("divider inserted")
		e.notify()
		return
	}

	content := prefixBeforeSlash(e.draft.text)
	e.blocks[idx].Type = cmd.Type
	e.blocks[idx].Content = content
	e.draft = newDraft(id, content)
	e.log.Debug().Str("block", id).Str("type", string(cmd.Type)).Msg("block transformed")
	e.notify()
}

// Escape closes the menu when open, otherwise leaves edit focus and throws
// the draft away
func (e *Engine) Escape() {
	e.settle()
	if e.menu.Open {
		e.closeMenu()
		return
	}
	if e.draft != nil {
		e.dropFocus()
	}
}

// Blur commits the draft and leaves edit focus
func (e *Engine) Blur() {
	e.settle()
	if e.draft == nil {
		e.closeMenu()
		return
	}
	changed := e.commitDraft()
	e.dropFocus()
	if changed {
		e.notify()
	}
}

// DismissMenu closes the menu, as a click outside it does
func (e *Engine) DismissMenu() {
	e.closeMenu()
}

func (e *Engine) commitDraft() bool {
	i := e.index(e.draft.blockID)
	if i < 0 || e.blocks[i].Content == e.draft.text {
		return false
	}
	e.blocks[i].Content = e.draft.text
	return true
}

func (e *Engine) dropFocus() {
	focused := e.phase != PhaseIdle
	e.draft = nil
	e.pending = nil
	e.phase = PhaseIdle
	e.closeMenu()
	if focused && e.focuser != nil {
		e.focuser.ReleaseFocus()
	}
}

func (e *Engine) closeMenu() {
	e.menu = MenuState{}
}
