// Package editor implements the block editor engine: an ordered list of typed
// blocks, a single edit focus with an uncommitted draft, the slash command
// menu, and the split/transform/delete operations on the list.
//
// The engine is not safe for concurrent use. It is driven from one UI loop
// and talks to the presentation layer only through the capability interfaces
// below.
package editor

import (
	"github.com/rs/zerolog"

	"github.com/pluqqy/blockpad/pkg/models"
	"github.com/pluqqy/blockpad/pkg/render"
)

// Phase is the edit state of the engine
type Phase int

const (
	// PhaseIdle means no block has edit focus
	PhaseIdle Phase = iota
	// PhaseEditing means one block is focused and owns the draft
	PhaseEditing
	// PhaseCommitting means a split committed the old block and inserted a
	// new one that is waiting for the view to confirm it can take focus
	PhaseCommitting
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseEditing:
		return "editing"
	case PhaseCommitting:
		return "committing"
	}
	return "unknown"
}

// Point is a screen position supplied by the presentation layer
type Point struct {
	X, Y int
}

// MenuState is the transient slash menu state
type MenuState struct {
	Open     bool
	BlockID  string
	Anchor   Point
	Selected int
}

// FocusHandle identifies one focus request. The view passes it back to
// ConfirmFocus once the block can receive input.
type FocusHandle struct {
	BlockID string
	seq     uint64
}

// Focuser is implemented by the view that owns the on-screen input element
type Focuser interface {
	RequestFocus(h FocusHandle)
	ReleaseFocus()
}

// Clipboard receives copied block content
type Clipboard interface {
	WriteAll(text string) error
}

// ManualCopier presents text for the user to copy by hand when the clipboard
// cannot be written
type ManualCopier interface {
	SelectForCopy(text string)
}

// ChangeFunc is called with the full sequence after every committed mutation
type ChangeFunc func(blocks []models.Block)

// AnchorFunc resolves the screen point for the menu anchored at a block.
// line and col locate the caret inside the block's draft.
type AnchorFunc func(blockID string, line, col int) Point

// Option configures an Engine
type Option func(*Engine)

func WithChangeHandler(fn ChangeFunc) Option {
	return func(e *Engine) { e.onChange = fn }
}

func WithFocuser(f Focuser) Option {
	return func(e *Engine) { e.focuser = f }
}

func WithIDSource(ids IDSource) Option {
	return func(e *Engine) { e.ids = ids }
}

func WithAnchor(fn AnchorFunc) Option {
	return func(e *Engine) { e.anchor = fn }
}

func WithClipboard(c Clipboard) Option {
	return func(e *Engine) { e.clipboard = c }
}

func WithManualCopier(m ManualCopier) Option {
	return func(e *Engine) { e.manual = m }
}

func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// Engine owns the block sequence and all edit state
type Engine struct {
	blocks  []models.Block
	phase   Phase
	draft   *draft
	pending *FocusHandle
	menu    MenuState
	ready   bool
	seq     uint64

	onChange  ChangeFunc
	focuser   Focuser
	ids       IDSource
	anchor    AnchorFunc
	clipboard Clipboard
	manual    ManualCopier
	log       zerolog.Logger
}

// DefaultBlocks returns the sequence used when no initial blocks are given
func DefaultBlocks() []models.Block {
	return []models.Block{
		{ID: "default-title", Type: models.BlockTitle, Content: "Untitled"},
		{ID: "default-paragraph", Type: models.BlockParagraph, Content: ""},
	}
}

// New creates an engine holding a copy of initial, or the default blocks when
// initial is empty
func New(initial []models.Block, opts ...Option) *Engine {
	e := &Engine{
		ids: NewTimeIDs(),
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.blocks = initialSequence(initial)
	return e
}

func initialSequence(initial []models.Block) []models.Block {
	if len(initial) == 0 {
		return DefaultBlocks()
	}
	return models.CloneBlocks(initial)
}

// Reset replaces the whole sequence. Focus and the menu are dropped.
func (e *Engine) Reset(blocks []models.Block) {
	e.dropFocus()
	e.blocks = initialSequence(blocks)
	e.log.Debug().Int("blocks", len(e.blocks)).Msg("engine reset")
	e.notify()
}

// MarkReady allows editing. Before this only the static projection is shown.
func (e *Engine) MarkReady() {
	e.ready = true
}

func (e *Engine) Ready() bool {
	return e.ready
}

// Blocks returns a copy of the current sequence
func (e *Engine) Blocks() []models.Block {
	return models.CloneBlocks(e.blocks)
}

func (e *Engine) Len() int {
	return len(e.blocks)
}

// Block returns the committed block with the given id
func (e *Engine) Block(id string) (models.Block, bool) {
	if i := e.index(id); i >= 0 {
		return e.blocks[i], true
	}
	return models.Block{}, false
}

func (e *Engine) Phase() Phase {
	return e.phase
}

// Focused returns the id of the block holding edit focus
func (e *Engine) Focused() (string, bool) {
	switch e.phase {
	case PhaseEditing:
		return e.draft.blockID, true
	case PhaseCommitting:
		return e.pending.BlockID, true
	}
	return "", false
}

// Draft returns the uncommitted text of the focused block
func (e *Engine) Draft() (string, bool) {
	if e.draft == nil {
		return "", false
	}
	return e.draft.text, true
}

// Caret returns the caret byte offset inside the draft
func (e *Engine) Caret() int {
	if e.draft == nil {
		return 0
	}
	return e.draft.caret
}

func (e *Engine) Menu() MenuState {
	return e.menu
}

// Ordinal returns the display number of a numbered-list block: one plus the
// count of numbered-list blocks before it anywhere in the sequence.
// Other blocks get 0.
func (e *Engine) Ordinal(id string) int {
	n := 0
	for _, b := range e.blocks {
		if b.Type == models.BlockNumberedList {
			n++
		}
		if b.ID == id {
			if b.Type != models.BlockNumberedList {
				return 0
			}
			return n
		}
	}
	return 0
}

// Ordinals computes every numbered-list ordinal in one pass
func (e *Engine) Ordinals() map[string]int {
	return render.Ordinals(e.blocks)
}

// Update replaces a block's committed content. A live draft of that block is
// replaced too.
func (e *Engine) Update(id, content string) bool {
	i := e.index(id)
	if i < 0 {
		return false
	}
	e.blocks[i].Content = content
	if e.draft != nil && e.draft.blockID == id {
		e.draft = newDraft(id, content)
	}
	e.notify()
	return true
}

// InsertAfter places b right after the block afterID, appending when afterID
// is unknown. b gets a fresh id when its id is empty or taken. The inserted
// id is returned.
func (e *Engine) InsertAfter(afterID string, b models.Block) string {
	id := e.insertAfter(afterID, b)
	e.notify()
	return id
}

// Delete removes a block unless it is the only one left. Edit focus is
// cleared on every successful delete, whichever block had it.
func (e *Engine) Delete(id string) bool {
	e.settle()
	if len(e.blocks) <= 1 {
		return false
	}
	i := e.index(id)
	if i < 0 {
		return false
	}
	if e.draft != nil && e.draft.blockID != id {
		e.commitDraft()
	}
	e.blocks = append(e.blocks[:i], e.blocks[i+1:]...)
	e.dropFocus()
	e.log.Debug().Str("block", id).Msg("block deleted")
	e.notify()
	return true
}

// AddBlock appends an empty paragraph and moves focus to it
func (e *Engine) AddBlock() (FocusHandle, bool) {
	e.settle()
	if !e.ready {
		return FocusHandle{}, false
	}
	e.Blur()
	b := models.Block{ID: e.newID(), Type: models.BlockParagraph}
	e.blocks = append(e.blocks, b)
	h := e.beginCommit(b.ID)
	e.notify()
	return h, true
}

func (e *Engine) insertAfter(afterID string, b models.Block) string {
	if b.ID == "" || e.index(b.ID) >= 0 {
		b.ID = e.newID()
	}
	i := e.index(afterID)
	if i < 0 {
		e.blocks = append(e.blocks, b)
		return b.ID
	}
	e.blocks = append(e.blocks, models.Block{})
	copy(e.blocks[i+2:], e.blocks[i+1:])
	e.blocks[i+1] = b
	return b.ID
}

func (e *Engine) newID() string {
	for {
		id := e.ids.NewID()
		if e.index(id) < 0 {
			return id
		}
	}
}

func (e *Engine) index(id string) int {
	for i := range e.blocks {
		if e.blocks[i].ID == id {
			return i
		}
	}
	return -1
}

func (e *Engine) notify() {
	if e.onChange == nil {
		return
	}
	e.onChange(models.CloneBlocks(e.blocks))
}
