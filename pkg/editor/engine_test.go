package editor

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/pluqqy/blockpad/pkg/models"
)

type recordingFocuser struct {
	requests []FocusHandle
	releases int
}

func (f *recordingFocuser) RequestFocus(h FocusHandle) { f.requests = append(f.requests, h) }
func (f *recordingFocuser) ReleaseFocus()              { f.releases++ }

type sequenceIDs struct{ n int }

func (s *sequenceIDs) NewID() string {
	s.n++
	return fmt.Sprintf("new-%d", s.n)
}

type changeLog struct {
	calls [][]models.Block
}

func (c *changeLog) record(blocks []models.Block) { c.calls = append(c.calls, blocks) }

func (c *changeLog) last() []models.Block {
	if len(c.calls) == 0 {
		return nil
	}
	return c.calls[len(c.calls)-1]
}

func sampleBlocks() []models.Block {
	return []models.Block{
		{ID: "t", Type: models.BlockTitle, Content: "Notes"},
		{ID: "p1", Type: models.BlockParagraph, Content: "hello"},
		{ID: "b1", Type: models.BlockBulletedList, Content: "one"},
		{ID: "p2", Type: models.BlockParagraph, Content: "bye"},
	}
}

func newTestEngine(t *testing.T, blocks []models.Block) (*Engine, *changeLog, *recordingFocuser) {
	t.Helper()
	changes := &changeLog{}
	focuser := &recordingFocuser{}
	e := New(blocks,
		WithChangeHandler(changes.record),
		WithFocuser(focuser),
		WithIDSource(&sequenceIDs{}),
	)
	e.MarkReady()
	return e, changes, focuser
}

func ids(blocks []models.Block) []string {
	out := make([]string, len(blocks))
	for i, b := range blocks {
		out[i] = b.ID
	}
	return out
}

func TestNew_DefaultBlocks(t *testing.T) {
	for _, initial := range [][]models.Block{nil, {}} {
		e := New(initial)
		got := e.Blocks()
		if len(got) != 2 {
			t.Fatalf("len = %d, want 2", len(got))
		}
		if got[0].Type != models.BlockTitle || got[0].Content != "Untitled" {
			t.Errorf("first block = %+v, want title Untitled", got[0])
		}
		if got[1].Type != models.BlockParagraph || got[1].Content != "" {
			t.Errorf("second block = %+v, want empty paragraph", got[1])
		}
	}
}

func TestNew_CopiesInitialBlocks(t *testing.T) {
	initial := sampleBlocks()
	e := New(initial)
	initial[0].Content = "changed"
	if b, _ := e.Block("t"); b.Content != "Notes" {
		t.Errorf("engine shares caller slice: content = %q", b.Content)
	}
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantIDs []string
		wantOK  bool
	}{
		{name: "first", id: "t", wantIDs: []string{"p1", "b1", "p2"}, wantOK: true},
		{name: "middle", id: "b1", wantIDs: []string{"t", "p1", "p2"}, wantOK: true},
		{name: "last", id: "p2", wantIDs: []string{"t", "p1", "b1"}, wantOK: true},
		{name: "unknown", id: "nope", wantIDs: []string{"t", "p1", "b1", "p2"}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, changes, _ := newTestEngine(t, sampleBlocks())
			if ok := e.Delete(tt.id); ok != tt.wantOK {
				t.Fatalf("Delete() = %v, want %v", ok, tt.wantOK)
			}
			if got := ids(e.Blocks()); !reflect.DeepEqual(got, tt.wantIDs) {
				t.Errorf("ids = %v, want %v", got, tt.wantIDs)
			}
			if tt.wantOK && !reflect.DeepEqual(ids(changes.last()), tt.wantIDs) {
				t.Errorf("change notification = %v, want %v", ids(changes.last()), tt.wantIDs)
			}
		})
	}
}

func TestDelete_LastBlockIsNoop(t *testing.T) {
	e, changes, _ := newTestEngine(t, []models.Block{{ID: "only", Type: models.BlockParagraph, Content: "keep"}})
	e.BeginEdit("only")

	if e.Delete("only") {
		t.Fatal("Delete() of sole block returned true")
	}
	if e.Len() != 1 {
		t.Fatalf("len = %d, want 1", e.Len())
	}
	if b, _ := e.Block("only"); b.Content != "keep" {
		t.Errorf("content = %q, want keep", b.Content)
	}
	if len(changes.calls) != 0 {
		t.Errorf("got %d notifications, want none", len(changes.calls))
	}
	if _, ok := e.Focused(); !ok {
		t.Error("refused delete should not clear focus")
	}
}

func TestDelete_ClearsFocusOfOtherBlock(t *testing.T) {
	e, _, focuser := newTestEngine(t, sampleBlocks())
	e.BeginEdit("p1")
	e.InsertText(" world")

	e.Delete("p2")

	if _, ok := e.Focused(); ok {
		t.Error("focus should be cleared after deleting any block")
	}
	if b, _ := e.Block("p1"); b.Content != "hello world" {
		t.Errorf("surviving draft not committed: %q", b.Content)
	}
	if focuser.releases != 1 {
		t.Errorf("releases = %d, want 1", focuser.releases)
	}
}

func TestApplyCommand_TransformsBlock(t *testing.T) {
	e, changes, _ := newTestEngine(t, sampleBlocks())
	e.Update("p1", "abc/heading")
	e.BeginEdit("p1")
	e.menu = MenuState{Open: true, BlockID: "p1"}

	if !e.SelectCommand(CommandIndex(models.BlockHeading)) {
		t.Fatal("SelectCommand() = false")
	}

	b, _ := e.Block("p1")
	if b.Type != models.BlockHeading || b.Content != "abc" {
		t.Errorf("block = %+v, want heading abc", b)
	}
	if e.Menu().Open {
		t.Error("menu still open")
	}
	if id, ok := e.Focused(); !ok || id != "p1" {
		t.Errorf("focus = %q,%v, want p1", id, ok)
	}
	if d, _ := e.Draft(); d != "abc" || e.Caret() != len("abc") {
		t.Errorf("draft = %q caret %d", d, e.Caret())
	}
	if got := changes.last()[1]; got.Type != models.BlockHeading {
		t.Errorf("notified type = %s", got.Type)
	}
}

func TestApplyCommand_Divider(t *testing.T) {
	e, _, _ := newTestEngine(t, sampleBlocks())
	e.Update("p1", "abc/divider")
	e.BeginEdit("p1")
	e.menu = MenuState{Open: true, BlockID: "p1"}

	e.SelectCommand(CommandIndex(models.BlockDivider))

	blocks := e.Blocks()
	if len(blocks) != 5 {
		t.Fatalf("len = %d, want 5", len(blocks))
	}
	if blocks[1].ID != "p1" || blocks[1].Type != models.BlockParagraph || blocks[1].Content != "abc/divider" {
		t.Errorf("current block changed: %+v", blocks[1])
	}
	if blocks[2].Type != models.BlockDivider || blocks[2].Content != models.DividerContent {
		t.Errorf("inserted block = %+v, want divider", blocks[2])
	}
	if id, _ := e.Focused(); id != "p1" {
		t.Errorf("focus moved to %q", id)
	}
}

func TestSlashTyped_FromStartOfText(t *testing.T) {
	e, _, _ := newTestEngine(t, sampleBlocks())
	e.Update("p1", "abc ")
	e.BeginEdit("p1")
	e.InsertText("/")
	if !e.Menu().Open || e.Menu().BlockID != "p1" || e.Menu().Selected != 0 {
		t.Fatalf("menu = %+v, want open on p1 at 0", e.Menu())
	}
	e.InsertText("quo")
	e.MenuDown()
	if !e.Menu().Open {
		t.Fatal("menu closed while typing query")
	}

	e.Enter(false)

	b, _ := e.Block("p1")
	if b.Type != models.BlockHeading || b.Content != "abc " {
		t.Errorf("block = %+v, want heading %q", b, "abc ")
	}
	if e.Len() != 4 {
		t.Errorf("Enter with menu open must not split, len = %d", e.Len())
	}
}

func TestMenuTrigger(t *testing.T) {
	tests := []struct {
		before string
		want   triggerAction
	}{
		{"/", triggerOpen},
		{"hello /", triggerOpen},
		{"line\n/", triggerOpen},
		{"3/", triggerKeep},
		{"3/4", triggerClose},
		{"/head", triggerKeep},
		{"x /head", triggerKeep},
		{"/head ", triggerClose},
		{"/head\nx", triggerClose},
		{"", triggerClose},
		{"plain", triggerClose},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.before), func(t *testing.T) {
			if got := menuTrigger(tt.before); got != tt.want {
				t.Errorf("menuTrigger(%q) = %d, want %d", tt.before, got, tt.want)
			}
		})
	}
}

func TestSlashMidWordDoesNotOpen(t *testing.T) {
	e, _, _ := newTestEngine(t, sampleBlocks())
	e.BeginEdit("p1")
	for _, r := range " 3/4" {
		e.InsertText(string(r))
		if e.Menu().Open {
			t.Fatalf("menu opened after typing %q", string(r))
		}
	}
}

func TestMenuCloses_WhenTokenEnds(t *testing.T) {
	e, _, _ := newTestEngine(t, sampleBlocks())
	e.BeginEdit("p2")
	e.InsertText(" /")
	e.InsertText("co")
	if !e.Menu().Open {
		t.Fatal("menu not open")
	}
	e.InsertText(" ")
	if e.Menu().Open {
		t.Error("menu should close once the token is spaced")
	}
}

func TestMenuCloses_WhenCaretLeavesToken(t *testing.T) {
	tests := []struct {
		name     string
		move     func(e *Engine)
		wantOpen bool
	}{
		{name: "home", move: (*Engine).MoveHome, wantOpen: false},
		{name: "left inside token", move: (*Engine).MoveLeft, wantOpen: true},
		{name: "left to just after slash", move: func(e *Engine) { e.MoveLeft(); e.MoveLeft() }, wantOpen: true},
		{name: "left past slash", move: func(e *Engine) { e.MoveLeft(); e.MoveLeft(); e.MoveLeft() }, wantOpen: false},
		{name: "end stays in token", move: (*Engine).MoveEnd, wantOpen: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _, _ := newTestEngine(t, sampleBlocks())
			e.BeginEdit("p2")
			e.InsertText(" /")
			e.InsertText("he")
			if !e.Menu().Open {
				t.Fatal("menu not open")
			}

			tt.move(e)
			if got := e.Menu().Open; got != tt.wantOpen {
				t.Errorf("menu open = %v, want %v", got, tt.wantOpen)
			}
		})
	}
}

func TestMenuStaysClosed_AfterCaretReturns(t *testing.T) {
	e, _, _ := newTestEngine(t, sampleBlocks())
	e.BeginEdit("p2")
	e.InsertText(" /")
	e.InsertText("h")
	e.MoveHome()
	e.MoveEnd()
	if e.Menu().Open {
		t.Fatal("moving the caret must not reopen the menu")
	}

	// Enter splits rather than applying a command
	if _, split := e.Enter(false); !split {
		t.Fatal("expected a split")
	}
	b, _ := e.Block("p2")
	if b.Type != models.BlockParagraph || b.Content != "bye /h" {
		t.Errorf("block = %+v, want paragraph %q", b, "bye /h")
	}
}

func TestInsertText_NormalizesLineEndings(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a\r\nb", "helloa\nb"},
		{"a\rb", "helloa\nb"},
		{"\r\r\n", "hello\n\n"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.in), func(t *testing.T) {
			e, _, _ := newTestEngine(t, sampleBlocks())
			e.BeginEdit("p1")
			e.InsertText(tt.in)
			if got, _ := e.Draft(); got != tt.want {
				t.Errorf("draft = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMenuNavigationWraps(t *testing.T) {
	e, _, _ := newTestEngine(t, sampleBlocks())
	e.BeginEdit("p1")
	e.InsertText(" /")

	e.MenuUp()
	if got := e.Menu().Selected; got != len(Commands)-1 {
		t.Errorf("Up from 0 = %d, want %d", got, len(Commands)-1)
	}
	e.MenuDown()
	if got := e.Menu().Selected; got != 0 {
		t.Errorf("Down from last = %d, want 0", got)
	}
	if len(Commands) != 10 {
		t.Errorf("catalog has %d commands, want 10", len(Commands))
	}
}

func TestBackspaceAfterSlash_ClosesWithoutReopening(t *testing.T) {
	e, _, _ := newTestEngine(t, []models.Block{{ID: "a", Type: models.BlockParagraph}})
	e.BeginEdit("a")
	e.InsertText("/")
	e.InsertText("/")
	if !e.Menu().Open {
		t.Fatal("menu not open")
	}

	e.Backspace()

	if e.Menu().Open {
		t.Error("menu reopened after backspace")
	}
	if d, _ := e.Draft(); d != "/" {
		t.Errorf("draft = %q, want %q", d, "/")
	}
}

func TestEnter_SplitsParagraph(t *testing.T) {
	e, changes, focuser := newTestEngine(t, []models.Block{{ID: "p", Type: models.BlockParagraph, Content: "hel"}})
	e.BeginEdit("p")
	e.InsertText("lo")

	h, ok := e.Enter(false)
	if !ok {
		t.Fatal("Enter() did not split")
	}

	blocks := e.Blocks()
	if len(blocks) != 2 {
		t.Fatalf("len = %d, want 2", len(blocks))
	}
	if blocks[0].Content != "hello" {
		t.Errorf("old block = %q, want hello", blocks[0].Content)
	}
	if blocks[1].Type != models.BlockParagraph || blocks[1].Content != "" || blocks[1].ID != h.BlockID {
		t.Errorf("new block = %+v, handle %+v", blocks[1], h)
	}
	if e.Phase() != PhaseCommitting {
		t.Errorf("phase = %s, want committing", e.Phase())
	}
	if id, _ := e.Focused(); id != h.BlockID {
		t.Errorf("focused = %q, want %q", id, h.BlockID)
	}
	if last := focuser.requests[len(focuser.requests)-1]; last != h {
		t.Errorf("focus request %+v, want %+v", last, h)
	}
	if len(changes.calls) != 1 {
		t.Errorf("notifications = %d, want 1", len(changes.calls))
	}

	if !e.ConfirmFocus(h) {
		t.Fatal("ConfirmFocus() = false")
	}
	if e.Phase() != PhaseEditing {
		t.Errorf("phase = %s, want editing", e.Phase())
	}
	if e.ConfirmFocus(h) {
		t.Error("second ConfirmFocus() should be ignored")
	}
	if b, _ := e.Block("p"); b.Content != "hello" {
		t.Errorf("old block overwritten: %q", b.Content)
	}
}

func TestEnter_ListBehaviour(t *testing.T) {
	tests := []struct {
		name      string
		blockType models.BlockType
		content   string
		wantLen   int
		wantType  models.BlockType
		wantNext  models.BlockType
		wantFocus bool
	}{
		{name: "empty bullet breaks out", blockType: models.BlockBulletedList, content: "", wantLen: 1, wantType: models.BlockParagraph},
		{name: "whitespace to-do breaks out", blockType: models.BlockToDo, content: "  ", wantLen: 1, wantType: models.BlockParagraph},
		{name: "empty numbered breaks out", blockType: models.BlockNumberedList, content: "", wantLen: 1, wantType: models.BlockParagraph},
		{name: "bullet continues", blockType: models.BlockBulletedList, content: "milk", wantLen: 2, wantType: models.BlockBulletedList, wantNext: models.BlockBulletedList, wantFocus: true},
		{name: "to-do continues", blockType: models.BlockToDo, content: "call", wantLen: 2, wantType: models.BlockToDo, wantNext: models.BlockToDo, wantFocus: true},
		{name: "heading becomes paragraph", blockType: models.BlockHeading, content: "Intro", wantLen: 2, wantType: models.BlockHeading, wantNext: models.BlockParagraph, wantFocus: true},
		{name: "empty list-item splits", blockType: models.BlockListItem, content: "", wantLen: 2, wantType: models.BlockListItem, wantNext: models.BlockParagraph, wantFocus: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _, _ := newTestEngine(t, []models.Block{{ID: "x", Type: tt.blockType, Content: tt.content}})
			e.BeginEdit("x")
			e.Enter(false)

			blocks := e.Blocks()
			if len(blocks) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(blocks), tt.wantLen)
			}
			if blocks[0].Type != tt.wantType {
				t.Errorf("type = %s, want %s", blocks[0].Type, tt.wantType)
			}
			if tt.wantLen == 2 && blocks[1].Type != tt.wantNext {
				t.Errorf("next type = %s, want %s", blocks[1].Type, tt.wantNext)
			}
			if _, ok := e.Focused(); ok != tt.wantFocus {
				t.Errorf("focused = %v, want %v", ok, tt.wantFocus)
			}
			if tt.wantLen == 1 && blocks[0].Content != "" {
				t.Errorf("break-out content = %q", blocks[0].Content)
			}
		})
	}
}

func TestEnter_LineBreak(t *testing.T) {
	e, _, _ := newTestEngine(t, sampleBlocks())
	e.BeginEdit("p1")
	e.Enter(true)
	e.InsertText("there")

	if e.Len() != 4 {
		t.Errorf("line break split the block, len = %d", e.Len())
	}
	if d, _ := e.Draft(); d != "hello\nthere" {
		t.Errorf("draft = %q", d)
	}
}

func TestCommitting_SettlesBeforeInput(t *testing.T) {
	e, _, _ := newTestEngine(t, []models.Block{{ID: "p", Type: models.BlockParagraph, Content: "a"}})
	e.BeginEdit("p")
	h, _ := e.Enter(false)

	e.InsertText("b")

	if e.Phase() != PhaseEditing {
		t.Fatalf("phase = %s", e.Phase())
	}
	e.Blur()
	if b, _ := e.Block(h.BlockID); b.Content != "b" {
		t.Errorf("new block = %q, want b", b.Content)
	}
	if b, _ := e.Block("p"); b.Content != "a" {
		t.Errorf("old block = %q, want a", b.Content)
	}
}

func TestEscape(t *testing.T) {
	e, changes, _ := newTestEngine(t, sampleBlocks())
	e.BeginEdit("p1")
	e.InsertText(" /")

	e.Escape()
	if e.Menu().Open {
		t.Fatal("first Escape should close the menu")
	}
	if _, ok := e.Focused(); !ok {
		t.Fatal("first Escape should keep focus")
	}

	e.Escape()
	if _, ok := e.Focused(); ok {
		t.Error("second Escape should leave edit focus")
	}
	if b, _ := e.Block("p1"); b.Content != "hello" {
		t.Errorf("draft not discarded: %q", b.Content)
	}
	if len(changes.calls) != 0 {
		t.Errorf("notifications = %d, want 0", len(changes.calls))
	}
}

func TestBlur_Commits(t *testing.T) {
	e, changes, _ := newTestEngine(t, sampleBlocks())
	e.BeginEdit("p1")
	e.InsertText("!")
	e.InsertText(" /")

	e.Blur()

	if b, _ := e.Block("p1"); b.Content != "hello! /" {
		t.Errorf("content = %q", b.Content)
	}
	if e.Menu().Open {
		t.Error("menu open after blur")
	}
	if len(changes.calls) != 1 {
		t.Errorf("notifications = %d, want 1", len(changes.calls))
	}

	e.BeginEdit("p1")
	e.Blur()
	if len(changes.calls) != 1 {
		t.Error("unchanged blur should not notify")
	}
}

func TestBeginEdit_SwitchCommitsPrevious(t *testing.T) {
	e, _, _ := newTestEngine(t, sampleBlocks())
	e.BeginEdit("p1")
	e.InsertText("!")
	e.BeginEdit("p2")

	if b, _ := e.Block("p1"); b.Content != "hello!" {
		t.Errorf("p1 = %q", b.Content)
	}
	if id, _ := e.Focused(); id != "p2" {
		t.Errorf("focused = %q", id)
	}
}

func TestBeginEdit_RefusedBeforeReady(t *testing.T) {
	e := New(sampleBlocks())
	if e.BeginEdit("p1") {
		t.Fatal("BeginEdit() before MarkReady should fail")
	}
	if _, ok := e.AddBlock(); ok {
		t.Fatal("AddBlock() before MarkReady should fail")
	}
	e.MarkReady()
	if !e.BeginEdit("p1") {
		t.Fatal("BeginEdit() after MarkReady failed")
	}
}

func TestOrdinals(t *testing.T) {
	blocks := []models.Block{
		{ID: "a", Type: models.BlockParagraph},
		{ID: "b", Type: models.BlockNumberedList},
		{ID: "c", Type: models.BlockHeading},
		{ID: "d", Type: models.BlockNumberedList},
		{ID: "e", Type: models.BlockNumberedList},
	}
	e := New(blocks)

	want := map[string]int{"b": 1, "d": 2, "e": 3}
	if got := e.Ordinals(); !reflect.DeepEqual(got, want) {
		t.Errorf("Ordinals() = %v, want %v", got, want)
	}
	for id, n := range want {
		if got := e.Ordinal(id); got != n {
			t.Errorf("Ordinal(%s) = %d, want %d", id, got, n)
		}
	}
	if got := e.Ordinal("a"); got != 0 {
		t.Errorf("Ordinal of paragraph = %d, want 0", got)
	}
}

func TestInsertAfter(t *testing.T) {
	e, _, _ := newTestEngine(t, sampleBlocks())

	id := e.InsertAfter("p1", models.Block{Type: models.BlockQuote, Content: "q"})
	if got := ids(e.Blocks()); !reflect.DeepEqual(got, []string{"t", "p1", id, "b1", "p2"}) {
		t.Errorf("ids = %v", got)
	}

	dup := e.InsertAfter("missing", models.Block{ID: "t", Type: models.BlockCode})
	if dup == "t" {
		t.Error("colliding id was kept")
	}
	blocks := e.Blocks()
	if blocks[len(blocks)-1].ID != dup {
		t.Errorf("unknown anchor should append, last = %s", blocks[len(blocks)-1].ID)
	}
}

func TestUpdate(t *testing.T) {
	e, changes, _ := newTestEngine(t, sampleBlocks())
	if e.Update("missing", "x") {
		t.Error("Update() of unknown id returned true")
	}
	if len(changes.calls) != 0 {
		t.Error("unknown update notified")
	}

	e.BeginEdit("p2")
	e.Update("p2", "external")
	if d, _ := e.Draft(); d != "external" {
		t.Errorf("draft = %q, want external", d)
	}
}

func TestReset(t *testing.T) {
	e, changes, _ := newTestEngine(t, sampleBlocks())
	e.BeginEdit("p1")
	e.InsertText(" /")

	e.Reset([]models.Block{{ID: "z", Type: models.BlockCode, Content: "x"}})

	if got := ids(e.Blocks()); !reflect.DeepEqual(got, []string{"z"}) {
		t.Errorf("ids = %v", got)
	}
	if _, ok := e.Focused(); ok || e.Menu().Open {
		t.Error("reset should drop focus and menu")
	}
	if len(changes.calls) != 1 {
		t.Errorf("notifications = %d", len(changes.calls))
	}

	e.Reset(nil)
	if e.Len() != 2 {
		t.Errorf("reset with nothing should restore defaults, len = %d", e.Len())
	}
}

func TestAddBlock(t *testing.T) {
	e, _, _ := newTestEngine(t, sampleBlocks())
	e.BeginEdit("p1")
	e.InsertText("?")

	h, ok := e.AddBlock()
	if !ok {
		t.Fatal("AddBlock() = false")
	}
	blocks := e.Blocks()
	if last := blocks[len(blocks)-1]; last.ID != h.BlockID || last.Type != models.BlockParagraph {
		t.Errorf("last = %+v", last)
	}
	if b, _ := e.Block("p1"); b.Content != "hello?" {
		t.Errorf("previous draft lost: %q", b.Content)
	}
	e.ConfirmFocus(h)
	if id, _ := e.Focused(); id != h.BlockID {
		t.Errorf("focused = %q", id)
	}
}

func TestBackspace_Grapheme(t *testing.T) {
	e, _, _ := newTestEngine(t, []models.Block{{ID: "a", Type: models.BlockParagraph, Content: "café"}})
	e.BeginEdit("a")
	e.Backspace()
	if d, _ := e.Draft(); d != "caf" {
		t.Errorf("draft = %q, want caf", d)
	}
	e.MoveHome()
	e.MoveRight()
	e.InsertText("h")
	if d, _ := e.Draft(); d != "chaf" {
		t.Errorf("draft = %q, want chaf", d)
	}
	e.MoveEnd()
	e.MoveLeft()
	e.Backspace()
	if d, _ := e.Draft(); d != "chf" {
		t.Errorf("draft = %q, want chf", d)
	}
}

type fakeClipboard struct {
	err  error
	text string
}

func (c *fakeClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

type fakeManual struct{ text string }

func (m *fakeManual) SelectForCopy(text string) { m.text = text }

func TestCopy(t *testing.T) {
	tests := []struct {
		name      string
		clipErr   error
		withClip  bool
		withMan   bool
		id        string
		want      CopyResult
		wantClip  string
		wantManual string
	}{
		{name: "clipboard", withClip: true, withMan: true, id: "p1", want: CopyClipboard, wantClip: "hello"},
		{name: "fallback", withClip: true, clipErr: errors.New("no display"), withMan: true, id: "p1", want: CopyManual, wantManual: "hello"},
		{name: "no clipboard", withMan: true, id: "p1", want: CopyManual, wantManual: "hello"},
		{name: "nothing", id: "p1", want: CopyUnavailable},
		{name: "missing", withClip: true, id: "zz", want: CopyNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clip := &fakeClipboard{err: tt.clipErr}
			man := &fakeManual{}
			var opts []Option
			if tt.withClip {
				opts = append(opts, WithClipboard(clip))
			}
			if tt.withMan {
				opts = append(opts, WithManualCopier(man))
			}
			e := New(sampleBlocks(), opts...)

			if got := e.Copy(tt.id); got != tt.want {
				t.Errorf("Copy() = %s, want %s", got, tt.want)
			}
			if clip.text != tt.wantClip {
				t.Errorf("clipboard = %q, want %q", clip.text, tt.wantClip)
			}
			if man.text != tt.wantManual {
				t.Errorf("manual = %q, want %q", man.text, tt.wantManual)
			}
		})
	}
}

func TestTimeIDs_Monotonic(t *testing.T) {
	fixed := time.Unix(1700000000, 0)
	src := &TimeIDs{Now: func() time.Time { return fixed }}
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := src.NewID()
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}

func TestAnchorResolver(t *testing.T) {
	var gotLine, gotCol int
	e := New([]models.Block{{ID: "a", Type: models.BlockParagraph, Content: "ab\nc"}},
		WithAnchor(func(id string, line, col int) Point {
			gotLine, gotCol = line, col
			return Point{X: col, Y: line + 10}
		}))
	e.MarkReady()
	e.BeginEdit("a")
	e.InsertText(" /")

	if gotLine != 1 || gotCol != 3 {
		t.Errorf("anchor called with line %d col %d, want 1 3", gotLine, gotCol)
	}
	if e.Menu().Anchor != (Point{X: 3, Y: 11}) {
		t.Errorf("anchor = %+v", e.Menu().Anchor)
	}
}
