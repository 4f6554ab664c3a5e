package editor

import (
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// draft holds the uncommitted text of the focused block.
// caret is a byte offset that always sits on a grapheme cluster boundary.
type draft struct {
	blockID string
	text    string
	caret   int
}

func newDraft(blockID, text string) *draft {
	return &draft{blockID: blockID, text: text, caret: len(text)}
}

func (d *draft) beforeCaret() string {
	return d.text[:d.caret]
}

func (d *draft) insert(s string) {
	d.text = d.text[:d.caret] + s + d.text[d.caret:]
	d.caret += len(s)
}

// backspace removes the grapheme cluster before the caret
func (d *draft) backspace() bool {
	start := d.prevBoundary()
	if start == d.caret {
		return false
	}
	d.text = d.text[:start] + d.text[d.caret:]
	d.caret = start
	return true
}

func (d *draft) left() {
	d.caret = d.prevBoundary()
}

func (d *draft) right() {
	if d.caret >= len(d.text) {
		return
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(d.text[d.caret:], -1)
	d.caret += len(cluster)
}

// home moves to the start of the caret's line
func (d *draft) home() {
	d.caret = strings.LastIndexByte(d.text[:d.caret], '\n') + 1
}

// end moves to the end of the caret's line
func (d *draft) end() {
	if i := strings.IndexByte(d.text[d.caret:], '\n'); i >= 0 {
		d.caret += i
		return
	}
	d.caret = len(d.text)
}

func (d *draft) prevBoundary() int {
	if d.caret == 0 {
		return 0
	}
	before := d.text[:d.caret]
	last := 0
	g := uniseg.NewGraphemes(before)
	for g.Next() {
		last, _ = g.Positions()
	}
	return last
}

// caretColumn returns the caret's rune column within its line
func (d *draft) caretColumn() (line, col int) {
	before := d.beforeCaret()
	line = strings.Count(before, "\n")
	col = utf8.RuneCountInString(before[strings.LastIndexByte(before, '\n')+1:])
	return line, col
}
