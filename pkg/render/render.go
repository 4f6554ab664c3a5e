// Package render projects blocks into presentation attributes. It knows
// nothing about the terminal; pkg/tui maps the attributes to styles.
package render

import (
	"strconv"

	"github.com/pluqqy/blockpad/pkg/models"
)

// MarkerKind is the leading affordance of a block
type MarkerKind int

const (
	MarkerNone MarkerKind = iota
	MarkerBullet
	MarkerOrdinal
	MarkerCheckbox
	MarkerRule
)

// Marker is the leading glyph drawn before a block's text
type Marker struct {
	Kind MarkerKind
	Text string
}

// Action is a hover-revealed block affordance
type Action string

const (
	ActionDrag   Action = "drag"
	ActionCopy   Action = "copy"
	ActionDelete Action = "delete"
)

// HoverActions are shown in this order while a block is hovered or edited
var HoverActions = []Action{ActionDrag, ActionCopy, ActionDelete}

// DefaultPlaceholder is shown for blocks with no content
const DefaultPlaceholder = "Type '/' for commands"

// Presentation describes how one block is drawn
type Presentation struct {
	BlockID     string
	Type        models.BlockType
	Marker      Marker
	Class       string
	Text        string
	Placeholder string
	HasText     bool // false for dividers, which draw only their rule
	Interactive bool
	Editing     bool
	Hovered     bool
	Actions     []Action
}

// Empty reports whether the placeholder is drawn in place of text
func (p Presentation) Empty() bool {
	return p.HasText && p.Text == ""
}

// Present projects a block for the interactive editor. ordinal is the
// numbered-list display number and is ignored for other types.
func Present(b models.Block, ordinal int, isEditing, isHovered bool) Presentation {
	p := project(b, ordinal)
	p.Interactive = true
	p.Editing = isEditing
	p.Hovered = isHovered
	if isEditing || isHovered {
		p.Actions = HoverActions
	}
	return p
}

// Static projects a block for display before the editor accepts input.
// It matches Present apart from interactivity.
func Static(b models.Block, ordinal int) Presentation {
	return project(b, ordinal)
}

func project(b models.Block, ordinal int) Presentation {
	p := Presentation{
		BlockID:     b.ID,
		Type:        b.Type,
		Marker:      MarkerFor(b.Type, ordinal),
		Class:       ClassFor(b.Type),
		Text:        b.Content,
		Placeholder: DefaultPlaceholder,
		HasText:     b.Type != models.BlockDivider,
	}
	if !p.HasText {
		p.Text = ""
		p.Placeholder = ""
	}
	return p
}

// MarkerFor returns the leading marker for a block type
func MarkerFor(t models.BlockType, ordinal int) Marker {
	switch t {
	case models.BlockBulletedList, models.BlockListItem:
		return Marker{Kind: MarkerBullet, Text: "•"}
	case models.BlockNumberedList:
		if ordinal < 1 {
			ordinal = 1
		}
		return Marker{Kind: MarkerOrdinal, Text: strconv.Itoa(ordinal) + "."}
	case models.BlockToDo:
		return Marker{Kind: MarkerCheckbox, Text: "[ ]"}
	case models.BlockDivider:
		return Marker{Kind: MarkerRule}
	}
	return Marker{}
}

// ClassFor returns the text style class for a block type
func ClassFor(t models.BlockType) string {
	switch t {
	case models.BlockTitle:
		return "title"
	case models.BlockHeading:
		return "heading-1"
	case models.BlockHeading2:
		return "heading-2"
	case models.BlockHeading3:
		return "heading-3"
	case models.BlockBulletedList, models.BlockNumberedList, models.BlockListItem, models.BlockToDo:
		return "list"
	case models.BlockQuote:
		return "quote"
	case models.BlockCode:
		return "code"
	case models.BlockDivider:
		return "divider"
	case models.BlockParagraph:
		return "text"
	}
	return "default"
}

// Ordinals numbers the numbered-list blocks of a sequence
func Ordinals(blocks []models.Block) map[string]int {
	out := make(map[string]int)
	n := 0
	for _, b := range blocks {
		if b.Type == models.BlockNumberedList {
			n++
			out[b.ID] = n
		}
	}
	return out
}

// StaticPage projects a whole sequence with ordinals computed once
func StaticPage(blocks []models.Block) []Presentation {
	ordinals := Ordinals(blocks)
	out := make([]Presentation, len(blocks))
	for i, b := range blocks {
		out[i] = Static(b, ordinals[b.ID])
	}
	return out
}
