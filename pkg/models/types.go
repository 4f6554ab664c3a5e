package models

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// BlockType identifies how a block's content is interpreted and displayed
type BlockType string

const (
	BlockTitle        BlockType = "title"
	BlockParagraph    BlockType = "paragraph"
	BlockHeading      BlockType = "heading"
	BlockHeading2     BlockType = "heading2"
	BlockHeading3     BlockType = "heading3"
	BlockListItem     BlockType = "list-item"
	BlockBulletedList BlockType = "bulleted-list"
	BlockNumberedList BlockType = "numbered-list"
	BlockToDo         BlockType = "to-do"
	BlockQuote        BlockType = "quote"
	BlockCode         BlockType = "code"
	BlockDivider      BlockType = "divider"
)

// DividerContent is the fixed content carried by divider blocks
const DividerContent = "---"

// AllBlockTypes lists every valid block type
var AllBlockTypes = []BlockType{
	BlockTitle,
	BlockParagraph,
	BlockHeading,
	BlockHeading2,
	BlockHeading3,
	BlockListItem,
	BlockBulletedList,
	BlockNumberedList,
	BlockToDo,
	BlockQuote,
	BlockCode,
	BlockDivider,
}

var ErrInvalidBlock = errors.New("invalid block")

// Valid reports whether t is one of the known block types
func (t BlockType) Valid() bool {
	for _, known := range AllBlockTypes {
		if t == known {
			return true
		}
	}
	return false
}

// IsList reports whether Enter on a block of this type continues the list.
// list-item is rendered like a bullet but does not continue.
func (t BlockType) IsList() bool {
	switch t {
	case BlockBulletedList, BlockNumberedList, BlockToDo:
		return true
	}
	return false
}

// Block is the atomic unit of page content
type Block struct {
	ID      string    `yaml:"id" json:"id"`
	Type    BlockType `yaml:"type" json:"type"`
	Content string    `yaml:"content" json:"content"`
}

// Validate checks the block has an id and a known type
func (b Block) Validate() error {
	err := validation.ValidateStruct(&b,
		validation.Field(&b.ID, validation.Required),
		validation.Field(&b.Type, validation.Required, validation.By(func(value interface{}) error {
			if t, _ := value.(BlockType); !t.Valid() {
				return fmt.Errorf("unknown block type %q", value)
			}
			return nil
		})),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBlock, err)
	}
	return nil
}

// Page is an ordered block sequence with the chrome shown above it
type Page struct {
	Slug       string  `yaml:"slug" json:"slug"`
	Title      string  `yaml:"title" json:"title"`
	Icon       string  `yaml:"icon,omitempty" json:"icon,omitempty"`
	LastEdited string  `yaml:"last_edited,omitempty" json:"last_edited,omitempty"`
	Blocks     []Block `yaml:"blocks" json:"blocks"`
}

// Validate checks every block and that block ids are unique
func (p *Page) Validate() error {
	seen := make(map[string]struct{}, len(p.Blocks))
	for i, b := range p.Blocks {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("block %d: %w", i, err)
		}
		if _, dup := seen[b.ID]; dup {
			return fmt.Errorf("%w: duplicate id %q", ErrInvalidBlock, b.ID)
		}
		seen[b.ID] = struct{}{}
	}
	return nil
}

// DisplayTitle returns the title prefixed with the page icon
func (p *Page) DisplayTitle() string {
	return strings.TrimSpace(p.Icon + " " + p.Title)
}

// CloneBlocks returns a copy of blocks that shares no backing array
func CloneBlocks(blocks []Block) []Block {
	if blocks == nil {
		return nil
	}
	out := make([]Block, len(blocks))
	copy(out, blocks)
	return out
}
