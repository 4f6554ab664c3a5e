package testhelpers

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pluqqy/blockpad/pkg/models"
)

// PageBuilder builds pages for tests
type PageBuilder struct {
	page models.Page
}

// NewPageBuilder starts a page with the given slug and no blocks
func NewPageBuilder(slug string) *PageBuilder {
	return &PageBuilder{page: models.Page{Slug: slug, Title: slug}}
}

func (b *PageBuilder) WithTitle(title string) *PageBuilder {
	b.page.Title = title
	return b
}

// WithBlock appends a block; an empty id becomes b<n>
func (b *PageBuilder) WithBlock(t models.BlockType, content string) *PageBuilder {
	id := fmt.Sprintf("b%d", len(b.page.Blocks)+1)
	b.page.Blocks = append(b.page.Blocks, models.Block{ID: id, Type: t, Content: content})
	return b
}

func (b *PageBuilder) Build() *models.Page {
	p := b.page
	p.Blocks = models.CloneBlocks(b.page.Blocks)
	return &p
}

// SequenceIDs hands out new-1, new-2, ...
type SequenceIDs struct {
	n int
}

func (s *SequenceIDs) NewID() string {
	s.n++
	return fmt.Sprintf("new-%d", s.n)
}

// Key messages

func KeyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func Key(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func AltKey(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t, Alt: true}
}

// Click is a left button press at a screen cell
func Click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{
		X:      x,
		Y:      y,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	}
}
