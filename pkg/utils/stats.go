package utils

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/pluqqy/blockpad/pkg/models"
)

// PageStats summarises the text held by a block sequence
type PageStats struct {
	Blocks     int `json:"blocks" yaml:"blocks"`
	Empty      int `json:"empty" yaml:"empty"`
	Words      int `json:"words" yaml:"words"`
	Characters int `json:"characters" yaml:"characters"`
	Tokens     int `json:"tokens" yaml:"tokens"`
}

// Stats counts words, user-perceived characters and estimated tokens across
// blocks. Dividers carry no text and are not counted as empty.
func Stats(blocks []models.Block) PageStats {
	s := PageStats{Blocks: len(blocks)}
	var all strings.Builder
	for _, b := range blocks {
		if b.Type == models.BlockDivider {
			continue
		}
		if b.Content == "" {
			s.Empty++
			continue
		}
		s.Words += len(strings.Fields(b.Content))
		s.Characters += uniseg.GraphemeClusterCount(b.Content)
		all.WriteString(b.Content)
		all.WriteString("\n")
	}
	s.Tokens = EstimateTokens(all.String())
	return s
}

// EstimateTokens gives a rough token count: the average of one token per four
// bytes and 1.3 tokens per word
func EstimateTokens(text string) int {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}

	byBytes := len(text) / 4
	byWords := int(float64(len(strings.Fields(text))) * 1.3)

	estimate := (byBytes + byWords) / 2
	if estimate < 1 {
		estimate = 1
	}
	return estimate
}

// FormatTokenCount formats the token count for display
func FormatTokenCount(tokens int) string {
	switch {
	case tokens < 1000:
		return fmt.Sprintf("~%d tokens", tokens)
	case tokens < 10000:
		return fmt.Sprintf("~%.1fK tokens", float64(tokens)/1000)
	default:
		return fmt.Sprintf("~%.0fK tokens", float64(tokens)/1000)
	}
}
