package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

// PlainText renders a projection as wrapped plain text. width <= 0 disables
// wrapping.
func PlainText(p Presentation, width int) string {
	if p.Marker.Kind == MarkerRule {
		if width <= 0 {
			width = 40
		}
		return strings.Repeat("─", width)
	}

	text := p.Text
	if p.Empty() {
		text = p.Placeholder
	}

	prefix := Prefix(p)
	hang := uint(runewidth.StringWidth(prefix))
	if width > 0 && width > int(hang) {
		text = wordwrap.String(text, width-int(hang))
	}
	if hang == 0 {
		return text
	}
	body := indent.String(text, hang)
	return prefix + strings.TrimPrefix(body, strings.Repeat(" ", int(hang)))
}

// PlainPage renders a sequence of projections separated by newlines
func PlainPage(ps []Presentation, width int) string {
	lines := make([]string, 0, len(ps))
	for _, p := range ps {
		lines = append(lines, PlainText(p, width))
	}
	return strings.Join(lines, "\n")
}

// Prefix is the text drawn before a block's first line: the marker followed
// by a space, or the quote bar or code indent
func Prefix(p Presentation) string {
	switch p.Marker.Kind {
	case MarkerBullet, MarkerOrdinal, MarkerCheckbox:
		return p.Marker.Text + " "
	}
	switch p.Class {
	case "quote":
		return "│ "
	case "code":
		return "    "
	}
	return ""
}
