package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pluqqy/blockpad/pkg/tui/testhelpers"
)

func TestConfirmation(t *testing.T) {
	tests := []struct {
		name          string
		key           tea.KeyMsg
		wantConfirmed bool
		wantCancelled bool
		wantActive    bool
	}{
		{name: "yes", key: testhelpers.KeyRunes("y"), wantConfirmed: true},
		{name: "upper yes", key: testhelpers.KeyRunes("Y"), wantConfirmed: true},
		{name: "no", key: testhelpers.KeyRunes("n"), wantCancelled: true},
		{name: "escape", key: testhelpers.Key(tea.KeyEsc), wantCancelled: true},
		{name: "other key is ignored", key: testhelpers.KeyRunes("x"), wantActive: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var confirmed, cancelled bool
			c := NewConfirmation()
			c.ShowInline("Delete this block?", true,
				func() tea.Cmd { confirmed = true; return nil },
				func() tea.Cmd { cancelled = true; return nil },
			)

			c.Update(tt.key)

			testhelpers.AssertEqual(t, tt.wantConfirmed, confirmed)
			testhelpers.AssertEqual(t, tt.wantCancelled, cancelled)
			testhelpers.AssertEqual(t, tt.wantActive, c.Active())
		})
	}
}

func TestConfirmationView(t *testing.T) {
	c := NewConfirmation()
	testhelpers.AssertEqual(t, "", c.View())

	c.ShowInline("Delete this block?", true, nil, nil)
	view := c.ViewWithWidth(60)
	testhelpers.AssertViewContains(t, view, "Delete this block?")
	testhelpers.AssertViewContains(t, view, "[y] Yes")
	testhelpers.AssertViewContains(t, view, "[n] No")

	c.Hide()
	testhelpers.AssertEqual(t, "", c.ViewWithWidth(60))
}
