package testhelpers

import (
	"reflect"
	"strings"
	"testing"

	"github.com/pluqqy/blockpad/pkg/models"
)

// AssertViewContains checks if a view contains expected text
func AssertViewContains(t *testing.T, view, expected string) {
	t.Helper()

	if !strings.Contains(view, expected) {
		t.Errorf("View does not contain expected text: %q\nView:\n%s", expected, view)
	}
}

// AssertViewNotContains checks if a view does not contain certain text
func AssertViewNotContains(t *testing.T, view, unexpected string) {
	t.Helper()

	if strings.Contains(view, unexpected) {
		t.Errorf("View unexpectedly contains text: %q\nView:\n%s", unexpected, view)
	}
}

// AssertNoError checks that an error is nil
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

// AssertEqual checks if two values are equal
func AssertEqual(t *testing.T, expected, actual interface{}) {
	t.Helper()

	if !reflect.DeepEqual(expected, actual) {
		t.Errorf("Values not equal:\nExpected: %v\nActual:   %v", expected, actual)
	}
}

// AssertTrue checks if a condition is true
func AssertTrue(t *testing.T, condition bool, message string) {
	t.Helper()

	if !condition {
		t.Error(message)
	}
}

// AssertContents checks the content of every block in order
func AssertContents(t *testing.T, blocks []models.Block, expected ...string) {
	t.Helper()

	if len(blocks) != len(expected) {
		t.Errorf("Block count mismatch: expected %d, got %d (%v)", len(expected), len(blocks), blocks)
		return
	}
	for i := range expected {
		if blocks[i].Content != expected[i] {
			t.Errorf("Block %d content mismatch: expected %q, got %q", i, expected[i], blocks[i].Content)
		}
	}
}

// AssertTypes checks the type of every block in order
func AssertTypes(t *testing.T, blocks []models.Block, expected ...models.BlockType) {
	t.Helper()

	if len(blocks) != len(expected) {
		t.Errorf("Block count mismatch: expected %d, got %d", len(expected), len(blocks))
		return
	}
	for i := range expected {
		if blocks[i].Type != expected[i] {
			t.Errorf("Block %d type mismatch: expected %q, got %q", i, expected[i], blocks[i].Type)
		}
	}
}
