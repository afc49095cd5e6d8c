package testhelpers

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

// StripView removes styling and trailing spaces from every line of view
func StripView(view string) string {
	lines := strings.Split(ansi.Strip(view), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}

// ViewLines returns the stripped lines of view
func ViewLines(view string) []string {
	return strings.Split(StripView(view), "\n")
}

// AssertViewContains checks if a view contains expected text
func AssertViewContains(t *testing.T, view, expected string) {
	t.Helper()

	plain := StripView(view)
	if !strings.Contains(plain, expected) {
		t.Errorf("View does not contain expected text: %q\nView:\n%s", expected, plain)
	}
}

// AssertViewNotContains checks if a view does not contain certain text
func AssertViewNotContains(t *testing.T, view, unexpected string) {
	t.Helper()

	plain := StripView(view)
	if strings.Contains(plain, unexpected) {
		t.Errorf("View unexpectedly contains text: %q\nView:\n%s", unexpected, plain)
	}
}

// AssertErrorContains checks that an error contains expected text
func AssertErrorContains(t *testing.T, err error, expected string) {
	t.Helper()

	if err == nil {
		t.Fatal("Expected error, but got nil")
	}
	if !strings.Contains(err.Error(), expected) {
		t.Errorf("Error message does not contain expected text: %q\nGot: %v", expected, err)
	}
}
