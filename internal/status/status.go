// Package status maps a free-text row status to its on-screen marker.
package status

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// Available is the only status value with special meaning.
const Available = "available"

// Marker is the fixed-size dot drawn before an available status.
const Marker = "●"

// Visual is the rendered form of a status: an optional marker and a label.
type Visual struct {
	Marker bool
	Text   string
}

// IsAvailable reports whether s case-folds to "available".
func IsAvailable(s string) bool {
	return strings.EqualFold(s, Available)
}

// Render returns the visual for s. It never fails, including for "".
// The available status is always labelled "Available"; any other value keeps
// its casing apart from the first rune.
func Render(s string) Visual {
	if IsAvailable(s) {
		return Visual{Marker: true, Text: capitalize(Available)}
	}
	return Visual{Text: capitalize(s)}
}

// capitalize upper-cases the first rune and leaves the rest untouched.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Styles controls how a Visual is drawn.
type Styles struct {
	Marker lipgloss.Style
	Text   lipgloss.Style
}

// View renders the visual as "● Text" or "Text".
func (v Visual) View(s Styles) string {
	if !v.Marker {
		return s.Text.Render(v.Text)
	}
	return s.Marker.Render(Marker) + " " + s.Text.Render(v.Text)
}

// String renders the visual without styling.
func (v Visual) String() string {
	return v.View(Styles{})
}
