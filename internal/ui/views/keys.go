package views

import (
	"github.com/Akashdeep-Patra/dgv/internal/config"
	"github.com/charmbracelet/bubbles/key"
)

// GridKeyMap holds the bindings a grid view reacts to.
type GridKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Top       key.Binding
	Bottom    key.Binding
	Toggle    key.Binding
	ToggleAll key.Binding
	Download  key.Binding
}

// NewGridKeyMap builds the grid bindings from configured keys.
func NewGridKeyMap(kb config.KeyBindings) GridKeyMap {
	return GridKeyMap{
		Up:        binding(kb.Up, "up"),
		Down:      binding(kb.Down, "down"),
		PageUp:    binding(kb.PageUp, "page up"),
		PageDown:  binding(kb.PageDown, "page down"),
		Top:       binding(kb.Top, "top"),
		Bottom:    binding(kb.Bottom, "bottom"),
		Toggle:    binding(kb.Toggle, "toggle"),
		ToggleAll: binding(kb.ToggleAll, "all"),
		Download:  binding(kb.Download, "download"),
	}
}

// binding builds a key.Binding whose help shows the first key.
func binding(keys []string, desc string) key.Binding {
	b := key.NewBinding(key.WithKeys(keys...))
	if len(keys) > 0 {
		label := keys[0]
		if label == " " {
			label = "space"
		}
		b.SetHelp(label, desc)
	}
	return b
}
