package app

import (
	"github.com/Akashdeep-Patra/dgv/internal/config"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the global keybindings used across the application.
// Grid-level bindings live with the grid view.
type KeyMap struct {
	Quit    key.Binding
	Help    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Refresh key.Binding
	GoTo    key.Binding
	Copy    key.Binding
	Back    key.Binding

	// Digit shortcuts jump straight to a dataset tab.
	Tabs []key.Binding
}

// NewKeyMap builds the global keybindings from configured keys.
func NewKeyMap(kb config.KeyBindings) KeyMap {
	km := KeyMap{
		Quit:    binding(kb.Quit, "quit"),
		Help:    binding(kb.Help, "help"),
		NextTab: binding(kb.NextTab, "next tab"),
		PrevTab: binding(kb.PrevTab, "prev tab"),
		Refresh: binding(kb.Refresh, "reload"),
		GoTo:    binding(kb.GoTo, "go to row"),
		Copy:    binding(kb.Copy, "copy"),
		Back:    binding(kb.Back, "back"),
	}
	for _, d := range []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"} {
		km.Tabs = append(km.Tabs, key.NewBinding(key.WithKeys(d), key.WithHelp(d, "dataset "+d)))
	}
	return km
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.DefaultKeyBindings())
}

func binding(keys []string, desc string) key.Binding {
	b := key.NewBinding(key.WithKeys(keys...))
	if len(keys) > 0 {
		b.SetHelp(keys[0], desc)
	}
	return b
}
