package config

// KeyBindings maps each action to the keys that trigger it. Every field can
// be overridden under "keys" in the config file.
type KeyBindings struct {
	Quit      []string `mapstructure:"quit"`
	Help      []string `mapstructure:"help"`
	NextTab   []string `mapstructure:"next_tab"`
	PrevTab   []string `mapstructure:"prev_tab"`
	Up        []string `mapstructure:"up"`
	Down      []string `mapstructure:"down"`
	PageUp    []string `mapstructure:"page_up"`
	PageDown  []string `mapstructure:"page_down"`
	Top       []string `mapstructure:"top"`
	Bottom    []string `mapstructure:"bottom"`
	Toggle    []string `mapstructure:"toggle"`
	ToggleAll []string `mapstructure:"toggle_all"`
	Download  []string `mapstructure:"download"`
	GoTo      []string `mapstructure:"goto"`
	Copy      []string `mapstructure:"copy"`
	Refresh   []string `mapstructure:"refresh"`
	Back      []string `mapstructure:"back"`
}

// DefaultKeyBindings returns the default key bindings.
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Quit:      []string{"q", "ctrl+c"},
		Help:      []string{"?"},
		NextTab:   []string{"tab"},
		PrevTab:   []string{"shift+tab"},
		Up:        []string{"up", "k"},
		Down:      []string{"down", "j"},
		PageUp:    []string{"pgup", "ctrl+u"},
		PageDown:  []string{"pgdown", "ctrl+d"},
		Top:       []string{"home", "g"},
		Bottom:    []string{"end", "G"},
		Toggle:    []string{" ", "x"},
		ToggleAll: []string{"a"},
		Download:  []string{"d", "enter"},
		GoTo:      []string{":"},
		Copy:      []string{"y"},
		Refresh:   []string{"r", "ctrl+r"},
		Back:      []string{"esc"},
	}
}
