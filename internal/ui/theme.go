package ui

import (
	"github.com/Akashdeep-Patra/dgv/internal/status"
	"github.com/charmbracelet/lipgloss"
)

// Theme holds all colours for the application.
type Theme struct {
	Bg            lipgloss.Color
	Surface       lipgloss.Color
	SurfaceHover  lipgloss.Color
	Border        lipgloss.Color
	BorderFocused lipgloss.Color

	Text        lipgloss.Color
	TextMuted   lipgloss.Color
	TextSubtle  lipgloss.Color
	TextInverse lipgloss.Color

	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color

	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color

	// Available colours the status marker dot.
	Available lipgloss.Color
}

// DarkTheme returns the default dark theme (Catppuccin Mocha).
func DarkTheme() Theme {
	return Theme{
		Bg:            lipgloss.Color("#1e1e2e"),
		Surface:       lipgloss.Color("#282840"),
		SurfaceHover:  lipgloss.Color("#313152"),
		Border:        lipgloss.Color("#3b3b5c"),
		BorderFocused: lipgloss.Color("#7c7cf0"),

		Text:        lipgloss.Color("#cdd6f4"),
		TextMuted:   lipgloss.Color("#9399b2"),
		TextSubtle:  lipgloss.Color("#6c7086"),
		TextInverse: lipgloss.Color("#1e1e2e"),

		Primary:   lipgloss.Color("#89b4fa"),
		Secondary: lipgloss.Color("#b4befe"),
		Accent:    lipgloss.Color("#f5c2e7"),

		Success: lipgloss.Color("#a6e3a1"),
		Warning: lipgloss.Color("#f9e2af"),
		Error:   lipgloss.Color("#f38ba8"),
		Info:    lipgloss.Color("#89b4fa"),

		Available: lipgloss.Color("#a6e3a1"),
	}
}

// LightTheme returns a light theme (Catppuccin Latte).
func LightTheme() Theme {
	return Theme{
		Bg:            lipgloss.Color("#eff1f5"),
		Surface:       lipgloss.Color("#e6e9ef"),
		SurfaceHover:  lipgloss.Color("#ccd0da"),
		Border:        lipgloss.Color("#bcc0cc"),
		BorderFocused: lipgloss.Color("#7287fd"),

		Text:        lipgloss.Color("#4c4f69"),
		TextMuted:   lipgloss.Color("#6c6f85"),
		TextSubtle:  lipgloss.Color("#9ca0b0"),
		TextInverse: lipgloss.Color("#eff1f5"),

		Primary:   lipgloss.Color("#1e66f5"),
		Secondary: lipgloss.Color("#7287fd"),
		Accent:    lipgloss.Color("#ea76cb"),

		Success: lipgloss.Color("#40a02b"),
		Warning: lipgloss.Color("#df8e1d"),
		Error:   lipgloss.Color("#d20f39"),
		Info:    lipgloss.Color("#1e66f5"),

		Available: lipgloss.Color("#40a02b"),
	}
}

// ThemeByName resolves a config theme name, falling back to dark.
func ThemeByName(name string) Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}

// Styles holds pre-computed lipgloss styles derived from a Theme.
type Styles struct {
	Theme Theme

	// Layout
	TabBar    lipgloss.Style
	TabActive lipgloss.Style
	TabItem   lipgloss.Style
	StatusBar lipgloss.Style

	// Text
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
	KeyBind lipgloss.Style
	KeyDesc lipgloss.Style

	// Grid
	GridBorder      lipgloss.Style
	GridHeader      lipgloss.Style
	GridCell        lipgloss.Style
	GridCursor      lipgloss.Style
	GridDisabled    lipgloss.Style
	Checkbox        lipgloss.Style
	CheckboxOff     lipgloss.Style
	Button          lipgloss.Style
	ButtonOff       lipgloss.Style
	StatusIndicator status.Styles

	// Dialogs
	Dialog      lipgloss.Style
	DialogTitle lipgloss.Style
}

// NewStyles builds all styles from the given theme.
func NewStyles(t Theme) Styles {
	s := Styles{Theme: t}

	s.TabBar = lipgloss.NewStyle().Padding(0, 1).Background(t.Surface)
	s.TabActive = lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Padding(0, 1).
		Background(t.Bg).Underline(true)
	s.TabItem = lipgloss.NewStyle().Foreground(t.TextMuted).Padding(0, 1)
	s.StatusBar = lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Padding(0, 1)

	s.Title = lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	s.Muted = lipgloss.NewStyle().Foreground(t.TextMuted)
	s.Bold = lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	s.KeyBind = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	s.KeyDesc = lipgloss.NewStyle().Foreground(t.TextMuted)

	s.GridBorder = lipgloss.NewStyle().Foreground(t.Border)
	s.GridHeader = lipgloss.NewStyle().Foreground(t.Text).Bold(true).Padding(0, 1)
	s.GridCell = lipgloss.NewStyle().Foreground(t.Text).Padding(0, 1)
	s.GridCursor = lipgloss.NewStyle().Foreground(t.Text).Background(t.SurfaceHover).Bold(true).Padding(0, 1)
	s.GridDisabled = lipgloss.NewStyle().Foreground(t.TextSubtle).Padding(0, 1)
	s.Checkbox = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	s.CheckboxOff = lipgloss.NewStyle().Foreground(t.TextSubtle).Faint(true)
	s.Button = lipgloss.NewStyle().Foreground(t.TextInverse).Background(t.Primary).Bold(true).Padding(0, 1)
	s.ButtonOff = lipgloss.NewStyle().Foreground(t.TextSubtle).Background(t.Surface).Padding(0, 1)
	s.StatusIndicator = status.Styles{
		Marker: lipgloss.NewStyle().Foreground(t.Available),
		Text:   lipgloss.NewStyle(),
	}

	s.Dialog = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(t.Primary).Padding(1, 3)
	s.DialogTitle = lipgloss.NewStyle().Foreground(t.Text).Bold(true)

	return s
}

// DefaultStyles returns styles using the dark theme.
func DefaultStyles() Styles {
	return NewStyles(DarkTheme())
}
