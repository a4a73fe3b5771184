package components

import (
	"fmt"

	"github.com/Akashdeep-Patra/dgv/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// StatusBarData carries the info displayed in the bottom status bar.
type StatusBarData struct {
	Dataset   string
	Items     int
	Selection string // e.g. "3 Selected"
	Selected  int
	Path      string
	Watching  bool
	Message   string // transient info/error message
	IsError   bool
}

// RenderStatusBar renders the bottom status bar with clear visual sections
// separated by dim vertical bars.
//
// Wide (>= 60):   lab  │  12 items  │  3 Selected       /data/lab.json ◉
// Medium (40-59):  lab  │  12 items  │  3 Selected
// Narrow (< 40):   lab  │  3 Selected
func RenderStatusBar(styles ui.Styles, data StatusBarData, width int) string {
	t := styles.Theme

	sepStyle := lipgloss.NewStyle().Foreground(t.Border).Faint(true)
	sep := sepStyle.Render(" │ ")

	// ── Left sections ────────────────────────────────────────────

	name := data.Dataset
	if name == "" {
		name = "no dataset"
	}
	left := " " + lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Render(name)

	if width >= 40 {
		noun := "items"
		if data.Items == 1 {
			noun = "item"
		}
		left += sep + lipgloss.NewStyle().Foreground(t.TextMuted).Render(fmt.Sprintf("%d %s", data.Items, noun))
	}

	if data.Selection != "" {
		fg := t.TextSubtle
		if data.Selection != "None Selected" {
			fg = t.Accent
		}
		left += sep + lipgloss.NewStyle().Foreground(fg).Render(data.Selection)
	}

	// ── Right section ────────────────────────────────────────────

	var right string
	switch {
	case data.Message != "":
		fg := t.Info
		if data.IsError {
			fg = t.Error
		}
		right = lipgloss.NewStyle().Foreground(fg).Render(data.Message) + " "
	case width >= 60 && data.Path != "":
		room := width - lipgloss.Width(left) - 6
		right = lipgloss.NewStyle().Foreground(t.TextSubtle).Render(ui.Truncate(data.Path, max(room, 1)))
		if data.Watching {
			right += lipgloss.NewStyle().Foreground(t.Success).Render(" ◉")
		}
		right += " "
	}

	return styles.StatusBar.Width(width).Render(ui.SpaceBetween(left, right, width-2))
}
