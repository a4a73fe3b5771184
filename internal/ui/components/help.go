package components

import (
	"strings"

	"github.com/Akashdeep-Patra/dgv/internal/config"
	"github.com/Akashdeep-Patra/dgv/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// HelpEntry is a single key-description pair for the help overlay.
type HelpEntry struct {
	Key  string
	Desc string
}

// helpOrder is the order sections appear in the overlay.
var helpOrder = []string{"Navigation", "Selection", "Tabs", "Download", "General"}

// RenderHelp renders a full-screen help overlay.
func RenderHelp(styles ui.Styles, title string, sections map[string][]HelpEntry, width, height int) string {
	t := styles.Theme

	titleStr := lipgloss.NewStyle().
		Foreground(t.Primary).Bold(true).
		Align(lipgloss.Center).
		Width(width - 4).
		Render(title)

	var body strings.Builder
	body.WriteString(titleStr + "\n\n")

	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Underline(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Width(16).Align(lipgloss.Right)
	descStyle := lipgloss.NewStyle().Foreground(t.Text)

	for _, section := range helpOrder {
		entries, ok := sections[section]
		if !ok || len(entries) == 0 {
			continue
		}
		body.WriteString(sectionStyle.Render(section) + "\n")
		for _, e := range entries {
			body.WriteString("  " + keyStyle.Render(e.Key) + "  " + descStyle.Render(e.Desc) + "\n")
		}
		body.WriteString("\n")
	}

	overlay := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(t.Primary).
		Padding(1, 3).
		Width(min(70, width-4)).
		MaxHeight(height - 2).
		Render(body.String())

	return ui.PlaceCentre(width, height, overlay)
}

// KeyLabel renders a binding's keys for display, e.g. "j / down".
func KeyLabel(keys []string) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		names[i] = k
	}
	return strings.Join(names, " / ")
}

// GlobalHelpEntries returns the help entries for the configured key bindings.
func GlobalHelpEntries(kb config.KeyBindings) map[string][]HelpEntry {
	return map[string][]HelpEntry{
		"Navigation": {
			{Key: KeyLabel(kb.Down), Desc: "Move down"},
			{Key: KeyLabel(kb.Up), Desc: "Move up"},
			{Key: KeyLabel(kb.Top), Desc: "Go to top"},
			{Key: KeyLabel(kb.Bottom), Desc: "Go to bottom"},
			{Key: KeyLabel(kb.PageUp), Desc: "Page up"},
			{Key: KeyLabel(kb.PageDown), Desc: "Page down"},
			{Key: KeyLabel(kb.GoTo), Desc: "Go to row"},
		},
		"Selection": {
			{Key: KeyLabel(kb.Toggle), Desc: "Toggle row"},
			{Key: KeyLabel(kb.ToggleAll), Desc: "Select all / clear"},
			{Key: "click ☐", Desc: "Toggle row (mouse)"},
		},
		"Tabs": {
			{Key: KeyLabel(kb.NextTab), Desc: "Next dataset"},
			{Key: KeyLabel(kb.PrevTab), Desc: "Previous dataset"},
			{Key: "1-9", Desc: "Jump to dataset"},
		},
		"Download": {
			{Key: KeyLabel(kb.Download), Desc: "Download selected"},
			{Key: KeyLabel(kb.Copy), Desc: "Copy payload (in dialog)"},
		},
		"General": {
			{Key: KeyLabel(kb.Refresh), Desc: "Reload dataset"},
			{Key: KeyLabel(kb.Back), Desc: "Close dialog / help"},
			{Key: KeyLabel(kb.Help), Desc: "Toggle this help"},
			{Key: KeyLabel(kb.Quit), Desc: "Quit"},
		},
	}
}
