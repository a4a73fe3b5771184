package components

import (
	"fmt"
	"strings"
	"testing"

	"github.com/Akashdeep-Patra/dgv/internal/config"
	"github.com/Akashdeep-Patra/dgv/internal/ui"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScrollThumb(t *testing.T) {
	tests := []struct {
		name                           string
		height, total, visible, offset int
		wantStart, wantSize            int
	}{
		{"fits", 10, 5, 10, 0, 0, 0},
		{"top", 10, 100, 10, 0, 0, 1},
		{"bottom", 10, 100, 10, 90, 9, 1},
		{"half", 10, 20, 10, 5, 2, 5},
		{"offset clamped", 10, 20, 10, 50, 5, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, size := ScrollThumb(tt.height, tt.total, tt.visible, tt.offset)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantSize, size)
		})
	}
}

func TestRenderScrollbar(t *testing.T) {
	styles := ui.DefaultStyles()
	assert.Empty(t, RenderScrollbar(styles, 5, 3, 5, 0))
	assert.Equal(t, 5, lipgloss.Height(RenderScrollbar(styles, 5, 50, 5, 0)))
}

func TestTabZones(t *testing.T) {
	tabs := []TabInfo{{Name: "lab", Active: true}, {Name: "field", Selected: 2}}

	zones := TabZones(tabs, 80)
	require.Len(t, zones, 2)
	assert.Equal(t, 1, zones[0].Start)
	assert.Equal(t, zones[0].End, zones[1].Start)

	assert.Equal(t, 0, TabAt(tabs, 80, zones[0].Start))
	assert.Equal(t, 1, TabAt(tabs, 80, zones[1].End-1))
	assert.Equal(t, -1, TabAt(tabs, 80, 0))
	assert.Equal(t, -1, TabAt(tabs, 80, 79))
}

func TestTabZones_Narrow(t *testing.T) {
	tabs := []TabInfo{{Name: "a rather long dataset name"}, {Name: "another long dataset name"}}

	wide := TabZones(tabs, 200)
	narrow := TabZones(tabs, 12)
	assert.Less(t, narrow[1].End, wide[1].End)
	assert.Equal(t, 1, TabAt(tabs, 12, narrow[1].Start))
}

func TestRenderTabs(t *testing.T) {
	out := RenderTabs(ui.DefaultStyles(), []TabInfo{{Name: "lab", Active: true, Selected: 3}}, 60)
	assert.Contains(t, out, "1 lab (3)")
	assert.Equal(t, TabBarRows, lipgloss.Height(out))
}

func TestRenderStatusBar(t *testing.T) {
	styles := ui.DefaultStyles()

	out := RenderStatusBar(styles, StatusBarData{Dataset: "lab", Items: 4, Selection: "2 Selected"}, 80)
	assert.Contains(t, out, "lab")
	assert.Contains(t, out, "4 items")
	assert.Contains(t, out, "2 Selected")

	out = RenderStatusBar(styles, StatusBarData{Dataset: "lab", Items: 1, Message: "reloaded"}, 80)
	assert.Contains(t, out, "1 item")
	assert.Contains(t, out, "reloaded")
}

func TestKeyLabel(t *testing.T) {
	assert.Equal(t, "space / x", KeyLabel([]string{" ", "x"}))
	assert.Equal(t, "?", KeyLabel([]string{"?"}))
}

func TestGlobalHelpEntries(t *testing.T) {
	entries := GlobalHelpEntries(config.DefaultKeyBindings())
	for _, section := range helpOrder {
		assert.NotEmpty(t, entries[section], section)
	}
	assert.Contains(t, entries["Selection"], HelpEntry{Key: "a", Desc: "Select all / clear"})
}

func TestConfirmDialog(t *testing.T) {
	d := NewConfirmDialog(ui.DefaultStyles(), "Download", "Download 2 items?", "dl")
	assert.True(t, d.Visible())

	d, _ = d.Update(tea.KeyMsg{Type: tea.KeyTab})
	d, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, d.Visible())
	require.NotNil(t, cmd)
	assert.Equal(t, DialogResult{Confirmed: false, Tag: "dl"}, cmd())
}

func TestInputDialog(t *testing.T) {
	d := NewInputDialog(ui.DefaultStyles(), "Go to row", "row number", "goto")
	d, _ = d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("12")})
	_, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, DialogResult{Confirmed: true, Value: "12", Tag: "goto"}, cmd())
}

func TestNoticeDialog(t *testing.T) {
	copyKey := key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy"))
	payload := "Downloaded Items\n\nName: a Device: d Path: /p"
	d := NewNoticeDialog(ui.DefaultStyles(), "Download", payload, "download", copyKey)

	assert.Contains(t, d.View(), "Name: a Device: d Path: /p")
	assert.Contains(t, d.View(), "y copy")

	d, cmd := d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	assert.True(t, d.Visible())
	require.NotNil(t, cmd)
	assert.Equal(t, CopyRequestMsg{Text: payload}, cmd())

	d, cmd = d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, d.Visible())
	assert.Equal(t, DialogResult{Tag: "download"}, cmd())
	assert.Empty(t, d.View())
}

func longPathPayload(n int) string {
	lines := []string{"Downloaded Items", ""}
	for i := range n {
		lines = append(lines, fmt.Sprintf(
			`Name: item%02d.dll Device: Lannister Path: \Device\HarddiskVolume1\Windows\System32\item%02d.dll`, i, i))
	}
	return strings.Join(lines, "\n")
}

func TestNoticeDialog_WrapsLongLines(t *testing.T) {
	payload := longPathPayload(3)
	d := NewNoticeDialog(ui.DefaultStyles(), "Download", payload, "download", key.NewBinding())

	view := d.View()
	for i := range 3 {
		assert.Contains(t, view, fmt.Sprintf(`\Device\HarddiskVolume1\Windows\System32\item%02d.dll`, i))
	}
	assert.Equal(t, 6, strings.Count(view, ".dll"))
	assert.NotContains(t, view, "scroll", "short payload fits without scrolling")
	for _, line := range strings.Split(view, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), dialogWidth+2) // plus the border
	}
}

func TestNoticeDialog_ScrollsToLastLine(t *testing.T) {
	payload := longPathPayload(20)
	d := NewNoticeDialog(ui.DefaultStyles(), "Download", payload, "download", key.NewBinding())
	d.SetMaxHeight(30)

	assert.Contains(t, d.View(), "↑/↓ scroll")
	assert.NotContains(t, d.View(), "item19.dll")

	for range 10 {
		d, _ = d.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	}
	assert.True(t, d.Visible())
	assert.Contains(t, d.View(), `\Device\HarddiskVolume1\Windows\System32\item19.dll`)
}
