package components

import (
	"fmt"
	"strings"

	"github.com/Akashdeep-Patra/dgv/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// TabInfo describes a single dataset tab for rendering.
type TabInfo struct {
	Name     string
	Selected int // rows selected in the dataset, shown as a badge
	Active   bool
}

// TabZone is the horizontal extent of a rendered tab, used for mouse hits.
type TabZone struct {
	Index      int
	Start, End int // [Start, End) columns
}

// tabDisplayMode controls how tab labels are rendered.
type tabDisplayMode int

const (
	tabDisplayFull  tabDisplayMode = iota // "1 lab (3)"
	tabDisplayShort                       // "1 lab"
	tabDisplayIndex                       // "1"
)

// TabBarRows is the number of screen rows the tab bar occupies (labels + underline).
const TabBarRows = 2

func tabLabel(i int, tab TabInfo, mode tabDisplayMode, maxName int) string {
	switch mode {
	case tabDisplayFull:
		label := fmt.Sprintf("%d %s", i+1, ui.Truncate(tab.Name, maxName))
		if tab.Selected > 0 {
			label += fmt.Sprintf(" (%d)", tab.Selected)
		}
		return label
	case tabDisplayShort:
		return fmt.Sprintf("%d %s", i+1, ui.Truncate(tab.Name, 6))
	default:
		return fmt.Sprintf("%d", i+1)
	}
}

// layout picks the widest display mode whose labels fit on one row and
// returns the labels with their zones. Column 0 is left padding.
func layout(tabs []TabInfo, width int) ([]string, []TabZone) {
	for _, mode := range []tabDisplayMode{tabDisplayFull, tabDisplayShort, tabDisplayIndex} {
		labels := make([]string, len(tabs))
		zones := make([]TabZone, len(tabs))
		col := 1
		for i, tab := range tabs {
			labels[i] = " " + tabLabel(i, tab, mode, 24) + " "
			w := lipgloss.Width(labels[i])
			zones[i] = TabZone{Index: i, Start: col, End: col + w}
			col += w
		}
		if col <= width || mode == tabDisplayIndex {
			return labels, zones
		}
	}
	return nil, nil
}

// TabZones returns the clickable extents of tabs rendered at width.
func TabZones(tabs []TabInfo, width int) []TabZone {
	_, zones := layout(tabs, width)
	return zones
}

// TabAt returns the index of the tab under column x, or -1.
func TabAt(tabs []TabInfo, width, x int) int {
	for _, z := range TabZones(tabs, width) {
		if x >= z.Start && x < z.End {
			return z.Index
		}
	}
	return -1
}

// RenderTabs renders one tab per dataset on a single row, shortening labels
// as the terminal narrows. The active tab is bold with an accent underline.
func RenderTabs(styles ui.Styles, tabs []TabInfo, width int) string {
	t := styles.Theme
	labels, zones := layout(tabs, width)

	activeStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	inactiveStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var row strings.Builder
	row.WriteByte(' ')
	ulStart, ulEnd := -1, -1
	for i, label := range labels {
		if tabs[i].Active {
			row.WriteString(activeStyle.Render(label))
			ulStart, ulEnd = zones[i].Start, zones[i].End
		} else {
			row.WriteString(inactiveStyle.Render(label))
		}
	}

	top := lipgloss.NewStyle().
		Width(width).
		MaxWidth(width).
		Background(t.Bg).
		Render(row.String())

	borderStyle := lipgloss.NewStyle().Foreground(t.Border)
	accentStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)

	hint := lipgloss.NewStyle().Foreground(t.TextSubtle).Faint(true).Render("tab/⇧tab  ?help")
	ulWidth := width
	if lipgloss.Width(hint)+4 < width {
		ulWidth = width - lipgloss.Width(hint) - 1
	} else {
		hint = ""
	}
	bottom := buildUnderline(ulWidth, ulStart, ulEnd, borderStyle, accentStyle)
	if hint != "" {
		bottom += " " + hint
	}

	return lipgloss.JoinVertical(lipgloss.Left, top, lipgloss.NewStyle().Width(width).Render(bottom))
}

// buildUnderline builds a width-wide underline with a bold accent segment
// over [activeStart, activeEnd) and thin segments elsewhere.
func buildUnderline(width, activeStart, activeEnd int, borderSt, accentSt lipgloss.Style) string {
	const thin, bold = "─", "━"
	if activeStart < 0 || activeStart >= width {
		return borderSt.Render(strings.Repeat(thin, max(width, 0)))
	}
	activeEnd = min(activeEnd, width)

	var b strings.Builder
	if activeStart > 0 {
		b.WriteString(borderSt.Render(strings.Repeat(thin, activeStart)))
	}
	if seg := activeEnd - activeStart; seg > 0 {
		b.WriteString(accentSt.Render(strings.Repeat(bold, seg)))
	}
	if rem := width - activeEnd; rem > 0 {
		b.WriteString(borderSt.Render(strings.Repeat(thin, rem)))
	}
	return b.String()
}
