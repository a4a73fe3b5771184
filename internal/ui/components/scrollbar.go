package components

import (
	"strings"

	"github.com/Akashdeep-Patra/dgv/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// ScrollThumb returns the first row and the size of the thumb within a track
// of the given height, for a window of visible rows starting at offset out of
// total rows. Size is zero when everything fits.
func ScrollThumb(height, total, visible, offset int) (start, size int) {
	if total <= visible || height < 1 || visible < 1 {
		return 0, 0
	}

	size = min(max(height*visible/total, 1), height)

	maxOffset := total - visible
	offset = min(max(offset, 0), maxOffset)
	start = (height - size) * offset / maxOffset
	return start, size
}

// RenderScrollbar returns a vertical scrollbar track of the given height for
// a grid showing visible of total rows from offset. It is empty when all rows
// fit.
func RenderScrollbar(styles ui.Styles, height, total, visible, offset int) string {
	start, size := ScrollThumb(height, total, visible, offset)
	if size == 0 {
		return ""
	}

	t := styles.Theme
	thumbStyle := lipgloss.NewStyle().Foreground(t.Primary)
	trackStyle := lipgloss.NewStyle().Foreground(t.Border)

	lines := make([]string, height)
	for i := range lines {
		if i >= start && i < start+size {
			lines[i] = thumbStyle.Render("█")
		} else {
			lines[i] = trackStyle.Render("░")
		}
	}
	return strings.Join(lines, "\n")
}
