package grid

import (
	"github.com/Akashdeep-Patra/dgv/internal/status"
	"github.com/Akashdeep-Patra/dgv/internal/table"
)

// RowState is everything a surface needs to draw one row.
type RowState struct {
	Index    int
	Checked  bool
	Disabled bool
	Name     string
	Device   string
	Path     string
	Status   status.Visual
}

// Check returns the checkbox value for the row.
func (r RowState) Check() CheckState {
	if r.Checked {
		return Checked
	}
	return Unchecked
}

// Glyphs for checkboxes on rows that are not available.
const (
	disabledOff = "[·]"
	disabledOn  = "[!]"
)

// Box returns the checkbox glyph, which tells disabled rows apart from
// enabled ones in both checked states.
func (r RowState) Box() string {
	switch {
	case r.Disabled && r.Checked:
		return disabledOn
	case r.Disabled:
		return disabledOff
	}
	return r.Check().String()
}

// Row returns the render state of row idx. The checkbox is disabled for
// rows that are not available.
func (c *Controller) Row(idx int) RowState {
	c.check(idx)
	it := c.items[idx]
	return RowState{
		Index:    idx,
		Checked:  c.IsSelected(idx),
		Disabled: !Available(it),
		Name:     it.Name,
		Device:   it.Device,
		Path:     it.Path,
		Status:   status.Render(it.Status),
	}
}

// RenderRow is the plain-text row renderer handed to the table shell.
func (c *Controller) RenderRow(_ Item, idx int) table.Row {
	r := c.Row(idx)
	return table.Row{r.Box(), r.Name, r.Device, r.Path, r.Status.String()}
}

// Table builds the grid with the plain-text renderer.
func (c *Controller) Table() table.Table {
	return table.Build(Headers, c.items, c.RenderRow)
}
