package grid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Akashdeep-Patra/dgv/internal/table"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ErrDownloadDisabled is returned by Download when nothing is selected or a
// selected row is not available.
var ErrDownloadDisabled = errors.New("download disabled: selection is empty or contains unavailable items")

// IndexError is the panic value for a row index outside the item sequence.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("grid: row index %d out of range [0, %d)", e.Index, e.Len)
}

// DownloadHeader starts every download payload.
const DownloadHeader = "Downloaded Items"

// Headers are the columns of the grid, checkbox first.
var Headers = []table.Header{
	{Label: "", Key: "checkbox"},
	{Label: "Name", Key: "name"},
	{Label: "Device", Key: "device"},
	{Label: "Path", Key: "path"},
	{Label: "Status", Key: "status"},
}

// Controller owns the selection for one item sequence. It is not safe for
// concurrent use; every intent runs to completion on the UI goroutine.
type Controller struct {
	items []Item
	// selection keeps insertion order so Download lists rows in the order
	// they were picked.
	selection *orderedmap.OrderedMap[int, struct{}]
}

// New returns a controller over items with nothing selected.
func New(items []Item) *Controller {
	return &Controller{
		items:     items,
		selection: orderedmap.New[int, struct{}](),
	}
}

// Items returns the current item sequence.
func (c *Controller) Items() []Item { return c.items }

// Len returns the number of items.
func (c *Controller) Len() int { return len(c.items) }

// SetItems replaces the item sequence. Indices do not survive a new
// sequence, so the selection is cleared.
func (c *Controller) SetItems(items []Item) {
	c.items = items
	c.selection = orderedmap.New[int, struct{}]()
}

func (c *Controller) check(idx int) {
	if idx < 0 || idx >= len(c.items) {
		panic(&IndexError{Index: idx, Len: len(c.items)})
	}
}

// ToggleRow flips the selection of row idx. It does not look at the row's
// status; see ToggleAvailable.
func (c *Controller) ToggleRow(idx int) {
	c.check(idx)
	if _, ok := c.selection.Delete(idx); ok {
		return
	}
	c.selection.Set(idx, struct{}{})
}

// ToggleAvailable toggles row idx only when its control is enabled and
// reports whether it did.
func (c *Controller) ToggleAvailable(idx int) bool {
	c.check(idx)
	if !Available(c.items[idx]) {
		return false
	}
	c.ToggleRow(idx)
	return true
}

// ToggleAll clears the selection when every row is selected and selects
// every row otherwise. From a partial selection two calls end empty, not
// back at the partial selection.
func (c *Controller) ToggleAll() {
	all := c.IsAllSelected()
	c.selection = orderedmap.New[int, struct{}]()
	if all {
		return
	}
	for i := range c.items {
		c.selection.Set(i, struct{}{})
	}
}

// IsSelected reports whether row idx is selected.
func (c *Controller) IsSelected(idx int) bool {
	_, ok := c.selection.Get(idx)
	return ok
}

// Count returns the number of selected rows.
func (c *Controller) Count() int { return c.selection.Len() }

// Selected returns the selected indices in selection order.
func (c *Controller) Selected() []int {
	out := make([]int, 0, c.selection.Len())
	for p := c.selection.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Key)
	}
	return out
}

// IsAllSelected is true when every row is selected, including when there
// are no rows at all.
func (c *Controller) IsAllSelected() bool { return c.Count() == len(c.items) }

// IsIndeterminate is true when some but not all rows are selected.
func (c *Controller) IsIndeterminate() bool { return c.Count() > 0 && !c.IsAllSelected() }

// SelectAllState returns the value of the select-all checkbox.
func (c *Controller) SelectAllState() CheckState {
	switch {
	case c.IsAllSelected():
		return Checked
	case c.IsIndeterminate():
		return Indeterminate
	default:
		return Unchecked
	}
}

// SelectionLabel summarises the selection for the toolbar.
func (c *Controller) SelectionLabel() string {
	if c.Count() == 0 {
		return "None Selected"
	}
	return fmt.Sprintf("%d Selected", c.Count())
}

// AllSelectedAvailable is true when every selected row is available. It is
// vacuously true for an empty selection.
func (c *Controller) AllSelectedAvailable() bool {
	for p := c.selection.Oldest(); p != nil; p = p.Next() {
		if !Available(c.items[p.Key]) {
			return false
		}
	}
	return true
}

// DownloadEnabled reports whether the bulk download may run.
func (c *Controller) DownloadEnabled() bool {
	return c.Count() > 0 && c.AllSelectedAvailable()
}

// Download formats the selected rows for the user. It does not change the
// selection.
func (c *Controller) Download() (string, error) {
	if !c.DownloadEnabled() {
		return "", ErrDownloadDisabled
	}
	lines := make([]string, 0, c.Count())
	for p := c.selection.Oldest(); p != nil; p = p.Next() {
		lines = append(lines, FormatItem(c.items[p.Key]))
	}
	return DownloadHeader + "\n\n" + strings.Join(lines, "\n"), nil
}

// FormatItem is one line of a download payload.
func FormatItem(it Item) string {
	return fmt.Sprintf("Name: %s Device: %s Path: %s", it.Name, it.Device, it.Path)
}
