// Package grid holds the selection state machine behind the data grid: which
// rows are checked, what the select-all control shows, and whether the bulk
// download is allowed.
package grid

import "github.com/Akashdeep-Patra/dgv/internal/status"

// Item is one row of a dataset.
type Item struct {
	Name   string `json:"name" yaml:"name" toml:"name" mapstructure:"name"`
	Device string `json:"device" yaml:"device" toml:"device" mapstructure:"device"`
	Path   string `json:"path" yaml:"path" toml:"path" mapstructure:"path"`
	Status string `json:"status" yaml:"status" toml:"status" mapstructure:"status"`
}

// Available reports whether the item's status case-folds to "available".
func Available(it Item) bool { return status.IsAvailable(it.Status) }

// CheckState is the value of a tri-state checkbox.
type CheckState int

const (
	Unchecked CheckState = iota
	Checked
	Indeterminate
)

// String returns the checkbox glyph.
func (c CheckState) String() string {
	switch c {
	case Checked:
		return "[x]"
	case Indeterminate:
		return "[-]"
	default:
		return "[ ]"
	}
}
