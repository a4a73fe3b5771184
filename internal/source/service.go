// Package source loads dataset items for the grid. Every view depends on the
// Service interface rather than on files directly, so tests can substitute an
// in-memory implementation.
package source

import "github.com/Akashdeep-Patra/dgv/internal/grid"

// Service yields the item sequence of one dataset.
type Service interface {
	// Name is the label shown in the tab bar.
	Name() string
	// Path is the file backing the dataset, if any.
	Path() string
	Items() ([]grid.Item, error)
}

// Static is a Service over a fixed item slice.
type Static struct {
	Label string
	List  []grid.Item
}

var _ Service = (*Static)(nil)

func (s *Static) Name() string                { return s.Label }
func (s *Static) Path() string                { return "" }
func (s *Static) Items() ([]grid.Item, error) { return s.List, nil }
