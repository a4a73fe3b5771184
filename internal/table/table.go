// Package table is a generic table shell: an ordered header row followed by
// one body row per item, each produced by an injected row renderer. It knows
// nothing about what the rows mean.
package table

import (
	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
)

// Header describes a single column.
type Header struct {
	Label string
	Key   string
}

// Row is the rendered content of one body row, one cell per column.
type Row []string

// RowFunc renders the item at position idx.
type RowFunc[T any] func(item T, idx int) Row

// Table is the structural result of Build.
type Table struct {
	Headers []string
	Keys    []string
	Rows    []Row
}

// Build produces one header row from headers and one body row per item, in
// the order given. Items are never re-ordered, filtered or deduplicated.
func Build[T any](headers []Header, items []T, fn RowFunc[T]) Table {
	t := Table{
		Headers: make([]string, len(headers)),
		Keys:    make([]string, len(headers)),
		Rows:    make([]Row, len(items)),
	}
	for i, h := range headers {
		t.Headers[i] = h.Label
		t.Keys[i] = h.Key
	}
	for i, item := range items {
		t.Rows[i] = fn(item, i)
	}
	return t
}

// Column returns the index of the column with the given key, or -1.
func (t Table) Column(key string) int {
	for i, k := range t.Keys {
		if k == key {
			return i
		}
	}
	return -1
}

// StyleFunc styles a cell. row is the body row index (absolute, not relative
// to Offset) or -1 for the header.
type StyleFunc func(row, col int) lipgloss.Style

// RenderOptions controls how a Table is drawn.
type RenderOptions struct {
	Width       int // 0 lets the table size itself
	Offset      int // first body row to draw
	Height      int // number of body rows to draw; 0 draws all
	Border      lipgloss.Border
	BorderStyle lipgloss.Style
	Style       StyleFunc
}

// HeaderRow is the row index passed to a StyleFunc for the header.
const HeaderRow = ltable.HeaderRow

// Window returns the [start, end) body row range drawn for the options.
func (t Table) Window(opts RenderOptions) (start, end int) {
	start = max(0, min(opts.Offset, len(t.Rows)))
	end = len(t.Rows)
	if opts.Height > 0 && start+opts.Height < end {
		end = start + opts.Height
	}
	return start, end
}

// Render draws the table with lipgloss.
func (t Table) Render(opts RenderOptions) string {
	start, end := t.Window(opts)

	rows := make([][]string, 0, end-start)
	for _, r := range t.Rows[start:end] {
		rows = append(rows, []string(r))
	}

	border := opts.Border
	if border == (lipgloss.Border{}) {
		border = lipgloss.NormalBorder()
	}

	lt := ltable.New().
		Border(border).
		BorderStyle(opts.BorderStyle).
		BorderRow(false).
		BorderColumn(false).
		Headers(t.Headers...).
		Rows(rows...)

	if opts.Style != nil {
		style := opts.Style
		lt = lt.StyleFunc(func(row, col int) lipgloss.Style {
			if row == ltable.HeaderRow {
				return style(HeaderRow, col)
			}
			return style(start+row, col)
		})
	}
	if opts.Width > 0 {
		lt = lt.Width(opts.Width)
	}
	return lt.Render()
}
