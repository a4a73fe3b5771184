package grid

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func items(statuses ...string) []Item {
	out := make([]Item, len(statuses))
	for i, s := range statuses {
		out[i] = Item{Name: string(rune('a' + i)), Device: "d", Path: "/p", Status: s}
	}
	return out
}

func TestNewStartsEmpty(t *testing.T) {
	c := New(items("available", "locked"))
	assert.Equal(t, 0, c.Count())
	assert.Equal(t, "None Selected", c.SelectionLabel())
	assert.Equal(t, Unchecked, c.SelectAllState())
	assert.False(t, c.DownloadEnabled())
}

func TestToggleRowOddCount(t *testing.T) {
	const n = 8
	r := rand.New(rand.NewPCG(1, 2))
	for trial := 0; trial < 50; trial++ {
		c := New(make([]Item, n))
		flips := make([]int, n)
		for k := 0; k < 40; k++ {
			idx := r.IntN(n)
			c.ToggleRow(idx)
			flips[idx]++
		}
		odd := 0
		for idx, f := range flips {
			if f%2 == 1 {
				odd++
				assert.True(t, c.IsSelected(idx))
			} else {
				assert.False(t, c.IsSelected(idx))
			}
		}
		assert.Equal(t, odd, c.Count())
	}
}

func TestToggleRowIgnoresStatus(t *testing.T) {
	c := New(items("locked"))
	c.ToggleRow(0)
	assert.True(t, c.IsSelected(0))
}

func TestToggleAvailable(t *testing.T) {
	c := New(items("Available", "Locked"))

	assert.True(t, c.ToggleAvailable(0))
	assert.False(t, c.ToggleAvailable(1))
	assert.Equal(t, []int{0}, c.Selected())

	assert.True(t, c.ToggleAvailable(0))
	assert.Empty(t, c.Selected())
}

func TestToggleRowOutOfRangePanics(t *testing.T) {
	c := New(items("available"))
	assert.PanicsWithError(t, "grid: row index 1 out of range [0, 1)", func() { c.ToggleRow(1) })
	assert.Panics(t, func() { c.ToggleRow(-1) })
	assert.Panics(t, func() { c.Row(5) })
}

func TestToggleAll(t *testing.T) {
	t.Run("empty to full to empty", func(t *testing.T) {
		c := New(items("available", "locked", "available"))
		c.ToggleAll()
		assert.Equal(t, []int{0, 1, 2}, c.Selected())
		assert.True(t, c.IsAllSelected())
		c.ToggleAll()
		assert.Empty(t, c.Selected())
	})

	t.Run("full to empty to full", func(t *testing.T) {
		c := New(items("available", "available"))
		c.ToggleRow(1)
		c.ToggleRow(0)
		c.ToggleAll()
		assert.Empty(t, c.Selected())
		c.ToggleAll()
		assert.Equal(t, []int{0, 1}, c.Selected())
	})

	t.Run("partial does not round trip", func(t *testing.T) {
		c := New(items("available", "available", "available"))
		c.ToggleRow(2)
		c.ToggleAll()
		assert.Equal(t, []int{0, 1, 2}, c.Selected())
		c.ToggleAll()
		assert.Empty(t, c.Selected())
	})

	t.Run("no items", func(t *testing.T) {
		c := New(nil)
		assert.True(t, c.IsAllSelected())
		c.ToggleAll()
		assert.Equal(t, 0, c.Count())
		assert.Equal(t, Checked, c.SelectAllState())
	})
}

func TestIndeterminate(t *testing.T) {
	c := New(items("available", "available", "available"))
	assert.False(t, c.IsIndeterminate())

	c.ToggleRow(0)
	assert.True(t, c.IsIndeterminate())
	assert.Equal(t, Indeterminate, c.SelectAllState())

	c.ToggleRow(1)
	assert.True(t, c.IsIndeterminate())

	c.ToggleRow(2)
	assert.False(t, c.IsIndeterminate())
	assert.Equal(t, Checked, c.SelectAllState())
}

func TestSelectionLabel(t *testing.T) {
	c := New(items("available", "available", "available"))
	assert.Equal(t, "None Selected", c.SelectionLabel())
	c.ToggleRow(1)
	assert.Equal(t, "1 Selected", c.SelectionLabel())
	c.ToggleAll()
	assert.Equal(t, "3 Selected", c.SelectionLabel())
}

func TestAllSelectedAvailable(t *testing.T) {
	c := New(items("available", "locked", "available"))
	assert.True(t, c.AllSelectedAvailable(), "vacuously true")

	c.ToggleRow(0)
	c.ToggleRow(2)
	assert.True(t, c.AllSelectedAvailable())
	assert.True(t, c.DownloadEnabled())

	c.ToggleRow(2)
	c.ToggleRow(1)
	assert.False(t, c.AllSelectedAvailable())
	assert.False(t, c.DownloadEnabled())
}

func TestDownloadDisabledWhenEmpty(t *testing.T) {
	c := New(items("available", "available"))
	assert.False(t, c.DownloadEnabled())
	_, err := c.Download()
	assert.ErrorIs(t, err, ErrDownloadDisabled)
}

func TestDownloadEndToEnd(t *testing.T) {
	c := New([]Item{
		{Name: "a", Device: "d1", Path: "/a", Status: "Available"},
		{Name: "b", Device: "d2", Path: "/b", Status: "Locked"},
	})
	c.ToggleRow(0)

	got, err := c.Download()
	require.NoError(t, err)
	assert.Equal(t, "Downloaded Items\n\nName: a Device: d1 Path: /a", got)
	assert.Equal(t, []int{0}, c.Selected(), "download does not mutate selection")
}

func TestDownloadUsesSelectionOrder(t *testing.T) {
	c := New([]Item{
		{Name: "a", Device: "d1", Path: "/a", Status: "available"},
		{Name: "b", Device: "d2", Path: "/b", Status: "available"},
		{Name: "c", Device: "d3", Path: "/c", Status: "available"},
	})
	c.ToggleRow(2)
	c.ToggleRow(0)

	got, err := c.Download()
	require.NoError(t, err)
	assert.Equal(t, "Downloaded Items\n\n"+
		"Name: c Device: d3 Path: /c\n"+
		"Name: a Device: d1 Path: /a", got)
}

func TestDownloadRejectsUnavailable(t *testing.T) {
	c := New(items("available", "locked"))
	c.ToggleAll()
	_, err := c.Download()
	assert.ErrorIs(t, err, ErrDownloadDisabled)
}

func TestSetItemsClearsSelection(t *testing.T) {
	c := New(items("available", "available"))
	c.ToggleAll()
	c.SetItems(items("available"))
	assert.Equal(t, 0, c.Count())
	assert.Equal(t, 1, c.Len())
}

func TestCheckStateString(t *testing.T) {
	assert.Equal(t, "[x]", Checked.String())
	assert.Equal(t, "[-]", Indeterminate.String())
	assert.Equal(t, "[ ]", Unchecked.String())
}
