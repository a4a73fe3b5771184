package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRowContract(t *testing.T) {
	c := New([]Item{
		{Name: "a", Device: "d1", Path: "/a", Status: "AVAILABLE"},
		{Name: "b", Device: "d2", Path: "/b", Status: "Locked"},
		{Name: "c", Device: "d3", Path: "/c", Status: "locked"},
	})
	c.ToggleRow(0)

	r := c.Row(0)
	assert.True(t, r.Checked)
	assert.False(t, r.Disabled)
	assert.Equal(t, "a", r.Name)
	assert.Equal(t, "d1", r.Device)
	assert.Equal(t, "/a", r.Path)
	assert.True(t, r.Status.Marker)
	assert.Equal(t, "Available", r.Status.Text)

	for _, idx := range []int{1, 2} {
		r := c.Row(idx)
		assert.True(t, r.Disabled, "row %d", idx)
		assert.False(t, r.Checked)
		assert.False(t, r.Status.Marker)
		assert.Equal(t, "Locked", r.Status.Text)
	}
}

func TestTable(t *testing.T) {
	c := New([]Item{
		{Name: "a", Device: "d1", Path: "/a", Status: "available"},
		{Name: "b", Device: "d2", Path: "/b", Status: "locked"},
	})
	c.ToggleRow(1)

	tbl := c.Table()
	assert.Equal(t, []string{"", "Name", "Device", "Path", "Status"}, tbl.Headers)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, []string{"[ ]", "a", "d1", "/a", "● Available"}, []string(tbl.Rows[0]))
	assert.Equal(t, []string{"[!]", "b", "d2", "/b", "Locked"}, []string(tbl.Rows[1]))

	c.ToggleRow(1)
	assert.Equal(t, "[·]", c.Table().Rows[1][0])
}

func TestRowBox(t *testing.T) {
	tests := []struct {
		name string
		row  RowState
		want string
	}{
		{"enabled off", RowState{}, "[ ]"},
		{"enabled on", RowState{Checked: true}, "[x]"},
		{"disabled off", RowState{Disabled: true}, "[·]"},
		{"disabled on", RowState{Disabled: true, Checked: true}, "[!]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.row.Box())
		})
	}
}
