package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	tests := []struct {
		in     string
		marker bool
		text   string
	}{
		{"AVAILABLE", true, "Available"},
		{"available", true, "Available"},
		{"Available", true, "Available"},
		{"locked", false, "Locked"},
		{"in use", false, "In use"},
		{"lOCKED", false, "LOCKED"},
		{"", false, ""},
		{"éclair", false, "Éclair"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Render(tt.in)
			assert.Equal(t, tt.marker, got.Marker)
			assert.Equal(t, tt.text, got.Text)
		})
	}
}

func TestVisualString(t *testing.T) {
	assert.Equal(t, "● Available", Render("available").String())
	assert.Equal(t, "Locked", Render("locked").String())
}

func TestIsAvailable(t *testing.T) {
	assert.True(t, IsAvailable("AvAiLaBlE"))
	assert.False(t, IsAvailable("available "))
	assert.False(t, IsAvailable(""))
}
