package source

import (
	"testing"
	"time"

	"github.com/Akashdeep-Patra/dgv/internal/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingService struct {
	Static
	calls int
}

func (c *countingService) Items() ([]grid.Item, error) {
	c.calls++
	return c.List, nil
}

func TestCachedServiceReusesReads(t *testing.T) {
	inner := &countingService{Static: Static{Label: "inv", List: want}}
	c := NewCachedService(inner, time.Hour)

	for i := 0; i < 3; i++ {
		got, err := c.Items()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, 1, inner.calls)
	assert.Equal(t, "inv", c.Name())

	c.Invalidate()
	_, _ = c.Items()
	assert.Equal(t, 2, inner.calls)
}

func TestCachedServiceExpires(t *testing.T) {
	inner := &countingService{Static: Static{List: want}}
	c := NewCachedService(inner, time.Nanosecond)

	_, _ = c.Items()
	time.Sleep(time.Millisecond)
	_, _ = c.Items()
	assert.Equal(t, 2, inner.calls)
}
