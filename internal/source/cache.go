package source

import (
	"sync"
	"time"

	"github.com/Akashdeep-Patra/dgv/internal/grid"
)

// CachedService wraps a Service with a short TTL so the views, the status bar
// and the CLI share one read of the dataset per refresh cycle. Invalidate is
// called by the file watcher when the dataset changes on disk.
type CachedService struct {
	inner Service
	ttl   time.Duration

	mu     sync.Mutex
	items  []grid.Item
	err    error
	expiry time.Time
	valid  bool
}

var _ Service = (*CachedService)(nil)

// NewCachedService wraps inner with a TTL cache.
func NewCachedService(inner Service, ttl time.Duration) *CachedService {
	return &CachedService{inner: inner, ttl: ttl}
}

// Invalidate drops the cached items.
func (c *CachedService) Invalidate() {
	c.mu.Lock()
	c.valid = false
	c.items = nil
	c.err = nil
	c.mu.Unlock()
}

// Name delegates to the inner service.
func (c *CachedService) Name() string { return c.inner.Name() }

// Path delegates to the inner service.
func (c *CachedService) Path() string { return c.inner.Path() }

// Items returns the cached items, reading through on a miss.
func (c *CachedService) Items() ([]grid.Item, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.valid && time.Now().Before(c.expiry) {
		return c.items, c.err
	}
	c.items, c.err = c.inner.Items()
	c.expiry = time.Now().Add(c.ttl)
	c.valid = true
	return c.items, c.err
}
