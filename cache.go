package site

import (
	"sync"
	"time"
)

// PageCache is an in-memory cache of rendered pages with TTL. Keys are the
// request path plus whatever view state changes the output.
type PageCache struct {
	mu      sync.RWMutex
	entries map[string]cachedPage
	ttl     time.Duration
	now     func() time.Time
}

type cachedPage struct {
	body    []byte
	fetched time.Time
}

// NewPageCache creates a PageCache. A non-positive ttl disables caching.
func NewPageCache(ttl time.Duration) *PageCache {
	return &PageCache{entries: make(map[string]cachedPage), ttl: ttl, now: time.Now}
}

func (c *PageCache) valid(p cachedPage) bool {
	return p.body != nil && c.now().Sub(p.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh render.
func (c *PageCache) Invalidate() {
	c.mu.Lock()
	c.entries = make(map[string]cachedPage)
	c.mu.Unlock()
}

// Len returns the number of cached pages, stale ones included.
func (c *PageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Get returns the cached body for key, calling render on a miss. It tries a
// read lock first and only takes the write lock when a render is needed.
func (c *PageCache) Get(key string, render func() ([]byte, error)) ([]byte, error) {
	if c.ttl <= 0 {
		return render()
	}

	c.mu.RLock()
	p, ok := c.entries[key]
	if ok && c.valid(p) {
		c.mu.RUnlock()
		return p.body, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if p, ok := c.entries[key]; ok && c.valid(p) {
		return p.body, nil
	}
	body, err := render()
	if err != nil {
		return nil, err
	}
	c.entries[key] = cachedPage{body: body, fetched: c.now()}
	return body, nil
}
