package cache

import (
	"context"
	"slices"
	"sync"
	"time"
)

type entry struct {
	value     []string
	expiresAt time.Time
}

type memoryCache struct {
	mux     sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

// NewMemoryCache returns a process-local Cache.
func NewMemoryCache() Cache {
	return newMemoryCache(time.Now)
}

func newMemoryCache(now func() time.Time) *memoryCache {
	return &memoryCache{
		entries: make(map[string]entry),
		now:     now,
	}
}

func (c *memoryCache) Get(ctx context.Context, key string) ([]string, bool, error) {
	c.mux.RLock()
	e, ok := c.entries[key]
	c.mux.RUnlock()

	if !ok {
		return nil, false, nil
	}

	if !e.expiresAt.IsZero() && !c.now().Before(e.expiresAt) {
		c.mux.Lock()
		if current, ok := c.entries[key]; ok && current.expiresAt.Equal(e.expiresAt) {
			delete(c.entries, key)
		}
		c.mux.Unlock()
		return nil, false, nil
	}

	return slices.Clone(e.value), true, nil
}

// Set stores value; an expiration of zero or less never expires.
func (c *memoryCache) Set(ctx context.Context, key string, value []string, expiration time.Duration) error {
	e := entry{value: slices.Clone(value)}
	if expiration > 0 {
		e.expiresAt = c.now().Add(expiration)
	}

	c.mux.Lock()
	defer c.mux.Unlock()

	c.entries[key] = e
	return nil
}

func (c *memoryCache) Delete(ctx context.Context, key string) error {
	c.mux.Lock()
	defer c.mux.Unlock()

	delete(c.entries, key)
	return nil
}
