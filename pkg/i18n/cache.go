package i18n

import (
	"context"
	"sync"
)

// Cache stores loaded translation groups per (locale, group) pair.
type Cache interface {
	// Get returns the cached group. Returns ErrCacheMiss if the pair has
	// not been stored.
	Get(ctx context.Context, locale, group string) (Node, error)

	// Put stores data for the pair, replacing any previous entry for the
	// same pair only.
	Put(ctx context.Context, locale, group string, data Node) error
}

// MemoryCache is an in-process Cache without eviction. Entries live as long
// as the cache itself; its size is bounded by the number of distinct pairs
// ever requested.
type MemoryCache struct {
	entries map[string]map[string]Node
	mu      sync.RWMutex
}

// NewMemoryCache creates an empty in-memory cache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]map[string]Node)}
}

// Get returns the group stored for locale, or ErrCacheMiss.
func (c *MemoryCache) Get(_ context.Context, locale, group string) (Node, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, ok := c.entries[locale][group]
	if !ok {
		return nil, ErrCacheMiss
	}
	return data, nil
}

// Put stores data for (locale, group).
func (c *MemoryCache) Put(_ context.Context, locale, group string, data Node) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	groups, ok := c.entries[locale]
	if !ok {
		groups = make(map[string]Node)
		c.entries[locale] = groups
	}
	groups[group] = data

	return nil
}

// Len returns the number of cached pairs.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := 0
	for _, groups := range c.entries {
		n += len(groups)
	}
	return n
}

var _ Cache = (*MemoryCache)(nil)
