// Package carousel owns the slideshow loop: timed advancing with an
// unseen-first policy, live-session transitions, and a bounded preload cache
// in front of asset resolution.
package carousel

import (
	"sync"

	"github.com/framecast-cli/framecast/catalog"
	"github.com/samber/mo"
)

// Cache is a bounded asset cache with insertion-order eviction: when full,
// the oldest-inserted entry is dropped, and re-inserting an existing key does
// not refresh its position. The preload window is small and sequential, so
// this is deliberately cheaper than true LRU.
type Cache struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]catalog.Asset
	order    []string
}

// NewCache creates a cache bounded to the given capacity.
func NewCache(capacity int) *Cache {
	return &Cache{
		capacity: capacity,
		entries:  make(map[string]catalog.Asset),
	}
}

// Get returns the cached asset for an item id, if present.
func (c *Cache) Get(id string) mo.Option[catalog.Asset] {
	c.mu.Lock()
	defer c.mu.Unlock()

	asset, ok := c.entries[id]
	if !ok {
		return mo.None[catalog.Asset]()
	}
	return mo.Some(asset)
}

// Put stores an asset, evicting the oldest-inserted entry when over capacity.
func (c *Cache) Put(id string, asset catalog.Asset) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[id]; exists {
		c.entries[id] = asset
		return
	}

	c.entries[id] = asset
	c.order = append(c.order, id)

	if len(c.order) > c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
}

// Size returns the number of cached entries.
func (c *Cache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]catalog.Asset)
	c.order = nil
}
