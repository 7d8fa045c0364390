// Package rastercache provides an optional presentation-side cache for
// rendered rasters. The render engine itself holds no cache and is safe to
// call redundantly; callers that re-render the same frame while a user
// drags a slider can layer this on top.
package rastercache

import (
	"sync"

	"github.com/jpfielding/voxview.go/pkg/util"
)

// Key identifies one rendered raster: the resolved frame plus every input
// that changes the mapping.
type Key struct {
	FrameIndex   int     `json:"frame"`
	WindowCenter float64 `json:"wc"`
	WindowWidth  float64 `json:"ww"`
	Photometric  string  `json:"photometric"`
}

func (k Key) id() string {
	return util.HashUUID(k)
}

// Cache is a bounded FIFO cache of RGBA rasters, safe for concurrent use
type Cache struct {
	mu      sync.Mutex
	max     int
	entries map[string][]byte
	order   []string
}

// New creates a cache holding at most max rasters. max <= 0 defaults to 64.
func New(max int) *Cache {
	if max <= 0 {
		max = 64
	}
	return &Cache{
		max:     max,
		entries: make(map[string][]byte, max),
	}
}

// Get returns the cached raster for the key, if present
func (c *Cache) Get(k Key) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	raster, ok := c.entries[k.id()]
	return raster, ok
}

// Put stores a raster, evicting the oldest entry when the cache is full
func (c *Cache) Put(k Key, raster []byte) {
	id := k.id()
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.entries[id]; exists {
		c.entries[id] = raster
		return
	}
	for len(c.order) >= c.max {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
	c.entries[id] = raster
	c.order = append(c.order, id)
}

// Len returns the number of cached rasters
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
