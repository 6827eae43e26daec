package tabscroll

import (
	"math"

	"github.com/hashicorp/golang-lru/v2/simplelru"
)

// minCacheLimit is the smallest effective cache limit. The lifecycle window
// keeps up to three pages materialized, so a smaller limit would evict pages
// that are on screen.
const minCacheLimit = 3

// EffectiveLimit resolves a configured cache limit: values above three are
// used as is, values below one mean "cache every page", and 1..3 become 3.
func EffectiveLimit(limit, pageCount int) int {
	switch {
	case limit > minCacheLimit:
		return limit
	case limit < 1:
		return pageCount
	default:
		return minCacheLimit
	}
}

// PageCache maps page indices to materialized content handles in
// access order. It never evicts on its own; overflow is resolved by Enforce.
type PageCache struct {
	lru *simplelru.LRU[int, Positionable]
}

// NewPageCache creates an empty cache.
func NewPageCache() *PageCache {
	// The capacity only has to exceed any realistic page count.
	lru, err := simplelru.NewLRU[int, Positionable](math.MaxInt32, nil)
	if err != nil {
		panic(err)
	}
	return &PageCache{lru: lru}
}

// Get returns the handle cached for index without changing its recency.
func (c *PageCache) Get(index int) (Positionable, bool) {
	return c.lru.Peek(index)
}

// Put caches v for index unless index is already cached.
func (c *PageCache) Put(index int, v Positionable) {
	if c.lru.Contains(index) {
		return
	}
	c.lru.Add(index, v)
}

// Touch marks index as most recently used. Unknown indices are ignored.
func (c *PageCache) Touch(index int) {
	c.lru.Get(index)
}

// EvictOldest removes and returns the least recently used entry.
func (c *PageCache) EvictOldest() (int, Positionable, bool) {
	return c.lru.RemoveOldest()
}

// Enforce evicts oldest entries until at most limit remain, passing each
// evicted entry to detach.
func (c *PageCache) Enforce(limit int, detach func(index int, v Positionable)) int {
	evicted := 0
	for c.lru.Len() > limit {
		index, v, ok := c.lru.RemoveOldest()
		if !ok {
			break
		}
		evicted++
		if detach != nil {
			detach(index, v)
		}
	}
	return evicted
}

// Len returns the number of cached pages.
func (c *PageCache) Len() int {
	return c.lru.Len()
}

// Indices returns cached indices from least to most recently used.
func (c *PageCache) Indices() []int {
	return c.lru.Keys()
}

// Purge empties the cache, passing every entry to fn first.
func (c *PageCache) Purge(fn func(index int, v Positionable)) {
	if fn != nil {
		for _, index := range c.lru.Keys() {
			if v, ok := c.lru.Peek(index); ok {
				fn(index, v)
			}
		}
	}
	c.lru.Purge()
}
