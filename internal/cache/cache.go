package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/modsagraphy/universa/internal/metrics"
	"github.com/modsagraphy/universa/internal/types"
)

// unbounded entry count, entries age out after maxAge
const noSizeLimit = 0

// ItemCache keeps item bodies around while consensus on them may still need
// the copy. Entries older than maxAge are gone; the ledger stays
// authoritative for final states.
type ItemCache struct {
	lru *expirable.LRU[types.HashId, types.Approvable]
}

func New(maxAge time.Duration) *ItemCache {
	return &ItemCache{
		lru: expirable.NewLRU[types.HashId, types.Approvable](noSizeLimit, nil, maxAge),
	}
}

func (c *ItemCache) Put(item types.Approvable) {
	c.lru.Add(item.ID(), item)
	metrics.CacheSize.Set(float64(c.lru.Len()))
}

func (c *ItemCache) Get(id types.HashId) types.Approvable {
	item, ok := c.lru.Get(id)
	if !ok {
		metrics.CacheMisses.Inc()
		return nil
	}
	metrics.CacheHits.Inc()
	return item
}

// Has reports copy presence without touching recency.
func (c *ItemCache) Has(id types.HashId) bool {
	_, ok := c.lru.Peek(id)
	return ok
}

func (c *ItemCache) Len() int {
	return c.lru.Len()
}
