package datasource

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/wxtools/satdl/pkg/errors"
)

// Cache holds directory listings for a bounded time and a bounded number of
// directories. A zero or negative TTL disables caching entirely, in which
// case every lookup misses and every store is a no-op.
type Cache struct {
	entries *expirable.LRU[string, []string]
}

// NewCache creates a listing cache with the given TTL and entry bound.
func NewCache(ttl time.Duration, maxEntries int) *Cache {
	if ttl <= 0 {
		return &Cache{}
	}
	if maxEntries <= 0 {
		maxEntries = 256
	}
	return &Cache{entries: expirable.NewLRU[string, []string](maxEntries, nil, ttl)}
}

// Get returns the cached listing for dirPath, if present and unexpired.
func (c *Cache) Get(dirPath string) ([]string, bool) {
	if c.entries == nil {
		return nil, false
	}
	return c.entries.Get(dirPath)
}

// Put stores the listing for dirPath.
func (c *Cache) Put(dirPath string, files []string) {
	if c.entries == nil {
		return
	}
	c.entries.Add(dirPath, files)
}

// Invalidate removes the entry for dirPath, failing when none exists.
func (c *Cache) Invalidate(dirPath string) error {
	if c.entries == nil || !c.entries.Remove(dirPath) {
		return errors.Wrapf(errors.ErrCacheMiss, "'%s'", dirPath)
	}
	return nil
}

// Clear removes every entry.
func (c *Cache) Clear() {
	if c.entries != nil {
		c.entries.Purge()
	}
}
