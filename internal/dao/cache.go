// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of lendr

package dao

import (
	"strings"
	"sync"
	"time"
)

// DefaultCacheTTL is the default time-to-live for cached datasets.
const DefaultCacheTTL = 5 * time.Second

type cacheEntry struct {
	data      *Dataset
	timestamp time.Time
}

// DatasetCache provides TTL-based caching for loaded datasets, keyed by source.
type DatasetCache struct {
	data map[string]cacheEntry
	ttl  time.Duration
	now  func() time.Time
	mx   sync.RWMutex
}

// NewDatasetCache creates a new DatasetCache with the specified TTL.
func NewDatasetCache(ttl time.Duration) *DatasetCache {
	return &DatasetCache{
		data: make(map[string]cacheEntry),
		ttl:  ttl,
		now:  time.Now,
	}
}

// Get retrieves a cached dataset for the given key.
// Returns nil if the key is not found or the entry has expired.
func (c *DatasetCache) Get(key string) *Dataset {
	c.mx.RLock()
	defer c.mx.RUnlock()

	entry, exists := c.data[key]
	if !exists {
		return nil
	}
	if c.now().Sub(entry.timestamp) > c.ttl {
		return nil
	}

	return entry.data
}

// Set stores a dataset in the cache with the given key.
func (c *DatasetCache) Set(key string, ds *Dataset) {
	c.mx.Lock()
	defer c.mx.Unlock()

	c.data[key] = cacheEntry{
		data:      ds,
		timestamp: c.now(),
	}
}

// Invalidate removes a specific key from the cache.
func (c *DatasetCache) Invalidate(key string) {
	c.mx.Lock()
	defer c.mx.Unlock()

	delete(c.data, key)
}

// InvalidatePrefix removes all cache entries whose keys start with the given prefix.
func (c *DatasetCache) InvalidatePrefix(prefix string) {
	c.mx.Lock()
	defer c.mx.Unlock()

	for key := range c.data {
		if strings.HasPrefix(key, prefix) {
			delete(c.data, key)
		}
	}
}

// Clear removes all entries from the cache.
func (c *DatasetCache) Clear() {
	c.mx.Lock()
	defer c.mx.Unlock()

	c.data = make(map[string]cacheEntry)
}
