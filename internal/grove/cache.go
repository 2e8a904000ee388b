package grove

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/GrapeChallenge_Web/internal/metrics"
)

// CacheSchemaVersion is the current version of the cache schema.
// Increment this when the cached data structure changes to auto-invalidate old entries.
const CacheSchemaVersion = "1.0"

// cellListKey is the cache key of the full cell list
const cellListKey = "cells"

// cachedCellsEntry wraps the cell list with version metadata for cache invalidation
type cachedCellsEntry struct {
	Version  string
	Cells    []string
	CachedAt time.Time
}

// CellCache keeps the backend's cell list in memory with time-based expiration.
// Cells change rarely, so every grove page shares one entry.
type CellCache struct {
	lru *expirable.LRU[string, *cachedCellsEntry]
}

// NewCellCache creates a cell cache holding at most size entries for ttl
func NewCellCache(size int, ttl time.Duration) *CellCache {
	if size <= 0 {
		size = 1
	}
	return &CellCache{
		lru: expirable.NewLRU[string, *cachedCellsEntry](size, nil, ttl),
	}
}

// Get returns the cached cell list.
// Returns (nil, false) if not in cache, expired, or version mismatch.
func (c *CellCache) Get() ([]string, bool) {
	entry, found := c.lru.Get(cellListKey)
	if !found {
		metrics.RecordCacheLookup(false)
		return nil, false
	}

	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(cellListKey)
		metrics.RecordCacheLookup(false)
		return nil, false
	}

	metrics.RecordCacheLookup(true)
	return entry.Cells, true
}

// Set stores the cell list with the current schema version
func (c *CellCache) Set(cells []string) {
	c.lru.Add(cellListKey, &cachedCellsEntry{
		Version:  CacheSchemaVersion,
		Cells:    cells,
		CachedAt: time.Now(),
	})
}
