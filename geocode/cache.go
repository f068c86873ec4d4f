// Copyright 2026 The Liberalitas Authors
// SPDX-License-Identifier: Apache-2.0

package geocode

import (
	gocache "github.com/patrickmn/go-cache"

	"github.com/epigraphia/liberalitas/utils/textutils"
)

// Cache memoizes geocoding outcomes by place name for the lifetime of one
// pipeline run. Failures are cached too, so each distinct place name is
// attempted against the provider at most once per session. Entries never
// expire; the cache is discarded with the run.
type Cache struct {
	entries *gocache.Cache
}

type cacheEntry struct {
	result *Result
	err    error
}

// NewCache creates an empty session-scoped cache.
func NewCache() *Cache {
	return &Cache{
		entries: gocache.New(gocache.NoExpiration, 0),
	}
}

// Lookup returns the cached outcome for a place name. The boolean reports
// whether any outcome (success or failure) was cached; a hit with a non-nil
// error is a remembered failure.
func (c *Cache) Lookup(place string) (*Result, bool, error) {
	v, found := c.entries.Get(textutils.LowerASCIIFolding(place))
	if !found {
		return nil, false, nil
	}

	entry := v.(cacheEntry)

	return entry.result, true, entry.err
}

// StoreResult caches a successful resolution for a place name.
func (c *Cache) StoreResult(place string, result *Result) {
	c.entries.Set(textutils.LowerASCIIFolding(place), cacheEntry{result: result}, gocache.NoExpiration)
}

// StoreFailure caches a failed resolution so the place is not retried.
func (c *Cache) StoreFailure(place string, err error) {
	c.entries.Set(textutils.LowerASCIIFolding(place), cacheEntry{err: err}, gocache.NoExpiration)
}

// Len returns the number of cached place names.
func (c *Cache) Len() int {
	return c.entries.ItemCount()
}
