package ledger

import (
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/KaleFarm_Go/internal/domain"
)

// CacheSchemaVersion is the current version of the cache schema
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

// CacheConfig sizes the read cache
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// DefaultCacheConfig returns the default cache sizing
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{Size: DefaultCacheSize, TTL: DefaultCacheTTL}
}

// CacheStats reports cache effectiveness
type CacheStats struct {
	Hits   int64
	Misses int64
	Size   int
}

// cachedFarmerEntry wraps a record with version metadata for cache invalidation
type cachedFarmerEntry struct {
	Version  string
	Record   domain.FarmerRecord
	CachedAt time.Time
}

// farmerCache is an expiring LRU of committed farmer records
type farmerCache struct {
	lru    *expirable.LRU[string, *cachedFarmerEntry]
	hits   atomic.Int64
	misses atomic.Int64
}

func newFarmerCache(cfg CacheConfig) *farmerCache {
	if cfg.Size <= 0 {
		cfg.Size = DefaultCacheSize
	}
	return &farmerCache{
		lru: expirable.NewLRU[string, *cachedFarmerEntry](cfg.Size, nil, cfg.TTL),
	}
}

// Get returns a copy of the cached record when present and current
func (c *farmerCache) Get(identity string) (domain.FarmerRecord, bool) {
	entry, found := c.lru.Get(identity)
	if !found {
		c.misses.Add(1)
		return domain.FarmerRecord{}, false
	}

	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(identity)
		c.misses.Add(1)
		return domain.FarmerRecord{}, false
	}

	c.hits.Add(1)
	return entry.Record, true
}

// Set stores a record with the current schema version
func (c *farmerCache) Set(record domain.FarmerRecord) {
	c.lru.Add(record.Identity, &cachedFarmerEntry{
		Version:  CacheSchemaVersion,
		Record:   record,
		CachedAt: time.Now(),
	})
}

// Invalidate removes a record from the cache
func (c *farmerCache) Invalidate(identity string) {
	c.lru.Remove(identity)
}

// Clear removes all entries from the cache
func (c *farmerCache) Clear() {
	c.lru.Purge()
}

// GetStats returns hit/miss counters and the current size
func (c *farmerCache) GetStats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}
