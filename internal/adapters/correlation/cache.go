// Package correlation holds the in-memory correlation cache that pairs
// partial observations of the same exchange, and the sweeper that ages them out.
package correlation

import (
	"strings"
	"sync"
	"time"

	"go.trai.ch/clustertap/internal/core/domain"
)

type entry struct {
	record     domain.ExchangeRecord
	insertedAt time.Time
}

// Cache implements ports.CorrelationCache with a mutex-guarded map.
// Entries are replaced on every Put and only removed by Sweep, so a read may
// return an entry older than maxAge until the next sweep.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*entry // endpointID -> latest entry
	maxAge  time.Duration
}

// NewCache creates a cache whose entries become eligible for eviction after maxAge.
func NewCache(maxAge time.Duration) *Cache {
	return &Cache{
		entries: make(map[string]*entry),
		maxAge:  maxAge,
	}
}

// Put stores the record under endpointID, replacing any previous one.
func (c *Cache) Put(endpointID string, record domain.ExchangeRecord) {
	e := &entry{record: record, insertedAt: time.Now()}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[endpointID] = e
}

// Get returns the record stored under endpointID.
func (c *Cache) Get(endpointID string) (domain.ExchangeRecord, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[endpointID]
	if !ok {
		return domain.ExchangeRecord{}, false
	}
	return e.record, true
}

// GetByPrefix returns a record whose key, with its query string removed,
// starts with prefix. When several keys match, which one is returned depends
// on map iteration order. An empty prefix never matches.
func (c *Cache) GetByPrefix(prefix string) (domain.ExchangeRecord, bool) {
	if prefix == "" {
		return domain.ExchangeRecord{}, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	for key, e := range c.entries {
		if strings.HasPrefix(domain.StripQuery(key), prefix) {
			return e.record, true
		}
	}
	return domain.ExchangeRecord{}, false
}

// Len returns the number of stored entries, expired or not.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Sweep removes every entry older than maxAge and returns how many were removed.
func (c *Cache) Sweep() int {
	return c.removeExpired(c.collectExpired(time.Now()))
}

func (c *Cache) collectExpired(now time.Time) map[string]*entry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	expired := make(map[string]*entry)
	for key, e := range c.entries {
		if now.Sub(e.insertedAt) > c.maxAge {
			expired[key] = e
		}
	}
	return expired
}

// removeExpired deletes the collected keys whose stored entry has not been
// replaced since collection.
func (c *Cache) removeExpired(expired map[string]*entry) int {
	if len(expired) == 0 {
		return 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, stale := range expired {
		if c.entries[key] == stale {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}
