package usecase

import (
	"clinica_billing/internal/domain/entities"
	"sync"
	"time"
)

const cacheDayLayout = "2006-01-02"

// cacheKey identifies one memoized resolution. Service dates are truncated
// to the day: two lookups for the same day share an entry.
type cacheKey struct {
	scopeID string
	code    string
	day     string
}

func newCacheKey(scopeID, code string, serviceDate time.Time) cacheKey {
	return cacheKey{
		scopeID: scopeID,
		code:    code,
		day:     serviceDate.UTC().Format(cacheDayLayout),
	}
}

type cacheEntry struct {
	result     entities.ResolutionResult
	insertedAt time.Time
}

// resolutionCache memoizes resolution results for a bounded window. It is
// owned exclusively by the PricingUseCase; one instance per engine, no
// cross-process sharing.
//
// Housekeeping is a lazy sweep on every read: once a full TTL has elapsed
// since the last sweep, all entries are dropped. No background timer.
// Entries are only ever removed and reinserted, never mutated in place.
type resolutionCache struct {
	mu        sync.Mutex
	ttl       time.Duration
	entries   map[cacheKey]cacheEntry
	lastSweep time.Time
	now       func() time.Time
}

func newResolutionCache(ttl time.Duration) *resolutionCache {
	return &resolutionCache{
		ttl:       ttl,
		entries:   make(map[cacheKey]cacheEntry),
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

func (c *resolutionCache) get(key cacheKey) (entities.ResolutionResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.sweepLocked(now)

	e, ok := c.entries[key]
	if !ok {
		return entities.ResolutionResult{}, false
	}
	if now.Sub(e.insertedAt) >= c.ttl {
		delete(c.entries, key)
		return entities.ResolutionResult{}, false
	}
	return e.result, true
}

func (c *resolutionCache) put(key cacheKey, result entities.ResolutionResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{result: result, insertedAt: c.now()}
}

// invalidateScope drops every entry cached for scopeID, any code. Coarse on
// purpose: a clinic price change may shift results for sibling codes once
// the heuristic is involved.
func (c *resolutionCache) invalidateScope(scopeID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if key.scopeID == scopeID {
			delete(c.entries, key)
		}
	}
}

func (c *resolutionCache) invalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[cacheKey]cacheEntry)
}

func (c *resolutionCache) sweepLocked(now time.Time) {
	if now.Sub(c.lastSweep) < c.ttl {
		return
	}
	c.entries = make(map[cacheKey]cacheEntry)
	c.lastSweep = now
}

func (c *resolutionCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
