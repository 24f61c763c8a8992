package usecase

import (
	"testing"
	"time"

	"clinica_billing/internal/domain/entities"
)

func testResult(price float64) entities.ResolutionResult {
	return entities.ResolutionResult{
		Price:      price,
		Source:     entities.SourceOrganizationDefault,
		Confidence: entities.ConfidenceHigh,
	}
}

// fakeClock lets tests advance cache time without sleeping.
type fakeClock struct {
	current time.Time
}

func (f *fakeClock) now() time.Time { return f.current }

func (f *fakeClock) advance(d time.Duration) { f.current = f.current.Add(d) }

func newTestCache(ttl time.Duration) (*resolutionCache, *fakeClock) {
	clock := &fakeClock{current: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)}
	c := newResolutionCache(ttl)
	c.now = clock.now
	c.lastSweep = clock.current
	return c, clock
}

func TestResolutionCache_HitWithinTTL(t *testing.T) {
	c, clock := newTestCache(5 * time.Minute)
	key := newCacheKey("C1", "80053", clock.current)

	c.put(key, testResult(58))
	clock.advance(4 * time.Minute)

	res, ok := c.get(key)
	if !ok || res.Price != 58 {
		t.Fatalf("expected hit with 58, got %+v ok=%v", res, ok)
	}
}

func TestResolutionCache_EntryExpiresAfterTTL(t *testing.T) {
	c, clock := newTestCache(5 * time.Minute)
	key := newCacheKey("C1", "80053", clock.current)

	c.put(key, testResult(58))
	clock.advance(5 * time.Minute)

	if _, ok := c.get(key); ok {
		t.Fatalf("expected entry to be treated as absent after ttl")
	}
}

func TestResolutionCache_LazySweepDropsEverything(t *testing.T) {
	c, clock := newTestCache(5 * time.Minute)

	c.put(newCacheKey("C1", "80053", clock.current), testResult(58))
	c.put(newCacheKey("C2", "80061", clock.current), testResult(31))
	clock.advance(6 * time.Minute)

	// Any read triggers the sweep once the ttl window has elapsed.
	c.get(newCacheKey("C9", "none", clock.current))
	if got := c.len(); got != 0 {
		t.Fatalf("expected swept cache, %d entries remain", got)
	}
}

func TestResolutionCache_InvalidateScope(t *testing.T) {
	c, clock := newTestCache(5 * time.Minute)

	c.put(newCacheKey("C1", "80053", clock.current), testResult(58))
	c.put(newCacheKey("C1", "80061", clock.current), testResult(31))
	c.put(newCacheKey("C2", "80053", clock.current), testResult(44))

	c.invalidateScope("C1")

	if _, ok := c.get(newCacheKey("C1", "80053", clock.current)); ok {
		t.Fatalf("expected C1/80053 invalidated")
	}
	if _, ok := c.get(newCacheKey("C1", "80061", clock.current)); ok {
		t.Fatalf("expected C1/80061 invalidated")
	}
	if res, ok := c.get(newCacheKey("C2", "80053", clock.current)); !ok || res.Price != 44 {
		t.Fatalf("expected C2 entry untouched, got %+v ok=%v", res, ok)
	}
}

func TestResolutionCache_InvalidateAll(t *testing.T) {
	c, clock := newTestCache(5 * time.Minute)

	c.put(newCacheKey("C1", "80053", clock.current), testResult(58))
	c.put(newCacheKey("C2", "80061", clock.current), testResult(31))

	c.invalidateAll()
	if got := c.len(); got != 0 {
		t.Fatalf("expected empty cache, %d entries remain", got)
	}
}

func TestNewCacheKey_TruncatesToDay(t *testing.T) {
	morning := time.Date(2026, 3, 10, 8, 15, 0, 0, time.UTC)
	evening := time.Date(2026, 3, 10, 22, 45, 0, 0, time.UTC)
	nextDay := time.Date(2026, 3, 11, 8, 15, 0, 0, time.UTC)

	if newCacheKey("C1", "80053", morning) != newCacheKey("C1", "80053", evening) {
		t.Fatalf("expected same-day times to share a key")
	}
	if newCacheKey("C1", "80053", morning) == newCacheKey("C1", "80053", nextDay) {
		t.Fatalf("expected different days to use different keys")
	}
}
