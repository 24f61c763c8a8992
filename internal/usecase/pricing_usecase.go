package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"clinica_billing/internal/domain/entities"
	"clinica_billing/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidClinicID      = errors.New("invalid clinic id")
	ErrInvalidCode          = errors.New("invalid billable code")
	ErrInvalidServiceDate   = errors.New("invalid service date")
	ErrInvalidPrice         = errors.New("invalid price")
	ErrInvalidEffectiveFrom = errors.New("invalid effective_from date")
)

const (
	defaultCacheTTL            = 5 * time.Minute
	defaultBatchChunkSize      = 50
	defaultSuggestionPrefixLen = 3
	defaultSuggestionLimit     = 10
)

// Config tunes the resolution engine. Zero values fall back to the defaults
// above.
type Config struct {
	CacheTTL            time.Duration
	BatchChunkSize      int
	SuggestionPrefixLen int
	SuggestionLimit     int
}

func (c Config) withDefaults() Config {
	if c.CacheTTL <= 0 {
		c.CacheTTL = defaultCacheTTL
	}
	if c.BatchChunkSize <= 0 {
		c.BatchChunkSize = defaultBatchChunkSize
	}
	if c.SuggestionPrefixLen <= 0 {
		c.SuggestionPrefixLen = defaultSuggestionPrefixLen
	}
	if c.SuggestionLimit <= 0 {
		c.SuggestionLimit = defaultSuggestionLimit
	}
	return c
}

// IPricingUseCase exposes the price-resolution engine.
//
// Resolution order per lookup: clinic override, organization default,
// category-prefix suggestion, zero-price fallback. Read operations are total
// from the caller's perspective: they only error on malformed input, never
// on missing data or store trouble.

type IPricingUseCase interface {
	Resolve(ctx context.Context, clinicID, code string, serviceDate time.Time) (entities.ResolutionResult, error)
	ResolveBatch(ctx context.Context, clinicID string, codes []string, serviceDate time.Time) (map[string]entities.ResolutionResult, error)
	SetClinicPrice(ctx context.Context, clinicID, code string, price float64, effectiveFrom time.Time) error
	SetOrganizationDefaultPrice(ctx context.Context, code string, price float64, effectiveFrom time.Time) error
}

type PricingUseCase struct {
	store interfaces.IPriceStore
	cfg   Config
	cache *resolutionCache
	now   func() time.Time
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

func NewPricingUseCase(store interfaces.IPriceStore, cfg Config) *PricingUseCase {
	cfg = cfg.withDefaults()
	return &PricingUseCase{
		store: store,
		cfg:   cfg,
		cache: newResolutionCache(cfg.CacheTTL),
		now:   time.Now,
	}
}

// Resolve returns the unit price to charge for (clinicID, code) on
// serviceDate. It errors only for malformed input; every runtime condition,
// including store unavailability, degrades to a Low-confidence result.
func (u *PricingUseCase) Resolve(ctx context.Context, clinicID, code string, serviceDate time.Time) (entities.ResolutionResult, error) {
	clinicID = strings.TrimSpace(clinicID)
	if clinicID == "" {
		return entities.ResolutionResult{}, ErrInvalidClinicID
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return entities.ResolutionResult{}, ErrInvalidCode
	}
	if serviceDate.IsZero() {
		return entities.ResolutionResult{}, ErrInvalidServiceDate
	}
	return u.resolve(ctx, clinicID, code, serviceDate), nil
}

func (u *PricingUseCase) resolve(ctx context.Context, clinicID, code string, serviceDate time.Time) entities.ResolutionResult {
	key := newCacheKey(clinicID, code, serviceDate)
	if cached, ok := u.cache.get(key); ok {
		return cached
	}

	result := u.compute(ctx, clinicID, code, serviceDate)
	u.cache.put(key, result)
	return result
}

func (u *PricingUseCase) compute(ctx context.Context, clinicID, code string, serviceDate time.Time) entities.ResolutionResult {
	if rec, source, ok := u.resolveTier(ctx, clinicID, code, serviceDate); ok {
		return entities.ResolutionResult{
			Price:      rec.Price,
			Source:     source,
			Confidence: entities.ConfidenceHigh,
			Note:       fmt.Sprintf("price record %s effective from %s", rec.ID, rec.EffectiveFrom.UTC().Format(cacheDayLayout)),
		}
	}

	if price, ok := u.suggestPrice(ctx, code); ok {
		return entities.ResolutionResult{
			Price:      price,
			Source:     entities.SourceSuggestedEstimate,
			Confidence: entities.ConfidenceLow,
			Note:       "estimated from organization defaults sharing the category prefix",
		}
	}

	return zeroFallback("no price data found for this code")
}

// zeroFallback is the terminal result: an explicit "needs manual pricing"
// signal rather than an error.
func zeroFallback(reason string) entities.ResolutionResult {
	return entities.ResolutionResult{
		Price:      0,
		Source:     entities.SourceSuggestedEstimate,
		Confidence: entities.ConfidenceLow,
		Note:       reason + "; needs manual pricing",
	}
}

// ResolveBatch resolves a list of codes for one clinic and service date, in
// fixed-size chunks to bound concurrent outstanding lookups. Every input
// code gets exactly one entry (duplicates collapse); a code that cannot be
// resolved degrades per Resolve instead of being dropped.
func (u *PricingUseCase) ResolveBatch(ctx context.Context, clinicID string, codes []string, serviceDate time.Time) (map[string]entities.ResolutionResult, error) {
	clinicID = strings.TrimSpace(clinicID)
	if clinicID == "" {
		return nil, ErrInvalidClinicID
	}
	if serviceDate.IsZero() {
		return nil, ErrInvalidServiceDate
	}

	results := make(map[string]entities.ResolutionResult, len(codes))
	var mu sync.Mutex

	for start := 0; start < len(codes); start += u.cfg.BatchChunkSize {
		end := start + u.cfg.BatchChunkSize
		if end > len(codes) {
			end = len(codes)
		}

		g, gctx := errgroup.WithContext(ctx)
		for _, raw := range codes[start:end] {
			code := strings.TrimSpace(raw)
			g.Go(func() error {
				var result entities.ResolutionResult
				if code == "" {
					result = zeroFallback("empty billable code")
				} else {
					result = u.resolve(gctx, clinicID, code, serviceDate)
				}
				mu.Lock()
				results[code] = result
				mu.Unlock()
				return nil
			})
		}
		// Workers never return errors; Wait only synchronizes the chunk.
		_ = g.Wait()
	}
	return results, nil
}

// SetClinicPrice closes any open-ended clinic record for (clinicID, code)
// and opens a new one. On success every cache entry for the clinic is
// invalidated. A store failure is returned to the caller and leaves the
// cache untouched.
func (u *PricingUseCase) SetClinicPrice(ctx context.Context, clinicID, code string, price float64, effectiveFrom time.Time) error {
	clinicID = strings.TrimSpace(clinicID)
	if clinicID == "" || clinicID == entities.OrganizationDefaultScopeID {
		return ErrInvalidClinicID
	}
	if err := u.setPrice(ctx, clinicID, code, price, effectiveFrom); err != nil {
		return err
	}
	u.cache.invalidateScope(clinicID)
	return nil
}

// SetOrganizationDefaultPrice is the same close/insert pattern on the
// organization-default scope. Defaults feed the suggestion heuristic for
// every clinic, so success invalidates the entire cache.
func (u *PricingUseCase) SetOrganizationDefaultPrice(ctx context.Context, code string, price float64, effectiveFrom time.Time) error {
	if err := u.setPrice(ctx, entities.OrganizationDefaultScopeID, code, price, effectiveFrom); err != nil {
		return err
	}
	u.cache.invalidateAll()
	return nil
}

func (u *PricingUseCase) setPrice(ctx context.Context, scopeID, code string, price float64, effectiveFrom time.Time) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return ErrInvalidCode
	}
	if price < 0 {
		return ErrInvalidPrice
	}
	if effectiveFrom.IsZero() {
		return ErrInvalidEffectiveFrom
	}

	now := u.now().UTC()
	if err := u.store.CloseOpenPriceRecord(ctx, scopeID, code, now); err != nil {
		return fmt.Errorf("close open price record: %w", err)
	}
	record := entities.PriceRecord{
		ID:            uuid.NewString(),
		ScopeID:       scopeID,
		Code:          code,
		Price:         price,
		EffectiveFrom: effectiveFrom,
		CreatedAt:     now,
	}
	if err := u.store.InsertPriceRecord(ctx, record); err != nil {
		return fmt.Errorf("insert price record: %w", err)
	}
	return nil
}
