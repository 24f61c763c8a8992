package usecase

import (
	"context"
	"log"
	"math"

	"clinica_billing/internal/domain/entities"
)

// suggestPrice derives a fallback estimate for a code with no price data of
// its own: the mean of organization-default prices sharing its category
// prefix (billable codes group by their leading characters in this domain).
//
// The result is a heuristic, never an authoritative price; callers must wrap
// it as a Low-confidence SuggestedEstimate. Returns not-found when no
// sibling defaults exist or the store is unavailable.
func (u *PricingUseCase) suggestPrice(ctx context.Context, code string) (float64, bool) {
	prefix := code
	if len(prefix) > u.cfg.SuggestionPrefixLen {
		prefix = prefix[:u.cfg.SuggestionPrefixLen]
	}

	records, err := u.store.QueryDefaultPricesByCodePrefix(ctx, prefix, u.cfg.SuggestionLimit)
	if err != nil {
		log.Printf("[pricing][suggestion] prefix lookup failed prefix=%s: %v", prefix, err)
		return 0, false
	}
	if len(records) == 0 {
		return 0, false
	}
	return meanHalfUp(records), true
}

// meanHalfUp averages record prices in integer cents so that round-half-up
// at two decimals is exact. Naive float64 math turns the 10.005 midpoint
// into 10.00499... and rounds the wrong way.
func meanHalfUp(records []entities.PriceRecord) float64 {
	var totalCents int64
	for _, r := range records {
		totalCents += int64(math.Round(r.Price * 100))
	}
	n := int64(len(records))
	meanCents := (2*totalCents + n) / (2 * n)
	return float64(meanCents) / 100
}
