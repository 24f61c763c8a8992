package usecase

import (
	"clinica_billing/internal/domain/entities"
	"context"
	"log"
	"time"
)

// resolveTier attempts the clinic-override tier, then the
// organization-default tier, as point-in-time lookups against the store.
//
// A store failure at a tier is logged and treated as absent at that tier so
// the caller falls through to the next step. Billing imports must never
// abort on a pricing lookup problem.
func (u *PricingUseCase) resolveTier(ctx context.Context, clinicID, code string, serviceDate time.Time) (entities.PriceRecord, entities.ResolutionSource, bool) {
	rec, err := u.store.QueryOpenPriceRecord(ctx, clinicID, code, serviceDate)
	if err != nil {
		log.Printf("[pricing][resolver] clinic tier lookup failed clinic_id=%s code=%s: %v", clinicID, code, err)
	} else if rec.ID != "" {
		return rec, entities.SourceClinicOverride, true
	}

	rec, err = u.store.QueryOpenPriceRecord(ctx, entities.OrganizationDefaultScopeID, code, serviceDate)
	if err != nil {
		log.Printf("[pricing][resolver] default tier lookup failed code=%s: %v", code, err)
	} else if rec.ID != "" {
		return rec, entities.SourceOrganizationDefault, true
	}

	return entities.PriceRecord{}, "", false
}
