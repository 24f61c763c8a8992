package entities

import "time"

// OrganizationDefaultScopeID is the sentinel scope for organization-wide
// default prices. Clinic scopes must never carry this value.
const OrganizationDefaultScopeID = "organization-default"

// PriceRecord is an effective-dated price for a billable code, scoped either
// to a single clinic or to the organization-default sentinel.
//
// Lifecycle:
//   - created open-ended (EffectiveTo = nil) by a price-set mutation
//   - "ended" by stamping EffectiveTo when a newer price replaces it
//   - never physically deleted
//
// Invariant: at most one open-ended record exists per (ScopeID, Code).
//
// Storage model (DynamoDB):
//   - PK: scope_code ("<scope_id>#<code>")
//   - SK: effective_from
//   - GSI (scope-code-index): scope_id / code, for category-prefix queries
type PriceRecord struct {
	ID            string     `json:"id"`
	ScopeID       string     `json:"scope_id"`
	Code          string     `json:"code"`
	Price         float64    `json:"price"`
	EffectiveFrom time.Time  `json:"effective_from"`
	EffectiveTo   *time.Time `json:"effective_to,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// IsOpen reports whether the record is still open-ended.
func (r PriceRecord) IsOpen() bool {
	return r.EffectiveTo == nil
}

// IsOrganizationDefault reports whether the record belongs to the
// organization-default scope.
func (r PriceRecord) IsOrganizationDefault() bool {
	return r.ScopeID == OrganizationDefaultScopeID
}

// EffectiveAt reports whether the record covers the given service date.
func (r PriceRecord) EffectiveAt(serviceDate time.Time) bool {
	if r.EffectiveFrom.After(serviceDate) {
		return false
	}
	return r.EffectiveTo == nil || !r.EffectiveTo.Before(serviceDate)
}
