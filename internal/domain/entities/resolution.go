package entities

// ResolutionSource identifies which tier produced a resolved price.
type ResolutionSource string

const (
	SourceClinicOverride      ResolutionSource = "clinic_override"
	SourceOrganizationDefault ResolutionSource = "organization_default"
	SourceSuggestedEstimate   ResolutionSource = "suggested_estimate"
)

// Confidence grades how authoritative a resolved price is. Tier matches are
// High; heuristic estimates are always Low so the UI can flag them for
// manual pricing review.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// ResolutionResult is the outcome of a price resolution. Immutable once
// returned; cached copies are returned as-is.
type ResolutionResult struct {
	Price      float64          `json:"price"`
	Source     ResolutionSource `json:"source"`
	Confidence Confidence       `json:"confidence"`
	Note       string           `json:"note"`
}
