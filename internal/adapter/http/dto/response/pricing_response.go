package response

import (
	"time"

	"clinica_billing/internal/domain/entities"
)

// ResolutionResponse mirrors entities.ResolutionResult for API clients. The
// source/confidence pair is the contract the pricing UI uses to visually
// flag estimates that need manual review.
type ResolutionResponse struct {
	Price      float64 `json:"price"`
	Source     string  `json:"source"`
	Confidence string  `json:"confidence"`
	Note       string  `json:"note"`
}

func FromResolution(r entities.ResolutionResult) ResolutionResponse {
	return ResolutionResponse{
		Price:      r.Price,
		Source:     string(r.Source),
		Confidence: string(r.Confidence),
		Note:       r.Note,
	}
}

type BatchResolutionResponse struct {
	Results map[string]ResolutionResponse `json:"results"`
}

func FromResolutionMap(results map[string]entities.ResolutionResult) BatchResolutionResponse {
	out := make(map[string]ResolutionResponse, len(results))
	for code, r := range results {
		out[code] = FromResolution(r)
	}
	return BatchResolutionResponse{Results: out}
}

// PriceUpdateResponse acknowledges a successful price mutation.
type PriceUpdateResponse struct {
	ScopeID       string    `json:"scope_id"`
	Code          string    `json:"code"`
	Price         float64   `json:"price"`
	EffectiveFrom time.Time `json:"effective_from"`
}
