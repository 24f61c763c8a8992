package interfaces

import (
	"clinica_billing/internal/domain/entities"
	"context"
	"time"
)

// IPriceStore abstracts the persistence operations the resolution engine
// needs. Any relational or document store that can satisfy these four
// operations works behind it; this repo ships DynamoDB and Postgres
// implementations.
//
// Not-found convention follows the rest of the codebase: reads return a
// zero-value PriceRecord (empty ID) with a nil error.

type IPriceStore interface {
	// QueryOpenPriceRecord returns the record for (scopeID, code) that is
	// effective at asOf, preferring the latest EffectiveFrom when more than
	// one matches.
	QueryOpenPriceRecord(ctx context.Context, scopeID, code string, asOf time.Time) (entities.PriceRecord, error)
	// QueryDefaultPricesByCodePrefix returns up to limit open-ended
	// organization-default records whose code starts with prefix.
	QueryDefaultPricesByCodePrefix(ctx context.Context, prefix string, limit int) ([]entities.PriceRecord, error)
	// CloseOpenPriceRecord stamps EffectiveTo on the open-ended record for
	// (scopeID, code). Closing when no open record exists is a no-op.
	CloseOpenPriceRecord(ctx context.Context, scopeID, code string, closedAt time.Time) error
	InsertPriceRecord(ctx context.Context, record entities.PriceRecord) error
}
