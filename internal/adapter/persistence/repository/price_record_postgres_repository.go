package repository

import (
	"context"
	"errors"
	"time"

	"clinica_billing/internal/domain/entities"
	"clinica_billing/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const priceRecordsSchema = `
CREATE TABLE IF NOT EXISTS price_records (
    id             TEXT PRIMARY KEY,
    scope_id       TEXT NOT NULL,
    code           TEXT NOT NULL,
    price          NUMERIC(12,2) NOT NULL,
    effective_from TIMESTAMPTZ NOT NULL,
    effective_to   TIMESTAMPTZ,
    created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_price_records_scope_code
    ON price_records (scope_id, code, effective_from DESC);
`

// PriceRecordPostgresRepository persists PriceRecord entities in Postgres.
// Same contract as the DynamoDB repository; deployments pick one backend
// via PRICE_STORE_BACKEND.

type PriceRecordPostgresRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.IPriceStore = (*PriceRecordPostgresRepository)(nil)

func NewPriceRecordPostgresRepository(pool *pgxpool.Pool) *PriceRecordPostgresRepository {
	return &PriceRecordPostgresRepository{pool: pool}
}

// InitSchema creates the price_records table and indexes if missing.
func (r *PriceRecordPostgresRepository) InitSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, priceRecordsSchema)
	return err
}

func (r *PriceRecordPostgresRepository) QueryOpenPriceRecord(ctx context.Context, scopeID, code string, asOf time.Time) (entities.PriceRecord, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, scope_id, code, price, effective_from, effective_to, created_at
		FROM price_records
		WHERE scope_id = $1
		  AND code = $2
		  AND effective_from <= $3
		  AND (effective_to IS NULL OR effective_to >= $3)
		ORDER BY effective_from DESC
		LIMIT 1`,
		scopeID, code, asOf)

	rec, err := scanPriceRecord(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.PriceRecord{}, nil
	}
	return rec, err
}

func (r *PriceRecordPostgresRepository) QueryDefaultPricesByCodePrefix(ctx context.Context, prefix string, limit int) ([]entities.PriceRecord, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, scope_id, code, price, effective_from, effective_to, created_at
		FROM price_records
		WHERE scope_id = $1
		  AND code LIKE $2 || '%'
		  AND effective_to IS NULL
		ORDER BY code
		LIMIT $3`,
		entities.OrganizationDefaultScopeID, prefix, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []entities.PriceRecord
	for rows.Next() {
		rec, err := scanPriceRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *PriceRecordPostgresRepository) CloseOpenPriceRecord(ctx context.Context, scopeID, code string, closedAt time.Time) error {
	// No open record is a valid state; zero rows affected is still success.
	_, err := r.pool.Exec(ctx, `
		UPDATE price_records
		SET effective_to = $3
		WHERE scope_id = $1
		  AND code = $2
		  AND effective_to IS NULL`,
		scopeID, code, closedAt)
	return err
}

func (r *PriceRecordPostgresRepository) InsertPriceRecord(ctx context.Context, record entities.PriceRecord) error {
	createdAt := record.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO price_records (id, scope_id, code, price, effective_from, effective_to, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		record.ID, record.ScopeID, record.Code, record.Price, record.EffectiveFrom, record.EffectiveTo, createdAt)
	return err
}

func scanPriceRecord(row pgx.Row) (entities.PriceRecord, error) {
	var rec entities.PriceRecord
	err := row.Scan(&rec.ID, &rec.ScopeID, &rec.Code, &rec.Price, &rec.EffectiveFrom, &rec.EffectiveTo, &rec.CreatedAt)
	return rec, err
}
