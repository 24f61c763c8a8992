package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ConnectPostgres creates the pgx pool used by the price-record repository
// when PRICE_STORE_BACKEND=postgres.
//
// Env vars:
//   - DATABASE_URL (default: postgres://localhost:5432/clinica_billing)
func ConnectPostgres(ctx context.Context) (*pgxpool.Pool, error) {
	connStr := getenvDefault("DATABASE_URL", "postgres://localhost:5432/clinica_billing")

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("parse postgres config: %w", err)
	}
	poolConfig.MaxConns = 10
	poolConfig.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return pool, nil
}
