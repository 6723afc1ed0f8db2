// Package postgres implements the persistent-store repositories on pgx.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skillforge/recommender/internal/adapters/repository"
)

// Pool tuning defaults. The recommender only ever issues short read queries,
// so the pool stays small.
const (
	defaultMaxConns        = 8
	defaultMinConns        = 1
	defaultConnectTimeout  = 5 * time.Second
	defaultMaxConnLifetime = time.Hour
)

// Store wraps the pgx connection pool shared by the repositories.
type Store struct {
	pool *pgxpool.Pool
}

// Connect builds the connection pool from a postgres:// URL and verifies it
// with a ping. A failed connection is a construction-time error: the engine
// must not start against an unreachable store.
func Connect(ctx context.Context, url string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database url: %w", err)
	}
	cfg.MaxConns = defaultMaxConns
	cfg.MinConns = defaultMinConns
	cfg.MaxConnLifetime = defaultMaxConnLifetime
	cfg.ConnConfig.ConnectTimeout = defaultConnectTimeout

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close releases the connection pool.
func (s *Store) Close() {
	s.pool.Close()
}

// NewPair builds the repository pair backed by one shared pool.
func NewPair(store *Store) repository.Pair {
	return repository.Pair{
		Projects: NewProjectRepository(store),
		Students: NewStudentRepository(store),
	}
}
