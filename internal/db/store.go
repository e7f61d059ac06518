package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/payitnow/payitnow-api/internal/logger"
	"go.uber.org/zap"
)

// Store is the settlement store used by the gateways and the settlement monitor.
// It extends the generated queries with operations that span more than one statement.
type Store interface {
	Querier
	// TransitionSettlementStatus moves a record from FromStatus to ToStatus and appends
	// the transition to its history. It reports false when the record was no longer in
	// FromStatus, in which case nothing is written.
	TransitionSettlementStatus(ctx context.Context, arg UpdateSettlementStatusParams) (bool, error)
}

// PoolStore implements Store on top of a pgx connection pool
type PoolStore struct {
	*Queries
	pool *pgxpool.Pool
}

var _ Store = (*PoolStore)(nil)

// NewStore creates a Store backed by the given pool
func NewStore(pool *pgxpool.Pool) *PoolStore {
	return &PoolStore{
		Queries: New(pool),
		pool:    pool,
	}
}

// PoolConfig carries connection pool sizing
type PoolConfig struct {
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

// DefaultPoolConfig is sized for a single API or monitor process.
var DefaultPoolConfig = PoolConfig{
	MaxConns:        10,
	MinConns:        1,
	MaxConnLifetime: time.Hour,
	MaxConnIdleTime: 15 * time.Minute,
}

// NewPool parses dsn, applies cfg and verifies connectivity
func NewPool(ctx context.Context, dsn string, cfg PoolConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database connection string: %w", err)
	}

	poolConfig.MaxConns = cfg.MaxConns
	poolConfig.MinConns = cfg.MinConns
	poolConfig.MaxConnLifetime = cfg.MaxConnLifetime
	poolConfig.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	return pool, nil
}

// TransitionSettlementStatus implements Store
func (s *PoolStore) TransitionSettlementStatus(ctx context.Context, arg UpdateSettlementStatusParams) (bool, error) {
	applied := false
	err := s.WithTransaction(ctx, func(q *Queries) error {
		rows, err := q.UpdateSettlementStatus(ctx, arg)
		if err != nil {
			return fmt.Errorf("failed to update settlement status: %w", err)
		}
		if rows == 0 {
			return nil
		}
		applied = true
		return q.CreateSettlementStatusHistory(ctx, CreateSettlementStatusHistoryParams{
			ExternalTxID: arg.ExternalTxID,
			FromStatus:   arg.FromStatus,
			ToStatus:     arg.ToStatus,
		})
	})
	if err != nil {
		return false, err
	}
	return applied, nil
}

// WithTransaction executes fn within a database transaction. The transaction is
// committed when fn returns nil and rolled back otherwise.
func (s *PoolStore) WithTransaction(ctx context.Context, fn func(q *Queries) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		// Rollback after a successful commit returns ErrTxClosed
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			logger.Log.Error("Failed to rollback transaction", zap.Error(rollbackErr))
		}
	}()

	if err := fn(s.Queries.WithTx(tx)); err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// IsNotFound reports whether err is the no-rows error returned by :one queries
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
