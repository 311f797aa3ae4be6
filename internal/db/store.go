package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

// Store is the Querier plus transactional execution. The payment ledger's
// read-check-append-recompute sequence must run as one atomic unit, so every
// mutation of derived invoice fields goes through ExecTx.
type Store interface {
	Querier
	ExecTx(ctx context.Context, fn func(Querier) error) error
}

// SQLStore backs Store with a pgx connection pool.
type SQLStore struct {
	*Queries
	pool *pgxpool.Pool
}

// NewStore creates a Store over the given pool.
func NewStore(pool *pgxpool.Pool) *SQLStore {
	return &SQLStore{
		Queries: New(pool),
		pool:    pool,
	}
}

// ExecTx executes fn within a database transaction, committing on nil and
// rolling back on error. Rollback after a successful commit returns
// pgx.ErrTxClosed, which is ignored.
func (s *SQLStore) ExecTx(ctx context.Context, fn func(Querier) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return errors.Wrap(err, "begin transaction")
	}

	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if err := fn(s.Queries.WithTx(tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return errors.Wrap(err, "commit transaction")
	}

	return nil
}

// ErrNoRows re-exports the pgx sentinel so callers outside the db package
// can classify lookup misses without importing pgx directly.
var ErrNoRows = pgx.ErrNoRows
