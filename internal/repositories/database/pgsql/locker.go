package pgsql

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	portsrepo "github.com/SscSPs/currency_exchange_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AdvisoryLocker serializes mutations across processes with Postgres session advisory locks.
// All keys of one Lock call are held on a single pooled connection until unlock.
type AdvisoryLocker struct {
	pool *pgxpool.Pool
}

// NewAdvisoryLocker creates a Locker on top of pool.
func NewAdvisoryLocker(pool *pgxpool.Pool) *AdvisoryLocker {
	return &AdvisoryLocker{pool: pool}
}

var _ portsrepo.Locker = (*AdvisoryLocker)(nil)

// Lock acquires an advisory lock per key in sorted order.
func (l *AdvisoryLocker) Lock(ctx context.Context, keys ...string) (func(), error) {
	sorted := slices.Clone(keys)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to acquire lock connection", err)
	}

	release := func() {
		// A canceled lock query leaves the connection unusable; pgxpool discards it, which drops its locks.
		if _, err := conn.Exec(context.Background(), `SELECT pg_advisory_unlock_all();`); err != nil {
			slog.Warn("Failed to release advisory locks", slog.String("error", err.Error()))
		}
		conn.Release()
	}

	for _, key := range sorted {
		if _, err := conn.Exec(ctx, `SELECT pg_advisory_lock(hashtextextended($1, 0));`, key); err != nil {
			release()
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, apperrors.NewStorageError(fmt.Sprintf("failed to lock %s", key), err)
		}
	}

	var once sync.Once
	return func() { once.Do(release) }, nil
}
