package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	portsrepo "github.com/SscSPs/currency_exchange_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxStore keeps the key-value entries in kv_entries and the exchange log in exchange_log.
type PgxStore struct {
	BaseRepository
}

// NewPgxStore creates a Store backed by the given pool. The pool is closed by Close.
func NewPgxStore(pool *pgxpool.Pool) *PgxStore {
	return &PgxStore{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.Store = (*PgxStore)(nil)

const upsertEntryQuery = `
	INSERT INTO kv_entries (key, value, updated_at)
	VALUES ($1, $2, NOW())
	ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at;
`

// Get retrieves the value stored under key.
func (s *PgxStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.Pool.QueryRow(ctx, `SELECT value FROM kv_entries WHERE key = $1;`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: key %s", apperrors.ErrNotFound, key)
		}
		return nil, apperrors.NewStorageError(fmt.Sprintf("failed to get key %s", key), err)
	}
	return value, nil
}

// Set upserts a single entry.
func (s *PgxStore) Set(ctx context.Context, key string, value []byte) error {
	if _, err := s.Pool.Exec(ctx, upsertEntryQuery, key, value); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to set key %s", key), err)
	}
	return nil
}

// SetMany upserts all entries inside one transaction.
func (s *PgxStore) SetMany(ctx context.Context, entries []portsrepo.KeyValue) error {
	tx, err := s.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = s.Rollback(context.WithoutCancel(ctx), tx)
	}()

	batch := &pgx.Batch{}
	for _, e := range entries {
		batch.Queue(upsertEntryQuery, e.Key, e.Value)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to write %d entries", len(entries)), err)
	}
	return s.Commit(ctx, tx)
}

// ScanPrefix returns every entry whose key starts with prefix, ordered by key.
func (s *PgxStore) ScanPrefix(ctx context.Context, prefix string) ([]portsrepo.KeyValue, error) {
	rows, err := s.Pool.Query(ctx, `SELECT key, value FROM kv_entries WHERE starts_with(key, $1) ORDER BY key;`, prefix)
	if err != nil {
		return nil, apperrors.NewStorageError(fmt.Sprintf("failed to scan prefix %s", prefix), err)
	}
	defer rows.Close()

	entries := make([]portsrepo.KeyValue, 0)
	for rows.Next() {
		var kv portsrepo.KeyValue
		if err := rows.Scan(&kv.Key, &kv.Value); err != nil {
			return nil, apperrors.NewStorageError("failed to scan kv row", err)
		}
		entries = append(entries, kv)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageError(fmt.Sprintf("error iterating prefix %s", prefix), err)
	}
	return entries, nil
}

// AppendLog inserts one log entry; seq preserves append order.
func (s *PgxStore) AppendLog(ctx context.Context, entry []byte) error {
	if _, err := s.Pool.Exec(ctx, `INSERT INTO exchange_log (entry) VALUES ($1);`, entry); err != nil {
		return apperrors.NewStorageError("failed to append log entry", err)
	}
	return nil
}

// ReadLog pages through the log in append order.
func (s *PgxStore) ReadLog(ctx context.Context, offset, limit int) ([][]byte, error) {
	rows, err := s.Pool.Query(ctx, `SELECT entry FROM exchange_log ORDER BY seq OFFSET $1 LIMIT $2;`, offset, limit)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to read log", err)
	}
	defer rows.Close()

	entries := make([][]byte, 0, limit)
	for rows.Next() {
		var entry []byte
		if err := rows.Scan(&entry); err != nil {
			return nil, apperrors.NewStorageError("failed to scan log row", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageError("error iterating log rows", err)
	}
	return entries, nil
}

// Close closes the underlying pool.
func (s *PgxStore) Close() error {
	s.Pool.Close()
	return nil
}
