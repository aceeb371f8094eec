package repositories

import "context"

// KeyValue is one entry of the backing store.
type KeyValue struct {
	Key   string
	Value []byte
}

// Store is the storage adapter every repository is built on. Implementations wrap backend
// failures in apperrors.ErrStorage so callers can tell them apart from business errors.
type Store interface {
	// Get returns the value stored under key, or apperrors.ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// SetMany stores all entries or none of them.
	SetMany(ctx context.Context, entries []KeyValue) error

	// ScanPrefix returns every entry whose key starts with prefix, ordered by key.
	ScanPrefix(ctx context.Context, prefix string) ([]KeyValue, error)

	// AppendLog appends one entry to the append-only log collection.
	AppendLog(ctx context.Context, entry []byte) error

	// ReadLog returns up to limit log entries in append order, skipping the first offset.
	ReadLog(ctx context.Context, offset, limit int) ([][]byte, error)

	// Close releases the backend.
	Close() error
}
