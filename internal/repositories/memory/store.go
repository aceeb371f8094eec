package memory

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	portsrepo "github.com/SscSPs/currency_exchange_app/internal/core/ports/repositories"
)

var errClosed = errors.New("store closed")

// Store is the in-process backend. Values are copied on the way in and out.
type Store struct {
	mu      sync.RWMutex
	entries map[string][]byte
	log     [][]byte
	closed  bool
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{entries: make(map[string][]byte)}
}

var _ portsrepo.Store = (*Store)(nil)

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.NewStorageError("get "+key, err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, apperrors.NewStorageError("get "+key, errClosed)
	}
	v, ok := s.entries[key]
	if !ok {
		return nil, fmt.Errorf("%w: key %s", apperrors.ErrNotFound, key)
	}
	return slices.Clone(v), nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	return s.SetMany(ctx, []portsrepo.KeyValue{{Key: key, Value: value}})
}

// SetMany applies every entry under one write lock, so readers never observe a partial write.
func (s *Store) SetMany(ctx context.Context, entries []portsrepo.KeyValue) error {
	if err := ctx.Err(); err != nil {
		return apperrors.NewStorageError("set", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return apperrors.NewStorageError("set", errClosed)
	}
	for _, e := range entries {
		s.entries[e.Key] = slices.Clone(e.Value)
	}
	return nil
}

func (s *Store) ScanPrefix(ctx context.Context, prefix string) ([]portsrepo.KeyValue, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.NewStorageError("scan "+prefix, err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, apperrors.NewStorageError("scan "+prefix, errClosed)
	}
	out := make([]portsrepo.KeyValue, 0)
	for k, v := range s.entries {
		if strings.HasPrefix(k, prefix) {
			out = append(out, portsrepo.KeyValue{Key: k, Value: slices.Clone(v)})
		}
	}
	slices.SortFunc(out, func(a, b portsrepo.KeyValue) int { return strings.Compare(a.Key, b.Key) })
	return out, nil
}

func (s *Store) AppendLog(ctx context.Context, entry []byte) error {
	if err := ctx.Err(); err != nil {
		return apperrors.NewStorageError("append log", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return apperrors.NewStorageError("append log", errClosed)
	}
	s.log = append(s.log, slices.Clone(entry))
	return nil
}

func (s *Store) ReadLog(ctx context.Context, offset, limit int) ([][]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.NewStorageError("read log", err)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, apperrors.NewStorageError("read log", errClosed)
	}
	if offset >= len(s.log) || limit <= 0 {
		return [][]byte{}, nil
	}
	end := min(offset+limit, len(s.log))
	out := make([][]byte, 0, end-offset)
	for _, e := range s.log[offset:end] {
		out = append(out, slices.Clone(e))
	}
	return out, nil
}

// Close makes every later call fail with ErrStorage.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
