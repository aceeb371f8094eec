package memory

import (
	"context"
	"slices"
	"sync"

	portsrepo "github.com/SscSPs/currency_exchange_app/internal/core/ports/repositories"
)

type keyLock struct {
	sem  chan struct{}
	refs int
}

// Locker is an in-process keyed mutex. Entries are dropped once nobody holds or waits for them.
type Locker struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

// NewLocker creates an empty Locker.
func NewLocker() *Locker {
	return &Locker{locks: make(map[string]*keyLock)}
}

var _ portsrepo.Locker = (*Locker)(nil)

// Lock acquires every key in sorted order, giving up when ctx is done.
func (l *Locker) Lock(ctx context.Context, keys ...string) (func(), error) {
	sorted := slices.Clone(keys)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	held := make([]string, 0, len(sorted))
	for _, key := range sorted {
		if err := l.acquire(ctx, key); err != nil {
			l.releaseAll(held)
			return nil, err
		}
		held = append(held, key)
	}

	var once sync.Once
	return func() { once.Do(func() { l.releaseAll(held) }) }, nil
}

func (l *Locker) acquire(ctx context.Context, key string) error {
	l.mu.Lock()
	kl, ok := l.locks[key]
	if !ok {
		kl = &keyLock{sem: make(chan struct{}, 1)}
		l.locks[key] = kl
	}
	kl.refs++
	l.mu.Unlock()

	select {
	case kl.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		l.mu.Lock()
		l.unref(key, kl)
		l.mu.Unlock()
		return ctx.Err()
	}
}

func (l *Locker) releaseAll(keys []string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := len(keys) - 1; i >= 0; i-- {
		kl := l.locks[keys[i]]
		<-kl.sem
		l.unref(keys[i], kl)
	}
}

// unref must be called with l.mu held.
func (l *Locker) unref(key string, kl *keyLock) {
	kl.refs--
	if kl.refs == 0 {
		delete(l.locks, key)
	}
}
