package repositories

import "context"

// Locker serializes mutations per key. Lock acquires every key in a stable order so that two
// callers locking overlapping sets cannot deadlock; unlock releases all of them.
type Locker interface {
	Lock(ctx context.Context, keys ...string) (unlock func(), err error)
}
