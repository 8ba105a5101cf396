package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Get when the key is absent or expired.
var ErrCacheMiss = errors.New("cache: key not found")

// Store holds JSON encoded values. Strings and byte slices are stored as-is.
type Store interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string, dest interface{}) error
	Delete(ctx context.Context, keys ...string) error
}

// Counter backs fixed-window rate limiting.
type Counter interface {
	Increment(ctx context.Context, key string) (int64, error)
	Expire(ctx context.Context, key string, expiration time.Duration) (bool, error)
}

// Locker is a best-effort mutual exclusion lock that expires after ttl.
// Unlock only releases a lock taken by the same instance.
type Locker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Unlock(ctx context.Context, key string) error
}

// Service is the full cache backend: headline cache, request counters and the sweep lock.
type Service interface {
	Store
	Counter
	Locker
	Close() error
}
