package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"SmartInvest/pkg/cache"

	"golang.org/x/time/rate"
)

// Limiter is a per-key token bucket kept in process.
type Limiter struct {
	mu      sync.Mutex
	m       map[string]*entry
	limit   rate.Limit
	burst   int
	idleTTL time.Duration
	lastGC  time.Time
}

type entry struct {
	lim  *rate.Limiter
	seen time.Time
}

// New allows perMinute requests per key with the given burst.
func New(perMinute, burst int) *Limiter {
	if burst <= 0 {
		burst = 1
	}
	return &Limiter{
		m:       make(map[string]*entry),
		limit:   rate.Limit(float64(perMinute) / 60),
		burst:   burst,
		idleTTL: 10 * time.Minute,
		lastGC:  time.Now(),
	}
}

// Allow consumes one token for key.
func (l *Limiter) Allow(_ context.Context, key string) (bool, error) {
	now := time.Now()
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.m[key]
	if !ok {
		e = &entry{lim: rate.NewLimiter(l.limit, l.burst)}
		l.m[key] = e
	}
	e.seen = now

	if now.Sub(l.lastGC) > l.idleTTL {
		for k, v := range l.m {
			if now.Sub(v.seen) > l.idleTTL {
				delete(l.m, k)
			}
		}
		l.lastGC = now
	}

	return e.lim.AllowN(now, 1), nil
}

// WindowLimiter is a fixed one-minute window counter in a shared cache (Redis), so the
// limit holds across replicas.
type WindowLimiter struct {
	store     cache.Counter
	perMinute int
	now       func() time.Time
}

func NewWindow(store cache.Counter, perMinute int) *WindowLimiter {
	return &WindowLimiter{store: store, perMinute: perMinute, now: time.Now}
}

func (w *WindowLimiter) Allow(ctx context.Context, key string) (bool, error) {
	window := w.now().Unix() / 60
	k := cache.GenerateKey("ratelimit", key, fmt.Sprintf("%d", window))

	n, err := w.store.Increment(ctx, k)
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}
	if n == 1 {
		if _, err := w.store.Expire(ctx, k, 2*time.Minute); err != nil {
			return false, fmt.Errorf("rate limit expire: %w", err)
		}
	}
	return n <= int64(w.perMinute), nil
}
