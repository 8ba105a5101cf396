package ratelimit

import (
	"context"
	"testing"
	"time"

	"SmartInvest/pkg/cache"
)

func TestLimiterBurstPerKey(t *testing.T) {
	l := New(60, 3)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if ok, _ := l.Allow(ctx, "1.2.3.4"); !ok {
			t.Fatalf("request %d should pass", i)
		}
	}
	if ok, _ := l.Allow(ctx, "1.2.3.4"); ok {
		t.Fatal("burst exhausted, expected reject")
	}
	if ok, _ := l.Allow(ctx, "5.6.7.8"); !ok {
		t.Fatal("other key should pass")
	}
}

func TestWindowLimiter(t *testing.T) {
	mc := cache.NewMemoryCache()
	defer mc.Close()

	w := NewWindow(mc, 2)
	fixed := time.Unix(1_700_000_000, 0)
	w.now = func() time.Time { return fixed }
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if ok, err := w.Allow(ctx, "client"); err != nil || !ok {
			t.Fatalf("request %d: ok=%v err=%v", i, ok, err)
		}
	}
	if ok, _ := w.Allow(ctx, "client"); ok {
		t.Fatal("expected third request in window to be rejected")
	}

	w.now = func() time.Time { return fixed.Add(time.Minute) }
	if ok, _ := w.Allow(ctx, "client"); !ok {
		t.Fatal("new window should allow")
	}
}
