package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"SmartInvest/internal/domain/models"
	"SmartInvest/internal/repository"
	"SmartInvest/pkg/cache"
	applogger "SmartInvest/pkg/logger"
)

func threshold(v float64) *float64 { return &v }

func TestTriggered(t *testing.T) {
	tests := []struct {
		name  string
		alert models.Alert
		p     models.MarketPrediction
		want  bool
	}{
		{"rising through target", models.Alert{TargetPrice: 110}, pred(100, 112, 50), true},
		{"rising short of target", models.Alert{TargetPrice: 110}, pred(100, 108, 50), false},
		{"falling through target", models.Alert{TargetPrice: 90}, pred(100, 88, 50), true},
		{"falling short of target", models.Alert{TargetPrice: 90}, pred(100, 95, 50), false},
		{"already at target", models.Alert{TargetPrice: 100}, pred(100, 80, 50), true},
		{"confidence below threshold", models.Alert{TargetPrice: 110, PredictionThreshold: threshold(70)}, pred(100, 120, 69.99), false},
		{"confidence at threshold", models.Alert{TargetPrice: 110, PredictionThreshold: threshold(70)}, pred(100, 120, 70), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Triggered(&tt.alert, tt.p); got != tt.want {
				t.Fatalf("Triggered = %v, want %v", got, tt.want)
			}
		})
	}
}

func seedAlerts(t *testing.T) *repository.MemoryWatchlist {
	t.Helper()
	ctx := context.Background()
	store := repository.NewMemoryWatchlist()
	for _, a := range []models.Alert{
		{Owner: "alice", Symbol: "AAPL", AssetType: "stock", TargetPrice: 110},
		{Owner: "bob", Symbol: "AAPL", AssetType: "stock", TargetPrice: 150},
		{Owner: "alice", Symbol: "BTC", AssetType: "crypto", TargetPrice: 40000},
		{Owner: "carol", Symbol: "NOPE", AssetType: "stock", TargetPrice: 1},
	} {
		a := a
		if err := store.CreateAlert(ctx, &a); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return store
}

func TestSweepPublishesTriggeredAlerts(t *testing.T) {
	store := seedAlerts(t)
	sp := newStubPredictor()
	sp.preds["AAPL"] = pred(100, 115, 80)
	sp.preds["BTC"] = pred(45000, 39000, 40)
	sp.errs["NOPE"] = &models.PipelineError{Kind: models.ErrSymbolNotFound, Message: "No market data found for NOPE"}

	pub := &capturePublisher{}
	m := newRecordingMetrics()
	fixed := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	sw := NewAlertSweeper(store, sp, pub, m, nil, applogger.NewNop())
	sw.now = func() time.Time { return fixed }

	res, err := sw.Sweep(context.Background())
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if res.Symbols != 3 || res.Alerts != 4 || res.Triggered != 2 || res.Failed != 1 {
		t.Fatalf("result = %+v", res)
	}
	if sp.calls["AAPL"] != 1 {
		t.Fatalf("AAPL predicted %d times", sp.calls["AAPL"])
	}
	if len(pub.events) != 2 {
		t.Fatalf("events = %d", len(pub.events))
	}
	ev := pub.events[0]
	if ev.Symbol != "AAPL" || ev.Owner != "alice" || ev.TargetPrice != 110 || ev.ID == "" || !ev.TriggeredAt.Equal(fixed) {
		t.Fatalf("event = %+v", ev)
	}
	if pub.events[1].Symbol != "BTC" {
		t.Fatalf("second event = %+v", pub.events[1])
	}
	if m.triggered["AAPL"] != 1 || m.triggered["BTC"] != 1 {
		t.Fatalf("metrics = %v", m.triggered)
	}
}

func TestSweepPublishFailureIsCounted(t *testing.T) {
	store := seedAlerts(t)
	sp := newStubPredictor()
	sp.preds["AAPL"] = pred(100, 115, 80)
	sp.preds["BTC"] = pred(45000, 45000, 40)
	sp.preds["NOPE"] = pred(5, 5, 5)

	pub := &capturePublisher{err: errors.New("broker down")}
	m := newRecordingMetrics()
	res, err := NewAlertSweeper(store, sp, pub, m, nil, applogger.NewNop()).Sweep(context.Background())
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if res.Triggered != 0 || res.Failed != 1 {
		t.Fatalf("result = %+v", res)
	}
	if m.errors["publish"] != 1 {
		t.Fatalf("metrics = %v", m.errors)
	}
}

func TestSweepSkipsWhenLocked(t *testing.T) {
	lock := cache.NewMemoryCache()
	defer lock.Close()
	ctx := context.Background()
	if ok, _ := lock.TryLock(ctx, sweepLockKey, time.Minute); !ok {
		t.Fatal("could not take lock")
	}

	sp := newStubPredictor()
	sw := NewAlertSweeper(seedAlerts(t), sp, &capturePublisher{}, newRecordingMetrics(), lock, applogger.NewNop())
	res, err := sw.Sweep(ctx)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if !res.Skipped || len(sp.calls) != 0 {
		t.Fatalf("expected skipped sweep, got %+v calls=%v", res, sp.calls)
	}

	_ = lock.Unlock(ctx, sweepLockKey)
	sp.preds["AAPL"] = pred(1, 1, 1)
	sp.preds["BTC"] = pred(1, 1, 1)
	sp.preds["NOPE"] = pred(1, 1, 1)
	res, err = sw.Sweep(ctx)
	if err != nil || res.Skipped {
		t.Fatalf("second sweep = %+v, %v", res, err)
	}
	if ok, _ := lock.TryLock(ctx, sweepLockKey, time.Minute); !ok {
		t.Fatal("lock not released after sweep")
	}
}

func TestSweepSeparatesAssetTypesOfOneTicker(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryWatchlist()
	for _, a := range []models.Alert{
		{Owner: "alice", Symbol: "ETH", AssetType: "stock", TargetPrice: 10},
		{Owner: "bob", Symbol: "ETH", AssetType: "crypto", TargetPrice: 4000},
	} {
		a := a
		if err := store.CreateAlert(ctx, &a); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	sp := newStubPredictor()
	sp.preds["ETH/stock"] = pred(8, 9, 60)
	sp.preds["ETH/crypto"] = pred(3500, 4200, 60)
	pub := &capturePublisher{}

	res, err := NewAlertSweeper(store, sp, pub, newRecordingMetrics(), nil, applogger.NewNop()).Sweep(ctx)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if res.Symbols != 2 || res.Triggered != 1 {
		t.Fatalf("result = %+v", res)
	}
	if len(sp.history) != 2 || sp.history[0] != "ETH/stock" || sp.history[1] != "ETH/crypto" {
		t.Fatalf("predictions = %v", sp.history)
	}
	if len(pub.events) != 1 || pub.events[0].Owner != "bob" || pub.events[0].TargetPrice != 4000 {
		t.Fatalf("events = %+v", pub.events)
	}
}

func TestWatchlistUseCase(t *testing.T) {
	ctx := context.Background()
	uc := NewWatchlistUseCase(repository.NewMemoryWatchlist())

	item, err := uc.AddItem(ctx, "alice", models.WatchlistItemCreate{Symbol: " btc", AssetType: "crypto"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if item.ID != 1 || item.Symbol != "BTC" || item.AssetType != "crypto" {
		t.Fatalf("item = %+v", item)
	}

	alert, err := uc.CreateAlert(ctx, "alice", models.AlertCreate{Symbol: "aapl", AssetType: "stock", TargetPrice: 200})
	if err != nil {
		t.Fatalf("alert: %v", err)
	}
	if alert.Symbol != "AAPL" || alert.TargetPrice != 200 {
		t.Fatalf("alert = %+v", alert)
	}

	items, _ := uc.Items(ctx, "bob")
	if len(items) != 0 {
		t.Fatalf("bob sees %v", items)
	}
	alerts, _ := uc.Alerts(ctx, "alice")
	if len(alerts) != 1 {
		t.Fatalf("alerts = %v", alerts)
	}
}
