package repository

import (
	"context"
	"testing"

	"SmartInvest/internal/domain/models"
)

func TestMemoryWatchlistScopesByOwner(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryWatchlist()

	a := &models.WatchlistItem{Owner: "alice", Symbol: "AAPL", AssetType: "stock"}
	b := &models.WatchlistItem{Owner: "bob", Symbol: "BTC", AssetType: "crypto"}
	if err := m.AddWatchlistItem(ctx, a); err != nil {
		t.Fatalf("add: %v", err)
	}
	_ = m.AddWatchlistItem(ctx, b)
	if a.ID != 1 || b.ID != 2 {
		t.Fatalf("unexpected ids %d %d", a.ID, b.ID)
	}
	if a.CreatedAt.IsZero() {
		t.Fatal("expected created_at to be set")
	}

	items, _ := m.ListWatchlist(ctx, "alice")
	if len(items) != 1 || items[0].Symbol != "AAPL" {
		t.Fatalf("unexpected items %+v", items)
	}
	items, _ = m.ListWatchlist(ctx, "carol")
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", items)
	}
}

func TestMemoryWatchlistAlerts(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryWatchlist()

	th := 70.0
	_ = m.CreateAlert(ctx, &models.Alert{Owner: "alice", Symbol: "MSFT", TargetPrice: 450})
	_ = m.CreateAlert(ctx, &models.Alert{Owner: "bob", Symbol: "AAPL", TargetPrice: 200, PredictionThreshold: &th})
	_ = m.CreateAlert(ctx, &models.Alert{Owner: "alice", Symbol: "AAPL", TargetPrice: 150})

	mine, _ := m.ListAlerts(ctx, "alice")
	if len(mine) != 2 {
		t.Fatalf("expected 2 alerts, got %d", len(mine))
	}

	all, _ := m.AllAlerts(ctx)
	if len(all) != 3 {
		t.Fatalf("expected 3 alerts, got %d", len(all))
	}
	if all[0].Symbol != "AAPL" || all[0].ID != 2 || all[1].ID != 3 || all[2].Symbol != "MSFT" {
		t.Fatalf("unexpected order %+v", all)
	}
}

func TestMemoryWatchlistRejectsNil(t *testing.T) {
	m := NewMemoryWatchlist()
	if err := m.AddWatchlistItem(context.Background(), nil); err == nil {
		t.Fatal("expected error")
	}
	if err := m.CreateAlert(context.Background(), nil); err == nil {
		t.Fatal("expected error")
	}
}
