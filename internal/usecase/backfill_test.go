package usecase

import (
	"context"
	"errors"
	"testing"

	"SmartInvest/internal/domain/models"
	domrepo "SmartInvest/internal/domain/repository"
	applogger "SmartInvest/pkg/logger"
)

type memorySink struct {
	bars []models.Bar
	err  error
}

func (m *memorySink) StoreBars(_ context.Context, bars []models.Bar) error {
	if m.err != nil {
		return m.err
	}
	m.bars = append(m.bars, bars...)
	return nil
}

func TestBackfillStoresNormalizedBars(t *testing.T) {
	bars := linearBars(10, 20, 1)
	bars[3].Close = 0
	src := &fakeMarketData{bars: bars}
	sink := &memorySink{}

	n, err := NewBackfill(src, sink, applogger.NewNop()).Run(context.Background(), "eth", domrepo.AssetCrypto, 30)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if n != 9 || len(sink.bars) != 9 {
		t.Fatalf("stored %d/%d bars", n, len(sink.bars))
	}
	if src.lastSym != "ETH-USD" || src.lastN != 30 {
		t.Fatalf("source called with %q %d", src.lastSym, src.lastN)
	}
	for _, b := range sink.bars {
		if b.Symbol != "ETH-USD" {
			t.Fatalf("bar symbol = %q", b.Symbol)
		}
	}
}

func TestBackfillErrors(t *testing.T) {
	ctx := context.Background()
	if _, err := NewBackfill(&fakeMarketData{}, &memorySink{}, applogger.NewNop()).Run(ctx, "X", domrepo.AssetStock, 5); !errors.Is(err, models.ErrSymbolNotFound) {
		t.Fatalf("expected symbol not found, got %v", err)
	}
	boom := errors.New("insert failed")
	_, err := NewBackfill(&fakeMarketData{bars: linearBars(5, 1, 1)}, &memorySink{err: boom}, applogger.NewNop()).Run(ctx, "X", domrepo.AssetStock, 5)
	if !errors.Is(err, boom) {
		t.Fatalf("expected sink error, got %v", err)
	}
}
