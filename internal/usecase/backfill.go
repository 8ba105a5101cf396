package usecase

import (
	"context"
	"fmt"

	"SmartInvest/internal/domain/models"
	domrepo "SmartInvest/internal/domain/repository"
	"SmartInvest/internal/services/features"
	applogger "SmartInvest/pkg/logger"
)

// BarSink persists daily bars.
type BarSink interface {
	StoreBars(ctx context.Context, bars []models.Bar) error
}

// Backfill copies daily bars from an upstream provider into the bar store.
type Backfill struct {
	source domrepo.MarketData
	sink   BarSink
	log    *applogger.Logger
}

func NewBackfill(source domrepo.MarketData, sink BarSink, l *applogger.Logger) *Backfill {
	return &Backfill{source: source, sink: sink, log: l}
}

// Run stores up to days complete bars of symbol and returns how many were written.
func (b *Backfill) Run(ctx context.Context, symbol string, asset domrepo.AssetType, days int) (int, error) {
	normalized := domrepo.NormalizeSymbol(symbol, asset)
	bars, err := b.source.FetchDailyBars(ctx, normalized, asset, days)
	if err != nil {
		return 0, fmt.Errorf("fetch bars %s: %w", normalized, err)
	}
	bars = features.DropIncomplete(bars)
	if len(bars) == 0 {
		return 0, &models.PipelineError{
			Kind:    models.ErrSymbolNotFound,
			Message: fmt.Sprintf("No market data found for %s", normalized),
		}
	}
	for i := range bars {
		bars[i].Symbol = normalized
	}

	if err := b.sink.StoreBars(ctx, bars); err != nil {
		return 0, err
	}
	b.log.Info("backfill stored bars",
		applogger.String("symbol", normalized),
		applogger.Int("bars", len(bars)),
	)
	return len(bars), nil
}
