package repository

import (
	"context"

	"SmartInvest/internal/domain/models"
)

// MarketData retrieves daily bars for a normalized symbol. An unknown symbol yields
// an empty slice and a nil error.
type MarketData interface {
	FetchDailyBars(ctx context.Context, symbol string, asset AssetType, days int) ([]models.Bar, error)
}

// NewsProvider returns recent headlines for a symbol.
type NewsProvider interface {
	Headlines(ctx context.Context, symbol string) ([]string, error)
}

type WatchlistStore interface {
	AddWatchlistItem(ctx context.Context, item *models.WatchlistItem) error
	ListWatchlist(ctx context.Context, owner string) ([]models.WatchlistItem, error)
	CreateAlert(ctx context.Context, alert *models.Alert) error
	ListAlerts(ctx context.Context, owner string) ([]models.Alert, error)
	AllAlerts(ctx context.Context) ([]models.Alert, error)
}

// EventPublisher emits domain events to downstream consumers.
type EventPublisher interface {
	PublishAlert(ctx context.Context, ev *models.AlertEvent) error
	Close() error
}

type Metrics interface {
	RecordPrediction(symbol string, action models.Action)
	RecordError(kind string)
	RecordLastPrice(symbol string, price float64)
	RecordLatency(op string, seconds float64)
	RecordAlertTriggered(symbol string)
}
