//go:build wireinject
// +build wireinject

package di

import (
	"SmartInvest/internal/usecase"
	"SmartInvest/pkg/config"
	"SmartInvest/pkg/server"

	"github.com/google/wire"
)

// pipelineSet builds the prediction pipeline and its providers.
var pipelineSet = wire.NewSet(
	ProvideCache,
	ProvideOptionalClickHouse,
	ProvideUpstreamMarketData,
	ProvideMarketData,
	ProvideNewsProvider,
	ProvideMetrics,
	ProvideMarketService,
)

// alertSet builds the watchlist store and the alert sweep.
var alertSet = wire.NewSet(
	ProvidePostgres,
	ProvideWatchlistStore,
	ProvideKafkaProducer,
	ProvideEventPublisher,
	ProvideAlertSweeper,
)

// InitializeApp wires up all dependencies and returns the application.
func InitializeApp(cfg *config.Config) (*server.App, func(), error) {
	wire.Build(
		ProvideLogger,
		pipelineSet,
		alertSet,

		// Use cases
		ProvideDashboardUseCase,
		ProvideWatchlistUseCase,
		ProvideScheduler,

		// HTTP
		ProvideRateLimiter,
		ProvideHandlers,
		ProvideHTTPServer,

		ProvideApp,
	)
	return nil, nil, nil
}

// InitializeMarketService wires the prediction pipeline for one-shot CLI use.
func InitializeMarketService(cfg *config.Config) (*usecase.MarketService, func(), error) {
	wire.Build(ProvideLogger, pipelineSet)
	return nil, nil, nil
}

// InitializeAlertSweeper wires a sweep that runs outside the server.
func InitializeAlertSweeper(cfg *config.Config) (*usecase.AlertSweeper, func(), error) {
	wire.Build(ProvideLogger, pipelineSet, alertSet)
	return nil, nil, nil
}

// InitializeBackfill wires the upstream providers to the ClickHouse bar store.
func InitializeBackfill(cfg *config.Config) (*usecase.Backfill, func(), error) {
	wire.Build(
		ProvideLogger,
		ProvideClickHouseClient,
		ProvideBarStore,
		ProvideUpstreamMarketData,
		ProvideBackfill,
	)
	return nil, nil, nil
}
