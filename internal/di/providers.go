package di

import (
	"context"
	"fmt"
	"time"

	domrepo "SmartInvest/internal/domain/repository"
	"SmartInvest/internal/handler/api"
	"SmartInvest/internal/repository"
	"SmartInvest/internal/scheduler"
	"SmartInvest/internal/service/binance"
	svcmetrics "SmartInvest/internal/service/metrics"
	"SmartInvest/internal/service/newsapi"
	"SmartInvest/internal/service/ratelimit"
	"SmartInvest/internal/service/yahoo"
	"SmartInvest/internal/services/forecast"
	"SmartInvest/internal/services/insights"
	"SmartInvest/internal/usecase"
	"SmartInvest/pkg/cache"
	pkgch "SmartInvest/pkg/clickhouse"
	"SmartInvest/pkg/config"
	xhttp "SmartInvest/pkg/http"
	"SmartInvest/pkg/http/middleware"
	pkgkafka "SmartInvest/pkg/kafka"
	applogger "SmartInvest/pkg/logger"
	"SmartInvest/pkg/metrics"
	"SmartInvest/pkg/postgres"
	"SmartInvest/pkg/server"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideCache returns Redis when enabled, otherwise an in-process cache.
func ProvideCache(cfg *config.Config) (cache.Service, func(), error) {
	if !cfg.Redis.Enabled {
		mc := cache.NewMemoryCache(cache.WithCapacity(5000), cache.WithSweepInterval(time.Minute))
		return mc, func() { _ = mc.Close() }, nil
	}
	rc, err := cache.NewRedisCache(
		cache.WithRedisAddress(cfg.Redis.Host, cfg.Redis.Port),
		cache.WithRedisAuth(cfg.Redis.Password, cfg.Redis.DB),
		cache.WithKeyPrefix(cfg.Redis.Prefix),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("redis cache: %w", err)
	}
	return rc, func() { _ = rc.Close() }, nil
}

// ProvideKafkaProducer creates a Kafka producer when enabled and ships aggregated error
// logs to the logs topic. It returns nil when Kafka is disabled.
func ProvideKafkaProducer(cfg *config.Config, l *applogger.Logger) (*pkgkafka.Producer, func(), error) {
	if !cfg.Kafka.Enabled {
		return nil, func() {}, nil
	}
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers...),
		pkgkafka.WithDelivery(cfg.Kafka.RequiredAcks, cfg.Kafka.Producer.MaxAttempts),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithBalancer("hash"),
		pkgkafka.WithBatching(pkgkafka.BatchConfig{
			Size:    cfg.Kafka.Producer.BatchSize,
			Bytes:   cfg.Kafka.Producer.BatchBytes,
			Timeout: cfg.Kafka.Producer.Linger,
		}),
		pkgkafka.WithTimeouts(cfg.Kafka.Producer.WriteTimeout, cfg.Kafka.Producer.ReadTimeout),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("kafka producer: %w", err)
	}

	if cfg.Kafka.LogsTopic != "" {
		l.AddCollector(&applogger.CollectionConfig{
			Service:        cfg.AppName,
			TimeInterval:   30 * time.Second,
			CountThreshold: 100,
			Topic:          cfg.Kafka.LogsTopic,
			Publisher:      producer,
		})
	}

	cleanup := func() {
		l.RemoveCollector()
		if err := producer.Close(); err != nil {
			l.Warn("kafka producer close error", applogger.Error(err))
		}
	}
	return producer, cleanup, nil
}

// ProvideClickHouseClient opens ClickHouse and creates the bar table.
func ProvideClickHouseClient(cfg *config.Config, l *applogger.Logger) (*pkgch.Client, func(), error) {
	client, err := pkgch.NewClient(
		pkgch.WithAddress(cfg.ClickHouse.Host, cfg.ClickHouse.Port),
		pkgch.WithDatabase(cfg.ClickHouse.Database),
		pkgch.WithCredentials(cfg.ClickHouse.User, cfg.ClickHouse.Password),
		pkgch.WithHTTP(cfg.ClickHouse.UseHTTP),
		pkgch.WithTimeouts(cfg.ClickHouse.DialTimeout, cfg.ClickHouse.ReadTimeout, cfg.ClickHouse.WriteTimeout),
		pkgch.WithMaxExecutionTime(cfg.ClickHouse.MaxExecutionTime),
		pkgch.WithPool(pkgch.PoolConfig{MaxOpen: 10, MaxIdle: 5}),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("clickhouse client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store := repository.NewCHBarStore(client, cfg.ClickHouse.Database, l)
	if err := client.InitSchema(ctx, store.Schema()); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("clickhouse schema: %w", err)
	}

	cleanup := func() {
		if err := client.Close(); err != nil {
			l.Warn("clickhouse close error", applogger.Error(err))
		}
	}
	return client, cleanup, nil
}

// ProvideOptionalClickHouse opens ClickHouse only when it is the market data provider.
func ProvideOptionalClickHouse(cfg *config.Config, l *applogger.Logger) (*pkgch.Client, func(), error) {
	if cfg.MarketData.Provider != "clickhouse" {
		return nil, func() {}, nil
	}
	return ProvideClickHouseClient(cfg, l)
}

// ProvideBarStore exposes the ClickHouse bar table.
func ProvideBarStore(client *pkgch.Client, cfg *config.Config, l *applogger.Logger) *repository.CHBarStore {
	return repository.NewCHBarStore(client, cfg.ClickHouse.Database, l)
}

// ProvideUpstreamMarketData routes stocks to Yahoo and crypto to Yahoo or Binance.
func ProvideUpstreamMarketData(cfg *config.Config) *repository.MarketDataRouter {
	y := yahoo.New(cfg.MarketData.YahooBaseURL, cfg.MarketData.Timeout)
	if cfg.MarketData.CryptoProvider == "binance" {
		b := binance.New(cfg.MarketData.Binance.APIKey, cfg.MarketData.Binance.SecretKey, cfg.MarketData.Timeout)
		return repository.NewMarketDataRouter(y, b)
	}
	return repository.NewMarketDataRouter(y, nil)
}

// ProvideMarketData selects the bar source used by the prediction pipeline.
func ProvideMarketData(cfg *config.Config, ch *pkgch.Client, upstream *repository.MarketDataRouter, l *applogger.Logger) domrepo.MarketData {
	if cfg.MarketData.Provider != "clickhouse" || ch == nil {
		return upstream
	}
	store := repository.NewCHBarStore(ch, cfg.ClickHouse.Database, l)
	if cfg.MarketData.CryptoProvider == "binance" {
		b := binance.New(cfg.MarketData.Binance.APIKey, cfg.MarketData.Binance.SecretKey, cfg.MarketData.Timeout)
		return repository.NewMarketDataRouter(store, b)
	}
	return repository.NewMarketDataRouter(store, store)
}

// ProvideNewsProvider creates the NewsAPI client with headline caching.
func ProvideNewsProvider(cfg *config.Config, c cache.Service, l *applogger.Logger) domrepo.NewsProvider {
	return newsapi.New(newsapi.Config{
		APIKey:   cfg.News.APIKey,
		BaseURL:  cfg.News.BaseURL,
		PageSize: cfg.News.PageSize,
		Timeout:  cfg.News.Timeout,
		CacheTTL: cfg.News.CacheTTL,
	}, c, l)
}

// ProvideMetrics creates a Prometheus metrics recorder, or a no-op one when disabled.
func ProvideMetrics(cfg *config.Config) domrepo.Metrics {
	if !cfg.Metrics.Enabled {
		return metrics.Nop{}
	}
	svcmetrics.Register()
	return metrics.New(prometheus.DefaultRegisterer)
}

// ProvidePostgres opens PostgreSQL when enabled; nil selects the in-memory store.
func ProvidePostgres(cfg *config.Config, l *applogger.Logger) (*gorm.DB, func(), error) {
	if !cfg.Postgres.Enabled {
		return nil, func() {}, nil
	}
	db, err := postgres.Open(cfg.Postgres.DSN,
		postgres.WithPool(cfg.Postgres.MaxOpenConns, cfg.Postgres.MaxIdleConns),
		postgres.WithAutoMigrate(repository.Models()...),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("postgres: %w", err)
	}
	cleanup := func() {
		if err := postgres.Close(db); err != nil {
			l.Warn("postgres close error", applogger.Error(err))
		}
	}
	return db, cleanup, nil
}

// ProvideWatchlistStore selects the gorm store when a database is configured.
func ProvideWatchlistStore(db *gorm.DB) domrepo.WatchlistStore {
	if db == nil {
		return repository.NewMemoryWatchlist()
	}
	return repository.NewWatchlistRepository(db)
}

// ProvideEventPublisher publishes alert events to Kafka, or to the log when disabled.
func ProvideEventPublisher(cfg *config.Config, producer *pkgkafka.Producer, l *applogger.Logger) domrepo.EventPublisher {
	if producer == nil {
		return repository.NewLogEventPublisher(l)
	}
	return repository.NewKafkaEventPublisher(producer, cfg.Kafka.AlertsTopic)
}

// ProvideMarketService creates the prediction pipeline.
func ProvideMarketService(
	cfg *config.Config,
	data domrepo.MarketData,
	news domrepo.NewsProvider,
	m domrepo.Metrics,
	l *applogger.Logger,
) *usecase.MarketService {
	return usecase.NewMarketService(
		data,
		news,
		forecast.NewLinearProjector(),
		insights.NewKeywordScorer(),
		m,
		l,
		cfg.MarketData.LookbackDays,
	)
}

func ProvideDashboardUseCase(ms *usecase.MarketService) *usecase.DashboardUseCase {
	return usecase.NewDashboardUseCase(ms)
}

func ProvideWatchlistUseCase(store domrepo.WatchlistStore) *usecase.WatchlistUseCase {
	return usecase.NewWatchlistUseCase(store)
}

// ProvideAlertSweeper creates the sweep; the cache doubles as the cross-replica lock.
func ProvideAlertSweeper(
	store domrepo.WatchlistStore,
	ms *usecase.MarketService,
	pub domrepo.EventPublisher,
	m domrepo.Metrics,
	c cache.Service,
	l *applogger.Logger,
) *usecase.AlertSweeper {
	return usecase.NewAlertSweeper(store, ms, pub, m, c, l)
}

// ProvideBackfill copies upstream bars into ClickHouse.
func ProvideBackfill(upstream *repository.MarketDataRouter, store *repository.CHBarStore, l *applogger.Logger) *usecase.Backfill {
	return usecase.NewBackfill(upstream, store, l)
}

// ProvideScheduler registers the alert sweep when the scheduler is enabled.
func ProvideScheduler(cfg *config.Config, sweeper *usecase.AlertSweeper, l *applogger.Logger) (*scheduler.Scheduler, error) {
	if !cfg.Scheduler.Enabled {
		return nil, nil
	}
	s := scheduler.New(sweeper, l)
	if err := s.RegisterAlertSweep(cfg.Scheduler.AlertSweepCron); err != nil {
		return nil, err
	}
	return s, nil
}

// ProvideRateLimiter returns nil when rate limiting is disabled.
func ProvideRateLimiter(cfg *config.Config, c cache.Service) middleware.Limiter {
	if !cfg.RateLimit.Enabled {
		return nil
	}
	if cfg.RateLimit.Backend == "redis" {
		return ratelimit.NewWindow(c, cfg.RateLimit.RequestsPerMinute)
	}
	return ratelimit.New(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
}

// ProvideHandlers collects every HTTP route group.
func ProvideHandlers(
	cfg *config.Config,
	l *applogger.Logger,
	ms *usecase.MarketService,
	dash *usecase.DashboardUseCase,
	wl *usecase.WatchlistUseCase,
) xhttp.Handler {
	return xhttp.Handlers{
		api.NewHealthEchoHandler(cfg.AppName),
		api.NewMarketEchoHandler(l, ms),
		api.NewWatchlistEchoHandler(l, wl),
		api.NewDashboardEchoHandler(l, dash),
	}
}

// ProvideHTTPServer creates the echo server from config.
func ProvideHTTPServer(cfg *config.Config, l *applogger.Logger, h xhttp.Handler, limiter middleware.Limiter) *xhttp.Server {
	metricsPath := ""
	if cfg.Metrics.Enabled {
		metricsPath = cfg.Metrics.Path
	}
	opts := []xhttp.ServerOption{
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
		xhttp.WithSlowThreshold(cfg.Server.SlowThreshold),
		xhttp.WithCORSOrigins(cfg.Server.CORSOrigins),
		xhttp.WithMetricsPath(metricsPath),
	}
	if limiter != nil {
		opts = append(opts, xhttp.WithRateLimiter(limiter))
	}
	return xhttp.NewServer(l, h, opts...)
}

// ProvideApp creates the application.
func ProvideApp(cfg *config.Config, l *applogger.Logger, srv *xhttp.Server, sched *scheduler.Scheduler) *server.App {
	if sched == nil {
		return server.New(cfg, l, srv, nil)
	}
	return server.New(cfg, l, srv, sched)
}
