package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"SmartInvest/internal/domain/models"
	domrepo "SmartInvest/internal/domain/repository"
	applogger "SmartInvest/pkg/logger"

	"github.com/google/uuid"
)

const sweepLockKey = "alert-sweep"

// Locker guards a sweep so only one replica runs it at a time.
type Locker interface {
	TryLock(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Unlock(ctx context.Context, key string) error
}

// SweepResult summarizes one sweep run.
type SweepResult struct {
	Symbols   int  `json:"symbols"`
	Alerts    int  `json:"alerts"`
	Triggered int  `json:"triggered"`
	Failed    int  `json:"failed"`
	Skipped   bool `json:"skipped"`
}

// AlertSweeper evaluates stored alerts against fresh predictions.
type AlertSweeper struct {
	store     domrepo.WatchlistStore
	predictor Predictor
	pub       domrepo.EventPublisher
	metrics   domrepo.Metrics
	lock      Locker
	log       *applogger.Logger
	lockTTL   time.Duration
	now       func() time.Time
}

// NewAlertSweeper creates a sweeper. lock may be nil for single-instance deployments.
func NewAlertSweeper(
	store domrepo.WatchlistStore,
	predictor Predictor,
	pub domrepo.EventPublisher,
	metrics domrepo.Metrics,
	lock Locker,
	log *applogger.Logger,
) *AlertSweeper {
	return &AlertSweeper{
		store:     store,
		predictor: predictor,
		pub:       pub,
		metrics:   metrics,
		lock:      lock,
		log:       log,
		lockTTL:   5 * time.Minute,
		now:       time.Now,
	}
}

// Sweep predicts each alerted symbol and asset type pair once and publishes an event per triggered alert.
// Symbol failures are logged and skipped; only store and lock errors fail the sweep.
func (s *AlertSweeper) Sweep(ctx context.Context) (SweepResult, error) {
	var res SweepResult
	if s.lock != nil {
		ok, err := s.lock.TryLock(ctx, sweepLockKey, s.lockTTL)
		if err != nil {
			return res, fmt.Errorf("acquire sweep lock: %w", err)
		}
		if !ok {
			res.Skipped = true
			return res, nil
		}
		defer func() {
			if err := s.lock.Unlock(context.Background(), sweepLockKey); err != nil {
				s.log.Warn("release sweep lock", applogger.Error(err))
			}
		}()
	}

	start := s.now()
	alerts, err := s.store.AllAlerts(ctx)
	if err != nil {
		return res, fmt.Errorf("load alerts: %w", err)
	}
	res.Alerts = len(alerts)

	groups, order := groupAlerts(alerts)
	res.Symbols = len(order)

	for _, key := range order {
		group := groups[key]
		p, err := s.predictor.Predict(ctx, key.symbol, key.asset)
		if err != nil {
			res.Failed++
			lvl := s.log.Error
			if models.IsPipelineError(err) {
				lvl = s.log.Warn
			}
			lvl("alert sweep prediction failed",
				applogger.String("symbol", key.symbol),
				applogger.String("asset_type", string(key.asset)),
				applogger.Error(err),
			)
			if errors.Is(err, context.Canceled) {
				return res, err
			}
			continue
		}

		for i := range group {
			a := &group[i]
			if !Triggered(a, p) {
				continue
			}
			ev := &models.AlertEvent{
				ID:                  uuid.NewString(),
				AlertID:             a.ID,
				Owner:               a.Owner,
				Symbol:              a.Symbol,
				TargetPrice:         a.TargetPrice,
				LatestPrice:         p.LatestPrice,
				ShortTermPrediction: p.ShortTermPrediction,
				ConfidenceScore:     p.ConfidenceScore,
				TriggeredAt:         s.now().UTC(),
			}
			if err := s.pub.PublishAlert(ctx, ev); err != nil {
				res.Failed++
				s.metrics.RecordError("publish")
				s.log.Error("publish alert event failed",
					applogger.String("symbol", a.Symbol),
					applogger.Int("alert_id", int(a.ID)),
					applogger.Error(err),
				)
				continue
			}
			res.Triggered++
			s.metrics.RecordAlertTriggered(a.Symbol)
		}
	}

	s.metrics.RecordLatency("alert_sweep", s.now().Sub(start).Seconds())
	s.log.Info("alert sweep finished",
		applogger.Int("symbols", res.Symbols),
		applogger.Int("alerts", res.Alerts),
		applogger.Int("triggered", res.Triggered),
		applogger.Int("failed", res.Failed),
	)
	return res, nil
}

// Triggered reports whether the 7-day projection reaches the alert's target from the side
// of the latest price, with enough confidence when a threshold is set.
func Triggered(a *models.Alert, p models.MarketPrediction) bool {
	if a.PredictionThreshold != nil && p.ConfidenceScore < *a.PredictionThreshold {
		return false
	}
	latest, short, target := p.LatestPrice, p.ShortTermPrediction, a.TargetPrice
	switch {
	case latest < target:
		return short >= target
	case latest > target:
		return short <= target
	default:
		return true
	}
}

// alertKey identifies one prediction: the same ticker can name a stock and a coin.
type alertKey struct {
	symbol string
	asset  domrepo.AssetType
}

func groupAlerts(alerts []models.Alert) (map[alertKey][]models.Alert, []alertKey) {
	groups := make(map[alertKey][]models.Alert)
	order := make([]alertKey, 0)
	for _, a := range alerts {
		k := alertKey{symbol: a.Symbol, asset: domrepo.ParseAssetType(a.AssetType)}
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], a)
	}
	return groups, order
}
