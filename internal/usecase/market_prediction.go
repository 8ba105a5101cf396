package usecase

import (
	"context"
	"fmt"
	"time"

	"SmartInvest/internal/domain/models"
	domrepo "SmartInvest/internal/domain/repository"
	domsvc "SmartInvest/internal/domain/service"
	"SmartInvest/internal/services/advisor"
	"SmartInvest/internal/services/features"
	"SmartInvest/internal/services/indicators"
	"SmartInvest/internal/services/insights"
	applogger "SmartInvest/pkg/logger"
)

const (
	// DefaultLookbackDays is one year of daily history.
	DefaultLookbackDays = 365
	// MinBars is the least number of complete bars a projection is fitted on.
	MinBars = 60
)

// MarketService runs the prediction pipeline: fetch, clean, indicators, projection.
type MarketService struct {
	data      domrepo.MarketData
	news      domrepo.NewsProvider
	projector domsvc.TrendProjector
	scorer    domsvc.SentimentScorer
	metrics   domrepo.Metrics
	log       *applogger.Logger
	lookback  int
}

// NewMarketService creates a market service. news and scorer may be nil, in which case
// insights are returned without sentiment.
func NewMarketService(
	data domrepo.MarketData,
	news domrepo.NewsProvider,
	projector domsvc.TrendProjector,
	scorer domsvc.SentimentScorer,
	metrics domrepo.Metrics,
	log *applogger.Logger,
	lookbackDays int,
) *MarketService {
	if lookbackDays <= 0 {
		lookbackDays = DefaultLookbackDays
	}
	return &MarketService{
		data:      data,
		news:      news,
		projector: projector,
		scorer:    scorer,
		metrics:   metrics,
		log:       log,
		lookback:  lookbackDays,
	}
}

// Predict computes a fresh prediction for symbol. The returned Symbol is the upper-cased
// input; the provider is queried with the normalized symbol.
func (s *MarketService) Predict(ctx context.Context, symbol string, asset domrepo.AssetType) (models.MarketPrediction, error) {
	start := time.Now()
	defer func() { s.metrics.RecordLatency("predict", time.Since(start).Seconds()) }()

	normalized := domrepo.NormalizeSymbol(symbol, asset)
	bars, err := s.data.FetchDailyBars(ctx, normalized, asset, s.lookback)
	if err != nil {
		s.metrics.RecordError("provider")
		return models.MarketPrediction{}, fmt.Errorf("fetch bars %s: %w", normalized, err)
	}
	if len(bars) == 0 {
		s.metrics.RecordError("symbol_not_found")
		return models.MarketPrediction{}, &models.PipelineError{
			Kind:    models.ErrSymbolNotFound,
			Message: fmt.Sprintf("No market data found for %s", upper(symbol)),
		}
	}

	bars = features.DropIncomplete(bars)
	if len(bars) < MinBars {
		s.metrics.RecordError("insufficient_data")
		return models.MarketPrediction{}, &models.PipelineError{
			Kind:    models.ErrInsufficientData,
			Message: "Insufficient data points for prediction",
		}
	}

	closes := features.Closes(bars)
	proj, err := s.projector.Project(closes)
	if err != nil {
		s.metrics.RecordError("projection")
		return models.MarketPrediction{}, fmt.Errorf("project %s: %w", normalized, err)
	}

	latest := closes[len(closes)-1]
	s.metrics.RecordLastPrice(normalized, latest)

	return models.MarketPrediction{
		Symbol:              upper(symbol),
		LatestPrice:         latest,
		ShortTermPrediction: proj.ShortTerm,
		MidTermPrediction:   proj.MidTerm,
		ConfidenceScore:     proj.Confidence,
		Indicators:          indicators.Calculate(closes, features.Volumes(bars)),
	}, nil
}

// Recommend derives an action, risk level and allocation from a fresh prediction.
func (s *MarketService) Recommend(ctx context.Context, symbol string, asset domrepo.AssetType) (models.Recommendation, error) {
	p, err := s.Predict(ctx, symbol, asset)
	if err != nil {
		return models.Recommendation{}, err
	}
	rec := advisor.Recommend(p.Symbol, p)
	s.metrics.RecordPrediction(p.Symbol, rec.Action)
	return rec, nil
}

// Insights narrates a fresh prediction and appends the headline sentiment when a news
// provider is configured. News failures propagate like provider failures.
func (s *MarketService) Insights(ctx context.Context, symbol string, asset domrepo.AssetType) (models.Insights, error) {
	p, err := s.Predict(ctx, symbol, asset)
	if err != nil {
		return models.Insights{}, err
	}
	out := insights.Narrate(p.Symbol, p)
	if s.news == nil || s.scorer == nil {
		return out, nil
	}

	headlines, err := s.news.Headlines(ctx, domrepo.BaseSymbol(p.Symbol))
	if err != nil {
		s.metrics.RecordError("news")
		return models.Insights{}, fmt.Errorf("headlines %s: %w", p.Symbol, err)
	}
	sentiment := s.scorer.Score(headlines)
	s.log.Debug("headline sentiment",
		applogger.String("symbol", p.Symbol),
		applogger.String("label", string(sentiment.Label)),
		applogger.Int("headlines", sentiment.HeadlineCount),
	)
	return insights.WithSentiment(out, sentiment), nil
}
