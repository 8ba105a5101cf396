package usecase

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"SmartInvest/internal/domain/models"
	domrepo "SmartInvest/internal/domain/repository"
	"SmartInvest/internal/services/forecast"
	"SmartInvest/internal/services/insights"
	applogger "SmartInvest/pkg/logger"
)

func newService(data domrepo.MarketData, news domrepo.NewsProvider) (*MarketService, *recordingMetrics) {
	m := newRecordingMetrics()
	svc := NewMarketService(data, news, forecast.NewLinearProjector(), insights.NewKeywordScorer(), m, applogger.NewNop(), 0)
	return svc, m
}

func TestPredictLinearSeries(t *testing.T) {
	data := &fakeMarketData{bars: linearBars(100, 100, 1)}
	svc, _ := newService(data, nil)

	p, err := svc.Predict(context.Background(), " aapl", domrepo.AssetStock)
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if data.lastSym != "AAPL" || data.lastN != DefaultLookbackDays {
		t.Fatalf("provider called with %q %d", data.lastSym, data.lastN)
	}
	if p.Symbol != "AAPL" {
		t.Fatalf("symbol = %q", p.Symbol)
	}
	if p.LatestPrice != 199 {
		t.Fatalf("latest = %v", p.LatestPrice)
	}
	if math.Abs(p.ShortTermPrediction-207) > 1e-6 || math.Abs(p.MidTermPrediction-290) > 1e-6 {
		t.Fatalf("projections = %v, %v", p.ShortTermPrediction, p.MidTermPrediction)
	}
	if p.ConfidenceScore != 100 {
		t.Fatalf("confidence = %v", p.ConfidenceScore)
	}
	for _, k := range []string{models.IndicatorVolume, models.IndicatorRSI, models.IndicatorMACD, models.IndicatorSMA20, models.IndicatorSMA50} {
		if _, ok := p.Indicators[k]; !ok {
			t.Fatalf("missing indicator %s", k)
		}
	}
}

func TestPredictCryptoNormalizesSymbol(t *testing.T) {
	data := &fakeMarketData{bars: linearBars(80, 30000, 10)}
	svc, _ := newService(data, nil)

	p, err := svc.Predict(context.Background(), "btc", domrepo.AssetCrypto)
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if data.lastSym != "BTC-USD" {
		t.Fatalf("provider symbol = %q", data.lastSym)
	}
	if p.Symbol != "BTC" {
		t.Fatalf("response symbol = %q", p.Symbol)
	}
}

func TestPredictPipelineErrors(t *testing.T) {
	withGaps := linearBars(70, 50, 0.5)
	for i := 0; i < 20; i++ {
		withGaps[i].Close = math.NaN()
	}

	tests := []struct {
		name string
		bars []models.Bar
		kind error
		msg  string
	}{
		{"empty", nil, models.ErrSymbolNotFound, "No market data found for ZZZZ"},
		{"short", linearBars(59, 10, 1), models.ErrInsufficientData, "Insufficient data points for prediction"},
		{"incomplete rows dropped", withGaps, models.ErrInsufficientData, "Insufficient data points for prediction"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newService(&fakeMarketData{bars: tt.bars}, nil)
			_, err := svc.Predict(context.Background(), "zzzz", domrepo.AssetStock)
			if !errors.Is(err, tt.kind) {
				t.Fatalf("expected %v, got %v", tt.kind, err)
			}
			if !models.IsPipelineError(err) || err.Error() != tt.msg {
				t.Fatalf("unexpected error %q", err)
			}
			if len(m.errors) != 1 {
				t.Fatalf("expected one error metric, got %v", m.errors)
			}
		})
	}
}

func TestSymbolNotFoundNamesRequestedCryptoSymbol(t *testing.T) {
	fake := &fakeMarketData{}
	svc, _ := newService(fake, nil)
	_, err := svc.Predict(context.Background(), " doge ", domrepo.AssetCrypto)
	if fake.lastSym != "DOGE-USD" {
		t.Fatalf("provider queried with %q", fake.lastSym)
	}
	if err == nil || err.Error() != "No market data found for DOGE" {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestPredictExactlyMinBars(t *testing.T) {
	svc, _ := newService(&fakeMarketData{bars: linearBars(MinBars, 10, 1)}, nil)
	if _, err := svc.Predict(context.Background(), "MSFT", domrepo.AssetStock); err != nil {
		t.Fatalf("expected success at %d bars, got %v", MinBars, err)
	}
}

func TestPredictProviderErrorPropagates(t *testing.T) {
	boom := errors.New("upstream down")
	svc, _ := newService(&fakeMarketData{err: boom}, nil)
	_, err := svc.Predict(context.Background(), "AAPL", domrepo.AssetStock)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped provider error, got %v", err)
	}
	if models.IsPipelineError(err) {
		t.Fatal("provider failure must not be a pipeline error")
	}
}

func TestRecommendRecordsAction(t *testing.T) {
	svc, m := newService(&fakeMarketData{bars: linearBars(100, 100, 1)}, nil)
	rec, err := svc.Recommend(context.Background(), "aapl", domrepo.AssetStock)
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	// 207 vs 199 is a 4.02% move
	if rec.Action != models.ActionBuy || rec.Symbol != "AAPL" {
		t.Fatalf("unexpected recommendation %+v", rec)
	}
	if m.actions["AAPL"] != models.ActionBuy {
		t.Fatalf("metrics = %v", m.actions)
	}
	if rec.PortfolioAllocationPct < 5 || rec.PortfolioAllocationPct > 35 {
		t.Fatalf("allocation out of range: %v", rec.PortfolioAllocationPct)
	}
}

func TestInsights(t *testing.T) {
	bars := linearBars(100, 100, 1)

	t.Run("without news", func(t *testing.T) {
		svc, _ := newService(&fakeMarketData{bars: bars}, nil)
		in, err := svc.Insights(context.Background(), "aapl", domrepo.AssetStock)
		if err != nil {
			t.Fatalf("insights: %v", err)
		}
		if in.Symbol != "AAPL" || len(in.Pros) != 4 || len(in.Cons) != 4 {
			t.Fatalf("unexpected insights %+v", in)
		}
	})

	t.Run("with sentiment", func(t *testing.T) {
		news := &fakeNews{headlines: []string{"Record growth and upgrade!", "Analysts bullish"}}
		svc, _ := newService(&fakeMarketData{bars: linearBars(80, 30000, 5)}, news)
		in, err := svc.Insights(context.Background(), "eth", domrepo.AssetCrypto)
		if err != nil {
			t.Fatalf("insights: %v", err)
		}
		if news.lastSym != "ETH" {
			t.Fatalf("news queried with %q", news.lastSym)
		}
		last := in.Pros[len(in.Pros)-1]
		if last != "News sentiment currently positive (+4 score)." {
			t.Fatalf("sentiment pro = %q", last)
		}
		if !strings.HasPrefix(in.Cons[len(in.Cons)-1], "Headline momentum") {
			t.Fatalf("sentiment con = %q", in.Cons[len(in.Cons)-1])
		}
	})

	t.Run("news failure propagates", func(t *testing.T) {
		boom := errors.New("newsapi 500")
		svc, m := newService(&fakeMarketData{bars: bars}, &fakeNews{err: boom})
		if _, err := svc.Insights(context.Background(), "AAPL", domrepo.AssetStock); !errors.Is(err, boom) {
			t.Fatalf("expected news error, got %v", err)
		}
		if m.errors["news"] != 1 {
			t.Fatalf("metrics = %v", m.errors)
		}
	})
}
