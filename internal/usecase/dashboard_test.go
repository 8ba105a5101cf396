package usecase

import (
	"context"
	"errors"
	"testing"

	"SmartInvest/internal/domain/models"
)

func pred(latest, short, conf float64) models.MarketPrediction {
	return models.MarketPrediction{LatestPrice: latest, ShortTermPrediction: short, ConfidenceScore: conf}
}

func TestOverviewRanksMovers(t *testing.T) {
	sp := newStubPredictor()
	sp.preds["AAPL"] = pred(100, 105, 80)
	sp.preds["MSFT"] = pred(300, 290, 70)
	sp.preds["BTC"] = pred(50000, 50020, 60)
	sp.preds["ETH"] = pred(3000, 3000, 50)

	ov, err := NewDashboardUseCase(sp).Overview(context.Background())
	if err != nil {
		t.Fatalf("overview: %v", err)
	}

	gainers := []string{ov.TopGainers[0].Symbol, ov.TopGainers[1].Symbol}
	if gainers[0] != "BTC" || gainers[1] != "AAPL" {
		t.Fatalf("gainers = %v", gainers)
	}
	losers := []string{ov.TopLosers[0].Symbol, ov.TopLosers[1].Symbol}
	if losers[0] != "MSFT" || losers[1] != "ETH" {
		t.Fatalf("losers = %v", losers)
	}
	if ov.TopGainers[0].Predicted7d != 50020 || ov.TopGainers[0].ConfidenceScore != 60 {
		t.Fatalf("card = %+v", ov.TopGainers[0])
	}
	if ov.FearGreedIndex != "Neutral" || len(ov.NewsFeed) != 3 {
		t.Fatalf("static fields = %q %v", ov.FearGreedIndex, ov.NewsFeed)
	}
	for _, ts := range DefaultTracked {
		if sp.calls[ts.Symbol] != 1 {
			t.Fatalf("%s predicted %d times", ts.Symbol, sp.calls[ts.Symbol])
		}
	}
}

func TestOverviewTiesKeepTrackedOrder(t *testing.T) {
	sp := newStubPredictor()
	for _, ts := range DefaultTracked {
		sp.preds[ts.Symbol] = pred(10, 10, 0)
	}
	ov, err := NewDashboardUseCase(sp).Overview(context.Background())
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if ov.TopGainers[0].Symbol != "AAPL" || ov.TopGainers[1].Symbol != "MSFT" {
		t.Fatalf("gainers = %+v", ov.TopGainers)
	}
	if ov.TopLosers[0].Symbol != "AAPL" || ov.TopLosers[1].Symbol != "MSFT" {
		t.Fatalf("losers = %+v", ov.TopLosers)
	}
}

func TestOverviewFailsOnAnyCard(t *testing.T) {
	sp := newStubPredictor()
	sp.preds["AAPL"] = pred(1, 1, 1)
	sp.preds["MSFT"] = pred(1, 1, 1)
	sp.preds["BTC"] = pred(1, 1, 1)
	sp.errs["ETH"] = &models.PipelineError{Kind: models.ErrSymbolNotFound, Message: "No market data found for ETH"}

	_, err := NewDashboardUseCase(sp).Overview(context.Background())
	if !errors.Is(err, models.ErrSymbolNotFound) {
		t.Fatalf("expected symbol not found, got %v", err)
	}
}
