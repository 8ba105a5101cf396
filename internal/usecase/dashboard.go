package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"SmartInvest/internal/domain/models"
	domrepo "SmartInvest/internal/domain/repository"
)

// Predictor is the slice of MarketService the dashboard and alert sweep depend on.
type Predictor interface {
	Predict(ctx context.Context, symbol string, asset domrepo.AssetType) (models.MarketPrediction, error)
}

// TrackedSymbol is a symbol shown on the dashboard.
type TrackedSymbol struct {
	Symbol string
	Asset  domrepo.AssetType
}

// DefaultTracked are the dashboard symbols, in display order.
var DefaultTracked = []TrackedSymbol{
	{"AAPL", domrepo.AssetStock},
	{"MSFT", domrepo.AssetStock},
	{"BTC", domrepo.AssetCrypto},
	{"ETH", domrepo.AssetCrypto},
}

const (
	topMovers      = 2
	fearGreedLabel = "Neutral"
)

var newsFeed = []string{
	"US inflation cools, lifting risk assets.",
	"Crypto market consolidates ahead of macro events.",
	"Tech earnings continue to surprise positively.",
}

// DashboardUseCase builds the market overview from fresh predictions.
type DashboardUseCase struct {
	predictor Predictor
	tracked   []TrackedSymbol
	timeout   time.Duration
}

func NewDashboardUseCase(p Predictor) *DashboardUseCase {
	return &DashboardUseCase{predictor: p, tracked: DefaultTracked, timeout: 30 * time.Second}
}

// Overview predicts every tracked symbol concurrently. Any failure fails the overview.
func (uc *DashboardUseCase) Overview(ctx context.Context) (*models.DashboardOverview, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	type item struct {
		idx  int
		card models.DashboardCard
		err  error
	}
	ch := make(chan item, len(uc.tracked))
	var wg sync.WaitGroup

	for i, ts := range uc.tracked {
		wg.Add(1)
		go func(i int, ts TrackedSymbol) {
			defer wg.Done()
			p, err := uc.predictor.Predict(ctx, ts.Symbol, ts.Asset)
			if err != nil {
				ch <- item{idx: i, err: fmt.Errorf("%s: %w", ts.Symbol, err)}
				return
			}
			ch <- item{idx: i, card: models.DashboardCard{
				Symbol:          ts.Symbol,
				LatestPrice:     p.LatestPrice,
				Predicted7d:     p.ShortTermPrediction,
				ConfidenceScore: p.ConfidenceScore,
			}}
		}(i, ts)
	}
	wg.Wait()
	close(ch)

	cards := make([]models.DashboardCard, len(uc.tracked))
	for it := range ch {
		if it.err != nil {
			return nil, it.err
		}
		cards[it.idx] = it.card
	}

	return &models.DashboardOverview{
		TopGainers:     rankCards(cards, true),
		TopLosers:      rankCards(cards, false),
		FearGreedIndex: fearGreedLabel,
		NewsFeed:       append([]string(nil), newsFeed...),
	}, nil
}

// rankCards orders by projected change, keeping tracked order among ties.
func rankCards(cards []models.DashboardCard, desc bool) []models.DashboardCard {
	sorted := append([]models.DashboardCard(nil), cards...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if desc {
			return sorted[i].Change() > sorted[j].Change()
		}
		return sorted[i].Change() < sorted[j].Change()
	})
	if len(sorted) > topMovers {
		sorted = sorted[:topMovers]
	}
	return sorted
}
