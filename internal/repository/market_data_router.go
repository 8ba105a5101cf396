package repository

import (
	"context"
	"fmt"

	"SmartInvest/internal/domain/models"
	domrepo "SmartInvest/internal/domain/repository"
)

// MarketDataRouter dispatches bar requests to a provider per asset type.
type MarketDataRouter struct {
	stocks domrepo.MarketData
	crypto domrepo.MarketData
}

// NewMarketDataRouter uses stocks for every asset type that has no dedicated provider.
func NewMarketDataRouter(stocks, crypto domrepo.MarketData) *MarketDataRouter {
	if crypto == nil {
		crypto = stocks
	}
	return &MarketDataRouter{stocks: stocks, crypto: crypto}
}

func (r *MarketDataRouter) FetchDailyBars(ctx context.Context, symbol string, asset domrepo.AssetType, days int) ([]models.Bar, error) {
	switch asset {
	case domrepo.AssetCrypto:
		return r.crypto.FetchDailyBars(ctx, symbol, asset, days)
	case domrepo.AssetStock:
		return r.stocks.FetchDailyBars(ctx, symbol, asset, days)
	default:
		return nil, fmt.Errorf("unsupported asset type %q", asset)
	}
}

var _ domrepo.MarketData = (*MarketDataRouter)(nil)
