package usecase

import (
	"context"
	"fmt"

	"SmartInvest/internal/domain/models"
	domrepo "SmartInvest/internal/domain/repository"
)

// WatchlistUseCase is the owner-scoped CRUD over watchlist items and price alerts.
type WatchlistUseCase struct {
	store domrepo.WatchlistStore
}

func NewWatchlistUseCase(store domrepo.WatchlistStore) *WatchlistUseCase {
	return &WatchlistUseCase{store: store}
}

func (uc *WatchlistUseCase) AddItem(ctx context.Context, owner string, req models.WatchlistItemCreate) (*models.WatchlistItem, error) {
	item := &models.WatchlistItem{
		Owner:     owner,
		Symbol:    upper(req.Symbol),
		AssetType: string(domrepo.ParseAssetType(req.AssetType)),
	}
	if err := uc.store.AddWatchlistItem(ctx, item); err != nil {
		return nil, fmt.Errorf("add watchlist item: %w", err)
	}
	return item, nil
}

func (uc *WatchlistUseCase) Items(ctx context.Context, owner string) ([]models.WatchlistItem, error) {
	items, err := uc.store.ListWatchlist(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list watchlist: %w", err)
	}
	return items, nil
}

func (uc *WatchlistUseCase) CreateAlert(ctx context.Context, owner string, req models.AlertCreate) (*models.Alert, error) {
	alert := &models.Alert{
		Owner:               owner,
		Symbol:              upper(req.Symbol),
		AssetType:           string(domrepo.ParseAssetType(req.AssetType)),
		TargetPrice:         req.TargetPrice,
		PredictionThreshold: req.PredictionThreshold,
	}
	if err := uc.store.CreateAlert(ctx, alert); err != nil {
		return nil, fmt.Errorf("create alert: %w", err)
	}
	return alert, nil
}

func (uc *WatchlistUseCase) Alerts(ctx context.Context, owner string) ([]models.Alert, error) {
	alerts, err := uc.store.ListAlerts(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	return alerts, nil
}
