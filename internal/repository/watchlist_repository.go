package repository

import (
	"context"
	"errors"

	"SmartInvest/internal/domain/models"
	domrepo "SmartInvest/internal/domain/repository"

	"gorm.io/gorm"
)

// WatchlistRepository stores watchlist items and alerts in PostgreSQL via gorm.
type WatchlistRepository struct {
	db *gorm.DB
}

// NewWatchlistRepository creates a new instance of WatchlistRepository
func NewWatchlistRepository(db *gorm.DB) *WatchlistRepository {
	return &WatchlistRepository{db: db}
}

// Models lists the tables migrated on startup.
func Models() []interface{} {
	return []interface{}{&models.WatchlistItem{}, &models.Alert{}}
}

func (r *WatchlistRepository) AddWatchlistItem(ctx context.Context, item *models.WatchlistItem) error {
	if item == nil {
		return errors.New("watchlist item cannot be nil")
	}
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *WatchlistRepository) ListWatchlist(ctx context.Context, owner string) ([]models.WatchlistItem, error) {
	var items []models.WatchlistItem
	err := r.db.WithContext(ctx).Where("owner = ?", owner).Order("id").Find(&items).Error
	return items, err
}

func (r *WatchlistRepository) CreateAlert(ctx context.Context, alert *models.Alert) error {
	if alert == nil {
		return errors.New("alert cannot be nil")
	}
	return r.db.WithContext(ctx).Create(alert).Error
}

func (r *WatchlistRepository) ListAlerts(ctx context.Context, owner string) ([]models.Alert, error) {
	var alerts []models.Alert
	err := r.db.WithContext(ctx).Where("owner = ?", owner).Order("id").Find(&alerts).Error
	return alerts, err
}

// AllAlerts returns every alert across owners, for the sweep.
func (r *WatchlistRepository) AllAlerts(ctx context.Context) ([]models.Alert, error) {
	var alerts []models.Alert
	err := r.db.WithContext(ctx).Order("symbol, id").Find(&alerts).Error
	return alerts, err
}

var _ domrepo.WatchlistStore = (*WatchlistRepository)(nil)
