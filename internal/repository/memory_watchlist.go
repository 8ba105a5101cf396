package repository

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"SmartInvest/internal/domain/models"
	domrepo "SmartInvest/internal/domain/repository"
)

// MemoryWatchlist is the in-process store used when PostgreSQL is disabled.
type MemoryWatchlist struct {
	mu       sync.RWMutex
	nextItem uint
	nextAl   uint
	items    []models.WatchlistItem
	alerts   []models.Alert
}

func NewMemoryWatchlist() *MemoryWatchlist {
	return &MemoryWatchlist{}
}

func (m *MemoryWatchlist) AddWatchlistItem(_ context.Context, item *models.WatchlistItem) error {
	if item == nil {
		return errors.New("watchlist item cannot be nil")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextItem++
	item.ID = m.nextItem
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}
	m.items = append(m.items, *item)
	return nil
}

func (m *MemoryWatchlist) ListWatchlist(_ context.Context, owner string) ([]models.WatchlistItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.WatchlistItem, 0)
	for _, it := range m.items {
		if it.Owner == owner {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *MemoryWatchlist) CreateAlert(_ context.Context, alert *models.Alert) error {
	if alert == nil {
		return errors.New("alert cannot be nil")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextAl++
	alert.ID = m.nextAl
	if alert.CreatedAt.IsZero() {
		alert.CreatedAt = time.Now().UTC()
	}
	m.alerts = append(m.alerts, *alert)
	return nil
}

func (m *MemoryWatchlist) ListAlerts(_ context.Context, owner string) ([]models.Alert, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Alert, 0)
	for _, a := range m.alerts {
		if a.Owner == owner {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *MemoryWatchlist) AllAlerts(_ context.Context) ([]models.Alert, error) {
	m.mu.RLock()
	out := make([]models.Alert, len(m.alerts))
	copy(out, m.alerts)
	m.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Symbol != out[j].Symbol {
			return out[i].Symbol < out[j].Symbol
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

var _ domrepo.WatchlistStore = (*MemoryWatchlist)(nil)
