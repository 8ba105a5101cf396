package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"SmartInvest/internal/domain/models"
	domrepo "SmartInvest/internal/domain/repository"
)

type fakeMarketData struct {
	bars    []models.Bar
	err     error
	lastSym string
	lastN   int
}

func (f *fakeMarketData) FetchDailyBars(_ context.Context, symbol string, _ domrepo.AssetType, days int) ([]models.Bar, error) {
	f.lastSym, f.lastN = symbol, days
	return f.bars, f.err
}

// linearBars returns n complete bars with close = start + slope*i.
func linearBars(n int, start, slope float64) []models.Bar {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]models.Bar, n)
	for i := range bars {
		c := start + slope*float64(i)
		bars[i] = models.Bar{
			Time:   t0.AddDate(0, 0, i),
			Open:   c,
			High:   c + 1,
			Low:    c - 1,
			Close:  c,
			Volume: float64(1000 + i),
		}
	}
	return bars
}

type fakeNews struct {
	headlines []string
	err       error
	lastSym   string
}

func (f *fakeNews) Headlines(_ context.Context, symbol string) ([]string, error) {
	f.lastSym = symbol
	return f.headlines, f.err
}

type recordingMetrics struct {
	mu        sync.Mutex
	errors    map[string]int
	triggered map[string]int
	actions   map[string]models.Action
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{
		errors:    map[string]int{},
		triggered: map[string]int{},
		actions:   map[string]models.Action{},
	}
}

func (m *recordingMetrics) RecordPrediction(symbol string, action models.Action) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.actions[symbol] = action
}

func (m *recordingMetrics) RecordError(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors[kind]++
}

func (m *recordingMetrics) RecordLastPrice(string, float64) {}
func (m *recordingMetrics) RecordLatency(string, float64)   {}

func (m *recordingMetrics) RecordAlertTriggered(symbol string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.triggered[symbol]++
}

// stubPredictor serves canned predictions keyed by symbol, or by "SYMBOL/asset" when the
// same ticker exists for both asset types.
type stubPredictor struct {
	mu      sync.Mutex
	preds   map[string]models.MarketPrediction
	errs    map[string]error
	calls   map[string]int
	history []string
}

func newStubPredictor() *stubPredictor {
	return &stubPredictor{
		preds: map[string]models.MarketPrediction{},
		errs:  map[string]error{},
		calls: map[string]int{},
	}
}

func (s *stubPredictor) Predict(_ context.Context, symbol string, asset domrepo.AssetType) (models.MarketPrediction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[symbol]++
	qualified := symbol + "/" + string(asset)
	s.history = append(s.history, qualified)
	if err, ok := s.errs[symbol]; ok {
		return models.MarketPrediction{}, err
	}
	if p, ok := s.preds[qualified]; ok {
		return p, nil
	}
	p, ok := s.preds[symbol]
	if !ok {
		return models.MarketPrediction{}, errors.New("no prediction for " + symbol)
	}
	return p, nil
}

type capturePublisher struct {
	mu     sync.Mutex
	events []*models.AlertEvent
	err    error
}

func (c *capturePublisher) PublishAlert(_ context.Context, ev *models.AlertEvent) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return c.err
	}
	c.events = append(c.events, ev)
	return nil
}

func (c *capturePublisher) Close() error { return nil }
