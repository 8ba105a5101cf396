package repository

import (
	"strings"
	"testing"
	"time"

	"SmartInvest/internal/domain/models"
)

func TestBuildInsert(t *testing.T) {
	day := time.Date(2024, 3, 1, 15, 30, 0, 0, time.UTC)
	bars := []models.Bar{
		{Time: day, Symbol: "AAPL", Open: 1, High: 2, Low: 0.5, Close: 1.5, Volume: 100},
		{Time: day.Add(24 * time.Hour), Symbol: "AAPL", Open: 1.5, High: 2, Low: 1, Close: 1.8, Volume: 90},
	}
	q, args := buildInsert("smartinvest.daily_bars", bars)
	if !strings.HasPrefix(q, "INSERT INTO smartinvest.daily_bars (day, symbol, open, high, low, close, volume) VALUES ") {
		t.Fatalf("unexpected query %q", q)
	}
	if strings.Count(q, "(?, ?, ?, ?, ?, ?, ?)") != 2 {
		t.Fatalf("expected two value groups: %q", q)
	}
	if len(args) != 14 {
		t.Fatalf("expected 14 args, got %d", len(args))
	}
	if got := args[0].(time.Time); !got.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("day not truncated: %v", got)
	}
}

func TestReverseBars(t *testing.T) {
	bars := []models.Bar{{Close: 3}, {Close: 2}, {Close: 1}}
	reverseBars(bars)
	if bars[0].Close != 1 || bars[2].Close != 3 {
		t.Fatalf("unexpected order %+v", bars)
	}
}

func TestFetchBarsQueryFiltersByDate(t *testing.T) {
	now := time.Date(2025, 6, 15, 22, 10, 0, 0, time.UTC)
	since := windowStart(now, 365)
	if want := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC); !since.Equal(want) {
		t.Fatalf("window start = %v, want %v", since, want)
	}

	q, args := fetchBarsQuery("smartinvest.daily_bars", "AAPL", since)
	if !strings.Contains(q, "WHERE symbol = ? AND day >= ?") {
		t.Fatalf("missing date filter: %q", q)
	}
	if strings.Contains(q, "LIMIT") {
		t.Fatalf("query must not cap rows: %q", q)
	}
	if len(args) != 2 || args[0] != "AAPL" || !args[1].(time.Time).Equal(since) {
		t.Fatalf("args = %v", args)
	}
}
