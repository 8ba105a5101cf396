package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"SmartInvest/internal/domain/models"
	domrepo "SmartInvest/internal/domain/repository"
	pkgch "SmartInvest/pkg/clickhouse"
	applogger "SmartInvest/pkg/logger"
)

const barsTable = "daily_bars"

// CHBarStore reads and writes daily bars in ClickHouse.
type CHBarStore struct {
	db       *sql.DB
	database string
	l        *applogger.Logger
	now      func() time.Time
}

func NewCHBarStore(ch *pkgch.Client, database string, l *applogger.Logger) *CHBarStore {
	if l == nil {
		l = applogger.NewNop()
	}
	return &CHBarStore{db: ch.DB(), database: database, l: l, now: time.Now}
}

// Schema returns the idempotent DDL for the bars table.
func (s *CHBarStore) Schema() []string {
	return []string{
		fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s", s.database),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
            day    Date,
            symbol LowCardinality(String),
            open   Float64,
            high   Float64,
            low    Float64,
            close  Float64,
            volume Float64
        ) ENGINE = ReplacingMergeTree
        ORDER BY (symbol, day)`, s.table()),
	}
}

func (s *CHBarStore) table() string {
	return s.database + "." + barsTable
}

// FetchDailyBars returns the bars of symbol dated within the last `days` calendar days, oldest first.
func (s *CHBarStore) FetchDailyBars(ctx context.Context, symbol string, _ domrepo.AssetType, days int) ([]models.Bar, error) {
	if days <= 0 {
		days = 365
	}
	q, args := fetchBarsQuery(s.table(), symbol, windowStart(s.now(), days))

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		s.l.Error("clickhouse fetch_bars query error",
			applogger.String("symbol", symbol),
			applogger.Error(err),
		)
		return nil, fmt.Errorf("fetch bars: %w", err)
	}
	defer rows.Close()

	out := make([]models.Bar, 0, days*5/7)
	for rows.Next() {
		var b models.Bar
		if err := rows.Scan(&b.Time, &b.Symbol, &b.Open, &b.High, &b.Low, &b.Close, &b.Volume); err != nil {
			return nil, fmt.Errorf("scan bar: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	reverseBars(out)
	return out, nil
}

// StoreBars upserts bars in chunks of multi-row inserts.
func (s *CHBarStore) StoreBars(ctx context.Context, bars []models.Bar) error {
	const chunkSize = 1000
	for start := 0; start < len(bars); start += chunkSize {
		end := start + chunkSize
		if end > len(bars) {
			end = len(bars)
		}
		q, args := buildInsert(s.table(), bars[start:end])
		if _, err := s.db.ExecContext(ctx, q, args...); err != nil {
			s.l.Error("clickhouse store_bars error",
				applogger.Int("rows", end-start),
				applogger.Error(err),
			)
			return fmt.Errorf("store bars: %w", err)
		}
	}
	return nil
}

// windowStart is the first UTC day included in a `days` long window ending at now.
func windowStart(now time.Time, days int) time.Time {
	return now.UTC().Truncate(24*time.Hour).AddDate(0, 0, -days)
}

func fetchBarsQuery(table, symbol string, since time.Time) (string, []interface{}) {
	q := fmt.Sprintf(`
        SELECT day, symbol, open, high, low, close, volume
        FROM %s FINAL
        WHERE symbol = ? AND day >= ?
        ORDER BY day DESC`, table)
	return q, []interface{}{symbol, since}
}

func buildInsert(table string, bars []models.Bar) (string, []interface{}) {
	var sb strings.Builder
	sb.WriteString("INSERT INTO ")
	sb.WriteString(table)
	sb.WriteString(" (day, symbol, open, high, low, close, volume) VALUES ")
	args := make([]interface{}, 0, len(bars)*7)
	for i, b := range bars {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(?, ?, ?, ?, ?, ?, ?)")
		args = append(args, b.Time.UTC().Truncate(24*time.Hour), b.Symbol, b.Open, b.High, b.Low, b.Close, b.Volume)
	}
	return sb.String(), args
}

func reverseBars(bars []models.Bar) {
	for i, j := 0, len(bars)-1; i < j; i, j = i+1, j-1 {
		bars[i], bars[j] = bars[j], bars[i]
	}
}

var _ domrepo.MarketData = (*CHBarStore)(nil)
