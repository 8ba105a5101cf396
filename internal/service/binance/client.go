package binance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"SmartInvest/internal/domain/models"
	drepo "SmartInvest/internal/domain/repository"

	gobinance "github.com/adshao/go-binance/v2"
	"github.com/adshao/go-binance/v2/common"
	"golang.org/x/time/rate"
)

const (
	quoteAsset = "USDT"
	// Binance rejects kline requests above this limit
	maxKlines = 1000
	// -1121 Invalid symbol.
	codeInvalidSymbol = -1121
)

// Client fetches daily spot klines for crypto pairs quoted in USDT.
type Client struct {
	client      *gobinance.Client
	rateLimiter *rate.Limiter
}

// New creates a spot client. Keys may be empty for public market data.
func New(apiKey, secretKey string, timeout time.Duration) *Client {
	c := gobinance.NewClient(apiKey, secretKey)
	if timeout > 0 {
		c.HTTPClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		client:      c,
		rateLimiter: rate.NewLimiter(rate.Limit(10), 20),
	}
}

// WithBaseURL points the client at another endpoint (testnet, tests).
func (c *Client) WithBaseURL(u string) *Client {
	c.client.BaseURL = u
	return c
}

// PairSymbol maps BTC-USD, BTC-USDT, BTC/USDT or btc to BTCUSDT.
func PairSymbol(symbol string) string {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	s = strings.TrimSuffix(s, "-"+quoteAsset)
	s = strings.TrimSuffix(s, "/"+quoteAsset)
	base := strings.NewReplacer("-", "", "/", "").Replace(drepo.BaseSymbol(s))
	if strings.HasSuffix(base, quoteAsset) {
		return base
	}
	return base + quoteAsset
}

// FetchDailyBars returns daily klines, oldest first. Unknown pairs return no bars and no error.
func (c *Client) FetchDailyBars(ctx context.Context, symbol string, _ drepo.AssetType, days int) ([]models.Bar, error) {
	if days <= 0 || days > maxKlines {
		days = 365
	}
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	pair := PairSymbol(symbol)
	klines, err := c.client.NewKlinesService().
		Symbol(pair).
		Interval("1d").
		Limit(days).
		Do(ctx)
	if err != nil {
		var apiErr *common.APIError
		if errors.As(err, &apiErr) && apiErr.Code == codeInvalidSymbol {
			return nil, nil
		}
		return nil, fmt.Errorf("binance klines %s: %w", pair, err)
	}

	bars := make([]models.Bar, 0, len(klines))
	for _, k := range klines {
		bars = append(bars, models.Bar{
			Time:   time.UnixMilli(k.OpenTime).UTC(),
			Symbol: symbol,
			Open:   parse(k.Open),
			High:   parse(k.High),
			Low:    parse(k.Low),
			Close:  parse(k.Close),
			Volume: parse(k.Volume),
		})
	}
	return bars, nil
}

// parse returns NaN for unparsable values so the row is dropped downstream.
func parse(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

var _ drepo.MarketData = (*Client)(nil)
