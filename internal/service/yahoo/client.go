package yahoo

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"SmartInvest/internal/domain/models"
	drepo "SmartInvest/internal/domain/repository"
	xhttp "SmartInvest/pkg/http"
)

const DefaultBaseURL = "https://query1.finance.yahoo.com"

// Client fetches daily bars from the Yahoo Finance chart API.
type Client struct {
	baseURL string
	http    *xhttp.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    xhttp.NewClient(xhttp.WithTimeout(timeout), xhttp.WithUserAgent("Mozilla/5.0")),
	}
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*float64 `json:"volume"`
				} `json:"quote"`
				AdjClose []struct {
					AdjClose []*float64 `json:"adjclose"`
				} `json:"adjclose"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// FetchDailyBars returns up to `days` of daily bars, oldest first, with prices adjusted for
// splits and dividends. Missing values are NaN. An unknown symbol returns no bars and no error.
func (c *Client) FetchDailyBars(ctx context.Context, symbol string, _ drepo.AssetType, days int) ([]models.Bar, error) {
	var resp chartResponse
	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s", c.baseURL, url.PathEscape(symbol))
	err := c.http.GetJSON(ctx, endpoint, url.Values{
		"interval": {"1d"},
		"range":    {rangeFor(days)},
	}, &resp)
	if err != nil {
		var se *xhttp.StatusError
		if errors.As(err, &se) && se.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("yahoo chart %s: %w", symbol, err)
	}

	if e := resp.Chart.Error; e != nil {
		if strings.EqualFold(e.Code, "Not Found") {
			return nil, nil
		}
		return nil, fmt.Errorf("yahoo chart %s: %s", symbol, e.Description)
	}
	if len(resp.Chart.Result) == 0 || len(resp.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, nil
	}

	r := resp.Chart.Result[0]
	q := r.Indicators.Quote[0]
	var adj []*float64
	if len(r.Indicators.AdjClose) > 0 {
		adj = r.Indicators.AdjClose[0].AdjClose
	}

	bars := make([]models.Bar, 0, len(r.Timestamp))
	for i, ts := range r.Timestamp {
		b := models.Bar{
			Time:   time.Unix(ts, 0).UTC(),
			Symbol: symbol,
			Open:   at(q.Open, i),
			High:   at(q.High, i),
			Low:    at(q.Low, i),
			Close:  at(q.Close, i),
			Volume: at(q.Volume, i),
		}
		if a := at(adj, i); !math.IsNaN(a) && b.Close > 0 {
			ratio := a / b.Close
			b.Open *= ratio
			b.High *= ratio
			b.Low *= ratio
			b.Close = a
		}
		bars = append(bars, b)
	}
	if days > 0 && len(bars) > days {
		bars = bars[len(bars)-days:]
	}
	return bars, nil
}

func at(xs []*float64, i int) float64 {
	if i >= len(xs) || xs[i] == nil {
		return math.NaN()
	}
	return *xs[i]
}

// rangeFor picks the smallest chart range covering the requested calendar days.
func rangeFor(days int) string {
	switch {
	case days <= 0:
		return "1y"
	case days <= 5:
		return "5d"
	case days <= 31:
		return "1mo"
	case days <= 92:
		return "3mo"
	case days <= 183:
		return "6mo"
	case days <= 366:
		return "1y"
	case days <= 731:
		return "2y"
	default:
		return "5y"
	}
}

var _ drepo.MarketData = (*Client)(nil)
