package newsapi

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	drepo "SmartInvest/internal/domain/repository"
	"SmartInvest/pkg/cache"
	xhttp "SmartInvest/pkg/http"
	"SmartInvest/pkg/logger"
)

const DefaultBaseURL = "https://newsapi.org"

// Config for the NewsAPI client. An empty APIKey disables remote calls.
type Config struct {
	APIKey   string
	BaseURL  string
	PageSize int
	Timeout  time.Duration
	CacheTTL time.Duration
}

// Client fetches recent English headlines mentioning a symbol.
type Client struct {
	cfg   Config
	http  *xhttp.Client
	cache cache.Store
	log   *logger.Logger
}

// New creates a client. c may be nil, in which case headlines are never cached.
func New(cfg Config, c cache.Store, l *logger.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 10
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if l == nil {
		l = logger.NewNop()
	}
	return &Client{
		cfg:   cfg,
		http:  xhttp.NewClient(xhttp.WithTimeout(cfg.Timeout)),
		cache: c,
		log:   l,
	}
}

type everythingResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Articles []struct {
		Title string `json:"title"`
	} `json:"articles"`
}

// Headlines returns non-empty article titles. Without an API key it returns a single
// placeholder headline.
func (c *Client) Headlines(ctx context.Context, symbol string) ([]string, error) {
	if c.cfg.APIKey == "" {
		return []string{fmt.Sprintf("%s market outlook remains mixed as macro conditions evolve", symbol)}, nil
	}

	key := cache.GenerateKey("news", strings.ToUpper(symbol))
	if c.cache != nil && c.cfg.CacheTTL > 0 {
		var cached []string
		err := c.cache.Get(ctx, key, &cached)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			c.log.Warn("headline cache read failed", logger.String("symbol", symbol), logger.Error(err))
		}
	}

	var resp everythingResponse
	err := c.http.GetJSON(ctx, c.cfg.BaseURL+"/v2/everything", url.Values{
		"q":        {symbol},
		"pageSize": {strconv.Itoa(c.cfg.PageSize)},
		"language": {"en"},
		"apiKey":   {c.cfg.APIKey},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("newsapi %s: %w", symbol, err)
	}
	if resp.Status == "error" {
		return nil, fmt.Errorf("newsapi %s: %s", symbol, resp.Message)
	}

	headlines := make([]string, 0, len(resp.Articles))
	for _, a := range resp.Articles {
		if a.Title != "" {
			headlines = append(headlines, a.Title)
		}
	}

	if c.cache != nil && c.cfg.CacheTTL > 0 {
		if err := c.cache.Set(ctx, key, headlines, c.cfg.CacheTTL); err != nil {
			c.log.Warn("headline cache write failed", logger.String("symbol", symbol), logger.Error(err))
		}
	}
	return headlines, nil
}

var _ drepo.NewsProvider = (*Client)(nil)
