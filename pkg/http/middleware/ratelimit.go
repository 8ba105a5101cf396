package middleware

import (
	"context"
	"net/http"

	applogger "SmartInvest/pkg/logger"

	"github.com/labstack/echo/v4"
)

// Limiter decides whether a request identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimit rejects requests over the limit with 429. Limiter failures let the request through.
func RateLimit(limiter Limiter, l *applogger.Logger, skip ...string) echo.MiddlewareFunc {
	skipped := make(map[string]struct{}, len(skip))
	for _, p := range skip {
		skipped[p] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := skipped[c.Path()]; ok {
				return next(c)
			}
			ok, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				l.Warn("rate limiter unavailable", applogger.Error(err))
				return next(c)
			}
			if !ok {
				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"status":  http.StatusTooManyRequests,
					"message": http.StatusText(http.StatusTooManyRequests),
					"data": []map[string]string{{
						"code":    "ERR_RATE_LIMITED",
						"message": "rate limit exceeded",
					}},
				})
			}
			return next(c)
		}
	}
}
