package middleware

import (
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "smartinvest"

type httpCollectors struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	inFlight prometheus.Gauge
	bytes    *prometheus.HistogramVec
}

var (
	collectors     *httpCollectors
	collectorsOnce sync.Once
)

func registerHTTPCollectors() {
	labels := []string{"route", "method", "code"}
	collectors = &httpCollectors{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "http", Name: "requests_total",
			Help: "HTTP requests by route template and status code.",
		}, labels),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: "http", Name: "request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		}, []string{"route", "method"}),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Subsystem: "http", Name: "in_flight_requests",
			Help: "Requests currently being served.",
		}),
		bytes: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: "http", Name: "response_size_bytes",
			Help:    "Response body size.",
			Buckets: prometheus.ExponentialBuckets(128, 4, 7),
		}, []string{"route"}),
	}
	prometheus.MustRegister(collectors.requests, collectors.latency, collectors.inFlight, collectors.bytes)
}

// Metrics records per-route request counters, latency and response size. Errors returned by
// the handler are rendered first so the recorded status is the one sent to the client.
func Metrics() echo.MiddlewareFunc {
	collectorsOnce.Do(registerHTTPCollectors)
	m := collectors

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			m.inFlight.Inc()
			defer m.inFlight.Dec()
			start := time.Now()

			if err := next(c); err != nil {
				c.Error(err)
			}

			route := routeLabel(c)
			method := c.Request().Method
			m.requests.WithLabelValues(route, method, strconv.Itoa(c.Response().Status)).Inc()
			m.latency.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
			m.bytes.WithLabelValues(route).Observe(float64(c.Response().Size))
			return nil
		}
	}
}

// routeLabel is the matched route template, keeping label cardinality bounded.
func routeLabel(c echo.Context) string {
	if p := c.Path(); p != "" {
		return p
	}
	return "unmatched"
}
