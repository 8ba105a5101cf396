package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	EndpointLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "smartinvest",
			Subsystem: "api",
			Name:      "latency_seconds",
			Help:      "Latency of market and dashboard endpoints",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	EndpointErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "smartinvest",
			Subsystem: "api",
			Name:      "errors_total",
			Help:      "Errors by endpoint and kind",
		},
		[]string{"endpoint", "kind"},
	)
)

func Register() {
	once.Do(func() {
		prometheus.MustRegister(EndpointLatency, EndpointErrors)
	})
}

// Observe records the latency of one endpoint call and, when kind is not empty, an error.
func Observe(endpoint string, start time.Time, kind string) {
	EndpointLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if kind != "" {
		EndpointErrors.WithLabelValues(endpoint, kind).Inc()
	}
}
