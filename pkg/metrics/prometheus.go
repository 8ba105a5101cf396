package metrics

import (
	"SmartInvest/internal/domain/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements the domain Metrics port using Prometheus.
type Recorder struct {
	predictions     *prometheus.CounterVec
	errorsTotal     *prometheus.CounterVec
	lastPrice       *prometheus.GaugeVec
	latency         *prometheus.HistogramVec
	alertsTriggered *prometheus.CounterVec
}

// New creates a recorder registered on reg; nil means the default registry.
func New(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Recorder{
		predictions: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "smartinvest_predictions_total",
				Help: "Total number of predictions by symbol and recommended action",
			},
			[]string{"symbol", "action"},
		),
		errorsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "smartinvest_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		lastPrice: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "smartinvest_last_price",
				Help: "Latest close observed for a symbol",
			},
			[]string{"symbol"},
		),
		latency: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "smartinvest_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		alertsTriggered: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "smartinvest_alerts_triggered_total",
				Help: "Total number of price alerts triggered",
			},
			[]string{"symbol"},
		),
	}
}

// RecordPrediction counts a prediction. Plain predictions without a recommendation use an empty action.
func (r *Recorder) RecordPrediction(symbol string, action models.Action) {
	r.predictions.WithLabelValues(symbol, string(action)).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLastPrice records the last price for a symbol.
func (r *Recorder) RecordLastPrice(symbol string, price float64) {
	r.lastPrice.WithLabelValues(symbol).Set(price)
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}

func (r *Recorder) RecordAlertTriggered(symbol string) {
	r.alertsTriggered.WithLabelValues(symbol).Inc()
}

// Nop discards every measurement.
type Nop struct{}

func (Nop) RecordPrediction(string, models.Action) {}
func (Nop) RecordError(string)                     {}
func (Nop) RecordLastPrice(string, float64)        {}
func (Nop) RecordLatency(string, float64)          {}
func (Nop) RecordAlertTriggered(string)            {}
