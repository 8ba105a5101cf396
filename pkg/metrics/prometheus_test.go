package metrics

import (
	"testing"

	"SmartInvest/internal/domain/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorder(t *testing.T) {
	r := New(prometheus.NewRegistry())

	r.RecordPrediction("AAPL", models.ActionBuy)
	r.RecordPrediction("AAPL", models.ActionBuy)
	r.RecordLastPrice("AAPL", 187.5)
	r.RecordAlertTriggered("BTC-USD")
	r.RecordError("symbol_not_found")

	if got := testutil.ToFloat64(r.predictions.WithLabelValues("AAPL", "Buy")); got != 2 {
		t.Fatalf("predictions = %v", got)
	}
	if got := testutil.ToFloat64(r.lastPrice.WithLabelValues("AAPL")); got != 187.5 {
		t.Fatalf("last price = %v", got)
	}
	if got := testutil.ToFloat64(r.alertsTriggered.WithLabelValues("BTC-USD")); got != 1 {
		t.Fatalf("alerts = %v", got)
	}
	if got := testutil.ToFloat64(r.errorsTotal.WithLabelValues("symbol_not_found")); got != 1 {
		t.Fatalf("errors = %v", got)
	}
}
