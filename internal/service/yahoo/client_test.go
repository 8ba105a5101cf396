package yahoo

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const chartBody = `{"chart":{"result":[{"timestamp":[1700000000,1700086400,1700172800],
"indicators":{"quote":[{"open":[10,11,null],"high":[12,13,14],"low":[9,10,11],"close":[11,12,13],"volume":[100,200,300]}],
"adjclose":[{"adjclose":[5.5,12,13]}]}}],"error":null}}`

func TestFetchDailyBars(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v8/finance/chart/AAPL" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("interval") != "1d" || r.URL.Query().Get("range") != "1y" {
			t.Errorf("unexpected query %s", r.URL.RawQuery)
		}
		if r.Header.Get("User-Agent") == "" {
			t.Error("missing user agent")
		}
		_, _ = w.Write([]byte(chartBody))
	}))
	defer srv.Close()

	bars, err := New(srv.URL, time.Second).FetchDailyBars(context.Background(), "AAPL", "stock", 365)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bars) != 3 {
		t.Fatalf("expected 3 bars, got %d", len(bars))
	}
	// first bar is adjusted by 0.5
	if bars[0].Close != 5.5 || bars[0].Open != 5 || bars[0].High != 6 {
		t.Fatalf("unexpected adjusted bar %+v", bars[0])
	}
	if !math.IsNaN(bars[2].Open) {
		t.Fatalf("expected NaN for missing open, got %v", bars[2].Open)
	}
	if bars[1].Volume != 200 || !bars[0].Time.Before(bars[1].Time) {
		t.Fatalf("unexpected bar %+v", bars[1])
	}
}

func TestFetchDailyBarsUnknownSymbol(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"http 404", http.StatusNotFound, `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`},
		{"empty result", http.StatusOK, `{"chart":{"result":[],"error":null}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			bars, err := New(srv.URL, time.Second).FetchDailyBars(context.Background(), "NOPE", "stock", 365)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(bars) != 0 {
				t.Fatalf("expected no bars, got %d", len(bars))
			}
		})
	}
}

func TestFetchDailyBarsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	if _, err := New(srv.URL, time.Second).FetchDailyBars(context.Background(), "AAPL", "stock", 365); err == nil {
		t.Fatal("expected error")
	}
}

func TestRangeFor(t *testing.T) {
	tests := map[int]string{0: "1y", 5: "5d", 30: "1mo", 90: "3mo", 180: "6mo", 365: "1y", 700: "2y", 2000: "5y"}
	for days, want := range tests {
		if got := rangeFor(days); got != want {
			t.Errorf("rangeFor(%d) = %q, want %q", days, got, want)
		}
	}
}
