package forecast

import (
	"math"
	"testing"
)

func series(n int, f func(i int) float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = f(i)
	}
	return out
}

func TestProjectPerfectLine(t *testing.T) {
	closes := series(60, func(i int) float64 { return 100 + 2*float64(i) })
	p, err := NewLinearProjector().Project(closes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(p.ShortTerm-(100+2*67)) > 1e-6 {
		t.Fatalf("short = %v", p.ShortTerm)
	}
	if math.Abs(p.MidTerm-(100+2*150)) > 1e-6 {
		t.Fatalf("mid = %v", p.MidTerm)
	}
	if p.Confidence != 100 {
		t.Fatalf("confidence = %v", p.Confidence)
	}
}

func TestProjectConstantSeries(t *testing.T) {
	closes := series(60, func(int) float64 { return 5 })
	p, err := NewLinearProjector().Project(closes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(p.ShortTerm-5) > 1e-9 || p.Confidence != 100 {
		t.Fatalf("unexpected projection %+v", p)
	}
}

func TestProjectFloorsAtMinPrice(t *testing.T) {
	closes := series(60, func(i int) float64 { return 60 - float64(i) })
	p, err := NewLinearProjector().Project(closes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ShortTerm != MinPrice || p.MidTerm != MinPrice {
		t.Fatalf("expected floor at %v, got %+v", MinPrice, p)
	}
}

func TestProjectConfidenceRange(t *testing.T) {
	closes := series(80, func(i int) float64 { return 50 + 10*math.Sin(float64(i)) })
	p, err := NewLinearProjector().Project(closes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Confidence < 0 || p.Confidence > 100 {
		t.Fatalf("confidence out of range: %v", p.Confidence)
	}
}

func TestProjectRejectsTinySeries(t *testing.T) {
	if _, err := NewLinearProjector().Project([]float64{1}); err == nil {
		t.Fatal("expected error")
	}
}
