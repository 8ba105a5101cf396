package features

import (
	"math"
	"testing"

	"SmartInvest/internal/domain/models"
)

func TestDropIncomplete(t *testing.T) {
	bars := []models.Bar{
		{Open: 1, High: 1, Low: 1, Close: 1, Volume: 10},
		{Open: math.NaN(), High: 1, Low: 1, Close: 1},
		{Open: 1, High: 1, Low: 1, Close: 0},
		{Open: 1, High: math.Inf(1), Low: 1, Close: 2},
		{Open: 2, High: 2, Low: 2, Close: 3, Volume: 30},
	}
	got := DropIncomplete(bars)
	if len(got) != 2 {
		t.Fatalf("expected 2 bars, got %d", len(got))
	}
	if got[0].Close != 1 || got[1].Close != 3 {
		t.Fatalf("unexpected order: %+v", got)
	}
}

func TestClosesAndVolumes(t *testing.T) {
	bars := []models.Bar{{Close: 1, Volume: 5}, {Close: 2, Volume: 6}}
	c := Closes(bars)
	v := Volumes(bars)
	if len(c) != 2 || c[1] != 2 {
		t.Fatalf("unexpected closes %v", c)
	}
	if len(v) != 2 || v[0] != 5 {
		t.Fatalf("unexpected volumes %v", v)
	}
}
