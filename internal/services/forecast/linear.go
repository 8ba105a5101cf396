package forecast

import (
	"fmt"
	"math"

	"SmartInvest/internal/domain/models"
	domsvc "SmartInvest/internal/domain/service"
	"SmartInvest/pkg/util"

	"gonum.org/v1/gonum/stat"
)

const (
	ShortHorizon = 7
	MidHorizon   = 90
	MinPrice     = 0.01
)

// LinearProjector fits an ordinary least squares line of close on trading-day index.
type LinearProjector struct{}

func NewLinearProjector() *LinearProjector { return &LinearProjector{} }

// Project fits closes over x = 0..n-1 and evaluates the line at n+7 and n+90.
// Confidence is the in-sample R² in percent, clamped to [0,100].
func (p *LinearProjector) Project(closes []float64) (models.Projection, error) {
	n := len(closes)
	if n < 2 {
		return models.Projection{}, fmt.Errorf("projection needs at least 2 points, got %d", n)
	}
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i)
	}

	alpha, beta := stat.LinearRegression(xs, closes, nil, false)
	r2 := stat.RSquared(xs, closes, nil, alpha, beta)
	if math.IsNaN(r2) {
		// zero variance: the fitted line reproduces the series exactly
		r2 = 1
	}

	short := alpha + beta*float64(n+ShortHorizon)
	mid := alpha + beta*float64(n+MidHorizon)

	return models.Projection{
		ShortTerm:  math.Max(MinPrice, short),
		MidTerm:    math.Max(MinPrice, mid),
		Confidence: util.Round(util.Clamp(r2*100, 0, 100), 2),
	}, nil
}

var _ domsvc.TrendProjector = (*LinearProjector)(nil)
