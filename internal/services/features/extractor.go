package features

import (
	"math"

	"SmartInvest/internal/domain/models"
)

// DropIncomplete removes bars with a missing or non-finite price field or a non-positive close.
// The input order is preserved.
func DropIncomplete(bars []models.Bar) []models.Bar {
	out := make([]models.Bar, 0, len(bars))
	for _, b := range bars {
		if !finite(b.Open) || !finite(b.High) || !finite(b.Low) || !finite(b.Close) || !finite(b.Volume) {
			continue
		}
		if b.Close <= 0 {
			continue
		}
		out = append(out, b)
	}
	return out
}

// Closes extracts the close series.
func Closes(bars []models.Bar) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.Close
	}
	return out
}

// Volumes extracts the volume series.
func Volumes(bars []models.Bar) []float64 {
	out := make([]float64, len(bars))
	for i, b := range bars {
		out[i] = b.Volume
	}
	return out
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
