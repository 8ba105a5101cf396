package advisor

import (
	"math"

	"SmartInvest/internal/domain/models"
	"SmartInvest/pkg/util"
)

const (
	buyDelta         = 0.04
	sellDelta        = -0.03
	highVolatility   = 0.03
	mediumVolatility = 0.01
	midTermDelta     = 0.06
	baseAllocation   = 25.0
	minAllocation    = 5.0
	maxAllocation    = 35.0
)

// Delta is the relative projected 7-day move. It is 0 when the latest price is not positive.
func Delta(p models.MarketPrediction) float64 {
	if p.LatestPrice <= 0 {
		return 0
	}
	return (p.ShortTermPrediction - p.LatestPrice) / p.LatestPrice
}

// VolatilityProxy is |MACD| scaled by the latest price, with the price floored at 1.
func VolatilityProxy(p models.MarketPrediction) float64 {
	return math.Abs(p.Indicators[models.IndicatorMACD]) / math.Max(p.LatestPrice, 1)
}

// Recommend maps a prediction to an action, risk level, holding duration and allocation.
func Recommend(symbol string, p models.MarketPrediction) models.Recommendation {
	delta := Delta(p)
	vol := VolatilityProxy(p)

	action := models.ActionHold
	switch {
	case delta > buyDelta:
		action = models.ActionBuy
	case delta < sellDelta:
		action = models.ActionSell
	}

	risk := models.RiskLow
	switch {
	case vol > highVolatility:
		risk = models.RiskHigh
	case vol > mediumVolatility:
		risk = models.RiskMedium
	}

	duration := models.DurationShort
	if math.Abs(delta) >= midTermDelta {
		duration = models.DurationMid
	}

	alloc := util.Clamp(baseAllocation-vol*100+p.ConfidenceScore/10, minAllocation, maxAllocation)

	return models.Recommendation{
		Symbol:                 symbol,
		Action:                 action,
		RiskLevel:              risk,
		InvestmentDuration:     duration,
		PortfolioAllocationPct: util.Round(alloc, 2),
	}
}
