package insights

import (
	"fmt"

	"SmartInvest/internal/domain/models"
)

const overboughtRSI = 70

// Narrate builds the deterministic pros and cons for a prediction.
func Narrate(symbol string, p models.MarketPrediction) models.Insights {
	pros := make([]string, 0, 5)
	cons := make([]string, 0, 5)

	if p.ShortTermPrediction > p.LatestPrice {
		pros = append(pros, "Growth potential supported by positive modeled price trajectory.")
	} else {
		pros = append(pros, "Stable trading pattern with limited downside in short term.")
	}
	pros = append(pros, fmt.Sprintf("Technical confidence score is %.1f%%, indicating model consistency.", p.ConfidenceScore))
	if p.Indicators[models.IndicatorSMA20] > p.Indicators[models.IndicatorSMA50] {
		pros = append(pros, "Moving averages show medium-term accumulation trend.")
	} else {
		pros = append(pros, "Recent pullback may create an accumulation opportunity.")
	}
	pros = append(pros, "Institutional and momentum behavior appear constructive based on volume stability.")

	cons = append(cons,
		"Volatility risk remains elevated; predictions can deviate sharply in macro shocks.",
		"Sentiment shifts from negative news could invalidate bullish setup quickly.",
		"Regulatory events can disproportionately impact valuation, especially for crypto assets.",
	)
	if p.Indicators[models.IndicatorRSI] > overboughtRSI {
		cons = append(cons, "Overbought conditions detected (RSI > 70).")
	} else {
		cons = append(cons, "Weak momentum risk if RSI slips below 45.")
	}

	return models.Insights{Symbol: symbol, Pros: pros, Cons: cons}
}

// WithSentiment appends the headline sentiment sentences to a narrative.
func WithSentiment(in models.Insights, s models.Sentiment) models.Insights {
	in.Pros = append(in.Pros, fmt.Sprintf("News sentiment currently %s (%+.0f score).", s.Label, s.Score))
	in.Cons = append(in.Cons, "Headline momentum may reverse quickly in high-volatility sessions.")
	return in
}
