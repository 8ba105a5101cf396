package models

// Indicator keys reported with every prediction.
const (
	IndicatorVolume = "volume"
	IndicatorRSI    = "rsi"
	IndicatorMACD   = "macd"
	IndicatorSMA20  = "sma_20"
	IndicatorSMA50  = "sma_50"
)

// Indicators maps indicator name to its most recent value.
type Indicators map[string]float64

// Projection is the output of a trend model fitted over a close series.
type Projection struct {
	ShortTerm  float64 // n+7
	MidTerm    float64 // n+90
	Confidence float64 // R² in percent, [0,100]
}

// MarketPrediction is produced once per request and never stored.
type MarketPrediction struct {
	Symbol              string     `json:"symbol"`
	LatestPrice         float64    `json:"latest_price"`
	ShortTermPrediction float64    `json:"short_term_prediction"`
	MidTermPrediction   float64    `json:"mid_term_prediction"`
	ConfidenceScore     float64    `json:"confidence_score"`
	Indicators          Indicators `json:"indicators"`
}
