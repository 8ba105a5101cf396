package indicators

import (
	"math"

	"SmartInvest/internal/domain/models"

	"github.com/markcheno/go-talib"
)

const (
	RSIPeriod  = 14
	MACDFast   = 12
	MACDSlow   = 26
	SMAShort   = 20
	SMALong    = 50
	neutralRSI = 50.0
)

// Calculate computes the latest value of every indicator from aligned close and volume series.
func Calculate(closes, volumes []float64) models.Indicators {
	out := models.Indicators{
		models.IndicatorVolume: 0,
		models.IndicatorRSI:    neutralRSI,
		models.IndicatorMACD:   0,
		models.IndicatorSMA20:  0,
		models.IndicatorSMA50:  0,
	}
	if len(closes) == 0 {
		return out
	}
	if len(volumes) > 0 {
		out[models.IndicatorVolume] = volumes[len(volumes)-1]
	}
	out[models.IndicatorRSI] = RSI(closes, RSIPeriod)
	out[models.IndicatorMACD] = MACD(closes, MACDFast, MACDSlow)
	out[models.IndicatorSMA20] = SMA(closes, SMAShort)
	out[models.IndicatorSMA50] = SMA(closes, SMALong)
	return out
}

// RSI returns the latest relative strength index using simple rolling means of gains and
// losses over the last period close deltas. Undefined values (short history, zero loss) are 50.
func RSI(closes []float64, period int) float64 {
	if period <= 0 || len(closes) < period+1 {
		return neutralRSI
	}
	var gain, loss float64
	for i := len(closes) - period; i < len(closes); i++ {
		d := closes[i] - closes[i-1]
		if d > 0 {
			gain += d
		} else {
			loss -= d
		}
	}
	gain /= float64(period)
	loss /= float64(period)
	if loss == 0 {
		return neutralRSI
	}
	rs := gain / loss
	rsi := 100 - 100/(1+rs)
	if math.IsNaN(rsi) {
		return neutralRSI
	}
	return rsi
}

// EMA returns the exponential moving average series with alpha 2/(span+1),
// seeded with the first value and no bias adjustment.
func EMA(values []float64, span int) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 || span <= 0 {
		return out
	}
	alpha := 2.0 / (float64(span) + 1)
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = alpha*values[i] + (1-alpha)*out[i-1]
	}
	return out
}

// MACD returns the latest EMA(fast) - EMA(slow), without a signal line.
func MACD(closes []float64, fast, slow int) float64 {
	if len(closes) == 0 {
		return 0
	}
	f := EMA(closes, fast)
	s := EMA(closes, slow)
	return f[len(f)-1] - s[len(s)-1]
}

// SMA returns the latest simple moving average, or the latest close when the history
// is shorter than the window.
func SMA(closes []float64, period int) float64 {
	if len(closes) == 0 {
		return 0
	}
	last := closes[len(closes)-1]
	if period <= 0 || len(closes) < period {
		return last
	}
	sma := talib.Sma(closes, period)
	v := sma[len(sma)-1]
	if math.IsNaN(v) {
		return last
	}
	return v
}
