// Package indicator derives technical indicators from a close-price series.
// All computations are pure: the same series always yields the same snapshot.
package indicator

import "github.com/Tarzanchik/trading-bot/internal/model"

// Indicator windows.
const (
	ShortWindow    = 5
	LongWindow     = 20
	RSIPeriod      = 14
	MACDFastSpan   = 12
	MACDSlowSpan   = 26
	MACDSignalSpan = 9
)

// Compute derives the full indicator snapshot for a series, one row per
// point, aligned by timestamp. Fields are nil where the series is shorter
// than their lookback window; MACD and its signal line are defined from
// the first row (an EMA always has a value).
func Compute(series model.PriceSeries) model.IndicatorSnapshot {
	closes := series.Closes()

	maShort := rollingMean(closes, ShortWindow)
	maLong := rollingMean(closes, LongWindow)
	rsiVals := rsi(closes, RSIPeriod)

	emaFast := ema(closes, MACDFastSpan)
	emaSlow := ema(closes, MACDSlowSpan)
	macd := make([]float64, len(closes))
	for i := range closes {
		macd[i] = emaFast[i] - emaSlow[i]
	}
	macdSignal := ema(macd, MACDSignalSpan)

	snapshot := make(model.IndicatorSnapshot, len(series))
	for i, p := range series {
		m := macd[i]
		ms := macdSignal[i]
		snapshot[i] = model.IndicatorRow{
			Time:       p.Time,
			Close:      p.Close,
			MAShort:    maShort[i],
			MALong:     maLong[i],
			RSI:        rsiVals[i],
			MACD:       &m,
			MACDSignal: &ms,
		}
	}
	return snapshot
}
