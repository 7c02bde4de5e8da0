package model

import "time"

// IndicatorRow is one computed row, aligned to a PriceSeries timestamp.
// Fields are nil while the series is shorter than the indicator's window.
type IndicatorRow struct {
	Time       time.Time
	Close      float64
	MAShort    *float64
	MALong     *float64
	RSI        *float64
	MACD       *float64
	MACDSignal *float64
}

// IndicatorSnapshot holds one row per source series point, in the same order.
type IndicatorSnapshot []IndicatorRow

// Last returns the most recent row. Only valid on a non-empty snapshot.
func (s IndicatorSnapshot) Last() IndicatorRow { return s[len(s)-1] }

// Recommendation is the final analysis result for one ticker.
type Recommendation struct {
	Ticker     string
	LastClose  float64
	MAShort    *float64
	MALong     *float64
	RSI        *float64
	MACD       *float64
	MACDSignal *float64
	Signal     Signal
	Source     string // data source that served the history
}
