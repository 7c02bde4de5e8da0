package model

// Signal is the ternary trading recommendation.
type Signal string

const (
	SignalBuy     Signal = "BUY"
	SignalSell    Signal = "SELL"
	SignalNeutral Signal = "NEUTRAL"
)

func (s Signal) String() string { return string(s) }
