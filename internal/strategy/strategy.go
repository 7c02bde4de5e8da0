// Package strategy reduces the latest indicator row to a trading signal.
package strategy

import "github.com/Tarzanchik/trading-bot/internal/model"

// Evaluate applies the fixed decision rule to the last indicator row:
//
//	BUY  — MA5 above MA20, MACD above its signal line, RSI below 70
//	SELL — MA5 below MA20, MACD below its signal line, RSI above 30
//
// Everything else, including exact ties and any nil required field, is
// NEUTRAL. The function is total and stateless.
func Evaluate(row model.IndicatorRow) model.Signal {
	if row.MAShort == nil || row.MALong == nil || row.RSI == nil ||
		row.MACD == nil || row.MACDSignal == nil {
		return model.SignalNeutral
	}

	maShort, maLong := *row.MAShort, *row.MALong
	rsi := *row.RSI
	macd, macdSignal := *row.MACD, *row.MACDSignal

	switch {
	case maShort > maLong && macd > macdSignal && rsi < 70:
		return model.SignalBuy
	case maShort < maLong && macd < macdSignal && rsi > 30:
		return model.SignalSell
	default:
		return model.SignalNeutral
	}
}
