package indicator

// rsi computes a per-row RSI from period-length simple moving averages of
// one-step gains and losses. Rows 0..period-1 are nil: row 0 has no prior
// delta and the gain/loss window is not filled before row period.
//
// When the loss average is zero but gains exist the ratio is infinite and
// the RSI is pinned to exactly 100. When both averages are zero (constant
// prices) the ratio is undefined and the row stays nil.
func rsi(closes []float64, period int) []*float64 {
	out := make([]*float64, len(closes))
	if period <= 0 || len(closes) < period+1 {
		return out
	}

	gains := make([]float64, len(closes))
	losses := make([]float64, len(closes))
	for i := 1; i < len(closes); i++ {
		delta := closes[i] - closes[i-1]
		if delta > 0 {
			gains[i] = delta
		} else {
			losses[i] = -delta
		}
	}

	var gainSum, lossSum float64
	for i := 1; i < len(closes); i++ {
		gainSum += gains[i]
		lossSum += losses[i]
		if i > period {
			gainSum -= gains[i-period]
			lossSum -= losses[i-period]
		}
		if i < period {
			continue
		}
		avgGain := gainSum / float64(period)
		avgLoss := lossSum / float64(period)

		var v float64
		switch {
		case avgLoss == 0 && avgGain == 0:
			continue // undefined, leave nil
		case avgLoss == 0:
			v = 100.0
		default:
			rs := avgGain / avgLoss
			v = 100.0 - 100.0/(1.0+rs)
		}
		val := v
		out[i] = &val
	}
	return out
}
