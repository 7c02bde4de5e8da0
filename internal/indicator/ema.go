package indicator

// ema computes an exponential moving average seeded at the first sample:
// ema[0] = vals[0], ema[i] = alpha*vals[i] + (1-alpha)*ema[i-1] with
// alpha = 2/(span+1). No bias adjustment is applied to early rows.
func ema(vals []float64, span int) []float64 {
	out := make([]float64, len(vals))
	if len(vals) == 0 {
		return out
	}
	alpha := 2.0 / float64(span+1)
	out[0] = vals[0]
	for i := 1; i < len(vals); i++ {
		out[i] = alpha*vals[i] + (1-alpha)*out[i-1]
	}
	return out
}
