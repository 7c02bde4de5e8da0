package indicator

// rollingMean computes a per-row simple moving average. Row i is nil until
// the window is filled (fewer than window points up to and including i).
func rollingMean(vals []float64, window int) []*float64 {
	out := make([]*float64, len(vals))
	if window <= 0 || len(vals) < window {
		return out
	}
	var sum float64
	for i, v := range vals {
		sum += v
		if i >= window {
			sum -= vals[i-window]
		}
		if i >= window-1 {
			mean := sum / float64(window)
			out[i] = &mean
		}
	}
	return out
}
