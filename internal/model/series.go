package model

import (
	"math"
	"sort"
	"time"
)

// PricePoint is a single (timestamp, close) observation.
type PricePoint struct {
	Time  time.Time
	Close float64
}

// PriceSeries holds daily close prices ordered strictly ascending by time.
// An empty series is a valid "no data" state, not an error.
type PriceSeries []PricePoint

// Empty reports whether the series carries no data.
func (s PriceSeries) Empty() bool { return len(s) == 0 }

// Closes returns the close values in series order.
func (s PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s))
	for i, p := range s {
		closes[i] = p.Close
	}
	return closes
}

// Last returns the most recent point. Only valid on a non-empty series.
func (s PriceSeries) Last() PricePoint { return s[len(s)-1] }

// Normalize sorts the series ascending, drops points with a non-finite or
// negative close, and deduplicates by timestamp keeping the last occurrence.
// Upstream feeds deliver unsorted rows and null closes on holidays.
func (s PriceSeries) Normalize() PriceSeries {
	out := make(PriceSeries, 0, len(s))
	for _, p := range s {
		if math.IsNaN(p.Close) || math.IsInf(p.Close, 0) || p.Close < 0 {
			continue
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Time.Before(out[j].Time) })

	dedup := out[:0]
	for _, p := range out {
		if len(dedup) > 0 && dedup[len(dedup)-1].Time.Equal(p.Time) {
			dedup[len(dedup)-1] = p
			continue
		}
		dedup = append(dedup, p)
	}
	return dedup
}
