package source

import (
	"context"

	"github.com/Tarzanchik/trading-bot/internal/model"
)

// Source fetches price data for one ticker from one upstream feed.
// Implementations make a single request attempt per call; retry and
// fallback policy live above this interface.
type Source interface {
	// FetchPrice returns the latest close price for the ticker.
	FetchPrice(ctx context.Context, ticker string) (float64, error)
	// FetchHistory returns a normalized daily close series over the
	// source's trailing lookback window. An empty series with a nil
	// error means the source has no data for the ticker.
	FetchHistory(ctx context.Context, ticker string) (model.PriceSeries, error)
	Name() string
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}
