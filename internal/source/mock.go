package source

import (
	"context"
	"time"

	"github.com/Tarzanchik/trading-bot/internal/model"
)

// MockSource returns controllable fixed data for development and testing.
type MockSource struct {
	SourceName string
	Price      float64
	PriceErr   error
	History    model.PriceSeries
	HistoryErr error

	PriceCalls   int
	HistoryCalls int
}

func (m *MockSource) Name() string {
	if m.SourceName != "" {
		return m.SourceName
	}
	return "mock"
}

func (m *MockSource) FetchPrice(_ context.Context, _ string) (float64, error) {
	m.PriceCalls++
	if m.PriceErr != nil {
		return 0, m.PriceErr
	}
	return m.Price, nil
}

func (m *MockSource) FetchHistory(_ context.Context, _ string) (model.PriceSeries, error) {
	m.HistoryCalls++
	if m.HistoryErr != nil {
		return nil, m.HistoryErr
	}
	return m.History, nil
}

// GenerateSeries builds a daily series of count closes ending today,
// produced by applying step to base once per day.
func GenerateSeries(base, step float64, count int) model.PriceSeries {
	start := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -(count - 1))
	series := make(model.PriceSeries, count)
	for i := 0; i < count; i++ {
		series[i] = model.PricePoint{
			Time:  start.AddDate(0, 0, i),
			Close: base + step*float64(i),
		}
	}
	return series
}
