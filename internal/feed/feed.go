// Package feed aggregates price sources into a prioritized fallback chain.
package feed

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/Tarzanchik/trading-bot/internal/metrics"
	"github.com/Tarzanchik/trading-bot/internal/model"
	"github.com/Tarzanchik/trading-bot/internal/source"
)

// Aggregator consults sources in priority order, advancing only when the
// prior source fails or has no data. Nothing below it raises past this
// boundary: upstream failures are logged and expressed as absence.
type Aggregator struct {
	sources []source.Source
	log     *zap.Logger
	metrics *metrics.Metrics
}

// New creates an Aggregator over the given sources. Order is priority order.
func New(log *zap.Logger, m *metrics.Metrics, sources ...source.Source) *Aggregator {
	return &Aggregator{sources: sources, log: log, metrics: m}
}

// GetPrice returns the latest price from the first source that has one,
// along with that source's name. ok is false when every source came up empty.
func (a *Aggregator) GetPrice(ctx context.Context, ticker string) (price float64, src string, ok bool) {
	for _, s := range a.sources {
		p, err := s.FetchPrice(ctx, ticker)
		if err != nil {
			a.log.Warn("price fetch failed",
				zap.String("source", s.Name()), zap.String("ticker", ticker), zap.Error(err))
			a.metrics.ObserveFetch(s.Name(), "price", metrics.OutcomeError)
			continue
		}
		if p <= 0 || math.IsNaN(p) || math.IsInf(p, 0) {
			a.log.Warn("price fetch returned no usable value",
				zap.String("source", s.Name()), zap.String("ticker", ticker), zap.Float64("price", p))
			a.metrics.ObserveFetch(s.Name(), "price", metrics.OutcomeEmpty)
			continue
		}
		a.metrics.ObserveFetch(s.Name(), "price", metrics.OutcomeOK)
		return p, s.Name(), true
	}
	return 0, "", false
}

// GetHistory returns the close-price series from the first source with a
// non-empty result, along with that source's name. An empty series means
// no source had data.
func (a *Aggregator) GetHistory(ctx context.Context, ticker string) (model.PriceSeries, string) {
	for _, s := range a.sources {
		series, err := s.FetchHistory(ctx, ticker)
		if err != nil {
			a.log.Warn("history fetch failed",
				zap.String("source", s.Name()), zap.String("ticker", ticker), zap.Error(err))
			a.metrics.ObserveFetch(s.Name(), "history", metrics.OutcomeError)
			continue
		}
		series = series.Normalize()
		if series.Empty() {
			a.metrics.ObserveFetch(s.Name(), "history", metrics.OutcomeEmpty)
			continue
		}
		a.metrics.ObserveFetch(s.Name(), "history", metrics.OutcomeOK)
		return series, s.Name()
	}
	return model.PriceSeries{}, ""
}
