// Package advisor exposes the two core operations of the bot: current
// price and trend recommendation for a ticker.
package advisor

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/Tarzanchik/trading-bot/internal/feed"
	"github.com/Tarzanchik/trading-bot/internal/indicator"
	"github.com/Tarzanchik/trading-bot/internal/journal"
	"github.com/Tarzanchik/trading-bot/internal/metrics"
	"github.com/Tarzanchik/trading-bot/internal/model"
	"github.com/Tarzanchik/trading-bot/internal/strategy"
)

var (
	// ErrEmptyTicker rejects a blank ticker before it enters the pipeline.
	ErrEmptyTicker = errors.New("ticker must not be empty")
	// ErrNoData means no source had any data for the ticker. Distinct from
	// a NEUTRAL signal, which requires data that is merely inconclusive.
	ErrNoData = errors.New("no data available")
)

// Advisor runs the fetch → indicators → signal pipeline per request.
// It holds no per-request state and is safe for concurrent use.
type Advisor struct {
	feed    *feed.Aggregator
	journal journal.Journal
	metrics *metrics.Metrics
	log     *zap.Logger
}

// New creates an Advisor.
func New(f *feed.Aggregator, j journal.Journal, m *metrics.Metrics, log *zap.Logger) *Advisor {
	return &Advisor{feed: f, journal: j, metrics: m, log: log}
}

// NormalizeTicker trims and uppercases a ticker, rejecting blank input.
func NormalizeTicker(ticker string) (string, error) {
	t := strings.ToUpper(strings.TrimSpace(ticker))
	if t == "" {
		return "", ErrEmptyTicker
	}
	return t, nil
}

// GetPrice returns the latest price for the ticker, or ErrNoData when
// every source came up empty.
func (a *Advisor) GetPrice(ctx context.Context, ticker string) (float64, error) {
	t, err := NormalizeTicker(ticker)
	if err != nil {
		return 0, err
	}

	price, src, ok := a.feed.GetPrice(ctx, t)
	if jerr := a.journal.RecordPrice(&journal.PriceLookup{
		Ticker: t, Price: price, Source: src, Found: ok,
	}); jerr != nil {
		a.log.Error("journal price lookup", zap.Error(jerr))
	}
	if !ok {
		a.metrics.ObserveNoData()
		return 0, ErrNoData
	}
	return price, nil
}

// GetRecommendation fetches history, computes indicators and evaluates the
// signal rule on the latest row. ErrNoData is returned when no source has
// history; a short series yields nil indicator fields and NEUTRAL instead.
func (a *Advisor) GetRecommendation(ctx context.Context, ticker string) (*model.Recommendation, error) {
	t, err := NormalizeTicker(ticker)
	if err != nil {
		return nil, err
	}

	series, src := a.feed.GetHistory(ctx, t)
	if series.Empty() {
		a.metrics.ObserveNoData()
		return nil, ErrNoData
	}

	snapshot := indicator.Compute(series)
	last := snapshot.Last()
	signal := strategy.Evaluate(last)

	rec := &model.Recommendation{
		Ticker:     t,
		LastClose:  last.Close,
		MAShort:    last.MAShort,
		MALong:     last.MALong,
		RSI:        last.RSI,
		MACD:       last.MACD,
		MACDSignal: last.MACDSignal,
		Signal:     signal,
		Source:     src,
	}

	a.metrics.ObserveSignal(signal.String())
	if jerr := a.journal.RecordRecommendation(rec); jerr != nil {
		a.log.Error("journal recommendation", zap.Error(jerr))
	}
	a.log.Info("recommendation served",
		zap.String("ticker", t), zap.String("signal", signal.String()),
		zap.String("source", src), zap.Int("series_len", len(series)))
	return rec, nil
}
