package advisor

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Tarzanchik/trading-bot/internal/feed"
	"github.com/Tarzanchik/trading-bot/internal/journal"
	"github.com/Tarzanchik/trading-bot/internal/model"
	"github.com/Tarzanchik/trading-bot/internal/source"
)

func newAdvisor(sources ...source.Source) *Advisor {
	agg := feed.New(zap.NewNop(), nil, sources...)
	return New(agg, journal.NewNoop(), nil, zap.NewNop())
}

// zigzagUp builds an uptrend alternating +2 / -1 steps. It keeps losses in
// the RSI window so the RSI stays below 70 while the trend points up.
func zigzagUp(n int) model.PriceSeries {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := make(model.PriceSeries, n)
	price := 100.0
	s[0] = model.PricePoint{Time: start, Close: price}
	for i := 1; i < n; i++ {
		if i%2 == 1 {
			price += 2
		} else {
			price -= 1
		}
		s[i] = model.PricePoint{Time: start.AddDate(0, 0, i), Close: price}
	}
	return s
}

func TestGetRecommendation_BuySignal(t *testing.T) {
	primary := &source.MockSource{SourceName: "primary", History: zigzagUp(40)}
	adv := newAdvisor(primary)

	rec, err := adv.GetRecommendation(context.Background(), "SBER")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Signal != model.SignalBuy {
		t.Errorf("signal = %s, want BUY", rec.Signal)
	}
	if rec.MAShort == nil || rec.MALong == nil || *rec.MAShort <= *rec.MALong {
		t.Error("expected MA5 above MA20 in an uptrend")
	}
	if rec.RSI == nil || *rec.RSI >= 70 {
		t.Errorf("RSI = %v, want below 70", rec.RSI)
	}
	if rec.Source != "primary" {
		t.Errorf("source = %q, want primary", rec.Source)
	}
}

func TestGetRecommendation_SteepRiseIsNeutral(t *testing.T) {
	// A monotonic rise pins RSI at 100, which blocks the BUY branch even
	// though both MA and MACD point up.
	primary := &source.MockSource{SourceName: "primary", History: source.GenerateSeries(100, 1, 25)}
	adv := newAdvisor(primary)

	rec, err := adv.GetRecommendation(context.Background(), "SBER")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.RSI == nil || *rec.RSI != 100 {
		t.Errorf("RSI = %v, want exactly 100", rec.RSI)
	}
	if rec.Signal != model.SignalNeutral {
		t.Errorf("signal = %s, want NEUTRAL (RSI 100 is overbought)", rec.Signal)
	}
}

func TestGetRecommendation_NoData(t *testing.T) {
	primary := &source.MockSource{SourceName: "primary"}
	secondary := &source.MockSource{SourceName: "secondary"}
	adv := newAdvisor(primary, secondary)

	_, err := adv.GetRecommendation(context.Background(), "ZZZZ")
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("error = %v, want ErrNoData (not a NEUTRAL signal)", err)
	}
	if primary.HistoryCalls != 1 || secondary.HistoryCalls != 1 {
		t.Errorf("both sources should be consulted exactly once, got %d/%d",
			primary.HistoryCalls, secondary.HistoryCalls)
	}
}

func TestGetRecommendation_InsufficientHistory(t *testing.T) {
	// 10 points: MA5 defined, MA20 and RSI not. Insufficiency is NEUTRAL,
	// not an error.
	primary := &source.MockSource{SourceName: "primary", History: source.GenerateSeries(100, 1, 10)}
	adv := newAdvisor(primary)

	rec, err := adv.GetRecommendation(context.Background(), "SBER")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.MAShort == nil {
		t.Error("MA5 should be defined for 10 points")
	}
	if rec.MALong != nil || rec.RSI != nil {
		t.Error("MA20 and RSI should be nil for 10 points")
	}
	if rec.Signal != model.SignalNeutral {
		t.Errorf("signal = %s, want NEUTRAL on insufficient history", rec.Signal)
	}
}

func TestGetRecommendation_NormalizesTicker(t *testing.T) {
	primary := &source.MockSource{SourceName: "primary", History: zigzagUp(40)}
	adv := newAdvisor(primary)

	rec, err := adv.GetRecommendation(context.Background(), "  sber ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Ticker != "SBER" {
		t.Errorf("ticker = %q, want SBER", rec.Ticker)
	}
}

func TestGetPrice_Fallback(t *testing.T) {
	primary := &source.MockSource{SourceName: "primary", PriceErr: errors.New("timeout")}
	secondary := &source.MockSource{SourceName: "secondary", Price: 257.30}
	adv := newAdvisor(primary, secondary)

	price, err := adv.GetPrice(context.Background(), "SBER")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if price != 257.30 {
		t.Errorf("price = %v, want 257.30", price)
	}
}

func TestGetPrice_NoData(t *testing.T) {
	adv := newAdvisor(&source.MockSource{PriceErr: errors.New("down")})
	if _, err := adv.GetPrice(context.Background(), "ZZZZ"); !errors.Is(err, ErrNoData) {
		t.Errorf("error = %v, want ErrNoData", err)
	}
}

func TestEmptyTickerRejected(t *testing.T) {
	adv := newAdvisor(&source.MockSource{Price: 100})
	if _, err := adv.GetPrice(context.Background(), "   "); !errors.Is(err, ErrEmptyTicker) {
		t.Errorf("GetPrice error = %v, want ErrEmptyTicker", err)
	}
	if _, err := adv.GetRecommendation(context.Background(), ""); !errors.Is(err, ErrEmptyTicker) {
		t.Errorf("GetRecommendation error = %v, want ErrEmptyTicker", err)
	}
}
