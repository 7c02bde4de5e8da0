package feed

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/Tarzanchik/trading-bot/internal/source"
)

func TestGetPrice_PrimaryWins(t *testing.T) {
	primary := &source.MockSource{SourceName: "primary", Price: 100.5}
	secondary := &source.MockSource{SourceName: "secondary", Price: 999}
	agg := New(zap.NewNop(), nil, primary, secondary)

	price, src, ok := agg.GetPrice(context.Background(), "SBER")
	if !ok || price != 100.5 {
		t.Fatalf("GetPrice = (%v, %v), want (100.5, true)", price, ok)
	}
	if src != "primary" {
		t.Errorf("served by %q, want primary", src)
	}
	if secondary.PriceCalls != 0 {
		t.Errorf("secondary consulted %d times, want 0 when primary has data", secondary.PriceCalls)
	}
}

func TestGetPrice_FallsBackOnError(t *testing.T) {
	primary := &source.MockSource{SourceName: "primary", PriceErr: errors.New("timeout")}
	secondary := &source.MockSource{SourceName: "secondary", Price: 257.30}
	agg := New(zap.NewNop(), nil, primary, secondary)

	price, src, ok := agg.GetPrice(context.Background(), "SBER")
	if !ok || price != 257.30 {
		t.Fatalf("GetPrice = (%v, %v), want (257.30, true)", price, ok)
	}
	if src != "secondary" {
		t.Errorf("served by %q, want secondary", src)
	}
}

func TestGetPrice_RejectsNonPositive(t *testing.T) {
	primary := &source.MockSource{SourceName: "primary", Price: 0}
	secondary := &source.MockSource{SourceName: "secondary", Price: 42}
	agg := New(zap.NewNop(), nil, primary, secondary)

	price, _, ok := agg.GetPrice(context.Background(), "SBER")
	if !ok || price != 42 {
		t.Fatalf("GetPrice = (%v, %v), want fallback past zero price", price, ok)
	}
}

func TestGetPrice_AllAbsent(t *testing.T) {
	primary := &source.MockSource{SourceName: "primary", PriceErr: errors.New("down")}
	secondary := &source.MockSource{SourceName: "secondary", PriceErr: errors.New("down")}
	agg := New(zap.NewNop(), nil, primary, secondary)

	if _, _, ok := agg.GetPrice(context.Background(), "ZZZZ"); ok {
		t.Error("expected absence when every source fails")
	}
}

func TestGetHistory_PrimaryNonEmptySkipsSecondary(t *testing.T) {
	primary := &source.MockSource{SourceName: "primary", History: source.GenerateSeries(100, 1, 30)}
	secondary := &source.MockSource{SourceName: "secondary", History: source.GenerateSeries(500, 1, 30)}
	agg := New(zap.NewNop(), nil, primary, secondary)

	series, src := agg.GetHistory(context.Background(), "SBER")
	if series.Empty() {
		t.Fatal("expected data from primary")
	}
	if src != "primary" {
		t.Errorf("served by %q, want primary", src)
	}
	if secondary.HistoryCalls != 0 {
		t.Errorf("secondary consulted %d times, want 0 when primary has data", secondary.HistoryCalls)
	}
	if series[0].Close != 100 {
		t.Errorf("series must come from primary, first close = %v", series[0].Close)
	}
}

func TestGetHistory_EmptyTriggersFallback(t *testing.T) {
	primary := &source.MockSource{SourceName: "primary"} // empty series
	secondary := &source.MockSource{SourceName: "secondary", History: source.GenerateSeries(200, 1, 10)}
	agg := New(zap.NewNop(), nil, primary, secondary)

	series, src := agg.GetHistory(context.Background(), "AAPL")
	if series.Empty() || src != "secondary" {
		t.Fatalf("GetHistory = (%d points, %q), want secondary data", len(series), src)
	}
	if primary.HistoryCalls != 1 {
		t.Errorf("primary tried %d times, want exactly 1", primary.HistoryCalls)
	}
}

func TestGetHistory_AllEmpty(t *testing.T) {
	primary := &source.MockSource{SourceName: "primary"}
	secondary := &source.MockSource{SourceName: "secondary"}
	agg := New(zap.NewNop(), nil, primary, secondary)

	series, src := agg.GetHistory(context.Background(), "ZZZZ")
	if !series.Empty() || src != "" {
		t.Errorf("expected empty result, got %d points from %q", len(series), src)
	}
}
