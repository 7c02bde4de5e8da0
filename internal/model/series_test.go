package model

import (
	"math"
	"testing"
	"time"
)

func day(n int) time.Time {
	return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func TestNormalize_SortsAndDedups(t *testing.T) {
	s := PriceSeries{
		{Time: day(2), Close: 102},
		{Time: day(0), Close: 100},
		{Time: day(1), Close: 101},
		{Time: day(1), Close: 111}, // duplicate timestamp, later occurrence wins
	}
	got := s.Normalize()
	if len(got) != 3 {
		t.Fatalf("expected 3 points, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if !got[i-1].Time.Before(got[i].Time) {
			t.Errorf("series not strictly ascending at %d", i)
		}
	}
	if got[1].Close != 111 {
		t.Errorf("dedup should keep last occurrence, got %.0f", got[1].Close)
	}
}

func TestNormalize_DropsInvalidCloses(t *testing.T) {
	s := PriceSeries{
		{Time: day(0), Close: 100},
		{Time: day(1), Close: math.NaN()},
		{Time: day(2), Close: math.Inf(1)},
		{Time: day(3), Close: -5},
		{Time: day(4), Close: 104},
	}
	got := s.Normalize()
	if len(got) != 2 {
		t.Fatalf("expected 2 points, got %d", len(got))
	}
	if got[0].Close != 100 || got[1].Close != 104 {
		t.Errorf("unexpected survivors: %+v", got)
	}
}

func TestNormalize_EmptyIsValid(t *testing.T) {
	var s PriceSeries
	if got := s.Normalize(); !got.Empty() {
		t.Errorf("expected empty series, got %d points", len(got))
	}
}
