// Package journal keeps an append-only audit of served results. It records
// derived outputs only; the pipeline never reads it back, so no fetched
// data is cached or reused across requests.
package journal

import "github.com/Tarzanchik/trading-bot/internal/model"

// PriceLookup is one served price query.
type PriceLookup struct {
	Ticker string
	Price  float64
	Source string
	Found  bool
}

// Journal persists served lookups and recommendations for later analysis.
type Journal interface {
	RecordPrice(e *PriceLookup) error
	RecordRecommendation(rec *model.Recommendation) error
	Close() error
}
