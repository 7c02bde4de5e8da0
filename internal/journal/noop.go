package journal

import "github.com/Tarzanchik/trading-bot/internal/model"

// Noop is used when no database path is configured.
type Noop struct{}

func NewNoop() *Noop { return &Noop{} }

func (n *Noop) RecordPrice(_ *PriceLookup) error                   { return nil }
func (n *Noop) RecordRecommendation(_ *model.Recommendation) error { return nil }
func (n *Noop) Close() error                                       { return nil }
