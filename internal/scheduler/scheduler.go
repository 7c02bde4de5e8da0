// Package scheduler pushes a periodic recommendation digest for the
// configured watch ticker.
package scheduler

import (
	"context"
	"errors"
	"fmt"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Tarzanchik/trading-bot/internal/advisor"
	"github.com/Tarzanchik/trading-bot/internal/notifier"
)

// Digest runs the cron job that sends scheduled reports.
type Digest struct {
	cron     *cron.Cron
	advisor  *advisor.Advisor
	notifier *notifier.Telegram
	ticker   string
	log      *zap.Logger
	ctx      context.Context
}

// New creates a Digest for one watch ticker.
func New(ctx context.Context, adv *advisor.Advisor, tg *notifier.Telegram, ticker string, log *zap.Logger) *Digest {
	return &Digest{
		cron:     cron.New(cron.WithSeconds()),
		advisor:  adv,
		notifier: tg,
		ticker:   ticker,
		log:      log,
		ctx:      ctx,
	}
}

// Register adds the digest job on the given cron spec.
func (d *Digest) Register(spec string) error {
	if _, err := d.cron.AddFunc(spec, d.run); err != nil {
		return fmt.Errorf("register digest task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (d *Digest) Start() {
	d.cron.Start()
	d.log.Info("digest scheduler started", zap.String("ticker", d.ticker))
}

// Stop stops the cron scheduler gracefully.
func (d *Digest) Stop() {
	d.cron.Stop()
	d.log.Info("digest scheduler stopped")
}

// RunNow executes the digest immediately (manual trigger / RUN_ON_START).
func (d *Digest) RunNow() { d.run() }

func (d *Digest) run() {
	d.log.Info("running digest", zap.String("ticker", d.ticker))

	rec, err := d.advisor.GetRecommendation(d.ctx, d.ticker)
	var report string
	switch {
	case errors.Is(err, advisor.ErrNoData):
		report = notifier.FormatNoData(d.ticker)
	case err != nil:
		d.log.Error("digest recommendation", zap.Error(err))
		return
	default:
		report = notifier.FormatRecommendation(rec)
	}

	if err := d.notifier.SendWithRetry(d.ctx, "", report, 3); err != nil {
		d.log.Error("send digest", zap.Error(err))
	}
}
