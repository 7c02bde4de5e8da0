package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Tarzanchik/trading-bot/internal/advisor"
	"github.com/Tarzanchik/trading-bot/internal/config"
	"github.com/Tarzanchik/trading-bot/internal/feed"
	"github.com/Tarzanchik/trading-bot/internal/journal"
	"github.com/Tarzanchik/trading-bot/internal/metrics"
	"github.com/Tarzanchik/trading-bot/internal/notifier"
	"github.com/Tarzanchik/trading-bot/internal/scheduler"
	"github.com/Tarzanchik/trading-bot/internal/source"
)

func main() {
	_ = godotenv.Load()

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config validation: %v", err)
	}

	logger, err := newLogger(cfg.Log.Level)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()
	logger.Info("trading bot starting")

	// Metrics
	var m *metrics.Metrics
	if cfg.Metrics.Addr != "" {
		m = metrics.New()
	}

	// Primary MOEX, secondary Yahoo: consulted strictly in this order.
	agg := feed.New(logger, m,
		source.NewMoexSource(cfg.Proxy, cfg.Sources.HistoryDays),
		source.NewYahooSource(cfg.Proxy),
	)

	// Journal
	var jrnl journal.Journal
	if cfg.Journal.SQLitePath != "" {
		sj, err := journal.NewSQLite(cfg.Journal.SQLitePath, logger)
		if err != nil {
			logger.Warn("init sqlite journal failed, using noop", zap.Error(err))
			jrnl = journal.NewNoop()
		} else {
			jrnl = sj
			defer sj.Close()
		}
	} else {
		jrnl = journal.NewNoop()
	}

	adv := advisor.New(agg, jrnl, m, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Metrics server
	if cfg.Metrics.Addr != "" {
		srv := metrics.NewServer(cfg.Metrics.Addr, logger)
		srv.Start()
		defer func() {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			srv.Stop(shutdownCtx)
		}()
	}

	// Telegram boundary
	tg := notifier.NewTelegram(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy, logger)
	go tg.StartPolling(ctx, notifier.NewCommandHandler(adv, logger))
	logger.Info("telegram polling started")

	// Scheduled digest
	if cfg.Digest.Ticker != "" {
		digest := scheduler.New(ctx, adv, tg, cfg.Digest.Ticker, logger)
		if err := digest.Register(cfg.Digest.Cron); err != nil {
			logger.Fatal("register digest", zap.Error(err))
		}
		digest.Start()
		defer digest.Stop()

		if os.Getenv("RUN_ON_START") == "true" {
			logger.Info("RUN_ON_START enabled, executing digest now")
			go digest.RunNow()
		}
	}

	logger.Info("trading bot is running")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutdown signal received, stopping")
	cancel()
	logger.Info("trading bot stopped")
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}
	return cfg.Build()
}
