package journal

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/Tarzanchik/trading-bot/internal/model"
)

// SQLite persists the audit journal to a SQLite database.
type SQLite struct {
	db  *sql.DB
	log *zap.Logger
	mu  sync.Mutex
}

// NewSQLite opens (or creates) the database and runs migrations.
func NewSQLite(dbPath string, log *zap.Logger) (*SQLite, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so external readers don't block the bot's writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	j := &SQLite{db: db, log: log}
	if err := j.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Info("sqlite journal opened", zap.String("path", dbPath))
	return j, nil
}

func (j *SQLite) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS price_lookups (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp INTEGER NOT NULL,
			ticker    TEXT NOT NULL,
			price     REAL,
			source    TEXT,
			found     INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_price_ts ON price_lookups(timestamp)`,

		`CREATE TABLE IF NOT EXISTS recommendations (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp   INTEGER NOT NULL,
			ticker      TEXT NOT NULL,
			last_close  REAL,
			ma_short    REAL,
			ma_long     REAL,
			rsi         REAL,
			macd        REAL,
			macd_signal REAL,
			signal      TEXT NOT NULL,
			source      TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_rec_ts ON recommendations(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := j.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (j *SQLite) RecordPrice(e *PriceLookup) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	_, err := j.db.Exec(`INSERT INTO price_lookups
		(timestamp, ticker, price, source, found)
		VALUES (?,?,?,?,?)`,
		time.Now().Unix(), e.Ticker, e.Price, e.Source, e.Found,
	)
	return err
}

func (j *SQLite) RecordRecommendation(rec *model.Recommendation) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	_, err := j.db.Exec(`INSERT INTO recommendations
		(timestamp, ticker, last_close, ma_short, ma_long, rsi, macd, macd_signal, signal, source)
		VALUES (?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), rec.Ticker, rec.LastClose,
		nullable(rec.MAShort), nullable(rec.MALong), nullable(rec.RSI),
		nullable(rec.MACD), nullable(rec.MACDSignal),
		rec.Signal.String(), rec.Source,
	)
	return err
}

func (j *SQLite) Close() error {
	j.log.Info("closing sqlite journal")
	return j.db.Close()
}

func nullable(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
