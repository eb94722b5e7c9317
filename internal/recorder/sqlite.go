package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"sync"

	_ "modernc.org/sqlite"

	"SignalForge/internal/model"
)

// SQLiteRecorder persists signals and run summaries to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so dashboards can read while the bot writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS signals (
			id         TEXT PRIMARY KEY,
			timestamp  TEXT NOT NULL,
			symbol     TEXT NOT NULL,
			action     TEXT NOT NULL,
			price      REAL,
			confidence REAL,
			indicators TEXT,
			details    TEXT,
			saved_at   TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_signals_ts ON signals(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_signals_symbol ON signals(symbol)`,

		`CREATE TABLE IF NOT EXISTS runs (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at  INTEGER NOT NULL,
			symbols     INTEGER,
			emitted     INTEGER,
			saved       INTEGER,
			duration_ms INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON runs(started_at)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordSignal(sig *model.Signal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT OR IGNORE INTO signals
		(id, timestamp, symbol, action, price, confidence, indicators, details, saved_at)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		sig.ID, sig.Timestamp, sig.Symbol, string(sig.Action),
		sig.Price, sig.Confidence, strings.Join(sig.Indicators, ", "),
		sig.Details, sig.SavedAt,
	)
	return err
}

func (r *SQLiteRecorder) RecordRun(run *RunSummary) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO runs
		(started_at, symbols, emitted, saved, duration_ms)
		VALUES (?,?,?,?,?)`,
		run.StartedAt.Unix(), run.Symbols, run.Emitted,
		run.Saved, run.Duration.Milliseconds(),
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
