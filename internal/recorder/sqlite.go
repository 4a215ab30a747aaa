package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists poll history to a SQLite database.
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

	// WAL mode so external readers don't block the poll loop's writes.
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
		`CREATE TABLE IF NOT EXISTS sweep_rows (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp INTEGER NOT NULL,
			symbol    TEXT NOT NULL,
			price     REAL,
			signal    REAL,
			osma      REAL,
			action    TEXT,
			error     TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sweep_ts ON sweep_rows(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_sweep_symbol ON sweep_rows(symbol)`,

		`CREATE TABLE IF NOT EXISTS signal_events (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp INTEGER NOT NULL,
			symbol    TEXT NOT NULL,
			action    TEXT NOT NULL,
			price     REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_signal_ts ON signal_events(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordSweepRow(row *SweepRow) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO sweep_rows
		(timestamp, symbol, price, signal, osma, action, error)
		VALUES (?,?,?,?,?,?,?)`,
		time.Now().Unix(), row.Symbol, row.Price, row.Signal, row.OSMA,
		row.Action, row.Err,
	)
	return err
}

func (r *SQLiteRecorder) RecordSignal(evt *SignalEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO signal_events
		(timestamp, symbol, action, price)
		VALUES (?,?,?,?)`,
		evt.At.Unix(), evt.Symbol, evt.Action, evt.Price,
	)
	return err
}

func (r *SQLiteRecorder) SignalsSince(since time.Time) ([]SignalEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.db.Query(`SELECT timestamp, symbol, action, price
		FROM signal_events WHERE timestamp >= ? ORDER BY timestamp`, since.Unix())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []SignalEvent
	for rows.Next() {
		var ts int64
		var evt SignalEvent
		if err := rows.Scan(&ts, &evt.Symbol, &evt.Action, &evt.Price); err != nil {
			return nil, err
		}
		evt.At = time.Unix(ts, 0)
		events = append(events, evt)
	}
	return events, rows.Err()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
