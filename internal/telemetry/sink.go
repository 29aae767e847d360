// Package telemetry provides the SQLite-backed append-only sink for daily
// simulation records and final run scores. The database path is injected at
// construction time; nothing in here holds global state.
package telemetry

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/tmorvan/statesim/internal/models"
)

// DB wraps a SQLite connection for run telemetry
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		policy TEXT NOT NULL,
		country TEXT NOT NULL,
		started_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS daily_records (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		day INTEGER NOT NULL,
		action_kind INTEGER NOT NULL,
		action_state TEXT NOT NULL,
		action_building TEXT NOT NULL,
		action_method TEXT,
		total_cash REAL NOT NULL,
		record_json TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS final_scores (
		run_id TEXT PRIMARY KEY,
		days INTEGER NOT NULL,
		final_score REAL NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_daily_run_day ON daily_records(run_id, day);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// StartRun registers a new run and returns its id
func (db *DB) StartRun(policyName, countryID string) (string, error) {
	id := uuid.NewString()
	_, err := db.conn.Exec(
		"INSERT INTO runs (id, policy, country, started_at) VALUES (?, ?, ?, ?)",
		id, policyName, countryID, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("start run: %w", err)
	}
	return id, nil
}

// AppendDaily appends one day's record and the action that was applied
func (db *DB) AppendDaily(runID string, day int, action models.Action, totalCash float64, record map[string]float64) error {
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}

	_, err = db.conn.Exec(`INSERT INTO daily_records
		(run_id, day, action_kind, action_state, action_building, action_method, total_cash, record_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, day, int(action.Kind), action.StateID, action.BuildingName, action.NewMethod,
		totalCash, string(recordJSON),
	)
	if err != nil {
		return fmt.Errorf("append day %d: %w", day, err)
	}
	return nil
}

// WriteFinalScore records a run's final score
func (db *DB) WriteFinalScore(runID string, days int, score float64) error {
	_, err := db.conn.Exec(
		"INSERT OR REPLACE INTO final_scores (run_id, days, final_score) VALUES (?, ?, ?)",
		runID, days, score,
	)
	return err
}

// DailyRow is one persisted day
type DailyRow struct {
	Day        int     `db:"day"`
	ActionKind int     `db:"action_kind"`
	TotalCash  float64 `db:"total_cash"`
	RecordJSON string  `db:"record_json"`
}

// RecentRecords returns the most recent days of a run, newest first
func (db *DB) RecentRecords(runID string, limit int) ([]DailyRow, error) {
	var rows []DailyRow
	err := db.conn.Select(&rows,
		"SELECT day, action_kind, total_cash, record_json FROM daily_records WHERE run_id = ? ORDER BY day DESC LIMIT ?",
		runID, limit,
	)
	return rows, err
}

// FinalScore returns a run's recorded final score
func (db *DB) FinalScore(runID string) (float64, error) {
	var score float64
	err := db.conn.Get(&score, "SELECT final_score FROM final_scores WHERE run_id = ?", runID)
	return score, err
}
