package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// ActivityAction labels a journaled ledger mutation.
type ActivityAction string

const (
	ActionSubmit ActivityAction = "SUBMIT"
	ActionCancel ActivityAction = "CANCEL"
)

// ActivityEntry is one journaled ledger mutation.
type ActivityEntry struct {
	ID           int64
	Timestamp    time.Time
	OrderID      string
	Strategy     string
	Action       ActivityAction
	TotalCost    float64
	BalanceAfter float64
}

// ActivityFilter represents filters for querying the journal.
type ActivityFilter struct {
	OrderID string
	Action  ActivityAction
	Since   time.Time
	Limit   int
}

// Journal is an append-only SQLite record of ledger mutations.
type Journal struct {
	db *sql.DB
}

// NewJournal opens (or creates) the journal database at dbPath.
func NewJournal(dbPath string) (*Journal, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open journal database: %w", err)
	}

	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	j := &Journal{db: db}
	if err := j.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize journal schema: %w", err)
	}
	return j, nil
}

func (j *Journal) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS activity (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp DATETIME NOT NULL,
		order_id TEXT NOT NULL,
		strategy TEXT,
		action TEXT NOT NULL,
		total_cost REAL NOT NULL,
		balance_after REAL NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_activity_order ON activity(order_id);
	CREATE INDEX IF NOT EXISTS idx_activity_time ON activity(timestamp);
	`
	_, err := j.db.Exec(schema)
	return err
}

// Close closes the journal database.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Record appends an entry to the journal.
func (j *Journal) Record(ctx context.Context, entry ActivityEntry) error {
	ts := entry.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	_, err := j.db.ExecContext(ctx, `
		INSERT INTO activity (timestamp, order_id, strategy, action, total_cost, balance_after)
		VALUES (?, ?, ?, ?, ?, ?)
	`, ts, entry.OrderID, entry.Strategy, string(entry.Action), entry.TotalCost, entry.BalanceAfter)
	if err != nil {
		return fmt.Errorf("failed to record activity: %w", err)
	}
	return nil
}

// Entries retrieves journal entries matching the filter, most recent first.
func (j *Journal) Entries(ctx context.Context, filter ActivityFilter) ([]ActivityEntry, error) {
	query := "SELECT id, timestamp, order_id, strategy, action, total_cost, balance_after FROM activity WHERE 1=1"
	args := []interface{}{}

	if filter.OrderID != "" {
		query += " AND order_id = ?"
		args = append(args, filter.OrderID)
	}
	if filter.Action != "" {
		query += " AND action = ?"
		args = append(args, string(filter.Action))
	}
	if !filter.Since.IsZero() {
		query += " AND timestamp >= ?"
		args = append(args, filter.Since)
	}

	query += " ORDER BY timestamp DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query activity: %w", err)
	}
	defer rows.Close()

	var entries []ActivityEntry
	for rows.Next() {
		var e ActivityEntry
		var action string
		if err := rows.Scan(&e.ID, &e.Timestamp, &e.OrderID, &e.Strategy, &action, &e.TotalCost, &e.BalanceAfter); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		e.Action = ActivityAction(action)
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
