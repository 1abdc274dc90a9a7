package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver
)

const jumpSchema = `
CREATE TABLE IF NOT EXISTS jumps (
	id            INTEGER PRIMARY KEY,
	timestamp     TEXT NOT NULL,
	direction     TEXT NOT NULL,
	from_pane     TEXT NOT NULL DEFAULT '',
	to_pane       TEXT NOT NULL DEFAULT '',
	from_document TEXT NOT NULL DEFAULT '',
	to_document   TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_jumps_ts ON jumps(timestamp DESC);
`

const maxRecentLimit = 500

// timeFormat keeps timestamps lexically sortable in SQLite.
const timeFormat = time.RFC3339Nano

// SQLiteRecorder is a Recorder backed by a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
}

// NewSQLiteRecorder opens (or creates) a SQLite database at dbPath and runs
// the jumps schema. Use ":memory:" for an in-memory database in tests.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db for jump history: %w", err)
	}

	if _, err := db.Exec(jumpSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("run jump history schema: %w", err)
	}

	return &SQLiteRecorder{db: db}, nil
}

// Record inserts a jump. A zero Timestamp is set to time.Now(). Insert
// failures are swallowed: history is best-effort and must never fail the
// navigation that produced it.
func (r *SQLiteRecorder) Record(j Jump) {
	if j.Timestamp.IsZero() {
		j.Timestamp = time.Now()
	}

	const q = `
		INSERT INTO jumps (timestamp, direction, from_pane, to_pane, from_document, to_document)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, _ = r.db.Exec(q,
		j.Timestamp.UTC().Format(timeFormat),
		j.Direction,
		j.FromPane,
		j.ToPane,
		j.FromDocument,
		j.ToDocument,
	)
}

// Recent returns the newest jumps, most recent first. Limit is capped at 500.
func (r *SQLiteRecorder) Recent(limit int) ([]Jump, error) {
	if limit <= 0 || limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	const q = `
		SELECT id, timestamp, direction, from_pane, to_pane, from_document, to_document
		FROM jumps ORDER BY timestamp DESC, id DESC LIMIT ?
	`
	rows, err := r.db.Query(q, limit)
	if err != nil {
		return nil, fmt.Errorf("query jump history: %w", err)
	}
	defer rows.Close()

	var jumps []Jump
	for rows.Next() {
		var j Jump
		var ts string
		if err := rows.Scan(&j.ID, &ts, &j.Direction, &j.FromPane, &j.ToPane, &j.FromDocument, &j.ToDocument); err != nil {
			return nil, fmt.Errorf("scan jump row: %w", err)
		}
		if parsed, err := time.Parse(timeFormat, ts); err == nil {
			j.Timestamp = parsed
		}
		jumps = append(jumps, j)
	}
	return jumps, rows.Err()
}

// Close closes the underlying database.
func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
