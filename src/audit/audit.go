// Package audit persists a record of every tool execution to a local
// sqlite database. The log is append-only; conversation turns are never
// stored, only tool dispatches.
package audit

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/sqlscan"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS tool_executions (
	id TEXT PRIMARY KEY,
	session_id TEXT NOT NULL,
	tool_name TEXT NOT NULL,
	input TEXT NOT NULL,
	output TEXT NOT NULL,
	error TEXT NOT NULL DEFAULT '',
	duration_ms INTEGER NOT NULL,
	created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_tool_executions_created_at ON tool_executions (created_at);
`

// Entry is one recorded tool execution.
type Entry struct {
	ID         string    `db:"id"`
	SessionID  string    `db:"session_id"`
	ToolName   string    `db:"tool_name"`
	Input      string    `db:"input"`
	Output     string    `db:"output"`
	Error      string    `db:"error"`
	DurationMs int64     `db:"duration_ms"`
	CreatedAt  time.Time `db:"created_at"`
}

// Log owns the audit database handle.
type Log struct {
	db *sql.DB
}

// Open opens the audit database at path, creating the schema if needed.
func Open(path string) (*Log, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize audit schema: %w", err)
	}
	return &Log{db: db}, nil
}

// Close releases the database handle.
func (l *Log) Close() error {
	return l.db.Close()
}

// Record inserts one entry, filling in a fresh id and timestamp when unset.
func (l *Log) Record(ctx context.Context, entry *Entry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	query := `INSERT INTO tool_executions (id, session_id, tool_name, input, output, error, duration_ms, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := l.db.ExecContext(ctx, query,
		entry.ID, entry.SessionID, entry.ToolName, entry.Input, entry.Output,
		entry.Error, entry.DurationMs, entry.CreatedAt)
	return err
}

// Recent returns up to limit entries, newest first. Rowid ordering keeps
// same-timestamp entries in insertion order.
func (l *Log) Recent(ctx context.Context, limit int) ([]Entry, error) {
	query := `SELECT id, session_id, tool_name, input, output, error, duration_ms, created_at FROM tool_executions ORDER BY rowid DESC LIMIT ?`
	var entries []Entry
	if err := sqlscan.Select(ctx, l.db, &entries, query, limit); err != nil {
		return nil, err
	}
	return entries, nil
}
