// Package state provides the SQLite-backed event journal.
// The journal is a best-effort audit trail of workflow and task events; the
// in-memory stores remain the source of truth and never read from it.
package state

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Event kinds recorded in the journal.
const (
	// EventWorkflowCreated records a workflow materialization.
	EventWorkflowCreated = "workflow_created"
	// EventTaskCompleted records a successful task completion.
	EventTaskCompleted = "task_completed"
	// EventAgentResponse records a logged external agent response.
	EventAgentResponse = "agent_response"
)

// Event is one journal entry.
type Event struct {
	// ID is the autoincrement row id.
	ID int64 `json:"id"`
	// Kind is one of the Event* constants.
	Kind string `json:"kind"`
	// WorkflowID is the related workflow, if any.
	WorkflowID string `json:"workflow_id,omitempty"`
	// TaskID is the related task, if any.
	TaskID string `json:"task_id,omitempty"`
	// Detail is free-form context for the event.
	Detail string `json:"detail,omitempty"`
	// At is when the event was recorded.
	At time.Time `json:"at"`
}

// Journal wraps an SQLite connection holding the event log.
type Journal struct {
	conn *sql.DB
	path string
	mu   sync.Mutex
}

// Open opens the journal database at the given path, creating parent
// directories and the schema as needed. WAL mode is enabled for concurrent
// reads.
func Open(path string) (*Journal, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create journal directory: %w", err)
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		kind TEXT NOT NULL,
		workflow_id TEXT NOT NULL DEFAULT '',
		task_id TEXT NOT NULL DEFAULT '',
		detail TEXT NOT NULL DEFAULT '',
		at TIMESTAMP NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_events_workflow ON events(workflow_id);`
	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Journal{conn: conn, path: path}, nil
}

// Append records one event.
func (j *Journal) Append(kind, workflowID, taskID, detail string) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	_, err := j.conn.Exec(
		"INSERT INTO events (kind, workflow_id, task_id, detail, at) VALUES (?, ?, ?, ?, ?)",
		kind, workflowID, taskID, detail, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("append event: %w", err)
	}
	return nil
}

// Recent returns up to limit most recent events, newest first.
func (j *Journal) Recent(limit int) ([]Event, error) {
	rows, err := j.conn.Query(
		"SELECT id, kind, workflow_id, task_id, detail, at FROM events ORDER BY id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.Kind, &e.WorkflowID, &e.TaskID, &e.Detail, &e.At); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// CountByKind returns the number of events of one kind.
func (j *Journal) CountByKind(kind string) (int, error) {
	var count int
	err := j.conn.QueryRow("SELECT COUNT(*) FROM events WHERE kind = ?", kind).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	return count, nil
}

// Path returns the database file path.
func (j *Journal) Path() string {
	return j.path
}

// Close closes the underlying database.
func (j *Journal) Close() error {
	return j.conn.Close()
}
