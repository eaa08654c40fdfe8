// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package journal keeps an append-only SQLite log of dispatch outcomes.
// Entries are written after each request settles and are only ever read
// back for the history command; they never stand in for a live response.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/medvision/pkg/types"
)

const defaultLimit = 20

// timeLayout is fixed-width so that stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store manages the journal database.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens or creates the journal at path, creating parent directories
// and the schema as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating journal directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening journal: %w", err)
	}
	// Controllers record from their own goroutines; serialize writers.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, path: path}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS dispatches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			flow TEXT NOT NULL,
			request_id TEXT,
			input TEXT,
			phase TEXT NOT NULL,
			message TEXT,
			count INTEGER NOT NULL DEFAULT 0,
			duration_ns INTEGER NOT NULL DEFAULT 0,
			at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_dispatches_flow ON dispatches(flow)`,
		`CREATE INDEX IF NOT EXISTS idx_dispatches_at ON dispatches(at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record appends one entry. A zero At is stamped with the current time.
func (s *Store) Record(ctx context.Context, e types.JournalEntry) error {
	if e.At.IsZero() {
		e.At = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO dispatches (flow, request_id, input, phase, message, count, duration_ns, at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Flow, e.RequestID, e.Input, e.Phase, e.Message, e.Count, int64(e.Duration),
		e.At.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("recording %s dispatch: %w", e.Flow, err)
	}
	return nil
}

// Filter narrows Recent.
type Filter struct {
	// Flow restricts entries to one controller.
	Flow string

	// Phase restricts entries to "success" or "error".
	Phase string

	// Since drops entries older than this time.
	Since time.Time

	// Limit caps the result count. Zero uses the default (20).
	Limit int
}

// Recent returns matching entries, newest first.
func (s *Store) Recent(ctx context.Context, f Filter) ([]types.JournalEntry, error) {
	var (
		where []string
		args  []any
	)
	if f.Flow != "" {
		where = append(where, "flow = ?")
		args = append(args, f.Flow)
	}
	if f.Phase != "" {
		where = append(where, "phase = ?")
		args = append(args, f.Phase)
	}
	if !f.Since.IsZero() {
		where = append(where, "at >= ?")
		args = append(args, f.Since.UTC().Format(timeLayout))
	}

	var qb strings.Builder
	qb.WriteString(`SELECT flow, request_id, input, phase, message, count, duration_ns, at FROM dispatches`)
	if len(where) > 0 {
		qb.WriteString(" WHERE ")
		qb.WriteString(strings.Join(where, " AND "))
	}
	qb.WriteString(" ORDER BY at DESC, id DESC LIMIT ?")

	limit := f.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying journal: %w", err)
	}
	defer rows.Close()

	entries := []types.JournalEntry{}
	for rows.Next() {
		var (
			e                         types.JournalEntry
			reqID, input, message, at sql.NullString
			durNS                     int64
		)
		if err := rows.Scan(&e.Flow, &reqID, &input, &e.Phase, &message, &e.Count, &durNS, &at); err != nil {
			return nil, fmt.Errorf("scanning journal row: %w", err)
		}
		e.RequestID, e.Input, e.Message = reqID.String, input.String, message.String
		e.Duration = time.Duration(durNS)
		if t, perr := time.Parse(timeLayout, at.String); perr == nil {
			e.At = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Purge deletes entries older than before and reports how many went.
func (s *Store) Purge(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM dispatches WHERE at < ?`, before.UTC().Format(timeLayout))
	if err != nil {
		return 0, fmt.Errorf("purging journal: %w", err)
	}
	return res.RowsAffected()
}
