package logstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store persists log records in SQLite. It satisfies the logger sink
// contract, so a Context can deliver straight into the database, and exposes
// the query side the CLI reads from.
//
// Every Open starts a new session so records from separate process runs stay
// distinguishable.
type Store struct {
	db      *sql.DB
	path    string
	session string
}

// Open initializes or connects to the record database and applies the
// schema.
func Open(path string) (*Store, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, errors.New("logstore: empty database path")
	}
	if dir := filepath.Dir(trimmed); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", trimmed)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db, path: trimmed, session: uuid.NewString()}, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS log_records (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    session_id TEXT NOT NULL,
    created_at TEXT NOT NULL,
    message TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_log_records_session ON log_records(session_id);
`

// Session returns the identifier assigned to this store handle at Open time.
func (s *Store) Session() string {
	return s.session
}

// Path returns the database location.
func (s *Store) Path() string {
	return s.path
}

// Push stores one formatted record under the current session, satisfying the
// sink contract.
func (s *Store) Push(message string) error {
	if s == nil || s.db == nil {
		return errors.New("logstore: store is closed")
	}
	timestamp := time.Now().UTC().Format(time.RFC3339Nano)
	if _, err := s.db.Exec(
		`INSERT INTO log_records (session_id, created_at, message) VALUES (?, ?, ?)`,
		s.session,
		timestamp,
		message,
	); err != nil {
		return fmt.Errorf("insert record: %w", err)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// SessionInfo summarizes one logging session.
type SessionInfo struct {
	ID      string
	Records int
	First   string
	Last    string
}

// Sessions lists every session in the database, oldest first.
func (s *Store) Sessions(ctx context.Context) ([]SessionInfo, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("logstore: store is closed")
	}
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT session_id, COUNT(*), MIN(created_at), MAX(created_at)
         FROM log_records GROUP BY session_id ORDER BY MIN(id)`,
	)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []SessionInfo
	for rows.Next() {
		var info SessionInfo
		if err := rows.Scan(&info.ID, &info.Records, &info.First, &info.Last); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}
	return sessions, nil
}

// Record is one stored log line.
type Record struct {
	ID        int64
	SessionID string
	CreatedAt string
	Message   string
}

// Records returns records for one session in insertion order. A limit of 0
// returns everything.
func (s *Store) Records(ctx context.Context, sessionID string, limit int) ([]Record, error) {
	if s == nil || s.db == nil {
		return nil, errors.New("logstore: store is closed")
	}
	query := `SELECT id, session_id, created_at, message FROM log_records WHERE session_id = ? ORDER BY id`
	args := []any{sessionID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var record Record
		if err := rows.Scan(&record.ID, &record.SessionID, &record.CreatedAt, &record.Message); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return records, nil
}
