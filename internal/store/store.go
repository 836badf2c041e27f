// Package store owns the persistent scholarship schema, backed by SQLite.
// Schema bootstrap failure is the one fatal-on-boot condition in the
// system; every other operation degrades per-record so an unattended
// batch run survives individual storage failures.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// timestampLayout is a fixed-width UTC format so that lexicographic
// ordering of stored timestamps matches chronological ordering.
const timestampLayout = "2006-01-02T15:04:05.000000000Z"

// Store manages scholarship persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
	now  func() time.Time
}

// Open connects to the database at path, applies connection pragmas and
// bootstraps the schema. An error here means the underlying storage is
// unusable and the caller should abort startup.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.ExecContext(ctx, pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	s := &Store{db: db, path: path, now: time.Now}
	if err := s.initSchema(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return s, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) timestamp() string {
	return s.now().UTC().Format(timestampLayout)
}
