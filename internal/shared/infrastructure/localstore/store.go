// Package localstore provides the on-device SQLite state store. It holds
// state that belongs to this installation rather than to the platform:
// the wipe resume journal and disclosure read progress.
package localstore

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store wraps the local SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the local store at path and applies
// the schema.
func Open(ctx context.Context, path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("local store path is required")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create local store directory: %w", err)
	}

	// WAL and a busy timeout keep the single-writer model responsive when
	// the CLI and worker share the store.
	dsn := path
	if !strings.Contains(dsn, "?") {
		dsn += "?"
	} else {
		dsn += "&"
	}
	dsn += "_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open local store: %w", err)
	}

	// SQLite doesn't support multiple writers, so limit connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping local store: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate local store: %w", err)
	}
	return s, nil
}

// DB returns the underlying sql.DB.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the store.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS wipe_journal (
			company_id TEXT NOT NULL,
			step TEXT NOT NULL,
			completed_at TEXT NOT NULL,
			PRIMARY KEY (company_id, step)
		)`,
		`CREATE TABLE IF NOT EXISTS disclosure_progress (
			user_id TEXT NOT NULL,
			service_tag TEXT NOT NULL,
			doc_version TEXT NOT NULL,
			offset_px REAL NOT NULL,
			viewport_px REAL NOT NULL,
			content_px REAL NOT NULL,
			updated_at TEXT NOT NULL,
			PRIMARY KEY (user_id, service_tag, doc_version)
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
