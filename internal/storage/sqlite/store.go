// Package sqlite provides the SQLite-backed telemetry journal.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	sqlitemigrate "github.com/solboost/boostgate/internal/platform/storage/sqlitemigrate"
	"github.com/solboost/boostgate/internal/storage"
	"github.com/solboost/boostgate/internal/storage/sqlite/migrations"
)

// Store appends submission events to a SQLite journal.
type Store struct {
	sqlDB *sql.DB
}

// Open opens the journal at path and applies migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close releases the SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// AppendSubmissionEvent persists one handled submission.
func (s *Store) AppendSubmissionEvent(ctx context.Context, event storage.SubmissionEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	event.UserID = strings.TrimSpace(event.UserID)
	event.Status = strings.TrimSpace(event.Status)
	if event.UserID == "" {
		return fmt.Errorf("user id is required")
	}
	if event.Status == "" {
		return fmt.Errorf("status is required")
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO submission_events (
	user_id,
	status,
	sequence,
	created_at
) VALUES (?, ?, ?, ?)`,
		event.UserID,
		event.Status,
		event.Sequence,
		event.Timestamp.UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("insert submission event: %w", err)
	}
	return nil
}
