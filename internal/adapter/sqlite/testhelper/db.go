// Package testhelper opens throwaway SQLite databases for repository and
// service tests.
package testhelper

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/heartmarshall/eulerq-candidate-test/internal/adapter/sqlite"
	"github.com/heartmarshall/eulerq-candidate-test/internal/config"
)

// Config returns a DatabaseConfig pointing at a fresh file inside t.TempDir().
func Config(t *testing.T) config.DatabaseConfig {
	t.Helper()
	return config.DatabaseConfig{
		Path:         filepath.Join(t.TempDir(), "submissions.db"),
		BusyTimeout:  5 * time.Second,
		MaxOpenConns: 1,
	}
}

// SetupTestDB opens a migrated SQLite database in a temporary directory.
// The handle is closed via t.Cleanup.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	return OpenTestDB(t, Config(t))
}

// OpenTestDB opens a migrated SQLite database described by cfg.
// The handle is closed via t.Cleanup.
func OpenTestDB(t *testing.T, cfg config.DatabaseConfig) *sql.DB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := sqlite.Open(ctx, cfg)
	if err != nil {
		t.Fatalf("testhelper: open test DB: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// CountRows returns the number of rows in the submissions table.
func CountRows(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM submissions`).Scan(&n); err != nil {
		t.Fatalf("testhelper: count submissions: %v", err)
	}
	return n
}
