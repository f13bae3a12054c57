// Package sqlite provides the embedded SQLite store: connection setup,
// schema migrations, transaction handling and error mapping shared by the
// entity repositories.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // registers the "sqlite" database/sql driver

	"github.com/heartmarshall/eulerq-candidate-test/internal/config"
	"github.com/heartmarshall/eulerq-candidate-test/internal/domain"
)

const driverName = "sqlite"

// Open opens the SQLite database file described by cfg, creating the parent
// directory if needed, pings it for fail-fast validation and applies the
// embedded migrations. The returned handle must be closed by the caller.
// Failures are reported as *domain.StorageError.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, domain.NewStorageError("create database directory", err)
		}
	}

	db, err := sql.Open(driverName, dsn(cfg))
	if err != nil {
		return nil, domain.NewStorageError("open database", err)
	}

	maxConns := cfg.MaxOpenConns
	if maxConns <= 0 {
		maxConns = 1
	}
	db.SetMaxOpenConns(maxConns)
	db.SetMaxIdleConns(maxConns)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, domain.NewStorageError("ping database", err)
	}

	if err := Migrate(ctx, db); err != nil {
		db.Close()
		return nil, domain.NewStorageError("migrate database", err)
	}

	return db, nil
}

// OpenReadOnly opens an existing database file for reading only. It never
// creates the file or its directory and does not run migrations, so a wrong
// path is an error rather than a new empty store.
func OpenReadOnly(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	info, err := os.Stat(cfg.Path)
	if err != nil {
		return nil, domain.NewStorageError("open database", err)
	}
	if info.IsDir() {
		return nil, domain.NewStorageError("open database", fmt.Errorf("%s is a directory", cfg.Path))
	}

	db, err := sql.Open(driverName, readOnlyDSN(cfg))
	if err != nil {
		return nil, domain.NewStorageError("open database", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, domain.NewStorageError("ping database", err)
	}

	return db, nil
}

// dsn builds a modernc.org/sqlite DSN. Writers take the lock up front
// (BEGIN IMMEDIATE) and wait up to BusyTimeout for a competing writer.
// synchronous(FULL) syncs the WAL on every commit.
func dsn(cfg config.DatabaseConfig) string {
	q := url.Values{}
	q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", cfg.BusyTimeout.Milliseconds()))
	q.Add("_pragma", "journal_mode(WAL)")
	q.Add("_pragma", "synchronous(FULL)")
	q.Add("_pragma", "foreign_keys(1)")
	q.Set("_txlock", "immediate")

	return "file:" + filepath.ToSlash(cfg.Path) + "?" + q.Encode()
}

// readOnlyDSN opens the file with mode=ro and leaves the journal mode as
// the server set it.
func readOnlyDSN(cfg config.DatabaseConfig) string {
	q := url.Values{}
	q.Set("mode", "ro")
	q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", cfg.BusyTimeout.Milliseconds()))
	q.Add("_pragma", "query_only(1)")

	return "file:" + filepath.ToSlash(cfg.Path) + "?" + q.Encode()
}
