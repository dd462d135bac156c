// Package store persists the attempt log in SQLite. Tables are described
// with ent's schema types and migrated by ent's migrator; queries go
// through ent's SQL builder.
package store

import (
	"context"
	"database/sql"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// pragmas tune SQLite for one local writer and short readers.
var pragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA busy_timeout = 5000",
	"PRAGMA foreign_keys = ON",
	"PRAGMA synchronous = NORMAL",
}

// Store owns the database connection behind the repositories.
type Store struct {
	db  *sql.DB
	drv *entsql.Driver
}

// Open is OpenContext with a background context.
func Open(dsn string) (*Store, error) {
	return OpenContext(context.Background(), dsn)
}

// OpenContext connects to the SQLite database at dsn, applies pragmas and
// brings the schema up to date. Opening an existing file is safe; the
// migration only adds what is missing.
func OpenContext(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply pragmas: %s: %w", p, err)
		}
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	m, err := schema.NewMigrate(drv)
	if err == nil {
		err = m.Create(ctx, Tables...)
	}
	if err != nil {
		drv.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}
	return &Store{db: db, drv: drv}, nil
}

// DB exposes the raw handle, mainly for tests.
func (s *Store) DB() *sql.DB { return s.db }

// Close closes the connection.
func (s *Store) Close() error { return s.drv.Close() }

// ProgressRepo returns the attempt log.
func (s *Store) ProgressRepo() ProgressRepo {
	return &progressRepo{db: s.db}
}
