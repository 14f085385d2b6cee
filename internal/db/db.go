package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// memoryDSN names a private in-memory database. Every connection to
// ":memory:" gets its own empty database, so the pool is pinned to one
// connection for the lifetime of the handle.
const memoryDSN = ":memory:"

// OpenInMemory opens a fresh in-memory SQLite database and applies the
// schema. The data lives exactly as long as the returned handle.
func OpenInMemory() (*sql.DB, error) {
	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}
