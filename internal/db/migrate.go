package db

import (
	"database/sql"
	"fmt"
)

// Migrate creates the agenda schema. Statements are idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS events (
		id             TEXT PRIMARY KEY,
		start_time     TEXT NOT NULL UNIQUE,
		title          TEXT NOT NULL,
		duration_hours INTEGER NOT NULL CHECK(duration_hours >= 0),
		position       INTEGER NOT NULL DEFAULT 0,
		color          TEXT NOT NULL DEFAULT '',
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_events_position ON events(position)`,
}
