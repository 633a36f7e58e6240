package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent and re-run
// on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS session_logs (
		id             TEXT PRIMARY KEY,
		preset_minutes INTEGER NOT NULL CHECK(preset_minutes > 0),
		credited_min   INTEGER NOT NULL CHECK(credited_min > 0),
		outcome        TEXT NOT NULL DEFAULT 'completed'
		               CHECK(outcome IN ('completed','ended_early')),
		started_at     TEXT NOT NULL,
		ended_at       TEXT NOT NULL,
		created_at     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_session_logs_ended ON session_logs(ended_at)`,

	`CREATE TABLE IF NOT EXISTS preferences (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	// Databases created before early exits were credited lack outcome.
	`ALTER TABLE session_logs ADD COLUMN outcome TEXT NOT NULL DEFAULT 'completed'`,
}
