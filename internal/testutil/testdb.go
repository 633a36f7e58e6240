package testutil

import (
	"database/sql"
	"testing"

	"github.com/napstack/napstack/internal/db"
	"github.com/stretchr/testify/require"
)

// NewTestDB opens a migrated in-memory napstack store: empty session log,
// no saved preferences. It is closed when the test ends.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err, "opening in-memory store")
	t.Cleanup(func() { _ = database.Close() })
	return database
}

// NewTestUoW wraps database in the production unit of work so stats writes
// in tests commit and roll back exactly like they do in the CLI.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
