package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A database written before early exits were credited has no outcome
// column. Existing rows must survive and read back as completed.
func TestMigrate_UpgradeAddsOutcomeColumn(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE session_logs (
		id             TEXT PRIMARY KEY,
		preset_minutes INTEGER NOT NULL,
		credited_min   INTEGER NOT NULL,
		started_at     TEXT NOT NULL,
		ended_at       TEXT NOT NULL,
		created_at     TEXT NOT NULL
	)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO session_logs VALUES ('legacy', 45, 45,
		'2025-06-14T21:00:00Z', '2025-06-14T21:45:00Z', '2025-06-14T21:45:00Z')`)
	require.NoError(t, err)

	require.NoError(t, Migrate(db))

	var outcome string
	var credited int
	err = db.QueryRow(`SELECT outcome, credited_min FROM session_logs WHERE id = 'legacy'`).Scan(&outcome, &credited)
	require.NoError(t, err)
	assert.Equal(t, "completed", outcome)
	assert.Equal(t, 45, credited)

	// New rows can record early exits.
	_, err = db.Exec(`INSERT INTO session_logs (id, preset_minutes, credited_min, outcome, started_at, ended_at, created_at)
		VALUES ('new', 20, 7, 'ended_early', '2025-06-15T10:00:00Z', '2025-06-15T10:07:00Z', '2025-06-15T10:07:00Z')`)
	require.NoError(t, err)

	var pref int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM preferences`).Scan(&pref))
	assert.Zero(t, pref)
}
