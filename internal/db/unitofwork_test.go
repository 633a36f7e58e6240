package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/napstack/napstack/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestUoW(t *testing.T) *db.SQLiteUnitOfWork {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.NewSQLiteUnitOfWork(database)
}

func putPref(ctx context.Context, tx db.DBTX, key, value string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, '2025-06-15T10:00:00Z')`, key, value)
	return err
}

// readPref reads through a transaction so the single in-memory connection is reused.
func readPref(uow *db.SQLiteUnitOfWork, key string) (string, bool) {
	var val string
	var found bool
	_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := tx.QueryRowContext(ctx, `SELECT value FROM preferences WHERE key = ?`, key).Scan(&val); err != nil {
			return nil
		}
		found = true
		return nil
	})
	return val, found
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return putPref(ctx, tx, "napstack-volume", "40")
	})
	require.NoError(t, err)

	val, found := readPref(uow, "napstack-volume")
	assert.True(t, found)
	assert.Equal(t, "40", val)
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow := openTestUoW(t)
	boom := errors.New("deliberate failure")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := putPref(ctx, tx, "napstack-sounds", `["rain"]`); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, found := readPref(uow, "napstack-sounds")
	assert.False(t, found, "row should not exist after rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow := openTestUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = putPref(ctx, tx, "napstack-stats", "{}")
			panic("boom")
		})
	})

	_, found := readPref(uow, "napstack-stats")
	assert.False(t, found, "row should not exist after panic rollback")
}
