package repository

import (
	"context"
	"testing"

	"github.com/napstack/napstack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferenceRepo_GetMissing(t *testing.T) {
	repo := NewSQLitePreferenceRepo(testutil.NewTestDB(t))

	_, err := repo.Get(context.Background(), KeyStats)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPreferenceRepo_PutOverwrites(t *testing.T) {
	repo := NewSQLitePreferenceRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, KeyVolume, "70"))
	require.NoError(t, repo.Put(ctx, KeyVolume, "35"))

	got, err := repo.Get(ctx, KeyVolume)
	require.NoError(t, err)
	assert.Equal(t, "35", got)
}

func TestPreferenceRepo_KeysAreIndependent(t *testing.T) {
	repo := NewSQLitePreferenceRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, KeySounds, `["coffee","rain"]`))
	require.NoError(t, repo.Put(ctx, KeyStats, `{"sessions":3}`))

	sounds, err := repo.Get(ctx, KeySounds)
	require.NoError(t, err)
	assert.Equal(t, `["coffee","rain"]`, sounds)

	_, err = repo.Get(ctx, KeyVolume)
	assert.ErrorIs(t, err, ErrNotFound)
}
