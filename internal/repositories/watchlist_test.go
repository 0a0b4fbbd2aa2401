package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchListRepository(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	ctx := context.Background()
	repo := NewWatchListRepository(db, noTx)
	user := createTestUser(t, db, "watcher")
	first := createTestMovie(t, db, "First")
	second := createTestMovie(t, db, "Second")

	added, err := repo.Add(ctx, user.UserID, first.MovieID)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = repo.Add(ctx, user.UserID, first.MovieID)
	require.NoError(t, err)
	assert.False(t, added)

	_, err = repo.Add(ctx, user.UserID, second.MovieID)
	require.NoError(t, err)

	items, err := repo.List(ctx, user.UserID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, second.MovieID, items[0].MovieID)
	assert.Equal(t, "First", items[1].Name)

	removed, err := repo.Remove(ctx, user.UserID, first.MovieID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Remove(ctx, user.UserID, first.MovieID)
	require.NoError(t, err)
	assert.False(t, removed)
}
