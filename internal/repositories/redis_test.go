package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-movie-catalog/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupRedis(t *testing.T) (*redis.Client, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	require.NoError(t, rdb.Ping(ctx).Err())

	return rdb, func() {
		rdb.Close()
		redisC.Terminate(ctx)
	}
}

func TestMovieCacheRepository(t *testing.T) {
	rdb, teardown := setupRedis(t)
	defer teardown()

	ctx := context.Background()
	repo := NewMovieCacheRepository(rdb, 2*time.Second)

	detail := &models.MovieDetail{
		MovieDB: models.MovieDB{MovieID: uuid.New(), Name: "Dune", ReleaseYear: 2021, Votes: 3, Rating: 7.5},
		Genres:  []models.Genre{{GenreID: 15, GenreName: "Science Fiction"}},
		Reviews: []models.ReviewDB{},
	}

	t.Run("Set and Get", func(t *testing.T) {
		version, err := repo.Version(ctx, detail.MovieID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), version)

		stored, err := repo.Set(ctx, detail, version)
		require.NoError(t, err)
		assert.True(t, stored)

		got, err := repo.Get(ctx, detail.MovieID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Dune", got.Name)
		assert.Equal(t, 7.5, got.Rating)
		assert.Equal(t, detail.Genres, got.Genres)
	})

	t.Run("Miss returns nil", func(t *testing.T) {
		got, err := repo.Get(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("Delete evicts", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, detail.MovieID))
		got, err := repo.Get(ctx, detail.MovieID)
		assert.NoError(t, err)
		assert.Nil(t, got)

		version, err := repo.Version(ctx, detail.MovieID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), version)
	})

	t.Run("Fill started before eviction is discarded", func(t *testing.T) {
		movieID := uuid.New()
		stale := *detail
		stale.MovieID = movieID

		version, err := repo.Version(ctx, movieID)
		require.NoError(t, err)

		// a write commits and evicts while the fill is loading from the database
		require.NoError(t, repo.Delete(ctx, movieID))

		stored, err := repo.Set(ctx, &stale, version)
		require.NoError(t, err)
		assert.False(t, stored)

		got, err := repo.Get(ctx, movieID)
		assert.NoError(t, err)
		assert.Nil(t, got)

		current, err := repo.Version(ctx, movieID)
		require.NoError(t, err)
		stored, err = repo.Set(ctx, &stale, current)
		require.NoError(t, err)
		assert.True(t, stored)
	})

	t.Run("Entry expires", func(t *testing.T) {
		version, err := repo.Version(ctx, detail.MovieID)
		require.NoError(t, err)
		stored, err := repo.Set(ctx, detail, version)
		require.NoError(t, err)
		require.True(t, stored)
		time.Sleep(3 * time.Second)
		got, err := repo.Get(ctx, detail.MovieID)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestRankingRepository(t *testing.T) {
	rdb, teardown := setupRedis(t)
	defer teardown()

	ctx := context.Background()
	repo := NewRankingRepository(rdb)

	a, b, c := uuid.New(), uuid.New(), uuid.New()
	require.NoError(t, repo.Update(ctx, a, 10, 6.0))
	require.NoError(t, repo.Update(ctx, b, 2, 9.5))
	require.NoError(t, repo.Update(ctx, c, 0, 0))

	top, err := repo.Top(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{b, a}, top)

	popular, err := repo.Popular(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a, b}, popular)

	t.Run("Losing all votes leaves top ranking", func(t *testing.T) {
		require.NoError(t, repo.Update(ctx, b, 0, 0))
		top, err := repo.Top(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{a}, top)
	})

	t.Run("Remove", func(t *testing.T) {
		require.NoError(t, repo.Remove(ctx, a))
		top, err := repo.Top(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, top)

		popular, err := repo.Popular(ctx, 10)
		require.NoError(t, err)
		assert.NotContains(t, popular, a)
	})
}
