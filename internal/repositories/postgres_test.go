package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-movie-catalog/internal/models"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// --- Setup Postgres ---
func setupPostgres(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2).WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)

	require.NoError(t, Migrate(ctx, db))

	teardown := func() {
		db.Close()
		container.Terminate(ctx)
	}
	return db, teardown
}

func createTestUser(t *testing.T, db *sqlx.DB, username string) *models.UserDB {
	t.Helper()
	user, err := NewUserWriteRepository(db, noTx).Save(context.Background(), models.RegisterInput{
		FirstName: "Test",
		LastName:  "User",
		Username:  username,
		Email:     username + "@example.com",
		Password:  "password123",
	}, "hash")
	require.NoError(t, err)
	return user
}

func createTestMovie(t *testing.T, db *sqlx.DB, name string) *models.MovieDB {
	t.Helper()
	movie, err := NewMovieRepository(db, nil).Create(context.Background(), &models.MovieDB{
		Name:        name,
		ReleaseYear: 2020,
	})
	require.NoError(t, err)
	return movie
}

func noTx(context.Context) *sqlx.Tx { return nil }

func ptr[T any](v T) *T { return &v }

