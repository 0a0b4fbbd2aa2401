package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-movie-catalog/internal/models"
)

// GenreRepository reads the genre reference data and maintains movie genre links.
type GenreRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewGenreRepository(db *sqlx.DB, txGetter TxGetter) *GenreRepository {
	return &GenreRepository{db: db, txGetter: txGetter}
}

// List returns every genre ordered by name.
func (r *GenreRepository) List(ctx context.Context) ([]models.Genre, error) {
	const query = `SELECT genre_id, genre_name FROM genres ORDER BY genre_name`

	genres := []models.Genre{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &genres, query)

	logQuery(query, nil, len(genres), err)

	return genres, err
}

// GetByIDs returns the genres whose ids are listed. Unknown ids are skipped.
func (r *GenreRepository) GetByIDs(ctx context.Context, ids []int) ([]models.Genre, error) {
	const query = `SELECT genre_id, genre_name FROM genres WHERE genre_id = ANY($1::int[]) ORDER BY genre_name`
	keys := make([]int64, len(ids))
	for i, id := range ids {
		keys[i] = int64(id)
	}

	genres := []models.Genre{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &genres, query, keys)

	logQuery(query, []any{keys}, len(genres), err)

	return genres, err
}

// SetMovieGenres replaces the genre set of a movie.
func (r *GenreRepository) SetMovieGenres(ctx context.Context, movieID uuid.UUID, genreIDs []int) error {
	ex := executor(ctx, r.db, r.txGetter)

	const deleteQuery = `DELETE FROM movie_genres WHERE movie_id = $1`
	res, err := ex.ExecContext(ctx, deleteQuery, movieID)
	logQuery(deleteQuery, []any{movieID}, rowsAffected(res), err)
	if err != nil {
		return err
	}

	const insertQuery = `
		INSERT INTO movie_genres (movie_id, genre_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`
	for _, genreID := range genreIDs {
		res, err := ex.ExecContext(ctx, insertQuery, movieID, genreID)
		logQuery(insertQuery, []any{movieID, genreID}, rowsAffected(res), err)
		if err != nil {
			return err
		}
	}
	return nil
}

// ListByMovie returns the genres of one movie.
func (r *GenreRepository) ListByMovie(ctx context.Context, movieID uuid.UUID) ([]models.Genre, error) {
	const query = `
		SELECT g.genre_id, g.genre_name
		FROM genres g
		JOIN movie_genres mg ON mg.genre_id = g.genre_id
		WHERE mg.movie_id = $1
		ORDER BY g.genre_name
	`

	genres := []models.Genre{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &genres, query, movieID)

	logQuery(query, []any{movieID}, len(genres), err)

	return genres, err
}

// NamesByMovies returns the genre names of each listed movie.
func (r *GenreRepository) NamesByMovies(ctx context.Context, movieIDs []uuid.UUID) (map[uuid.UUID][]string, error) {
	names := make(map[uuid.UUID][]string, len(movieIDs))
	if len(movieIDs) == 0 {
		return names, nil
	}

	const query = `
		SELECT mg.movie_id, g.genre_name
		FROM movie_genres mg
		JOIN genres g ON g.genre_id = mg.genre_id
		WHERE mg.movie_id = ANY($1::uuid[])
		ORDER BY g.genre_name
	`
	keys := uuidStrings(movieIDs)

	var rows []struct {
		MovieID   uuid.UUID `db:"movie_id"`
		GenreName string    `db:"genre_name"`
	}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &rows, query, keys)

	logQuery(query, []any{keys}, len(rows), err)

	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		names[row.MovieID] = append(names[row.MovieID], row.GenreName)
	}
	return names, nil
}
