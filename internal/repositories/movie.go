package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-movie-catalog/internal/models"
)

const movieColumns = `movie_id, name, release_year, duration, type, certificate, episodes, description,
	thumbnail_url, nudity, violence, profanity, alcohol, frightening, votes, rating, created_at, updated_at`

// MovieRepository stores movies, their aggregates and ownership records.
type MovieRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewMovieRepository(db *sqlx.DB, txGetter TxGetter) *MovieRepository {
	return &MovieRepository{db: db, txGetter: txGetter}
}

// GetByID returns the movie or nil when it does not exist.
func (r *MovieRepository) GetByID(ctx context.Context, movieID uuid.UUID) (*models.MovieDB, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE movie_id = $1`
	return r.getOne(ctx, query, movieID)
}

// LockByID returns the movie and holds a row lock on it until the surrounding
// transaction ends. Review mutations of one movie are serialised by this lock.
func (r *MovieRepository) LockByID(ctx context.Context, movieID uuid.UUID) (*models.MovieDB, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE movie_id = $1 FOR UPDATE`
	return r.getOne(ctx, query, movieID)
}

func (r *MovieRepository) getOne(ctx context.Context, query string, movieID uuid.UUID) (*models.MovieDB, error) {
	var movie models.MovieDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &movie, query, movieID)

	logQuery(query, []any{movieID}, movie.MovieID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

// Create inserts the movie and returns the stored row.
func (r *MovieRepository) Create(ctx context.Context, m *models.MovieDB) (*models.MovieDB, error) {
	query := `
		INSERT INTO movies (name, release_year, duration, type, certificate, episodes, description,
			thumbnail_url, nudity, violence, profanity, alcohol, frightening, votes, rating, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, 0, 0, NOW(), NOW())
		RETURNING ` + movieColumns
	args := []any{m.Name, m.ReleaseYear, m.Duration, m.Type, m.Certificate, m.Episodes, m.Description,
		m.ThumbnailURL, m.Nudity, m.Violence, m.Profanity, m.Alcohol, m.Frightening}

	var created models.MovieDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &created, query, args...)

	logQuery(query, args, created.MovieID, err)

	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update writes the descriptive fields of the movie. Aggregates are left untouched.
func (r *MovieRepository) Update(ctx context.Context, m *models.MovieDB) (*models.MovieDB, error) {
	query := `
		UPDATE movies
		SET name = $2, release_year = $3, duration = $4, type = $5, certificate = $6, episodes = $7,
			description = $8, thumbnail_url = $9, nudity = $10, violence = $11, profanity = $12,
			alcohol = $13, frightening = $14, updated_at = NOW()
		WHERE movie_id = $1
		RETURNING ` + movieColumns
	args := []any{m.MovieID, m.Name, m.ReleaseYear, m.Duration, m.Type, m.Certificate, m.Episodes,
		m.Description, m.ThumbnailURL, m.Nudity, m.Violence, m.Profanity, m.Alcohol, m.Frightening}

	var updated models.MovieDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &updated, query, args...)

	logQuery(query, args, updated.MovieID, err)

	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// UpdateAggregate stores the recomputed votes and rating of a movie.
func (r *MovieRepository) UpdateAggregate(ctx context.Context, movieID uuid.UUID, agg models.Aggregate) error {
	const query = `
		UPDATE movies
		SET votes = $2, rating = $3, updated_at = NOW()
		WHERE movie_id = $1
	`
	args := []any{movieID, agg.Votes, agg.Rating}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	rows := rowsAffected(res)

	logQuery(query, args, rows, err)

	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes the movie; genre links, reviews, watchlist entries and
// ownership records go with it through ON DELETE CASCADE.
func (r *MovieRepository) Delete(ctx context.Context, movieID uuid.UUID) error {
	const query = `DELETE FROM movies WHERE movie_id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, movieID)

	logQuery(query, []any{movieID}, rowsAffected(res), err)

	return err
}

// AddOwner records userID as the creator of movieID.
func (r *MovieRepository) AddOwner(ctx context.Context, userID, movieID uuid.UUID) error {
	const query = `
		INSERT INTO user_movies (user_id, movie_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, movie_id) DO NOTHING
	`
	args := []any{userID, movieID}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)

	logQuery(query, args, rowsAffected(res), err)

	return err
}

// IsOwner reports whether userID created movieID.
func (r *MovieRepository) IsOwner(ctx context.Context, userID, movieID uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM user_movies WHERE user_id = $1 AND movie_id = $2)`
	args := []any{userID, movieID}

	var owner bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &owner, query, args...)

	logQuery(query, args, owner, err)

	return owner, err
}

// ListByOwner returns the movies created by userID, newest first.
func (r *MovieRepository) ListByOwner(ctx context.Context, userID uuid.UUID) ([]models.MovieDB, error) {
	query := `
		SELECT ` + prefixColumns("m", movieColumns) + `
		FROM movies m
		JOIN user_movies um ON um.movie_id = m.movie_id
		WHERE um.user_id = $1
		ORDER BY m.created_at DESC, m.movie_id
	`

	movies := []models.MovieDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &movies, query, userID)

	logQuery(query, []any{userID}, len(movies), err)

	return movies, err
}

const summaryColumns = `m.movie_id, m.name, m.thumbnail_url, m.rating, m.votes, m.type, m.certificate, m.created_at`

// List returns one page of movies matching the filter and the total match count.
// Matching is ILIKE on name and description, exact on genre, type and certificate.
func (r *MovieRepository) List(ctx context.Context, f models.MovieFilter) ([]models.MovieSummary, int, error) {
	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Search != "" {
		p := arg("%" + escapeLike(f.Search) + "%")
		where = append(where, fmt.Sprintf("(m.name ILIKE %s OR m.description ILIKE %s)", p, p))
	}
	if f.Genre != "" {
		where = append(where, fmt.Sprintf(`EXISTS (
			SELECT 1 FROM movie_genres mg JOIN genres g ON g.genre_id = mg.genre_id
			WHERE mg.movie_id = m.movie_id AND g.genre_name = %s)`, arg(f.Genre)))
	}
	switch f.Rating {
	case models.RatingBucketHigh:
		where = append(where, "m.rating >= 8")
	case models.RatingBucketMedium:
		where = append(where, "m.rating BETWEEN 5 AND 8")
	case models.RatingBucketLow:
		where = append(where, "m.rating < 5")
	}
	if f.Type != "" {
		where = append(where, "m.type = "+arg(f.Type))
	}
	if f.Certificate != "" {
		where = append(where, "m.certificate = "+arg(f.Certificate))
	}

	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	ex := executor(ctx, r.db, r.txGetter)

	countQuery := `SELECT COUNT(*) FROM movies m` + clause
	var total int
	err := sqlx.GetContext(ctx, ex, &total, countQuery, args...)
	logQuery(countQuery, args, total, err)
	if err != nil {
		return nil, 0, err
	}

	pageQuery := `SELECT ` + summaryColumns + ` FROM movies m` + clause +
		` ORDER BY m.created_at DESC, m.movie_id LIMIT ` + arg(f.Limit) + ` OFFSET ` + arg(f.Offset())
	movies := []models.MovieSummary{}
	err = sqlx.SelectContext(ctx, ex, &movies, pageQuery, args...)
	logQuery(pageQuery, args, len(movies), err)
	if err != nil {
		return nil, 0, err
	}

	return movies, total, nil
}

// GetSummaries returns summaries for the given movies in the order of ids.
// Unknown ids are skipped.
func (r *MovieRepository) GetSummaries(ctx context.Context, ids []uuid.UUID) ([]models.MovieSummary, error) {
	if len(ids) == 0 {
		return []models.MovieSummary{}, nil
	}
	query := `SELECT ` + summaryColumns + ` FROM movies m WHERE m.movie_id = ANY($1::uuid[])`
	keys := uuidStrings(ids)

	var rows []models.MovieSummary
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &rows, query, keys)

	logQuery(query, []any{keys}, len(rows), err)

	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]models.MovieSummary, len(rows))
	for _, m := range rows {
		byID[m.MovieID] = m
	}
	ordered := make([]models.MovieSummary, 0, len(rows))
	for _, id := range ids {
		if m, ok := byID[id]; ok {
			ordered = append(ordered, m)
		}
	}
	return ordered, nil
}

func rowsAffected(res sql.Result) int64 {
	if res == nil {
		return 0
	}
	n, _ := res.RowsAffected()
	return n
}

func prefixColumns(alias, columns string) string {
	parts := strings.Split(columns, ",")
	for i, p := range parts {
		parts[i] = alias + "." + strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
