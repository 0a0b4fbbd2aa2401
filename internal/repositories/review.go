package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-movie-catalog/internal/models"
)

const reviewColumns = `review_id, user_id, movie_id, rating, review, created_at, updated_at`

type ReviewRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewReviewRepository(db *sqlx.DB, txGetter TxGetter) *ReviewRepository {
	return &ReviewRepository{db: db, txGetter: txGetter}
}

// GetByUserAndMovie returns the review userID left on movieID, or nil.
func (r *ReviewRepository) GetByUserAndMovie(ctx context.Context, userID, movieID uuid.UUID) (*models.ReviewDB, error) {
	const query = `SELECT ` + reviewColumns + ` FROM reviews WHERE user_id = $1 AND movie_id = $2`
	args := []any{userID, movieID}

	var review models.ReviewDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &review, query, args...)

	logQuery(query, args, review.ReviewID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// Upsert stores the review of (UserID, MovieID), replacing rating and text of
// an existing one. created reports whether a new row was inserted.
func (r *ReviewRepository) Upsert(ctx context.Context, review *models.ReviewDB) (saved *models.ReviewDB, created bool, err error) {
	const query = `
		INSERT INTO reviews (user_id, movie_id, rating, review, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT ON CONSTRAINT uq_reviews_user_movie
		DO UPDATE SET rating = EXCLUDED.rating, review = EXCLUDED.review, updated_at = NOW()
		RETURNING ` + reviewColumns + `, (xmax = 0) AS inserted
	`
	args := []any{review.UserID, review.MovieID, review.Rating, review.Review}

	var row struct {
		models.ReviewDB
		Inserted bool `db:"inserted"`
	}
	err = sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &row, query, args...)

	logQuery(query, args, row.ReviewID, err)

	if err != nil {
		return nil, false, err
	}
	return &row.ReviewDB, row.Inserted, nil
}

// Delete removes the review when it belongs to userID and movieID.
// It reports whether a row was removed.
func (r *ReviewRepository) Delete(ctx context.Context, reviewID, movieID, userID uuid.UUID) (bool, error) {
	const query = `DELETE FROM reviews WHERE review_id = $1 AND movie_id = $2 AND user_id = $3`
	args := []any{reviewID, movieID, userID}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	rows := rowsAffected(res)

	logQuery(query, args, rows, err)

	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// ListByMovie returns the reviews of a movie, oldest first.
func (r *ReviewRepository) ListByMovie(ctx context.Context, movieID uuid.UUID) ([]models.ReviewDB, error) {
	const query = `SELECT ` + reviewColumns + ` FROM reviews WHERE movie_id = $1 ORDER BY created_at, review_id`

	reviews := []models.ReviewDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &reviews, query, movieID)

	logQuery(query, []any{movieID}, len(reviews), err)

	return reviews, err
}

// Ratings returns every non-null rating given to a movie.
func (r *ReviewRepository) Ratings(ctx context.Context, movieID uuid.UUID) ([]int, error) {
	const query = `SELECT rating FROM reviews WHERE movie_id = $1 AND rating IS NOT NULL`

	ratings := []int{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &ratings, query, movieID)

	logQuery(query, []any{movieID}, len(ratings), err)

	return ratings, err
}
