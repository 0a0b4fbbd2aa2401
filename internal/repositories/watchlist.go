package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-movie-catalog/internal/models"
)

type WatchListRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewWatchListRepository(db *sqlx.DB, txGetter TxGetter) *WatchListRepository {
	return &WatchListRepository{db: db, txGetter: txGetter}
}

// Add saves movieID to the watchlist of userID. It reports false when the
// movie was already there.
func (r *WatchListRepository) Add(ctx context.Context, userID, movieID uuid.UUID) (bool, error) {
	const query = `
		INSERT INTO watchlist (user_id, movie_id, date_added)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, movie_id) DO NOTHING
	`
	args := []any{userID, movieID}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	rows := rowsAffected(res)

	logQuery(query, args, rows, err)

	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// Remove deletes movieID from the watchlist of userID and reports whether it was there.
func (r *WatchListRepository) Remove(ctx context.Context, userID, movieID uuid.UUID) (bool, error) {
	const query = `DELETE FROM watchlist WHERE user_id = $1 AND movie_id = $2`
	args := []any{userID, movieID}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	rows := rowsAffected(res)

	logQuery(query, args, rows, err)

	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// List returns the watchlist of userID, most recently added first.
func (r *WatchListRepository) List(ctx context.Context, userID uuid.UUID) ([]models.WatchListItem, error) {
	const query = `
		SELECT w.date_added, m.movie_id, m.name, m.thumbnail_url, m.rating, m.type, m.certificate
		FROM watchlist w
		JOIN movies m ON m.movie_id = w.movie_id
		WHERE w.user_id = $1
		ORDER BY w.date_added DESC, m.movie_id
	`

	items := []models.WatchListItem{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &items, query, userID)

	logQuery(query, []any{userID}, len(items), err)

	return items, err
}
