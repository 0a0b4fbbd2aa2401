package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-movie-catalog/internal/models"
)

const outboxColumns = `event_id, movie_id, kind, attempts, last_error, available_at, created_at, processed_at`

// OutboxRepository stores movie change events written in the same transaction
// as the change itself.
type OutboxRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewOutboxRepository(db *sqlx.DB, txGetter TxGetter) *OutboxRepository {
	return &OutboxRepository{db: db, txGetter: txGetter}
}

// Enqueue records a change of movieID.
func (r *OutboxRepository) Enqueue(ctx context.Context, movieID uuid.UUID, kind models.EventKind) error {
	const query = `
		INSERT INTO outbox_events (movie_id, kind, attempts, available_at, created_at)
		VALUES ($1, $2, 0, NOW(), NOW())
	`
	args := []any{movieID, kind}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)

	logQuery(query, args, rowsAffected(res), err)

	return err
}

// Claim leases up to limit due events for lease. Events leased by another
// relay are skipped; a leased event becomes due again once the lease expires.
func (r *OutboxRepository) Claim(ctx context.Context, limit, maxAttempts int, lease time.Duration) ([]models.OutboxEvent, error) {
	const query = `
		UPDATE outbox_events
		SET available_at = NOW() + $3::float8 * INTERVAL '1 millisecond'
		WHERE event_id IN (
			SELECT event_id FROM outbox_events
			WHERE processed_at IS NULL AND available_at <= NOW() AND attempts < $2
			ORDER BY event_id
			LIMIT $1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING ` + outboxColumns
	args := []any{limit, maxAttempts, lease.Milliseconds()}

	events := []models.OutboxEvent{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &events, query, args...)

	logQuery(query, args, len(events), err)

	return events, err
}

// MarkProcessed marks the event as delivered.
func (r *OutboxRepository) MarkProcessed(ctx context.Context, eventID int64) error {
	const query = `UPDATE outbox_events SET processed_at = NOW(), last_error = NULL WHERE event_id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, eventID)

	logQuery(query, []any{eventID}, rowsAffected(res), err)

	return err
}

// MarkFailed records a failed delivery and schedules the next attempt after retryIn.
func (r *OutboxRepository) MarkFailed(ctx context.Context, eventID int64, cause string, retryIn time.Duration) error {
	const query = `
		UPDATE outbox_events
		SET attempts = attempts + 1, last_error = $2, available_at = NOW() + $3::float8 * INTERVAL '1 millisecond'
		WHERE event_id = $1
	`
	args := []any{eventID, cause, retryIn.Milliseconds()}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)

	logQuery(query, args, rowsAffected(res), err)

	return err
}

// CountPending returns the number of undelivered events that may still be retried.
func (r *OutboxRepository) CountPending(ctx context.Context, maxAttempts int) (int, error) {
	const query = `SELECT COUNT(*) FROM outbox_events WHERE processed_at IS NULL AND attempts < $1`

	var n int
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &n, query, maxAttempts)

	logQuery(query, []any{maxAttempts}, n, err)

	return n, err
}
