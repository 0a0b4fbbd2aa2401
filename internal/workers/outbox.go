// Package workers runs the background jobs of the catalogue service.
package workers

//go:generate mockgen -source=outbox.go -destination=outbox_mock.go -package=workers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-movie-catalog/internal/logger"
	"github.com/sbilibin2017/gw-movie-catalog/internal/metrics"
	"github.com/sbilibin2017/gw-movie-catalog/internal/models"
)

// Relay defaults.
const (
	DefaultInterval    = time.Second
	DefaultBatchSize   = 50
	DefaultMaxAttempts = 10
	DefaultLease       = 30 * time.Second

	retryBase = time.Second
	retryCap  = 5 * time.Minute
)

// OutboxStore is the durable queue of movie change events.
type OutboxStore interface {
	Claim(ctx context.Context, limit, maxAttempts int, lease time.Duration) ([]models.OutboxEvent, error)
	MarkProcessed(ctx context.Context, eventID int64) error
	MarkFailed(ctx context.Context, eventID int64, cause string, retryIn time.Duration) error
	CountPending(ctx context.Context, maxAttempts int) (int, error)
}

// SnapshotMovieReader loads the current movie row.
type SnapshotMovieReader interface {
	GetByID(ctx context.Context, movieID uuid.UUID) (*models.MovieDB, error)
}

// SnapshotGenreReader loads genre names of movies.
type SnapshotGenreReader interface {
	NamesByMovies(ctx context.Context, movieIDs []uuid.UUID) (map[uuid.UUID][]string, error)
}

// Sink applies a movie snapshot to one derived store. Apply must be idempotent.
type Sink interface {
	Name() string
	Apply(ctx context.Context, snap Snapshot) error
}

// Snapshot is the state of a movie when its event is processed. Movie is nil
// when the movie no longer exists.
type Snapshot struct {
	Event  models.OutboxEvent
	Movie  *models.MovieDB
	Genres []string
}

// MovieID returns the id of the changed movie.
func (s Snapshot) MovieID() uuid.UUID {
	return s.Event.MovieID
}

// Deleted reports whether the movie is gone.
func (s Snapshot) Deleted() bool {
	return s.Movie == nil
}

// Relay delivers outbox events to every sink, retrying failures with backoff.
type Relay struct {
	store       OutboxStore
	movies      SnapshotMovieReader
	genres      SnapshotGenreReader
	sinks       []Sink
	interval    time.Duration
	batchSize   int
	maxAttempts int
	lease       time.Duration
}

// RelayOpt configures a Relay.
type RelayOpt func(*Relay)

// WithInterval sets the polling interval.
func WithInterval(d time.Duration) RelayOpt {
	return func(r *Relay) {
		if d > 0 {
			r.interval = d
		}
	}
}

// WithBatchSize sets how many events are claimed per poll.
func WithBatchSize(n int) RelayOpt {
	return func(r *Relay) {
		if n > 0 {
			r.batchSize = n
		}
	}
}

// WithMaxAttempts sets after how many failures an event is parked.
func WithMaxAttempts(n int) RelayOpt {
	return func(r *Relay) {
		if n > 0 {
			r.maxAttempts = n
		}
	}
}

// WithLease sets how long a claimed event stays invisible to other relays.
func WithLease(d time.Duration) RelayOpt {
	return func(r *Relay) {
		if d > 0 {
			r.lease = d
		}
	}
}

func NewRelay(store OutboxStore, movies SnapshotMovieReader, genres SnapshotGenreReader, sinks []Sink, opts ...RelayOpt) *Relay {
	r := &Relay{
		store:       store,
		movies:      movies,
		genres:      genres,
		sinks:       sinks,
		interval:    DefaultInterval,
		batchSize:   DefaultBatchSize,
		maxAttempts: DefaultMaxAttempts,
		lease:       DefaultLease,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run polls the outbox until ctx is cancelled.
func (r *Relay) Run(ctx context.Context) error {
	logger.Log.Infow("outbox relay started", "interval", r.interval, "batch", r.batchSize, "sinks", len(r.sinks))

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Log.Infow("outbox relay stopped")
			return nil
		case <-ticker.C:
			for {
				n, err := r.ProcessBatch(ctx)
				if err != nil {
					if ctx.Err() == nil {
						logger.Log.Errorw("outbox batch failed", "error", err)
					}
					break
				}
				// drain without waiting while full batches keep coming
				if n < r.batchSize || ctx.Err() != nil {
					break
				}
			}
			r.reportPending(ctx)
		}
	}
}

// ProcessBatch claims due events and delivers each one. It returns the number
// of claimed events.
func (r *Relay) ProcessBatch(ctx context.Context) (int, error) {
	events, err := r.store.Claim(ctx, r.batchSize, r.maxAttempts, r.lease)
	if err != nil {
		return 0, fmt.Errorf("claim outbox events: %w", err)
	}

	for _, ev := range events {
		r.deliver(ctx, ev)
	}
	return len(events), nil
}

func (r *Relay) deliver(ctx context.Context, ev models.OutboxEvent) {
	snap, err := r.snapshot(ctx, ev)
	if err != nil {
		metrics.OutboxFailed.WithLabelValues("snapshot").Inc()
		r.fail(ctx, ev, err)
		return
	}

	var errs []error
	for _, sink := range r.sinks {
		if err := sink.Apply(ctx, snap); err != nil {
			metrics.OutboxFailed.WithLabelValues(sink.Name()).Inc()
			errs = append(errs, fmt.Errorf("%s: %w", sink.Name(), err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		r.fail(ctx, ev, err)
		return
	}

	if err := r.store.MarkProcessed(ctx, ev.EventID); err != nil {
		logger.Log.Errorw("failed to mark outbox event processed", "eventID", ev.EventID, "error", err)
		return
	}
	metrics.OutboxProcessed.Inc()
	logger.Log.Infow("outbox event delivered", "eventID", ev.EventID, "movieID", ev.MovieID, "kind", ev.Kind, "deleted", snap.Deleted())
}

func (r *Relay) snapshot(ctx context.Context, ev models.OutboxEvent) (Snapshot, error) {
	snap := Snapshot{Event: ev}

	movie, err := r.movies.GetByID(ctx, ev.MovieID)
	if err != nil {
		return snap, fmt.Errorf("load movie: %w", err)
	}
	if movie == nil {
		return snap, nil
	}
	snap.Movie = movie

	names, err := r.genres.NamesByMovies(ctx, []uuid.UUID{ev.MovieID})
	if err != nil {
		return snap, fmt.Errorf("load genres: %w", err)
	}
	snap.Genres = names[ev.MovieID]
	return snap, nil
}

func (r *Relay) fail(ctx context.Context, ev models.OutboxEvent, cause error) {
	attempts := ev.Attempts + 1
	retryIn := RetryDelay(ev.Attempts)

	if err := r.store.MarkFailed(ctx, ev.EventID, cause.Error(), retryIn); err != nil {
		logger.Log.Errorw("failed to record outbox failure", "eventID", ev.EventID, "error", err)
		return
	}

	if attempts >= r.maxAttempts {
		logger.Log.Errorw("outbox event parked", "eventID", ev.EventID, "movieID", ev.MovieID, "attempts", attempts, "error", cause)
		return
	}
	logger.Log.Warnw("outbox event failed", "eventID", ev.EventID, "movieID", ev.MovieID, "attempts", attempts, "retryIn", retryIn, "error", cause)
}

func (r *Relay) reportPending(ctx context.Context) {
	n, err := r.store.CountPending(ctx, r.maxAttempts)
	if err != nil {
		if ctx.Err() == nil {
			logger.Log.Warnw("failed to count pending outbox events", "error", err)
		}
		return
	}
	metrics.OutboxPending.Set(float64(n))
}

// RetryDelay is the backoff before the next attempt of an event that has
// already failed attempts times: 1s doubling per failure, capped at 5 minutes.
func RetryDelay(attempts int) time.Duration {
	d := retryBase
	for i := 0; i < attempts; i++ {
		d *= 2
		if d >= retryCap {
			return retryCap
		}
	}
	return d
}
