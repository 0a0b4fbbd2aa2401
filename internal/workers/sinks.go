package workers

//go:generate mockgen -source=sinks.go -destination=sinks_mock.go -package=workers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-movie-catalog/internal/breaker"
	"github.com/sbilibin2017/gw-movie-catalog/internal/logger"
	"github.com/sbilibin2017/gw-movie-catalog/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker/v2"
)

// SearchIndexer writes movie documents to the search index.
type SearchIndexer interface {
	Index(ctx context.Context, movieID uuid.UUID, doc models.SearchDocument) error
	Delete(ctx context.Context, movieID uuid.UUID) error
}

// DetailEvicter drops cached movie details.
type DetailEvicter interface {
	Delete(ctx context.Context, movieID uuid.UUID) error
}

// RankingWriter maintains the rating and vote rankings.
type RankingWriter interface {
	Update(ctx context.Context, movieID uuid.UUID, votes int, rating float64) error
	Remove(ctx context.Context, movieID uuid.UUID) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// SearchSink mirrors movies into the search index behind a circuit breaker.
type SearchSink struct {
	index SearchIndexer
	cb    *gobreaker.CircuitBreaker[struct{}]
}

func NewSearchSink(index SearchIndexer, cfg breaker.Config) *SearchSink {
	if cfg.Name == "" {
		cfg.Name = "search-sink"
	}
	return &SearchSink{index: index, cb: breaker.New[struct{}](cfg)}
}

func (s *SearchSink) Name() string { return "search" }

func (s *SearchSink) Apply(ctx context.Context, snap Snapshot) error {
	_, err := s.cb.Execute(func() (struct{}, error) {
		if snap.Deleted() {
			return struct{}{}, s.index.Delete(ctx, snap.MovieID())
		}
		return struct{}{}, s.index.Index(ctx, snap.MovieID(), models.NewSearchDocument(snap.Movie, snap.Genres))
	})
	return err
}

// CacheSink evicts the cached detail and refreshes the rankings.
type CacheSink struct {
	details  DetailEvicter
	rankings RankingWriter
}

func NewCacheSink(details DetailEvicter, rankings RankingWriter) *CacheSink {
	return &CacheSink{details: details, rankings: rankings}
}

func (s *CacheSink) Name() string { return "cache" }

func (s *CacheSink) Apply(ctx context.Context, snap Snapshot) error {
	if err := s.details.Delete(ctx, snap.MovieID()); err != nil {
		return err
	}
	if snap.Deleted() {
		return s.rankings.Remove(ctx, snap.MovieID())
	}
	return s.rankings.Update(ctx, snap.MovieID(), snap.Movie.Votes, snap.Movie.Rating)
}

// EventSink publishes a MovieEvent per delivered outbox event.
type EventSink struct {
	writer KafkaWriter
	now    func() time.Time
}

func NewEventSink(writer KafkaWriter) *EventSink {
	return &EventSink{writer: writer, now: time.Now}
}

func (s *EventSink) Name() string { return "kafka" }

func (s *EventSink) Apply(ctx context.Context, snap Snapshot) error {
	ev := NewMovieEvent(snap, s.now())

	data, err := json.Marshal(ev)
	if err != nil {
		logger.Log.Errorw("Failed to marshal movie event for Kafka", "movieID", ev.MovieID, "error", err)
		return err
	}

	msg := kafka.Message{
		Key:   []byte(ev.MovieID),
		Value: data,
	}

	if err := s.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish movie event to Kafka", "movieID", ev.MovieID, "error", err)
		return err
	}

	logger.Log.Infow("Movie event published to Kafka", "movieID", ev.MovieID, "kind", ev.Kind, "votes", ev.Votes)
	return nil
}

// NewMovieEvent builds the published message. Events for movies that no longer
// exist are reported as deletions with zero aggregates.
func NewMovieEvent(snap Snapshot, at time.Time) models.MovieEvent {
	ev := models.MovieEvent{
		EventID:   snap.Event.EventID,
		MovieID:   snap.MovieID().String(),
		Kind:      snap.Event.Kind,
		Timestamp: at.UnixMilli(),
	}
	if snap.Deleted() {
		ev.Kind = models.EventMovieDeleted
		return ev
	}
	ev.Votes = snap.Movie.Votes
	ev.Rating = snap.Movie.Rating
	return ev
}
