package models

import (
	"time"

	"github.com/google/uuid"
)

// EventKind names the change recorded in the outbox.
type EventKind string

const (
	EventMovieUpserted EventKind = "movie.upserted"
	EventMovieDeleted  EventKind = "movie.deleted"
)

// OutboxEvent is a pending change to propagate to the search index, caches and the event stream.
type OutboxEvent struct {
	EventID     int64      `db:"event_id"`
	MovieID     uuid.UUID  `db:"movie_id"`
	Kind        EventKind  `db:"kind"`
	Attempts    int        `db:"attempts"`
	LastError   *string    `db:"last_error"`
	AvailableAt time.Time  `db:"available_at"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}

// MovieEvent is published to Kafka for every processed outbox event.
type MovieEvent struct {
	EventID   int64     `json:"event_id"`
	MovieID   string    `json:"movie_id"`
	Kind      EventKind `json:"kind"`
	Votes     int       `json:"votes"`
	Rating    float64   `json:"rating"`
	Timestamp int64     `json:"timestamp"`
}

// SearchDocument is the flattened movie projection stored in the search index.
type SearchDocument struct {
	Name         string    `json:"name"`
	ReleaseYear  int       `json:"releaseYear"`
	Duration     *int      `json:"duration,omitempty"`
	Type         *string   `json:"type,omitempty"`
	Certificate  *string   `json:"certificate,omitempty"`
	Description  *string   `json:"description,omitempty"`
	ThumbnailURL *string   `json:"thumbnailUrl,omitempty"`
	Rating       float64   `json:"rating"`
	Votes        int       `json:"votes"`
	Genres       []string  `json:"genres"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NewSearchDocument projects a movie and its genre names into a search document.
func NewSearchDocument(m *MovieDB, genres []string) SearchDocument {
	if genres == nil {
		genres = []string{}
	}
	return SearchDocument{
		Name:         m.Name,
		ReleaseYear:  m.ReleaseYear,
		Duration:     m.Duration,
		Type:         m.Type,
		Certificate:  m.Certificate,
		Description:  m.Description,
		ThumbnailURL: m.ThumbnailURL,
		Rating:       m.Rating,
		Votes:        m.Votes,
		Genres:       genres,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
