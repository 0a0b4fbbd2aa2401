package models

import (
	"time"

	"github.com/google/uuid"
)

// WatchListEntry marks a movie as saved by a user.
type WatchListEntry struct {
	UserID    uuid.UUID `json:"userID" db:"user_id"`
	MovieID   uuid.UUID `json:"movieID" db:"movie_id"`
	DateAdded time.Time `json:"dateAdded" db:"date_added"`
}

// WatchListItem is a watchlist entry joined with its movie summary.
type WatchListItem struct {
	DateAdded    time.Time `json:"dateAdded" db:"date_added"`
	MovieID      uuid.UUID `json:"movieID" db:"movie_id"`
	Name         string    `json:"name" db:"name"`
	ThumbnailURL *string   `json:"thumbnailUrl,omitempty" db:"thumbnail_url"`
	Rating       float64   `json:"rating" db:"rating"`
	Type         *string   `json:"type,omitempty" db:"type"`
	Certificate  *string   `json:"certificate,omitempty" db:"certificate"`
}
