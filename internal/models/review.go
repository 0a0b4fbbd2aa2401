package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Review rating bounds.
const (
	MinRating = 1
	MaxRating = 10
)

// ReviewDB represents a review row. At most one review exists per (user, movie).
type ReviewDB struct {
	ReviewID  uuid.UUID `json:"reviewID" db:"review_id"`
	UserID    uuid.UUID `json:"userID" db:"user_id"`
	MovieID   uuid.UUID `json:"movieID" db:"movie_id"`
	Rating    *int      `json:"rating" db:"rating"`
	Review    *string   `json:"review" db:"review"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// IsEmpty reports whether the review carries neither a rating nor non-blank text.
func (r *ReviewDB) IsEmpty() bool {
	return r.Rating == nil && (r.Review == nil || strings.TrimSpace(*r.Review) == "")
}

// ReviewInput is a review submission. Absent fields keep the stored value,
// explicit nulls clear it.
type ReviewInput struct {
	Rating OptionalInt    `json:"rating" swaggertype:"integer" validate:"omitnil,gte=1,lte=10"`
	Review OptionalString `json:"review" swaggertype:"string"`
}
