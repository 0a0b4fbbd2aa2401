package models

import (
	"time"

	"github.com/google/uuid"
)

// Content descriptor levels shared by nudity, violence, profanity, alcohol and frightening.
const (
	DescriptorMild     = "Mild"
	DescriptorModerate = "Moderate"
	DescriptorSevere   = "Severe"
	DescriptorNoRate   = "No Rate"
)

// IsValidDescriptor reports whether s is one of the content descriptor levels.
func IsValidDescriptor(s string) bool {
	switch s {
	case DescriptorMild, DescriptorModerate, DescriptorSevere, DescriptorNoRate:
		return true
	}
	return false
}

// MovieDB represents a movie row in the database
type MovieDB struct {
	MovieID      uuid.UUID `json:"movieID" db:"movie_id"`
	Name         string    `json:"name" db:"name"`
	ReleaseYear  int       `json:"releaseYear" db:"release_year"`
	Duration     *int      `json:"duration,omitempty" db:"duration"` // minutes
	Type         *string   `json:"type,omitempty" db:"type"`
	Certificate  *string   `json:"certificate,omitempty" db:"certificate"`
	Episodes     *int      `json:"episodes,omitempty" db:"episodes"`
	Description  *string   `json:"description,omitempty" db:"description"`
	ThumbnailURL *string   `json:"thumbnailUrl,omitempty" db:"thumbnail_url"`
	Nudity       *string   `json:"nudity,omitempty" db:"nudity"`
	Violence     *string   `json:"violence,omitempty" db:"violence"`
	Profanity    *string   `json:"profanity,omitempty" db:"profanity"`
	Alcohol      *string   `json:"alcohol,omitempty" db:"alcohol"`
	Frightening  *string   `json:"frightening,omitempty" db:"frightening"`
	Votes        int       `json:"votes" db:"votes"`   // number of reviews carrying a rating
	Rating       float64   `json:"rating" db:"rating"` // mean of those ratings, 0 when votes is 0
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// MovieSummary is the listing projection of a movie.
type MovieSummary struct {
	MovieID      uuid.UUID `json:"movieID" db:"movie_id"`
	Name         string    `json:"name" db:"name"`
	ThumbnailURL *string   `json:"thumbnailUrl,omitempty" db:"thumbnail_url"`
	Rating       float64   `json:"rating" db:"rating"`
	Votes        int       `json:"votes" db:"votes"`
	Type         *string   `json:"type,omitempty" db:"type"`
	Certificate  *string   `json:"certificate,omitempty" db:"certificate"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	Genres       []string  `json:"genres" db:"-"`
}

// MovieDetail is a movie with its genres and reviews.
type MovieDetail struct {
	MovieDB
	Genres  []Genre    `json:"genres"`
	Reviews []ReviewDB `json:"reviews"`
}

// Rating buckets accepted by the listing filter.
const (
	RatingBucketHigh   = "1" // rating >= 8
	RatingBucketMedium = "2" // 5 <= rating <= 8
	RatingBucketLow    = "3" // rating < 5
)

// MovieFilter holds listing pagination and filters.
type MovieFilter struct {
	Page        int    `json:"page" validate:"gte=1"`
	Limit       int    `json:"limit" validate:"gte=1,lte=100"`
	Genre       string `json:"genre" validate:"max=50"`
	Rating      string `json:"rating" validate:"omitempty,oneof=1 2 3"`
	Type        string `json:"type" validate:"max=50"`
	Certificate string `json:"certificate" validate:"max=10"`
	Search      string `json:"search" validate:"max=200"`
}

// Offset returns the row offset of the requested page.
func (f MovieFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// MoviePage is one page of a movie listing.
type MoviePage struct {
	CurrentPage int            `json:"currentPage"`
	TotalPages  int            `json:"totalPages"`
	TotalMovies int            `json:"totalMovies"`
	Limit       int            `json:"limit"`
	Offset      int            `json:"offset"`
	Movies      []MovieSummary `json:"movies"`
}

// NewMoviePage fills the page arithmetic for a result set.
func NewMoviePage(f MovieFilter, total int, movies []MovieSummary) *MoviePage {
	if movies == nil {
		movies = []MovieSummary{}
	}
	totalPages := 0
	if f.Limit > 0 {
		totalPages = (total + f.Limit - 1) / f.Limit
	}
	return &MoviePage{
		CurrentPage: f.Page,
		TotalPages:  totalPages,
		TotalMovies: total,
		Limit:       f.Limit,
		Offset:      f.Offset(),
		Movies:      movies,
	}
}

// MovieInput carries the user supplied movie fields. Nil fields are absent:
// on create they are stored as NULL, on update they keep their current value.
type MovieInput struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	ReleaseYear *int    `json:"releaseYear" validate:"omitempty,gte=1880"`
	Duration    *int    `json:"duration" validate:"omitempty,gt=0"`
	Type        *string `json:"type" validate:"omitempty,max=50"`
	Certificate *string `json:"certificate" validate:"omitempty,max=10"`
	Episodes    *int    `json:"episodes" validate:"omitempty,gte=0"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	Nudity      *string `json:"nudity" validate:"omitempty,descriptor"`
	Violence    *string `json:"violence" validate:"omitempty,descriptor"`
	Profanity   *string `json:"profanity" validate:"omitempty,descriptor"`
	Alcohol     *string `json:"alcohol" validate:"omitempty,descriptor"`
	Frightening *string `json:"frightening" validate:"omitempty,descriptor"`
	GenreIDs    []int   `json:"genres" validate:"omitempty,dive,gt=0"`
}

// Apply copies every supplied field of in onto m.
func (in MovieInput) Apply(m *MovieDB) {
	if in.Name != nil {
		m.Name = *in.Name
	}
	if in.ReleaseYear != nil {
		m.ReleaseYear = *in.ReleaseYear
	}
	setIfPresent(&m.Duration, in.Duration)
	setIfPresent(&m.Type, in.Type)
	setIfPresent(&m.Certificate, in.Certificate)
	setIfPresent(&m.Episodes, in.Episodes)
	setIfPresent(&m.Description, in.Description)
	setIfPresent(&m.Nudity, in.Nudity)
	setIfPresent(&m.Violence, in.Violence)
	setIfPresent(&m.Profanity, in.Profanity)
	setIfPresent(&m.Alcohol, in.Alcohol)
	setIfPresent(&m.Frightening, in.Frightening)
}

func setIfPresent[T any](dst **T, v *T) {
	if v != nil {
		c := *v
		*dst = &c
	}
}

// UserMovie records which user created a movie.
type UserMovie struct {
	UserID    uuid.UUID `db:"user_id"`
	MovieID   uuid.UUID `db:"movie_id"`
	CreatedAt time.Time `db:"created_at"`
}
