package models

// Genre is static reference data seeded with the schema.
type Genre struct {
	GenreID   int    `json:"genreID" db:"genre_id"`
	GenreName string `json:"genreName" db:"genre_name"`
}
