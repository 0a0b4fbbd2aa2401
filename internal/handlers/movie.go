package handlers

//go:generate mockgen -source=movie.go -destination=movie_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-movie-catalog/internal/models"
	"github.com/sbilibin2017/gw-movie-catalog/internal/services"
	"github.com/sbilibin2017/gw-movie-catalog/internal/validation"
)

// Listing pagination defaults.
const (
	DefaultPage  = 1
	DefaultLimit = 20
)

// MovieLister serves the paginated catalogue.
type MovieLister interface {
	List(ctx context.Context, f models.MovieFilter) (*models.MoviePage, error)
}

// MovieRanker serves the top rated and most voted rankings.
type MovieRanker interface {
	Top(ctx context.Context, limit int) ([]models.MovieSummary, error)
	Popular(ctx context.Context, limit int) ([]models.MovieSummary, error)
}

// GenreLister returns the genre reference data.
type GenreLister interface {
	Genres(ctx context.Context) ([]models.Genre, error)
}

// MovieGetter loads one movie with genres and reviews.
type MovieGetter interface {
	Get(ctx context.Context, movieID uuid.UUID) (*models.MovieDetail, error)
}

// MovieCreator stores a new movie for the caller.
type MovieCreator interface {
	Create(ctx context.Context, userID uuid.UUID, in models.MovieInput, thumb *services.Thumbnail) (*models.MovieDB, error)
}

// MovieUpdater updates a movie owned by the caller.
type MovieUpdater interface {
	Update(ctx context.Context, userID, movieID uuid.UUID, in models.MovieInput, thumb *services.Thumbnail) (*models.MovieDB, error)
}

// MovieDeleter deletes a movie owned by the caller.
type MovieDeleter interface {
	Delete(ctx context.Context, userID, movieID uuid.UUID) error
}

// OwnedMovieLister lists the movies created by the caller.
type OwnedMovieLister interface {
	ListOwned(ctx context.Context, userID uuid.UUID) ([]models.MovieDB, error)
}

// MovieResponse wraps a single movie
// swagger:model MovieResponse
type MovieResponse struct {
	// Success message
	// example: Movie updated successfully
	Message string          `json:"message"`
	Movie   *models.MovieDB `json:"movie"`
}

// MoviesResponse wraps a list of movies
// swagger:model MoviesResponse
type MoviesResponse struct {
	Movies any `json:"movies"`
}

// GenresResponse wraps the genre list
// swagger:model GenresResponse
type GenresResponse struct {
	Genres []models.Genre `json:"genres"`
}

// NewListMoviesHandler returns an HTTP handler for the movie catalogue.
// @Summary List movies
// @Description Paginated listing with optional genre, rating bucket, type, certificate and text search filters
// @Tags movies
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Param genre query string false "Genre name"
// @Param rating query string false "Rating bucket: 1 (>=8), 2 (5-8), 3 (<5)"
// @Param type query string false "Movie type"
// @Param certificate query string false "Certificate"
// @Param search query string false "Text matched against name and description"
// @Success 200 {object} models.MoviePage
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /movies [get]
func NewListMoviesHandler(svc MovieLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := parseMovieFilter(r)
		if err != nil {
			writeValidationError(w, err)
			return
		}
		if err := validation.Struct(f); err != nil {
			writeValidationError(w, err)
			return
		}

		page, err := svc.List(r.Context(), f)
		if err != nil {
			writeInternalError(w, "failed to list movies", err)
			return
		}
		writeJSON(w, http.StatusOK, page)
	}
}

func parseMovieFilter(r *http.Request) (models.MovieFilter, error) {
	q := r.URL.Query()
	f := models.MovieFilter{
		Page:        DefaultPage,
		Limit:       DefaultLimit,
		Genre:       q.Get("genre"),
		Rating:      q.Get("rating"),
		Type:        q.Get("type"),
		Certificate: q.Get("certificate"),
		Search:      q.Get("search"),
	}

	var errs []validation.FieldError
	for name, dst := range map[string]*int{"page": &f.Page, "limit": &f.Limit} {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, validation.FieldError{Field: name, Tag: "number", Message: name + " must be an integer"})
			continue
		}
		*dst = n
	}
	if len(errs) > 0 {
		return f, &validation.Error{Fields: errs}
	}
	return f, nil
}

// NewTopMoviesHandler returns an HTTP handler for the highest rated movies.
// @Summary Top rated movies
// @Tags movies
// @Produce json
// @Param limit query int false "Number of movies" default(10)
// @Success 200 {object} handlers.MoviesResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /movies/top [get]
func NewTopMoviesHandler(svc MovieRanker) http.HandlerFunc {
	return newRankingHandler("top", svc.Top)
}

// NewPopularMoviesHandler returns an HTTP handler for the most voted movies.
// @Summary Most popular movies
// @Tags movies
// @Produce json
// @Param limit query int false "Number of movies" default(10)
// @Success 200 {object} handlers.MoviesResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /movies/popular [get]
func NewPopularMoviesHandler(svc MovieRanker) http.HandlerFunc {
	return newRankingHandler("popular", svc.Popular)
}

func newRankingHandler(name string, read func(context.Context, int) ([]models.MovieSummary, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 {
				writeError(w, http.StatusBadRequest, "limit must be a positive integer")
				return
			}
			limit = n
		}

		movies, err := read(r.Context(), limit)
		if err != nil {
			writeInternalError(w, "failed to load ranking", err, "ranking", name)
			return
		}
		writeJSON(w, http.StatusOK, MoviesResponse{Movies: movies})
	}
}

// NewGenresHandler returns an HTTP handler listing genres.
// @Summary List genres
// @Tags movies
// @Produce json
// @Success 200 {object} handlers.GenresResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /genres [get]
func NewGenresHandler(svc GenreLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		genres, err := svc.Genres(r.Context())
		if err != nil {
			writeInternalError(w, "failed to list genres", err)
			return
		}
		writeJSON(w, http.StatusOK, GenresResponse{Genres: genres})
	}
}

// NewGetMovieHandler returns an HTTP handler for one movie with its genres and reviews.
// @Summary Movie details
// @Tags movies
// @Produce json
// @Param id path string true "Movie ID"
// @Success 200 {object} models.MovieDetail
// @Failure 400 {object} handlers.ErrorResponse "Invalid movie ID"
// @Failure 404 {object} handlers.ErrorResponse "Movie not found"
// @Failure 500 {object} handlers.ErrorResponse
// @Router /movie/{id} [get]
func NewGetMovieHandler(svc MovieGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		movieID, err := uuidParam(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid movie ID")
			return
		}

		detail, err := svc.Get(r.Context(), movieID)
		if err != nil {
			if errors.Is(err, services.ErrMovieNotFound) {
				writeError(w, http.StatusNotFound, "Movie not found")
				return
			}
			writeInternalError(w, "failed to get movie", err, "movieID", movieID)
			return
		}
		writeJSON(w, http.StatusOK, detail)
	}
}

// NewCreateMovieHandler returns an HTTP handler creating a movie owned by the caller.
// @Summary Create movie
// @Description Multipart form with movie fields, genres (repeated field or JSON array) and a thumbnail image
// @Tags usermovie
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Movie name"
// @Param releaseYear formData int true "Release year"
// @Param genres formData []int true "Genre ids"
// @Param thumbnail formData file true "Thumbnail image"
// @Success 201 {object} models.MovieDB
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 413 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /usermovie [post]
// @Security BearerAuth
func NewCreateMovieHandler(svc MovieCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		form, err := parseMovieForm(r)
		if err != nil {
			writeValidationError(w, err)
			return
		}
		defer form.Close()
		if err := validation.Struct(form.Input); err != nil {
			writeValidationError(w, err)
			return
		}

		movie, err := svc.Create(r.Context(), userID, form.Input, form.Thumbnail)
		if err != nil {
			writeMovieError(w, err, "failed to create movie", uuid.Nil)
			return
		}
		writeJSON(w, http.StatusCreated, movie)
	}
}

// NewUpdateMovieHandler returns an HTTP handler updating a movie owned by the caller.
// @Summary Update movie
// @Description Accepts a JSON body or a multipart form with an optional new thumbnail
// @Tags usermovie
// @Accept json,multipart/form-data
// @Produce json
// @Param id path string true "Movie ID"
// @Param request body models.MovieInput false "Fields to change"
// @Success 200 {object} handlers.MovieResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse "Movie not found or not owned by the caller"
// @Failure 500 {object} handlers.ErrorResponse
// @Router /usermovie/{id} [put]
// @Security BearerAuth
func NewUpdateMovieHandler(svc MovieUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		movieID, err := uuidParam(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid movie ID")
			return
		}

		form, err := parseMovieForm(r)
		if err != nil {
			writeValidationError(w, err)
			return
		}
		defer form.Close()
		if err := validation.Struct(form.Input); err != nil {
			writeValidationError(w, err)
			return
		}

		movie, err := svc.Update(r.Context(), userID, movieID, form.Input, form.Thumbnail)
		if err != nil {
			writeMovieError(w, err, "failed to update movie", movieID)
			return
		}
		writeJSON(w, http.StatusOK, MovieResponse{Message: "Movie updated successfully", Movie: movie})
	}
}

// NewDeleteMovieHandler returns an HTTP handler deleting a movie owned by the caller.
// @Summary Delete movie
// @Tags usermovie
// @Produce json
// @Param id path string true "Movie ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse "Movie not found or not owned by the caller"
// @Failure 500 {object} handlers.ErrorResponse
// @Router /usermovie/{id} [delete]
// @Security BearerAuth
func NewDeleteMovieHandler(svc MovieDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		movieID, err := uuidParam(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid movie ID")
			return
		}

		if err := svc.Delete(r.Context(), userID, movieID); err != nil {
			writeMovieError(w, err, "failed to delete movie", movieID)
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Movie successfully deleted"})
	}
}

// NewOwnedMoviesHandler returns an HTTP handler listing the caller's movies.
// @Summary Movies created by the caller
// @Tags usermovie
// @Produce json
// @Success 200 {object} handlers.MoviesResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /usermovie [get]
// @Security BearerAuth
func NewOwnedMoviesHandler(svc OwnedMovieLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		movies, err := svc.ListOwned(r.Context(), userID)
		if err != nil {
			writeInternalError(w, "failed to list owned movies", err, "userID", userID)
			return
		}
		if movies == nil {
			movies = []models.MovieDB{}
		}
		writeJSON(w, http.StatusOK, MoviesResponse{Movies: movies})
	}
}

func writeMovieError(w http.ResponseWriter, err error, msg string, movieID uuid.UUID) {
	switch {
	case errors.Is(err, services.ErrMovieNotFound):
		writeError(w, http.StatusNotFound, "Movie not found")
	case errors.Is(err, services.ErrInvalidMovie),
		errors.Is(err, services.ErrInvalidGenres),
		errors.Is(err, services.ErrThumbnailRequired),
		errors.Is(err, services.ErrInvalidThumbnail):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrThumbnailTooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, err.Error())
	default:
		writeInternalError(w, msg, err, "movieID", movieID)
	}
}
