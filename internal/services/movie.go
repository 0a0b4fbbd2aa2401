package services

//go:generate mockgen -source=movie.go -destination=movie_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-movie-catalog/internal/breaker"
	"github.com/sbilibin2017/gw-movie-catalog/internal/logger"
	"github.com/sbilibin2017/gw-movie-catalog/internal/metrics"
	"github.com/sbilibin2017/gw-movie-catalog/internal/models"
	"github.com/sbilibin2017/gw-movie-catalog/internal/txhooks"
	"github.com/sony/gobreaker/v2"
)

var (
	ErrInvalidMovie  = errors.New("invalid movie")
	ErrInvalidGenres = errors.New("unknown genre")
)

// MovieStore persists movies and their ownership.
type MovieStore interface {
	GetByID(ctx context.Context, movieID uuid.UUID) (*models.MovieDB, error)
	Create(ctx context.Context, movie *models.MovieDB) (*models.MovieDB, error)
	Update(ctx context.Context, movie *models.MovieDB) (*models.MovieDB, error)
	Delete(ctx context.Context, movieID uuid.UUID) error
	AddOwner(ctx context.Context, userID, movieID uuid.UUID) error
	IsOwner(ctx context.Context, userID, movieID uuid.UUID) (bool, error)
	ListByOwner(ctx context.Context, userID uuid.UUID) ([]models.MovieDB, error)
	List(ctx context.Context, f models.MovieFilter) ([]models.MovieSummary, int, error)
}

// GenreStore reads genres and maintains movie genre links.
type GenreStore interface {
	List(ctx context.Context) ([]models.Genre, error)
	GetByIDs(ctx context.Context, ids []int) ([]models.Genre, error)
	SetMovieGenres(ctx context.Context, movieID uuid.UUID, genreIDs []int) error
	ListByMovie(ctx context.Context, movieID uuid.UUID) ([]models.Genre, error)
	NamesByMovies(ctx context.Context, movieIDs []uuid.UUID) (map[uuid.UUID][]string, error)
}

// MovieSearcher serves listings from the search index.
type MovieSearcher interface {
	List(ctx context.Context, f models.MovieFilter) ([]models.MovieSummary, int, error)
}

// MovieDetailCache caches movie detail responses. Set only stores the detail
// when the version read before loading it is still current.
type MovieDetailCache interface {
	Get(ctx context.Context, movieID uuid.UUID) (*models.MovieDetail, error)
	Version(ctx context.Context, movieID uuid.UUID) (int64, error)
	Set(ctx context.Context, detail *models.MovieDetail, version int64) (bool, error)
	Delete(ctx context.Context, movieID uuid.UUID) error
}

// ReviewLister lists the reviews of a movie.
type ReviewLister interface {
	ListByMovie(ctx context.Context, movieID uuid.UUID) ([]models.ReviewDB, error)
}

// ThumbnailSaver stores uploaded thumbnails.
type ThumbnailSaver interface {
	Save(ctx context.Context, t Thumbnail) (string, error)
	Remove(ctx context.Context, url string) error
}

type searchPage struct {
	movies []models.MovieSummary
	total  int
}

// MovieService manages the catalogue. Writes must run inside the request transaction.
type MovieService struct {
	movies     MovieStore
	genres     GenreStore
	reviews    ReviewLister
	outbox     OutboxWriter
	thumbnails ThumbnailSaver

	search  MovieSearcher
	breaker *gobreaker.CircuitBreaker[searchPage]
	cache   MovieDetailCache
}

// MovieServiceOpt configures optional backends of a MovieService.
type MovieServiceOpt func(*MovieService)

// WithSearch serves listings from the search index, guarded by a circuit breaker.
// The database answers whenever the index fails or the breaker is open.
func WithSearch(search MovieSearcher, cfg breaker.Config) MovieServiceOpt {
	return func(s *MovieService) {
		s.search = search
		s.breaker = breaker.New[searchPage](cfg)
	}
}

// WithDetailCache serves movie details from cache when present.
func WithDetailCache(cache MovieDetailCache) MovieServiceOpt {
	return func(s *MovieService) {
		s.cache = cache
	}
}

func NewMovieService(
	movies MovieStore,
	genres GenreStore,
	reviews ReviewLister,
	outbox OutboxWriter,
	thumbnails ThumbnailSaver,
	opts ...MovieServiceOpt,
) *MovieService {
	s := &MovieService{
		movies:     movies,
		genres:     genres,
		reviews:    reviews,
		outbox:     outbox,
		thumbnails: thumbnails,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns one page of the catalogue.
func (s *MovieService) List(ctx context.Context, f models.MovieFilter) (*models.MoviePage, error) {
	if s.search != nil {
		page, err := s.breaker.Execute(func() (searchPage, error) {
			movies, total, err := s.search.List(ctx, f)
			return searchPage{movies: movies, total: total}, err
		})
		if err == nil {
			return models.NewMoviePage(f, page.total, page.movies), nil
		}
		logger.Log.Warnw("search index unavailable, listing from database", "error", err)
		metrics.SearchFallbacks.Inc()
	}

	movies, total, err := s.movies.List(ctx, f)
	if err != nil {
		logger.Log.Errorw("failed to list movies", "error", err)
		return nil, err
	}
	if err := attachGenres(ctx, s.genres, movies); err != nil {
		return nil, err
	}
	return models.NewMoviePage(f, total, movies), nil
}

// Get returns a movie with its genres and reviews.
func (s *MovieService) Get(ctx context.Context, movieID uuid.UUID) (*models.MovieDetail, error) {
	if s.cache != nil {
		detail, err := s.cache.Get(ctx, movieID)
		if err != nil {
			logger.Log.Warnw("movie cache read failed", "movieID", movieID, "error", err)
		}
		if detail != nil {
			return detail, nil
		}
	}

	// read before loading so an eviction committed meanwhile wins over this fill
	version, versionErr := int64(0), error(nil)
	if s.cache != nil {
		version, versionErr = s.cache.Version(ctx, movieID)
		if versionErr != nil {
			logger.Log.Warnw("movie cache version read failed", "movieID", movieID, "error", versionErr)
		}
	}

	movie, err := s.movies.GetByID(ctx, movieID)
	if err != nil {
		logger.Log.Errorw("failed to get movie", "movieID", movieID, "error", err)
		return nil, err
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	genres, err := s.genres.ListByMovie(ctx, movieID)
	if err != nil {
		logger.Log.Errorw("failed to get movie genres", "movieID", movieID, "error", err)
		return nil, err
	}
	reviews, err := s.reviews.ListByMovie(ctx, movieID)
	if err != nil {
		logger.Log.Errorw("failed to get movie reviews", "movieID", movieID, "error", err)
		return nil, err
	}

	detail := &models.MovieDetail{MovieDB: *movie, Genres: genres, Reviews: reviews}
	if s.cache != nil && versionErr == nil {
		stored, err := s.cache.Set(ctx, detail, version)
		if err != nil {
			logger.Log.Warnw("movie cache write failed", "movieID", movieID, "error", err)
		} else if !stored {
			logger.Log.Debugw("movie cache fill skipped", "movieID", movieID, "version", version)
		}
	}
	return detail, nil
}

// Create stores a new movie owned by userID.
func (s *MovieService) Create(ctx context.Context, userID uuid.UUID, in models.MovieInput, thumb *Thumbnail) (*models.MovieDB, error) {
	if in.Name == nil || *in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidMovie)
	}
	if in.ReleaseYear == nil {
		return nil, fmt.Errorf("%w: releaseYear is required", ErrInvalidMovie)
	}
	if err := checkReleaseYear(*in.ReleaseYear); err != nil {
		return nil, err
	}
	if len(in.GenreIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one genre is required", ErrInvalidMovie)
	}
	if err := s.checkGenres(ctx, in.GenreIDs); err != nil {
		return nil, err
	}
	if thumb == nil {
		return nil, ErrThumbnailRequired
	}

	url, err := s.thumbnails.Save(ctx, *thumb)
	if err != nil {
		return nil, err
	}
	txhooks.AfterRollback(ctx, func(ctx context.Context) {
		s.removeThumbnail(ctx, url)
	})

	movie := &models.MovieDB{}
	in.Apply(movie)
	movie.ThumbnailURL = &url

	created, err := s.persistNew(ctx, userID, movie, in.GenreIDs)
	if err != nil {
		s.removeThumbnail(ctx, url)
		return nil, err
	}

	logger.Log.Infow("movie created", "movieID", created.MovieID, "userID", userID)
	return created, nil
}

func (s *MovieService) persistNew(ctx context.Context, userID uuid.UUID, movie *models.MovieDB, genreIDs []int) (*models.MovieDB, error) {
	created, err := s.movies.Create(ctx, movie)
	if err != nil {
		logger.Log.Errorw("failed to create movie", "error", err)
		return nil, err
	}
	if err := s.genres.SetMovieGenres(ctx, created.MovieID, genreIDs); err != nil {
		logger.Log.Errorw("failed to link genres", "movieID", created.MovieID, "error", err)
		return nil, err
	}
	if err := s.movies.AddOwner(ctx, userID, created.MovieID); err != nil {
		logger.Log.Errorw("failed to record owner", "movieID", created.MovieID, "error", err)
		return nil, err
	}
	if err := s.outbox.Enqueue(ctx, created.MovieID, models.EventMovieUpserted); err != nil {
		logger.Log.Errorw("failed to enqueue movie event", "movieID", created.MovieID, "error", err)
		return nil, err
	}
	return created, nil
}

// Update changes the supplied fields of a movie owned by userID.
// A non-empty genre list replaces the genre set. A replaced thumbnail file is
// removed once the transaction commits.
func (s *MovieService) Update(ctx context.Context, userID, movieID uuid.UUID, in models.MovieInput, thumb *Thumbnail) (updated *models.MovieDB, err error) {
	movie, err := s.owned(ctx, userID, movieID)
	if err != nil {
		return nil, err
	}
	if in.Name != nil && *in.Name == "" {
		return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidMovie)
	}
	if in.ReleaseYear != nil {
		if err := checkReleaseYear(*in.ReleaseYear); err != nil {
			return nil, err
		}
	}
	if len(in.GenreIDs) > 0 {
		if err := s.checkGenres(ctx, in.GenreIDs); err != nil {
			return nil, err
		}
	}

	oldThumbnail := movie.ThumbnailURL
	in.Apply(movie)
	if thumb != nil {
		url, saveErr := s.thumbnails.Save(ctx, *thumb)
		if saveErr != nil {
			return nil, saveErr
		}
		movie.ThumbnailURL = &url
		txhooks.AfterRollback(ctx, func(ctx context.Context) {
			s.removeThumbnail(ctx, url)
		})
		defer func() {
			if err != nil {
				s.removeThumbnail(ctx, url)
			}
		}()
	}

	updated, err = s.movies.Update(ctx, movie)
	if err != nil {
		logger.Log.Errorw("failed to update movie", "movieID", movieID, "error", err)
		return nil, err
	}
	if len(in.GenreIDs) > 0 {
		if err := s.genres.SetMovieGenres(ctx, movieID, in.GenreIDs); err != nil {
			logger.Log.Errorw("failed to link genres", "movieID", movieID, "error", err)
			return nil, err
		}
	}
	if err := s.outbox.Enqueue(ctx, movieID, models.EventMovieUpserted); err != nil {
		logger.Log.Errorw("failed to enqueue movie event", "movieID", movieID, "error", err)
		return nil, err
	}

	if thumb != nil && oldThumbnail != nil {
		old := *oldThumbnail
		txhooks.AfterCommit(ctx, func(ctx context.Context) {
			s.removeThumbnail(ctx, old)
		})
	}
	evictAfterCommit(ctx, s.cache, movieID)

	logger.Log.Infow("movie updated", "movieID", movieID, "userID", userID)
	return updated, nil
}

// Delete removes a movie owned by userID together with its reviews,
// genre links and watchlist entries.
func (s *MovieService) Delete(ctx context.Context, userID, movieID uuid.UUID) error {
	movie, err := s.owned(ctx, userID, movieID)
	if err != nil {
		return err
	}

	if err := s.movies.Delete(ctx, movieID); err != nil {
		logger.Log.Errorw("failed to delete movie", "movieID", movieID, "error", err)
		return err
	}
	if err := s.outbox.Enqueue(ctx, movieID, models.EventMovieDeleted); err != nil {
		logger.Log.Errorw("failed to enqueue movie event", "movieID", movieID, "error", err)
		return err
	}

	if movie.ThumbnailURL != nil {
		url := *movie.ThumbnailURL
		txhooks.AfterCommit(ctx, func(ctx context.Context) {
			s.removeThumbnail(ctx, url)
		})
	}
	evictAfterCommit(ctx, s.cache, movieID)

	logger.Log.Infow("movie deleted", "movieID", movieID, "userID", userID)
	return nil
}

// ListOwned returns the movies created by userID, newest first.
func (s *MovieService) ListOwned(ctx context.Context, userID uuid.UUID) ([]models.MovieDB, error) {
	movies, err := s.movies.ListByOwner(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list owned movies", "userID", userID, "error", err)
		return nil, err
	}
	return movies, nil
}

// Genres returns every genre.
func (s *MovieService) Genres(ctx context.Context) ([]models.Genre, error) {
	genres, err := s.genres.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list genres", "error", err)
		return nil, err
	}
	return genres, nil
}

// owned returns the movie when userID created it. Movies of other users are
// reported as missing.
func (s *MovieService) owned(ctx context.Context, userID, movieID uuid.UUID) (*models.MovieDB, error) {
	isOwner, err := s.movies.IsOwner(ctx, userID, movieID)
	if err != nil {
		logger.Log.Errorw("failed to check ownership", "movieID", movieID, "userID", userID, "error", err)
		return nil, err
	}
	if !isOwner {
		return nil, ErrMovieNotFound
	}

	movie, err := s.movies.GetByID(ctx, movieID)
	if err != nil {
		logger.Log.Errorw("failed to get movie", "movieID", movieID, "error", err)
		return nil, err
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}
	return movie, nil
}

func (s *MovieService) removeThumbnail(ctx context.Context, url string) {
	if err := s.thumbnails.Remove(ctx, url); err != nil {
		logger.Log.Warnw("failed to remove thumbnail", "url", url, "error", err)
	}
}

func (s *MovieService) checkGenres(ctx context.Context, ids []int) error {
	unique := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		unique[id] = struct{}{}
	}
	known, err := s.genres.GetByIDs(ctx, ids)
	if err != nil {
		logger.Log.Errorw("failed to check genres", "error", err)
		return err
	}
	if len(known) != len(unique) {
		return ErrInvalidGenres
	}
	return nil
}

func checkReleaseYear(year int) error {
	if year < 1880 || year > time.Now().Year() {
		return fmt.Errorf("%w: releaseYear must be between 1880 and %d", ErrInvalidMovie, time.Now().Year())
	}
	return nil
}
