package services

//go:generate mockgen -source=ranking.go -destination=ranking_mock.go -package=services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-movie-catalog/internal/logger"
	"github.com/sbilibin2017/gw-movie-catalog/internal/models"
)

// DefaultRankingLimit and MaxRankingLimit bound ranking sizes.
const (
	DefaultRankingLimit = 10
	MaxRankingLimit     = 100
)

// RankingReader reads movie ids ordered by rank.
type RankingReader interface {
	Top(ctx context.Context, limit int) ([]uuid.UUID, error)
	Popular(ctx context.Context, limit int) ([]uuid.UUID, error)
}

// SummaryReader loads movie summaries in the order of the given ids.
type SummaryReader interface {
	GetSummaries(ctx context.Context, ids []uuid.UUID) ([]models.MovieSummary, error)
}

// GenreNamer resolves genre names of several movies at once.
type GenreNamer interface {
	NamesByMovies(ctx context.Context, movieIDs []uuid.UUID) (map[uuid.UUID][]string, error)
}

// RankingService serves the top rated and most voted movies.
type RankingService struct {
	ranking RankingReader
	movies  SummaryReader
	genres  GenreNamer
}

func NewRankingService(ranking RankingReader, movies SummaryReader, genres GenreNamer) *RankingService {
	return &RankingService{ranking: ranking, movies: movies, genres: genres}
}

// Top returns movies ordered by mean rating, highest first.
func (s *RankingService) Top(ctx context.Context, limit int) ([]models.MovieSummary, error) {
	return s.load(ctx, "top", limit, s.ranking.Top)
}

// Popular returns movies ordered by number of votes, highest first.
func (s *RankingService) Popular(ctx context.Context, limit int) ([]models.MovieSummary, error) {
	return s.load(ctx, "popular", limit, s.ranking.Popular)
}

func (s *RankingService) load(ctx context.Context, name string, limit int, read func(context.Context, int) ([]uuid.UUID, error)) ([]models.MovieSummary, error) {
	if limit <= 0 {
		limit = DefaultRankingLimit
	}
	if limit > MaxRankingLimit {
		limit = MaxRankingLimit
	}

	ids, err := read(ctx, limit)
	if err != nil {
		logger.Log.Errorw("failed to read ranking", "ranking", name, "error", err)
		return nil, err
	}

	movies, err := s.movies.GetSummaries(ctx, ids)
	if err != nil {
		logger.Log.Errorw("failed to load ranked movies", "ranking", name, "error", err)
		return nil, err
	}
	if err := attachGenres(ctx, s.genres, movies); err != nil {
		return nil, err
	}
	return movies, nil
}

// attachGenres fills the genre names of every summary in place.
func attachGenres(ctx context.Context, genres GenreNamer, movies []models.MovieSummary) error {
	if len(movies) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(movies))
	for i, m := range movies {
		ids[i] = m.MovieID
	}
	names, err := genres.NamesByMovies(ctx, ids)
	if err != nil {
		logger.Log.Errorw("failed to load genre names", "error", err)
		return err
	}
	for i := range movies {
		movies[i].Genres = names[movies[i].MovieID]
		if movies[i].Genres == nil {
			movies[i].Genres = []string{}
		}
	}
	return nil
}
