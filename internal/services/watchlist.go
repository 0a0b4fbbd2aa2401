package services

//go:generate mockgen -source=watchlist.go -destination=watchlist_mock.go -package=services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-movie-catalog/internal/logger"
	"github.com/sbilibin2017/gw-movie-catalog/internal/models"
)

var (
	ErrAlreadyInWatchList = errors.New("movie is already in the watchlist")
	ErrNotInWatchList     = errors.New("movie is not in the watchlist")
)

// MovieFinder looks movies up by id.
type MovieFinder interface {
	GetByID(ctx context.Context, movieID uuid.UUID) (*models.MovieDB, error)
}

// WatchListStore persists watchlist entries.
type WatchListStore interface {
	Add(ctx context.Context, userID, movieID uuid.UUID) (bool, error)
	Remove(ctx context.Context, userID, movieID uuid.UUID) (bool, error)
	List(ctx context.Context, userID uuid.UUID) ([]models.WatchListItem, error)
}

type WatchListService struct {
	movies MovieFinder
	store  WatchListStore
}

func NewWatchListService(movies MovieFinder, store WatchListStore) *WatchListService {
	return &WatchListService{movies: movies, store: store}
}

// Add saves a movie to the watchlist of userID.
func (s *WatchListService) Add(ctx context.Context, userID, movieID uuid.UUID) error {
	movie, err := s.movies.GetByID(ctx, movieID)
	if err != nil {
		logger.Log.Errorw("failed to get movie", "movieID", movieID, "error", err)
		return err
	}
	if movie == nil {
		return ErrMovieNotFound
	}

	added, err := s.store.Add(ctx, userID, movieID)
	if err != nil {
		logger.Log.Errorw("failed to add to watchlist", "userID", userID, "movieID", movieID, "error", err)
		return err
	}
	if !added {
		return ErrAlreadyInWatchList
	}
	return nil
}

// Remove deletes a movie from the watchlist of userID.
func (s *WatchListService) Remove(ctx context.Context, userID, movieID uuid.UUID) error {
	removed, err := s.store.Remove(ctx, userID, movieID)
	if err != nil {
		logger.Log.Errorw("failed to remove from watchlist", "userID", userID, "movieID", movieID, "error", err)
		return err
	}
	if !removed {
		return ErrNotInWatchList
	}
	return nil
}

// List returns the watchlist of userID, most recently added first.
func (s *WatchListService) List(ctx context.Context, userID uuid.UUID) ([]models.WatchListItem, error) {
	items, err := s.store.List(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list watchlist", "userID", userID, "error", err)
		return nil, err
	}
	return items, nil
}
