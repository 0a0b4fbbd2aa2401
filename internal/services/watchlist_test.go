package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-movie-catalog/internal/models"
	"github.com/sbilibin2017/gw-movie-catalog/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestWatchListService_Add(t *testing.T) {
	userID, movieID := uuid.New(), uuid.New()

	tests := []struct {
		name    string
		movie   *models.MovieDB
		added   bool
		addErr  error
		wantErr error
	}{
		{name: "added", movie: &models.MovieDB{MovieID: movieID}, added: true},
		{name: "movie missing", wantErr: services.ErrMovieNotFound},
		{name: "duplicate", movie: &models.MovieDB{MovieID: movieID}, added: false, wantErr: services.ErrAlreadyInWatchList},
		{name: "store error", movie: &models.MovieDB{MovieID: movieID}, addErr: errors.New("db error"), wantErr: errors.New("db error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			movies := services.NewMockMovieFinder(ctrl)
			store := services.NewMockWatchListStore(ctrl)
			svc := services.NewWatchListService(movies, store)

			movies.EXPECT().GetByID(gomock.Any(), movieID).Return(tt.movie, nil)
			if tt.movie != nil {
				store.EXPECT().Add(gomock.Any(), userID, movieID).Return(tt.added, tt.addErr)
			}

			err := svc.Add(context.Background(), userID, movieID)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWatchListService_RemoveAndList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := services.NewMockWatchListStore(ctrl)
	svc := services.NewWatchListService(services.NewMockMovieFinder(ctrl), store)
	userID, movieID := uuid.New(), uuid.New()

	store.EXPECT().Remove(gomock.Any(), userID, movieID).Return(false, nil)
	assert.ErrorIs(t, svc.Remove(context.Background(), userID, movieID), services.ErrNotInWatchList)

	store.EXPECT().Remove(gomock.Any(), userID, movieID).Return(true, nil)
	assert.NoError(t, svc.Remove(context.Background(), userID, movieID))

	store.EXPECT().List(gomock.Any(), userID).Return([]models.WatchListItem{{MovieID: movieID}}, nil)
	items, err := svc.List(context.Background(), userID)
	assert.NoError(t, err)
	assert.Len(t, items, 1)
}
