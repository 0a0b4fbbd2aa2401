package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-movie-catalog/internal/breaker"
	"github.com/sbilibin2017/gw-movie-catalog/internal/models"
	"github.com/sbilibin2017/gw-movie-catalog/internal/services"
	"github.com/sbilibin2017/gw-movie-catalog/internal/txhooks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type movieMocks struct {
	movies     *services.MockMovieStore
	genres     *services.MockGenreStore
	reviews    *services.MockReviewLister
	outbox     *services.MockOutboxWriter
	thumbnails *services.MockThumbnailSaver
	search     *services.MockMovieSearcher
	cache      *services.MockMovieDetailCache
}

func newMovieMocks(ctrl *gomock.Controller) movieMocks {
	return movieMocks{
		movies:     services.NewMockMovieStore(ctrl),
		genres:     services.NewMockGenreStore(ctrl),
		reviews:    services.NewMockReviewLister(ctrl),
		outbox:     services.NewMockOutboxWriter(ctrl),
		thumbnails: services.NewMockThumbnailSaver(ctrl),
		search:     services.NewMockMovieSearcher(ctrl),
		cache:      services.NewMockMovieDetailCache(ctrl),
	}
}

func (m movieMocks) service(opts ...services.MovieServiceOpt) *services.MovieService {
	return services.NewMovieService(m.movies, m.genres, m.reviews, m.outbox, m.thumbnails, opts...)
}

// generated mocks must keep up with the interfaces they stand in for
var (
	_ services.MovieStore       = (*services.MockMovieStore)(nil)
	_ services.GenreStore       = (*services.MockGenreStore)(nil)
	_ services.MovieSearcher    = (*services.MockMovieSearcher)(nil)
	_ services.MovieDetailCache = (*services.MockMovieDetailCache)(nil)
	_ services.ReviewLister     = (*services.MockReviewLister)(nil)
	_ services.ThumbnailSaver   = (*services.MockThumbnailSaver)(nil)
	_ services.ReviewMovieStore = (*services.MockReviewMovieStore)(nil)
	_ services.ReviewStore      = (*services.MockReviewStore)(nil)
	_ services.OutboxWriter     = (*services.MockOutboxWriter)(nil)
	_ services.DetailEvicter    = (*services.MockDetailEvicter)(nil)
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestMovieService_ListFromSearch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newMovieMocks(ctrl)
	svc := m.service(services.WithSearch(m.search, breaker.Config{Name: "search", FailureThreshold: 1, Timeout: time.Minute}))

	f := models.MovieFilter{Page: 2, Limit: 10}
	found := []models.MovieSummary{{MovieID: uuid.New(), Name: "Heat", Genres: []string{"Crime"}}}
	m.search.EXPECT().List(gomock.Any(), f).Return(found, 11, nil)

	page, err := svc.List(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, 11, page.TotalMovies)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 10, page.Offset)
	assert.Equal(t, found, page.Movies)
}

func TestMovieService_ListFallsBackToDatabase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newMovieMocks(ctrl)
	svc := m.service(services.WithSearch(m.search, breaker.Config{Name: "search", FailureThreshold: 1, Timeout: time.Minute}))

	f := models.MovieFilter{Page: 1, Limit: 20, Search: "heat"}
	id := uuid.New()
	dbMovies := []models.MovieSummary{{MovieID: id, Name: "Heat"}}

	// first call fails and opens the breaker, second call skips the index entirely
	m.search.EXPECT().List(gomock.Any(), f).Return(nil, 0, errors.New("connection refused")).Times(1)
	m.movies.EXPECT().List(gomock.Any(), f).Return(dbMovies, 1, nil).Times(2)
	m.genres.EXPECT().NamesByMovies(gomock.Any(), []uuid.UUID{id}).Return(map[uuid.UUID][]string{id: {"Crime"}}, nil).Times(2)

	for i := 0; i < 2; i++ {
		page, err := svc.List(context.Background(), f)
		require.NoError(t, err)
		assert.Equal(t, 1, page.TotalMovies)
		assert.Equal(t, []string{"Crime"}, page.Movies[0].Genres)
	}
}

func TestMovieService_ListWithoutSearch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newMovieMocks(ctrl)
	svc := m.service()

	f := models.MovieFilter{Page: 1, Limit: 20}
	m.movies.EXPECT().List(gomock.Any(), f).Return([]models.MovieSummary{}, 0, nil)

	page, err := svc.List(context.Background(), f)
	require.NoError(t, err)
	assert.Empty(t, page.Movies)
	assert.Equal(t, 0, page.TotalPages)
}

func TestMovieService_Get(t *testing.T) {
	movieID := uuid.New()

	t.Run("cache hit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMovieMocks(ctrl)
		svc := m.service(services.WithDetailCache(m.cache))

		cached := &models.MovieDetail{MovieDB: models.MovieDB{MovieID: movieID, Name: "Cached"}}
		m.cache.EXPECT().Get(gomock.Any(), movieID).Return(cached, nil)

		got, err := svc.Get(context.Background(), movieID)
		require.NoError(t, err)
		assert.Same(t, cached, got)
	})

	t.Run("cache miss fills cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMovieMocks(ctrl)
		svc := m.service(services.WithDetailCache(m.cache))

		gomock.InOrder(
			m.cache.EXPECT().Get(gomock.Any(), movieID).Return(nil, nil),
			m.cache.EXPECT().Version(gomock.Any(), movieID).Return(int64(4), nil),
			m.movies.EXPECT().GetByID(gomock.Any(), movieID).Return(&models.MovieDB{MovieID: movieID, Name: "Fresh"}, nil),
			m.genres.EXPECT().ListByMovie(gomock.Any(), movieID).Return([]models.Genre{{GenreID: 1, GenreName: "Action"}}, nil),
			m.reviews.EXPECT().ListByMovie(gomock.Any(), movieID).Return([]models.ReviewDB{}, nil),
			m.cache.EXPECT().Set(gomock.Any(), gomock.Any(), int64(4)).Return(false, errors.New("redis down")),
		)

		got, err := svc.Get(context.Background(), movieID)
		require.NoError(t, err)
		assert.Equal(t, "Fresh", got.Name)
		assert.Len(t, got.Genres, 1)
	})

	t.Run("unknown cache version skips fill", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMovieMocks(ctrl)
		svc := m.service(services.WithDetailCache(m.cache))

		m.cache.EXPECT().Get(gomock.Any(), movieID).Return(nil, errors.New("redis down"))
		m.cache.EXPECT().Version(gomock.Any(), movieID).Return(int64(0), errors.New("redis down"))
		m.movies.EXPECT().GetByID(gomock.Any(), movieID).Return(&models.MovieDB{MovieID: movieID, Name: "Fresh"}, nil)
		m.genres.EXPECT().ListByMovie(gomock.Any(), movieID).Return(nil, nil)
		m.reviews.EXPECT().ListByMovie(gomock.Any(), movieID).Return(nil, nil)

		got, err := svc.Get(context.Background(), movieID)
		require.NoError(t, err)
		assert.Equal(t, "Fresh", got.Name)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMovieMocks(ctrl)
		svc := m.service()

		m.movies.EXPECT().GetByID(gomock.Any(), movieID).Return(nil, nil)
		_, err := svc.Get(context.Background(), movieID)
		assert.ErrorIs(t, err, services.ErrMovieNotFound)
	})
}

func TestMovieService_Create(t *testing.T) {
	userID := uuid.New()
	valid := models.MovieInput{Name: strPtr("Heat"), ReleaseYear: intPtr(1995), GenreIDs: []int{1, 5}}
	thumb := &services.Thumbnail{ContentType: "image/png", Content: strings.NewReader("png")}

	t.Run("validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMovieMocks(ctrl)
		svc := m.service()

		_, err := svc.Create(context.Background(), userID, models.MovieInput{ReleaseYear: intPtr(1995)}, thumb)
		assert.ErrorIs(t, err, services.ErrInvalidMovie)

		_, err = svc.Create(context.Background(), userID, models.MovieInput{Name: strPtr("Old"), ReleaseYear: intPtr(1700), GenreIDs: []int{1}}, thumb)
		assert.ErrorIs(t, err, services.ErrInvalidMovie)

		_, err = svc.Create(context.Background(), userID, models.MovieInput{Name: strPtr("No genres"), ReleaseYear: intPtr(2000)}, thumb)
		assert.ErrorIs(t, err, services.ErrInvalidMovie)
	})

	t.Run("unknown genre", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMovieMocks(ctrl)
		svc := m.service()

		m.genres.EXPECT().GetByIDs(gomock.Any(), []int{1, 5}).Return([]models.Genre{{GenreID: 1}}, nil)
		_, err := svc.Create(context.Background(), userID, valid, thumb)
		assert.ErrorIs(t, err, services.ErrInvalidGenres)
	})

	t.Run("thumbnail required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMovieMocks(ctrl)
		svc := m.service()

		m.genres.EXPECT().GetByIDs(gomock.Any(), []int{1, 5}).Return([]models.Genre{{GenreID: 1}, {GenreID: 5}}, nil)
		_, err := svc.Create(context.Background(), userID, valid, nil)
		assert.ErrorIs(t, err, services.ErrThumbnailRequired)
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMovieMocks(ctrl)
		svc := m.service()

		movieID := uuid.New()
		m.genres.EXPECT().GetByIDs(gomock.Any(), []int{1, 5}).Return([]models.Genre{{GenreID: 1}, {GenreID: 5}}, nil)
		m.thumbnails.EXPECT().Save(gomock.Any(), *thumb).Return("/uploads/a.jpg", nil)
		m.movies.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, mv *models.MovieDB) (*models.MovieDB, error) {
			assert.Equal(t, "Heat", mv.Name)
			assert.Equal(t, "/uploads/a.jpg", *mv.ThumbnailURL)
			mv.MovieID = movieID
			return mv, nil
		})
		m.genres.EXPECT().SetMovieGenres(gomock.Any(), movieID, []int{1, 5}).Return(nil)
		m.movies.EXPECT().AddOwner(gomock.Any(), userID, movieID).Return(nil)
		m.outbox.EXPECT().Enqueue(gomock.Any(), movieID, models.EventMovieUpserted).Return(nil)

		created, err := svc.Create(context.Background(), userID, valid, thumb)
		require.NoError(t, err)
		assert.Equal(t, movieID, created.MovieID)
	})

	t.Run("rolled back transaction removes thumbnail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMovieMocks(ctrl)
		svc := m.service()

		m.genres.EXPECT().GetByIDs(gomock.Any(), []int{1, 5}).Return([]models.Genre{{GenreID: 1}, {GenreID: 5}}, nil)
		m.thumbnails.EXPECT().Save(gomock.Any(), gomock.Any()).Return("/uploads/c.jpg", nil)
		m.movies.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, mv *models.MovieDB) (*models.MovieDB, error) {
			mv.MovieID = uuid.New()
			return mv, nil
		})
		m.genres.EXPECT().SetMovieGenres(gomock.Any(), gomock.Any(), []int{1, 5}).Return(nil)
		m.movies.EXPECT().AddOwner(gomock.Any(), userID, gomock.Any()).Return(nil)
		m.outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any(), models.EventMovieUpserted).Return(nil)

		ctx, hooks := txhooks.WithHooks(context.Background())
		_, err := svc.Create(ctx, userID, valid, thumb)
		require.NoError(t, err)

		// the commit itself fails after the service returned
		m.thumbnails.EXPECT().Remove(gomock.Any(), "/uploads/c.jpg").Return(nil)
		hooks.RolledBack(ctx)
	})

	t.Run("database failure removes thumbnail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMovieMocks(ctrl)
		svc := m.service()

		m.genres.EXPECT().GetByIDs(gomock.Any(), []int{1, 5}).Return([]models.Genre{{GenreID: 1}, {GenreID: 5}}, nil)
		m.thumbnails.EXPECT().Save(gomock.Any(), gomock.Any()).Return("/uploads/b.jpg", nil)
		m.movies.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
		m.thumbnails.EXPECT().Remove(gomock.Any(), "/uploads/b.jpg").Return(nil)

		_, err := svc.Create(context.Background(), userID, valid, thumb)
		assert.EqualError(t, err, "db down")
	})
}

func TestMovieService_Update(t *testing.T) {
	userID, movieID := uuid.New(), uuid.New()

	t.Run("not owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMovieMocks(ctrl)
		svc := m.service()

		m.movies.EXPECT().IsOwner(gomock.Any(), userID, movieID).Return(false, nil)
		_, err := svc.Update(context.Background(), userID, movieID, models.MovieInput{}, nil)
		assert.ErrorIs(t, err, services.ErrMovieNotFound)
	})

	t.Run("partial update keeps other fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMovieMocks(ctrl)
		svc := m.service()

		current := &models.MovieDB{MovieID: movieID, Name: "Heat", ReleaseYear: 1995, Description: strPtr("old"), Votes: 3, Rating: 7}
		m.movies.EXPECT().IsOwner(gomock.Any(), userID, movieID).Return(true, nil)
		m.movies.EXPECT().GetByID(gomock.Any(), movieID).Return(current, nil)
		m.movies.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, mv *models.MovieDB) (*models.MovieDB, error) {
			assert.Equal(t, "Heat", mv.Name)
			assert.Equal(t, 170, *mv.Duration)
			assert.Equal(t, "old", *mv.Description)
			return mv, nil
		})
		m.outbox.EXPECT().Enqueue(gomock.Any(), movieID, models.EventMovieUpserted).Return(nil)

		updated, err := svc.Update(context.Background(), userID, movieID, models.MovieInput{Duration: intPtr(170)}, nil)
		require.NoError(t, err)
		assert.Equal(t, 3, updated.Votes)
	})

	t.Run("new thumbnail replaces old file and genres", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMovieMocks(ctrl)
		svc := m.service()

		current := &models.MovieDB{MovieID: movieID, Name: "Heat", ReleaseYear: 1995, ThumbnailURL: strPtr("/uploads/old.jpg")}
		thumb := &services.Thumbnail{ContentType: "image/jpeg", Content: strings.NewReader("jpg")}
		m.movies.EXPECT().IsOwner(gomock.Any(), userID, movieID).Return(true, nil)
		m.movies.EXPECT().GetByID(gomock.Any(), movieID).Return(current, nil)
		m.genres.EXPECT().GetByIDs(gomock.Any(), []int{7}).Return([]models.Genre{{GenreID: 7}}, nil)
		m.thumbnails.EXPECT().Save(gomock.Any(), gomock.Any()).Return("/uploads/new.jpg", nil)
		m.movies.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, mv *models.MovieDB) (*models.MovieDB, error) {
			return mv, nil
		})
		m.genres.EXPECT().SetMovieGenres(gomock.Any(), movieID, []int{7}).Return(nil)
		m.outbox.EXPECT().Enqueue(gomock.Any(), movieID, models.EventMovieUpserted).Return(nil)
		m.thumbnails.EXPECT().Remove(gomock.Any(), "/uploads/old.jpg").Return(nil)

		updated, err := svc.Update(context.Background(), userID, movieID, models.MovieInput{GenreIDs: []int{7}}, thumb)
		require.NoError(t, err)
		assert.Equal(t, "/uploads/new.jpg", *updated.ThumbnailURL)
	})

	t.Run("old thumbnail and cached detail go only after commit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMovieMocks(ctrl)
		svc := m.service(services.WithDetailCache(m.cache))

		current := &models.MovieDB{MovieID: movieID, Name: "Heat", ReleaseYear: 1995, ThumbnailURL: strPtr("/uploads/old.jpg")}
		thumb := &services.Thumbnail{ContentType: "image/jpeg", Content: strings.NewReader("jpg")}
		m.movies.EXPECT().IsOwner(gomock.Any(), userID, movieID).Return(true, nil)
		m.movies.EXPECT().GetByID(gomock.Any(), movieID).Return(current, nil)
		m.thumbnails.EXPECT().Save(gomock.Any(), gomock.Any()).Return("/uploads/new.jpg", nil)
		m.movies.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, mv *models.MovieDB) (*models.MovieDB, error) {
			return mv, nil
		})
		m.outbox.EXPECT().Enqueue(gomock.Any(), movieID, models.EventMovieUpserted).Return(nil)

		ctx, hooks := txhooks.WithHooks(context.Background())
		_, err := svc.Update(ctx, userID, movieID, models.MovieInput{}, thumb)
		require.NoError(t, err)

		gomock.InOrder(
			m.thumbnails.EXPECT().Remove(gomock.Any(), "/uploads/old.jpg").Return(nil),
			m.cache.EXPECT().Delete(gomock.Any(), movieID).Return(nil),
		)
		hooks.Committed(ctx)
	})

	t.Run("failure after saving removes new thumbnail", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newMovieMocks(ctrl)
		svc := m.service()

		current := &models.MovieDB{MovieID: movieID, Name: "Heat", ReleaseYear: 1995, ThumbnailURL: strPtr("/uploads/old.jpg")}
		thumb := &services.Thumbnail{ContentType: "image/jpeg", Content: strings.NewReader("jpg")}
		m.movies.EXPECT().IsOwner(gomock.Any(), userID, movieID).Return(true, nil)
		m.movies.EXPECT().GetByID(gomock.Any(), movieID).Return(current, nil)
		m.thumbnails.EXPECT().Save(gomock.Any(), gomock.Any()).Return("/uploads/new.jpg", nil)
		m.movies.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, mv *models.MovieDB) (*models.MovieDB, error) {
			return mv, nil
		})
		m.outbox.EXPECT().Enqueue(gomock.Any(), movieID, models.EventMovieUpserted).Return(errors.New("db down"))
		m.thumbnails.EXPECT().Remove(gomock.Any(), "/uploads/new.jpg").Return(nil)

		_, err := svc.Update(context.Background(), userID, movieID, models.MovieInput{}, thumb)
		assert.EqualError(t, err, "db down")
	})
}

func TestMovieService_Delete(t *testing.T) {
	userID, movieID := uuid.New(), uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newMovieMocks(ctrl)
	svc := m.service()

	gomock.InOrder(
		m.movies.EXPECT().IsOwner(gomock.Any(), userID, movieID).Return(true, nil),
		m.movies.EXPECT().GetByID(gomock.Any(), movieID).Return(&models.MovieDB{MovieID: movieID, ThumbnailURL: strPtr("/uploads/x.jpg")}, nil),
		m.movies.EXPECT().Delete(gomock.Any(), movieID).Return(nil),
		m.outbox.EXPECT().Enqueue(gomock.Any(), movieID, models.EventMovieDeleted).Return(nil),
		m.thumbnails.EXPECT().Remove(gomock.Any(), "/uploads/x.jpg").Return(nil),
	)

	assert.NoError(t, svc.Delete(context.Background(), userID, movieID))
}

func TestMovieService_DeleteKeepsThumbnailOnRollback(t *testing.T) {
	userID, movieID := uuid.New(), uuid.New()

	for _, committed := range []bool{true, false} {
		ctrl := gomock.NewController(t)
		m := newMovieMocks(ctrl)
		svc := m.service(services.WithDetailCache(m.cache))

		m.movies.EXPECT().IsOwner(gomock.Any(), userID, movieID).Return(true, nil)
		m.movies.EXPECT().GetByID(gomock.Any(), movieID).Return(&models.MovieDB{MovieID: movieID, ThumbnailURL: strPtr("/uploads/x.jpg")}, nil)
		m.movies.EXPECT().Delete(gomock.Any(), movieID).Return(nil)
		m.outbox.EXPECT().Enqueue(gomock.Any(), movieID, models.EventMovieDeleted).Return(nil)

		ctx, hooks := txhooks.WithHooks(context.Background())
		require.NoError(t, svc.Delete(ctx, userID, movieID))

		if committed {
			m.thumbnails.EXPECT().Remove(gomock.Any(), "/uploads/x.jpg").Return(nil)
			m.cache.EXPECT().Delete(gomock.Any(), movieID).Return(nil)
			hooks.Committed(ctx)
		} else {
			// the row survives the rollback, so its file must too
			hooks.RolledBack(ctx)
		}
		ctrl.Finish()
	}
}

func TestMovieService_ListOwnedAndGenres(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newMovieMocks(ctrl)
	svc := m.service()
	userID := uuid.New()

	m.movies.EXPECT().ListByOwner(gomock.Any(), userID).Return([]models.MovieDB{{Name: "Mine"}}, nil)
	owned, err := svc.ListOwned(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, owned, 1)

	m.genres.EXPECT().List(gomock.Any()).Return([]models.Genre{{GenreID: 1, GenreName: "Action"}}, nil)
	genres, err := svc.Genres(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Action", genres[0].GenreName)
}
