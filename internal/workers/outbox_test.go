package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sbilibin2017/gw-movie-catalog/internal/metrics"
	"github.com/sbilibin2017/gw-movie-catalog/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type relayMocks struct {
	store  *MockOutboxStore
	movies *MockSnapshotMovieReader
	genres *MockSnapshotGenreReader
	sinkA  *MockSink
	sinkB  *MockSink
}

func newRelayMocks(ctrl *gomock.Controller) relayMocks {
	m := relayMocks{
		store:  NewMockOutboxStore(ctrl),
		movies: NewMockSnapshotMovieReader(ctrl),
		genres: NewMockSnapshotGenreReader(ctrl),
		sinkA:  NewMockSink(ctrl),
		sinkB:  NewMockSink(ctrl),
	}
	m.sinkA.EXPECT().Name().Return("search").AnyTimes()
	m.sinkB.EXPECT().Name().Return("cache").AnyTimes()
	return m
}

func (m relayMocks) relay(opts ...RelayOpt) *Relay {
	return NewRelay(m.store, m.movies, m.genres, []Sink{m.sinkA, m.sinkB}, opts...)
}

func TestRelay_ProcessBatch_Delivers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newRelayMocks(ctrl)

	movieID := uuid.New()
	movie := &models.MovieDB{MovieID: movieID, Name: "Heat", Votes: 2, Rating: 7}
	ev := models.OutboxEvent{EventID: 1, MovieID: movieID, Kind: models.EventMovieUpserted}

	m.store.EXPECT().Claim(gomock.Any(), 5, 3, DefaultLease).Return([]models.OutboxEvent{ev}, nil)
	m.movies.EXPECT().GetByID(gomock.Any(), movieID).Return(movie, nil)
	m.genres.EXPECT().NamesByMovies(gomock.Any(), []uuid.UUID{movieID}).
		Return(map[uuid.UUID][]string{movieID: {"Crime"}}, nil)

	want := Snapshot{Event: ev, Movie: movie, Genres: []string{"Crime"}}
	m.sinkA.EXPECT().Apply(gomock.Any(), want).Return(nil)
	m.sinkB.EXPECT().Apply(gomock.Any(), want).Return(nil)
	m.store.EXPECT().MarkProcessed(gomock.Any(), int64(1)).Return(nil)

	before := testutil.ToFloat64(metrics.OutboxProcessed)

	n, err := m.relay(WithBatchSize(5), WithMaxAttempts(3)).ProcessBatch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.OutboxProcessed))
}

func TestRelay_ProcessBatch_MissingMovieIsDeletion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newRelayMocks(ctrl)

	ev := models.OutboxEvent{EventID: 2, MovieID: uuid.New(), Kind: models.EventMovieUpserted}

	m.store.EXPECT().Claim(gomock.Any(), DefaultBatchSize, DefaultMaxAttempts, DefaultLease).Return([]models.OutboxEvent{ev}, nil)
	m.movies.EXPECT().GetByID(gomock.Any(), ev.MovieID).Return(nil, nil)
	m.sinkA.EXPECT().Apply(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, snap Snapshot) error {
		assert.True(t, snap.Deleted())
		return nil
	})
	m.sinkB.EXPECT().Apply(gomock.Any(), gomock.Any()).Return(nil)
	m.store.EXPECT().MarkProcessed(gomock.Any(), int64(2)).Return(nil)

	_, err := m.relay().ProcessBatch(context.Background())
	require.NoError(t, err)
}

func TestRelay_ProcessBatch_SinkFailureReschedules(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newRelayMocks(ctrl)

	ev := models.OutboxEvent{EventID: 3, MovieID: uuid.New(), Kind: models.EventMovieDeleted, Attempts: 2}

	m.store.EXPECT().Claim(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]models.OutboxEvent{ev}, nil)
	m.movies.EXPECT().GetByID(gomock.Any(), ev.MovieID).Return(nil, nil)
	m.sinkA.EXPECT().Apply(gomock.Any(), gomock.Any()).Return(errors.New("index unavailable"))
	// remaining sinks still run
	m.sinkB.EXPECT().Apply(gomock.Any(), gomock.Any()).Return(nil)
	m.store.EXPECT().MarkFailed(gomock.Any(), int64(3), "search: index unavailable", 4*time.Second).Return(nil)

	before := testutil.ToFloat64(metrics.OutboxFailed.WithLabelValues("search"))

	_, err := m.relay().ProcessBatch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.OutboxFailed.WithLabelValues("search")))
}

func TestRelay_ProcessBatch_SnapshotFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newRelayMocks(ctrl)

	ev := models.OutboxEvent{EventID: 4, MovieID: uuid.New()}

	m.store.EXPECT().Claim(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]models.OutboxEvent{ev}, nil)
	m.movies.EXPECT().GetByID(gomock.Any(), ev.MovieID).Return(nil, errors.New("db down"))
	m.store.EXPECT().MarkFailed(gomock.Any(), int64(4), gomock.Any(), time.Second).Return(nil)

	_, err := m.relay().ProcessBatch(context.Background())
	require.NoError(t, err)
}

func TestRelay_ProcessBatch_ClaimError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newRelayMocks(ctrl)

	m.store.EXPECT().Claim(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	n, err := m.relay().ProcessBatch(context.Background())
	assert.Error(t, err)
	assert.Zero(t, n)
}

func TestRelay_Run_StopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newRelayMocks(ctrl)

	ctx, cancel := context.WithCancel(context.Background())

	polled := make(chan struct{}, 1)
	m.store.EXPECT().Claim(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, int, int, time.Duration) ([]models.OutboxEvent, error) {
			select {
			case polled <- struct{}{}:
			default:
			}
			return nil, nil
		}).MinTimes(1)
	m.store.EXPECT().CountPending(gomock.Any(), DefaultMaxAttempts).Return(0, nil).AnyTimes()

	done := make(chan error, 1)
	go func() { done <- m.relay(WithInterval(5 * time.Millisecond)).Run(ctx) }()

	select {
	case <-polled:
	case <-time.After(2 * time.Second):
		t.Fatal("relay never polled")
	}
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("relay did not stop")
	}
}

func TestRetryDelay(t *testing.T) {
	assert.Equal(t, time.Second, RetryDelay(0))
	assert.Equal(t, 2*time.Second, RetryDelay(1))
	assert.Equal(t, 8*time.Second, RetryDelay(3))
	assert.Equal(t, 256*time.Second, RetryDelay(8))
	assert.Equal(t, 5*time.Minute, RetryDelay(9))
	assert.Equal(t, 5*time.Minute, RetryDelay(40))
}
