package services

//go:generate mockgen -source=review.go -destination=review_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-movie-catalog/internal/logger"
	"github.com/sbilibin2017/gw-movie-catalog/internal/metrics"
	"github.com/sbilibin2017/gw-movie-catalog/internal/models"
	"github.com/sbilibin2017/gw-movie-catalog/internal/txhooks"
	"github.com/sbilibin2017/gw-movie-catalog/internal/validation"
)

var (
	ErrMovieNotFound  = errors.New("movie not found")
	ErrReviewNotFound = errors.New("review not found")
	ErrInvalidRating  = errors.New("rating must be an integer between 1 and 10")
	ErrEmptyReview    = errors.New("review must carry a rating or a text")
)

// ReviewMovieStore reads and locks movies and writes their aggregate.
type ReviewMovieStore interface {
	GetByID(ctx context.Context, movieID uuid.UUID) (*models.MovieDB, error)
	LockByID(ctx context.Context, movieID uuid.UUID) (*models.MovieDB, error)
	UpdateAggregate(ctx context.Context, movieID uuid.UUID, agg models.Aggregate) error
}

// ReviewStore persists reviews.
type ReviewStore interface {
	GetByUserAndMovie(ctx context.Context, userID, movieID uuid.UUID) (*models.ReviewDB, error)
	Upsert(ctx context.Context, review *models.ReviewDB) (*models.ReviewDB, bool, error)
	Delete(ctx context.Context, reviewID, movieID, userID uuid.UUID) (bool, error)
	ListByMovie(ctx context.Context, movieID uuid.UUID) ([]models.ReviewDB, error)
	Ratings(ctx context.Context, movieID uuid.UUID) ([]int, error)
}

// OutboxWriter records movie changes for the relay.
type OutboxWriter interface {
	Enqueue(ctx context.Context, movieID uuid.UUID, kind models.EventKind) error
}

// DetailEvicter drops cached movie details.
type DetailEvicter interface {
	Delete(ctx context.Context, movieID uuid.UUID) error
}

// ReviewService owns reviews and keeps the rating aggregate of each movie equal
// to a fresh aggregation of its reviews. Every mutation must run inside the
// request transaction.
type ReviewService struct {
	movies  ReviewMovieStore
	reviews ReviewStore
	outbox  OutboxWriter
	details DetailEvicter
}

// ReviewServiceOpt configures optional backends of a ReviewService.
type ReviewServiceOpt func(*ReviewService)

// WithDetailEviction evicts the cached detail of a movie once a review change
// commits.
func WithDetailEviction(details DetailEvicter) ReviewServiceOpt {
	return func(s *ReviewService) {
		s.details = details
	}
}

func NewReviewService(movies ReviewMovieStore, reviews ReviewStore, outbox OutboxWriter, opts ...ReviewServiceOpt) *ReviewService {
	s := &ReviewService{
		movies:  movies,
		reviews: reviews,
		outbox:  outbox,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit creates the review of userID for movieID or updates the existing one.
// created reports whether a new review was stored.
func (s *ReviewService) Submit(ctx context.Context, movieID, userID uuid.UUID, in models.ReviewInput) (review *models.ReviewDB, created bool, err error) {
	if err := validation.Struct(in); err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrInvalidRating, err)
	}

	movie, err := s.movies.LockByID(ctx, movieID)
	if err != nil {
		logger.Log.Errorw("failed to lock movie", "movieID", movieID, "error", err)
		return nil, false, err
	}
	if movie == nil {
		return nil, false, ErrMovieNotFound
	}

	existing, err := s.reviews.GetByUserAndMovie(ctx, userID, movieID)
	if err != nil {
		logger.Log.Errorw("failed to get review", "movieID", movieID, "userID", userID, "error", err)
		return nil, false, err
	}

	merged := &models.ReviewDB{UserID: userID, MovieID: movieID}
	if existing != nil {
		merged.Rating, merged.Review = existing.Rating, existing.Review
	}
	merged.Rating = in.Rating.Merge(merged.Rating)
	merged.Review = in.Review.Merge(merged.Review)
	if merged.IsEmpty() {
		return nil, false, ErrEmptyReview
	}

	review, created, err = s.reviews.Upsert(ctx, merged)
	if err != nil {
		logger.Log.Errorw("failed to save review", "movieID", movieID, "userID", userID, "error", err)
		return nil, false, err
	}

	if err := s.refreshAggregate(ctx, movieID); err != nil {
		return nil, false, err
	}
	evictAfterCommit(ctx, s.details, movieID)

	op := "update"
	if created {
		op = "create"
	}
	metrics.ReviewMutations.WithLabelValues(op).Inc()
	logger.Log.Infow("review saved", "movieID", movieID, "reviewID", review.ReviewID, "created", created)

	return review, created, nil
}

// Delete removes reviewID when it belongs to userID and movieID.
func (s *ReviewService) Delete(ctx context.Context, movieID, reviewID, userID uuid.UUID) error {
	movie, err := s.movies.LockByID(ctx, movieID)
	if err != nil {
		logger.Log.Errorw("failed to lock movie", "movieID", movieID, "error", err)
		return err
	}
	if movie == nil {
		return ErrMovieNotFound
	}

	removed, err := s.reviews.Delete(ctx, reviewID, movieID, userID)
	if err != nil {
		logger.Log.Errorw("failed to delete review", "reviewID", reviewID, "error", err)
		return err
	}
	if !removed {
		return ErrReviewNotFound
	}

	if err := s.refreshAggregate(ctx, movieID); err != nil {
		return err
	}
	evictAfterCommit(ctx, s.details, movieID)

	metrics.ReviewMutations.WithLabelValues("delete").Inc()
	logger.Log.Infow("review deleted", "movieID", movieID, "reviewID", reviewID)

	return nil
}

// List returns the reviews of a movie, oldest first.
func (s *ReviewService) List(ctx context.Context, movieID uuid.UUID) ([]models.ReviewDB, error) {
	movie, err := s.movies.GetByID(ctx, movieID)
	if err != nil {
		logger.Log.Errorw("failed to get movie", "movieID", movieID, "error", err)
		return nil, err
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	reviews, err := s.reviews.ListByMovie(ctx, movieID)
	if err != nil {
		logger.Log.Errorw("failed to list reviews", "movieID", movieID, "error", err)
		return nil, err
	}
	return reviews, nil
}

// refreshAggregate recomputes votes and rating from every current rating and
// records the change in the outbox. The caller holds the movie row lock.
func (s *ReviewService) refreshAggregate(ctx context.Context, movieID uuid.UUID) error {
	ratings, err := s.reviews.Ratings(ctx, movieID)
	if err != nil {
		logger.Log.Errorw("failed to read ratings", "movieID", movieID, "error", err)
		return err
	}

	agg := models.ComputeAggregate(ratings)
	if err := s.movies.UpdateAggregate(ctx, movieID, agg); err != nil {
		logger.Log.Errorw("failed to update aggregate", "movieID", movieID, "error", err)
		return err
	}

	if err := s.outbox.Enqueue(ctx, movieID, models.EventMovieUpserted); err != nil {
		logger.Log.Errorw("failed to enqueue movie event", "movieID", movieID, "error", err)
		return err
	}
	return nil
}

// evictAfterCommit drops the cached detail of movieID once the transaction of
// ctx commits, so readers never refill it from uncommitted state.
func evictAfterCommit(ctx context.Context, details DetailEvicter, movieID uuid.UUID) {
	if details == nil {
		return
	}
	txhooks.AfterCommit(ctx, func(ctx context.Context) {
		if err := details.Delete(ctx, movieID); err != nil {
			logger.Log.Warnw("failed to evict movie detail", "movieID", movieID, "error", err)
		}
	})
}
