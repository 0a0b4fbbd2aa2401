package handlers

//go:generate mockgen -source=review.go -destination=review_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-movie-catalog/internal/models"
	"github.com/sbilibin2017/gw-movie-catalog/internal/services"
	"github.com/sbilibin2017/gw-movie-catalog/internal/validation"
)

// ReviewSubmitter creates or updates the caller's review of a movie.
type ReviewSubmitter interface {
	Submit(ctx context.Context, movieID, userID uuid.UUID, in models.ReviewInput) (*models.ReviewDB, bool, error)
}

// ReviewDeleter removes the caller's review.
type ReviewDeleter interface {
	Delete(ctx context.Context, movieID, reviewID, userID uuid.UUID) error
}

// ReviewLister lists the reviews of a movie.
type ReviewLister interface {
	List(ctx context.Context, movieID uuid.UUID) ([]models.ReviewDB, error)
}

// ReviewResponse represents a stored review
// swagger:model ReviewResponse
type ReviewResponse struct {
	// Success message
	// example: Review created successfully
	Message string           `json:"message"`
	Review  *models.ReviewDB `json:"review"`
}

// ReviewsResponse wraps the reviews of a movie
// swagger:model ReviewsResponse
type ReviewsResponse struct {
	Reviews []models.ReviewDB `json:"reviews"`
}

// DeleteReviewRequest identifies the review to delete
// swagger:model DeleteReviewRequest
type DeleteReviewRequest struct {
	// required: true
	ReviewID uuid.UUID `json:"reviewID"`
}

// NewSubmitReviewHandler returns an HTTP handler that creates or updates the caller's review.
// Absent fields keep their stored value and explicit nulls clear it.
// @Summary Submit review
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path string true "Movie ID"
// @Param request body models.ReviewInput true "Rating (1-10) and/or review text"
// @Success 200 {object} handlers.ReviewResponse "Review updated"
// @Success 201 {object} handlers.ReviewResponse "Review created"
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse "Movie not found"
// @Failure 500 {object} handlers.ErrorResponse
// @Router /{id}/review [post]
// @Security BearerAuth
func NewSubmitReviewHandler(svc ReviewSubmitter) http.HandlerFunc {
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

		var in models.ReviewInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := validation.Struct(in); err != nil {
			writeValidationError(w, err)
			return
		}

		review, created, err := svc.Submit(r.Context(), movieID, userID, in)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMovieNotFound):
				writeError(w, http.StatusNotFound, "Movie not found")
			case errors.Is(err, services.ErrInvalidRating):
				writeValidationError(w, err)
			case errors.Is(err, services.ErrEmptyReview):
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				writeInternalError(w, "failed to submit review", err, "movieID", movieID, "userID", userID)
			}
			return
		}

		if created {
			writeJSON(w, http.StatusCreated, ReviewResponse{Message: "Review created successfully", Review: review})
			return
		}
		writeJSON(w, http.StatusOK, ReviewResponse{Message: "Review updated successfully", Review: review})
	}
}

// NewDeleteReviewHandler returns an HTTP handler deleting the caller's review.
// @Summary Delete review
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path string true "Movie ID"
// @Param request body handlers.DeleteReviewRequest true "Review to delete"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse "Review not found or not owned by the caller"
// @Failure 500 {object} handlers.ErrorResponse
// @Router /{id}/review [delete]
// @Security BearerAuth
func NewDeleteReviewHandler(svc ReviewDeleter) http.HandlerFunc {
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

		var req DeleteReviewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ReviewID == uuid.Nil {
			writeError(w, http.StatusBadRequest, "Invalid review ID")
			return
		}

		if err := svc.Delete(r.Context(), movieID, req.ReviewID, userID); err != nil {
			switch {
			case errors.Is(err, services.ErrReviewNotFound):
				writeError(w, http.StatusNotFound, "Review not found")
			case errors.Is(err, services.ErrMovieNotFound):
				writeError(w, http.StatusNotFound, "Movie not found")
			default:
				writeInternalError(w, "failed to delete review", err, "reviewID", req.ReviewID)
			}
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Review deleted successfully"})
	}
}

// NewListReviewsHandler returns an HTTP handler listing the reviews of a movie.
// @Summary List reviews
// @Tags reviews
// @Produce json
// @Param id path string true "Movie ID"
// @Success 200 {object} handlers.ReviewsResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse "Movie not found"
// @Failure 500 {object} handlers.ErrorResponse
// @Router /{id}/reviews [get]
func NewListReviewsHandler(svc ReviewLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		movieID, err := uuidParam(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid movie ID")
			return
		}

		reviews, err := svc.List(r.Context(), movieID)
		if err != nil {
			if errors.Is(err, services.ErrMovieNotFound) {
				writeError(w, http.StatusNotFound, "Movie not found")
				return
			}
			writeInternalError(w, "failed to list reviews", err, "movieID", movieID)
			return
		}
		if reviews == nil {
			reviews = []models.ReviewDB{}
		}
		writeJSON(w, http.StatusOK, ReviewsResponse{Reviews: reviews})
	}
}
