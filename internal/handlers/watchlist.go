package handlers

//go:generate mockgen -source=watchlist.go -destination=watchlist_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-movie-catalog/internal/models"
	"github.com/sbilibin2017/gw-movie-catalog/internal/services"
)

// WatchListAdder adds a movie to the caller's watchlist.
type WatchListAdder interface {
	Add(ctx context.Context, userID, movieID uuid.UUID) error
}

// WatchListRemover removes a movie from the caller's watchlist.
type WatchListRemover interface {
	Remove(ctx context.Context, userID, movieID uuid.UUID) error
}

// WatchListReader lists the caller's watchlist.
type WatchListReader interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.WatchListItem, error)
}

// AddWatchListRequest names the movie to save
// swagger:model AddWatchListRequest
type AddWatchListRequest struct {
	// required: true
	MovieID uuid.UUID `json:"movieID"`
}

// WatchListResponse wraps the caller's watchlist
// swagger:model WatchListResponse
type WatchListResponse struct {
	WatchList []models.WatchListItem `json:"watchlist"`
}

// NewAddWatchListHandler returns an HTTP handler adding a movie to the watchlist.
// @Summary Add to watchlist
// @Tags watchlist
// @Accept json
// @Produce json
// @Param request body handlers.AddWatchListRequest true "Movie to add"
// @Success 201 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse "Movie not found"
// @Failure 409 {object} handlers.ErrorResponse "Movie is already in watchlist"
// @Failure 500 {object} handlers.ErrorResponse
// @Router /watchlist [post]
// @Security BearerAuth
func NewAddWatchListHandler(svc WatchListAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req AddWatchListRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.MovieID == uuid.Nil {
			writeError(w, http.StatusBadRequest, "Invalid movie ID")
			return
		}

		if err := svc.Add(r.Context(), userID, req.MovieID); err != nil {
			switch {
			case errors.Is(err, services.ErrMovieNotFound):
				writeError(w, http.StatusNotFound, "Movie not found")
			case errors.Is(err, services.ErrAlreadyInWatchList):
				writeError(w, http.StatusConflict, "Movie is already in watchlist")
			default:
				writeInternalError(w, "failed to add to watchlist", err, "movieID", req.MovieID)
			}
			return
		}
		writeJSON(w, http.StatusCreated, MessageResponse{Message: "Movie added to watchlist"})
	}
}

// NewRemoveWatchListHandler returns an HTTP handler removing a movie from the watchlist.
// @Summary Remove from watchlist
// @Tags watchlist
// @Produce json
// @Param id path string true "Movie ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse "Movie is not in watchlist"
// @Failure 500 {object} handlers.ErrorResponse
// @Router /watchlist/{id} [delete]
// @Security BearerAuth
func NewRemoveWatchListHandler(svc WatchListRemover) http.HandlerFunc {
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

		if err := svc.Remove(r.Context(), userID, movieID); err != nil {
			if errors.Is(err, services.ErrNotInWatchList) {
				writeError(w, http.StatusNotFound, "Movie is not in watchlist")
				return
			}
			writeInternalError(w, "failed to remove from watchlist", err, "movieID", movieID)
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Movie removed from watchlist"})
	}
}

// NewListWatchListHandler returns an HTTP handler listing the caller's watchlist.
// @Summary List watchlist
// @Tags watchlist
// @Produce json
// @Success 200 {object} handlers.WatchListResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 500 {object} handlers.ErrorResponse
// @Router /watchlist [get]
// @Security BearerAuth
func NewListWatchListHandler(svc WatchListReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFromRequest(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		items, err := svc.List(r.Context(), userID)
		if err != nil {
			writeInternalError(w, "failed to list watchlist", err, "userID", userID)
			return
		}
		if items == nil {
			items = []models.WatchListItem{}
		}
		writeJSON(w, http.StatusOK, WatchListResponse{WatchList: items})
	}
}
