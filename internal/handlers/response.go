package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-movie-catalog/internal/jwt"
	"github.com/sbilibin2017/gw-movie-catalog/internal/logger"
	"github.com/sbilibin2017/gw-movie-catalog/internal/validation"
)

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Movie not found
	Error string `json:"error"`

	// Per field validation failures
	Details []validation.FieldError `json:"details,omitempty"`
}

// MessageResponse represents a plain success response
// swagger:model MessageResponse
type MessageResponse struct {
	// Success message
	// example: Review deleted successfully
	Message string `json:"message"`
}

const internalErrorMessage = "Internal server error"

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeValidationError answers 400 with field details when err is a validation error.
func writeValidationError(w http.ResponseWriter, err error) {
	var verr *validation.Error
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Validation failed", Details: verr.Fields})
		return
	}
	writeError(w, http.StatusBadRequest, err.Error())
}

func writeInternalError(w http.ResponseWriter, msg string, err error, keysAndValues ...any) {
	logger.Log.Errorw(msg, append(keysAndValues, "error", err)...)
	writeError(w, http.StatusInternalServerError, internalErrorMessage)
}

// userIDFromRequest returns the authenticated caller set by the auth middleware.
func userIDFromRequest(r *http.Request) (uuid.UUID, bool) {
	claims, ok := jwt.ClaimsFromContext(r.Context())
	if !ok || claims == nil {
		return uuid.Nil, false
	}
	return claims.UserID, true
}

func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, name))
}
