package handlers

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-movie-catalog/internal/logger"
	"github.com/sbilibin2017/gw-movie-catalog/internal/models"
	"github.com/sbilibin2017/gw-movie-catalog/internal/services"
	"github.com/sbilibin2017/gw-movie-catalog/internal/validation"
)

// RefreshCookieName is the cookie carrying the refresh token.
const RefreshCookieName = "refreshToken"

// Registerer defines the interface that the registration service must implement.
type Registerer interface {
	Register(ctx context.Context, in models.RegisterInput) (*models.UserDB, error)
}

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (accessToken, refreshToken string, err error)
}

// Refresher issues access tokens for refresh tokens.
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// example: User registered successfully
	Message string `json:"message"`

	// Created account
	User *models.UserDB `json:"user"`
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// example: john_doe
	Username string `json:"username" validate:"required"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password" validate:"required"`
}

// TokenResponse carries a freshly issued access token
// swagger:model TokenResponse
type TokenResponse struct {
	// JWT access token
	// example: JWT_TOKEN
	AccessToken string `json:"accessToken"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates an account with a unique username and email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.RegisterInput true "Registration data"
// @Success 201 {object} handlers.RegisterResponse
// @Failure 400 {object} handlers.ErrorResponse "Validation failed"
// @Failure 409 {object} handlers.ErrorResponse "Username or email already exists"
// @Failure 500 {object} handlers.ErrorResponse
// @Router /users/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in models.RegisterInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := validation.Struct(in); err != nil {
			writeValidationError(w, err)
			return
		}

		user, err := svc.Register(r.Context(), in)
		if err != nil {
			if errors.Is(err, services.ErrUserAlreadyExists) {
				writeError(w, http.StatusConflict, "Username or email already exists")
				return
			}
			writeInternalError(w, "failed to register user", err, "username", in.Username)
			return
		}

		writeJSON(w, http.StatusCreated, RegisterResponse{Message: "User registered successfully", User: user})
	}
}

// NewLoginHandler returns an HTTP handler for user login. The refresh token is
// set as an HttpOnly cookie valid for refreshTTL.
// @Summary User login
// @Description Authenticate user, return an access token and set the refresh cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.TokenResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Invalid username or password"
// @Failure 500 {object} handlers.ErrorResponse
// @Router /users/login [post]
func NewLoginHandler(svc Loginer, refreshTTL time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := validation.Struct(req); err != nil {
			writeValidationError(w, err)
			return
		}

		access, refresh, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials),
				errors.Is(err, services.ErrUserDoesNotExist):
				writeError(w, http.StatusUnauthorized, "Invalid username or password")
			default:
				writeInternalError(w, "failed to log in", err, "username", req.Username)
			}
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     RefreshCookieName,
			Value:    refresh,
			Path:     "/",
			MaxAge:   int(refreshTTL.Seconds()),
			HttpOnly: true,
			Secure:   true,
			SameSite: http.SameSiteNoneMode,
		})
		writeJSON(w, http.StatusOK, TokenResponse{AccessToken: access})
	}
}

// NewRefreshHandler returns an HTTP handler exchanging the refresh cookie for a new access token.
// @Summary Refresh access token
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.TokenResponse
// @Failure 401 {object} handlers.ErrorResponse "Refresh token missing"
// @Failure 403 {object} handlers.ErrorResponse "Invalid refresh token"
// @Router /users/refresh [post]
func NewRefreshHandler(svc Refresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(RefreshCookieName)
		if err != nil || cookie.Value == "" {
			writeError(w, http.StatusUnauthorized, "Refresh token missing")
			return
		}

		token, err := svc.Refresh(r.Context(), cookie.Value)
		if err != nil {
			if errors.Is(err, services.ErrInvalidRefresh) {
				logger.Log.Infow("refresh rejected", "err", err)
				writeError(w, http.StatusForbidden, "Invalid refresh token")
				return
			}
			writeInternalError(w, "failed to refresh token", err)
			return
		}

		writeJSON(w, http.StatusOK, TokenResponse{AccessToken: token})
	}
}

// NewLogoutHandler returns an HTTP handler clearing the refresh cookie.
// @Summary Logout
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.MessageResponse
// @Router /users/logout [post]
func NewLogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     RefreshCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   true,
			SameSite: http.SameSiteNoneMode,
		})
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Logged out successfully"})
	}
}
