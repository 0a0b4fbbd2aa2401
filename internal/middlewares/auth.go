package middlewares

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-movie-catalog/internal/jwt"
	"github.com/sbilibin2017/gw-movie-catalog/internal/logger"
)

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

type authErrorResponse struct {
	Error string `json:"error"`
}

// AuthMiddleware rejects requests without a bearer token with 401 and requests
// with an invalid or expired token with 403. Verified claims are stored in the
// request context.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if errors.Is(err, jwt.ErrMissingToken) {
				logger.Log.Infow("authorization failed", "err", err)
				writeAuthError(w, http.StatusUnauthorized, "Authentication required")
				return
			}
			if err != nil {
				logger.Log.Infow("authorization failed", "err", err)
				writeAuthError(w, http.StatusForbidden, "Invalid token")
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Infow("authorization failed", "err", err)
				writeAuthError(w, http.StatusForbidden, "Invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(jwt.WithClaims(ctx, claims)))
		})
	}
}

func writeAuthError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(authErrorResponse{Error: msg})
}
