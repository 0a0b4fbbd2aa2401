package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-movie-catalog/internal/jwt"
	"github.com/sbilibin2017/gw-movie-catalog/internal/logger"
	"github.com/sbilibin2017/gw-movie-catalog/internal/models"
	"github.com/sbilibin2017/gw-movie-catalog/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrUserAlreadyExists  = errors.New("username or email already exists")
	ErrUserDoesNotExist   = errors.New("username does not exist")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidRefresh     = errors.New("invalid refresh token")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsernameOrEmail(ctx context.Context, username *string, email *string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, in models.RegisterInput, passwordHash string) (*models.UserDB, error)
}

// JWTGenerator issues access tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, username string) (string, error)
}

// RefreshTokenManager issues and verifies refresh tokens.
type RefreshTokenManager interface {
	Generate(ctx context.Context, userID uuid.UUID, username string) (string, error)
	GetClaims(ctx context.Context, token string) (*jwt.Claims, error)
}

// AuthService handles registration, login and token refresh.
type AuthService struct {
	reader  UserReader
	writer  UserWriter
	access  JWTGenerator
	refresh RefreshTokenManager
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, access JWTGenerator, refresh RefreshTokenManager) *AuthService {
	return &AuthService{
		reader:  reader,
		writer:  writer,
		access:  access,
		refresh: refresh,
	}
}

// Register registers a new user.
func (svc *AuthService) Register(ctx context.Context, in models.RegisterInput) (*models.UserDB, error) {
	user, err := svc.reader.GetByUsernameOrEmail(ctx, &in.Username, &in.Email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if user != nil {
		logger.Log.Errorw("user already exists", "username", in.Username, "email", in.Email)
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user, err = svc.writer.Save(ctx, in, string(hashedPassword))
	if errors.Is(err, repositories.ErrDuplicate) {
		return nil, ErrUserAlreadyExists
	}
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return user, nil
}

// Login authenticates a user and returns an access and a refresh token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (accessToken, refreshToken string, err error) {
	user, err := svc.reader.GetByUsernameOrEmail(ctx, &username, nil)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "username", username)
		return "", "", ErrUserDoesNotExist
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return "", "", ErrInvalidCredentials
	}

	accessToken, err = svc.access.Generate(ctx, user.UserID, user.Username)
	if err != nil {
		logger.Log.Errorw("failed to generate access token", "err", err)
		return "", "", err
	}

	refreshToken, err = svc.refresh.Generate(ctx, user.UserID, user.Username)
	if err != nil {
		logger.Log.Errorw("failed to generate refresh token", "err", err)
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// Refresh issues a new access token for the owner of a valid refresh token.
func (svc *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := svc.refresh.GetClaims(ctx, refreshToken)
	if err != nil {
		logger.Log.Infow("refresh token rejected", "err", err)
		return "", ErrInvalidRefresh
	}

	token, err := svc.access.Generate(ctx, claims.UserID, claims.Username)
	if err != nil {
		logger.Log.Errorw("failed to generate access token", "err", err)
		return "", err
	}
	return token, nil
}
