// Package user implements account registration and login on top of the
// user store.
package user

import (
	"context"
	"strings"
	"time"

	apperrors "github.com/wayfarer-app/wayfarer-backend/errors"
	"github.com/wayfarer-app/wayfarer-backend/internal/auth"
	"github.com/wayfarer-app/wayfarer-backend/logger"
	"github.com/wayfarer-app/wayfarer-backend/store"
	"github.com/wayfarer-app/wayfarer-backend/types"
)

// Model handles account creation and credential checks, and issues the
// bearer tokens the trip API consumes.
type Model struct {
	store       store.UserStore
	jwtSecret   string
	tokenExpiry time.Duration
}

func NewModel(store store.UserStore, jwtSecret string, tokenExpiry time.Duration) *Model {
	return &Model{
		store:       store,
		jwtSecret:   jwtSecret,
		tokenExpiry: tokenExpiry,
	}
}

// Register creates a new account with a bcrypt-hashed password.
func (m *Model) Register(ctx context.Context, username, email, password string) (*types.User, error) {
	log := logger.GetLogger()

	var missing []string
	if strings.TrimSpace(username) == "" {
		missing = append(missing, "username is required")
	}
	if strings.TrimSpace(email) == "" {
		missing = append(missing, "email is required")
	}
	if password == "" {
		missing = append(missing, "password is required")
	}
	if len(missing) > 0 {
		return nil, apperrors.ValidationFailed("Invalid registration data", strings.Join(missing, "; "))
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, apperrors.InternalServerError("Failed to process password")
	}

	created, err := m.store.CreateUser(ctx, &types.User{
		Username:     strings.TrimSpace(username),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: hash,
	})
	if err != nil {
		return nil, err
	}

	log.Infow("User registered", "userId", created.ID, "email", logger.MaskEmail(created.Email))
	return created, nil
}

// Login verifies the credentials and returns the user with a signed access
// token. Unknown email and wrong password produce the same error, so a
// caller cannot probe which addresses have accounts.
func (m *Model) Login(ctx context.Context, email, password string) (*types.AuthResponse, error) {
	log := logger.GetLogger()

	user, err := m.store.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if appErr, ok := err.(*apperrors.AppError); ok && appErr.Type == apperrors.NotFoundError {
			return nil, apperrors.AuthenticationFailed("Invalid email or password")
		}
		return nil, err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		log.Warnw("Failed login attempt", "email", logger.MaskEmail(email))
		return nil, apperrors.AuthenticationFailed("Invalid email or password")
	}

	token, err := auth.GenerateToken(user.ID, m.jwtSecret, m.tokenExpiry)
	if err != nil {
		log.Errorw("Failed to sign token", "userId", user.ID, "error", err)
		return nil, apperrors.InternalServerError("Failed to issue token")
	}

	log.Infow("User logged in", "userId", user.ID)
	return &types.AuthResponse{
		Token:    token,
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}, nil
}
