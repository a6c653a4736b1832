package user

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/wayfarer-app/wayfarer-backend/errors"
	"github.com/wayfarer-app/wayfarer-backend/internal/auth"
	"github.com/wayfarer-app/wayfarer-backend/logger"
	"github.com/wayfarer-app/wayfarer-backend/types"
)

func TestMain(m *testing.M) {
	logger.IsTest = true
	os.Exit(m.Run())
}

type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) CreateUser(ctx context.Context, user *types.User) (*types.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.User), args.Error(1)
}

func (m *MockUserStore) GetUserByID(ctx context.Context, id string) (*types.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.User), args.Error(1)
}

func (m *MockUserStore) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.User), args.Error(1)
}

const testSecret = "test-secret-key-for-unit-tests-only"

func TestRegisterHashesPasswordAndNormalizesEmail(t *testing.T) {
	store := new(MockUserStore)
	model := NewModel(store, testSecret, time.Hour)

	store.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *types.User) bool {
		return u.Email == "alice@example.com" &&
			u.PasswordHash != "hunter22" &&
			auth.CheckPassword("hunter22", u.PasswordHash)
	})).Return(&types.User{
		ID:       "user-1",
		Username: "alice",
		Email:    "alice@example.com",
	}, nil)

	created, err := model.Register(context.Background(), "alice", "  Alice@Example.COM ", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "user-1", created.ID)
	store.AssertExpectations(t)
}

func TestRegisterMissingFields(t *testing.T) {
	store := new(MockUserStore)
	model := NewModel(store, testSecret, time.Hour)

	_, err := model.Register(context.Background(), "", "", "")
	require.Error(t, err)
	appErr := err.(*apperrors.AppError)
	assert.Equal(t, apperrors.ValidationError, appErr.Type)
	assert.Contains(t, appErr.Detail, "username")
	assert.Contains(t, appErr.Detail, "email")
	assert.Contains(t, appErr.Detail, "password")
	store.AssertNotCalled(t, "CreateUser")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := new(MockUserStore)
	model := NewModel(store, testSecret, time.Hour)

	store.On("CreateUser", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewConflictError("Account already exists", "email or username already in use"))

	_, err := model.Register(context.Background(), "alice", "alice@example.com", "hunter22")
	require.Error(t, err)
	assert.Equal(t, apperrors.ConflictError, err.(*apperrors.AppError).Type)
}

func TestLoginSuccessIssuesToken(t *testing.T) {
	store := new(MockUserStore)
	model := NewModel(store, testSecret, time.Hour)

	hash, err := auth.HashPassword("hunter22")
	require.NoError(t, err)

	store.On("GetUserByEmail", mock.Anything, "alice@example.com").Return(&types.User{
		ID:           "user-1",
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: hash,
	}, nil)

	resp, err := model.Login(context.Background(), "Alice@Example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "user-1", resp.ID)
	assert.NotEmpty(t, resp.Token)

	userID, err := auth.ValidateToken(resp.Token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestLoginWrongPasswordAndUnknownEmailIndistinguishable(t *testing.T) {
	store := new(MockUserStore)
	model := NewModel(store, testSecret, time.Hour)

	hash, err := auth.HashPassword("hunter22")
	require.NoError(t, err)

	store.On("GetUserByEmail", mock.Anything, "alice@example.com").Return(&types.User{
		ID:           "user-1",
		Email:        "alice@example.com",
		PasswordHash: hash,
	}, nil)
	store.On("GetUserByEmail", mock.Anything, "nobody@example.com").
		Return(nil, apperrors.NotFound("User", "nobody@example.com"))

	_, errWrongPass := model.Login(context.Background(), "alice@example.com", "wrong")
	_, errNoUser := model.Login(context.Background(), "nobody@example.com", "whatever")

	require.Error(t, errWrongPass)
	require.Error(t, errNoUser)
	assert.Equal(t, errWrongPass.(*apperrors.AppError).Type, errNoUser.(*apperrors.AppError).Type)
	assert.Equal(t, errWrongPass.(*apperrors.AppError).Message, errNoUser.(*apperrors.AppError).Message)
}
