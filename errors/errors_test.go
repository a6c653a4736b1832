package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New(ValidationError, "invalid input", "field required")
	assert.Equal(t, ValidationError, err.Type)
	assert.Equal(t, "invalid input", err.Message)
	assert.Equal(t, "field required", err.Detail)
	assert.Equal(t, 400, err.HTTPStatus)
}

func TestWrap(t *testing.T) {
	originalErr := fmt.Errorf("original error")
	wrappedErr := Wrap(originalErr, DatabaseError, "database operation failed")

	assert.Equal(t, DatabaseError, wrappedErr.Type)
	assert.Equal(t, "database operation failed", wrappedErr.Message)
	assert.Equal(t, originalErr.Error(), wrappedErr.Detail)
	assert.Equal(t, 500, wrappedErr.HTTPStatus)
	assert.Equal(t, originalErr, wrappedErr.Raw)
}

func TestTripNotFound(t *testing.T) {
	err := TripNotFound("trip-123")
	assert.Equal(t, TripNotFoundError, err.Type)
	assert.Equal(t, "Trip not found", err.Message)
	assert.Equal(t, "Trip ID: trip-123", err.Detail)
	assert.Equal(t, 404, err.GetHTTPStatus())
}

func TestTripAccessDenied(t *testing.T) {
	err := TripAccessDenied("user-1", "trip-123")
	assert.Equal(t, TripAccessError, err.Type)
	// Access to an existing trip that the caller does not own is a 401,
	// distinguishable from 404.
	assert.Equal(t, 401, err.GetHTTPStatus())
	assert.Contains(t, err.Detail, "user-1")
	assert.Contains(t, err.Detail, "trip-123")
}

func TestValidationFailed(t *testing.T) {
	err := ValidationFailed("Invalid trip data", "title is required; startDate is required")
	assert.Equal(t, ValidationError, err.Type)
	assert.Equal(t, 400, err.HTTPStatus)
	assert.Contains(t, err.Detail, "title")
}

func TestAuthenticationFailed(t *testing.T) {
	err := AuthenticationFailed("Invalid credentials")
	assert.Equal(t, AuthError, err.Type)
	assert.Equal(t, 401, err.HTTPStatus)
}

func TestNewConflictError(t *testing.T) {
	err := NewConflictError("Account already exists", "email already in use")
	assert.Equal(t, ConflictError, err.Type)
	assert.Equal(t, 409, err.HTTPStatus)
}

func TestErrorString(t *testing.T) {
	withDetail := New(NotFoundError, "thing not found", "ID: 7")
	assert.Equal(t, "NOT_FOUND: thing not found (ID: 7)", withDetail.Error())

	withoutDetail := New(ServerError, "boom", "")
	assert.Equal(t, "SERVER_ERROR: boom", withoutDetail.Error())
}

func TestGetHTTPStatusDefaults(t *testing.T) {
	err := &AppError{Type: ErrorType("SOMETHING_ELSE")}
	assert.Equal(t, 500, err.GetHTTPStatus())
}
