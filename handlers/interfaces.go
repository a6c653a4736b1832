package handlers

import (
	"context"

	"github.com/wayfarer-app/wayfarer-backend/types"
)

// TripModelInterface is what the trip handler needs from the access layer.
// Every method takes the caller's resolved user ID explicitly.
type TripModelInterface interface {
	CreateTrip(ctx context.Context, userID string, trip *types.Trip) (*types.Trip, error)
	GetTripByID(ctx context.Context, userID, tripID string) (*types.Trip, error)
	ListUserTrips(ctx context.Context, userID string) ([]*types.Trip, error)
	UpdateTrip(ctx context.Context, userID, tripID string, update *types.TripUpdate) (*types.Trip, error)
	DeleteTrip(ctx context.Context, userID, tripID string) error
}

// UserModelInterface is what the auth handler needs from the user model.
type UserModelInterface interface {
	Register(ctx context.Context, username, email, password string) (*types.User, error)
	Login(ctx context.Context, email, password string) (*types.AuthResponse, error)
}
