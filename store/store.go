// Package store defines the persistence interfaces the rest of the
// application depends on. Implementations live in store/postgres.
package store

import (
	"context"

	"github.com/wayfarer-app/wayfarer-backend/types"
)

// TripStore persists trip records. It performs no ownership checks; the
// model layer gates every call with the caller's identity. GetTrip and
// DeleteTrip return errors.TripNotFound when no row matches.
type TripStore interface {
	CreateTrip(ctx context.Context, trip *types.Trip) (*types.Trip, error)
	GetTrip(ctx context.Context, id string) (*types.Trip, error)
	ListTripsByOwner(ctx context.Context, ownerID string) ([]*types.Trip, error)
	UpdateTrip(ctx context.Context, id string, update *types.TripUpdate) (*types.Trip, error)
	DeleteTrip(ctx context.Context, id string) error
}

// UserStore persists user accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user *types.User) (*types.User, error)
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
}
