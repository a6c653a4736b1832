// Package trip is the ownership-checked access layer for trip records: the
// only path between handlers and the trip store. Every operation takes the
// caller's resolved user ID by value and guarantees no caller can observe
// or mutate a trip it does not own.
package trip

import (
	"context"

	apperrors "github.com/wayfarer-app/wayfarer-backend/errors"
	"github.com/wayfarer-app/wayfarer-backend/logger"
	"github.com/wayfarer-app/wayfarer-backend/models/trip/validation"
	"github.com/wayfarer-app/wayfarer-backend/store"
	"github.com/wayfarer-app/wayfarer-backend/types"
)

// Model mediates all reads and writes of trips. It is stateless between
// calls; all persistent state lives in the store.
type Model struct {
	store store.TripStore
}

func NewModel(store store.TripStore) *Model {
	return &Model{store: store}
}

// CreateTrip validates the required fields and persists a new trip owned by
// userID. The caller-supplied OwnerID, ID and timestamps are ignored; the
// owner is always the authenticated caller and the store assigns the rest.
func (m *Model) CreateTrip(ctx context.Context, userID string, trip *types.Trip) (*types.Trip, error) {
	log := logger.GetLogger()

	trip.OwnerID = userID
	if err := validation.ValidateNewTrip(trip); err != nil {
		return nil, err
	}
	if trip.Route == nil {
		trip.Route = []types.Waypoint{}
	}

	created, err := m.store.CreateTrip(ctx, trip)
	if err != nil {
		return nil, err
	}

	log.Infow("Trip created", "tripId", created.ID, "ownerId", userID)
	return created, nil
}

// GetTripByID returns the trip if it exists and userID owns it. A missing
// trip is a 404; an existing trip owned by someone else is a 401. The two
// are deliberately distinguishable.
func (m *Model) GetTripByID(ctx context.Context, userID, tripID string) (*types.Trip, error) {
	trip, err := m.store.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	if trip.OwnerID != userID {
		logger.GetLogger().Warnw("Trip access denied",
			"tripId", tripID, "ownerId", trip.OwnerID, "callerId", userID)
		return nil, apperrors.TripAccessDenied(userID, tripID)
	}

	return trip, nil
}

// ListUserTrips returns all trips owned by userID, newest first. An empty
// list is not an error.
func (m *Model) ListUserTrips(ctx context.Context, userID string) ([]*types.Trip, error) {
	return m.store.ListTripsByOwner(ctx, userID)
}

// UpdateTrip applies a partial update to a trip userID owns. Fields absent
// from the update are left unchanged; a supplied route replaces the stored
// sequence entirely. Ownership, id and creation time are never writable.
// Concurrent updates to the same trip are not reconciled: last write wins.
func (m *Model) UpdateTrip(ctx context.Context, userID, tripID string, update *types.TripUpdate) (*types.Trip, error) {
	log := logger.GetLogger()

	if err := validation.ValidateTripUpdate(update); err != nil {
		return nil, err
	}

	// Existence and ownership gate before the write.
	if _, err := m.GetTripByID(ctx, userID, tripID); err != nil {
		return nil, err
	}

	updated, err := m.store.UpdateTrip(ctx, tripID, update)
	if err != nil {
		return nil, err
	}

	log.Infow("Trip updated", "tripId", tripID, "ownerId", userID)
	return updated, nil
}

// DeleteTrip permanently removes a trip userID owns. Delete is not
// idempotent: a second delete of the same id fails with not-found.
func (m *Model) DeleteTrip(ctx context.Context, userID, tripID string) error {
	log := logger.GetLogger()

	if _, err := m.GetTripByID(ctx, userID, tripID); err != nil {
		return err
	}

	if err := m.store.DeleteTrip(ctx, tripID); err != nil {
		return err
	}

	log.Infow("Trip deleted", "tripId", tripID, "ownerId", userID)
	return nil
}
