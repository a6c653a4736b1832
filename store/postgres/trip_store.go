package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	apperrors "github.com/wayfarer-app/wayfarer-backend/errors"
	"github.com/wayfarer-app/wayfarer-backend/logger"
	"github.com/wayfarer-app/wayfarer-backend/store"
	"github.com/wayfarer-app/wayfarer-backend/types"
)

var _ store.TripStore = (*TripStore)(nil)

const tripColumns = `id, owner_id, title, description, start_date, end_date, route, created_at, updated_at`

// TripStore implements store.TripStore on PostgreSQL. The route is stored
// as a JSONB array so waypoint order round-trips exactly and a route update
// is a whole-document replacement.
type TripStore struct {
	db PgxIface
}

func NewTripStore(db PgxIface) *TripStore {
	return &TripStore{db: db}
}

// CreateTrip inserts a new trip and returns the stored record with its
// assigned id and timestamps.
func (s *TripStore) CreateTrip(ctx context.Context, trip *types.Trip) (*types.Trip, error) {
	log := logger.GetLogger()

	route := trip.Route
	if route == nil {
		route = []types.Waypoint{}
	}
	routeJSON, err := json.Marshal(route)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal route: %w", err)
	}

	row := s.db.QueryRow(ctx, `
        INSERT INTO trips (owner_id, title, description, start_date, end_date, route)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING `+tripColumns,
		trip.OwnerID,
		trip.Title,
		trip.Description,
		trip.StartDate.Time,
		trip.EndDate.Time,
		routeJSON,
	)

	created, err := scanTrip(row)
	if err != nil {
		log.Errorw("Failed to create trip", "ownerId", trip.OwnerID, "error", err)
		return nil, apperrors.NewDatabaseError(err)
	}

	return created, nil
}

// GetTrip retrieves a single trip by id, owner unchecked.
func (s *TripStore) GetTrip(ctx context.Context, id string) (*types.Trip, error) {
	log := logger.GetLogger()

	row := s.db.QueryRow(ctx, `
        SELECT `+tripColumns+`
        FROM trips
        WHERE id = $1`, id)

	trip, err := scanTrip(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.TripNotFound(id)
		}
		log.Errorw("Failed to get trip", "tripId", id, "error", err)
		return nil, apperrors.NewDatabaseError(err)
	}

	return trip, nil
}

// ListTripsByOwner returns all trips owned by ownerID, newest first.
func (s *TripStore) ListTripsByOwner(ctx context.Context, ownerID string) ([]*types.Trip, error) {
	log := logger.GetLogger()

	rows, err := s.db.Query(ctx, `
        SELECT `+tripColumns+`
        FROM trips
        WHERE owner_id = $1
        ORDER BY created_at DESC`, ownerID)
	if err != nil {
		log.Errorw("Failed to list trips", "ownerId", ownerID, "error", err)
		return nil, apperrors.NewDatabaseError(err)
	}
	defer rows.Close()

	trips := []*types.Trip{}
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			return nil, apperrors.NewDatabaseError(err)
		}
		trips = append(trips, trip)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	return trips, nil
}

// UpdateTrip applies the non-nil fields of update to the trip row. A non-nil
// Route replaces the stored array wholesale. updated_at is always refreshed;
// id, owner_id and created_at are never part of the SET clause.
func (s *TripStore) UpdateTrip(ctx context.Context, id string, update *types.TripUpdate) (*types.Trip, error) {
	log := logger.GetLogger()

	var setFields []string
	var args []interface{}
	argPosition := 1

	if update.Title != nil {
		setFields = append(setFields, fmt.Sprintf("title = $%d", argPosition))
		args = append(args, *update.Title)
		argPosition++
	}
	if update.Description != nil {
		setFields = append(setFields, fmt.Sprintf("description = $%d", argPosition))
		args = append(args, *update.Description)
		argPosition++
	}
	if update.StartDate != nil {
		setFields = append(setFields, fmt.Sprintf("start_date = $%d", argPosition))
		args = append(args, update.StartDate.Time)
		argPosition++
	}
	if update.EndDate != nil {
		setFields = append(setFields, fmt.Sprintf("end_date = $%d", argPosition))
		args = append(args, update.EndDate.Time)
		argPosition++
	}
	if update.Route != nil {
		routeJSON, err := json.Marshal(*update.Route)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal route: %w", err)
		}
		setFields = append(setFields, fmt.Sprintf("route = $%d", argPosition))
		args = append(args, routeJSON)
		argPosition++
	}

	setFields = append(setFields, "updated_at = CURRENT_TIMESTAMP")

	query := fmt.Sprintf(`
        UPDATE trips
        SET %s
        WHERE id = $%d
        RETURNING `+tripColumns,
		strings.Join(setFields, ", "),
		argPosition,
	)
	args = append(args, id)

	trip, err := scanTrip(s.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.TripNotFound(id)
		}
		log.Errorw("Failed to update trip", "tripId", id, "error", err)
		return nil, apperrors.NewDatabaseError(err)
	}

	return trip, nil
}

// DeleteTrip removes the trip row permanently. Deleting an id that does not
// exist returns TripNotFound, so a second delete of the same trip fails.
func (s *TripStore) DeleteTrip(ctx context.Context, id string) error {
	log := logger.GetLogger()

	tag, err := s.db.Exec(ctx, `DELETE FROM trips WHERE id = $1`, id)
	if err != nil {
		log.Errorw("Failed to delete trip", "tripId", id, "error", err)
		return apperrors.NewDatabaseError(err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.TripNotFound(id)
	}

	return nil
}

// scanTrip scans one trip row, decoding the JSONB route column.
func scanTrip(row pgx.Row) (*types.Trip, error) {
	var trip types.Trip
	var routeJSON []byte

	err := row.Scan(
		&trip.ID,
		&trip.OwnerID,
		&trip.Title,
		&trip.Description,
		&trip.StartDate.Time,
		&trip.EndDate.Time,
		&routeJSON,
		&trip.CreatedAt,
		&trip.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	trip.Route = []types.Waypoint{}
	if len(routeJSON) > 0 {
		if err := json.Unmarshal(routeJSON, &trip.Route); err != nil {
			return nil, fmt.Errorf("failed to unmarshal route: %w", err)
		}
	}

	return &trip, nil
}
