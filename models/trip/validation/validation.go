// Package validation holds the field checks applied before a trip reaches
// the store.
package validation

import (
	"strings"

	"github.com/wayfarer-app/wayfarer-backend/errors"
	"github.com/wayfarer-app/wayfarer-backend/types"
)

// ValidateNewTrip checks the required fields of a trip about to be created.
// The returned error names every offending field so the client can fix all
// of them in one round trip.
//
// Deliberately absent: no startDate/endDate ordering check, no lat/lng
// range check, no route length cap. The stored record mirrors whatever the
// client's route builder produced.
func ValidateNewTrip(trip *types.Trip) error {
	var validationErrors []string

	if strings.TrimSpace(trip.Title) == "" {
		validationErrors = append(validationErrors, "title is required")
	}
	if trip.StartDate.IsZero() {
		validationErrors = append(validationErrors, "startDate is required")
	}
	if trip.EndDate.IsZero() {
		validationErrors = append(validationErrors, "endDate is required")
	}

	if len(validationErrors) > 0 {
		return errors.ValidationFailed(
			"Invalid trip data",
			strings.Join(validationErrors, "; "),
		)
	}
	return nil
}

// ValidateTripUpdate rejects updates that would blank out a required field.
// Nil fields are fine (left untouched); present-but-empty ones are not.
func ValidateTripUpdate(update *types.TripUpdate) error {
	var validationErrors []string

	if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
		validationErrors = append(validationErrors, "title cannot be empty")
	}
	if update.StartDate != nil && update.StartDate.IsZero() {
		validationErrors = append(validationErrors, "startDate cannot be empty")
	}
	if update.EndDate != nil && update.EndDate.IsZero() {
		validationErrors = append(validationErrors, "endDate cannot be empty")
	}

	if len(validationErrors) > 0 {
		return errors.ValidationFailed(
			"Invalid trip update",
			strings.Join(validationErrors, "; "),
		)
	}
	return nil
}
