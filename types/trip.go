package types

import "time"

// Waypoint is a single named stop on a trip's route. Lat/Lng come from the
// client's geocoder and are stored as-is; no range validation is applied.
type Waypoint struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// Trip is a persisted itinerary owned by exactly one user. Route order is
// visiting order and is preserved exactly on every read and write.
type Trip struct {
	ID          string     `json:"id"`
	OwnerID     string     `json:"ownerId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	StartDate   Date       `json:"startDate"`
	EndDate     Date       `json:"endDate"`
	Route       []Waypoint `json:"route"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// TripUpdate carries a partial update. Nil fields are left untouched; a
// non-nil Route replaces the stored sequence wholesale, never merges.
// OwnerID, ID and CreatedAt are not updatable and have no fields here.
type TripUpdate struct {
	Title       *string     `json:"title"`
	Description *string     `json:"description"`
	StartDate   *Date       `json:"startDate"`
	EndDate     *Date       `json:"endDate"`
	Route       *[]Waypoint `json:"route"`
}

// IsEmpty reports whether the update would change nothing.
func (u *TripUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil &&
		u.StartDate == nil && u.EndDate == nil && u.Route == nil
}
