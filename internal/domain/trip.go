// Package domain contains the core data types for the itinerary planner.
// This package has no dependencies beyond uuid and is imported by every other
// internal package (itinerary, repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultImageURL is the cover image assigned to trips created without one.
const DefaultImageURL = "https://images.unsplash.com/photo-1488646953014-85cb44e25828?w=800"

// TripStatus classifies a trip's dates relative to the day it was created.
type TripStatus string

const (
	StatusCurrent  TripStatus = "current"
	StatusUpcoming TripStatus = "upcoming"
	StatusPast     TripStatus = "past"
)

// Valid reports whether s is one of the three known statuses.
func (s TripStatus) Valid() bool {
	switch s {
	case StatusCurrent, StatusUpcoming, StatusPast:
		return true
	}
	return false
}

// Trip is the top-level aggregate: a planned journey owning one Day per
// calendar day between StartDate and EndDate inclusive.
//
// Status is computed once at creation and stored; it is not re-derived as
// time passes. Days is fixed in length once generated.
type Trip struct {
	ID          uuid.UUID  `json:"id"`
	OwnerID     string     `json:"owner_id"`
	Name        string     `json:"name"`
	Destination string     `json:"destination"`
	Description string     `json:"description,omitempty"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     time.Time  `json:"end_date"`
	Status      TripStatus `json:"status"`
	ImageURL    string     `json:"image_url,omitempty"`
	Days        []Day      `json:"days"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// StatusGroups is the dashboard view of a trip collection: every trip lands
// in exactly one bucket, chosen by its stored Status.
type StatusGroups struct {
	Current  []Trip
	Upcoming []Trip
	Past     []Trip
}
