// Package handler implements the HTTP handlers for the itinerary planner API.
// All handlers are methods on Server, which implements gen.StrictServerInterface.
// Methods are split into domain-specific files (health.go, trip.go, etc.) but
// all share the same Server struct so they can access its dependencies.
package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/pkordes/itinerary-planner/internal/auth"
	"github.com/pkordes/itinerary-planner/internal/domain"
	"github.com/pkordes/itinerary-planner/internal/handler/gen"
	"github.com/pkordes/itinerary-planner/internal/itinerary"
)

// TripServicer defines the trip collection operations the handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching storage or the service layer.
type TripServicer interface {
	Create(ctx context.Context, owner string, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, owner string, id uuid.UUID) (domain.Trip, error)
	List(ctx context.Context, owner string, p domain.PaginationParams) ([]domain.Trip, int64, error)
	ListByStatus(ctx context.Context, owner string) (domain.StatusGroups, error)
	Update(ctx context.Context, owner string, trip domain.Trip) (domain.Trip, error)
	UpdateDays(ctx context.Context, owner string, id uuid.UUID, days []domain.Day) (domain.Trip, error)
}

// ItineraryServicer defines the activity operations on a stored trip.
type ItineraryServicer interface {
	AddActivity(ctx context.Context, owner string, tripID uuid.UUID, dayNumber int, a domain.Activity) (domain.Activity, error)
	DeleteActivity(ctx context.Context, owner string, tripID uuid.UUID, dayNumber int, activityID string) error
	MoveActivity(ctx context.Context, owner string, tripID uuid.UUID, m itinerary.Move) ([]domain.Day, bool, error)
	Locations(ctx context.Context, owner string, tripID uuid.UUID) ([]itinerary.LocatedActivity, error)
}

// SessionServicer starts sessions.
type SessionServicer interface {
	Start(ctx context.Context, email string) (string, auth.Session, error)
}

// ExportServicer defines the operation the export handler depends on.
type ExportServicer interface {
	Export(ctx context.Context, owner string) ([]domain.ExportRow, error)
}

// Server implements gen.StrictServerInterface for all API endpoints.
// Wire it in main.go via gen.NewStrictHandlerWithOptions.
type Server struct {
	trips     TripServicer
	itinerary ItineraryServicer
	sessions  SessionServicer
	export    ExportServicer
}

// compile-time check: Server must satisfy the generated interface.
var _ gen.StrictServerInterface = (*Server)(nil)

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, itin ItineraryServicer, sessions SessionServicer, export ExportServicer) *Server {
	return &Server{trips: trips, itinerary: itin, sessions: sessions, export: export}
}

// owner returns the session subject placed in ctx by auth.Middleware.
// Returns ErrNoSession when the request carries none.
func owner(ctx context.Context) (string, error) {
	o, ok := auth.OwnerFromContext(ctx)
	if !ok {
		return "", ErrNoSession
	}
	return o, nil
}
