package handler

import (
	"context"
	"errors"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/itinerary-planner/internal/domain"
	"github.com/pkordes/itinerary-planner/internal/handler/gen"
)

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(ctx context.Context, req gen.CreateTripRequestObject) (gen.CreateTripResponseObject, error) {
	who, err := owner(ctx)
	if err != nil {
		return nil, err
	}
	if req.Body == nil {
		return gen.CreateTrip422JSONResponse(requestBody("request body is required")), nil
	}

	created, err := s.trips.Create(ctx, who, domain.Trip{
		Name:        req.Body.Name,
		Destination: req.Body.Destination,
		Description: derefString(req.Body.Description),
		StartDate:   req.Body.StartDate.Time,
		EndDate:     req.Body.EndDate.Time,
		ImageURL:    derefString(req.Body.ImageUrl),
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.CreateTrip422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.CreateTrip201JSONResponse(tripToResponse(created)), nil
}

// ListTrips handles GET /trips.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListTrips(ctx context.Context, req gen.ListTripsRequestObject) (gen.ListTripsResponseObject, error) {
	who, err := owner(ctx)
	if err != nil {
		return nil, err
	}

	params := domain.NewPaginationParams(req.Params.Page, req.Params.Limit)
	trips, total, err := s.trips.List(ctx, who, params)
	if err != nil {
		return nil, err
	}

	return gen.ListTrips200JSONResponse{
		Data: tripsToResponse(trips),
		Pagination: gen.Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(total),
		},
	}, nil
}

// ListTripsByStatus handles GET /trips/by-status.
func (s *Server) ListTripsByStatus(ctx context.Context, _ gen.ListTripsByStatusRequestObject) (gen.ListTripsByStatusResponseObject, error) {
	who, err := owner(ctx)
	if err != nil {
		return nil, err
	}

	groups, err := s.trips.ListByStatus(ctx, who)
	if err != nil {
		return nil, err
	}

	return gen.ListTripsByStatus200JSONResponse{
		Current:  tripsToResponse(groups.Current),
		Upcoming: tripsToResponse(groups.Upcoming),
		Past:     tripsToResponse(groups.Past),
	}, nil
}

// GetTrip handles GET /trips/{tripId}.
func (s *Server) GetTrip(ctx context.Context, req gen.GetTripRequestObject) (gen.GetTripResponseObject, error) {
	who, err := owner(ctx)
	if err != nil {
		return nil, err
	}

	trip, err := s.trips.GetByID(ctx, who, req.TripId)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetTrip404JSONResponse(notFoundBody("trip not found")), nil
		}
		return nil, err
	}

	return gen.GetTrip200JSONResponse(tripToResponse(trip)), nil
}

// UpdateTrip handles PUT /trips/{tripId}.
func (s *Server) UpdateTrip(ctx context.Context, req gen.UpdateTripRequestObject) (gen.UpdateTripResponseObject, error) {
	who, err := owner(ctx)
	if err != nil {
		return nil, err
	}
	if req.Body == nil {
		return gen.UpdateTrip422JSONResponse(requestBody("request body is required")), nil
	}

	updated, err := s.trips.Update(ctx, who, domain.Trip{
		ID:          req.TripId,
		Name:        req.Body.Name,
		Destination: req.Body.Destination,
		Description: derefString(req.Body.Description),
		ImageURL:    derefString(req.Body.ImageUrl),
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.UpdateTrip404JSONResponse(notFoundBody("trip not found")), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.UpdateTrip422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.UpdateTrip200JSONResponse(tripToResponse(updated)), nil
}

// UpdateTripDays handles PUT /trips/{tripId}/days.
func (s *Server) UpdateTripDays(ctx context.Context, req gen.UpdateTripDaysRequestObject) (gen.UpdateTripDaysResponseObject, error) {
	who, err := owner(ctx)
	if err != nil {
		return nil, err
	}
	if req.Body == nil {
		return gen.UpdateTripDays422JSONResponse(requestBody("request body is required")), nil
	}

	updated, err := s.trips.UpdateDays(ctx, who, req.TripId, daysFromRequest(req.Body.Days))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.UpdateTripDays404JSONResponse(notFoundBody("trip not found")), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.UpdateTripDays422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.UpdateTripDays200JSONResponse(tripToResponse(updated)), nil
}

// --- mapping helpers --------------------------------------------------------

// tripToResponse converts a domain.Trip into the generated gen.Trip type.
func tripToResponse(t domain.Trip) gen.Trip {
	return gen.Trip{
		Id:          t.ID,
		Name:        t.Name,
		Destination: t.Destination,
		Description: nilIfEmpty(t.Description),
		StartDate:   openapi_types.Date{Time: t.StartDate},
		EndDate:     openapi_types.Date{Time: t.EndDate},
		Status:      gen.TripStatus(t.Status),
		ImageUrl:    t.ImageURL,
		Days:        daysToResponse(t.Days),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// tripsToResponse maps a slice of trips; the result is never nil so it
// encodes as [] rather than null.
func tripsToResponse(trips []domain.Trip) []gen.Trip {
	out := make([]gen.Trip, len(trips))
	for i, t := range trips {
		out[i] = tripToResponse(t)
	}
	return out
}

func daysToResponse(days []domain.Day) []gen.Day {
	out := make([]gen.Day, len(days))
	for i, d := range days {
		acts := make([]gen.Activity, len(d.Activities))
		for j, a := range d.Activities {
			acts[j] = activityToResponse(a)
		}
		out[i] = gen.Day{
			DayNumber:  d.DayNumber,
			Date:       openapi_types.Date{Time: d.Date},
			Activities: acts,
		}
	}
	return out
}

// daysFromRequest converts a client-supplied day list into domain days.
// Dates arrive as calendar dates and are kept at UTC midnight.
func daysFromRequest(days []gen.Day) []domain.Day {
	out := make([]domain.Day, len(days))
	for i, d := range days {
		acts := make([]domain.Activity, len(d.Activities))
		for j, a := range d.Activities {
			acts[j] = domain.Activity{
				ID:        a.Id,
				Name:      a.Name,
				Time:      derefString(a.Time),
				Location:  derefString(a.Location),
				Type:      domain.ActivityType(a.Type),
				Notes:     derefString(a.Notes),
				Latitude:  a.Lat,
				Longitude: a.Lng,
			}
		}
		out[i] = domain.Day{DayNumber: d.DayNumber, Date: d.Date.Time, Activities: acts}
	}
	return out
}

// derefString returns the value pointed to by s, or "" if s is nil.
func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefBool(b *bool) bool {
	return b != nil && *b
}

// nilIfEmpty returns nil for an empty string so it is omitted from JSON.
func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
