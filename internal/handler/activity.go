package handler

import (
	"context"
	"errors"

	"github.com/pkordes/itinerary-planner/internal/domain"
	"github.com/pkordes/itinerary-planner/internal/handler/gen"
	"github.com/pkordes/itinerary-planner/internal/itinerary"
)

// AddActivity handles POST /trips/{tripId}/days/{dayNumber}/activities.
func (s *Server) AddActivity(ctx context.Context, req gen.AddActivityRequestObject) (gen.AddActivityResponseObject, error) {
	who, err := owner(ctx)
	if err != nil {
		return nil, err
	}
	if req.Body == nil {
		return gen.AddActivity422JSONResponse(requestBody("request body is required")), nil
	}

	in := domain.Activity{
		ID:        derefString(req.Body.Id),
		Name:      req.Body.Name,
		Time:      derefString(req.Body.Time),
		Location:  derefString(req.Body.Location),
		Notes:     derefString(req.Body.Notes),
		Latitude:  req.Body.Lat,
		Longitude: req.Body.Lng,
	}
	if req.Body.Type != nil {
		in.Type = domain.ActivityType(*req.Body.Type)
	}

	created, err := s.itinerary.AddActivity(ctx, who, req.TripId, req.DayNumber, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.AddActivity404JSONResponse(notFoundBody(notFoundMessage(err))), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.AddActivity422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.AddActivity201JSONResponse(activityToResponse(created)), nil
}

// DeleteActivity handles DELETE /trips/{tripId}/days/{dayNumber}/activities/{activityId}.
// Deleting an activity that is already gone still answers 204.
func (s *Server) DeleteActivity(ctx context.Context, req gen.DeleteActivityRequestObject) (gen.DeleteActivityResponseObject, error) {
	who, err := owner(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.itinerary.DeleteActivity(ctx, who, req.TripId, req.DayNumber, req.ActivityId); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.DeleteActivity404JSONResponse(notFoundBody(notFoundMessage(err))), nil
		}
		return nil, err
	}

	return gen.DeleteActivity204Response{}, nil
}

// MoveActivity handles POST /trips/{tripId}/moves.
// A move that cannot apply is not an error: the response reports
// moved=false with the unchanged days.
func (s *Server) MoveActivity(ctx context.Context, req gen.MoveActivityRequestObject) (gen.MoveActivityResponseObject, error) {
	who, err := owner(ctx)
	if err != nil {
		return nil, err
	}

	var m itinerary.Move
	if req.Body != nil {
		m = itinerary.Move{
			ActivityID:  req.Body.ActivityId,
			SourceDay:   req.Body.SourceDay,
			TargetDay:   req.Body.TargetDay,
			TargetIndex: req.Body.TargetIndex,
		}
	}

	days, moved, err := s.itinerary.MoveActivity(ctx, who, req.TripId, m)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.MoveActivity404JSONResponse(notFoundBody("trip not found")), nil
		}
		return nil, err
	}

	return gen.MoveActivity200JSONResponse{Moved: moved, Days: daysToResponse(days)}, nil
}

// ListTripLocations handles GET /trips/{tripId}/locations.
func (s *Server) ListTripLocations(ctx context.Context, req gen.ListTripLocationsRequestObject) (gen.ListTripLocationsResponseObject, error) {
	who, err := owner(ctx)
	if err != nil {
		return nil, err
	}

	located, err := s.itinerary.Locations(ctx, who, req.TripId)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.ListTripLocations404JSONResponse(notFoundBody("trip not found")), nil
		}
		return nil, err
	}

	out := make(gen.ListTripLocations200JSONResponse, len(located))
	for i, l := range located {
		out[i] = gen.Location{
			DayNumber: l.DayNumber,
			Position:  l.Position,
			Activity:  activityToResponse(l.Activity),
		}
	}
	return out, nil
}

// activityToResponse converts a domain.Activity into the generated type.
func activityToResponse(a domain.Activity) gen.Activity {
	return gen.Activity{
		Id:       a.ID,
		Name:     a.Name,
		Time:     nilIfEmpty(a.Time),
		Location: nilIfEmpty(a.Location),
		Type:     gen.ActivityType(a.Type),
		Notes:    nilIfEmpty(a.Notes),
		Lat:      a.Latitude,
		Lng:      a.Longitude,
	}
}
