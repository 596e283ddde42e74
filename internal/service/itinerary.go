package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/itinerary-planner/internal/domain"
	"github.com/pkordes/itinerary-planner/internal/itinerary"
)

// ItineraryService applies the mutation engine to stored trips: adding,
// deleting and moving activities, and listing their locations.
// Writes share TripService's lock.
type ItineraryService struct {
	trips *TripService
}

// NewItineraryService constructs an ItineraryService over the trips held by
// trips.
func NewItineraryService(trips *TripService) *ItineraryService {
	return &ItineraryService{trips: trips}
}

// AddActivity appends activity to the day numbered dayNumber of owner's
// trip and returns the stored activity. An empty ID is filled with a new
// UUID; an ID already used anywhere in the trip is rejected.
// Returns domain.ErrValidation for invalid input, domain.ErrNotFound if the
// trip or day does not exist.
func (s *ItineraryService) AddActivity(ctx context.Context, owner string, tripID uuid.UUID, dayNumber int, activity domain.Activity) (domain.Activity, error) {
	a, err := itinerary.NormalizeActivity(activity)
	if err != nil {
		return domain.Activity{}, err
	}
	a.ID = strings.TrimSpace(a.ID)
	if a.ID == "" {
		a.ID = uuid.NewString()
	}

	_, _, err = s.trips.mutate(ctx, owner, tripID, func(cur domain.Trip) (domain.Trip, bool, error) {
		if itinerary.ContainsActivity(cur.Days, a.ID) {
			return domain.Trip{}, false, fmt.Errorf("%w: activity id %q already exists in this trip", domain.ErrValidation, a.ID)
		}
		days, err := itinerary.AddActivity(cur.Days, dayNumber, a)
		if err != nil {
			return domain.Trip{}, false, err
		}
		cur.Days = days
		return cur, true, nil
	})
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ItineraryService.AddActivity: %w", err)
	}
	return a, nil
}

// DeleteActivity removes the activity from the day numbered dayNumber.
// Removing an activity that is not there succeeds without writing.
// Returns domain.ErrNotFound only when the trip does not exist for owner.
func (s *ItineraryService) DeleteActivity(ctx context.Context, owner string, tripID uuid.UUID, dayNumber int, activityID string) error {
	_, _, err := s.trips.mutate(ctx, owner, tripID, func(cur domain.Trip) (domain.Trip, bool, error) {
		i := itinerary.FindDay(cur.Days, dayNumber)
		if i < 0 || itinerary.IndexOfActivity(cur.Days[i].Activities, activityID) < 0 {
			return cur, false, nil
		}
		cur.Days = itinerary.DeleteActivity(cur.Days, activityID, dayNumber)
		return cur, true, nil
	})
	if err != nil {
		return fmt.Errorf("service.ItineraryService.DeleteActivity: %w", err)
	}
	return nil
}

// MoveActivity relocates an activity as described by m and returns the
// trip's resulting days. moved is false when the activity is not in the
// source day or the target day does not exist; the trip is then left
// untouched and its current days are returned.
// Returns domain.ErrNotFound only when the trip does not exist for owner.
func (s *ItineraryService) MoveActivity(ctx context.Context, owner string, tripID uuid.UUID, m itinerary.Move) ([]domain.Day, bool, error) {
	trip, moved, err := s.trips.mutate(ctx, owner, tripID, func(cur domain.Trip) (domain.Trip, bool, error) {
		days, ok := itinerary.MoveActivity(cur.Days, m)
		if !ok {
			return cur, false, nil
		}
		cur.Days = days
		return cur, true, nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("service.ItineraryService.MoveActivity: %w", err)
	}
	return trip.Days, moved, nil
}

// Locations returns the activities of owner's trip that have a location,
// in itinerary order.
// Returns domain.ErrNotFound if the trip does not exist for owner.
func (s *ItineraryService) Locations(ctx context.Context, owner string, tripID uuid.UUID) ([]itinerary.LocatedActivity, error) {
	trip, err := s.trips.load(ctx, owner, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ItineraryService.Locations: %w", err)
	}
	return itinerary.Locations(trip.Days), nil
}
