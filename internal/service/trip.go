// Package service contains the business logic for the itinerary planner API.
// Services validate inputs, enforce ownership, and run the itinerary rules
// against stored trips. No SQL lives here; services depend on repo
// interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/itinerary-planner/internal/domain"
	"github.com/pkordes/itinerary-planner/internal/itinerary"
	"github.com/pkordes/itinerary-planner/internal/repo"
)

// TripService implements the trip collection: creating trips, reading them
// back per owner, and replacing their editable fields or day lists.
//
// Every write runs under one mutex, so read-modify-write cycles on a trip
// never interleave. ItineraryService shares the same lock.
type TripService struct {
	repo repo.TripRepo
	now  func() time.Time
	mu   sync.Mutex
}

// NewTripService constructs a TripService backed by the provided TripRepo.
// now supplies "today" for status classification; pass time.Now in
// production.
func NewTripService(r repo.TripRepo, now func() time.Time) *TripService {
	return &TripService{repo: r, now: now}
}

// Create validates the new trip, classifies its status against today,
// generates its empty days, and persists it for owner.
// Returns domain.ErrValidation if input violates business rules.
func (s *TripService) Create(ctx context.Context, owner string, trip domain.Trip) (domain.Trip, error) {
	trip.Name = strings.TrimSpace(trip.Name)
	trip.Destination = strings.TrimSpace(trip.Destination)
	trip.Description = strings.TrimSpace(trip.Description)
	trip.ImageURL = strings.TrimSpace(trip.ImageURL)
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	if trip.StartDate.IsZero() || trip.EndDate.IsZero() {
		return domain.Trip{}, fmt.Errorf("%w: start_date and end_date are required", domain.ErrValidation)
	}

	trip.StartDate = itinerary.CalendarDate(trip.StartDate)
	trip.EndDate = itinerary.CalendarDate(trip.EndDate)
	days, err := itinerary.GenerateDays(trip.StartDate, trip.EndDate)
	if err != nil {
		return domain.Trip{}, err
	}

	trip.ID = uuid.New()
	trip.OwnerID = owner
	trip.Status = itinerary.Classify(trip.StartDate, trip.EndDate, s.now())
	trip.Days = days
	if trip.ImageURL == "" {
		trip.ImageURL = domain.DefaultImageURL
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.repo.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns one of owner's trips.
// Returns domain.ErrNotFound if the trip does not exist or belongs to
// another owner.
func (s *TripService) GetByID(ctx context.Context, owner string, id uuid.UUID) (domain.Trip, error) {
	trip, err := s.load(ctx, owner, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return trip, nil
}

// List returns one page of owner's trips ordered by start date, plus the
// total number of trips owner has.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) List(ctx context.Context, owner string, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	trips, total, err := s.repo.ListPaged(ctx, owner, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.TripService.List: %w", err)
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return trips, total, nil
}

// ListByStatus buckets all of owner's trips by their stored status.
// Each bucket keeps start-date order and is never nil.
func (s *TripService) ListByStatus(ctx context.Context, owner string) (domain.StatusGroups, error) {
	trips, err := s.repo.ListByOwner(ctx, owner)
	if err != nil {
		return domain.StatusGroups{}, fmt.Errorf("service.TripService.ListByStatus: %w", err)
	}

	groups := domain.StatusGroups{
		Current:  []domain.Trip{},
		Upcoming: []domain.Trip{},
		Past:     []domain.Trip{},
	}
	for _, t := range trips {
		switch t.Status {
		case domain.StatusCurrent:
			groups.Current = append(groups.Current, t)
		case domain.StatusPast:
			groups.Past = append(groups.Past, t)
		default:
			groups.Upcoming = append(groups.Upcoming, t)
		}
	}
	return groups, nil
}

// Update replaces the editable fields of a trip: name, destination,
// description and image URL. Dates, status and days are kept; the day list
// is fixed when the trip is created.
// Returns domain.ErrValidation for invalid input, domain.ErrNotFound if the
// trip does not exist for owner.
func (s *TripService) Update(ctx context.Context, owner string, trip domain.Trip) (domain.Trip, error) {
	trip.Name = strings.TrimSpace(trip.Name)
	trip.Destination = strings.TrimSpace(trip.Destination)
	trip.Description = strings.TrimSpace(trip.Description)
	trip.ImageURL = strings.TrimSpace(trip.ImageURL)
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	if trip.ImageURL == "" {
		trip.ImageURL = domain.DefaultImageURL
	}

	result, _, err := s.mutate(ctx, owner, trip.ID, func(cur domain.Trip) (domain.Trip, bool, error) {
		cur.Name = trip.Name
		cur.Destination = trip.Destination
		cur.Description = trip.Description
		cur.ImageURL = trip.ImageURL
		return cur, true, nil
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return result, nil
}

// UpdateDays replaces a trip's whole day list, for example after the client
// reorders activities locally. The new list must keep the trip's days and
// dates and hold each activity exactly once.
// Returns domain.ErrValidation for an invalid list, domain.ErrNotFound if
// the trip does not exist for owner.
func (s *TripService) UpdateDays(ctx context.Context, owner string, id uuid.UUID, days []domain.Day) (domain.Trip, error) {
	result, _, err := s.mutate(ctx, owner, id, func(cur domain.Trip) (domain.Trip, bool, error) {
		if err := itinerary.ValidateDays(cur.Days, days); err != nil {
			return domain.Trip{}, false, err
		}
		next := itinerary.CloneDays(days)
		for i := range next {
			next[i].Date = cur.Days[i].Date
			for j, a := range next[i].Activities {
				// ValidateDays already accepted every activity.
				next[i].Activities[j], _ = itinerary.NormalizeActivity(a)
			}
		}
		cur.Days = next
		return cur, true, nil
	})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.UpdateDays: %w", err)
	}
	return result, nil
}

// load returns the trip with id if owner owns it.
func (s *TripService) load(ctx context.Context, owner string, id uuid.UUID) (domain.Trip, error) {
	trip, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, err
	}
	if trip.OwnerID != owner {
		return domain.Trip{}, domain.ErrNotFound
	}
	return trip, nil
}

// mutate runs one read-modify-write cycle on owner's trip under the write
// lock. fn reports whether it changed anything; unchanged trips are not
// written back and the loaded trip is returned as is.
func (s *TripService) mutate(ctx context.Context, owner string, id uuid.UUID,
	fn func(domain.Trip) (domain.Trip, bool, error)) (domain.Trip, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, err := s.load(ctx, owner, id)
	if err != nil {
		return domain.Trip{}, false, err
	}
	next, changed, err := fn(cur)
	if err != nil {
		return domain.Trip{}, false, err
	}
	if !changed {
		return cur, false, nil
	}
	saved, err := s.repo.Update(ctx, next)
	if err != nil {
		return domain.Trip{}, false, err
	}
	return saved, true, nil
}

// validateTrip enforces the field rules common to Create and Update.
//   - Name and destination must be non-empty after trimming.
//   - EndDate, when both dates are set, must not be before StartDate.
func validateTrip(trip domain.Trip) error {
	if trip.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if trip.Destination == "" {
		return fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}
	if !trip.StartDate.IsZero() && !trip.EndDate.IsZero() &&
		itinerary.CalendarDate(trip.EndDate).Before(itinerary.CalendarDate(trip.StartDate)) {
		return fmt.Errorf("%w: end_date must not be before start_date", domain.ErrValidation)
	}
	return nil
}
