package repo

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/itinerary-planner/internal/domain"
	"github.com/pkordes/itinerary-planner/internal/itinerary"
)

// memTripRepo keeps the trip collection in process memory, so trips live as
// long as the server does. Every read and write copies the trip so callers
// can never mutate stored state through a returned value.
type memTripRepo struct {
	mu    sync.RWMutex
	trips map[uuid.UUID]domain.Trip
	now   func() time.Time
}

// NewMemoryTripRepo constructs an empty in-memory TripRepo.
func NewMemoryTripRepo() TripRepo {
	return &memTripRepo{
		trips: make(map[uuid.UUID]domain.Trip),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (r *memTripRepo) Create(_ context.Context, trip domain.Trip) (domain.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if trip.ID == uuid.Nil {
		trip.ID = uuid.New()
	}
	if _, exists := r.trips[trip.ID]; exists {
		return domain.Trip{}, fmt.Errorf("repo.memTripRepo.Create: trip %s already exists", trip.ID)
	}

	now := r.now()
	trip.CreatedAt, trip.UpdatedAt = now, now
	r.trips[trip.ID] = cloneTrip(trip)
	return cloneTrip(trip), nil
}

func (r *memTripRepo) GetByID(_ context.Context, id uuid.UUID) (domain.Trip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.trips[id]
	if !ok {
		return domain.Trip{}, fmt.Errorf("repo.memTripRepo.GetByID: %w", domain.ErrNotFound)
	}
	return cloneTrip(t), nil
}

func (r *memTripRepo) ListPaged(ctx context.Context, ownerID string, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	all, err := r.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, 0, err
	}
	lo, hi := p.Window(len(all))
	return all[lo:hi], int64(len(all)), nil
}

func (r *memTripRepo) ListByOwner(_ context.Context, ownerID string) ([]domain.Trip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []domain.Trip{}
	for _, t := range r.trips {
		if t.OwnerID == ownerID {
			out = append(out, cloneTrip(t))
		}
	}
	slices.SortFunc(out, func(a, b domain.Trip) int {
		return cmp.Or(
			a.StartDate.Compare(b.StartDate),
			a.CreatedAt.Compare(b.CreatedAt),
			cmp.Compare(a.ID.String(), b.ID.String()),
		)
	})
	return out, nil
}

func (r *memTripRepo) Update(_ context.Context, trip domain.Trip) (domain.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.trips[trip.ID]
	if !ok {
		return domain.Trip{}, fmt.Errorf("repo.memTripRepo.Update: %w", domain.ErrNotFound)
	}

	trip.OwnerID = stored.OwnerID
	trip.CreatedAt = stored.CreatedAt
	trip.UpdatedAt = r.now()
	r.trips[trip.ID] = cloneTrip(trip)
	return cloneTrip(trip), nil
}

func cloneTrip(t domain.Trip) domain.Trip {
	t.Days = itinerary.CloneDays(t.Days)
	if t.Days == nil {
		t.Days = []domain.Day{}
	}
	return t
}
