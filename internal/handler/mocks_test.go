package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/itinerary-planner/internal/auth"
	"github.com/pkordes/itinerary-planner/internal/domain"
	"github.com/pkordes/itinerary-planner/internal/handler"
	"github.com/pkordes/itinerary-planner/internal/handler/gen"
	"github.com/pkordes/itinerary-planner/internal/itinerary"
)

// Test doubles for the servicer interfaces. Set only the method fields your
// test needs.

type mockTripServicer struct {
	create       func(ctx context.Context, owner string, trip domain.Trip) (domain.Trip, error)
	getByID      func(ctx context.Context, owner string, id uuid.UUID) (domain.Trip, error)
	list         func(ctx context.Context, owner string, p domain.PaginationParams) ([]domain.Trip, int64, error)
	listByStatus func(ctx context.Context, owner string) (domain.StatusGroups, error)
	update       func(ctx context.Context, owner string, trip domain.Trip) (domain.Trip, error)
	updateDays   func(ctx context.Context, owner string, id uuid.UUID, days []domain.Day) (domain.Trip, error)
}

func (m *mockTripServicer) Create(ctx context.Context, owner string, t domain.Trip) (domain.Trip, error) {
	return m.create(ctx, owner, t)
}
func (m *mockTripServicer) GetByID(ctx context.Context, owner string, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, owner, id)
}
func (m *mockTripServicer) List(ctx context.Context, owner string, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	return m.list(ctx, owner, p)
}
func (m *mockTripServicer) ListByStatus(ctx context.Context, owner string) (domain.StatusGroups, error) {
	return m.listByStatus(ctx, owner)
}
func (m *mockTripServicer) Update(ctx context.Context, owner string, t domain.Trip) (domain.Trip, error) {
	return m.update(ctx, owner, t)
}
func (m *mockTripServicer) UpdateDays(ctx context.Context, owner string, id uuid.UUID, days []domain.Day) (domain.Trip, error) {
	return m.updateDays(ctx, owner, id, days)
}

type mockItineraryServicer struct {
	addActivity    func(ctx context.Context, owner string, tripID uuid.UUID, dayNumber int, a domain.Activity) (domain.Activity, error)
	deleteActivity func(ctx context.Context, owner string, tripID uuid.UUID, dayNumber int, activityID string) error
	moveActivity   func(ctx context.Context, owner string, tripID uuid.UUID, m itinerary.Move) ([]domain.Day, bool, error)
	locations      func(ctx context.Context, owner string, tripID uuid.UUID) ([]itinerary.LocatedActivity, error)
}

func (m *mockItineraryServicer) AddActivity(ctx context.Context, owner string, tripID uuid.UUID, dayNumber int, a domain.Activity) (domain.Activity, error) {
	return m.addActivity(ctx, owner, tripID, dayNumber, a)
}
func (m *mockItineraryServicer) DeleteActivity(ctx context.Context, owner string, tripID uuid.UUID, dayNumber int, activityID string) error {
	return m.deleteActivity(ctx, owner, tripID, dayNumber, activityID)
}
func (m *mockItineraryServicer) MoveActivity(ctx context.Context, owner string, tripID uuid.UUID, mv itinerary.Move) ([]domain.Day, bool, error) {
	return m.moveActivity(ctx, owner, tripID, mv)
}
func (m *mockItineraryServicer) Locations(ctx context.Context, owner string, tripID uuid.UUID) ([]itinerary.LocatedActivity, error) {
	return m.locations(ctx, owner, tripID)
}

type mockSessionServicer struct {
	start func(ctx context.Context, email string) (string, auth.Session, error)
}

func (m *mockSessionServicer) Start(ctx context.Context, email string) (string, auth.Session, error) {
	return m.start(ctx, email)
}

type mockExportServicer struct {
	export func(ctx context.Context, owner string) ([]domain.ExportRow, error)
}

func (m *mockExportServicer) Export(ctx context.Context, owner string) ([]domain.ExportRow, error) {
	return m.export(ctx, owner)
}

// compile-time checks: mocks must satisfy the handler interfaces.
var (
	_ handler.TripServicer      = (*mockTripServicer)(nil)
	_ handler.ItineraryServicer = (*mockItineraryServicer)(nil)
	_ handler.SessionServicer   = (*mockSessionServicer)(nil)
	_ handler.ExportServicer    = (*mockExportServicer)(nil)
)

// ---- helpers ---------------------------------------------------------------

const testOwner = "alice@example.com"

// asOwner stands in for auth.Middleware: every request runs as testOwner.
func asOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(auth.WithOwner(r.Context(), testOwner)))
	})
}

// newHTTPHandler wires srv into the generated chi router the way main.go
// does, with the session already established.
func newHTTPHandler(srv *handler.Server) http.Handler {
	return asOwner(gen.Handler(gen.NewStrictHandler(srv, nil)))
}

func tripFixture() domain.Trip {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	return domain.Trip{
		ID:          uuid.New(),
		OwnerID:     testOwner,
		Name:        "Tokyo Adventure",
		Destination: "Tokyo, Japan",
		StartDate:   start,
		EndDate:     end,
		Status:      domain.StatusUpcoming,
		ImageURL:    domain.DefaultImageURL,
		Days: []domain.Day{
			{DayNumber: 1, Date: start, Activities: []domain.Activity{
				{ID: "a1", Name: "Senso-ji", Location: "Asakusa", Type: domain.ActivityAttraction},
			}},
			{DayNumber: 2, Date: end, Activities: []domain.Activity{}},
		},
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}
