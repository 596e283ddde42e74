package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/itinerary-planner/internal/domain"
	"github.com/pkordes/itinerary-planner/internal/service"
)

func exportRepo(trips ...domain.Trip) *mockTripRepo {
	return &mockTripRepo{
		listByOwner: func(context.Context, string) ([]domain.Trip, error) { return trips, nil },
	}
}

func TestExportService_Export_OneRowPerActivity(t *testing.T) {
	trip := newTrip("Japan", "2025-07-01", "2025-07-02")
	trip.ID = uuid.New()
	trip.Status = domain.StatusUpcoming
	trip.Days = []domain.Day{
		{DayNumber: 1, Date: day("2025-07-01"), Activities: []domain.Activity{
			{ID: "a", Name: "Temple", Type: domain.ActivityAttraction, Time: "09:00"},
			{ID: "b", Name: "Ramen", Type: domain.ActivityDining, Notes: "spicy"},
		}},
		{DayNumber: 2, Date: day("2025-07-02"), Activities: []domain.Activity{
			{ID: "c", Name: "Train", Type: domain.ActivityTravel, Location: "Kyoto Station"},
		}},
	}

	rows, err := service.NewExportService(exportRepo(trip)).Export(context.Background(), owner)

	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, trip.ID.String(), rows[0].TripID)
	assert.Equal(t, "2025-07-01", rows[0].TripStartDate)
	assert.Equal(t, "2025-07-02", rows[0].TripEndDate)
	assert.Equal(t, "upcoming", rows[0].Status)
	assert.Equal(t, "09:00", rows[0].ActivityTime)
	assert.Equal(t, 1, rows[1].Position)
	assert.Equal(t, "dining", rows[1].ActivityType)
	assert.Equal(t, "spicy", rows[1].ActivityNotes)
	assert.Equal(t, 2, rows[2].DayNumber)
	assert.Equal(t, "2025-07-02", rows[2].DayDate)
	assert.Equal(t, 0, rows[2].Position)
	assert.Equal(t, "Kyoto Station", rows[2].ActivityLocation)
}

func TestExportService_Export_TripWithoutActivities(t *testing.T) {
	trip := newTrip("Empty", "2025-07-01", "2025-07-01")
	trip.Days = []domain.Day{{DayNumber: 1, Date: day("2025-07-01"), Activities: []domain.Activity{}}}

	rows, err := service.NewExportService(exportRepo(trip)).Export(context.Background(), owner)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Empty", rows[0].TripName)
	assert.Zero(t, rows[0].DayNumber)
	assert.Empty(t, rows[0].ActivityID)
}

func TestExportService_Export_NoTrips(t *testing.T) {
	rows, err := service.NewExportService(exportRepo()).Export(context.Background(), owner)

	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestExportService_Export_RepoError(t *testing.T) {
	boom := errors.New("db down")
	svc := service.NewExportService(&mockTripRepo{
		listByOwner: func(context.Context, string) ([]domain.Trip, error) { return nil, boom },
	})

	_, err := svc.Export(context.Background(), owner)

	assert.ErrorIs(t, err, boom)
}
