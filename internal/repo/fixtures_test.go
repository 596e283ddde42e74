package repo_test

import (
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/itinerary-planner/internal/domain"
)

// tripFixture returns a two-day domain.Trip with one activity on day 1.
// Callers can override individual fields after calling this function.
func tripFixture(owner string) domain.Trip {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
	return domain.Trip{
		ID:          uuid.New(),
		OwnerID:     owner,
		Name:        "Tokyo Adventure",
		Destination: "Tokyo, Japan",
		Description: "Temples and ramen",
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
	}
}
