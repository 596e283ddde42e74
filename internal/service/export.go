package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pkordes/itinerary-planner/internal/domain"
	"github.com/pkordes/itinerary-planner/internal/repo"
)

// ExportService assembles a flat export of an owner's trips.
type ExportService struct {
	trips repo.TripRepo
}

// NewExportService constructs an ExportService backed by the provided repo.
func NewExportService(trips repo.TripRepo) *ExportService {
	return &ExportService{trips: trips}
}

// Export returns one ExportRow per activity across all of owner's trips, in
// trip, day, then schedule order. Trips with no activities contribute one
// row with empty day and activity fields.
// Always returns a non-nil slice.
func (s *ExportService) Export(ctx context.Context, owner string) ([]domain.ExportRow, error) {
	trips, err := s.trips.ListByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: %w", err)
	}

	rows := []domain.ExportRow{}
	for _, t := range trips {
		base := domain.ExportRow{
			TripID:        t.ID.String(),
			TripName:      t.Name,
			Destination:   t.Destination,
			TripStartDate: t.StartDate.Format(time.DateOnly),
			TripEndDate:   t.EndDate.Format(time.DateOnly),
			Status:        string(t.Status),
		}

		n := len(rows)
		for _, d := range t.Days {
			for i, a := range d.Activities {
				row := base
				row.DayNumber = d.DayNumber
				row.DayDate = d.Date.Format(time.DateOnly)
				row.Position = i
				row.ActivityID = a.ID
				row.ActivityName = a.Name
				row.ActivityTime = a.Time
				row.ActivityLocation = a.Location
				row.ActivityType = string(a.Type)
				row.ActivityNotes = a.Notes
				rows = append(rows, row)
			}
		}
		if len(rows) == n {
			rows = append(rows, base)
		}
	}
	return rows, nil
}
