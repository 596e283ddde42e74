package itinerary

import (
	"fmt"
	"strings"

	"github.com/pkordes/itinerary-planner/internal/domain"
)

// NormalizeActivity trims the free-text fields of a, resolves an empty type
// to the default and checks that the name is present.
func NormalizeActivity(a domain.Activity) (domain.Activity, error) {
	a.Name = strings.TrimSpace(a.Name)
	a.Time = strings.TrimSpace(a.Time)
	a.Location = strings.TrimSpace(a.Location)
	a.Notes = strings.TrimSpace(a.Notes)
	if a.Name == "" {
		return domain.Activity{}, fmt.Errorf("%w: activity name is required", domain.ErrValidation)
	}
	t, err := domain.ParseActivityType(string(a.Type))
	if err != nil {
		return domain.Activity{}, err
	}
	a.Type = t
	return a, nil
}

// ValidateDays checks that next may replace current as a trip's day list.
// The day structure is fixed at creation, so next must have the same days
// with the same numbers and dates in the same order. Every activity must
// carry an id and a name, and no id may appear twice anywhere in the list.
func ValidateDays(current, next []domain.Day) error {
	if len(next) != len(current) {
		return fmt.Errorf("%w: trip has %d days, got %d", domain.ErrValidation, len(current), len(next))
	}

	seen := make(map[string]int)
	for i, d := range next {
		want := current[i]
		if d.DayNumber != want.DayNumber {
			return fmt.Errorf("%w: day %d: expected day number %d", domain.ErrValidation, i+1, want.DayNumber)
		}
		if !CalendarDate(d.Date).Equal(CalendarDate(want.Date)) {
			return fmt.Errorf("%w: day %d: date cannot change", domain.ErrValidation, d.DayNumber)
		}
		for _, a := range d.Activities {
			if strings.TrimSpace(a.ID) == "" {
				return fmt.Errorf("%w: day %d: activity id is required", domain.ErrValidation, d.DayNumber)
			}
			if _, err := NormalizeActivity(a); err != nil {
				return fmt.Errorf("day %d: %w", d.DayNumber, err)
			}
			if prev, dup := seen[a.ID]; dup {
				return fmt.Errorf("%w: activity %q appears in day %d and day %d",
					domain.ErrValidation, a.ID, prev, d.DayNumber)
			}
			seen[a.ID] = d.DayNumber
		}
	}
	return nil
}
