package itinerary

import (
	"slices"

	"github.com/pkordes/itinerary-planner/internal/domain"
)

// FindDay returns the index of the day numbered dayNumber, or -1.
func FindDay(days []domain.Day, dayNumber int) int {
	return slices.IndexFunc(days, func(d domain.Day) bool { return d.DayNumber == dayNumber })
}

// IndexOfActivity returns the position of the activity with the given id
// in activities, or -1.
func IndexOfActivity(activities []domain.Activity, id string) int {
	return slices.IndexFunc(activities, func(a domain.Activity) bool { return a.ID == id })
}

// ContainsActivity reports whether any day holds an activity with the given id.
func ContainsActivity(days []domain.Day, id string) bool {
	for _, d := range days {
		if IndexOfActivity(d.Activities, id) >= 0 {
			return true
		}
	}
	return false
}

// CountActivities returns the total number of activities across all days.
func CountActivities(days []domain.Day) int {
	n := 0
	for _, d := range days {
		n += len(d.Activities)
	}
	return n
}

// CloneDays returns a deep copy of days. Activity slices are never shared
// with the input, and a nil activity slice comes back empty.
func CloneDays(days []domain.Day) []domain.Day {
	if days == nil {
		return nil
	}
	out := make([]domain.Day, len(days))
	for i, d := range days {
		acts := make([]domain.Activity, len(d.Activities))
		for j, a := range d.Activities {
			acts[j] = cloneActivity(a)
		}
		out[i] = domain.Day{DayNumber: d.DayNumber, Date: d.Date, Activities: acts}
	}
	return out
}

func cloneActivity(a domain.Activity) domain.Activity {
	if a.Latitude != nil {
		lat := *a.Latitude
		a.Latitude = &lat
	}
	if a.Longitude != nil {
		lng := *a.Longitude
		a.Longitude = &lng
	}
	return a
}
