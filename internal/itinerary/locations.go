package itinerary

import "github.com/pkordes/itinerary-planner/internal/domain"

// LocatedActivity is an activity with a location, tagged with where it sits
// in the itinerary. It feeds the map view.
type LocatedActivity struct {
	DayNumber int
	Position  int
	Activity  domain.Activity
}

// Locations flattens every activity that has a location, in day order and
// then schedule order within each day.
func Locations(days []domain.Day) []LocatedActivity {
	out := []LocatedActivity{}
	for _, d := range days {
		for i, a := range d.Activities {
			if a.Location == "" {
				continue
			}
			out = append(out, LocatedActivity{DayNumber: d.DayNumber, Position: i, Activity: cloneActivity(a)})
		}
	}
	return out
}
