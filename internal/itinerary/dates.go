// Package itinerary holds the pure rules of the planner: classifying a trip
// by its dates, generating the day list for a date range, and the mutation
// engine that adds, deletes and moves activities across days.
//
// Every function here is a single-pass transformation over values. Nothing
// blocks, nothing does I/O, and no input slice is modified.
package itinerary

import (
	"fmt"
	"time"

	"github.com/pkordes/itinerary-planner/internal/domain"
)

// MaxTripDays is the longest itinerary GenerateDays will build.
const MaxTripDays = 366

const secondsPerDay = 24 * 60 * 60

// CalendarDate strips the time of day from t, keeping the year, month and
// day as seen in t's own location, and returns that date at UTC midnight.
// UTC has no DST transitions, so arithmetic on the result is pure
// calendar-day arithmetic.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Classify returns the status of a trip spanning start..end as seen on
// today. The "current" check runs first, so a single-day trip happening
// today is current, never past.
func Classify(start, end, today time.Time) domain.TripStatus {
	s, e, now := CalendarDate(start), CalendarDate(end), CalendarDate(today)
	switch {
	case !now.Before(s) && !now.After(e):
		return domain.StatusCurrent
	case e.Before(now):
		return domain.StatusPast
	default:
		return domain.StatusUpcoming
	}
}

// DayCount returns the inclusive number of calendar days from start to end.
// The result is zero or negative when end precedes start. Counting is done
// in whole days, so it stays exact for spans of any length.
func DayCount(start, end time.Time) int {
	s, e := CalendarDate(start), CalendarDate(end)
	return int((e.Unix()-s.Unix())/secondsPerDay) + 1
}

// GenerateDays builds one empty Day per calendar day from start to end
// inclusive. Dates are produced by stepping with AddDate rather than by
// adding elapsed durations.
// Returns domain.ErrValidation when end is before start or the range spans
// more than MaxTripDays days.
func GenerateDays(start, end time.Time) ([]domain.Day, error) {
	n := DayCount(start, end)
	if n < 1 {
		return nil, fmt.Errorf("%w: invalid date range: end date %s is before start date %s",
			domain.ErrValidation, end.Format(time.DateOnly), start.Format(time.DateOnly))
	}
	if n > MaxTripDays {
		return nil, fmt.Errorf("%w: invalid date range: %d days exceeds the maximum of %d",
			domain.ErrValidation, n, MaxTripDays)
	}

	first := CalendarDate(start)
	days := make([]domain.Day, n)
	for i := range days {
		days[i] = domain.Day{
			DayNumber:  i + 1,
			Date:       first.AddDate(0, 0, i),
			Activities: []domain.Activity{},
		}
	}
	return days, nil
}
