package domain

import "time"

// Day is one calendar day of a trip. DayNumber is 1-based and Date equals
// the trip's StartDate plus DayNumber-1 days. Activities are kept in
// schedule order, which is insertion order and not sorted by Time.
type Day struct {
	DayNumber  int        `json:"day_number"`
	Date       time.Time  `json:"date"`
	Activities []Activity `json:"activities"`
}
