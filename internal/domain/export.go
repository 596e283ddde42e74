package domain

// ExportRow is a single row in the full-data export.
// It is a flat, denormalized view: one row per activity, with trip and day
// fields repeated for every activity. Trips with no activities yield one row
// with zero values for all day and activity fields.
type ExportRow struct {
	// Trip fields, repeated for every activity on the trip.
	TripID        string
	TripName      string
	Destination   string
	TripStartDate string // "2006-01-02"
	TripEndDate   string // "2006-01-02"
	Status        string

	// Day fields; zero values when the trip has no activities.
	DayNumber int
	DayDate   string

	// Activity fields. Position is the 0-based index within the day.
	Position         int
	ActivityID       string
	ActivityName     string
	ActivityTime     string
	ActivityLocation string
	ActivityType     string
	ActivityNotes    string
}
