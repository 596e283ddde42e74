package domain

import "fmt"

// ActivityType is the closed set of activity categories.
type ActivityType string

const (
	ActivityAttraction    ActivityType = "attraction"
	ActivityDining        ActivityType = "dining"
	ActivityAccommodation ActivityType = "accommodation"
	ActivityTravel        ActivityType = "travel"
	ActivityOther         ActivityType = "other"
)

// ActivityTypes lists every ActivityType in display order.
var ActivityTypes = []ActivityType{
	ActivityAttraction,
	ActivityDining,
	ActivityAccommodation,
	ActivityTravel,
	ActivityOther,
}

// ParseActivityType resolves a raw type string. An empty string means the
// creator did not choose one and resolves to ActivityAttraction.
// Returns ErrValidation for anything outside the closed set.
func ParseActivityType(s string) (ActivityType, error) {
	if s == "" {
		return ActivityAttraction, nil
	}
	t := ActivityType(s)
	if _, err := t.Label(); err != nil {
		return "", err
	}
	return t, nil
}

// Label returns the human-readable name of the type.
func (t ActivityType) Label() (string, error) {
	switch t {
	case ActivityAttraction:
		return "Attraction", nil
	case ActivityDining:
		return "Dining", nil
	case ActivityAccommodation:
		return "Accommodation", nil
	case ActivityTravel:
		return "Travel", nil
	case ActivityOther:
		return "Other", nil
	}
	return "", fmt.Errorf("%w: unknown activity type %q", ErrValidation, string(t))
}

// Activity is a single scheduled item owned by exactly one Day.
// Time, Location and Notes are free text; Latitude/Longitude are optional
// map coordinates.
type Activity struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Time      string       `json:"time,omitempty"`
	Location  string       `json:"location,omitempty"`
	Type      ActivityType `json:"type"`
	Notes     string       `json:"notes,omitempty"`
	Latitude  *float64     `json:"lat,omitempty"`
	Longitude *float64     `json:"lng,omitempty"`
}
