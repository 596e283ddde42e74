package itinerary_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/itinerary-planner/internal/domain"
	"github.com/pkordes/itinerary-planner/internal/itinerary"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(time.DateOnly, s)
	require.NoError(t, err)
	return d
}

// ---- Classify --------------------------------------------------------------

func TestClassify(t *testing.T) {
	start, end := date(t, "2024-02-01"), date(t, "2024-02-05")

	tests := []struct {
		name  string
		today string
		want  domain.TripStatus
	}{
		{"inside range", "2024-02-03", domain.StatusCurrent},
		{"first day", "2024-02-01", domain.StatusCurrent},
		{"last day", "2024-02-05", domain.StatusCurrent},
		{"before start", "2024-01-01", domain.StatusUpcoming},
		{"day before start", "2024-01-31", domain.StatusUpcoming},
		{"after end", "2024-03-01", domain.StatusPast},
		{"day after end", "2024-02-06", domain.StatusPast},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, itinerary.Classify(start, end, date(t, tt.today)))
		})
	}
}

func TestClassify_IgnoresTimeOfDay(t *testing.T) {
	start, end := date(t, "2024-02-01"), date(t, "2024-02-05")

	lateOnLastDay := time.Date(2024, 2, 5, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, domain.StatusCurrent, itinerary.Classify(start, end, lateOnLastDay))
}

func TestClassify_UsesLocalDateOfToday(t *testing.T) {
	start, end := date(t, "2024-02-01"), date(t, "2024-02-05")

	// 01:00 on Feb 6 in Tokyo is still Feb 5 in UTC; the local calendar date wins.
	tokyo := time.FixedZone("JST", 9*60*60)
	today := time.Date(2024, 2, 6, 1, 0, 0, 0, tokyo)

	assert.Equal(t, domain.StatusPast, itinerary.Classify(start, end, today))
}

func TestClassify_SingleDayTripToday(t *testing.T) {
	d := date(t, "2024-05-10")

	// current is checked before past, so a one-day trip happening today is current.
	assert.Equal(t, domain.StatusCurrent, itinerary.Classify(d, d, d.Add(20*time.Hour)))
}

func TestClassify_ExactlyOneBucket(t *testing.T) {
	start, end := date(t, "2024-02-01"), date(t, "2024-02-05")

	for today := date(t, "2024-01-20"); today.Before(date(t, "2024-02-20")); today = today.AddDate(0, 0, 1) {
		got := itinerary.Classify(start, end, today)
		require.True(t, got.Valid(), "status for %s", today)

		inRange := !today.Before(start) && !today.After(end)
		assert.Equal(t, inRange, got == domain.StatusCurrent, "today=%s", today.Format(time.DateOnly))
	}
}

// ---- GenerateDays ----------------------------------------------------------

func TestGenerateDays_ThreeDayTrip(t *testing.T) {
	days, err := itinerary.GenerateDays(date(t, "2024-03-15"), date(t, "2024-03-17"))

	require.NoError(t, err)
	require.Len(t, days, 3)
	for i, want := range []string{"2024-03-15", "2024-03-16", "2024-03-17"} {
		assert.Equal(t, i+1, days[i].DayNumber)
		assert.Equal(t, want, days[i].Date.Format(time.DateOnly))
		assert.NotNil(t, days[i].Activities)
		assert.Empty(t, days[i].Activities)
	}
}

func TestGenerateDays_SingleDay(t *testing.T) {
	d := date(t, "2024-06-01")

	days, err := itinerary.GenerateDays(d, d)

	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, 1, days[0].DayNumber)
	assert.True(t, days[0].Date.Equal(d))
}

func TestGenerateDays_EndBeforeStart(t *testing.T) {
	days, err := itinerary.GenerateDays(date(t, "2024-03-17"), date(t, "2024-03-15"))

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorContains(t, err, "invalid date range")
	assert.Nil(t, days)
}

func TestGenerateDays_AcrossDSTTransition(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata not available")
	}

	// Clocks spring forward on 2024-03-10 in New York, making that day 23 hours long.
	start := time.Date(2024, 3, 9, 0, 0, 0, 0, ny)
	end := time.Date(2024, 3, 12, 0, 0, 0, 0, ny)

	days, err := itinerary.GenerateDays(start, end)

	require.NoError(t, err)
	require.Len(t, days, 4)
	assert.Equal(t, 4, itinerary.DayCount(start, end))
	assert.Equal(t, "2024-03-12", days[3].Date.Format(time.DateOnly))
}

func TestGenerateDays_ConsecutiveDates(t *testing.T) {
	start := date(t, "2024-02-27")
	days, err := itinerary.GenerateDays(start, date(t, "2024-03-02"))

	require.NoError(t, err)
	require.Len(t, days, 5) // 2024 is a leap year
	for i, d := range days {
		assert.True(t, d.Date.Equal(start.AddDate(0, 0, i)), "day %d", i+1)
	}
}

func TestDayCount_CenturiesApart(t *testing.T) {
	// Any 400-year Gregorian cycle holds exactly 146097 days.
	assert.Equal(t, 146098, itinerary.DayCount(date(t, "1700-01-01"), date(t, "2100-01-01")))
	assert.Equal(t, -146096, itinerary.DayCount(date(t, "2100-01-01"), date(t, "1700-01-01")))
}

func TestGenerateDays_LongestAllowedSpan(t *testing.T) {
	start := date(t, "2024-01-01")
	end := date(t, "2024-12-31")

	days, err := itinerary.GenerateDays(start, end)

	require.NoError(t, err)
	require.Len(t, days, itinerary.MaxTripDays)
	assert.Equal(t, itinerary.MaxTripDays, days[len(days)-1].DayNumber)
	assert.True(t, days[len(days)-1].Date.Equal(end))
}

func TestGenerateDays_SpanTooLong(t *testing.T) {
	for name, end := range map[string]string{
		"one day over": "2025-01-01",
		"centuries":    "2400-01-01",
	} {
		t.Run(name, func(t *testing.T) {
			days, err := itinerary.GenerateDays(date(t, "2024-01-01"), date(t, end))

			assert.ErrorIs(t, err, domain.ErrValidation)
			assert.ErrorContains(t, err, "exceeds the maximum")
			assert.Nil(t, days)
		})
	}
}
