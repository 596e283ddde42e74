package itinerary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/itinerary-planner/internal/domain"
	"github.com/pkordes/itinerary-planner/internal/itinerary"
)

// ---- helpers ---------------------------------------------------------------

func threeDays(t *testing.T) []domain.Day {
	t.Helper()
	days, err := itinerary.GenerateDays(date(t, "2024-03-15"), date(t, "2024-03-17"))
	require.NoError(t, err)
	return days
}

func activity(id, name string) domain.Activity {
	return domain.Activity{ID: id, Name: name, Type: domain.ActivityAttraction}
}

// populated returns three days holding a1,a2,a3 / a4,a5 / nothing.
func populated(t *testing.T) []domain.Day {
	t.Helper()
	days := threeDays(t)
	days[0].Activities = []domain.Activity{activity("a1", "Arrive"), activity("a2", "Check-in"), activity("a3", "Crossing")}
	days[1].Activities = []domain.Activity{activity("a4", "Temple"), activity("a5", "Market")}
	return days
}

func ids(acts []domain.Activity) []string {
	out := make([]string, len(acts))
	for i, a := range acts {
		out[i] = a.ID
	}
	return out
}

// ---- AddActivity -----------------------------------------------------------

func TestAddActivity_AppendsToDay(t *testing.T) {
	days := populated(t)

	got, err := itinerary.AddActivity(days, 2, activity("n1", "Skytree"))

	require.NoError(t, err)
	assert.Equal(t, []string{"a4", "a5", "n1"}, ids(got[1].Activities))
	// Input is untouched.
	assert.Equal(t, []string{"a4", "a5"}, ids(days[1].Activities))
}

func TestAddActivity_DayNotFound(t *testing.T) {
	_, err := itinerary.AddActivity(threeDays(t), 9, activity("n1", "X"))

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddThenDelete_RestoresDay(t *testing.T) {
	days := populated(t)

	added, err := itinerary.AddActivity(days, 1, activity("n1", "Dinner"))
	require.NoError(t, err)
	restored := itinerary.DeleteActivity(added, "n1", 1)

	assert.Equal(t, days, restored)
}

// ---- DeleteActivity --------------------------------------------------------

func TestDeleteActivity_RemovesOnlyMatch(t *testing.T) {
	got := itinerary.DeleteActivity(populated(t), "a2", 1)

	assert.Equal(t, []string{"a1", "a3"}, ids(got[0].Activities))
	assert.Equal(t, []string{"a4", "a5"}, ids(got[1].Activities))
}

func TestDeleteActivity_Idempotent(t *testing.T) {
	once := itinerary.DeleteActivity(populated(t), "a2", 1)
	twice := itinerary.DeleteActivity(once, "a2", 1)

	assert.Equal(t, once, twice)
}

func TestDeleteActivity_WrongDayIsNoOp(t *testing.T) {
	days := populated(t)

	got := itinerary.DeleteActivity(days, "a2", 2)

	assert.Equal(t, days, got)
}

func TestDeleteActivity_UnknownDayIsNoOp(t *testing.T) {
	days := populated(t)

	assert.Equal(t, days, itinerary.DeleteActivity(days, "a1", 42))
}

// ---- MoveActivity ----------------------------------------------------------

func TestMoveActivity_AcrossDays(t *testing.T) {
	days := threeDays(t)
	temple := domain.Activity{ID: "t1", Name: "Visit Temple", Time: "09:00", Location: "Asakusa", Type: domain.ActivityAttraction}
	days, err := itinerary.AddActivity(days, 2, temple)
	require.NoError(t, err)
	require.Equal(t, []domain.Activity{temple}, days[1].Activities)

	got, moved := itinerary.MoveActivity(days, itinerary.Move{ActivityID: "t1", SourceDay: 2, TargetDay: 3, TargetIndex: 0})

	require.True(t, moved)
	assert.Empty(t, got[1].Activities)
	require.Len(t, got[2].Activities, 1)
	assert.Equal(t, temple, got[2].Activities[0])
}

func TestMoveActivity_InsertsAtIndex(t *testing.T) {
	got, moved := itinerary.MoveActivity(populated(t), itinerary.Move{ActivityID: "a2", SourceDay: 1, TargetDay: 2, TargetIndex: 1})

	require.True(t, moved)
	assert.Equal(t, []string{"a1", "a3"}, ids(got[0].Activities))
	assert.Equal(t, []string{"a4", "a2", "a5"}, ids(got[1].Activities))
}

func TestMoveActivity_IndexPastEndAppends(t *testing.T) {
	got, moved := itinerary.MoveActivity(populated(t), itinerary.Move{ActivityID: "a1", SourceDay: 1, TargetDay: 2, TargetIndex: 99})

	require.True(t, moved)
	assert.Equal(t, []string{"a4", "a5", "a1"}, ids(got[1].Activities))
}

func TestMoveActivity_NegativeIndexPrepends(t *testing.T) {
	got, moved := itinerary.MoveActivity(populated(t), itinerary.Move{ActivityID: "a1", SourceDay: 1, TargetDay: 2, TargetIndex: -3})

	require.True(t, moved)
	assert.Equal(t, []string{"a1", "a4", "a5"}, ids(got[1].Activities))
}

func TestMoveActivity_ReorderWithinDay(t *testing.T) {
	got, moved := itinerary.MoveActivity(populated(t), itinerary.Move{ActivityID: "a1", SourceDay: 1, TargetDay: 1, TargetIndex: 2})

	require.True(t, moved)
	assert.Equal(t, []string{"a2", "a3", "a1"}, ids(got[0].Activities))
}

func TestMoveActivity_SamePositionIsNoOp(t *testing.T) {
	days := populated(t)

	for i, a := range days[0].Activities {
		got, moved := itinerary.MoveActivity(days, itinerary.Move{ActivityID: a.ID, SourceDay: 1, TargetDay: 1, TargetIndex: i})
		require.True(t, moved)
		assert.Equal(t, days, got, "moving %s onto itself", a.ID)
	}
}

func TestMoveActivity_NotInSourceDay(t *testing.T) {
	days := populated(t)

	got, moved := itinerary.MoveActivity(days, itinerary.Move{ActivityID: "a4", SourceDay: 1, TargetDay: 3, TargetIndex: 0})

	assert.False(t, moved)
	assert.Equal(t, days, got)
}

func TestMoveActivity_TargetDayMissingKeepsActivity(t *testing.T) {
	days := populated(t)

	got, moved := itinerary.MoveActivity(days, itinerary.Move{ActivityID: "a1", SourceDay: 1, TargetDay: 7, TargetIndex: 0})

	assert.False(t, moved)
	assert.Equal(t, days, got, "activity must not vanish from the source day")
}

func TestMoveActivity_PreservesMembership(t *testing.T) {
	days := populated(t)
	total := itinerary.CountActivities(days)

	moves := []itinerary.Move{
		{ActivityID: "a1", SourceDay: 1, TargetDay: 3, TargetIndex: 0},
		{ActivityID: "a5", SourceDay: 2, TargetDay: 1, TargetIndex: 0},
		{ActivityID: "a3", SourceDay: 1, TargetDay: 1, TargetIndex: 0},
		{ActivityID: "a4", SourceDay: 2, TargetDay: 3, TargetIndex: 5},
	}
	for _, m := range moves {
		var moved bool
		days, moved = itinerary.MoveActivity(days, m)
		require.True(t, moved, "move %+v", m)
		require.Equal(t, total, itinerary.CountActivities(days))

		count := 0
		for _, d := range days {
			if itinerary.IndexOfActivity(d.Activities, m.ActivityID) >= 0 {
				count++
			}
		}
		require.Equal(t, 1, count, "%s must appear exactly once", m.ActivityID)
	}
}

func TestMoveActivity_DoesNotAliasInput(t *testing.T) {
	days := populated(t)

	got, _ := itinerary.MoveActivity(days, itinerary.Move{ActivityID: "a1", SourceDay: 1, TargetDay: 2, TargetIndex: 0})
	got[1].Activities[0].Name = "changed"

	assert.Equal(t, "Arrive", days[0].Activities[0].Name)
	assert.Equal(t, []string{"a1", "a2", "a3"}, ids(days[0].Activities))
}
