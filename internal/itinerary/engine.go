package itinerary

import (
	"fmt"
	"slices"

	"github.com/pkordes/itinerary-planner/internal/domain"
)

// Move is a request to relocate one activity, produced by the UI once a
// drag-and-drop is confirmed. SourceDay and TargetDay may be equal, which
// reorders within a day.
type Move struct {
	ActivityID  string
	SourceDay   int
	TargetDay   int
	TargetIndex int
}

// AddActivity returns a copy of days with activity appended to the day
// numbered dayNumber. Id uniqueness is the caller's concern.
// Returns domain.ErrNotFound when no such day exists.
func AddActivity(days []domain.Day, dayNumber int, activity domain.Activity) ([]domain.Day, error) {
	i := FindDay(days, dayNumber)
	if i < 0 {
		return nil, fmt.Errorf("%w: day %d not found", domain.ErrNotFound, dayNumber)
	}
	out := CloneDays(days)
	out[i].Activities = append(out[i].Activities, cloneActivity(activity))
	return out, nil
}

// DeleteActivity returns a copy of days without the activity identified by
// activityID in the day numbered dayNumber. Deleting an activity that is
// not there is a no-op, so repeated deletes give the same result.
func DeleteActivity(days []domain.Day, activityID string, dayNumber int) []domain.Day {
	out := CloneDays(days)
	i := FindDay(out, dayNumber)
	if i < 0 {
		return out
	}
	out[i].Activities = slices.DeleteFunc(out[i].Activities, func(a domain.Activity) bool {
		return a.ID == activityID
	})
	return out
}

// MoveActivity detaches the activity from the source day and inserts it in
// the target day at TargetIndex, clamped to the target's bounds after the
// detach. The boolean is false, and the returned copy unchanged, when the
// activity is not in the source day or the target day does not exist:
// either both halves of the move happen or neither does.
func MoveActivity(days []domain.Day, m Move) ([]domain.Day, bool) {
	out := CloneDays(days)

	src, dst := FindDay(out, m.SourceDay), FindDay(out, m.TargetDay)
	if src < 0 || dst < 0 {
		return out, false
	}
	i := IndexOfActivity(out[src].Activities, m.ActivityID)
	if i < 0 {
		return out, false
	}

	moved := out[src].Activities[i]
	out[src].Activities = slices.Delete(out[src].Activities, i, i+1)

	at := min(max(m.TargetIndex, 0), len(out[dst].Activities))
	out[dst].Activities = slices.Insert(out[dst].Activities, at, moved)
	return out, true
}
