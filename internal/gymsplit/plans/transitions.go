package plans

import (
	"fmt"

	"github.com/2beens/gymsplit/internal/gymsplit/catalog"
)

const (
	fallbackSets = 3
	fallbackReps = 10
	fallbackRIR  = 2
)

// AssignmentUpdate carries the fields to change; nil fields are left as they are.
type AssignmentUpdate struct {
	Sets *int `json:"sets"`
	Reps *int `json:"reps"`
	RIR  *int `json:"rir"`
}

func (u AssignmentUpdate) IsEmpty() bool {
	return u.Sets == nil && u.Reps == nil && u.RIR == nil
}

// AddAssignment appends the exercise to the named day using the catalog defaults.
// A valid weekday missing from the plan is inserted at its weekday position.
func AddAssignment(p Plan, dayName string, exercise catalog.Exercise) (Plan, error) {
	weekday, ok := CanonicalWeekday(dayName)
	if !ok {
		return p, newValidationError("day", "unknown weekday %q", dayName)
	}

	next := p.Clone()
	dayIdx := next.dayIndex(weekday)
	if dayIdx < 0 {
		next.Days, dayIdx = insertDay(next.Days, weekday)
	}

	day := &next.Days[dayIdx]
	day.Exercises = append(day.Exercises, Assignment{
		ExerciseID:       exercise.ID,
		Name:             exercise.Name,
		PrimaryMuscle:    exercise.PrimaryMuscle,
		SecondaryMuscles: append([]string(nil), exercise.SecondaryMuscles...),
		Sets:             orDefault(exercise.DefaultSets, 1, fallbackSets),
		Reps:             orDefault(exercise.DefaultReps, 1, fallbackReps),
		RIR:              orDefault(exercise.DefaultRIR, 0, fallbackRIR),
		Order:            len(day.Exercises) + 1,
	})

	return next, nil
}

// RemoveAssignment drops the assignment at the 0-based index and renumbers the rest.
func RemoveAssignment(p Plan, dayName string, index int) (Plan, error) {
	dayIdx := p.dayIndex(dayName)
	if dayIdx < 0 {
		return p, fmt.Errorf("%w: %s", ErrDayNotFound, dayName)
	}
	if index < 0 || index >= len(p.Days[dayIdx].Exercises) {
		return p, fmt.Errorf("%w: %s #%d", ErrAssignmentNotFound, dayName, index)
	}

	next := p.Clone()
	day := &next.Days[dayIdx]
	day.Exercises = append(day.Exercises[:index], day.Exercises[index+1:]...)
	for i := range day.Exercises {
		day.Exercises[i].Order = i + 1
	}

	return next, nil
}

// UpdateAssignment changes sets/reps/rir of the assignment at the 0-based index.
func UpdateAssignment(p Plan, dayName string, index int, update AssignmentUpdate) (Plan, error) {
	dayIdx := p.dayIndex(dayName)
	if dayIdx < 0 {
		return p, fmt.Errorf("%w: %s", ErrDayNotFound, dayName)
	}
	if index < 0 || index >= len(p.Days[dayIdx].Exercises) {
		return p, fmt.Errorf("%w: %s #%d", ErrAssignmentNotFound, dayName, index)
	}

	next := p.Clone()
	a := &next.Days[dayIdx].Exercises[index]
	if update.Sets != nil {
		a.Sets = *update.Sets
	}
	if update.Reps != nil {
		a.Reps = *update.Reps
	}
	if update.RIR != nil {
		a.RIR = *update.RIR
	}

	if err := validateAssignment(fmt.Sprintf("%s.exercises[%d]", next.Days[dayIdx].Name, index), *a); err != nil {
		return p, err
	}

	return next, nil
}

func insertDay(days []Day, weekday string) ([]Day, int) {
	weekdayIdx, _ := WeekdayIndex(weekday)
	pos := len(days)
	for i, day := range days {
		if idx, ok := WeekdayIndex(day.Name); ok && idx > weekdayIdx {
			pos = i
			break
		}
	}

	days = append(days, Day{})
	copy(days[pos+1:], days[pos:])
	days[pos] = Day{Name: weekday, Exercises: []Assignment{}}
	for i := range days {
		days[i].Order = i + 1
	}
	return days, pos
}

func orDefault(value, minimum, fallback int) int {
	if value < minimum {
		return fallback
	}
	return value
}
