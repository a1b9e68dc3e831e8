package plans

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const maxPlanNameLength = 200

// Validate checks a plan before persistence. Days must be known weekdays,
// unique and in week order, so sorting days by their positional order sorts them by weekday.
func Validate(plan Plan) error {
	name := strings.TrimSpace(plan.Name)
	if name == "" {
		return newValidationError("name", "must not be empty")
	}
	if utf8.RuneCountInString(name) > maxPlanNameLength {
		return newValidationError("name", "must be at most %d characters", maxPlanNameLength)
	}

	if len(plan.Days) > len(Weekdays) {
		return newValidationError("days", "at most %d days allowed, got %d", len(Weekdays), len(plan.Days))
	}

	prevIdx := -1
	for i, day := range plan.Days {
		field := fmt.Sprintf("days[%d].name", i)
		idx, ok := WeekdayIndex(day.Name)
		if !ok {
			return newValidationError(field, "unknown weekday %q", day.Name)
		}
		if idx == prevIdx {
			return newValidationError(field, "duplicate day %q", day.Name)
		}
		if idx < prevIdx {
			return newValidationError(field, "day %q is out of weekday order", day.Name)
		}
		prevIdx = idx

		for j, a := range day.Exercises {
			if err := validateAssignment(fmt.Sprintf("days[%d].exercises[%d]", i, j), a); err != nil {
				return err
			}
		}
	}

	return nil
}

func validateAssignment(field string, a Assignment) error {
	switch {
	case a.ExerciseID <= 0:
		return newValidationError(field+".id", "must be a catalog exercise id")
	case a.Sets < 1:
		return newValidationError(field+".sets", "must be at least 1, got %d", a.Sets)
	case a.Reps < 1:
		return newValidationError(field+".reps", "must be at least 1, got %d", a.Reps)
	case a.RIR < 0:
		return newValidationError(field+".rir", "must not be negative, got %d", a.RIR)
	}
	return nil
}

// normalized returns a copy with canonical day names and positional orders.
// Client-supplied order fields are ignored.
func normalized(plan Plan) Plan {
	n := plan.Clone()
	n.Name = strings.TrimSpace(n.Name)
	for i := range n.Days {
		if canonical, ok := CanonicalWeekday(n.Days[i].Name); ok {
			n.Days[i].Name = canonical
		}
		n.Days[i].Order = i + 1
		for j := range n.Days[i].Exercises {
			n.Days[i].Exercises[j].Order = j + 1
		}
	}
	return n
}
