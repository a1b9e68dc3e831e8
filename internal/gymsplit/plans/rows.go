package plans

import (
	"github.com/jackc/pgx/v5"
)

// dayRow is one row of the days LEFT JOIN day_exercises LEFT JOIN exercises query.
// Exercise columns are nil for a day without assignments.
type dayRow struct {
	DayID            int
	DayName          string
	DayOrder         int
	Sets             *int
	Reps             *int
	RIR              *int
	ExerciseOrder    *int
	ExerciseID       *int
	ExerciseName     *string
	PrimaryMuscle    *string
	SecondaryMuscles []string
}

func scanDayRow(row pgx.CollectableRow) (dayRow, error) {
	var r dayRow
	err := row.Scan(
		&r.DayID, &r.DayName, &r.DayOrder,
		&r.Sets, &r.Reps, &r.RIR, &r.ExerciseOrder,
		&r.ExerciseID, &r.ExerciseName, &r.PrimaryMuscle, &r.SecondaryMuscles,
	)
	return r, err
}

// daysFromRows coalesces contiguous rows with the same day name into one Day,
// in the order encountered. Rows must be ordered by day order, then exercise order.
func daysFromRows(rows []dayRow) []Day {
	days := make([]Day, 0, len(Weekdays))
	var current *Day
	for _, row := range rows {
		if current == nil || current.Name != row.DayName {
			days = append(days, Day{
				ID:        row.DayID,
				Name:      row.DayName,
				Order:     row.DayOrder,
				Exercises: []Assignment{},
			})
			current = &days[len(days)-1]
		}

		if row.ExerciseID == nil {
			continue
		}

		current.Exercises = append(current.Exercises, Assignment{
			ExerciseID:       *row.ExerciseID,
			Name:             deref(row.ExerciseName),
			PrimaryMuscle:    deref(row.PrimaryMuscle),
			SecondaryMuscles: row.SecondaryMuscles,
			Sets:             deref(row.Sets),
			Reps:             deref(row.Reps),
			RIR:              deref(row.RIR),
			Order:            deref(row.ExerciseOrder),
		})
	}
	return days
}

func deref[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}
	return *v
}
