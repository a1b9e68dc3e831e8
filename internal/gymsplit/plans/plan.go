package plans

import (
	"strings"
	"time"
)

// Weekdays lists the valid day names in week order.
var Weekdays = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// Assignment is one exercise placed on a day. Name and muscles are only
// populated when the plan is loaded from the store.
type Assignment struct {
	ExerciseID       int      `json:"id"`
	Name             string   `json:"name,omitempty"`
	PrimaryMuscle    string   `json:"primary_muscle,omitempty"`
	SecondaryMuscles []string `json:"secondary_muscles,omitempty"`
	Sets             int      `json:"sets"`
	Reps             int      `json:"reps"`
	RIR              int      `json:"rir"`
	Order            int      `json:"order,omitempty"`
}

type Day struct {
	ID        int          `json:"id,omitempty"`
	Name      string       `json:"name"`
	Order     int          `json:"order,omitempty"`
	Exercises []Assignment `json:"exercises"`
}

type Plan struct {
	ID        int       `json:"id,omitempty"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Days      []Day     `json:"days"`
}

// NewEmptyPlan returns an unsaved plan with all seven days and no assignments.
func NewEmptyPlan(name string) Plan {
	days := make([]Day, 0, len(Weekdays))
	for i, weekday := range Weekdays {
		days = append(days, Day{
			Name:      weekday,
			Order:     i + 1,
			Exercises: []Assignment{},
		})
	}
	return Plan{
		Name: name,
		Days: days,
	}
}

// WeekdayIndex returns the 0-based position of a weekday name, matched case-insensitively.
func WeekdayIndex(name string) (int, bool) {
	for i, weekday := range Weekdays {
		if strings.EqualFold(weekday, name) {
			return i, true
		}
	}
	return -1, false
}

// CanonicalWeekday maps e.g. "monday" to "Monday".
func CanonicalWeekday(name string) (string, bool) {
	idx, ok := WeekdayIndex(name)
	if !ok {
		return "", false
	}
	return Weekdays[idx], true
}

// Clone returns a deep copy, so transitions never share slices with their input.
func (p Plan) Clone() Plan {
	clone := p
	if p.Days == nil {
		return clone
	}
	clone.Days = make([]Day, len(p.Days))
	for i, day := range p.Days {
		clone.Days[i] = day.clone()
	}
	return clone
}

func (d Day) clone() Day {
	clone := d
	clone.Exercises = make([]Assignment, len(d.Exercises))
	for i, a := range d.Exercises {
		clone.Exercises[i] = a
		if a.SecondaryMuscles != nil {
			clone.Exercises[i].SecondaryMuscles = append([]string(nil), a.SecondaryMuscles...)
		}
	}
	return clone
}

// AssignmentsCount is the number of assignments across all days.
func (p Plan) AssignmentsCount() int {
	count := 0
	for _, day := range p.Days {
		count += len(day.Exercises)
	}
	return count
}

func (p Plan) dayIndex(name string) int {
	for i, day := range p.Days {
		if strings.EqualFold(day.Name, name) {
			return i
		}
	}
	return -1
}
