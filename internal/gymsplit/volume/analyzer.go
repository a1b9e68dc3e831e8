package volume

import (
	"github.com/2beens/gymsplit/internal/gymsplit/plans"
)

type VolumeStatus string

type FrequencyStatus string

const (
	VolumeAdequate VolumeStatus = "Adequate"
	VolumeLow      VolumeStatus = "Low Volume"

	FrequencyOptimal      FrequencyStatus = "Optimal"
	FrequencyMinimum      FrequencyStatus = "Minimum"
	FrequencyInsufficient FrequencyStatus = "Insufficient"

	adequateVolumeSets = 4
	optimalFrequency   = 3
	minimumFrequency   = 2
	hardSetMaxRIR      = 1

	unknownMuscle = "unknown"
)

type MuscleStats struct {
	TotalSets       int             `json:"total_sets"`
	Frequency       int             `json:"frequency"`
	VolumeStatus    VolumeStatus    `json:"volume_status"`
	FrequencyStatus FrequencyStatus `json:"frequency_status"`
}

// HardSet is an assignment taken close to failure (RIR <= 1).
type HardSet struct {
	Day      string `json:"day"`
	Exercise string `json:"exercise"`
	Sets     int    `json:"sets"`
	RIR      int    `json:"rir"`
}

type Report struct {
	Muscles        map[string]MuscleStats `json:"muscles"`
	TotalSets      int                    `json:"total_sets"`
	TotalExercises int                    `json:"total_exercises"`
	ActiveDays     int                    `json:"active_days"`
	HardSets       []HardSet              `json:"hard_sets"`
	Guidelines     Guidelines             `json:"guidelines"`
}

// Analyze aggregates weekly sets and frequency per primary muscle.
// Frequency counts assignments, so two exercises for a muscle on one day count twice.
func Analyze(plan plans.Plan) Report {
	report := Report{
		Muscles:    map[string]MuscleStats{},
		HardSets:   []HardSet{},
		Guidelines: DefaultGuidelines,
	}

	for _, day := range plan.Days {
		if len(day.Exercises) > 0 {
			report.ActiveDays++
		}

		for _, a := range day.Exercises {
			muscle := a.PrimaryMuscle
			if muscle == "" {
				muscle = unknownMuscle
			}

			stats := report.Muscles[muscle]
			stats.TotalSets += a.Sets
			stats.Frequency++
			report.Muscles[muscle] = stats

			report.TotalSets += a.Sets
			report.TotalExercises++

			if a.RIR <= hardSetMaxRIR {
				report.HardSets = append(report.HardSets, HardSet{
					Day:      day.Name,
					Exercise: a.Name,
					Sets:     a.Sets,
					RIR:      a.RIR,
				})
			}
		}
	}

	for muscle, stats := range report.Muscles {
		stats.VolumeStatus = ClassifyVolume(stats.TotalSets)
		stats.FrequencyStatus = ClassifyFrequency(stats.Frequency)
		report.Muscles[muscle] = stats
	}

	return report
}

func ClassifyVolume(totalSets int) VolumeStatus {
	if totalSets >= adequateVolumeSets {
		return VolumeAdequate
	}
	return VolumeLow
}

func ClassifyFrequency(frequency int) FrequencyStatus {
	switch {
	case frequency >= optimalFrequency:
		return FrequencyOptimal
	case frequency >= minimumFrequency:
		return FrequencyMinimum
	default:
		return FrequencyInsufficient
	}
}
