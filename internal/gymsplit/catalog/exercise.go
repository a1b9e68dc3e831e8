package catalog

import (
	"sort"
	"strings"
)

// Exercise is a read-only catalog entry.
type Exercise struct {
	ID               int      `json:"id"`
	ExerciseID       string   `json:"exercise_id"`
	Name             string   `json:"name"`
	PrimaryMuscle    string   `json:"primary_muscle"`
	SecondaryMuscles []string `json:"secondary_muscles"`
	DefaultSets      int      `json:"default_sets"`
	DefaultReps      int      `json:"default_reps"`
	DefaultRIR       int      `json:"default_rir"`
	ForceType        string   `json:"force_type,omitempty"`
	DifficultyLevel  string   `json:"difficulty_level,omitempty"`
	MechanicType     string   `json:"mechanic_type,omitempty"`
	Equipment        string   `json:"equipment,omitempty"`
	Category         string   `json:"category,omitempty"`
	Instructions     []string `json:"instructions"`
	ImagePaths       []string `json:"image_paths"`
}

// Filter narrows the catalog listing. Empty fields match everything.
// Query is a case-insensitive substring of the name, the rest are exact matches.
type Filter struct {
	Query     string
	Muscle    string
	Category  string
	Equipment string
}

func (f Filter) IsEmpty() bool {
	return f.Query == "" && f.Muscle == "" && f.Category == "" && f.Equipment == ""
}

func (f Filter) Matches(e Exercise) bool {
	if f.Query != "" && !strings.Contains(strings.ToLower(e.Name), strings.ToLower(f.Query)) {
		return false
	}
	if f.Muscle != "" && e.PrimaryMuscle != f.Muscle {
		return false
	}
	if f.Category != "" && e.Category != f.Category {
		return false
	}
	if f.Equipment != "" && e.Equipment != f.Equipment {
		return false
	}
	return true
}

// Apply returns matching exercises, keeping the input order.
func (f Filter) Apply(exercises []Exercise) []Exercise {
	filtered := make([]Exercise, 0, len(exercises))
	for _, e := range exercises {
		if f.Matches(e) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// Facets holds the distinct, sorted filter values present in the catalog.
type Facets struct {
	Muscles    []string `json:"muscles"`
	Categories []string `json:"categories"`
	Equipment  []string `json:"equipment"`
}

func BuildFacets(exercises []Exercise) Facets {
	muscles := map[string]struct{}{}
	categories := map[string]struct{}{}
	equipment := map[string]struct{}{}
	for _, e := range exercises {
		addNonEmpty(muscles, e.PrimaryMuscle)
		addNonEmpty(categories, e.Category)
		addNonEmpty(equipment, e.Equipment)
	}
	return Facets{
		Muscles:    sortedKeys(muscles),
		Categories: sortedKeys(categories),
		Equipment:  sortedKeys(equipment),
	}
}

func addNonEmpty(set map[string]struct{}, v string) {
	if v != "" {
		set[v] = struct{}{}
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
