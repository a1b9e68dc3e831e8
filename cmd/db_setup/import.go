package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lib/pq"
)

const (
	defaultSets = 3
	defaultReps = 10
	defaultRIR  = 2
)

// sourceExercise is one entry of a free-exercise-db exercises.json.
type sourceExercise struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Force            *string  `json:"force"`
	Level            string   `json:"level"`
	Mechanic         *string  `json:"mechanic"`
	Equipment        *string  `json:"equipment"`
	PrimaryMuscles   []string `json:"primaryMuscles"`
	SecondaryMuscles []string `json:"secondaryMuscles"`
	Instructions     []string `json:"instructions"`
	Category         string   `json:"category"`
	Images           []string `json:"images"`
}

type exerciseRow struct {
	ExerciseID       string
	Name             string
	PrimaryMuscle    string
	SecondaryMuscles []string
	ForceType        sql.NullString
	DifficultyLevel  sql.NullString
	MechanicType     sql.NullString
	Equipment        sql.NullString
	Category         sql.NullString
	Instructions     []string
	ImagePaths       []string
}

func parseExercises(r io.Reader) ([]exerciseRow, error) {
	var source []sourceExercise
	if err := json.NewDecoder(r).Decode(&source); err != nil {
		return nil, fmt.Errorf("decode exercises json: %w", err)
	}

	rows := make([]exerciseRow, 0, len(source))
	for i, s := range source {
		if strings.TrimSpace(s.ID) == "" || strings.TrimSpace(s.Name) == "" {
			return nil, fmt.Errorf("exercise #%d: id and name are required", i)
		}
		// the catalog is keyed by one primary muscle
		if len(s.PrimaryMuscles) == 0 {
			return nil, fmt.Errorf("exercise %s: no primary muscle", s.ID)
		}

		rows = append(rows, exerciseRow{
			ExerciseID:       s.ID,
			Name:             s.Name,
			PrimaryMuscle:    s.PrimaryMuscles[0],
			SecondaryMuscles: nonNil(s.SecondaryMuscles),
			ForceType:        nullString(s.Force),
			DifficultyLevel:  nullString(&s.Level),
			MechanicType:     nullString(s.Mechanic),
			Equipment:        nullString(s.Equipment),
			Category:         nullString(&s.Category),
			Instructions:     nonNil(s.Instructions),
			ImagePaths:       nonNil(s.Images),
		})
	}
	return rows, nil
}

// importExercises upserts on exercise_id, so running the setup twice keeps ids stable.
func importExercises(ctx context.Context, sqlDB *sql.DB, rows []exerciseRow) (_ int, err error) {
	tx, err := sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else if err = tx.Commit(); err != nil {
			err = fmt.Errorf("commit: %w", err)
		}
	}()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO exercises (
			exercise_id, name, primary_muscle, secondary_muscles,
			default_sets, default_reps, default_rir,
			force_type, difficulty_level, mechanic_type, equipment, category,
			instructions, image_paths
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (exercise_id) DO UPDATE SET
			name = EXCLUDED.name,
			primary_muscle = EXCLUDED.primary_muscle,
			secondary_muscles = EXCLUDED.secondary_muscles,
			force_type = EXCLUDED.force_type,
			difficulty_level = EXCLUDED.difficulty_level,
			mechanic_type = EXCLUDED.mechanic_type,
			equipment = EXCLUDED.equipment,
			category = EXCLUDED.category,
			instructions = EXCLUDED.instructions,
			image_paths = EXCLUDED.image_paths;`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		if _, err = stmt.ExecContext(ctx,
			row.ExerciseID, row.Name, row.PrimaryMuscle, pq.Array(row.SecondaryMuscles),
			defaultSets, defaultReps, defaultRIR,
			row.ForceType, row.DifficultyLevel, row.MechanicType, row.Equipment, row.Category,
			pq.Array(row.Instructions), pq.Array(row.ImagePaths),
		); err != nil {
			return 0, fmt.Errorf("insert exercise %s: %w", row.ExerciseID, err)
		}
	}

	return len(rows), nil
}

func nullString(s *string) sql.NullString {
	if s == nil || strings.TrimSpace(*s) == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
