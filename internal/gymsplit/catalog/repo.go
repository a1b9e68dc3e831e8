package catalog

import (
	"context"
	"fmt"

	"github.com/2beens/gymsplit/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// ListAll returns the whole catalog ordered by name.
func (r *Repo) ListAll(ctx context.Context) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.listAll")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, COALESCE(exercise_id, ''), name, primary_muscle, secondary_muscles,
				default_sets, default_reps, default_rir,
				COALESCE(force_type, ''), COALESCE(difficulty_level, ''), COALESCE(mechanic_type, ''),
				COALESCE(equipment, ''), COALESCE(category, ''), instructions, image_paths
			FROM exercises
			ORDER BY name, id;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query exercises: %w", err)
	}

	exercises, err := pgx.CollectRows(rows, scanExercise)
	if err != nil {
		return nil, fmt.Errorf("collect exercises: %w", err)
	}

	span.SetAttributes(attribute.Int("exercises.count", len(exercises)))

	return exercises, nil
}

func scanExercise(row pgx.CollectableRow) (Exercise, error) {
	var e Exercise
	err := row.Scan(
		&e.ID, &e.ExerciseID, &e.Name, &e.PrimaryMuscle, &e.SecondaryMuscles,
		&e.DefaultSets, &e.DefaultReps, &e.DefaultRIR,
		&e.ForceType, &e.DifficultyLevel, &e.MechanicType,
		&e.Equipment, &e.Category, &e.Instructions, &e.ImagePaths,
	)
	return e, err
}
