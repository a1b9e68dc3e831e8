package plans

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/gymsplit/internal/telemetry/tracing"
	"github.com/2beens/gymsplit/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var assignmentColumns = []string{"day_id", "exercise_id", "sets", "reps", "rir", "exercise_order"}

// querier is satisfied by both pgx.Tx and *pgxpool.Pool.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Create validates and stores the plan with its days and assignments in one transaction.
func (r *Repo) Create(ctx context.Context, plan Plan) (id int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := Validate(plan); err != nil {
		return 0, err
	}
	plan = normalized(plan)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			id = 0
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else if err = tx.Commit(ctx); err != nil {
			id = 0
			err = fmt.Errorf("commit: %w", err)
		}
	}()

	err = tx.QueryRow(ctx,
		`INSERT INTO plans (name) VALUES ($1) RETURNING id;`,
		plan.Name,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert plan: %w", err)
	}

	if err = insertDays(ctx, tx, id, plan.Days); err != nil {
		return 0, err
	}

	span.SetAttributes(
		attribute.Int("plan.id", id),
		attribute.Int("plan.days", len(plan.Days)),
		attribute.Int("plan.assignments", plan.AssignmentsCount()),
	)

	return id, nil
}

// Replace overwrites name, days and assignments of an existing plan. Nothing is merged:
// days and assignments absent from the given plan are gone afterwards.
func (r *Repo) Replace(ctx context.Context, id int, plan Plan) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.replace")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("plan.id", id))

	if err := Validate(plan); err != nil {
		return err
	}
	plan = normalized(plan)

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else if err = tx.Commit(ctx); err != nil {
			err = fmt.Errorf("commit: %w", err)
		}
	}()

	tag, err := tx.Exec(ctx,
		`UPDATE plans SET name = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2;`,
		plan.Name, id,
	)
	if err != nil {
		return fmt.Errorf("update plan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPlanNotFound
	}

	// day_exercises rows go with their days (ON DELETE CASCADE)
	if _, err = tx.Exec(ctx, `DELETE FROM days WHERE plan_id = $1;`, id); err != nil {
		return fmt.Errorf("delete days: %w", err)
	}

	return insertDays(ctx, tx, id, plan.Days)
}

// Get loads the plan and rebuilds its days from the flat joined rows.
func (r *Repo) Get(ctx context.Context, id int) (_ *Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("plan.id", id))

	// both reads see the same snapshot, so a concurrent Replace is never half visible
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	return LoadPlan(ctx, tx, id)
}

// Exists reports whether a plan with the given id is stored.
func (r *Repo) Exists(ctx context.Context, id int) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.exists")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var exists bool
	err = r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM plans WHERE id = $1);`,
		id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check plan exists: %w", err)
	}
	return exists, nil
}

// LoadPlan reads a plan through q (a pool or an open transaction).
func LoadPlan(ctx context.Context, q querier, id int) (*Plan, error) {
	var plan Plan
	err := q.QueryRow(ctx,
		`SELECT id, name, created_at, updated_at FROM plans WHERE id = $1;`,
		id,
	).Scan(&plan.ID, &plan.Name, &plan.CreatedAt, &plan.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("get plan: %w", err)
	}

	rows, err := q.Query(ctx,
		`SELECT d.id, d.day_name, d.day_order,
				de.sets, de.reps, de.rir, de.exercise_order,
				e.id, e.name, e.primary_muscle, e.secondary_muscles
			FROM days d
			LEFT JOIN day_exercises de ON d.id = de.day_id
			LEFT JOIN exercises e ON de.exercise_id = e.id
			WHERE d.plan_id = $1
			ORDER BY d.day_order, de.exercise_order;`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("query days: %w", err)
	}

	dayRows, err := pgx.CollectRows(rows, scanDayRow)
	if err != nil {
		return nil, fmt.Errorf("collect days: %w", err)
	}

	plan.Days = daysFromRows(dayRows)
	return &plan, nil
}

func insertDays(ctx context.Context, tx pgx.Tx, planID int, days []Day) error {
	var assignmentRows [][]any
	for _, day := range days {
		var dayID int
		err := tx.QueryRow(ctx,
			`INSERT INTO days (plan_id, day_name, day_order) VALUES ($1, $2, $3) RETURNING id;`,
			planID, day.Name, day.Order,
		).Scan(&dayID)
		if err != nil {
			return fmt.Errorf("insert day %s: %w", day.Name, err)
		}

		for _, a := range day.Exercises {
			assignmentRows = append(assignmentRows, []any{dayID, a.ExerciseID, a.Sets, a.Reps, a.RIR, a.Order})
		}
	}

	if len(assignmentRows) == 0 {
		return nil
	}

	copied, err := tx.CopyFrom(ctx,
		pgx.Identifier{"day_exercises"},
		assignmentColumns,
		pgx.CopyFromRows(assignmentRows),
	)
	if err != nil {
		return mapAssignmentsError(err)
	}
	if int(copied) != len(assignmentRows) {
		return fmt.Errorf("insert assignments: copied %d of %d rows", copied, len(assignmentRows))
	}

	return nil
}

func mapAssignmentsError(err error) error {
	switch {
	case pkg.IsForeignKeyViolationError(err):
		return &ValidationError{Field: "exercises.id", Reason: "references an unknown catalog exercise"}
	case pkg.IsCheckViolationError(err):
		return &ValidationError{Field: "exercises", Reason: "sets, reps or rir out of range"}
	default:
		return fmt.Errorf("insert assignments: %w", err)
	}
}
