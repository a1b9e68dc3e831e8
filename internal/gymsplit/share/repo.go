package share

import (
	"context"
	"errors"
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

// Insert stores a new share link. A slug collision surfaces as a unique violation.
func (r *Repo) Insert(ctx context.Context, planID int, slug string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.share.insert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("plan.id", planID))

	_, err = r.db.Exec(ctx,
		`INSERT INTO public_shares (plan_id, slug) VALUES ($1, $2);`,
		planID, slug,
	)
	if err != nil {
		return fmt.Errorf("insert share: %w", err)
	}
	return nil
}

func (r *Repo) PlanID(ctx context.Context, slug string) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.share.planID")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var planID int
	err = r.db.QueryRow(ctx,
		`SELECT plan_id FROM public_shares WHERE slug = $1;`,
		slug,
	).Scan(&planID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrShareNotFound
		}
		return 0, fmt.Errorf("get share: %w", err)
	}

	span.SetAttributes(attribute.Int("plan.id", planID))
	return planID, nil
}
