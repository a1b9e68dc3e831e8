package volume

import (
	"context"
	"fmt"
	"net/http"

	"github.com/2beens/gymsplit/internal/gymsplit/catalog"
	"github.com/2beens/gymsplit/internal/gymsplit/plans"
	"github.com/2beens/gymsplit/internal/gymsplit/share"
	"github.com/2beens/gymsplit/internal/telemetry/tracing"
	"github.com/2beens/gymsplit/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=volume_test

const unsavedPlanName = "unsaved plan"

type planGetter interface {
	Get(ctx context.Context, id int) (*plans.Plan, error)
}

type planResolver interface {
	Resolve(ctx context.Context, slug string) (*plans.Plan, error)
}

type exerciseLookup interface {
	GetByIDs(ctx context.Context, ids []int) (map[int]catalog.Exercise, error)
}

type Handler struct {
	plans     planGetter
	resolver  planResolver
	exercises exerciseLookup
}

func NewHandler(store planGetter, resolver planResolver, exercises exerciseLookup) *Handler {
	return &Handler{
		plans:     store,
		resolver:  resolver,
		exercises: exercises,
	}
}

func (h *Handler) HandlePlanVolume(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.volume.plan")
	defer span.End()

	id, err := plans.PlanIDFromRequest(r)
	if err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int("plan.id", id))

	plan, err := h.plans.Get(ctx, id)
	if err != nil {
		plans.WriteError(w, err, "analyze plan")
		return
	}

	pkg.WriteJSON(w, Analyze(*plan), http.StatusOK)
}

func (h *Handler) HandlePublicVolume(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.volume.public")
	defer span.End()

	plan, err := h.resolver.Resolve(ctx, mux.Vars(r)["slug"])
	if err != nil {
		share.WriteError(w, err, "analyze public plan")
		return
	}

	pkg.WriteJSON(w, Analyze(*plan), http.StatusOK)
}

// HandleAnalyze reports on an unsaved plan. Muscles and names are taken from the catalog,
// client-supplied values for them are ignored.
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.volume.analyze")
	defer span.End()

	var plan plans.Plan
	if err := plans.DecodeJSONBody(w, r, &plan); err != nil {
		log.Tracef("analyze volume, decode body: %s", err)
		pkg.WriteJSONError(w, "invalid plan body", http.StatusBadRequest)
		return
	}
	if plan.Name == "" {
		plan.Name = unsavedPlanName
	}
	if err := plans.Validate(plan); err != nil {
		plans.WriteError(w, err, "analyze volume")
		return
	}

	if err := h.enrich(ctx, &plan); err != nil {
		plans.WriteError(w, err, "analyze volume")
		return
	}

	span.SetAttributes(attribute.Int("plan.assignments", plan.AssignmentsCount()))
	pkg.WriteJSON(w, Analyze(plan), http.StatusOK)
}

func (h *Handler) enrich(ctx context.Context, plan *plans.Plan) error {
	var ids []int
	for _, day := range plan.Days {
		for _, a := range day.Exercises {
			ids = append(ids, a.ExerciseID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	found, err := h.exercises.GetByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("lookup exercises: %w", err)
	}

	for i := range plan.Days {
		for j := range plan.Days[i].Exercises {
			a := &plan.Days[i].Exercises[j]
			e, ok := found[a.ExerciseID]
			if !ok {
				return &plans.ValidationError{
					Field:  fmt.Sprintf("days[%d].exercises[%d].id", i, j),
					Reason: fmt.Sprintf("unknown catalog exercise %d", a.ExerciseID),
				}
			}
			a.Name = e.Name
			a.PrimaryMuscle = e.PrimaryMuscle
			a.SecondaryMuscles = e.SecondaryMuscles
		}
	}
	return nil
}
