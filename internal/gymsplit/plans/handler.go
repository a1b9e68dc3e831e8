package plans

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/2beens/gymsplit/internal/gymsplit/catalog"
	"github.com/2beens/gymsplit/internal/telemetry/metrics"
	"github.com/2beens/gymsplit/internal/telemetry/tracing"
	"github.com/2beens/gymsplit/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=plans_test

const maxBodyBytes = 1 << 20

type planStore interface {
	Create(ctx context.Context, plan Plan) (int, error)
	Replace(ctx context.Context, id int, plan Plan) error
	Get(ctx context.Context, id int) (*Plan, error)
}

type exerciseCatalog interface {
	Get(ctx context.Context, id int) (catalog.Exercise, bool, error)
}

type CreatePlanResponse struct {
	ID int `json:"id"`
}

type ReplacePlanResponse struct {
	Success bool `json:"success"`
}

type AddExerciseRequest struct {
	ExerciseID int `json:"exercise_id"`
}

type Handler struct {
	store          planStore
	catalog        exerciseCatalog
	metricsManager *metrics.Manager
}

func NewHandler(store planStore, catalog exerciseCatalog, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		store:          store,
		catalog:        catalog,
		metricsManager: metricsManager,
	}
}

func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.create")
	defer span.End()

	var plan Plan
	if err := DecodeJSONBody(w, r, &plan); err != nil {
		log.Tracef("create plan, decode body: %s", err)
		pkg.WriteJSONError(w, "invalid plan body", http.StatusBadRequest)
		return
	}

	id, err := h.store.Create(ctx, plan)
	if err != nil {
		WriteError(w, err, "create plan")
		return
	}

	span.SetAttributes(attribute.Int("plan.id", id))
	if h.metricsManager != nil {
		h.metricsManager.CounterPlansCreated.Inc()
	}
	log.Debugf("new plan created: %d [%s]", id, plan.Name)

	pkg.WriteJSON(w, CreatePlanResponse{ID: id}, http.StatusCreated)
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.get")
	defer span.End()

	id, err := PlanIDFromRequest(r)
	if err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int("plan.id", id))

	plan, err := h.store.Get(ctx, id)
	if err != nil {
		WriteError(w, err, "get plan")
		return
	}

	pkg.WriteJSON(w, plan, http.StatusOK)
}

func (h *Handler) HandleReplace(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.replace")
	defer span.End()

	id, err := PlanIDFromRequest(r)
	if err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int("plan.id", id))

	var plan Plan
	if err := DecodeJSONBody(w, r, &plan); err != nil {
		log.Tracef("replace plan %d, decode body: %s", id, err)
		pkg.WriteJSONError(w, "invalid plan body", http.StatusBadRequest)
		return
	}

	if err := h.store.Replace(ctx, id, plan); err != nil {
		WriteError(w, err, "update plan")
		return
	}

	if h.metricsManager != nil {
		h.metricsManager.CounterPlansReplaced.Inc()
	}

	pkg.WriteJSON(w, ReplacePlanResponse{Success: true}, http.StatusOK)
}

// HandleAddExercise appends a catalog exercise, with its default sets/reps/rir, to a day of a stored plan.
func (h *Handler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.addExercise")
	defer span.End()

	id, err := PlanIDFromRequest(r)
	if err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req AddExerciseRequest
	if err := DecodeJSONBody(w, r, &req); err != nil {
		pkg.WriteJSONError(w, "invalid add exercise body", http.StatusBadRequest)
		return
	}

	exercise, found, err := h.catalog.Get(ctx, req.ExerciseID)
	if err != nil {
		WriteError(w, err, "add exercise")
		return
	}
	if !found {
		pkg.WriteJSONError(w, fmt.Sprintf("exercise %d not found", req.ExerciseID), http.StatusBadRequest)
		return
	}

	dayName := mux.Vars(r)["day"]
	h.mutate(ctx, w, id, "add exercise", func(plan Plan) (Plan, error) {
		return AddAssignment(plan, dayName, exercise)
	})
}

func (h *Handler) HandleUpdateExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.updateExercise")
	defer span.End()

	id, err := PlanIDFromRequest(r)
	if err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	index, err := assignmentIndexFromRequest(r)
	if err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var update AssignmentUpdate
	if err := DecodeJSONBody(w, r, &update); err != nil {
		pkg.WriteJSONError(w, "invalid update exercise body", http.StatusBadRequest)
		return
	}
	if update.IsEmpty() {
		pkg.WriteJSONError(w, "nothing to update", http.StatusBadRequest)
		return
	}

	dayName := mux.Vars(r)["day"]
	h.mutate(ctx, w, id, "update exercise", func(plan Plan) (Plan, error) {
		return UpdateAssignment(plan, dayName, index, update)
	})
}

func (h *Handler) HandleRemoveExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.plans.removeExercise")
	defer span.End()

	id, err := PlanIDFromRequest(r)
	if err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	index, err := assignmentIndexFromRequest(r)
	if err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	dayName := mux.Vars(r)["day"]
	h.mutate(ctx, w, id, "remove exercise", func(plan Plan) (Plan, error) {
		return RemoveAssignment(plan, dayName, index)
	})
}

// mutate loads the plan, applies the transition, stores the result wholesale
// and responds with the reloaded plan.
func (h *Handler) mutate(
	ctx context.Context,
	w http.ResponseWriter,
	id int,
	action string,
	transition func(Plan) (Plan, error),
) {
	plan, err := h.store.Get(ctx, id)
	if err != nil {
		WriteError(w, err, action)
		return
	}

	next, err := transition(*plan)
	if err != nil {
		WriteError(w, err, action)
		return
	}

	if err := h.store.Replace(ctx, id, next); err != nil {
		WriteError(w, err, action)
		return
	}

	updated, err := h.store.Get(ctx, id)
	if err != nil {
		WriteError(w, err, action)
		return
	}

	if h.metricsManager != nil {
		h.metricsManager.CounterPlansReplaced.Inc()
	}
	pkg.WriteJSON(w, updated, http.StatusOK)
}

// WriteError maps plan errors to HTTP responses. Unexpected errors are logged
// and answered with a generic 500.
func WriteError(w http.ResponseWriter, err error, action string) {
	var validationErr *ValidationError
	switch {
	case errors.As(err, &validationErr):
		pkg.WriteJSONError(w, validationErr.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrPlanNotFound):
		pkg.WriteJSONError(w, "plan not found", http.StatusNotFound)
	case errors.Is(err, ErrDayNotFound), errors.Is(err, ErrAssignmentNotFound):
		pkg.WriteJSONError(w, err.Error(), http.StatusNotFound)
	default:
		log.Errorf("%s: %s", action, err)
		pkg.WriteJSONError(w, "failed to "+action, http.StatusInternalServerError)
	}
}

// DecodeJSONBody decodes a size-limited JSON request body into dst.
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) error {
	if r.Body == nil {
		return errors.New("empty body")
	}
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

func PlanIDFromRequest(r *http.Request) (int, error) {
	idStr := mux.Vars(r)["id"]
	if idStr == "" {
		return 0, errors.New("plan id empty")
	}
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid plan id")
	}
	return id, nil
}

func assignmentIndexFromRequest(r *http.Request) (int, error) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil || index < 0 {
		return 0, errors.New("invalid exercise index")
	}
	return index, nil
}
