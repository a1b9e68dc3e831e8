package share

import (
	"context"
	"errors"
	"net/http"

	"github.com/2beens/gymsplit/internal/gymsplit/plans"
	"github.com/2beens/gymsplit/internal/telemetry/tracing"
	"github.com/2beens/gymsplit/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=share_test

type shareRegistry interface {
	Publish(ctx context.Context, planID int) (string, error)
	Resolve(ctx context.Context, slug string) (*plans.Plan, error)
}

type PublishResponse struct {
	Slug string `json:"slug"`
}

type Handler struct {
	registry shareRegistry
}

func NewHandler(registry shareRegistry) *Handler {
	return &Handler{
		registry: registry,
	}
}

func (h *Handler) HandlePublish(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.share.publish")
	defer span.End()

	planID, err := plans.PlanIDFromRequest(r)
	if err != nil {
		pkg.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	span.SetAttributes(attribute.Int("plan.id", planID))

	slug, err := h.registry.Publish(ctx, planID)
	if err != nil {
		WriteError(w, err, "create public share")
		return
	}

	log.Debugf("plan %d published as %s", planID, slug)
	pkg.WriteJSON(w, PublishResponse{Slug: slug}, http.StatusOK)
}

func (h *Handler) HandleResolve(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.share.resolve")
	defer span.End()

	plan, err := h.registry.Resolve(ctx, mux.Vars(r)["slug"])
	if err != nil {
		WriteError(w, err, "get public plan")
		return
	}

	pkg.WriteJSON(w, plan, http.StatusOK)
}

// WriteError answers unknown slugs with 404 and defers everything else to plans.WriteError.
func WriteError(w http.ResponseWriter, err error, action string) {
	if errors.Is(err, ErrShareNotFound) {
		pkg.WriteJSONError(w, "share not found", http.StatusNotFound)
		return
	}
	plans.WriteError(w, err, action)
}
