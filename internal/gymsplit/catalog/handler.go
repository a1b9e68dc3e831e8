package catalog

import (
	"context"
	"net/http"

	"github.com/2beens/gymsplit/internal/telemetry/tracing"
	"github.com/2beens/gymsplit/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=catalog_test

type exercisesLister interface {
	ListAll(ctx context.Context) ([]Exercise, error)
}

type Handler struct {
	catalog exercisesLister
}

func NewHandler(catalog exercisesLister) *Handler {
	return &Handler{
		catalog: catalog,
	}
}

// HandleList serves the catalog, optionally filtered by q, muscle, category and equipment.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.list")
	defer span.End()

	query := r.URL.Query()
	filter := Filter{
		Query:     query.Get("q"),
		Muscle:    query.Get("muscle"),
		Category:  query.Get("category"),
		Equipment: query.Get("equipment"),
	}

	exercises, err := h.catalog.ListAll(ctx)
	if err != nil {
		log.Errorf("list exercises: %s", err)
		pkg.WriteJSONError(w, "failed to load exercises", http.StatusInternalServerError)
		return
	}

	if !filter.IsEmpty() {
		exercises = filter.Apply(exercises)
	}
	span.SetAttributes(attribute.Int("exercises.count", len(exercises)))

	pkg.WriteJSON(w, exercises, http.StatusOK)
}

func (h *Handler) HandleFacets(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.facets")
	defer span.End()

	exercises, err := h.catalog.ListAll(ctx)
	if err != nil {
		log.Errorf("list exercises for facets: %s", err)
		pkg.WriteJSONError(w, "failed to load exercises", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, BuildFacets(exercises), http.StatusOK)
}
