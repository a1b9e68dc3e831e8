package share

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/gymsplit/internal/gymsplit/plans"
	"github.com/2beens/gymsplit/internal/telemetry/metrics"
	"github.com/2beens/gymsplit/internal/telemetry/tracing"
	"github.com/2beens/gymsplit/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=registry_mocks_test.go -package=share_test

const maxPublishAttempts = 5

var (
	ErrShareNotFound = errors.New("share not found")
	ErrSlugExhausted = errors.New("could not generate a unique slug")
)

type shareStore interface {
	Insert(ctx context.Context, planID int, slug string) error
	PlanID(ctx context.Context, slug string) (int, error)
}

type planLoader interface {
	Exists(ctx context.Context, id int) (bool, error)
	Get(ctx context.Context, id int) (*plans.Plan, error)
}

type slugCache interface {
	Get(ctx context.Context, slug string) (int, bool, error)
	Set(ctx context.Context, slug string, planID int) error
}

type Registry struct {
	store          shareStore
	plans          planLoader
	cache          slugCache
	newSlug        func() (string, error)
	metricsManager *metrics.Manager
}

// NewRegistry wires the share store and plan loader. cache may be nil.
func NewRegistry(
	store shareStore,
	plans planLoader,
	cache slugCache,
	metricsManager *metrics.Manager,
) *Registry {
	return &Registry{
		store:          store,
		plans:          plans,
		cache:          cache,
		newSlug:        NewSlug,
		metricsManager: metricsManager,
	}
}

// WithSlugGenerator replaces the random slug source.
func (r *Registry) WithSlugGenerator(newSlug func() (string, error)) *Registry {
	r.newSlug = newSlug
	return r
}

// Publish issues a new slug for the plan. Every call creates a separate link.
func (r *Registry) Publish(ctx context.Context, planID int) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "registry.share.publish")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("plan.id", planID))

	exists, err := r.plans.Exists(ctx, planID)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", plans.ErrPlanNotFound
	}

	for attempt := 1; attempt <= maxPublishAttempts; attempt++ {
		slug, err := r.newSlug()
		if err != nil {
			return "", err
		}

		err = r.store.Insert(ctx, planID, slug)
		switch {
		case err == nil:
			span.SetAttributes(attribute.Int("publish.attempts", attempt))
			if r.metricsManager != nil {
				r.metricsManager.CounterSharesPublished.Inc()
			}
			r.cacheSlug(ctx, slug, planID)
			return slug, nil
		case pkg.IsUniqueViolationError(err):
			log.Warnf("slug collision for plan %d, attempt %d", planID, attempt)
			continue
		case pkg.IsForeignKeyViolationError(err):
			return "", plans.ErrPlanNotFound
		default:
			return "", err
		}
	}

	return "", fmt.Errorf("%w after %d attempts", ErrSlugExhausted, maxPublishAttempts)
}

// Resolve returns the plan a slug was issued for.
func (r *Registry) Resolve(ctx context.Context, slug string) (_ *plans.Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "registry.share.resolve")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	planID, err := r.ResolvePlanID(ctx, slug)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("plan.id", planID))

	plan, err := r.plans.Get(ctx, planID)
	if err != nil {
		if errors.Is(err, plans.ErrPlanNotFound) {
			return nil, ErrShareNotFound
		}
		return nil, err
	}
	return plan, nil
}

// ResolvePlanID maps a slug to its plan id, reading through the cache.
func (r *Registry) ResolvePlanID(ctx context.Context, slug string) (int, error) {
	if !plausibleSlug(slug) {
		r.countResolve("miss")
		return 0, ErrShareNotFound
	}

	if r.cache != nil {
		planID, found, err := r.cache.Get(ctx, slug)
		if err != nil {
			log.Errorf("slug cache get [%s]: %s", slug, err)
		} else if found {
			r.countResolve("cache")
			return planID, nil
		}
	}

	planID, err := r.store.PlanID(ctx, slug)
	if err != nil {
		if errors.Is(err, ErrShareNotFound) {
			r.countResolve("miss")
		}
		return 0, err
	}
	r.countResolve("db")

	r.cacheSlug(ctx, slug, planID)
	return planID, nil
}

func (r *Registry) cacheSlug(ctx context.Context, slug string, planID int) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Set(ctx, slug, planID); err != nil {
		log.Errorf("slug cache set [%s]: %s", slug, err)
	}
}

func (r *Registry) countResolve(source string) {
	if r.metricsManager != nil {
		r.metricsManager.CounterShareResolves.WithLabelValues(source).Inc()
	}
}
