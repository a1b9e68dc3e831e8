package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/2beens/gymsplit/internal/telemetry/metrics"
	"github.com/2beens/gymsplit/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const (
	megabyte = 1024 * 1024

	// freecache refuses entries above 1/1024 of the cache size, so the catalog is
	// stored as one entry per exercise plus an id index split into small pages.
	idsPageSize        = 64
	indexPagesKey      = "catalog::index::pages"
	indexPageKeyPrefix = "catalog::index::page::"
	exerciseKeyPrefix  = "catalog::exercise::"
)

type exercisesStore interface {
	ListAll(ctx context.Context) ([]Exercise, error)
}

// CachedRepo keeps the catalog in an in-process freecache.
// The catalog is immutable at runtime, so entries only expire by TTL.
type CachedRepo struct {
	store          exercisesStore
	cache          *freecache.Cache
	ttlSeconds     int
	metricsManager *metrics.Manager
}

func NewCachedRepo(
	store exercisesStore,
	cacheSizeMB int,
	ttlSeconds int,
	metricsManager *metrics.Manager,
) *CachedRepo {
	return &CachedRepo{
		store:          store,
		cache:          freecache.NewCache(cacheSizeMB * megabyte),
		ttlSeconds:     ttlSeconds,
		metricsManager: metricsManager,
	}
}

func (c *CachedRepo) ListAll(ctx context.Context) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "cache.catalog.listAll")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if exercises, ok := c.cachedCatalog(); ok {
		c.countCache("hit")
		return exercises, nil
	}
	c.countCache("miss")

	exercises, err := c.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.storeCatalog(exercises); err != nil {
		log.Errorf("failed to write catalog cache: %s", err)
	} else {
		log.Debugf("catalog cache set, %d exercises", len(exercises))
	}

	return exercises, nil
}

// GetByIDs resolves catalog ids; unknown ids are simply absent from the result.
func (c *CachedRepo) GetByIDs(ctx context.Context, ids []int) (map[int]Exercise, error) {
	found := make(map[int]Exercise, len(ids))
	missing := false
	for _, id := range ids {
		if _, ok := found[id]; ok {
			continue
		}
		e, ok := c.cachedExercise(id)
		if !ok {
			missing = true
			continue
		}
		found[id] = e
	}
	if !missing {
		return found, nil
	}

	exercises, err := c.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	wanted := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	for _, e := range exercises {
		if _, ok := wanted[e.ID]; ok {
			found[e.ID] = e
		}
	}
	return found, nil
}

// Get returns a single exercise and false when the id is not in the catalog.
func (c *CachedRepo) Get(ctx context.Context, id int) (Exercise, bool, error) {
	found, err := c.GetByIDs(ctx, []int{id})
	if err != nil {
		return Exercise{}, false, err
	}
	e, ok := found[id]
	return e, ok, nil
}

// cachedCatalog rebuilds the catalog from the index pages. Any evicted page
// or exercise counts as a miss for the whole catalog.
func (c *CachedRepo) cachedCatalog() ([]Exercise, bool) {
	pagesRaw, err := c.cache.Get([]byte(indexPagesKey))
	if err != nil {
		return nil, false
	}
	pages, err := strconv.Atoi(string(pagesRaw))
	if err != nil {
		return nil, false
	}

	var exercises []Exercise
	for page := 0; page < pages; page++ {
		pageRaw, err := c.cache.Get([]byte(indexPageKeyPrefix + strconv.Itoa(page)))
		if err != nil {
			return nil, false
		}
		var ids []int
		if err := json.Unmarshal(pageRaw, &ids); err != nil {
			log.Errorf("failed to unmarshal cached catalog index page %d, reloading", page)
			return nil, false
		}
		for _, id := range ids {
			e, ok := c.cachedExercise(id)
			if !ok {
				return nil, false
			}
			exercises = append(exercises, e)
		}
	}

	if exercises == nil {
		exercises = []Exercise{}
	}
	return exercises, true
}

func (c *CachedRepo) cachedExercise(id int) (Exercise, bool) {
	raw, err := c.cache.Get([]byte(exerciseKeyPrefix + strconv.Itoa(id)))
	if err != nil {
		return Exercise{}, false
	}
	var e Exercise
	if err := json.Unmarshal(raw, &e); err != nil {
		log.Errorf("failed to unmarshal cached exercise %d", id)
		return Exercise{}, false
	}
	return e, true
}

// storeCatalog writes exercises first and the page count last, so a reader
// never sees an index pointing at entries that were not written yet.
func (c *CachedRepo) storeCatalog(exercises []Exercise) error {
	for _, e := range exercises {
		eJson, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("marshal exercise %d: %w", e.ID, err)
		}
		if err := c.set(exerciseKeyPrefix+strconv.Itoa(e.ID), eJson); err != nil {
			return fmt.Errorf("cache exercise %d: %w", e.ID, err)
		}
	}

	pages := 0
	for start := 0; start < len(exercises); start += idsPageSize {
		end := min(start+idsPageSize, len(exercises))
		ids := make([]int, 0, end-start)
		for _, e := range exercises[start:end] {
			ids = append(ids, e.ID)
		}
		idsJson, err := json.Marshal(ids)
		if err != nil {
			return fmt.Errorf("marshal index page %d: %w", pages, err)
		}
		if err := c.set(indexPageKeyPrefix+strconv.Itoa(pages), idsJson); err != nil {
			return fmt.Errorf("cache index page %d: %w", pages, err)
		}
		pages++
	}

	return c.set(indexPagesKey, []byte(strconv.Itoa(pages)))
}

func (c *CachedRepo) set(key string, value []byte) error {
	err := c.cache.Set([]byte(key), value, c.ttlSeconds)
	if errors.Is(err, freecache.ErrLargeEntry) {
		return fmt.Errorf("%w (%d bytes), increase catalog_cache_size_mb", err, len(key)+len(value))
	}
	return err
}

func (c *CachedRepo) countCache(result string) {
	if c.metricsManager != nil {
		c.metricsManager.CounterCatalogCache.WithLabelValues(result).Inc()
	}
}
