package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"

	"github.com/2beens/gymsplit/internal/config"
	"github.com/2beens/gymsplit/internal/db"
	"github.com/2beens/gymsplit/internal/gymsplit/catalog"
	"github.com/2beens/gymsplit/internal/gymsplit/plans"
	"github.com/2beens/gymsplit/internal/gymsplit/share"
	"github.com/2beens/gymsplit/internal/gymsplit/volume"
	"github.com/2beens/gymsplit/internal/middleware"
	"github.com/2beens/gymsplit/internal/telemetry/metrics"
	"github.com/2beens/gymsplit/internal/telemetry/tracing"
	"github.com/2beens/gymsplit/pkg"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client

	catalogRepo   *catalog.CachedRepo
	plansRepo     *plans.Repo
	shareRegistry *share.Registry

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	PostgresPassword        string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

// replaced in tests
var honeycombSetup = tracing.HoneycombSetup

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (_ *Server, err error) {
	// undone in reverse order when construction fails half way
	var cleanups []func()
	defer func() {
		if err != nil {
			for i := len(cleanups) - 1; i >= 0; i-- {
				cleanups[i]()
			}
		}
	}()

	// the tracer provider must exist before the pgx and redis hooks pick it up
	otelShutdown := func() {}
	if params.HoneycombTracingEnabled {
		// use honeycomb distro to setup OpenTelemetry SDK
		otelShutdown, err = honeycombSetup("gymsplit-backend")
		if err != nil {
			return nil, fmt.Errorf("honeycomb setup: %w", err)
		}
		cleanups = append(cleanups, otelShutdown)
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		DBUser:         params.Config.PostgresUser,
		DBPassword:     params.PostgresPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}
	cleanups = append(cleanups, dbPool.Close)

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	if err = db.Migrate(ctx, dbPool); err != nil {
		return nil, fmt.Errorf("migrate db: %w", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("gymsplit", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0) // set to 1 once the servers are listening

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	if params.HoneycombTracingEnabled {
		rdb.AddHook(redisotel.NewTracingHook())
	}

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	plansRepo := plans.NewRepo(dbPool)
	catalogRepo := catalog.NewCachedRepo(
		catalog.NewRepo(dbPool),
		params.Config.CatalogCacheSizeMB,
		params.Config.CatalogCacheTTLSeconds,
		metricsManager,
	)
	shareRegistry := share.NewRegistry(
		share.NewRepo(dbPool),
		plansRepo,
		share.NewRedisSlugCache(rdb, share.DefaultSlugTTL),
		metricsManager,
	)

	return &Server{
		config:      params.Config,
		dbPool:      dbPool,
		redisClient: rdb,
		versionInfo: params.VersionInfo,

		catalogRepo:   catalogRepo,
		plansRepo:     plansRepo,
		shareRegistry: shareRegistry,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("gymsplit-router"))

	r.HandleFunc("/health", s.handleHealth).Methods("GET", "OPTIONS").Name("health")

	catalogHandler := catalog.NewHandler(s.catalogRepo)
	r.HandleFunc("/exercises", catalogHandler.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/exercises/facets", catalogHandler.HandleFacets).Methods("GET", "OPTIONS").Name("exercise-facets")

	plansHandler := plans.NewHandler(s.plansRepo, s.catalogRepo, s.metricsManager)
	r.HandleFunc("/plans", plansHandler.HandleCreate).Methods("POST", "OPTIONS").Name("new-plan")
	r.HandleFunc("/plans/{id}", plansHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-plan")
	r.HandleFunc("/plans/{id}", plansHandler.HandleReplace).Methods("PUT", "OPTIONS").Name("replace-plan")
	r.HandleFunc("/plans/{id}/days/{day}/exercises", plansHandler.HandleAddExercise).Methods("POST", "OPTIONS").Name("add-day-exercise")
	r.HandleFunc("/plans/{id}/days/{day}/exercises/{index}", plansHandler.HandleUpdateExercise).Methods("PATCH", "OPTIONS").Name("update-day-exercise")
	r.HandleFunc("/plans/{id}/days/{day}/exercises/{index}", plansHandler.HandleRemoveExercise).Methods("DELETE", "OPTIONS").Name("remove-day-exercise")

	shareHandler := share.NewHandler(s.shareRegistry)
	publishRateLimit := middleware.RateLimit(
		redis_rate.NewLimiter(s.redisClient),
		"publish",
		s.config.PublishRateLimitPerMinute,
		s.config.TrustProxyHeaders,
		s.metricsManager,
	)
	r.Handle("/plans/{id}/public", publishRateLimit(http.HandlerFunc(shareHandler.HandlePublish))).Methods("POST", "OPTIONS").Name("publish-plan")
	r.HandleFunc("/public/{slug}", shareHandler.HandleResolve).Methods("GET", "OPTIONS").Name("resolve-share")

	volumeHandler := volume.NewHandler(s.plansRepo, s.shareRegistry, s.catalogRepo)
	r.HandleFunc("/plans/{id}/volume", volumeHandler.HandlePlanVolume).Methods("GET", "OPTIONS").Name("plan-volume")
	r.HandleFunc("/public/{slug}/volume", volumeHandler.HandlePublicVolume).Methods("GET", "OPTIONS").Name("public-plan-volume")
	r.HandleFunc("/volume", volumeHandler.HandleAnalyze).Methods("POST", "OPTIONS").Name("analyze-volume")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSON(w, map[string]string{
		"status":  "ok",
		"version": s.versionInfo,
	}, http.StatusOK)
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{Registry: s.promRegistry},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}
