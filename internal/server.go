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
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/routinehub/internal/account"
	"github.com/2beens/routinehub/internal/auth"
	"github.com/2beens/routinehub/internal/cache"
	"github.com/2beens/routinehub/internal/community"
	"github.com/2beens/routinehub/internal/config"
	"github.com/2beens/routinehub/internal/db"
	"github.com/2beens/routinehub/internal/mcp"
	"github.com/2beens/routinehub/internal/middleware"
	"github.com/2beens/routinehub/internal/misc"
	"github.com/2beens/routinehub/internal/ratings"
	"github.com/2beens/routinehub/internal/routines"
	"github.com/2beens/routinehub/internal/saves"
	"github.com/2beens/routinehub/internal/telemetry/metrics"
	"github.com/2beens/routinehub/internal/telemetry/tracing"
	"github.com/2beens/routinehub/internal/trainers"
	"github.com/2beens/routinehub/internal/users"
	"github.com/2beens/routinehub/internal/workouts"
	"github.com/2beens/routinehub/pkg"
)

const (
	MCPSecretHeader     = "X-MCP-Secret"
	trainersCacheSizeMB = 4
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string
	gatewaySecret     string // shared with the authentication gateway
	mcpSecret         string

	config *config.Config
	dbPool *pgxpool.Pool

	redisClient   *redis.Client
	loginChecker  *auth.LoginChecker
	authService   *auth.Service
	rateLimiter   middleware.RequestRateLimiter
	trainersCache cache.Cache

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()

	cancelBackground context.CancelFunc
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	AdminUsername           string
	AdminPasswordHash       string
	GatewaySecret           string
	MCPSecret               string
	RedisPassword           string
	PostgresPassword        string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		DBUser:         params.Config.PostgresUser,
		DBPassword:     params.PostgresPassword,
		MaxConns:       params.Config.PostgresMaxConns,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	} else if err := db.Migrate(ctx, dbPool); err != nil {
		return nil, fmt.Errorf("migrate db: %w", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("routinehub", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	sessionTTL := params.Config.SessionTTL()
	authService := auth.NewAuthService(&auth.Admin{
		Username:     params.AdminUsername,
		PasswordHash: params.AdminPasswordHash,
	}, sessionTTL, rdb)

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "routinehub", rdb)
	if err != nil {
		return nil, err
	}

	return &Server{
		versionInfo:    params.VersionInfo,
		gatewaySecret:  params.GatewaySecret,
		mcpSecret:      params.MCPSecret,
		config:         params.Config,
		dbPool:         dbPool,
		redisClient:    rdb,
		loginChecker:   auth.NewLoginChecker(sessionTTL, rdb),
		authService:    authService,
		rateLimiter:    redis_rate.NewLimiter(rdb),
		trainersCache:  cache.NewMemCache(trainersCacheSizeMB),
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()

	usersRepo := users.NewRepo(s.dbPool)
	trainersRepo := trainers.NewRepo(s.dbPool)
	routinesRepo := routines.NewRepo(s.dbPool)
	workoutsRepo := workouts.NewRepo(s.dbPool)
	ratingsRepo := ratings.NewRepo(s.dbPool)
	savesRepo := saves.NewRepo(s.dbPool, routinesRepo)
	communityRepo := community.NewRepo(s.dbPool)
	statsService := workouts.NewStatsService(workoutsRepo, s.config.StatsLocation())

	authHandler := auth.NewHandler(s.authService)
	accountHandler := account.NewHandler(usersRepo, trainersRepo, s.authService, s.gatewaySecret, s.metricsManager)
	trainersHandler := trainers.NewHandler(trainersRepo, s.trainersCache, s.config.TrainersCacheTTL())
	routinesHandler := routines.NewHandler(routinesRepo)
	workoutsHandler := workouts.NewHandler(workoutsRepo, statsService, s.metricsManager)
	ratingsHandler := ratings.NewHandler(ratingsRepo, s.metricsManager)
	savesHandler := saves.NewHandler(savesRepo, s.metricsManager)
	communityHandler := community.NewHandler(communityRepo, s.metricsManager)

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)
	requireUser := authMiddleware.RequireUser
	requireAdmin := authMiddleware.RequireAdmin

	// session exchange and admin login get the stricter limit
	authRouter := r.PathPrefix("/api/auth").Subrouter()
	authRouter.Use(middleware.RateLimit(s.rateLimiter, "auth", s.config.LoginRateLimitAllowedPerMin, s.metricsManager))
	authRouter.HandleFunc("/session", accountHandler.HandleSession).Methods("POST", "OPTIONS").Name("session")
	authRouter.HandleFunc("/logout", authHandler.HandleLogout).Methods("POST", "OPTIONS").Name("logout")
	authRouter.HandleFunc("/user", requireUser(accountHandler.HandleGetCurrent)).Methods("GET", "OPTIONS").Name("current-user")

	adminRouter := r.PathPrefix("/a").Subrouter()
	adminRouter.Use(middleware.RateLimit(s.rateLimiter, "admin", s.config.LoginRateLimitAllowedPerMin, s.metricsManager))
	adminRouter.HandleFunc("/login", authHandler.HandleAdminLogin).Methods("POST", "OPTIONS").Name("admin-login")
	adminRouter.HandleFunc("/logout", requireAdmin(authHandler.HandleLogout)).Methods("POST", "OPTIONS").Name("admin-logout")

	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.RateLimit(s.rateLimiter, "api", s.config.WriteRateLimitAllowedPerMin, s.metricsManager))

	api.HandleFunc("/trainers", requireUser(trainersHandler.HandleCreate)).Methods("POST", "OPTIONS")
	api.HandleFunc("/trainers", trainersHandler.HandleList).Methods("GET")
	api.HandleFunc("/trainers/{userId}", trainersHandler.HandleGet).Methods("GET", "OPTIONS")
	api.HandleFunc("/trainers/{userId}/verified", requireAdmin(trainersHandler.HandleSetVerified)).Methods("PUT", "OPTIONS")

	api.HandleFunc("/routines", requireUser(routinesHandler.HandleCreate)).Methods("POST", "OPTIONS")
	api.HandleFunc("/routines", routinesHandler.HandleList).Methods("GET")
	api.HandleFunc("/routines/{id}", routinesHandler.HandleGet).Methods("GET", "OPTIONS")
	api.HandleFunc("/routines/{id}", requireUser(routinesHandler.HandleUpdate)).Methods("PUT")
	api.HandleFunc("/routines/{id}", requireUser(routinesHandler.HandleDelete)).Methods("DELETE")

	api.HandleFunc("/exercises", requireUser(routinesHandler.HandleCreateExercise)).Methods("POST", "OPTIONS")
	api.HandleFunc("/exercises/{id}", requireUser(routinesHandler.HandleUpdateExercise)).Methods("PUT", "OPTIONS")
	api.HandleFunc("/exercises/{id}", requireUser(routinesHandler.HandleDeleteExercise)).Methods("DELETE")

	api.HandleFunc("/workout-records", requireUser(workoutsHandler.HandleCreateRecord)).Methods("POST", "OPTIONS")
	api.HandleFunc("/workout-records", requireUser(workoutsHandler.HandleListRecords)).Methods("GET")
	api.HandleFunc("/workout-records/{id}/exercise-records", requireUser(workoutsHandler.HandleListExerciseRecords)).Methods("GET", "OPTIONS")
	api.HandleFunc("/workout-stats", requireUser(workoutsHandler.HandleStats)).Methods("GET", "OPTIONS")
	api.HandleFunc("/exercise-records", requireUser(workoutsHandler.HandleCreateExerciseRecord)).Methods("POST", "OPTIONS")

	api.HandleFunc("/routine-ratings", requireUser(ratingsHandler.HandleCreate)).Methods("POST", "OPTIONS")
	api.HandleFunc("/routine-ratings/{routineId}", ratingsHandler.HandleList).Methods("GET", "OPTIONS")
	api.HandleFunc("/routine-ratings/{routineId}/mine", requireUser(ratingsHandler.HandleGetMine)).Methods("GET", "OPTIONS")

	api.HandleFunc("/saved-routines", requireUser(savesHandler.HandleSave)).Methods("POST", "OPTIONS")
	api.HandleFunc("/saved-routines", requireUser(savesHandler.HandleList)).Methods("GET")
	api.HandleFunc("/saved-routines/{routineId}", requireUser(savesHandler.HandleUnsave)).Methods("DELETE", "OPTIONS")
	api.HandleFunc("/saved-routines/{routineId}/check", requireUser(savesHandler.HandleCheck)).Methods("GET", "OPTIONS")

	api.HandleFunc("/posts", requireUser(communityHandler.HandleCreatePost)).Methods("POST", "OPTIONS")
	api.HandleFunc("/posts", communityHandler.HandleListPosts).Methods("GET")
	api.HandleFunc("/posts/{id}", communityHandler.HandleGetPost).Methods("GET", "OPTIONS")
	api.HandleFunc("/posts/{id}", requireUser(communityHandler.HandleUpdatePost)).Methods("PUT")
	api.HandleFunc("/posts/{id}", requireUser(communityHandler.HandleDeletePost)).Methods("DELETE")

	api.HandleFunc("/comments", requireUser(communityHandler.HandleCreateComment)).Methods("POST", "OPTIONS")
	api.HandleFunc("/comments/{postId}", communityHandler.HandleListComments).Methods("GET", "OPTIONS")
	api.HandleFunc("/comments/{id}", requireUser(communityHandler.HandleDeleteComment)).Methods("DELETE")

	mcpServer := mcp.NewServer(s.dbPool, mcp.Deps{
		Workouts: workoutsRepo,
		Stats:    statsService,
		Routines: routinesRepo,
		Ratings:  ratingsRepo,
	})
	mcpHandler := sdkmcp.NewStreamableHTTPHandler(func(*http.Request) *sdkmcp.Server {
		return mcpServer
	}, nil)
	r.Handle("/mcp", middleware.RequireSecret(
		MCPSecretHeader,
		s.mcpSecret,
		otelhttp.NewHandler(mcpHandler, "mcp"),
	)).Name("mcp")

	misc.NewHandler(s.versionInfo, s.dbPool, s.redisClient).SetupRoutes(r)

	r.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Tracef("unknown route: %s %s", r.Method, r.URL.Path)
		pkg.WriteJSONMessage(w, "Not found", http.StatusNotFound)
	}).Name("unknown")

	r.Use(otelmux.Middleware("routinehub"))
	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
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

	bgCtx, cancel := context.WithCancel(ctx)
	s.cancelBackground = cancel
	go s.cleanSessionsPeriodically(bgCtx, time.Duration(s.config.SessionsCleanupMinutes)*time.Minute)

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) cleanSessionsPeriodically(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.authService.ScanAndClean(ctx)
		}
	}
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	if s.cancelBackground != nil {
		s.cancelBackground()
	}

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

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
	}
}
