package misc

import (
	"context"
	"net/http"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/routinehub/internal/telemetry/tracing"
	"github.com/2beens/routinehub/pkg"
)

const statusOK = "ok"

type dbPinger interface {
	Ping(ctx context.Context) error
}

type HealthResponse struct {
	Status   string `json:"status"`
	Postgres string `json:"postgres"`
	Redis    string `json:"redis"`
}

type Handler struct {
	versionInfo string
	db          dbPinger
	redisClient *redis.Client
}

func NewHandler(versionInfo string, db dbPinger, redisClient *redis.Client) *Handler {
	return &Handler{
		versionInfo: versionInfo,
		db:          db,
		redisClient: redisClient,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET", "POST", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")
	mainRouter.HandleFunc("/health", handler.handleHealth).Methods("GET").Name("health")
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}

// handleHealth reports 503 when postgres or redis cannot be reached.
func (handler *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.misc.health")
	defer span.End()

	resp := HealthResponse{
		Status:   statusOK,
		Postgres: statusOK,
		Redis:    statusOK,
	}

	if err := handler.db.Ping(ctx); err != nil {
		log.Errorf("health: ping postgres: %s", err)
		resp.Postgres = err.Error()
		resp.Status = "degraded"
	}
	if err := handler.redisClient.Ping(ctx).Err(); err != nil {
		log.Errorf("health: ping redis: %s", err)
		resp.Redis = err.Error()
		resp.Status = "degraded"
	}

	statusCode := http.StatusOK
	if resp.Status != statusOK {
		statusCode = http.StatusServiceUnavailable
	}
	pkg.WriteJSON(w, resp, statusCode)
}
