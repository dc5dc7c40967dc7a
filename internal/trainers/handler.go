package trainers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/routinehub/internal/auth"
	"github.com/2beens/routinehub/internal/cache"
	"github.com/2beens/routinehub/internal/telemetry/tracing"
	"github.com/2beens/routinehub/internal/users"
	"github.com/2beens/routinehub/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=trainers_mocks_test.go -package=trainers_test

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

type trainersRepo interface {
	Create(ctx context.Context, userID string, params CreateParams) (*Trainer, error)
	Get(ctx context.Context, userID string) (*Trainer, error)
	List(ctx context.Context, limit int) ([]Trainer, error)
	SetVerified(ctx context.Context, userID string, verified bool) error
}

type SetVerifiedRequest struct {
	Verified *bool `json:"verified" validate:"required"`
}

type Handler struct {
	repo     trainersRepo
	cache    cache.Cache
	cacheTTL time.Duration
}

func NewHandler(repo trainersRepo, listCache cache.Cache, cacheTTL time.Duration) *Handler {
	return &Handler{
		repo:     repo,
		cache:    listCache,
		cacheTTL: cacheTTL,
	}
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainers.create")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONMessage(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var params CreateParams
	if err := pkg.DecodeJSONBody(r, &params); err != nil {
		pkg.WriteJSONMessage(w, err.Error(), http.StatusBadRequest)
		return
	}

	trainer, err := handler.repo.Create(ctx, userID, params)
	if err != nil {
		switch {
		case errors.Is(err, ErrTrainerExists):
			pkg.WriteJSONMessage(w, "trainer profile already exists", http.StatusBadRequest)
		case errors.Is(err, users.ErrUserNotFound):
			pkg.WriteJSONMessage(w, "user not found", http.StatusNotFound)
		default:
			log.Errorf("create trainer for user %s: %s", userID, err)
			pkg.WriteJSONMessage(w, "failed to create trainer profile", http.StatusInternalServerError)
		}
		return
	}

	handler.cache.Clear()
	log.Debugf("new trainer profile created: %d, user %s", trainer.ID, userID)
	pkg.WriteJSON(w, trainer, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainers.list")
	defer span.End()

	limit, err := pkg.QueryInt(r.URL.Query(), "limit", defaultListLimit)
	if err != nil {
		pkg.WriteJSONMessage(w, err.Error(), http.StatusBadRequest)
		return
	}
	if limit < 1 {
		pkg.WriteJSONMessage(w, "parameter <limit> must be greater than 0", http.StatusBadRequest)
		return
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	cacheKey := fmt.Sprintf("trainers::%d", limit)
	if cached, found := handler.cache.Get(cacheKey); found {
		log.Tracef("trainers list [%d] found in cache", limit)
		pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, cached)
		return
	}

	trainers, err := handler.repo.List(ctx, limit)
	if err != nil {
		log.Errorf("list trainers: %s", err)
		pkg.WriteJSONMessage(w, "failed to fetch trainers", http.StatusInternalServerError)
		return
	}
	if trainers == nil {
		trainers = []Trainer{}
	}

	trainersJson, err := json.Marshal(trainers)
	if err != nil {
		log.Errorf("marshal trainers: %s", err)
		pkg.WriteJSONMessage(w, "failed to fetch trainers", http.StatusInternalServerError)
		return
	}

	if err := handler.cache.Set(cacheKey, trainersJson, handler.cacheTTL); err != nil {
		log.Errorf("failed to cache trainers list: %s", err)
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, trainersJson)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainers.get")
	defer span.End()

	userID := mux.Vars(r)["userId"]
	if userID == "" {
		pkg.WriteJSONMessage(w, "user id empty", http.StatusBadRequest)
		return
	}

	trainer, err := handler.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrTrainerNotFound) {
			pkg.WriteJSONMessage(w, "trainer not found", http.StatusNotFound)
			return
		}
		log.Errorf("get trainer %s: %s", userID, err)
		pkg.WriteJSONMessage(w, "failed to fetch trainer", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, trainer, http.StatusOK)
}

func (handler *Handler) HandleSetVerified(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainers.setverified")
	defer span.End()

	userID := mux.Vars(r)["userId"]
	if userID == "" {
		pkg.WriteJSONMessage(w, "user id empty", http.StatusBadRequest)
		return
	}

	var req SetVerifiedRequest
	if err := pkg.DecodeJSONBody(r, &req); err != nil {
		pkg.WriteJSONMessage(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.repo.SetVerified(ctx, userID, *req.Verified); err != nil {
		if errors.Is(err, ErrTrainerNotFound) {
			pkg.WriteJSONMessage(w, "trainer not found", http.StatusNotFound)
			return
		}
		log.Errorf("set trainer %s verified: %s", userID, err)
		pkg.WriteJSONMessage(w, "failed to update trainer", http.StatusInternalServerError)
		return
	}

	handler.cache.Clear()
	log.Infof("trainer %s verified: %t", userID, *req.Verified)
	pkg.WriteJSONMessage(w, "updated", http.StatusOK)
}
