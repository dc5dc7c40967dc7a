package saves

import (
	"context"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/routinehub/internal/auth"
	"github.com/2beens/routinehub/internal/routines"
	"github.com/2beens/routinehub/internal/telemetry/metrics"
	"github.com/2beens/routinehub/internal/telemetry/tracing"
	"github.com/2beens/routinehub/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=saves_mocks_test.go -package=saves_test

type savesRepo interface {
	Save(ctx context.Context, userID string, routineID int) (int, error)
	Unsave(ctx context.Context, userID string, routineID int) (int, error)
	List(ctx context.Context, userID string) ([]routines.Routine, error)
	IsSaved(ctx context.Context, userID string, routineID int) (bool, error)
}

type SaveRequest struct {
	RoutineID int `json:"routineId" validate:"required,min=1"`
}

type SaveResponse struct {
	Message    string `json:"message"`
	TotalSaves int    `json:"totalSaves"`
}

type CheckResponse struct {
	IsSaved bool `json:"isSaved"`
}

type Handler struct {
	repo           savesRepo
	metricsManager *metrics.Manager
}

func NewHandler(repo savesRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

func writeRepoErr(w http.ResponseWriter, err error, failMsg string) {
	if errors.Is(err, routines.ErrRoutineNotFound) {
		pkg.WriteJSONMessage(w, "Routine not found", http.StatusNotFound)
		return
	}
	log.Errorf("%s: %s", failMsg, err)
	pkg.WriteJSONMessage(w, failMsg, http.StatusInternalServerError)
}

func (handler *Handler) HandleSave(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.saves.save")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONMessage(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req SaveRequest
	if err := pkg.DecodeJSONBody(r, &req); err != nil {
		pkg.WriteJSONMessage(w, err.Error(), http.StatusBadRequest)
		return
	}

	totalSaves, err := handler.repo.Save(ctx, userID, req.RoutineID)
	if err != nil {
		writeRepoErr(w, err, "Failed to save routine")
		return
	}

	handler.metricsManager.CounterSaves.WithLabelValues(metrics.SaveActionSave).Inc()
	pkg.WriteJSON(w, SaveResponse{Message: "Routine saved successfully", TotalSaves: totalSaves}, http.StatusOK)
}

func (handler *Handler) HandleUnsave(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.saves.unsave")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONMessage(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	routineID, err := pkg.RouteVarInt(r, "routineId")
	if err != nil {
		pkg.WriteJSONMessage(w, err.Error(), http.StatusBadRequest)
		return
	}

	totalSaves, err := handler.repo.Unsave(ctx, userID, routineID)
	if err != nil {
		writeRepoErr(w, err, "Failed to unsave routine")
		return
	}

	handler.metricsManager.CounterSaves.WithLabelValues(metrics.SaveActionUnsave).Inc()
	pkg.WriteJSON(w, SaveResponse{Message: "Routine unsaved successfully", TotalSaves: totalSaves}, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.saves.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONMessage(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	saved, err := handler.repo.List(ctx, userID)
	if err != nil {
		writeRepoErr(w, err, "Failed to fetch saved routines")
		return
	}
	if saved == nil {
		saved = []routines.Routine{}
	}

	pkg.WriteJSON(w, saved, http.StatusOK)
}

func (handler *Handler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.saves.check")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONMessage(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	routineID, err := pkg.RouteVarInt(r, "routineId")
	if err != nil {
		pkg.WriteJSONMessage(w, err.Error(), http.StatusBadRequest)
		return
	}

	saved, err := handler.repo.IsSaved(ctx, userID, routineID)
	if err != nil {
		writeRepoErr(w, err, "Failed to check saved routine")
		return
	}

	pkg.WriteJSON(w, CheckResponse{IsSaved: saved}, http.StatusOK)
}
