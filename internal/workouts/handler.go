package workouts

import (
	"context"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/routinehub/internal/auth"
	"github.com/2beens/routinehub/internal/telemetry/metrics"
	"github.com/2beens/routinehub/internal/telemetry/tracing"
	"github.com/2beens/routinehub/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=workouts_mocks_test.go -package=workouts_test

const (
	defaultRecordsLimit = 20
	maxRecordsLimit     = 200
)

type recordsRepo interface {
	CreateRecord(ctx context.Context, userID string, params RecordParams) (*WorkoutRecord, error)
	ListRecords(ctx context.Context, userID string, limit int) ([]WorkoutRecord, error)
	CreateExerciseRecord(ctx context.Context, userID string, params ExerciseRecordParams) (*ExerciseRecord, error)
	ListExerciseRecords(ctx context.Context, userID string, workoutRecordID int) ([]ExerciseRecord, error)
}

type statsService interface {
	Stats(ctx context.Context, userID string) (Stats, error)
}

type Handler struct {
	repo           recordsRepo
	stats          statsService
	metricsManager *metrics.Manager
}

func NewHandler(repo recordsRepo, stats statsService, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		stats:          stats,
		metricsManager: metricsManager,
	}
}

func writeRepoErr(w http.ResponseWriter, err error, failMsg string) {
	switch {
	case pkg.IsValidationError(err):
		pkg.WriteJSONMessage(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrWorkoutRecordNotFound):
		pkg.WriteJSONMessage(w, "Workout record not found", http.StatusNotFound)
	case errors.Is(err, ErrNotOwner):
		pkg.WriteJSONMessage(w, "Forbidden", http.StatusForbidden)
	default:
		log.Errorf("%s: %s", failMsg, err)
		pkg.WriteJSONMessage(w, failMsg, http.StatusInternalServerError)
	}
}

func (handler *Handler) HandleCreateRecord(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.record.create")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONMessage(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var params RecordParams
	if err := pkg.DecodeJSONBody(r, &params); err != nil {
		pkg.WriteJSONMessage(w, err.Error(), http.StatusBadRequest)
		return
	}

	record, err := handler.repo.CreateRecord(ctx, userID, params)
	if err != nil {
		writeRepoErr(w, err, "Failed to create workout record")
		return
	}

	handler.metricsManager.CounterWorkoutsLogged.Inc()
	log.Debugf("workout record %d logged by %s", record.ID, userID)
	pkg.WriteJSON(w, record, http.StatusCreated)
}

func (handler *Handler) HandleListRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.record.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONMessage(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	limit, err := pkg.QueryInt(r.URL.Query(), "limit", defaultRecordsLimit)
	if err != nil {
		pkg.WriteJSONMessage(w, err.Error(), http.StatusBadRequest)
		return
	}
	if limit < 1 {
		pkg.WriteJSONMessage(w, "parameter <limit> must be greater than 0", http.StatusBadRequest)
		return
	}
	limit = min(limit, maxRecordsLimit)

	records, err := handler.repo.ListRecords(ctx, userID, limit)
	if err != nil {
		writeRepoErr(w, err, "Failed to fetch workout records")
		return
	}
	if records == nil {
		records = []WorkoutRecord{}
	}

	pkg.WriteJSON(w, records, http.StatusOK)
}

func (handler *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.stats")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONMessage(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	stats, err := handler.stats.Stats(ctx, userID)
	if err != nil {
		log.Errorf("workout stats for %s: %s", userID, err)
		pkg.WriteJSONMessage(w, "Failed to fetch workout stats", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, stats, http.StatusOK)
}

func (handler *Handler) HandleCreateExerciseRecord(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.exerciserecord.create")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONMessage(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var params ExerciseRecordParams
	if err := pkg.DecodeJSONBody(r, &params); err != nil {
		pkg.WriteJSONMessage(w, err.Error(), http.StatusBadRequest)
		return
	}

	record, err := handler.repo.CreateExerciseRecord(ctx, userID, params)
	if err != nil {
		writeRepoErr(w, err, "Failed to create exercise record")
		return
	}

	pkg.WriteJSON(w, record, http.StatusCreated)
}

func (handler *Handler) HandleListExerciseRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.exerciserecord.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONMessage(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	workoutRecordID, err := pkg.RouteVarInt(r, "id")
	if err != nil {
		pkg.WriteJSONMessage(w, err.Error(), http.StatusBadRequest)
		return
	}

	records, err := handler.repo.ListExerciseRecords(ctx, userID, workoutRecordID)
	if err != nil {
		writeRepoErr(w, err, "Failed to fetch exercise records")
		return
	}
	if records == nil {
		records = []ExerciseRecord{}
	}

	pkg.WriteJSON(w, records, http.StatusOK)
}
