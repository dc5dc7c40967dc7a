package routines

import (
	"context"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/2beens/routinehub/internal/auth"
	"github.com/2beens/routinehub/internal/telemetry/tracing"
	"github.com/2beens/routinehub/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=routines_mocks_test.go -package=routines_test

type routinesRepo interface {
	Create(ctx context.Context, creatorID string, params CreateParams) (*Routine, error)
	Get(ctx context.Context, id int) (*Routine, error)
	List(ctx context.Context, filter Filter) ([]Routine, error)
	Update(ctx context.Context, id int, creatorID string, params UpdateParams) (*Routine, error)
	Delete(ctx context.Context, id int, creatorID string) error
	CreateExercise(ctx context.Context, creatorID string, params ExerciseParams) (*Exercise, error)
	UpdateExercise(ctx context.Context, id int, creatorID string, params ExerciseUpdateParams) (*Exercise, error)
	DeleteExercise(ctx context.Context, id int, creatorID string) error
}

type DeleteResponse struct {
	DeletedID int `json:"deletedId"`
}

type Handler struct {
	repo routinesRepo
}

func NewHandler(repo routinesRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

// writeRepoErr maps repo errors to responses, anything unknown is logged as an internal error.
func writeRepoErr(w http.ResponseWriter, err error, failMsg string) {
	switch {
	case errors.Is(err, ErrRoutineNotFound):
		pkg.WriteJSONMessage(w, "Routine not found", http.StatusNotFound)
	case errors.Is(err, ErrExerciseNotFound):
		pkg.WriteJSONMessage(w, "Exercise not found", http.StatusNotFound)
	case errors.Is(err, ErrNotOwner):
		pkg.WriteJSONMessage(w, "Forbidden", http.StatusForbidden)
	default:
		log.Errorf("%s: %s", failMsg, err)
		pkg.WriteJSONMessage(w, failMsg, http.StatusInternalServerError)
	}
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.create")
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

	routine, err := handler.repo.Create(ctx, userID, params)
	if err != nil {
		writeRepoErr(w, err, "Failed to create routine")
		return
	}

	log.Debugf("new routine created: %d [%s] by %s", routine.ID, routine.Title, userID)
	pkg.WriteJSON(w, routine, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.list")
	defer span.End()

	filter, err := ParseFilter(r.URL.Query())
	if err != nil {
		pkg.WriteJSONMessage(w, err.Error(), http.StatusBadRequest)
		return
	}

	routines, err := handler.repo.List(ctx, filter)
	if err != nil {
		writeRepoErr(w, err, "Failed to fetch routines")
		return
	}
	if routines == nil {
		routines = []Routine{}
	}

	span.SetAttributes(attribute.Int("routines.count", len(routines)))
	pkg.WriteJSON(w, routines, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.get")
	defer span.End()

	id, err := pkg.RouteVarInt(r, "id")
	if err != nil {
		pkg.WriteJSONMessage(w, err.Error(), http.StatusBadRequest)
		return
	}

	routine, err := handler.repo.Get(ctx, id)
	if err != nil {
		writeRepoErr(w, err, "Failed to fetch routine")
		return
	}

	// private routines are only visible to their creator
	if !routine.IsPublic {
		if userID, _ := auth.UserIDFromContext(ctx); userID != routine.CreatorID {
			pkg.WriteJSONMessage(w, "Routine not found", http.StatusNotFound)
			return
		}
	}

	pkg.WriteJSON(w, routine, http.StatusOK)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.update")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONMessage(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := pkg.RouteVarInt(r, "id")
	if err != nil {
		pkg.WriteJSONMessage(w, err.Error(), http.StatusBadRequest)
		return
	}

	var params UpdateParams
	if err := pkg.DecodeJSONBody(r, &params); err != nil {
		pkg.WriteJSONMessage(w, err.Error(), http.StatusBadRequest)
		return
	}

	routine, err := handler.repo.Update(ctx, id, userID, params)
	if err != nil {
		writeRepoErr(w, err, "Failed to update routine")
		return
	}

	pkg.WriteJSON(w, routine, http.StatusOK)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.delete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONMessage(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := pkg.RouteVarInt(r, "id")
	if err != nil {
		pkg.WriteJSONMessage(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, id, userID); err != nil {
		writeRepoErr(w, err, "Failed to delete routine")
		return
	}

	log.Debugf("routine %d deleted by %s", id, userID)
	pkg.WriteJSON(w, DeleteResponse{DeletedID: id}, http.StatusOK)
}

func (handler *Handler) HandleCreateExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.exercise.create")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONMessage(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var params ExerciseParams
	if err := pkg.DecodeJSONBody(r, &params); err != nil {
		pkg.WriteJSONMessage(w, err.Error(), http.StatusBadRequest)
		return
	}

	exercise, err := handler.repo.CreateExercise(ctx, userID, params)
	if err != nil {
		writeRepoErr(w, err, "Failed to create exercise")
		return
	}

	pkg.WriteJSON(w, exercise, http.StatusCreated)
}

func (handler *Handler) HandleUpdateExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.exercise.update")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONMessage(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := pkg.RouteVarInt(r, "id")
	if err != nil {
		pkg.WriteJSONMessage(w, err.Error(), http.StatusBadRequest)
		return
	}

	var params ExerciseUpdateParams
	if err := pkg.DecodeJSONBody(r, &params); err != nil {
		pkg.WriteJSONMessage(w, err.Error(), http.StatusBadRequest)
		return
	}

	exercise, err := handler.repo.UpdateExercise(ctx, id, userID, params)
	if err != nil {
		writeRepoErr(w, err, "Failed to update exercise")
		return
	}

	pkg.WriteJSON(w, exercise, http.StatusOK)
}

func (handler *Handler) HandleDeleteExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.routines.exercise.delete")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONMessage(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := pkg.RouteVarInt(r, "id")
	if err != nil {
		pkg.WriteJSONMessage(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := handler.repo.DeleteExercise(ctx, id, userID); err != nil {
		writeRepoErr(w, err, "Failed to delete exercise")
		return
	}

	pkg.WriteJSON(w, DeleteResponse{DeletedID: id}, http.StatusOK)
}
