package ratings

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

//go:generate mockgen -source=$GOFILE -destination=ratings_mocks_test.go -package=ratings_test

type ratingsRepo interface {
	Create(ctx context.Context, userID string, params CreateParams) (*Rating, Aggregate, error)
	ListByRoutine(ctx context.Context, routineID int) ([]Rating, error)
	GetUserRating(ctx context.Context, routineID int, userID string) (*Rating, error)
}

type CreateResponse struct {
	*Rating
	Aggregate
}

type Handler struct {
	repo           ratingsRepo
	metricsManager *metrics.Manager
}

func NewHandler(repo ratingsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.ratings.create")
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

	rating, agg, err := handler.repo.Create(ctx, userID, params)
	switch {
	case err == nil:
	case errors.Is(err, ErrDuplicateRating):
		handler.metricsManager.CounterDuplicateRatings.Inc()
		pkg.WriteJSONMessage(w, "You have already rated this routine", http.StatusBadRequest)
		return
	case errors.Is(err, routines.ErrRoutineNotFound):
		pkg.WriteJSONMessage(w, "Routine not found", http.StatusNotFound)
		return
	case pkg.IsValidationError(err):
		pkg.WriteJSONMessage(w, err.Error(), http.StatusBadRequest)
		return
	default:
		log.Errorf("create rating for routine %d: %s", params.RoutineID, err)
		pkg.WriteJSONMessage(w, "Failed to create rating", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterRatings.Inc()
	log.Debugf("routine %d rated %d by %s, new average %s", params.RoutineID, params.Rating, userID, agg.Average)
	pkg.WriteJSON(w, CreateResponse{Rating: rating, Aggregate: agg}, http.StatusCreated)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.ratings.list")
	defer span.End()

	routineID, err := pkg.RouteVarInt(r, "routineId")
	if err != nil {
		pkg.WriteJSONMessage(w, err.Error(), http.StatusBadRequest)
		return
	}

	ratings, err := handler.repo.ListByRoutine(ctx, routineID)
	if err != nil {
		log.Errorf("list ratings of routine %d: %s", routineID, err)
		pkg.WriteJSONMessage(w, "Failed to fetch ratings", http.StatusInternalServerError)
		return
	}
	if ratings == nil {
		ratings = []Rating{}
	}

	pkg.WriteJSON(w, ratings, http.StatusOK)
}

// HandleGetMine returns the caller's own rating of the routine.
func (handler *Handler) HandleGetMine(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.ratings.mine")
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

	rating, err := handler.repo.GetUserRating(ctx, routineID, userID)
	if err != nil {
		if errors.Is(err, ErrRatingNotFound) {
			pkg.WriteJSONMessage(w, "Rating not found", http.StatusNotFound)
			return
		}
		log.Errorf("get rating of routine %d by %s: %s", routineID, userID, err)
		pkg.WriteJSONMessage(w, "Failed to fetch rating", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, rating, http.StatusOK)
}
