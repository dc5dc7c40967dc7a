// Package account exchanges gateway identities for sessions and serves the
// logged user's profile.
package account

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/routinehub/internal/auth"
	"github.com/2beens/routinehub/internal/telemetry/metrics"
	"github.com/2beens/routinehub/internal/telemetry/tracing"
	"github.com/2beens/routinehub/internal/trainers"
	"github.com/2beens/routinehub/internal/users"
	"github.com/2beens/routinehub/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=account_mocks_test.go -package=account_test

type usersRepo interface {
	Get(ctx context.Context, id string) (*users.User, error)
	Upsert(ctx context.Context, identity users.Identity) (*users.User, error)
}

type trainerGetter interface {
	Get(ctx context.Context, userID string) (*trainers.Trainer, error)
}

type sessionIssuer interface {
	Login(ctx context.Context, userID string, createdAt time.Time) (string, error)
}

type SessionResponse struct {
	Token string      `json:"token"`
	User  *users.User `json:"user"`
}

type CurrentUserResponse struct {
	*users.User
	Trainer *trainers.Trainer `json:"trainer"`
}

type Handler struct {
	users          usersRepo
	trainers       trainerGetter
	sessions       sessionIssuer
	gatewaySecret  string
	metricsManager *metrics.Manager
}

func NewHandler(
	users usersRepo,
	trainers trainerGetter,
	sessions sessionIssuer,
	gatewaySecret string,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		users:          users,
		trainers:       trainers,
		sessions:       sessions,
		gatewaySecret:  gatewaySecret,
		metricsManager: metricsManager,
	}
}

// HandleSession is called by the authentication gateway once it verified the
// user's identity; it upserts the user and issues a session token.
func (handler *Handler) HandleSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.account.session")
	defer span.End()

	if !handler.validGatewaySecret(r.Header.Get("Authorization")) {
		log.Warnf("session exchange with invalid gateway secret from %s", pkg.ReadUserIP(r))
		pkg.WriteJSONMessage(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var identity users.Identity
	if err := pkg.DecodeJSONBody(r, &identity); err != nil {
		pkg.WriteJSONMessage(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := handler.users.Upsert(ctx, identity)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			pkg.WriteJSONMessage(w, "email already used by another user", http.StatusBadRequest)
			return
		}
		log.Errorf("upsert user %s: %s", identity.ID, err)
		pkg.WriteJSONMessage(w, "failed to create session", http.StatusInternalServerError)
		return
	}

	token, err := handler.sessions.Login(ctx, user.ID, time.Now())
	if err != nil {
		log.Errorf("login user %s: %s", user.ID, err)
		pkg.WriteJSONMessage(w, "failed to create session", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterSessions.Inc()
	log.Debugf("new session for user %s", user.ID)
	pkg.WriteJSON(w, SessionResponse{Token: token, User: user}, http.StatusOK)
}

func (handler *Handler) validGatewaySecret(sent string) bool {
	if handler.gatewaySecret == "" || sent == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(sent), []byte(handler.gatewaySecret)) == 1
}

func (handler *Handler) HandleGetCurrent(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.account.current")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		pkg.WriteJSONMessage(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := handler.users.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			pkg.WriteJSONMessage(w, "User not found", http.StatusNotFound)
			return
		}
		log.Errorf("get user %s: %s", userID, err)
		pkg.WriteJSONMessage(w, "Failed to fetch user", http.StatusInternalServerError)
		return
	}

	trainer, err := handler.trainers.Get(ctx, userID)
	if err != nil && !errors.Is(err, trainers.ErrTrainerNotFound) {
		log.Errorf("get trainer profile of user %s: %s", userID, err)
		pkg.WriteJSONMessage(w, "Failed to fetch user", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, CurrentUserResponse{User: user, Trainer: trainer}, http.StatusOK)
}
