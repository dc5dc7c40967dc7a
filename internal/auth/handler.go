package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/routinehub/internal/telemetry/tracing"
	"github.com/2beens/routinehub/pkg"
)

// SessionTokenHeader carries the session token on every authenticated request.
const SessionTokenHeader = "X-Session-Token"

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=auth_test

type sessionService interface {
	AdminLogin(ctx context.Context, credentials Credentials, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) (bool, error)
}

type TokenResponse struct {
	Token string `json:"token"`
}

type Handler struct {
	service sessionService
}

func NewHandler(service sessionService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) HandleAdminLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.admin-login")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		pkg.WriteJSONMessage(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var credentials Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Tracef("admin login, unmarshal json params: %s", err)
		pkg.WriteJSONMessage(w, "login failed", http.StatusBadRequest)
		return
	}
	if credentials.Username == "" || credentials.Password == "" {
		pkg.WriteJSONMessage(w, "username or password empty", http.StatusBadRequest)
		return
	}

	token, err := handler.service.AdminLogin(ctx, credentials, time.Now())
	if err != nil {
		if errors.Is(err, ErrWrongUsername) || errors.Is(err, ErrWrongPassword) {
			log.Tracef("failed admin login attempt for user [%s]: %s", credentials.Username, err)
			pkg.WriteJSONMessage(w, "wrong credentials", http.StatusUnauthorized)
			return
		}
		log.Errorf("admin login failed: %s", err)
		pkg.WriteJSONMessage(w, "login failed", http.StatusInternalServerError)
		return
	}

	log.Trace("new admin login success")
	pkg.WriteJSON(w, TokenResponse{Token: token}, http.StatusOK)
}

func (handler *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.auth.logout")
	defer span.End()

	authToken := r.Header.Get(SessionTokenHeader)
	if authToken == "" {
		pkg.WriteJSONMessage(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	loggedOut, err := handler.service.Logout(ctx, authToken)
	if err != nil {
		log.Errorf("logout failed: %s", err)
		pkg.WriteJSONMessage(w, "logout failed", http.StatusInternalServerError)
		return
	}
	if !loggedOut {
		pkg.WriteJSONMessage(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	pkg.WriteJSONMessage(w, "logged out", http.StatusOK)
}
