package middleware

import (
	"context"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"

	"github.com/2beens/routinehub/internal/auth"
	"github.com/2beens/routinehub/internal/telemetry/tracing"
	"github.com/2beens/routinehub/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=middleware_mocks_test.go -package=middleware_test

type loginChecker interface {
	Session(ctx context.Context, token string) (*auth.Session, error)
}

type AuthMiddlewareHandler struct {
	loginChecker loginChecker
}

func NewAuthMiddlewareHandler(loginChecker loginChecker) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		loginChecker: loginChecker,
	}
}

// AuthCheck resolves the session token (if sent) and stores the session in the
// request context. Requests without a token pass through anonymously; routes
// that need a user are wrapped with RequireUser / RequireAdmin.
func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PUT, DELETE, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			authToken := r.Header.Get(auth.SessionTokenHeader)
			if authToken == "" {
				span.SetStatus(codes.Ok, "anonymous")
				next.ServeHTTP(w, r)
				return
			}

			session, err := h.loginChecker.Session(ctx, authToken)
			if err != nil {
				if errors.Is(err, auth.ErrSessionNotFound) || errors.Is(err, auth.ErrInvalidSession) {
					log.Tracef("[invalid token] [auth middleware] unauthorized => %s", r.URL.Path)
					span.SetStatus(codes.Error, "not-logged")
				} else {
					log.Errorf("[failed login check] => %s: %s", r.URL.Path, err)
					span.SetStatus(codes.Error, "check-logged-err")
					span.RecordError(err)
				}
				pkg.WriteJSONMessage(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(auth.ContextWithSession(r.Context(), session)))
		})
	}
}

// RequireUser rejects requests that do not carry a user session.
func (h *AuthMiddlewareHandler) RequireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := auth.UserIDFromContext(r.Context()); !ok {
			log.Tracef("[missing user session] unauthorized => %s", r.URL.Path)
			pkg.WriteJSONMessage(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

// RequireAdmin rejects requests that do not carry an admin session.
func (h *AuthMiddlewareHandler) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := auth.SessionFromContext(r.Context())
		if !ok {
			pkg.WriteJSONMessage(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		if !session.IsAdmin() {
			pkg.WriteJSONMessage(w, "Forbidden", http.StatusForbidden)
			return
		}
		next(w, r)
	}
}

// RequireSecret guards a handler with a shared secret sent in header.
func RequireSecret(header, secret string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if secret == "" || r.Header.Get(header) != secret {
			log.Warnf("request to %s with invalid %s header", r.URL.Path, header)
			pkg.WriteJSONMessage(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
