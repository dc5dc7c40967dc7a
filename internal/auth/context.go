package auth

import "context"

type sessionCtxKey struct{}

func ContextWithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, session)
}

func SessionFromContext(ctx context.Context) (*Session, bool) {
	session, ok := ctx.Value(sessionCtxKey{}).(*Session)
	return session, ok && session != nil
}

// UserIDFromContext returns the id of the logged user, if any.
func UserIDFromContext(ctx context.Context) (string, bool) {
	session, ok := SessionFromContext(ctx)
	if !ok || session.Role != RoleUser {
		return "", false
	}
	return session.UserID, true
}
