package middlewares

import (
	"context"
	"net/http"

	"github.com/antonkh/thingboard/internal/logger"
	"github.com/antonkh/thingboard/internal/models"
)

// SessionLoader defines the minimal interface needed by the middleware
type SessionLoader interface {
	Load(ctx context.Context, r *http.Request) *models.Session
}

// RequireSession returns a middleware that guards routes behind a logged-in
// session. Anonymous requests are redirected to the login form before the
// wrapped handler runs; authenticated requests get their session placed in
// the request context.
func RequireSession(store SessionLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			session := store.Load(ctx, r)
			if !session.LoggedIn() {
				logger.Log.Infow("unauthenticated request to protected route", "uri", r.RequestURI)
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(ctx, session)))
		})
	}
}

// sessionKey is an unexported type for keys in context
type sessionKey struct{}

// WithSession stores a session in the context
func WithSession(ctx context.Context, session *models.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

// GetSessionFromContext retrieves the session from the context. Returns nil if not present.
func GetSessionFromContext(ctx context.Context) *models.Session {
	session, _ := ctx.Value(sessionKey{}).(*models.Session)
	return session
}
