package handlers

import (
	"net/http"
)

// NewLogoutHandler returns an HTTP handler clearing the session identity.
// Logging out an anonymous session is a harmless no-op; no authorization is
// required.
func NewLogoutHandler(sessions SessionManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		session := sessions.Load(ctx, r)

		session.ClearIdentity()

		flashAndRedirect(ctx, w, r, sessions, session,
			"Logged out successfully", "success", "/")
	}
}
