package handlers

import (
	"net/http"

	"github.com/antonkh/thingboard/internal/render"
)

// NewAboutHandler returns an HTTP handler for the static about page.
func NewAboutHandler(sessions SessionManager, renderer *render.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		session := sessions.Load(ctx, r)

		renderer.Page(w, http.StatusOK, render.PageAbout, pageData(ctx, w, sessions, session))
	}
}

// NewRegisterFormHandler returns an HTTP handler for the registration form.
// It serves both /register and /signup/, the redirect target for duplicate
// registrations.
func NewRegisterFormHandler(sessions SessionManager, renderer *render.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		session := sessions.Load(ctx, r)

		renderer.Page(w, http.StatusOK, render.PageRegister, pageData(ctx, w, sessions, session))
	}
}

// NewLoginFormHandler returns an HTTP handler for the login form.
func NewLoginFormHandler(sessions SessionManager, renderer *render.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		session := sessions.Load(ctx, r)

		renderer.Page(w, http.StatusOK, render.PageLogin, pageData(ctx, w, sessions, session))
	}
}
