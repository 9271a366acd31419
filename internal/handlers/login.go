package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/antonkh/thingboard/internal/logger"
	"github.com/antonkh/thingboard/internal/models"
	"github.com/antonkh/thingboard/internal/render"
	"github.com/antonkh/thingboard/internal/services"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (*models.UserDB, error)
}

// LoginForm represents the login form fields
type LoginForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// NewLoginUserHandler returns an HTTP handler processing the login form.
// Unknown username and wrong password produce the same flash text, so the
// response never reveals which one failed.
func NewLoginUserHandler(svc Loginer, sessions SessionManager, renderer *render.Renderer) http.HandlerFunc {
	validate := validator.New()

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		session := sessions.Load(ctx, r)

		invalid := func() {
			flashAndRedirect(ctx, w, r, sessions, session,
				"Invalid credentials", "error", "/login")
		}

		if err := r.ParseForm(); err != nil {
			invalid()
			return
		}

		form := LoginForm{
			Username: r.PostFormValue("username"),
			Password: r.PostFormValue("password"),
		}
		if err := validate.Struct(form); err != nil {
			invalid()
			return
		}

		user, err := svc.Login(ctx, form.Username, form.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound),
				errors.Is(err, services.ErrInvalidCredentials):
				invalid()
			default:
				logger.Log.Errorw("internal server error", "err", err)
				renderer.ServerError(w, render.Data{})
			}
			return
		}

		session.UserID = user.ID
		session.Username = user.Username

		flashAndRedirect(ctx, w, r, sessions, session,
			"Login successful", "success", "/")
	}
}
