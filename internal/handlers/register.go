package handlers

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/antonkh/thingboard/internal/logger"
	"github.com/antonkh/thingboard/internal/models"
	"github.com/antonkh/thingboard/internal/render"
	"github.com/antonkh/thingboard/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username, password string) (*models.UserDB, error)
}

// RegisterForm represents the registration form fields
type RegisterForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// NewAddUserHandler returns an HTTP handler processing the registration form.
// On success it establishes the session identity from the new row; a
// duplicate username flashes an error and redirects to the signup page
// without creating a second row or a session identity.
func NewAddUserHandler(svc Registerer, sessions SessionManager, renderer *render.Renderer) http.HandlerFunc {
	validate := validator.New()

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		session := sessions.Load(ctx, r)

		if err := r.ParseForm(); err != nil {
			flashAndRedirect(ctx, w, r, sessions, session,
				"Username and password are required.", "error", "/register")
			return
		}

		form := RegisterForm{
			Username: r.PostFormValue("username"),
			Password: r.PostFormValue("password"),
		}
		if err := validate.Struct(form); err != nil {
			flashAndRedirect(ctx, w, r, sessions, session,
				"Username and password are required.", "error", "/register")
			return
		}

		// Stored text must never be interpreted as markup later.
		username := html.EscapeString(form.Username)

		user, err := svc.Register(ctx, username, form.Password)
		if err != nil {
			if errors.Is(err, services.ErrUsernameTaken) {
				flashAndRedirect(ctx, w, r, sessions, session,
					"Username already exists.", "error", "/signup/")
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			renderer.ServerError(w, render.Data{})
			return
		}

		session.UserID = user.ID
		session.Username = user.Username

		flashAndRedirect(ctx, w, r, sessions, session,
			fmt.Sprintf("User %s registered successfully", user.Username), "success", "/")
	}
}
