package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/antonkh/thingboard/internal/models"
	"github.com/antonkh/thingboard/internal/render"
	"github.com/antonkh/thingboard/internal/services"
)

// TeamLister defines the interface that the team list service must implement.
type TeamLister interface {
	List(ctx context.Context) ([]models.TeamListItem, error)
}

// TeamImageGetter defines the interface that the image service must implement.
type TeamImageGetter interface {
	Image(ctx context.Context, code string) (*models.TeamImage, error)
}

// NewTeamListHandler returns an HTTP handler rendering the home page: all
// teams with their player counts, busiest first.
func NewTeamListHandler(svc TeamLister, sessions SessionManager, renderer *render.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		session := sessions.Load(ctx, r)

		teams, err := svc.List(ctx)
		if err != nil {
			renderer.ServerError(w, render.Data{})
			return
		}

		data := pageData(ctx, w, sessions, session)
		data["Teams"] = teams

		renderer.Page(w, http.StatusOK, render.PageHome, data)
	}
}

// NewTeamImageHandler returns an HTTP handler serving a team's raw image
// bytes with the stored MIME type. Missing team or missing image is a 404.
func NewTeamImageHandler(svc TeamImageGetter, renderer *render.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		image, err := svc.Image(ctx, chi.URLParam(r, "code"))
		if err != nil {
			if errors.Is(err, services.ErrImageNotFound) {
				renderer.NotFound(w, render.Data{})
				return
			}
			renderer.ServerError(w, render.Data{})
			return
		}

		w.Header().Set("Content-Type", image.Mime)
		w.Write(image.Data)
	}
}
