package handlers

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/antonkh/thingboard/internal/logger"
	"github.com/antonkh/thingboard/internal/middlewares"
	"github.com/antonkh/thingboard/internal/models"
	"github.com/antonkh/thingboard/internal/render"
	"github.com/antonkh/thingboard/internal/services"
)

// ThingLister defines the interface that the list service must implement.
type ThingLister interface {
	List(ctx context.Context) ([]models.ThingListItem, error)
}

// ThingGetter defines the interface that the detail service must implement.
type ThingGetter interface {
	Get(ctx context.Context, id int64) (*models.ThingDetail, error)
}

// ThingCreator defines the interface that the create service must implement.
type ThingCreator interface {
	Create(ctx context.Context, name string, price float64, ownerID int64) error
}

// ThingDeleter defines the interface that the delete service must implement.
type ThingDeleter interface {
	Delete(ctx context.Context, id, ownerID int64) error
}

// ThingForm represents the add-thing form fields
type ThingForm struct {
	Name  string  `validate:"required"`
	Price float64 `validate:"gte=0"`
}

// NewThingListHandler returns an HTTP handler rendering the public thing
// list. No authentication is required to read it.
func NewThingListHandler(svc ThingLister, sessions SessionManager, renderer *render.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		session := sessions.Load(ctx, r)

		things, err := svc.List(ctx)
		if err != nil {
			renderer.ServerError(w, render.Data{})
			return
		}

		data := pageData(ctx, w, sessions, session)
		data["Things"] = things

		renderer.Page(w, http.StatusOK, render.PageThings, data)
	}
}

// NewThingDetailHandler returns an HTTP handler rendering one thing. An
// unknown or non-integer id renders the 404 page.
func NewThingDetailHandler(svc ThingGetter, sessions SessionManager, renderer *render.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		session := sessions.Load(ctx, r)

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			renderer.NotFound(w, pageData(ctx, w, sessions, session))
			return
		}

		thing, err := svc.Get(ctx, id)
		if err != nil {
			if errors.Is(err, services.ErrThingNotFound) {
				renderer.NotFound(w, pageData(ctx, w, sessions, session))
				return
			}
			renderer.ServerError(w, render.Data{})
			return
		}

		data := pageData(ctx, w, sessions, session)
		data["Thing"] = thing
		data["IsOwner"] = session.UserID == thing.UserID

		renderer.Page(w, http.StatusOK, render.PageThing, data)
	}
}

// NewAddThingHandler returns an HTTP handler creating a thing. It sits
// behind the session gate; the owner is always the session's user, never
// anything the client supplies.
func NewAddThingHandler(svc ThingCreator, sessions SessionManager, renderer *render.Renderer) http.HandlerFunc {
	validate := validator.New()

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		session := middlewares.GetSessionFromContext(ctx)

		if err := r.ParseForm(); err != nil {
			flashAndRedirect(ctx, w, r, sessions, session,
				"Name and price are required.", "error", "/things/")
			return
		}

		price, err := strconv.ParseFloat(r.PostFormValue("price"), 64)
		if err != nil {
			flashAndRedirect(ctx, w, r, sessions, session,
				"Price must be a non-negative number.", "error", "/things/")
			return
		}

		form := ThingForm{
			Name:  r.PostFormValue("name"),
			Price: price,
		}
		if err := validate.Struct(form); err != nil {
			flashAndRedirect(ctx, w, r, sessions, session,
				"Name and price are required.", "error", "/things/")
			return
		}

		// Stored text must never be interpreted as markup later.
		name := html.EscapeString(form.Name)

		if err := svc.Create(ctx, name, form.Price, session.UserID); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			renderer.ServerError(w, render.Data{})
			return
		}

		flashAndRedirect(ctx, w, r, sessions, session,
			fmt.Sprintf("Thing '%s' added", name), "success", "/things/")
	}
}

// NewDeleteThingHandler returns an HTTP handler deleting an owned thing. The
// delete matches both id and owner in one statement; deleting a thing owned
// by someone else removes nothing, and the response flashes success either
// way.
func NewDeleteThingHandler(svc ThingDeleter, sessions SessionManager, renderer *render.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		session := middlewares.GetSessionFromContext(ctx)

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			data := render.Data{"Username": session.Username}
			renderer.NotFound(w, data)
			return
		}

		if err := svc.Delete(ctx, id, session.UserID); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			renderer.ServerError(w, render.Data{})
			return
		}

		flashAndRedirect(ctx, w, r, sessions, session,
			"Thing deleted", "success", "/things/")
	}
}
