package handlers

import (
	"context"
	"net/http"

	"github.com/antonkh/thingboard/internal/logger"
	"github.com/antonkh/thingboard/internal/models"
	"github.com/antonkh/thingboard/internal/render"
)

// SessionManager loads and persists browser sessions.
type SessionManager interface {
	Load(ctx context.Context, r *http.Request) *models.Session
	Save(ctx context.Context, w http.ResponseWriter, session *models.Session) error
}

// pageData builds the base template data from a session: the identity for the
// nav bar plus the flash queue. Flashes are one-shot, so the emptied session
// is saved back before the page is written.
func pageData(ctx context.Context, w http.ResponseWriter, sessions SessionManager, session *models.Session) render.Data {
	data := render.Data{
		"Username": session.Username,
		"Flashes":  session.ConsumeFlashes(),
	}

	if err := sessions.Save(ctx, w, session); err != nil {
		logger.Log.Errorw("failed to save session", "err", err)
	}

	return data
}

// flashAndRedirect queues a flash message, saves the session, and redirects.
func flashAndRedirect(ctx context.Context, w http.ResponseWriter, r *http.Request,
	sessions SessionManager, session *models.Session, message, category, location string,
) {
	session.Flash(message, category)

	if err := sessions.Save(ctx, w, session); err != nil {
		logger.Log.Errorw("failed to save session", "err", err)
	}

	http.Redirect(w, r, location, http.StatusFound)
}
