package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/antonkh/thingboard/internal/models"
)

// stubLoader returns the same session for every request.
type stubLoader struct {
	session *models.Session
}

func (s *stubLoader) Load(ctx context.Context, r *http.Request) *models.Session {
	return s.session
}

func TestRequireSession_Anonymous(t *testing.T) {
	loader := &stubLoader{session: &models.Session{ID: "sid"}}

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
	})

	handler := RequireSession(loader)(next)
	req := httptest.NewRequest(http.MethodGet, "/delete/1", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/login", rr.Header().Get("Location"))
}

func TestRequireSession_LoggedIn(t *testing.T) {
	session := &models.Session{ID: "sid", UserID: 42, Username: "alice"}
	loader := &stubLoader{session: session}

	nextCalled := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		got := GetSessionFromContext(r.Context())
		assert.Equal(t, session, got)
		w.WriteHeader(http.StatusOK)
	})

	handler := RequireSession(loader)(next)
	req := httptest.NewRequest(http.MethodPost, "/add", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestGetSessionFromContext_Missing(t *testing.T) {
	assert.Nil(t, GetSessionFromContext(context.Background()))
}
