package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/antonkh/thingboard/internal/models"
	"github.com/antonkh/thingboard/internal/render"
)

func TestPageHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name       string
		handler    func(SessionManager, *render.Renderer) http.HandlerFunc
		target     string
		expectBody string
	}{
		{
			name:       "about",
			handler:    NewAboutHandler,
			target:     "/about/",
			expectBody: "About",
		},
		{
			name:       "register form",
			handler:    NewRegisterFormHandler,
			target:     "/register",
			expectBody: "/add-user",
		},
		{
			name:       "login form",
			handler:    NewLoginFormHandler,
			target:     "/login",
			expectBody: "/login-user",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := &models.Session{ID: "sid", Username: "alice", UserID: 7}
			session.Flash("Hello there", "success")

			mockSessions := NewMockSessionManager(ctrl)
			mockSessions.EXPECT().Load(gomock.Any(), gomock.Any()).Return(session)
			mockSessions.EXPECT().Save(gomock.Any(), gomock.Any(), session).Return(nil)

			handler := tt.handler(mockSessions, newRenderer(t))

			rr := httptest.NewRecorder()
			handler(rr, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.expectBody)
			assert.Contains(t, rr.Body.String(), "Hello there")
			assert.Empty(t, session.Flashes)
		})
	}
}
