package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/antonkh/thingboard/internal/models"
	"github.com/antonkh/thingboard/internal/services"
)

func TestTeamListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session := &models.Session{ID: "sid", UserID: 7, Username: "alice"}
	session.Flash("Login successful", "success")

	mockSvc := NewMockTeamLister(ctrl)
	mockSvc.EXPECT().List(gomock.Any()).Return([]models.TeamListItem{
		{Code: "LIV", Name: "Liverpool", PlayerCount: 4},
		{Code: "ARS", Name: "Arsenal", PlayerCount: 3},
	}, nil)

	mockSessions := NewMockSessionManager(ctrl)
	mockSessions.EXPECT().Load(gomock.Any(), gomock.Any()).Return(session)
	mockSessions.EXPECT().Save(gomock.Any(), gomock.Any(), session).Return(nil)

	handler := NewTeamListHandler(mockSvc, mockSessions, newRenderer(t))

	rr := httptest.NewRecorder()
	handler(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Liverpool")
	assert.Contains(t, rr.Body.String(), "/team-image/LIV")
	assert.Contains(t, rr.Body.String(), "alice")
	assert.Contains(t, rr.Body.String(), "Login successful")
	assert.Empty(t, session.Flashes)
}

func TestTeamListHandler_ServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockTeamLister(ctrl)
	mockSvc.EXPECT().List(gomock.Any()).Return(nil, assert.AnError)

	mockSessions := NewMockSessionManager(ctrl)
	mockSessions.EXPECT().Load(gomock.Any(), gomock.Any()).Return(&models.Session{ID: "sid"})

	handler := NewTeamListHandler(mockSvc, mockSessions, newRenderer(t))

	rr := httptest.NewRecorder()
	handler(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestTeamImageHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("serves raw bytes", func(t *testing.T) {
		mockSvc := NewMockTeamImageGetter(ctrl)
		mockSvc.EXPECT().
			Image(gomock.Any(), "LIV").
			Return(&models.TeamImage{Data: []byte{0xFF, 0xD8, 0xFF}, Mime: "image/jpeg"}, nil)

		handler := NewTeamImageHandler(mockSvc, newRenderer(t))

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/team-image/LIV", nil), "code", "LIV")
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "image/jpeg", rr.Header().Get("Content-Type"))
		assert.Equal(t, []byte{0xFF, 0xD8, 0xFF}, rr.Body.Bytes())
	})

	t.Run("missing image", func(t *testing.T) {
		mockSvc := NewMockTeamImageGetter(ctrl)
		mockSvc.EXPECT().
			Image(gomock.Any(), "XXX").
			Return(nil, services.ErrImageNotFound)

		handler := NewTeamImageHandler(mockSvc, newRenderer(t))

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/team-image/XXX", nil), "code", "XXX")
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
