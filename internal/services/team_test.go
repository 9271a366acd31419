package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/antonkh/thingboard/internal/models"
	"github.com/antonkh/thingboard/internal/services"
)

func TestTeamService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockTeamReader(ctrl)
	svc := services.NewTeamService(mockReader)

	want := []models.TeamListItem{
		{Code: "LIV", Name: "Liverpool", PlayerCount: 4},
		{Code: "ARS", Name: "Arsenal", PlayerCount: 3},
	}
	mockReader.EXPECT().List(gomock.Any()).Return(want, nil)

	teams, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, want, teams)
}

func TestTeamService_Image(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	png := "image/png"
	empty := ""

	tests := []struct {
		name      string
		team      *models.TeamDB
		readerErr error
		want      *models.TeamImage
		wantErr   error
	}{
		{
			name: "image present",
			team: &models.TeamDB{Code: "LIV", Name: "Liverpool", ImageData: []byte{1, 2}, ImageMime: &png},
			want: &models.TeamImage{Data: []byte{1, 2}, Mime: "image/png"},
		},
		{
			name:    "unknown team",
			team:    nil,
			wantErr: services.ErrImageNotFound,
		},
		{
			name:    "no image bytes",
			team:    &models.TeamDB{Code: "ARS", Name: "Arsenal", ImageMime: &png},
			wantErr: services.ErrImageNotFound,
		},
		{
			name:    "no mime type",
			team:    &models.TeamDB{Code: "CHE", Name: "Chelsea", ImageData: []byte{1}},
			wantErr: services.ErrImageNotFound,
		},
		{
			name:    "empty mime type",
			team:    &models.TeamDB{Code: "MCI", Name: "Manchester City", ImageData: []byte{1}, ImageMime: &empty},
			wantErr: services.ErrImageNotFound,
		},
		{
			name:      "reader error",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockTeamReader(ctrl)
			svc := services.NewTeamService(mockReader)

			mockReader.EXPECT().GetImage(gomock.Any(), gomock.Any()).Return(tt.team, tt.readerErr)

			image, err := svc.Image(context.Background(), "ANY")

			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, image)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, image)
		})
	}
}
