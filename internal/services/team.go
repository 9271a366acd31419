package services

import (
	"context"
	"errors"

	"github.com/antonkh/thingboard/internal/logger"
	"github.com/antonkh/thingboard/internal/models"
)

// ErrImageNotFound is returned when a team is missing or has no image.
var ErrImageNotFound = errors.New("team image not found")

// TeamReader defines read-only operations for teams.
type TeamReader interface {
	List(ctx context.Context) ([]models.TeamListItem, error)
	GetImage(ctx context.Context, code string) (*models.TeamDB, error)
}

// TeamService handles the read-only teams listing.
type TeamService struct {
	reader TeamReader
}

// NewTeamService creates a new TeamService instance.
func NewTeamService(reader TeamReader) *TeamService {
	return &TeamService{reader: reader}
}

// List returns all teams with player counts, busiest first.
func (svc *TeamService) List(ctx context.Context) ([]models.TeamListItem, error) {
	teams, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list teams", "err", err)
		return nil, err
	}
	return teams, nil
}

// Image returns the stored image for a team. A missing team, missing image
// bytes, or missing MIME type all map to ErrImageNotFound.
func (svc *TeamService) Image(ctx context.Context, code string) (*models.TeamImage, error) {
	team, err := svc.reader.GetImage(ctx, code)
	if err != nil {
		logger.Log.Errorw("failed to get team image", "code", code, "err", err)
		return nil, err
	}
	if team == nil || len(team.ImageData) == 0 || team.ImageMime == nil || *team.ImageMime == "" {
		return nil, ErrImageNotFound
	}
	return &models.TeamImage{Data: team.ImageData, Mime: *team.ImageMime}, nil
}
