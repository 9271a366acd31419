package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/antonkh/thingboard/internal/logger"
	"github.com/antonkh/thingboard/internal/models"
)

type TeamReadRepository struct {
	db *sqlx.DB
}

func NewTeamReadRepository(db *sqlx.DB) *TeamReadRepository {
	return &TeamReadRepository{db: db}
}

// List returns all teams with their player counts, busiest team first.
// Equal counts are broken by team code ascending so the ordering is stable.
func (r *TeamReadRepository) List(ctx context.Context) ([]models.TeamListItem, error) {
	const query = `
		SELECT teams.code,
		       teams.name,
		       COUNT(players.id) AS player_count
		FROM teams
		LEFT JOIN players ON players.team = teams.code
		GROUP BY teams.code, teams.name
		ORDER BY player_count DESC, teams.code ASC
	`

	teams := []models.TeamListItem{}
	err := r.db.SelectContext(ctx, &teams, query)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(teams),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return teams, nil
}

// GetImage returns the stored image for a team code, or (nil, nil) when the
// team does not exist. A team without an uploaded image yields a row with
// empty data, which the service maps to not-found.
func (r *TeamReadRepository) GetImage(ctx context.Context, code string) (*models.TeamDB, error) {
	const query = `
		SELECT code, name, image_data, image_mime
		FROM teams
		WHERE code = $1
	`

	var team models.TeamDB
	err := r.db.GetContext(ctx, &team, query, code)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{code},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &team, nil
}
