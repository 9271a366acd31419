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

type ThingReadRepository struct {
	db *sqlx.DB
}

func NewThingReadRepository(db *sqlx.DB) *ThingReadRepository {
	return &ThingReadRepository{db: db}
}

// List returns all things with their owner's name, ordered by thing name.
func (r *ThingReadRepository) List(ctx context.Context) ([]models.ThingListItem, error) {
	const query = `
		SELECT things.id,
		       things.name,
		       users.username AS owner
		FROM things
		JOIN users ON things.user_id = users.id
		ORDER BY things.name ASC
	`

	things := []models.ThingListItem{}
	err := r.db.SelectContext(ctx, &things, query)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result", len(things),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return things, nil
}

// GetByID returns the full detail of a single thing, or (nil, nil) when no
// row matches the id.
func (r *ThingReadRepository) GetByID(ctx context.Context, id int64) (*models.ThingDetail, error) {
	const query = `
		SELECT things.id,
		       things.name,
		       things.price,
		       things.user_id,
		       users.username AS owner
		FROM things
		JOIN users ON things.user_id = users.id
		WHERE things.id = $1
	`

	var thing models.ThingDetail
	err := r.db.GetContext(ctx, &thing, query, id)

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &thing, nil
}

type ThingWriteRepository struct {
	db *sqlx.DB
}

func NewThingWriteRepository(db *sqlx.DB) *ThingWriteRepository {
	return &ThingWriteRepository{db: db}
}

// Save inserts a new thing owned by the given user.
func (r *ThingWriteRepository) Save(ctx context.Context, name string, price float64, userID int64) error {
	const query = `
		INSERT INTO things (name, price, user_id)
		VALUES ($1, $2, $3)
	`
	args := []any{name, price, userID}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// Delete removes the thing only if it is owned by the given user, in a
// single conditional statement. The affected-row count is returned so the
// caller can see whether anything was actually deleted.
func (r *ThingWriteRepository) Delete(ctx context.Context, id, userID int64) (int64, error) {
	const query = `
		DELETE FROM things
		WHERE id = $1 AND user_id = $2
	`
	args := []any{id, userID}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	// Log with query in single line
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	return rowsAffected, nil
}
