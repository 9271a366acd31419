package services

import (
	"context"
	"errors"

	"github.com/antonkh/thingboard/internal/logger"
	"github.com/antonkh/thingboard/internal/models"
)

// ErrThingNotFound is returned when no thing matches the requested id.
var ErrThingNotFound = errors.New("thing not found")

// ThingReader defines read-only operations for things.
type ThingReader interface {
	List(ctx context.Context) ([]models.ThingListItem, error)
	GetByID(ctx context.Context, id int64) (*models.ThingDetail, error)
}

// ThingWriter defines write operations for things.
type ThingWriter interface {
	Save(ctx context.Context, name string, price float64, userID int64) error
	Delete(ctx context.Context, id, userID int64) (int64, error)
}

// ThingService handles the things catalog.
type ThingService struct {
	reader ThingReader
	writer ThingWriter
}

// NewThingService creates a new ThingService instance.
func NewThingService(reader ThingReader, writer ThingWriter) *ThingService {
	return &ThingService{
		reader: reader,
		writer: writer,
	}
}

// List returns all things with their owners, ordered by name.
func (svc *ThingService) List(ctx context.Context) ([]models.ThingListItem, error) {
	things, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list things", "err", err)
		return nil, err
	}
	return things, nil
}

// Get returns the detail of one thing or ErrThingNotFound.
func (svc *ThingService) Get(ctx context.Context, id int64) (*models.ThingDetail, error) {
	thing, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get thing", "id", id, "err", err)
		return nil, err
	}
	if thing == nil {
		return nil, ErrThingNotFound
	}
	return thing, nil
}

// Create stores a new thing owned by ownerID. The owner is always the
// authenticated user; nothing a client supplies can change it.
func (svc *ThingService) Create(ctx context.Context, name string, price float64, ownerID int64) error {
	if err := svc.writer.Save(ctx, name, price, ownerID); err != nil {
		logger.Log.Errorw("failed to create thing", "name", name, "owner", ownerID, "err", err)
		return err
	}
	return nil
}

// Delete removes the thing only when ownerID owns it. A delete of a thing
// owned by someone else (or of a missing id) deletes nothing; that no-op is
// not an error, but it is logged so unauthorized attempts stay visible to
// operators.
func (svc *ThingService) Delete(ctx context.Context, id, ownerID int64) error {
	rowsAffected, err := svc.writer.Delete(ctx, id, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to delete thing", "id", id, "owner", ownerID, "err", err)
		return err
	}
	if rowsAffected == 0 {
		logger.Log.Warnw("delete removed no rows", "id", id, "owner", ownerID)
	}
	return nil
}
