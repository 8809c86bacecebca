package repositories

import (
	"context"

	"leasehold/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationNoteRepository interface {
	Create(ctx context.Context, tx *gorm.DB, note *models.ApplicationNote) error
	ListByApplication(
		ctx context.Context,
		tx *gorm.DB,
		applicationID uuid.UUID,
	) ([]*models.ApplicationNote, error)
}

type applicationNoteRepository struct {
	log logger.Logger
}

func NewApplicationNoteRepository() ApplicationNoteRepository {
	return &applicationNoteRepository{
		log: logger.New("applicationNoteRepository"),
	}
}

func (r *applicationNoteRepository) Create(
	ctx context.Context,
	tx *gorm.DB,
	note *models.ApplicationNote,
) error {
	log := r.log.TraceFromContext(ctx).Function("Create")

	if err := tx.WithContext(ctx).Omit("Application").Create(note).Error; err != nil {
		return storeError(log, "application note", err)
	}
	return nil
}

// ListByApplication returns notes newest first.
func (r *applicationNoteRepository) ListByApplication(
	ctx context.Context,
	tx *gorm.DB,
	applicationID uuid.UUID,
) ([]*models.ApplicationNote, error) {
	log := r.log.TraceFromContext(ctx).Function("ListByApplication")

	notes := []*models.ApplicationNote{}
	if err := tx.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("created_at DESC").
		Find(&notes).Error; err != nil {
		return nil, storeError(log, "application note", err)
	}

	return notes, nil
}
