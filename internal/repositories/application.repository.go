package repositories

import (
	"context"
	"time"

	"leasehold/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationFilter struct {
	Status    *models.ApplicationStatus
	ListingID *uuid.UUID
}

type ApplicationRepository interface {
	Create(ctx context.Context, tx *gorm.DB, application *models.Application) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*models.Application, error)
	List(ctx context.Context, tx *gorm.DB, filter ApplicationFilter) ([]*models.Application, error)
	UpdateStatus(
		ctx context.Context,
		tx *gorm.DB,
		id uuid.UUID,
		status models.ApplicationStatus,
	) error
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
	CountSince(ctx context.Context, tx *gorm.DB, since time.Time) (int64, error)
	CountByStatuses(
		ctx context.Context,
		tx *gorm.DB,
		statuses ...models.ApplicationStatus,
	) (int64, error)
}

type applicationRepository struct {
	log logger.Logger
}

func NewApplicationRepository() ApplicationRepository {
	return &applicationRepository{
		log: logger.New("applicationRepository"),
	}
}

// Create inserts the application. A listing id that does not exist fails
// on the foreign key and surfaces as a persistence error.
func (r *applicationRepository) Create(
	ctx context.Context,
	tx *gorm.DB,
	application *models.Application,
) error {
	log := r.log.TraceFromContext(ctx).Function("Create")

	if err := tx.WithContext(ctx).Omit("Listing").Create(application).Error; err != nil {
		return storeError(log, "application", err)
	}

	log.Info(
		"Application created",
		"applicationID", application.ID,
		"listingID", application.ListingID,
	)
	return nil
}

func (r *applicationRepository) GetByID(
	ctx context.Context,
	tx *gorm.DB,
	id uuid.UUID,
) (*models.Application, error) {
	log := r.log.TraceFromContext(ctx).Function("GetByID")

	var application models.Application
	if err := tx.WithContext(ctx).
		Preload("Listing").
		Where("id = ?", id).
		Take(&application).Error; err != nil {
		return nil, storeError(log, "application", err)
	}

	return &application, nil
}

func (r *applicationRepository) List(
	ctx context.Context,
	tx *gorm.DB,
	filter ApplicationFilter,
) ([]*models.Application, error) {
	log := r.log.TraceFromContext(ctx).Function("List")

	query := tx.WithContext(ctx).Preload("Listing")
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.ListingID != nil {
		query = query.Where("listing_id = ?", *filter.ListingID)
	}

	applications := []*models.Application{}
	if err := query.Order("created_at DESC").Find(&applications).Error; err != nil {
		return nil, storeError(log, "application", err)
	}

	return applications, nil
}

// UpdateStatus sets the status unconditionally; every transition is allowed.
func (r *applicationRepository) UpdateStatus(
	ctx context.Context,
	tx *gorm.DB,
	id uuid.UUID,
	status models.ApplicationStatus,
) error {
	log := r.log.TraceFromContext(ctx).Function("UpdateStatus")

	result := tx.WithContext(ctx).
		Model(&models.Application{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return storeError(log, "application", result.Error)
	}
	if result.RowsAffected == 0 {
		return storeError(log, "application", gorm.ErrRecordNotFound)
	}

	log.Info("Application status updated", "applicationID", id, "status", status)
	return nil
}

func (r *applicationRepository) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	log := r.log.TraceFromContext(ctx).Function("Count")

	var count int64
	if err := tx.WithContext(ctx).Model(&models.Application{}).Count(&count).Error; err != nil {
		return 0, storeError(log, "application", err)
	}
	return count, nil
}

func (r *applicationRepository) CountSince(
	ctx context.Context,
	tx *gorm.DB,
	since time.Time,
) (int64, error) {
	log := r.log.TraceFromContext(ctx).Function("CountSince")

	var count int64
	if err := tx.WithContext(ctx).
		Model(&models.Application{}).
		Where("created_at >= ?", since).
		Count(&count).Error; err != nil {
		return 0, storeError(log, "application", err)
	}
	return count, nil
}

func (r *applicationRepository) CountByStatuses(
	ctx context.Context,
	tx *gorm.DB,
	statuses ...models.ApplicationStatus,
) (int64, error) {
	log := r.log.TraceFromContext(ctx).Function("CountByStatuses")

	var count int64
	if err := tx.WithContext(ctx).
		Model(&models.Application{}).
		Where("status IN ?", statuses).
		Count(&count).Error; err != nil {
		return 0, storeError(log, "application", err)
	}
	return count, nil
}
