package repositories

import (
	"context"

	"leasehold/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type ListingRepository interface {
	Create(ctx context.Context, tx *gorm.DB, listing *models.Listing) error
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*models.Listing, error)
	GetBySlug(ctx context.Context, tx *gorm.DB, slug string) (*models.Listing, error)
	List(ctx context.Context, tx *gorm.DB, status *models.ListingStatus) ([]*models.Listing, error)
	Update(ctx context.Context, tx *gorm.DB, listing *models.Listing) error
	AppendPhotos(ctx context.Context, tx *gorm.DB, id uuid.UUID, urls []string) error
	Count(ctx context.Context, tx *gorm.DB, status *models.ListingStatus) (int64, error)
}

type listingRepository struct {
	log logger.Logger
}

func NewListingRepository() ListingRepository {
	return &listingRepository{
		log: logger.New("listingRepository"),
	}
}

func (r *listingRepository) Create(ctx context.Context, tx *gorm.DB, listing *models.Listing) error {
	log := r.log.TraceFromContext(ctx).Function("Create")

	if err := tx.WithContext(ctx).Create(listing).Error; err != nil {
		return storeError(log, "listing", err)
	}

	log.Info("Listing created", "listingID", listing.ID, "slug", listing.Slug)
	return nil
}

func (r *listingRepository) GetByID(
	ctx context.Context,
	tx *gorm.DB,
	id uuid.UUID,
) (*models.Listing, error) {
	log := r.log.TraceFromContext(ctx).Function("GetByID")

	var listing models.Listing
	if err := tx.WithContext(ctx).Where("id = ?", id).Take(&listing).Error; err != nil {
		return nil, storeError(log, "listing", err)
	}

	return &listing, nil
}

// GetBySlug returns the newest listing carrying the slug; slugs are not
// unique.
func (r *listingRepository) GetBySlug(
	ctx context.Context,
	tx *gorm.DB,
	slug string,
) (*models.Listing, error) {
	log := r.log.TraceFromContext(ctx).Function("GetBySlug")

	var listing models.Listing
	if err := tx.WithContext(ctx).
		Where("slug = ?", slug).
		Order("created_at DESC").
		Take(&listing).Error; err != nil {
		return nil, storeError(log, "listing", err)
	}

	return &listing, nil
}

func (r *listingRepository) List(
	ctx context.Context,
	tx *gorm.DB,
	status *models.ListingStatus,
) ([]*models.Listing, error) {
	log := r.log.TraceFromContext(ctx).Function("List")

	query := tx.WithContext(ctx)
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	listings := []*models.Listing{}
	if err := query.Order("created_at DESC").Find(&listings).Error; err != nil {
		return nil, storeError(log, "listing", err)
	}

	return listings, nil
}

// Update writes every mutable column of the listing. The slug and creation
// time are never touched.
func (r *listingRepository) Update(ctx context.Context, tx *gorm.DB, listing *models.Listing) error {
	log := r.log.TraceFromContext(ctx).Function("Update")

	result := tx.WithContext(ctx).
		Model(listing).
		Select("*").
		Omit("id", "created_at", "slug").
		Updates(listing)
	if result.Error != nil {
		return storeError(log, "listing", result.Error)
	}
	if result.RowsAffected == 0 {
		return storeError(log, "listing", gorm.ErrRecordNotFound)
	}

	return nil
}

// AppendPhotos adds urls to the end of the photo array in one statement.
func (r *listingRepository) AppendPhotos(
	ctx context.Context,
	tx *gorm.DB,
	id uuid.UUID,
	urls []string,
) error {
	log := r.log.TraceFromContext(ctx).Function("AppendPhotos")

	if len(urls) == 0 {
		return nil
	}

	result := tx.WithContext(ctx).
		Model(&models.Listing{}).
		Where("id = ?", id).
		Update("photos", gorm.Expr("array_cat(photos, ?::text[])", pq.StringArray(urls)))
	if result.Error != nil {
		return storeError(log, "listing", result.Error)
	}
	if result.RowsAffected == 0 {
		return storeError(log, "listing", gorm.ErrRecordNotFound)
	}

	log.Info("Photos appended", "listingID", id, "count", len(urls))
	return nil
}

func (r *listingRepository) Count(
	ctx context.Context,
	tx *gorm.DB,
	status *models.ListingStatus,
) (int64, error) {
	log := r.log.TraceFromContext(ctx).Function("Count")

	query := tx.WithContext(ctx).Model(&models.Listing{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, storeError(log, "listing", err)
	}
	return count, nil
}
