package listingController

import (
	"context"
	"errors"
	"testing"

	"leasehold/internal/database"
	"leasehold/internal/models"
	"leasehold/internal/services"
	"leasehold/internal/types"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type passthroughTransactor struct{}

func (passthroughTransactor) Execute(ctx context.Context, fn func(context.Context, *gorm.DB) error) error {
	return fn(ctx, nil)
}

type fakeListingRepository struct {
	listings map[uuid.UUID]*models.Listing
	appended []string
}

func newFakeListingRepository() *fakeListingRepository {
	return &fakeListingRepository{listings: map[uuid.UUID]*models.Listing{}}
}

func (f *fakeListingRepository) Create(_ context.Context, _ *gorm.DB, listing *models.Listing) error {
	listing.ID = uuid.New()
	copied := *listing
	f.listings[listing.ID] = &copied
	return nil
}

func (f *fakeListingRepository) GetByID(_ context.Context, _ *gorm.DB, id uuid.UUID) (*models.Listing, error) {
	listing, ok := f.listings[id]
	if !ok {
		return nil, types.NotFound("listing")
	}
	copied := *listing
	return &copied, nil
}

func (f *fakeListingRepository) GetBySlug(_ context.Context, _ *gorm.DB, slug string) (*models.Listing, error) {
	for _, listing := range f.listings {
		if listing.Slug == slug {
			return listing, nil
		}
	}
	return nil, types.NotFound("listing")
}

func (f *fakeListingRepository) List(
	_ context.Context,
	_ *gorm.DB,
	status *models.ListingStatus,
) ([]*models.Listing, error) {
	listings := []*models.Listing{}
	for _, listing := range f.listings {
		if status == nil || listing.Status == *status {
			listings = append(listings, listing)
		}
	}
	return listings, nil
}

func (f *fakeListingRepository) Update(_ context.Context, _ *gorm.DB, listing *models.Listing) error {
	stored, ok := f.listings[listing.ID]
	if !ok {
		return types.NotFound("listing")
	}
	copied := *listing
	copied.Slug = stored.Slug
	f.listings[listing.ID] = &copied
	return nil
}

func (f *fakeListingRepository) AppendPhotos(_ context.Context, _ *gorm.DB, id uuid.UUID, urls []string) error {
	f.listings[id].Photos = append(f.listings[id].Photos, urls...)
	f.appended = append(f.appended, urls...)
	return nil
}

func (f *fakeListingRepository) Count(_ context.Context, _ *gorm.DB, _ *models.ListingStatus) (int64, error) {
	return int64(len(f.listings)), nil
}

type fakeUploader struct {
	err error
}

func (f *fakeUploader) Upload(_ context.Context, id uuid.UUID, photos []services.PhotoUpload) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	urls := make([]string, 0, len(photos))
	for _, photo := range photos {
		urls = append(urls, "https://cdn.example.com/"+id.String()+"/"+photo.Filename)
	}
	return urls, nil
}

func newTestController(uploader *fakeUploader) (*ListingController, *fakeListingRepository) {
	repo := newFakeListingRepository()
	return &ListingController{
		listingRepo: repo,
		photos:      uploader,
		transactor:  passthroughTransactor{},
		db:          database.DB{},
		log:         logger.New("listingController"),
	}, repo
}

func validRequest() *CreateListingRequest {
	rent := decimal.NewFromInt(1450)
	deposit := decimal.NewFromInt(1450)
	bedrooms := 2
	bathrooms := decimal.RequireFromString("1.5")

	return &CreateListingRequest{
		Address:         "123 Main St. #4B",
		City:            "Springfield",
		State:           "IL",
		Zip:             "62701",
		MonthlyRent:     &rent,
		SecurityDeposit: &deposit,
		Bedrooms:        &bedrooms,
		Bathrooms:       &bathrooms,
		PropertyType:    models.PropertyTypeApartment,
		AvailableDate:   "2026-11-01",
		PetPolicy:       models.PetPolicyCaseByCase,
	}
}

func TestListingController_Create(t *testing.T) {
	controller, _ := newTestController(&fakeUploader{})

	listing, err := controller.Create(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "123-main-st-4b", listing.Slug)
	assert.Equal(t, models.ListingStatusActive, listing.Status)
}

func TestListingController_CreateValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *CreateListingRequest)
	}{
		{"missing rent", func(r *CreateListingRequest) { r.MonthlyRent = nil }},
		{"missing bedrooms", func(r *CreateListingRequest) { r.Bedrooms = nil }},
		{"unknown property type", func(r *CreateListingRequest) { r.PropertyType = "Castle" }},
		{"unknown pet policy", func(r *CreateListingRequest) { r.PetPolicy = "Cats only" }},
		{"quarter bathroom", func(r *CreateListingRequest) {
			b := decimal.RequireFromString("1.25")
			r.Bathrooms = &b
		}},
		{"bad date", func(r *CreateListingRequest) { r.AvailableDate = "11/01/2026" }},
		{"address without slug", func(r *CreateListingRequest) { r.Address = "#!?" }},
		{"unknown status", func(r *CreateListingRequest) { r.Status = "archived" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, repo := newTestController(&fakeUploader{})
			request := validRequest()
			tt.mutate(request)

			_, err := controller.Create(context.Background(), request)
			assert.ErrorIs(t, err, types.ErrValidation)
			assert.Empty(t, repo.listings)
		})
	}
}

func TestListingController_UpdateKeepsSlug(t *testing.T) {
	controller, _ := newTestController(&fakeUploader{})
	ctx := context.Background()

	listing, err := controller.Create(ctx, validRequest())
	require.NoError(t, err)

	address := "500 Oak Avenue"
	inactive := models.ListingStatusInactive
	updated, err := controller.Update(ctx, listing.ID, &UpdateListingRequest{
		Address: &address,
		Status:  &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "500 Oak Avenue", updated.Address)
	assert.Equal(t, models.ListingStatusInactive, updated.Status)
	assert.Equal(t, "123-main-st-4b", updated.Slug)
	assert.Equal(t, "Springfield", updated.City)
}

func TestListingController_UpdateRejectsInvalidEnum(t *testing.T) {
	controller, _ := newTestController(&fakeUploader{})
	ctx := context.Background()

	listing, err := controller.Create(ctx, validRequest())
	require.NoError(t, err)

	policy := models.PetPolicy("Dogs only")
	_, err = controller.Update(ctx, listing.ID, &UpdateListingRequest{PetPolicy: &policy})
	assert.ErrorIs(t, err, types.ErrValidation)

	_, err = controller.Update(ctx, uuid.New(), &UpdateListingRequest{})
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestListingController_ListRejectsUnknownStatus(t *testing.T) {
	controller, _ := newTestController(&fakeUploader{})

	status := models.ListingStatus("sold")
	_, err := controller.List(context.Background(), &status)
	assert.ErrorIs(t, err, types.ErrValidation)
}

func TestListingController_UploadPhotos(t *testing.T) {
	controller, repo := newTestController(&fakeUploader{})
	ctx := context.Background()

	listing, err := controller.Create(ctx, validRequest())
	require.NoError(t, err)

	updated, err := controller.UploadPhotos(ctx, listing.ID, []services.PhotoUpload{
		{Filename: "front.jpg"},
		{Filename: "kitchen.jpg"},
	})
	require.NoError(t, err)
	require.Len(t, updated.Photos, 2)
	assert.Contains(t, updated.CoverPhoto(), "front.jpg")
	assert.Len(t, repo.appended, 2)
}

func TestListingController_UploadPhotosFailureAppendsNothing(t *testing.T) {
	controller, repo := newTestController(&fakeUploader{err: types.Persistence(errors.New("denied"))})
	ctx := context.Background()

	listing, err := controller.Create(ctx, validRequest())
	require.NoError(t, err)

	_, err = controller.UploadPhotos(ctx, listing.ID, []services.PhotoUpload{{Filename: "a.jpg"}})
	assert.ErrorIs(t, err, types.ErrPersistence)
	assert.Empty(t, repo.appended)
}
