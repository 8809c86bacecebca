package listingController

import (
	"context"
	"time"

	"leasehold/internal/database"
	"leasehold/internal/metrics"
	. "leasehold/internal/models"
	"leasehold/internal/repositories"
	"leasehold/internal/services"
	"leasehold/internal/types"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PhotoUploader interface {
	Upload(ctx context.Context, listingID uuid.UUID, photos []services.PhotoUpload) ([]string, error)
}

type ListingController struct {
	listingRepo repositories.ListingRepository
	photos      PhotoUploader
	transactor  services.Transactor
	db          database.DB
	log         logger.Logger
}

// CreateListingRequest uses pointers for required numbers so that a missing
// field can be told apart from zero.
type CreateListingRequest struct {
	Address           string           `json:"address"`
	City              string           `json:"city"`
	State             string           `json:"state"`
	Zip               string           `json:"zip"`
	MonthlyRent       *decimal.Decimal `json:"monthlyRent"`
	SecurityDeposit   *decimal.Decimal `json:"securityDeposit"`
	Bedrooms          *int             `json:"bedrooms"`
	Bathrooms         *decimal.Decimal `json:"bathrooms"`
	SquareFootage     *int             `json:"squareFootage,omitempty"`
	PropertyType      PropertyType     `json:"propertyType"`
	AvailableDate     string           `json:"availableDate"`
	PetPolicy         PetPolicy        `json:"petPolicy"`
	Description       *string          `json:"description,omitempty"`
	UtilitiesIncluded []string         `json:"utilitiesIncluded,omitempty"`
	Photos            []string         `json:"photos,omitempty"`
	Status            ListingStatus    `json:"status,omitempty"`
	Slug              string           `json:"slug,omitempty"`
}

// UpdateListingRequest is a partial update. The slug is not updatable.
type UpdateListingRequest struct {
	Address           *string          `json:"address,omitempty"`
	City              *string          `json:"city,omitempty"`
	State             *string          `json:"state,omitempty"`
	Zip               *string          `json:"zip,omitempty"`
	MonthlyRent       *decimal.Decimal `json:"monthlyRent,omitempty"`
	SecurityDeposit   *decimal.Decimal `json:"securityDeposit,omitempty"`
	Bedrooms          *int             `json:"bedrooms,omitempty"`
	Bathrooms         *decimal.Decimal `json:"bathrooms,omitempty"`
	SquareFootage     *int             `json:"squareFootage,omitempty"`
	PropertyType      *PropertyType    `json:"propertyType,omitempty"`
	AvailableDate     *string          `json:"availableDate,omitempty"`
	PetPolicy         *PetPolicy       `json:"petPolicy,omitempty"`
	Description       *string          `json:"description,omitempty"`
	UtilitiesIncluded *[]string        `json:"utilitiesIncluded,omitempty"`
	Photos            *[]string        `json:"photos,omitempty"`
	Status            *ListingStatus   `json:"status,omitempty"`
}

type ListingControllerInterface interface {
	List(ctx context.Context, status *ListingStatus) ([]*Listing, error)
	Get(ctx context.Context, id uuid.UUID) (*Listing, error)
	GetBySlug(ctx context.Context, slug string) (*Listing, error)
	Create(ctx context.Context, request *CreateListingRequest) (*Listing, error)
	Update(ctx context.Context, id uuid.UUID, request *UpdateListingRequest) (*Listing, error)
	UploadPhotos(ctx context.Context, id uuid.UUID, photos []services.PhotoUpload) (*Listing, error)
}

func New(
	repos repositories.Repository,
	photos PhotoUploader,
	transactor services.Transactor,
	db database.DB,
) ListingControllerInterface {
	return &ListingController{
		listingRepo: repos.Listing,
		photos:      photos,
		transactor:  transactor,
		db:          db,
		log:         logger.New("listingController"),
	}
}

func (c *ListingController) List(ctx context.Context, status *ListingStatus) ([]*Listing, error) {
	log := c.log.TraceFromContext(ctx).Function("List")

	if status != nil && !status.IsValid() {
		return nil, types.Validation("status %q is not valid", *status)
	}

	listings, err := c.listingRepo.List(ctx, c.db.SQL, status)
	if err != nil {
		return nil, log.Err("failed to list listings", err)
	}

	return listings, nil
}

func (c *ListingController) Get(ctx context.Context, id uuid.UUID) (*Listing, error) {
	return c.listingRepo.GetByID(ctx, c.db.SQL, id)
}

func (c *ListingController) GetBySlug(ctx context.Context, slug string) (*Listing, error) {
	return c.listingRepo.GetBySlug(ctx, c.db.SQL, slug)
}

func (c *ListingController) Create(
	ctx context.Context,
	request *CreateListingRequest,
) (*Listing, error) {
	log := c.log.TraceFromContext(ctx).Function("Create")

	if err := request.requireFields(); err != nil {
		return nil, err
	}

	listing := &Listing{
		Address:           request.Address,
		City:              request.City,
		State:             request.State,
		Zip:               request.Zip,
		MonthlyRent:       *request.MonthlyRent,
		SecurityDeposit:   *request.SecurityDeposit,
		Bedrooms:          *request.Bedrooms,
		Bathrooms:         *request.Bathrooms,
		SquareFootage:     request.SquareFootage,
		PropertyType:      request.PropertyType,
		AvailableDate:     request.AvailableDate,
		PetPolicy:         request.PetPolicy,
		Description:       request.Description,
		UtilitiesIncluded: pq.StringArray(request.UtilitiesIncluded),
		Photos:            pq.StringArray(request.Photos),
		Status:            request.Status,
		Slug:              request.Slug,
	}

	if listing.Status == "" {
		listing.Status = ListingStatusActive
	}
	if err := listing.ApplySlug(); err != nil {
		return nil, err
	}
	if err := listing.Validate(); err != nil {
		return nil, err
	}

	if err := c.listingRepo.Create(ctx, c.db.SQL, listing); err != nil {
		return nil, log.Err("failed to create listing", err, "address", listing.Address)
	}

	return listing, nil
}

func (r *CreateListingRequest) requireFields() error {
	switch {
	case r.Address == "":
		return types.Validation("address is required")
	case r.City == "":
		return types.Validation("city is required")
	case r.State == "":
		return types.Validation("state is required")
	case r.Zip == "":
		return types.Validation("zip is required")
	case r.MonthlyRent == nil:
		return types.Validation("monthlyRent is required")
	case r.SecurityDeposit == nil:
		return types.Validation("securityDeposit is required")
	case r.Bedrooms == nil:
		return types.Validation("bedrooms is required")
	case r.Bathrooms == nil:
		return types.Validation("bathrooms is required")
	case r.PropertyType == "":
		return types.Validation("propertyType is required")
	case r.AvailableDate == "":
		return types.Validation("availableDate is required")
	case r.PetPolicy == "":
		return types.Validation("petPolicy is required")
	}
	return nil
}

func (c *ListingController) Update(
	ctx context.Context,
	id uuid.UUID,
	request *UpdateListingRequest,
) (*Listing, error) {
	log := c.log.TraceFromContext(ctx).Function("Update")

	listing, err := c.listingRepo.GetByID(ctx, c.db.SQL, id)
	if err != nil {
		return nil, err
	}

	request.applyTo(listing)
	if err := listing.Validate(); err != nil {
		return nil, err
	}

	listing.UpdatedAt = time.Now()
	if err := c.listingRepo.Update(ctx, c.db.SQL, listing); err != nil {
		return nil, log.Err("failed to update listing", err, "listingID", id)
	}

	return listing, nil
}

func (r *UpdateListingRequest) applyTo(listing *Listing) {
	if r.Address != nil {
		listing.Address = *r.Address
	}
	if r.City != nil {
		listing.City = *r.City
	}
	if r.State != nil {
		listing.State = *r.State
	}
	if r.Zip != nil {
		listing.Zip = *r.Zip
	}
	if r.MonthlyRent != nil {
		listing.MonthlyRent = *r.MonthlyRent
	}
	if r.SecurityDeposit != nil {
		listing.SecurityDeposit = *r.SecurityDeposit
	}
	if r.Bedrooms != nil {
		listing.Bedrooms = *r.Bedrooms
	}
	if r.Bathrooms != nil {
		listing.Bathrooms = *r.Bathrooms
	}
	if r.SquareFootage != nil {
		listing.SquareFootage = r.SquareFootage
	}
	if r.PropertyType != nil {
		listing.PropertyType = *r.PropertyType
	}
	if r.AvailableDate != nil {
		listing.AvailableDate = *r.AvailableDate
	}
	if r.PetPolicy != nil {
		listing.PetPolicy = *r.PetPolicy
	}
	if r.Description != nil {
		listing.Description = r.Description
	}
	if r.UtilitiesIncluded != nil {
		listing.UtilitiesIncluded = pq.StringArray(*r.UtilitiesIncluded)
	}
	if r.Photos != nil {
		listing.Photos = pq.StringArray(*r.Photos)
	}
	if r.Status != nil {
		listing.Status = *r.Status
	}
}

// UploadPhotos stores the files in order and appends their URLs to the
// listing. Nothing is appended when any upload fails.
func (c *ListingController) UploadPhotos(
	ctx context.Context,
	id uuid.UUID,
	photos []services.PhotoUpload,
) (*Listing, error) {
	log := c.log.TraceFromContext(ctx).Function("UploadPhotos")

	if _, err := c.listingRepo.GetByID(ctx, c.db.SQL, id); err != nil {
		return nil, err
	}

	urls, err := c.photos.Upload(ctx, id, photos)
	if err != nil {
		return nil, log.Err("failed to upload photos", err, "listingID", id)
	}

	var listing *Listing
	err = c.transactor.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := c.listingRepo.AppendPhotos(ctx, tx, id, urls); err != nil {
			return err
		}

		var err error
		listing, err = c.listingRepo.GetByID(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, log.Err("failed to append photos", err, "listingID", id)
	}
	metrics.PhotosUploaded.Add(float64(len(urls)))

	return listing, nil
}
