package models

import (
	"leasehold/internal/types"
	"leasehold/internal/utils"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ListingStatus string

const (
	ListingStatusActive   ListingStatus = "active"
	ListingStatusInactive ListingStatus = "inactive"
)

func (s ListingStatus) IsValid() bool {
	return s == ListingStatusActive || s == ListingStatusInactive
}

type PropertyType string

const (
	PropertyTypeHouse     PropertyType = "House"
	PropertyTypeApartment PropertyType = "Apartment"
	PropertyTypeDuplex    PropertyType = "Duplex"
	PropertyTypeTownhouse PropertyType = "Townhouse"
	PropertyTypeCondo     PropertyType = "Condo"
)

func (p PropertyType) IsValid() bool {
	switch p {
	case PropertyTypeHouse, PropertyTypeApartment, PropertyTypeDuplex,
		PropertyTypeTownhouse, PropertyTypeCondo:
		return true
	}
	return false
}

type PetPolicy string

const (
	PetPolicyAllowed    PetPolicy = "Allowed"
	PetPolicyNotAllowed PetPolicy = "Not Allowed"
	PetPolicyCaseByCase PetPolicy = "Case by Case"
)

func (p PetPolicy) IsValid() bool {
	return p == PetPolicyAllowed || p == PetPolicyNotAllowed || p == PetPolicyCaseByCase
}

type Listing struct {
	BaseUUIDModel
	Address           string          `gorm:"type:text;not null"                     json:"address"`
	City              string          `gorm:"type:text;not null"                     json:"city"`
	State             string          `gorm:"type:text;not null"                     json:"state"`
	Zip               string          `gorm:"type:text;not null"                     json:"zip"`
	MonthlyRent       decimal.Decimal `gorm:"type:decimal(10,2);not null"            json:"monthlyRent"`
	SecurityDeposit   decimal.Decimal `gorm:"type:decimal(10,2);not null"            json:"securityDeposit"`
	Bedrooms          int             `gorm:"type:integer;not null"                  json:"bedrooms"`
	Bathrooms         decimal.Decimal `gorm:"type:decimal(3,1);not null"             json:"bathrooms"`
	SquareFootage     *int            `gorm:"type:integer"                           json:"squareFootage,omitempty"`
	PropertyType      PropertyType    `gorm:"type:text;not null"                     json:"propertyType"`
	AvailableDate     string          `gorm:"type:text;not null"                     json:"availableDate"`
	PetPolicy         PetPolicy       `gorm:"type:text;not null"                     json:"petPolicy"`
	Description       *string         `gorm:"type:text"                              json:"description,omitempty"`
	UtilitiesIncluded pq.StringArray  `gorm:"type:text[]"                            json:"utilitiesIncluded"`
	Photos            pq.StringArray  `gorm:"type:text[]"                            json:"photos"`
	Status            ListingStatus   `gorm:"type:text;not null;default:'active';index" json:"status"`
	Slug              string          `gorm:"type:text;not null;index:idx_listings_slug" json:"slug"`
}

// CoverPhoto is the first photo, or empty when the listing has none.
func (l *Listing) CoverPhoto() string {
	if len(l.Photos) == 0 {
		return ""
	}
	return l.Photos[0]
}

// ApplySlug derives the slug from the address unless one is already set.
func (l *Listing) ApplySlug() error {
	if l.Slug != "" {
		return nil
	}

	l.Slug = utils.Slugify(l.Address)
	if l.Slug == "" {
		return types.Validation("address %q does not produce a usable slug", l.Address)
	}
	return nil
}

func (l *Listing) Validate() error {
	switch {
	case l.Address == "":
		return types.Validation("address is required")
	case l.City == "":
		return types.Validation("city is required")
	case l.State == "":
		return types.Validation("state is required")
	case l.Zip == "":
		return types.Validation("zip is required")
	case l.MonthlyRent.IsNegative():
		return types.Validation("monthlyRent must not be negative")
	case l.SecurityDeposit.IsNegative():
		return types.Validation("securityDeposit must not be negative")
	case l.Bedrooms < 0:
		return types.Validation("bedrooms must not be negative")
	case l.SquareFootage != nil && *l.SquareFootage < 0:
		return types.Validation("squareFootage must not be negative")
	case !l.PropertyType.IsValid():
		return types.Validation("propertyType %q is not valid", l.PropertyType)
	case !l.PetPolicy.IsValid():
		return types.Validation("petPolicy %q is not valid", l.PetPolicy)
	case !utils.IsISODate(l.AvailableDate):
		return types.Validation("availableDate must be YYYY-MM-DD")
	case !l.Status.IsValid():
		return types.Validation("status %q is not valid", l.Status)
	}

	return ValidateBathrooms(l.Bathrooms)
}

// ValidateBathrooms accepts non-negative counts in half steps.
func ValidateBathrooms(bathrooms decimal.Decimal) error {
	if bathrooms.IsNegative() {
		return types.Validation("bathrooms must not be negative")
	}
	if !bathrooms.Mul(decimal.NewFromInt(2)).IsInteger() {
		return types.Validation("bathrooms must be a whole or half number")
	}
	return nil
}

func (l *Listing) BeforeCreate(tx *gorm.DB) (err error) {
	if l.Status == "" {
		l.Status = ListingStatusActive
	}
	if l.UtilitiesIncluded == nil {
		l.UtilitiesIncluded = pq.StringArray{}
	}
	if l.Photos == nil {
		l.Photos = pq.StringArray{}
	}
	if err := l.ApplySlug(); err != nil {
		return err
	}
	return l.Validate()
}
