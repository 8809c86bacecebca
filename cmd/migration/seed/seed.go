package seed

import (
	"leasehold/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func stringPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

func sampleListings() []models.Listing {
	return []models.Listing{
		{
			Address:           "412 Maple Avenue",
			City:              "Springfield",
			State:             "IL",
			Zip:               "62704",
			MonthlyRent:       decimal.RequireFromString("1450.00"),
			SecurityDeposit:   decimal.RequireFromString("1450.00"),
			Bedrooms:          3,
			Bathrooms:         decimal.RequireFromString("1.5"),
			SquareFootage:     intPtr(1320),
			PropertyType:      models.PropertyTypeHouse,
			AvailableDate:     "2026-11-01",
			PetPolicy:         models.PetPolicyCaseByCase,
			Description:       stringPtr("Fenced yard, detached garage, close to schools."),
			UtilitiesIncluded: pq.StringArray{"Water", "Trash"},
			Photos:            pq.StringArray{},
			Status:            models.ListingStatusActive,
		},
		{
			Address:           "88 Harbor Street Unit 2B",
			City:              "Portland",
			State:             "ME",
			Zip:               "04101",
			MonthlyRent:       decimal.RequireFromString("1875.00"),
			SecurityDeposit:   decimal.RequireFromString("2000.00"),
			Bedrooms:          2,
			Bathrooms:         decimal.RequireFromString("1"),
			SquareFootage:     intPtr(940),
			PropertyType:      models.PropertyTypeApartment,
			AvailableDate:     "2026-12-15",
			PetPolicy:         models.PetPolicyNotAllowed,
			UtilitiesIncluded: pq.StringArray{"Heat", "Water"},
			Photos:            pq.StringArray{},
			Status:            models.ListingStatusActive,
		},
		{
			Address:           "1630 Cedar Court",
			City:              "Boise",
			State:             "ID",
			Zip:               "83702",
			MonthlyRent:       decimal.RequireFromString("2150.00"),
			SecurityDeposit:   decimal.RequireFromString("2150.00"),
			Bedrooms:          4,
			Bathrooms:         decimal.RequireFromString("2.5"),
			PropertyType:      models.PropertyTypeTownhouse,
			AvailableDate:     "2027-01-01",
			PetPolicy:         models.PetPolicyAllowed,
			UtilitiesIncluded: pq.StringArray{},
			Photos:            pq.StringArray{},
			Status:            models.ListingStatusInactive,
		},
	}
}

func Seed(db *gorm.DB, log logger.Logger) error {
	log = log.Function("Seed")
	log.Info("Seeding development data")

	for _, listing := range sampleListings() {
		if err := listing.ApplySlug(); err != nil {
			return log.Err("failed to build slug", err, "address", listing.Address)
		}

		var existing models.Listing
		if err := db.Where("slug = ?", listing.Slug).Take(&existing).Error; err == nil {
			log.Debug("Listing already exists", "slug", listing.Slug)
			continue
		}

		log.Info("Seeding listing", "slug", listing.Slug)
		if err := db.Create(&listing).Error; err != nil {
			return log.Err("failed to create listing", err, "slug", listing.Slug)
		}
	}

	return nil
}
