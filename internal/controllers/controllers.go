package controllers

import (
	"leasehold/internal/database"
	"leasehold/internal/repositories"
	"leasehold/internal/services"

	adminController "leasehold/internal/controllers/admin"
	applicationController "leasehold/internal/controllers/applications"
	draftController "leasehold/internal/controllers/drafts"
	listingController "leasehold/internal/controllers/listings"
)

type Controllers struct {
	Listing     listingController.ListingControllerInterface
	Application applicationController.ApplicationControllerInterface
	Draft       draftController.DraftControllerInterface
	Admin       adminController.AdminControllerInterface
}

func New(
	services services.Service,
	repos repositories.Repository,
	db database.DB,
) Controllers {
	applications := applicationController.New(repos, services.Transaction, db)

	return Controllers{
		Listing:     listingController.New(repos, services.PhotoStorage, services.Transaction, db),
		Application: applications,
		Draft:       draftController.New(repos, applications, db),
		Admin:       adminController.New(repos, services.Session, db),
	}
}
