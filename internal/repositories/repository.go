package repositories

import (
	"leasehold/internal/database"
)

type Repository struct {
	Listing         ListingRepository
	Application     ApplicationRepository
	ApplicationNote ApplicationNoteRepository
	Draft           DraftRepository
	Session         SessionRepository
}

func New(db database.DB) Repository {
	return Repository{
		Listing:         NewListingRepository(),
		Application:     NewApplicationRepository(),
		ApplicationNote: NewApplicationNoteRepository(),
		Draft:           NewDraftRepository(db),
		Session:         NewSessionRepository(db),
	}
}
