package services

import (
	"context"

	"leasehold/config"
	"leasehold/internal/database"
	"leasehold/internal/repositories"
)

type Service struct {
	Session      *SessionService
	PhotoStorage *PhotoStorageService
	Transaction  *TransactionService
}

func New(
	ctx context.Context,
	db database.DB,
	repos repositories.Repository,
	config config.Config,
) (Service, error) {
	photoStorage, err := NewPhotoStorageService(ctx, config)
	if err != nil {
		return Service{}, err
	}

	return Service{
		Session:      NewSessionService(config, repos.Session),
		PhotoStorage: photoStorage,
		Transaction:  NewTransactionService(db),
	}, nil
}
