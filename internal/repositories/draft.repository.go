package repositories

import (
	"context"

	"leasehold/internal/assembler"
	"leasehold/internal/constants"
	"leasehold/internal/database"
	"leasehold/internal/types"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
)

// DraftRepository keeps in-progress applications in valkey. Every save
// pushes the expiry out again.
type DraftRepository interface {
	Save(ctx context.Context, draft *assembler.Draft) error
	Get(ctx context.Context, id uuid.UUID) (*assembler.Draft, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type draftRepository struct {
	cache database.CacheClient
	log   logger.Logger
}

func NewDraftRepository(db database.DB) DraftRepository {
	return &draftRepository{
		cache: db.Cache.Draft,
		log:   logger.New("draftRepository"),
	}
}

func (r *draftRepository) Save(ctx context.Context, draft *assembler.Draft) error {
	log := r.log.TraceFromContext(ctx).Function("Save")

	err := database.NewCacheBuilder(r.cache, draft.ID).
		WithContext(ctx).
		WithHash(constants.DraftCachePrefix).
		WithStruct(draft).
		WithTTL(constants.DraftCacheExpiry).
		Set()
	if err != nil {
		log.Er("failed to save draft", err, "draftID", draft.ID)
		return types.Persistence(err)
	}

	return nil
}

func (r *draftRepository) Get(ctx context.Context, id uuid.UUID) (*assembler.Draft, error) {
	log := r.log.TraceFromContext(ctx).Function("Get")

	var draft assembler.Draft
	found, err := database.NewCacheBuilder(r.cache, id).
		WithContext(ctx).
		WithHash(constants.DraftCachePrefix).
		Get(&draft)
	if err != nil {
		log.Er("failed to load draft", err, "draftID", id)
		return nil, types.Persistence(err)
	}
	if !found {
		return nil, types.NotFound("draft")
	}

	return &draft, nil
}

func (r *draftRepository) Delete(ctx context.Context, id uuid.UUID) error {
	log := r.log.TraceFromContext(ctx).Function("Delete")

	err := database.NewCacheBuilder(r.cache, id).
		WithContext(ctx).
		WithHash(constants.DraftCachePrefix).
		Delete()
	if err != nil {
		log.Er("failed to delete draft", err, "draftID", id)
		return types.Persistence(err)
	}

	return nil
}
