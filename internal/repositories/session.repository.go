package repositories

import (
	"context"
	"time"

	"leasehold/internal/constants"
	"leasehold/internal/database"
	"leasehold/internal/types"

	logger "github.com/Bparsons0904/goLogger"
)

type sessionRecord struct {
	IssuedAt time.Time `json:"issuedAt"`
}

// SessionRepository tracks live admin session ids. A token whose id is
// missing here has been revoked or has expired.
type SessionRepository interface {
	Store(ctx context.Context, sessionID string, issuedAt time.Time, ttl time.Duration) error
	Exists(ctx context.Context, sessionID string) (bool, error)
	Delete(ctx context.Context, sessionID string) error
}

type sessionRepository struct {
	cache database.CacheClient
	log   logger.Logger
}

func NewSessionRepository(db database.DB) SessionRepository {
	return &sessionRepository{
		cache: db.Cache.Session,
		log:   logger.New("sessionRepository"),
	}
}

func (r *sessionRepository) Store(
	ctx context.Context,
	sessionID string,
	issuedAt time.Time,
	ttl time.Duration,
) error {
	log := r.log.TraceFromContext(ctx).Function("Store")

	err := database.NewCacheBuilder(r.cache, sessionID).
		WithContext(ctx).
		WithHash(constants.SessionCachePrefix).
		WithStruct(sessionRecord{IssuedAt: issuedAt}).
		WithTTL(ttl).
		Set()
	if err != nil {
		log.Er("failed to store session", err)
		return types.Persistence(err)
	}
	return nil
}

func (r *sessionRepository) Exists(ctx context.Context, sessionID string) (bool, error) {
	log := r.log.TraceFromContext(ctx).Function("Exists")

	exists, err := database.NewCacheBuilder(r.cache, sessionID).
		WithContext(ctx).
		WithHash(constants.SessionCachePrefix).
		Exists()
	if err != nil {
		log.Er("failed to check session", err)
		return false, types.Persistence(err)
	}
	return exists, nil
}

func (r *sessionRepository) Delete(ctx context.Context, sessionID string) error {
	log := r.log.TraceFromContext(ctx).Function("Delete")

	err := database.NewCacheBuilder(r.cache, sessionID).
		WithContext(ctx).
		WithHash(constants.SessionCachePrefix).
		Delete()
	if err != nil {
		log.Er("failed to delete session", err)
		return types.Persistence(err)
	}
	return nil
}
