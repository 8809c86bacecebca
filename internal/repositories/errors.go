package repositories

import (
	"errors"

	"leasehold/internal/types"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm"
)

// storeError translates a gorm error into the service's error kinds.
// Validation errors raised by model hooks pass through untouched.
func storeError(log logger.Logger, entity string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return types.NotFound(entity)
	case errors.Is(err, types.ErrValidation):
		return err
	}

	log.Er("store operation failed", err, "entity", entity)
	return types.Persistence(err)
}
