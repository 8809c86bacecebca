package models

import (
	"time"

	"github.com/google/uuid"
)

// Rows are never soft-deleted, so there is no DeletedAt.
type BaseUUIDModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime"                                 json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"                                 json:"updatedAt"`
}
