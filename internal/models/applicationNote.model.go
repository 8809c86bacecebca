package models

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationNote is append-only: there is no update or delete path.
type ApplicationNote struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"  json:"id"`
	ApplicationID uuid.UUID `gorm:"type:uuid;not null;index:idx_application_notes_app" json:"applicationId"`
	Note          string    `gorm:"type:text;not null"                                json:"note"`
	CreatedAt     time.Time `gorm:"autoCreateTime;index"                               json:"createdAt"`

	Application *Application `gorm:"foreignKey:ApplicationID" json:"-"`
}
