package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SharedDocument is a Drive-hosted document gated behind a password.
// Only the bcrypt hash of the password is persisted; the plaintext never
// leaves the unlock endpoint.
type SharedDocument struct {
	ID             uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name           string    `json:"name" db:"name" gorm:"type:text;not null"`
	GoogleDriveURL string    `json:"-" db:"google_drive_url" gorm:"type:text;not null"`
	PasswordHash   string    `json:"-" db:"password_hash" gorm:"type:text;not null"`
	Description    *string   `json:"description,omitempty" db:"description" gorm:"type:text"`
	FileSize       *string   `json:"file_size,omitempty" db:"file_size" gorm:"type:text"`
	DisplayOrder   int       `json:"display_order" db:"display_order" gorm:"type:integer;not null;default:0"`
	CreatedAt      time.Time `json:"created_at" db:"created_at" gorm:"not null"`
}

func (d *SharedDocument) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
