package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StoredDocument is a publicly downloadable file kept in object storage.
// Distinct from SharedDocument: these are open downloads with a counter,
// not password-gated Drive embeds.
type StoredDocument struct {
	ID            uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title         string    `json:"title" db:"title" gorm:"type:text;not null"`
	Description   *string   `json:"description,omitempty" db:"description" gorm:"type:text"`
	FilePath      string    `json:"file_path" db:"file_path" gorm:"type:text;not null"`
	FileName      string    `json:"file_name" db:"file_name" gorm:"type:text;not null"`
	FileSize      int64     `json:"file_size" db:"file_size" gorm:"type:bigint;not null;default:0"`
	FileType      *string   `json:"file_type,omitempty" db:"file_type" gorm:"type:text"`
	DownloadCount int64     `json:"download_count" db:"download_count" gorm:"type:bigint;not null;default:0"`
	CreatedAt     time.Time `json:"created_at" db:"created_at" gorm:"not null"`
}

func (d *StoredDocument) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
