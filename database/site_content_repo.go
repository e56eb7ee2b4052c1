package database

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/devan2636/astrodev-backend/models"
)

type SiteContentRepo struct {
	db *gorm.DB
}

func NewSiteContentRepo(db *gorm.DB) *SiteContentRepo {
	return &SiteContentRepo{db}
}

// FindBySection returns the stored override for a section, or nil when the
// section has no row and the caller should keep its built-in default.
func (r *SiteContentRepo) FindBySection(section string) (*models.SiteContent, error) {
	var content models.SiteContent
	err := r.db.First(&content, "section = ?", section).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &content, nil
}

// Upsert overwrites the section's JSON document wholesale. The section key is
// the primary key, so repeated saves update the same row and never duplicate.
func (r *SiteContentRepo) Upsert(content *models.SiteContent) error {
	content.UpdatedAt = time.Now().UTC()
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "section"}},
		DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at"}),
	}).Create(content).Error
}
