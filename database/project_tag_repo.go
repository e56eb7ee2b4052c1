package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/devan2636/astrodev-backend/models"
)

type ProjectTagRepo struct {
	db *gorm.DB
}

func NewProjectTagRepo(db *gorm.DB) *ProjectTagRepo {
	return &ProjectTagRepo{db}
}

// Add inserts a new tag row
func (r *ProjectTagRepo) Add(tag *models.ProjectTag) error {
	return r.db.Create(tag).Error
}

// Replace swaps the full tag set of a project for the given values.
func (r *ProjectTagRepo) Replace(projectID uuid.UUID, values []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", projectID).Delete(&models.ProjectTag{}).Error; err != nil {
			return err
		}
		for _, value := range values {
			tag := models.ProjectTag{ProjectID: projectID, Value: value}
			if err := tx.Create(&tag).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
