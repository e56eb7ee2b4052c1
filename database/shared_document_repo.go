package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/devan2636/astrodev-backend/models"
)

type SharedDocumentRepo struct {
	db *gorm.DB
}

func NewSharedDocumentRepo(db *gorm.DB) *SharedDocumentRepo {
	return &SharedDocumentRepo{db}
}

// FindAll returns all shared documents ordered by their manual display order
func (r *SharedDocumentRepo) FindAll() ([]*models.SharedDocument, error) {
	var documents []*models.SharedDocument
	err := r.db.Order("display_order asc, created_at desc").Find(&documents).Error
	return documents, err
}

// FindByID returns a shared document by its ID, or nil when no row exists
func (r *SharedDocumentRepo) FindByID(id uuid.UUID) (*models.SharedDocument, error) {
	var document models.SharedDocument
	err := r.db.First(&document, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &document, nil
}

// Add inserts a new shared document
func (r *SharedDocumentRepo) Add(document *models.SharedDocument) error {
	return r.db.Create(document).Error
}

// Update updates an existing shared document
func (r *SharedDocumentRepo) Update(document *models.SharedDocument) error {
	return r.db.Save(document).Error
}

// Delete removes a shared document by id
func (r *SharedDocumentRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.SharedDocument{}, "id = ?", id).Error
}

// Count returns the number of shared documents without loading any rows
func (r *SharedDocumentRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.SharedDocument{}).Count(&count).Error
	return count, err
}
