package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/devan2636/astrodev-backend/models"
)

type StoredDocumentRepo struct {
	db *gorm.DB
}

func NewStoredDocumentRepo(db *gorm.DB) *StoredDocumentRepo {
	return &StoredDocumentRepo{db}
}

// FindAll returns all stored documents, newest first
func (r *StoredDocumentRepo) FindAll() ([]*models.StoredDocument, error) {
	var documents []*models.StoredDocument
	err := r.db.Order("created_at desc").Find(&documents).Error
	return documents, err
}

// FindByID returns a stored document by its ID, or nil when no row exists
func (r *StoredDocumentRepo) FindByID(id uuid.UUID) (*models.StoredDocument, error) {
	var document models.StoredDocument
	err := r.db.First(&document, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &document, nil
}

// Add inserts a new stored document
func (r *StoredDocumentRepo) Add(document *models.StoredDocument) error {
	return r.db.Create(document).Error
}

// Delete removes a stored document by id
func (r *StoredDocumentRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.StoredDocument{}, "id = ?", id).Error
}

// IncrementDownloadCount bumps the counter atomically in the database so
// concurrent downloads never lose an increment.
func (r *StoredDocumentRepo) IncrementDownloadCount(id uuid.UUID) error {
	return r.db.Model(&models.StoredDocument{}).
		Where("id = ?", id).
		UpdateColumn("download_count", gorm.Expr("download_count + 1")).Error
}

// Count returns the number of stored documents without loading any rows
func (r *StoredDocumentRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.StoredDocument{}).Count(&count).Error
	return count, err
}
