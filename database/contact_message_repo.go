package database

import (
	"gorm.io/gorm"

	"github.com/devan2636/astrodev-backend/models"
)

type ContactMessageRepo struct {
	db *gorm.DB
}

func NewContactMessageRepo(db *gorm.DB) *ContactMessageRepo {
	return &ContactMessageRepo{db}
}

// Add inserts a new contact message
func (r *ContactMessageRepo) Add(message *models.ContactMessage) error {
	return r.db.Create(message).Error
}

// FindRecent returns the most recent messages, newest first
func (r *ContactMessageRepo) FindRecent(limit int) ([]*models.ContactMessage, error) {
	var messages []*models.ContactMessage
	err := r.db.Order("created_at desc").Limit(limit).Find(&messages).Error
	return messages, err
}

// Count returns the number of messages without loading any rows
func (r *ContactMessageRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.ContactMessage{}).Count(&count).Error
	return count, err
}
