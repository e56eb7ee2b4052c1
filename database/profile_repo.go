package database

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/devan2636/astrodev-backend/models"
)

type ProfileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) *ProfileRepo {
	return &ProfileRepo{db}
}

// FindByID returns a profile by its ID, or nil when no row exists
func (r *ProfileRepo) FindByID(id uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// FindByEmail returns a profile by email, or nil when no row exists
func (r *ProfileRepo) FindByEmail(email string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Add inserts a new profile
func (r *ProfileRepo) Add(profile *models.Profile) error {
	return r.db.Create(profile).Error
}

// UpdateRole changes a profile's role. Takes effect on the profile's next
// request because roles are read from the row, not the session token.
func (r *ProfileRepo) UpdateRole(id uuid.UUID, role string) error {
	return r.db.Model(&models.Profile{}).
		Where("id = ?", id).
		Update("role", role).Error
}

// TouchSignIn records a successful sign-in on the profile row. Running it on
// every sign-in keeps the row current without ever duplicating it.
func (r *ProfileRepo) TouchSignIn(id uuid.UUID, at time.Time) error {
	return r.db.Model(&models.Profile{}).
		Where("id = ?", id).
		Update("last_sign_in_at", at).Error
}
