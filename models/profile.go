package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Profile is an authenticated identity. Role gates the admin console:
// anything other than "admin" is refused at the middleware.
type Profile struct {
	ID           uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Email        string     `json:"email" db:"email" gorm:"type:text;not null;unique"`
	PasswordHash string     `json:"-" db:"password_hash" gorm:"type:text;not null"`
	Role         string     `json:"role" db:"role" gorm:"type:text;not null;default:user"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at" gorm:"not null"`
	LastSignInAt *time.Time `json:"last_sign_in_at,omitempty" db:"last_sign_in_at"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// IsAdmin reports whether the profile may use the admin console.
func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}
