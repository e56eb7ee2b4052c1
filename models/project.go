package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project represents a portfolio project with metadata
type Project struct {
	ID           uuid.UUID    `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title        string       `json:"title" db:"title" gorm:"type:text;not null;unique"`
	Description  string       `json:"description" db:"description" gorm:"type:text;not null"`
	Content      *string      `json:"content,omitempty" db:"content" gorm:"type:text"`
	Category     string       `json:"category" db:"category" gorm:"type:text;not null"`
	ImageURL     *string      `json:"image_url,omitempty" db:"image_url" gorm:"type:text"`
	DemoURL      *string      `json:"demo_url,omitempty" db:"demo_url" gorm:"type:text"`
	GithubURL    *string      `json:"github_url,omitempty" db:"github_url" gorm:"type:text"`
	YoutubeURL   *string      `json:"youtube_url,omitempty" db:"youtube_url" gorm:"type:text"`
	Featured     bool         `json:"featured" db:"featured" gorm:"not null;default:false"`
	OwnerID      *uuid.UUID   `json:"owner_id,omitempty" db:"owner_id" gorm:"type:uuid"`
	DisplayOrder int          `json:"display_order" db:"display_order" gorm:"type:integer;not null;default:0"`
	Tags         []ProjectTag `json:"tags,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TagValues flattens the tag rows to the plain string list exchanged over the API.
func (p *Project) TagValues() []string {
	values := make([]string, 0, len(p.Tags))
	for _, tag := range p.Tags {
		values = append(values, tag.Value)
	}
	return values
}
