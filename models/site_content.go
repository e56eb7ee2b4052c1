package models

import (
	"time"

	"gorm.io/datatypes"
)

// Section keys the content loader recognizes. Each stores one free-form
// JSON document that replaces the page area's built-in copy wholesale.
const (
	SectionHero        = "hero"
	SectionAbout       = "about"
	SectionFooter      = "footer"
	SectionContactInfo = "contact_info"
)

// SiteContent is a named JSON override for a public page section.
// One row per section; saves overwrite the whole document.
type SiteContent struct {
	Section   string         `json:"section" db:"section" gorm:"type:text;primaryKey;not null"`
	Content   datatypes.JSON `json:"content" db:"content" gorm:"not null"`
	UpdatedAt time.Time      `json:"updated_at" db:"updated_at" gorm:"not null"`
}

// KnownSection reports whether section is one of the keys the site consumes.
func KnownSection(section string) bool {
	switch section {
	case SectionHero, SectionAbout, SectionFooter, SectionContactInfo:
		return true
	}
	return false
}
