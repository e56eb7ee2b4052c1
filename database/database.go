package database

import (
	"gorm.io/gorm"

	"github.com/devan2636/astrodev-backend/models"
)

type Database struct {
	profileRepo        *ProfileRepo
	projectRepo        *ProjectRepo
	projectTagRepo     *ProjectTagRepo
	siteContentRepo    *SiteContentRepo
	contactMessageRepo *ContactMessageRepo
	sharedDocumentRepo *SharedDocumentRepo
	storedDocumentRepo *StoredDocumentRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		profileRepo:        NewProfileRepo(db),
		projectRepo:        NewProjectRepo(db),
		projectTagRepo:     NewProjectTagRepo(db),
		siteContentRepo:    NewSiteContentRepo(db),
		contactMessageRepo: NewContactMessageRepo(db),
		sharedDocumentRepo: NewSharedDocumentRepo(db),
		storedDocumentRepo: NewStoredDocumentRepo(db),
	}
}

// Migrate creates or updates the schema for every entity the service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Profile{},
		&models.Project{},
		&models.ProjectTag{},
		&models.SiteContent{},
		&models.ContactMessage{},
		&models.SharedDocument{},
		&models.StoredDocument{},
	)
}

// Accessor methods for each repository

func (d Database) ProfileRepo() *ProfileRepo {
	return d.profileRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) ProjectTagRepo() *ProjectTagRepo {
	return d.projectTagRepo
}

func (d Database) SiteContentRepo() *SiteContentRepo {
	return d.siteContentRepo
}

func (d Database) ContactMessageRepo() *ContactMessageRepo {
	return d.contactMessageRepo
}

func (d Database) SharedDocumentRepo() *SharedDocumentRepo {
	return d.sharedDocumentRepo
}

func (d Database) StoredDocumentRepo() *StoredDocumentRepo {
	return d.storedDocumentRepo
}
