package api

import (
	"github.com/devan2636/astrodev-backend/config"
	"github.com/devan2636/astrodev-backend/database"
	"github.com/devan2636/astrodev-backend/services"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database, storage ObjectStorage, mailer *services.Mailer, issuer tokenIssuer, c map[string]string) *routeHandlers {
	notifyEmail := config.GetString(c, "CONTACT_NOTIFY_EMAIL", "")

	return &routeHandlers{
		authHandler:      newAuthHandler(database.ProfileRepo(), issuer),
		contentHandler:   newContentHandler(database.SiteContentRepo()),
		projectHandler:   newProjectHandler(database.ProjectRepo(), database.ProjectTagRepo()),
		contactHandler:   newContactHandler(database.ContactMessageRepo(), mailer, notifyEmail),
		dashboardHandler: newDashboardHandler(database),
		shareHandler:     newShareHandler(database.SharedDocumentRepo(), issuer),
		documentHandler:  newDocumentHandler(database.StoredDocumentRepo(), storage),
	}
}
