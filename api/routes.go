package api

import (
	"github.com/go-chi/chi/v5"
)

// setupRoutes wires the public site endpoints and the admin console behind
// the session and role gates.
func setupRoutes(r chi.Router, handlers *routeHandlers, authMiddleware authMiddleware) {
	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)

		r.Post("/auth/sign-in", handlers.authHandler.signIn())

		r.Get("/content/{section}", handlers.contentHandler.getSection())

		r.Get("/projects", handlers.projectHandler.getAllProjects())
		r.Get("/projects/categories", handlers.projectHandler.getCategories())
		r.Get("/projects/{projectID}", handlers.projectHandler.getProject())

		r.Post("/contact", handlers.contactHandler.submitMessage())

		r.Get("/share/documents", handlers.shareHandler.listDocuments())
		r.Post("/share/documents/{documentID}/unlock", handlers.shareHandler.unlockDocument())
		r.Get("/share/documents/{documentID}/preview", handlers.shareHandler.previewDocument())

		r.Get("/documents", handlers.documentHandler.listDocuments())
		r.Post("/documents/{documentID}/download", handlers.documentHandler.downloadDocument())
	})

	// Authenticated routes
	r.Group(func(r chi.Router) {
		r.Use(ColoredHTTPLoggingMiddleware)
		r.Use(authMiddleware.authenticate)

		r.Get("/auth/session", handlers.authHandler.session())

		// Admin console
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.requireAdmin)

			r.Get("/admin/stats", handlers.dashboardHandler.getStats())
			r.Get("/admin/contact-messages", handlers.contactHandler.listMessages())

			r.Put("/admin/content/{section}", handlers.contentHandler.upsertSection())

			r.Post("/admin/projects", handlers.projectHandler.createProject())
			r.Put("/admin/projects/{projectID}", handlers.projectHandler.updateProject())
			r.Delete("/admin/projects/{projectID}", handlers.projectHandler.deleteProject())

			r.Get("/admin/share/documents", handlers.shareHandler.listDocumentsAdmin())
			r.Post("/admin/share/documents", handlers.shareHandler.createDocument())
			r.Put("/admin/share/documents/{documentID}", handlers.shareHandler.updateDocument())
			r.Delete("/admin/share/documents/{documentID}", handlers.shareHandler.deleteDocument())

			r.Post("/admin/documents", handlers.documentHandler.uploadDocument())
			r.Delete("/admin/documents/{documentID}", handlers.documentHandler.deleteDocument())
		})
	})
}
