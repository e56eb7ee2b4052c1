package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/devan2636/astrodev-backend/database"
)

type dashboardHandler struct {
	responder Responder
	logger    zerolog.Logger
	database  database.Database
}

func newDashboardHandler(database database.Database) dashboardHandler {
	logger := log.With().Str("handlerName", "dashboardHandler").Logger()

	return dashboardHandler{
		responder: NewResponder(logger),
		logger:    logger,
		database:  database,
	}
}

// DashboardStats holds the admin dashboard aggregates, computed with
// count-only queries.
type DashboardStats struct {
	ProjectCount        int64 `json:"project_count"`
	ContactMessageCount int64 `json:"contact_message_count"`
	SharedDocumentCount int64 `json:"shared_document_count"`
	StoredDocumentCount int64 `json:"stored_document_count"`
}

// getStats runs the four counts concurrently. A failed count is logged and
// reported as zero rather than failing the whole dashboard.
func (h dashboardHandler) getStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var stats DashboardStats

		count := func(name string, target *int64, fn func() (int64, error)) func() error {
			return func() error {
				value, err := fn()
				if err != nil {
					h.logger.Error().Err(err).Str("stat", name).Msg("Failed to count rows")
					return nil
				}
				*target = value
				return nil
			}
		}

		var g errgroup.Group
		g.Go(count("projects", &stats.ProjectCount, h.database.ProjectRepo().Count))
		g.Go(count("contact_messages", &stats.ContactMessageCount, h.database.ContactMessageRepo().Count))
		g.Go(count("shared_documents", &stats.SharedDocumentCount, h.database.SharedDocumentRepo().Count))
		g.Go(count("stored_documents", &stats.StoredDocumentCount, h.database.StoredDocumentRepo().Count))
		_ = g.Wait()

		h.responder.WriteJSON(w, stats)
	}
}
