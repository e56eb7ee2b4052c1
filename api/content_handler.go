package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"

	"github.com/devan2636/astrodev-backend/database"
	"github.com/devan2636/astrodev-backend/errs"
	"github.com/devan2636/astrodev-backend/models"
)

type contentHandler struct {
	responder       Responder
	logger          zerolog.Logger
	siteContentRepo *database.SiteContentRepo
}

func newContentHandler(siteContentRepo *database.SiteContentRepo) contentHandler {
	logger := log.With().Str("handlerName", "contentHandler").Logger()

	return contentHandler{
		responder:       NewResponder(logger),
		logger:          logger,
		siteContentRepo: siteContentRepo,
	}
}

// getSection returns the stored JSON override for a section. A 404 means no
// override exists and the caller renders its built-in default.
func (h contentHandler) getSection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		section := chi.URLParam(r, "section")
		if !models.KnownSection(section) {
			h.responder.WriteError(w, errs.NewBadRequestError("unknown content section"))
			return
		}

		content, err := h.siteContentRepo.FindBySection(section)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find content", "site content", err))
			return
		}
		if content == nil {
			h.responder.WriteError(w, errs.NewNotFound("section content"))
			return
		}

		h.responder.WriteJSON(w, content)
	}
}

// upsertSection overwrites a section's JSON document wholesale. There is no
// field-level merge and no version check: the last save wins.
func (h contentHandler) upsertSection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		section := chi.URLParam(r, "section")
		if !models.KnownSection(section) {
			h.responder.WriteError(w, errs.NewBadRequestError("unknown content section"))
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}
		if len(body) == 0 || !json.Valid(body) {
			h.responder.WriteError(w, errs.NewInvalidJSONError(nil))
			return
		}

		content := models.SiteContent{
			Section: section,
			Content: datatypes.JSON(body),
		}
		if err := h.siteContentRepo.Upsert(&content); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("upsert content", "site content", err))
			return
		}

		h.responder.WriteJSON(w, content)
	}
}
