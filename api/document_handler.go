package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/devan2636/astrodev-backend/database"
	"github.com/devan2636/astrodev-backend/errs"
	"github.com/devan2636/astrodev-backend/models"
)

const maxUploadBytes = 50 << 20 // 50MB

// ObjectStorage is the slice of the object store the document library needs.
type ObjectStorage interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) error
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}

type documentHandler struct {
	responder          Responder
	logger             zerolog.Logger
	storedDocumentRepo *database.StoredDocumentRepo
	storage            ObjectStorage
}

func newDocumentHandler(storedDocumentRepo *database.StoredDocumentRepo, storage ObjectStorage) documentHandler {
	logger := log.With().Str("handlerName", "documentHandler").Logger()

	return documentHandler{
		responder:          NewResponder(logger),
		logger:             logger,
		storedDocumentRepo: storedDocumentRepo,
		storage:            storage,
	}
}

// listDocuments returns the public download library, newest first
func (h documentHandler) listDocuments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		documents, err := h.storedDocumentRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find documents", "stored documents", err))
			return
		}

		h.responder.WriteJSON(w, map[string]interface{}{
			"documents": documents,
			"total":     len(documents),
		})
	}
}

// downloadDocument bumps the download counter and resolves the public URL of
// the stored file. The increment happens in the database, so concurrent
// downloads all count.
func (h documentHandler) downloadDocument() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		documentID, err := uuid.Parse(chi.URLParam(r, "documentID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid documentID"))
			return
		}

		if h.storage == nil {
			h.responder.WriteError(w, errs.NewApiErr(http.StatusServiceUnavailable, "document storage not configured"))
			return
		}

		document, err := h.storedDocumentRepo.FindByID(documentID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find document", "stored document", err))
			return
		}
		if document == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("document not found"))
			return
		}

		if err := h.storedDocumentRepo.IncrementDownloadCount(documentID); err != nil {
			// The download still proceeds; the counter is best effort
			h.logger.Error().Err(err).Str("documentId", documentID.String()).Msg("Failed to increment download count")
		} else {
			document.DownloadCount++
		}

		h.responder.WriteJSON(w, map[string]interface{}{
			"url":            h.storage.PublicURL(document.FilePath),
			"file_name":      document.FileName,
			"download_count": document.DownloadCount,
		})
	}
}

// uploadDocument stores a multipart file upload in object storage and
// records its metadata row.
func (h documentHandler) uploadDocument() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.storage == nil {
			h.responder.WriteError(w, errs.NewApiErr(http.StatusServiceUnavailable, "document storage not configured"))
			return
		}

		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed multipart form"))
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("file"))
			return
		}
		defer file.Close()

		title := strings.TrimSpace(r.FormValue("title"))
		if title == "" {
			title = header.Filename
		}

		fileName := path.Base(header.Filename)
		key := fmt.Sprintf("documents/%s/%s", uuid.New().String(), fileName)
		contentType := header.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		if err := h.storage.Upload(r.Context(), key, contentType, file); err != nil {
			h.logger.Error().Err(err).Str("key", key).Msg("Failed to upload document")
			h.responder.WriteError(w, errs.NewInternalError("failed to store document"))
			return
		}

		document := models.StoredDocument{
			Title:    title,
			FilePath: key,
			FileName: fileName,
			FileSize: header.Size,
		}
		if description := strings.TrimSpace(r.FormValue("description")); description != "" {
			document.Description = &description
		}
		if contentType != "application/octet-stream" {
			document.FileType = &contentType
		}

		if err := h.storedDocumentRepo.Add(&document); err != nil {
			// Roll back the orphaned object so storage and table stay in step
			if cleanupErr := h.storage.Delete(r.Context(), key); cleanupErr != nil {
				h.logger.Error().Err(cleanupErr).Str("key", key).Msg("Failed to clean up orphaned upload")
			}
			h.responder.WriteError(w, wrapDatabaseError("create document", "stored document", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, document)
	}
}

// deleteDocument removes the metadata row and the stored object
func (h documentHandler) deleteDocument() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		documentID, err := uuid.Parse(chi.URLParam(r, "documentID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid documentID"))
			return
		}

		document, err := h.storedDocumentRepo.FindByID(documentID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find document", "stored document", err))
			return
		}
		if document == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("document not found"))
			return
		}

		if h.storage != nil {
			if err := h.storage.Delete(r.Context(), document.FilePath); err != nil {
				// Keep going: a dangling object beats a dangling row
				h.logger.Error().Err(err).Str("key", document.FilePath).Msg("Failed to delete stored object")
			}
		}

		if err := h.storedDocumentRepo.Delete(documentID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete document", "stored document", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "document deleted successfully",
		})
	}
}
