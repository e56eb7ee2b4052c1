package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/devan2636/astrodev-backend/database"
	"github.com/devan2636/astrodev-backend/errs"
	"github.com/devan2636/astrodev-backend/models"
)

// Drive file ids are the first run of 25+ word characters or hyphens in the
// shared URL, regardless of which Drive URL shape the admin pasted.
var driveFileIDPattern = regexp.MustCompile(`[-\w]{25,}`)

type shareHandler struct {
	responder          Responder
	logger             zerolog.Logger
	sharedDocumentRepo *database.SharedDocumentRepo
	issuer             tokenIssuer
}

func newShareHandler(sharedDocumentRepo *database.SharedDocumentRepo, issuer tokenIssuer) shareHandler {
	logger := log.With().Str("handlerName", "shareHandler").Logger()

	return shareHandler{
		responder:          NewResponder(logger),
		logger:             logger,
		sharedDocumentRepo: sharedDocumentRepo,
		issuer:             issuer,
	}
}

func driveEmbedURL(driveURL string) (string, bool) {
	fileID := driveFileIDPattern.FindString(driveURL)
	if fileID == "" {
		return "", false
	}
	return fmt.Sprintf("https://drive.google.com/file/d/%s/preview", fileID), true
}

// SharedDocumentAdminView exposes the Drive URL to the admin console. The
// password hash stays hidden even there.
type SharedDocumentAdminView struct {
	models.SharedDocument
	GoogleDriveURL string `json:"google_drive_url"`
}

type unlockRequest struct {
	Password string `json:"password"`
}

type unlockResponse struct {
	Token            string `json:"token"`
	EmbedURL         string `json:"embed_url"`
	ExpiresInSeconds int    `json:"expires_in_seconds"`
}

// listDocuments returns shared document metadata for the public library.
// Passwords and Drive URLs never appear here; the viewer is only reachable
// through a successful unlock.
func (h shareHandler) listDocuments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		documents, err := h.sharedDocumentRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find documents", "shared documents", err))
			return
		}

		h.responder.WriteJSON(w, map[string]interface{}{
			"documents": documents,
			"total":     len(documents),
		})
	}
}

// unlockDocument checks the submitted password against the stored hash. A
// match yields a short-lived access token plus the embeddable viewer URL; a
// mismatch yields a 401 and reveals nothing.
func (h shareHandler) unlockDocument() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		documentID, err := uuid.Parse(chi.URLParam(r, "documentID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid documentID"))
			return
		}

		var payload unlockRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}
		if payload.Password == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("password"))
			return
		}

		document, err := h.sharedDocumentRepo.FindByID(documentID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find document", "shared document", err))
			return
		}
		if document == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("document not found"))
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(document.PasswordHash), []byte(payload.Password)); err != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("incorrect password"))
			return
		}

		embedURL, ok := driveEmbedURL(document.GoogleDriveURL)
		if !ok {
			h.responder.WriteError(w, errs.NewInternalError("document has no extractable file id"))
			return
		}

		token, err := h.issuer.IssueDocumentAccess(document.ID)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("failed to issue access token"))
			return
		}

		h.responder.WriteJSON(w, unlockResponse{
			Token:            token,
			EmbedURL:         embedURL,
			ExpiresInSeconds: int(h.issuer.documentTTL.Seconds()),
		})
	}
}

// previewDocument re-resolves the viewer URL for a still-valid access token,
// so the client can reopen the preview without prompting again.
func (h shareHandler) previewDocument() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		documentID, err := uuid.Parse(chi.URLParam(r, "documentID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid documentID"))
			return
		}

		unlockedID, err := h.issuer.ParseDocumentAccess(r.URL.Query().Get("token"))
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if unlockedID != documentID {
			h.responder.WriteError(w, errs.NewForbiddenError("token does not match document"))
			return
		}

		document, err := h.sharedDocumentRepo.FindByID(documentID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find document", "shared document", err))
			return
		}
		if document == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("document not found"))
			return
		}

		embedURL, ok := driveEmbedURL(document.GoogleDriveURL)
		if !ok {
			h.responder.WriteError(w, errs.NewInternalError("document has no extractable file id"))
			return
		}

		h.responder.WriteJSON(w, map[string]string{"embed_url": embedURL})
	}
}

type sharedDocumentRequest struct {
	Name           string  `json:"name"`
	GoogleDriveURL string  `json:"google_drive_url"`
	Password       string  `json:"password"`
	Description    *string `json:"description"`
	FileSize       *string `json:"file_size"`
	DisplayOrder   int     `json:"display_order"`
}

// listDocumentsAdmin includes the Drive URLs the console needs for editing
func (h shareHandler) listDocumentsAdmin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		documents, err := h.sharedDocumentRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find documents", "shared documents", err))
			return
		}

		views := make([]SharedDocumentAdminView, 0, len(documents))
		for _, document := range documents {
			views = append(views, SharedDocumentAdminView{SharedDocument: *document, GoogleDriveURL: document.GoogleDriveURL})
		}

		h.responder.WriteJSON(w, map[string]interface{}{
			"documents": views,
			"total":     len(views),
		})
	}
}

// createDocument stores a new password-gated document. The password is
// hashed before it touches the database.
func (h shareHandler) createDocument() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload sharedDocumentRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		payload.Name = strings.TrimSpace(payload.Name)
		if payload.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}
		if payload.Password == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("password"))
			return
		}
		if _, ok := driveEmbedURL(payload.GoogleDriveURL); !ok {
			h.responder.WriteError(w, errs.NewInvalidFieldError("google_drive_url", "no Drive file id found"))
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("failed to hash password"))
			return
		}

		document := models.SharedDocument{
			Name:           payload.Name,
			GoogleDriveURL: payload.GoogleDriveURL,
			PasswordHash:   string(hash),
			Description:    payload.Description,
			FileSize:       payload.FileSize,
			DisplayOrder:   payload.DisplayOrder,
		}
		if err := h.sharedDocumentRepo.Add(&document); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create document", "shared document", err))
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, SharedDocumentAdminView{SharedDocument: document, GoogleDriveURL: document.GoogleDriveURL})
	}
}

// updateDocument edits a shared document. An empty password keeps the
// existing hash.
func (h shareHandler) updateDocument() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		documentID, err := uuid.Parse(chi.URLParam(r, "documentID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid documentID"))
			return
		}

		document, err := h.sharedDocumentRepo.FindByID(documentID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find document", "shared document", err))
			return
		}
		if document == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("document not found"))
			return
		}

		var payload sharedDocumentRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		payload.Name = strings.TrimSpace(payload.Name)
		if payload.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}
		if _, ok := driveEmbedURL(payload.GoogleDriveURL); !ok {
			h.responder.WriteError(w, errs.NewInvalidFieldError("google_drive_url", "no Drive file id found"))
			return
		}

		document.Name = payload.Name
		document.GoogleDriveURL = payload.GoogleDriveURL
		document.Description = payload.Description
		document.FileSize = payload.FileSize
		document.DisplayOrder = payload.DisplayOrder

		if payload.Password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
			if err != nil {
				h.responder.WriteError(w, errs.NewInternalError("failed to hash password"))
				return
			}
			document.PasswordHash = string(hash)
		}

		if err := h.sharedDocumentRepo.Update(document); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update document", "shared document", err))
			return
		}

		h.responder.WriteJSON(w, SharedDocumentAdminView{SharedDocument: *document, GoogleDriveURL: document.GoogleDriveURL})
	}
}

// deleteDocument removes a shared document by ID
func (h shareHandler) deleteDocument() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		documentID, err := uuid.Parse(chi.URLParam(r, "documentID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid documentID"))
			return
		}

		document, err := h.sharedDocumentRepo.FindByID(documentID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find document", "shared document", err))
			return
		}
		if document == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("document not found"))
			return
		}

		if err := h.sharedDocumentRepo.Delete(documentID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete document", "shared document", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "document deleted successfully",
		})
	}
}
