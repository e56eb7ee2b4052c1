package api

import (
	"encoding/json"
	"net/http"
	"net/mail"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/devan2636/astrodev-backend/database"
	"github.com/devan2636/astrodev-backend/errs"
	"github.com/devan2636/astrodev-backend/models"
	"github.com/devan2636/astrodev-backend/services"
)

const recentMessageLimit = 50

type contactHandler struct {
	responder          Responder
	logger             zerolog.Logger
	contactMessageRepo *database.ContactMessageRepo
	mailer             *services.Mailer
	notifyEmail        string
}

func newContactHandler(contactMessageRepo *database.ContactMessageRepo, mailer *services.Mailer, notifyEmail string) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:          NewResponder(logger),
		logger:             logger,
		contactMessageRepo: contactMessageRepo,
		mailer:             mailer,
		notifyEmail:        notifyEmail,
	}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// validate trims the fields in place and returns one message per failing
// field. Any failure blocks the submission entirely.
func (c *contactRequest) validate() map[string]string {
	fields := map[string]string{}

	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Message = strings.TrimSpace(c.Message)

	switch {
	case c.Name == "":
		fields["name"] = "Name is required"
	case len(c.Name) > 100:
		fields["name"] = "Name is too long"
	}

	switch {
	case len(c.Email) > 255:
		fields["email"] = "Email is too long"
	default:
		if addr, err := mail.ParseAddress(c.Email); err != nil || addr.Address != c.Email {
			fields["email"] = "Invalid email address"
		}
	}

	switch {
	case c.Message == "":
		fields["message"] = "Message is required"
	case len(c.Message) > 1000:
		fields["message"] = "Message is too long"
	}

	if len(fields) == 0 {
		return nil
	}
	return fields
}

// submitMessage validates and stores one contact form submission. The owner
// notification email goes out in the background; a mail failure never fails
// the submission.
func (h contactHandler) submitMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload contactRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if fields := payload.validate(); fields != nil {
			h.responder.WriteFieldErrors(w, fields)
			return
		}

		message := models.ContactMessage{
			Name:    payload.Name,
			Email:   payload.Email,
			Message: payload.Message,
		}
		if err := h.contactMessageRepo.Add(&message); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create message", "contact message", err))
			return
		}

		if h.mailer != nil && h.notifyEmail != "" {
			go func(message models.ContactMessage) {
				subject, body := services.ContactNotification(message)
				if err := h.mailer.Send(subject, body, []string{h.notifyEmail}); err != nil {
					h.logger.Error().Err(err).Str("messageId", message.ID.String()).Msg("Failed to send contact notification")
				}
			}(message)
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, map[string]string{
			"status": "success",
			"id":     message.ID.String(),
		})
	}
}

// listMessages returns the most recent submissions for the admin console
func (h contactHandler) listMessages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		messages, err := h.contactMessageRepo.FindRecent(recentMessageLimit)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find messages", "contact messages", err))
			return
		}

		h.responder.WriteJSON(w, map[string]interface{}{
			"messages": messages,
			"total":    len(messages),
		})
	}
}
