package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/devan2636/astrodev-backend/database"
	"github.com/devan2636/astrodev-backend/errs"
	"github.com/devan2636/astrodev-backend/models"
)

type authHandler struct {
	responder   Responder
	logger      zerolog.Logger
	profileRepo *database.ProfileRepo
	issuer      tokenIssuer
}

func newAuthHandler(profileRepo *database.ProfileRepo, issuer tokenIssuer) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		profileRepo: profileRepo,
		issuer:      issuer,
	}
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInResponse struct {
	Token   string          `json:"token"`
	Profile *models.Profile `json:"profile"`
}

// signIn exchanges email/password for a bearer session token. The profile
// row is touched on every successful sign-in so last_sign_in_at stays
// current; nothing is ever duplicated because email is the lookup key.
func (h authHandler) signIn() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload signInRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		email := strings.TrimSpace(strings.ToLower(payload.Email))
		if email == "" || payload.Password == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("email and password are required"))
			return
		}

		profile, err := h.profileRepo.FindByEmail(email)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find profile", "profile", err))
			return
		}
		// Same response for unknown email and wrong password
		if profile == nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid email or password"))
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(payload.Password)); err != nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid email or password"))
			return
		}

		now := time.Now().UTC()
		if err := h.profileRepo.TouchSignIn(profile.ID, now); err != nil {
			// Sign-in still succeeds; the timestamp is best effort
			h.logger.Error().Err(err).Str("email", email).Msg("Failed to record sign-in time")
		}
		profile.LastSignInAt = &now

		token, err := h.issuer.IssueSession(profile)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("failed to issue session token"))
			return
		}

		h.responder.WriteJSON(w, signInResponse{Token: token, Profile: profile})
	}
}

// session returns the profile behind the presented bearer token, letting the
// client re-check its session and role after a reload or token refresh.
func (h authHandler) session() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile := ctxGetProfile(r.Context())
		if profile == nil {
			h.responder.WriteError(w, errs.NewMissingTokenError())
			return
		}
		h.responder.WriteJSON(w, profile)
	}
}
