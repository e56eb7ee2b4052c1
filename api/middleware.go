package api

import (
	"net/http"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/devan2636/astrodev-backend/database"
	"github.com/devan2636/astrodev-backend/errs"
)

type authMiddleware struct {
	responder   Responder
	issuer      tokenIssuer
	profileRepo *database.ProfileRepo
}

func newAuthMiddleware(issuer tokenIssuer, profileRepo *database.ProfileRepo) authMiddleware {
	logger := log.With().Str("handlerName", "authMiddleware").Logger()
	return authMiddleware{
		responder:   NewResponder(logger),
		issuer:      issuer,
		profileRepo: profileRepo,
	}
}

// authenticate resolves the bearer token to a profile and stores it on the
// request context. This is the single session authority: every downstream
// handler reads the same profile instead of re-checking auth state.
func (m authMiddleware) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			m.responder.WriteError(w, errs.NewMissingTokenError())
			return
		}

		raw := strings.TrimPrefix(authHeader, "Bearer ")
		profileID, err := m.issuer.ParseSession(raw)
		if err != nil {
			m.responder.WriteError(w, err)
			return
		}

		// Role comes from the profile row, not the token, so a demotion takes
		// effect on the next request rather than at token expiry.
		profile, err := m.profileRepo.FindByID(profileID)
		if err != nil {
			m.responder.WriteError(w, wrapDatabaseError("find profile", "profile", err))
			return
		}
		if profile == nil {
			m.responder.WriteError(w, errs.NewUnauthorizedError("profile no longer exists"))
			return
		}

		next.ServeHTTP(w, r.WithContext(ctxWithProfile(r.Context(), profile)))
	})
}

// requireAdmin refuses authenticated sessions whose role is not admin. The
// refusal is the access-denied variant so clients drop the session instead of
// retrying.
func (m authMiddleware) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		profile := ctxGetProfile(r.Context())
		if profile == nil {
			m.responder.WriteError(w, errs.NewMissingTokenError())
			return
		}
		if !profile.IsAdmin() {
			m.responder.WriteError(w, errs.NewAccessDeniedError("only admins may access this console"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusResponseWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (w *statusResponseWriter) WriteHeader(statusCode int) {
	if !w.wroteHeader {
		w.status = statusCode
		w.wroteHeader = true
		w.ResponseWriter.WriteHeader(statusCode)
	}
}

func LogInternalServerErrors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		srw := &statusResponseWriter{ResponseWriter: w, status: 200}

		defer func() {
			if err := recover(); err != nil {
				log.Error().
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Interface("panic", err).
					Str("stack", string(debug.Stack())).
					Msg("Recovered from panic")

				// Write 500 if nothing written yet
				if !srw.wroteHeader {
					srw.WriteHeader(http.StatusInternalServerError)
				}
			}
		}()

		next.ServeHTTP(srw, r)

		// Log 500s that weren't panics (e.g. manually set by handlers)
		if srw.status == http.StatusInternalServerError {
			log.Error().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("500 error response")
		}
	})
}

// ColoredHTTPLoggingMiddleware logs HTTP requests with colored output based on status codes
func ColoredHTTPLoggingMiddleware(next http.Handler) http.Handler {
	colorLogger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).With().Timestamp().Logger()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		srw := &statusResponseWriter{ResponseWriter: w, status: 200}

		next.ServeHTTP(srw, r)

		duration := time.Since(start)

		var logEvent *zerolog.Event
		switch {
		case srw.status >= 500:
			logEvent = colorLogger.Error()
		case srw.status >= 400:
			logEvent = colorLogger.Warn()
		default:
			logEvent = colorLogger.Info()
		}

		logEvent.
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", srw.status).
			Dur("duration", duration).
			Str("remote_addr", r.RemoteAddr).
			Msg("HTTP Request")
	})
}
