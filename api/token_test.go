package api

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/devan2636/astrodev-backend/errs"
	"github.com/devan2636/astrodev-backend/models"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := newTokenIssuer(testSecret, time.Hour, 15*time.Minute)
	profile := &models.Profile{ID: uuid.New(), Role: models.RoleAdmin}

	session, err := issuer.IssueSession(profile)
	require.NoError(t, err)
	profileID, err := issuer.ParseSession(session)
	require.NoError(t, err)
	require.Equal(t, profile.ID, profileID)

	documentID := uuid.New()
	access, err := issuer.IssueDocumentAccess(documentID)
	require.NoError(t, err)
	parsed, err := issuer.ParseDocumentAccess(access)
	require.NoError(t, err)
	require.Equal(t, documentID, parsed)
}

// A session token must never pass as a document unlock, and vice versa.
func TestTokenKindsAreNotInterchangeable(t *testing.T) {
	issuer := newTokenIssuer(testSecret, time.Hour, 15*time.Minute)

	session, err := issuer.IssueSession(&models.Profile{ID: uuid.New(), Role: models.RoleUser})
	require.NoError(t, err)
	_, err = issuer.ParseDocumentAccess(session)
	require.ErrorIs(t, err, errs.ErrInvalidToken)

	access, err := issuer.IssueDocumentAccess(uuid.New())
	require.NoError(t, err)
	_, err = issuer.ParseSession(access)
	require.ErrorIs(t, err, errs.ErrInvalidToken)
}

func TestExpiredTokenIsRejected(t *testing.T) {
	issuer := newTokenIssuer(testSecret, time.Hour, -time.Minute)

	access, err := issuer.IssueDocumentAccess(uuid.New())
	require.NoError(t, err)

	_, err = issuer.ParseDocumentAccess(access)
	require.ErrorIs(t, err, errs.ErrExpiredToken)

	var apiErr *errs.ApiErr
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, 401, apiErr.StatusCode)
}

func TestTokenSignedWithDifferentSecretIsRejected(t *testing.T) {
	issuer := newTokenIssuer(testSecret, time.Hour, 15*time.Minute)
	other := newTokenIssuer("another-secret", time.Hour, 15*time.Minute)

	session, err := other.IssueSession(&models.Profile{ID: uuid.New(), Role: models.RoleAdmin})
	require.NoError(t, err)

	_, err = issuer.ParseSession(session)
	require.ErrorIs(t, err, errs.ErrInvalidToken)
}
