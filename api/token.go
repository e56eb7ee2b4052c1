package api

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/devan2636/astrodev-backend/errs"
	"github.com/devan2636/astrodev-backend/models"
)

// Token kinds. Session tokens carry a profile identity; document tokens grant
// access to exactly one unlocked shared document and expire quickly.
const (
	tokenKindSession  = "session"
	tokenKindDocument = "document"
)

type tokenClaims struct {
	Kind string `json:"kind"`
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

type tokenIssuer struct {
	secret      []byte
	sessionTTL  time.Duration
	documentTTL time.Duration
}

func newTokenIssuer(secret string, sessionTTL, documentTTL time.Duration) tokenIssuer {
	return tokenIssuer{
		secret:      []byte(secret),
		sessionTTL:  sessionTTL,
		documentTTL: documentTTL,
	}
}

func (t tokenIssuer) sign(claims tokenClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// IssueSession mints a bearer token for a signed-in profile.
func (t tokenIssuer) IssueSession(profile *models.Profile) (string, error) {
	now := time.Now()
	return t.sign(tokenClaims{
		Kind: tokenKindSession,
		Role: profile.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   profile.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.sessionTTL)),
		},
	})
}

// IssueDocumentAccess mints a short-lived token proving one shared document
// was unlocked with the correct password.
func (t tokenIssuer) IssueDocumentAccess(documentID uuid.UUID) (string, error) {
	now := time.Now()
	return t.sign(tokenClaims{
		Kind: tokenKindDocument,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   documentID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.documentTTL)),
		},
	})
}

func (t tokenIssuer) parse(raw, wantKind string) (uuid.UUID, *tokenClaims, error) {
	var claims tokenClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.ErrInvalidToken
		}
		return t.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, nil, errs.NewExpiredTokenError()
		}
		return uuid.Nil, nil, errs.NewInvalidTokenError()
	}
	if claims.Kind != wantKind {
		return uuid.Nil, nil, errs.NewInvalidTokenError()
	}

	subject, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, nil, errs.NewInvalidTokenError()
	}
	return subject, &claims, nil
}

// ParseSession validates a session token and returns the profile id it names.
func (t tokenIssuer) ParseSession(raw string) (uuid.UUID, error) {
	profileID, _, err := t.parse(raw, tokenKindSession)
	return profileID, err
}

// ParseDocumentAccess validates a document access token and returns the
// shared document id it unlocks.
func (t tokenIssuer) ParseDocumentAccess(raw string) (uuid.UUID, error) {
	documentID, _, err := t.parse(raw, tokenKindDocument)
	return documentID, err
}
