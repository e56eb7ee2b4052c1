package api

import (
	"context"

	"github.com/devan2636/astrodev-backend/models"
)

type keyType string

const profileKey keyType = "profile"

// ctxWithProfile attaches the authenticated profile to the context. The auth
// middleware is the only writer, so handlers read one consistent identity per
// request instead of re-deriving session state themselves.
func ctxWithProfile(ctx context.Context, profile *models.Profile) context.Context {
	return context.WithValue(ctx, profileKey, profile)
}

// ctxGetProfile retrieves the authenticated profile, or nil outside the
// authenticated route group.
func ctxGetProfile(ctx context.Context) *models.Profile {
	if value := ctx.Value(profileKey); value != nil {
		if profile, ok := value.(*models.Profile); ok {
			return profile
		}
	}
	return nil
}
