package middleware

import (
	"context"

	"github.com/amirhosseinghanipour/timesheet/internal/domain"
)

type contextKey string

const identityContextKey contextKey = "identity"

// WithIdentity injects the authenticated caller into the context.
func WithIdentity(ctx context.Context, identity *domain.Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, identity)
}

// IdentityFromContext returns the caller set by the session guard, or nil.
func IdentityFromContext(ctx context.Context) *domain.Identity {
	v := ctx.Value(identityContextKey)
	if v == nil {
		return nil
	}
	id, _ := v.(*domain.Identity)
	return id
}
