// Package identity carries the authenticated user of a request.
package identity

import (
	"context"
)

type contextKey struct{}

// WithUserID returns a copy of ctx which carries the authenticated user id.
func WithUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// UserID returns the authenticated user id. ok is false for anonymous requests.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(contextKey{}).(string)
	if !ok || id == "" {
		return "", false
	}

	return id, true
}
