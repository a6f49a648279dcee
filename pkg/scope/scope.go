package scope

import (
	"context"

	"cloud-srv/internal/model"
)

type contextKey struct{}

var scopeKey contextKey

// SetScopeToContext attaches a request scope to the context.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, scopeKey, sc)
}

// GetScopeFromContext returns the request scope, or a zero Scope when the
// request was never authenticated.
func GetScopeFromContext(ctx context.Context) model.Scope {
	sc, ok := ctx.Value(scopeKey).(model.Scope)
	if !ok {
		return model.Scope{}
	}
	return sc
}

// HasScope reports whether an authenticated scope is present on the context.
func HasScope(ctx context.Context) bool {
	_, ok := ctx.Value(scopeKey).(model.Scope)
	return ok
}
