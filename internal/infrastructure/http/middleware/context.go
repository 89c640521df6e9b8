package middleware

import (
	"context"

	"github.com/timecard-app/timecard/internal/domain"
)

type contextKey string

const (
	principalContextKey contextKey = "principal"
	sessionContextKey   contextKey = "session"
)

// WithPrincipal injects the resolved principal into the context.
func WithPrincipal(ctx context.Context, principal *domain.Principal) context.Context {
	return context.WithValue(ctx, principalContextKey, principal)
}

// PrincipalFromContext returns the principal from the context, or nil when
// the request carries no valid session.
func PrincipalFromContext(ctx context.Context) *domain.Principal {
	v := ctx.Value(principalContextKey)
	if v == nil {
		return nil
	}
	p, _ := v.(*domain.Principal)
	return p
}

// WithSession injects the resolved session into the context.
func WithSession(ctx context.Context, session *domain.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, session)
}

// SessionFromContext returns the session from the context, or nil.
func SessionFromContext(ctx context.Context) *domain.Session {
	v := ctx.Value(sessionContextKey)
	if v == nil {
		return nil
	}
	s, _ := v.(*domain.Session)
	return s
}
