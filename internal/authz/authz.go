// Package authz decides whether a request principal may reach a route.
package authz

import "github.com/timecard-app/timecard/internal/domain"

// Decision is the outcome of an authorization check.
type Decision int

const (
	// Allowed means the principal may proceed.
	Allowed Decision = iota
	// Unauthenticated means no principal is attached to the request (401).
	Unauthenticated
	// Forbidden means the principal holds none of the required roles (403).
	Forbidden
)

// String returns the decision name for logging.
func (d Decision) String() string {
	switch d {
	case Allowed:
		return "allowed"
	case Unauthenticated:
		return "unauthenticated"
	case Forbidden:
		return "forbidden"
	}
	return "unknown"
}

// Authorize checks the principal's role set against the route's required
// roles. The check is set intersection: holding any one required role is
// enough. An empty required list admits any authenticated principal.
func Authorize(principal *domain.Principal, required ...domain.Role) Decision {
	if principal == nil {
		return Unauthenticated
	}
	if len(required) == 0 {
		return Allowed
	}
	for _, role := range required {
		if principal.HasRole(role) {
			return Allowed
		}
	}
	return Forbidden
}
