package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/timecard-app/timecard/internal/authz"
	"github.com/timecard-app/timecard/internal/domain"
)

// RequireRole gates a route group on the authorization check: 401 without a
// principal, 403 when the principal's role set misses every required role.
// With no roles given, any authenticated principal passes.
func RequireRole(required ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal := PrincipalFromContext(r.Context())
			switch authz.Authorize(principal, required...) {
			case authz.Allowed:
				next.ServeHTTP(w, r)
			case authz.Unauthenticated:
				writeErr(w, http.StatusUnauthorized, "authentication required")
			case authz.Forbidden:
				writeErr(w, http.StatusForbidden, "insufficient role")
			}
		})
	}
}

func writeErr(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
