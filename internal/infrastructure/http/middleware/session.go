package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/timecard-app/timecard/internal/application/ports"
	"github.com/timecard-app/timecard/internal/domain"
)

// SessionCookieName is the opaque session cookie set by login.
const SessionCookieName = "timecard_session"

// SessionResolver loads the session behind the request cookie and attaches
// the principal to the context. Requests without a valid session pass
// through unauthenticated; RequireRole decides whether that is an error.
type SessionResolver struct {
	sessions ports.SessionRepository
	users    ports.UserRepository
}

func NewSessionResolver(sessions ports.SessionRepository, users ports.UserRepository) *SessionResolver {
	return &SessionResolver{sessions: sessions, users: users}
}

func (m *SessionResolver) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookieName)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		sessionID, err := uuid.Parse(cookie.Value)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		session, err := m.sessions.GetByID(r.Context(), domain.NewSessionID(sessionID))
		if err != nil || session == nil || session.Expired(time.Now()) {
			next.ServeHTTP(w, r)
			return
		}
		user, err := m.users.GetByID(r.Context(), session.UserID)
		if err != nil || user == nil {
			next.ServeHTTP(w, r)
			return
		}
		principal := &domain.Principal{
			UserID:     user.ID,
			Email:      user.Email,
			Roles:      user.Roles,
			ActiveRole: session.ActiveRole,
		}
		ctx := WithPrincipal(r.Context(), principal)
		ctx = WithSession(ctx, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
