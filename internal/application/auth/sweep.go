package auth

import (
	"context"
	"time"

	"github.com/timecard-app/timecard/internal/application/ports"
)

// SweepExpiredSessions deletes sessions whose expiry has passed and reports
// how many were removed. Call periodically (the server runs it hourly); it
// only touches already-expired rows, so it is safe alongside normal traffic.
func SweepExpiredSessions(ctx context.Context, sessions ports.SessionRepository) (int64, error) {
	return sessions.DeleteExpired(ctx, time.Now())
}
