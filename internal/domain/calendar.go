package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DayType classifies a calendar date for required-hours purposes.
type DayType string

const (
	DayTypeWorkday       DayType = "workday"
	DayTypePublicHoliday DayType = "public_holiday"
	DayTypeWeekend       DayType = "weekend"
)

// ParseDayType returns the DayType for s or an error for unknown values.
func ParseDayType(s string) (DayType, error) {
	switch DayType(s) {
	case DayTypeWorkday, DayTypePublicHoliday, DayTypeWeekend:
		return DayType(s), nil
	}
	return "", fmt.Errorf("unknown day type %q", s)
}

// CalendarDay is a sparse override for one date. Dates without a row fall
// back to the weekday default (Saturday/Sunday are weekend, everything else
// is a workday).
type CalendarDay struct {
	Date    string
	DayType DayType
}

// SessionID is a value object for session identity.
type SessionID struct{ uuid.UUID }

// NewSessionID creates a new SessionID from uuid.
func NewSessionID(id uuid.UUID) SessionID { return SessionID{UUID: id} }

// String returns the canonical string form.
func (s SessionID) String() string { return s.UUID.String() }

// Session is one logged-in browser session, stored server-side and referenced
// by an opaque cookie. Expired rows are removed by the hourly sweep.
type Session struct {
	ID         SessionID
	UserID     UserID
	ActiveRole Role
	ExpiresAt  time.Time
	CreatedAt  time.Time
}

// Expired reports whether the session has passed its expiry at the given time.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
