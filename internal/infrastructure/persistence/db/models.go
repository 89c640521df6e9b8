// Package db holds the row shapes scanned out of postgres, kept separate
// from the domain types they convert into.
package db

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID
	Email     string
	Roles     []string
	CreatedAt time.Time
}

type Project struct {
	ID         uuid.UUID
	Name       string
	Color      string
	Suppressed bool
	IsSystem   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type ProjectAssignment struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	ProjectID  uuid.UUID
	Suppressed bool
}

type TimeEntry struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ProjectID uuid.UUID
	EntryDate time.Time
	Minutes   int32
	Comment   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CalendarDay struct {
	Day     time.Time
	DayType string
}

type Session struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	ActiveRole string
	ExpiresAt  time.Time
	CreatedAt  time.Time
}
