package ports

import (
	"context"
	"time"

	"github.com/timecard-app/timecard/internal/domain"
)

// UserRepository defines persistence for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

// ProjectRepository defines persistence for projects.
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id domain.ProjectID) (*domain.Project, error)
	// List returns projects; includeSuppressed controls whether soft-deleted
	// projects appear.
	List(ctx context.Context, includeSuppressed bool) ([]*domain.Project, error)
	Update(ctx context.Context, project *domain.Project) error
	// SystemProject returns the built-in default bucket (e.g. Holiday).
	SystemProject(ctx context.Context) (*domain.Project, error)
}

// AssignmentRepository defines persistence for worker-project links.
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *domain.ProjectAssignment) error
	GetByID(ctx context.Context, id domain.AssignmentID) (*domain.ProjectAssignment, error)
	// ListByUser returns the user's assignments; activeOnly excludes
	// suppressed links.
	ListByUser(ctx context.Context, userID domain.UserID, activeOnly bool) ([]*domain.ProjectAssignment, error)
	ListByProject(ctx context.Context, projectID domain.ProjectID, activeOnly bool) ([]*domain.ProjectAssignment, error)
	SetSuppressed(ctx context.Context, id domain.AssignmentID, suppressed bool) error
}

// EntryRepository defines persistence for time entries.
type EntryRepository interface {
	Create(ctx context.Context, entry *domain.TimeEntry) error
	GetByID(ctx context.Context, id domain.EntryID) (*domain.TimeEntry, error)
	Update(ctx context.Context, entry *domain.TimeEntry) error
	Delete(ctx context.Context, id domain.EntryID) error
	ListForUserDate(ctx context.Context, userID domain.UserID, date string) ([]domain.TimeEntry, error)
	// ListForUserRange returns the user's entries with from <= date <= to.
	ListForUserRange(ctx context.Context, userID domain.UserID, from, to string) ([]domain.TimeEntry, error)
	ListForProjectRange(ctx context.Context, projectID domain.ProjectID, from, to string) ([]domain.TimeEntry, error)
	// ReplaceForDate atomically swaps every entry for (user, date) with the
	// given set: delete-then-insert in one transaction.
	ReplaceForDate(ctx context.Context, userID domain.UserID, date string, entries []domain.TimeEntry) error
}

// CalendarRepository defines persistence for day-type overrides.
type CalendarRepository interface {
	// Upsert sets the day type for a date, replacing any prior override.
	Upsert(ctx context.Context, day *domain.CalendarDay) error
	// ListRange returns overrides with from <= date <= to.
	ListRange(ctx context.Context, from, to string) ([]domain.CalendarDay, error)
}

// SessionRepository defines storage for login sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	GetByID(ctx context.Context, id domain.SessionID) (*domain.Session, error)
	Delete(ctx context.Context, id domain.SessionID) error
	UpdateActiveRole(ctx context.Context, id domain.SessionID, role domain.Role) error
	// DeleteExpired removes sessions with expires_at at or before now and
	// reports how many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
