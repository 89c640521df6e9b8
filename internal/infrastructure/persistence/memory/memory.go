// Package memory holds in-memory implementations of the repository ports,
// used by tests and by local development without a database.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/timecard-app/timecard/internal/application/ports"
	"github.com/timecard-app/timecard/internal/domain"
	domerrors "github.com/timecard-app/timecard/internal/domain/errors"
)

// Store bundles every repository over one mutex-guarded data set.
type Store struct {
	mu          sync.RWMutex
	users       map[domain.UserID]*domain.User
	projects    map[domain.ProjectID]*domain.Project
	projectIDs  []domain.ProjectID
	assignments map[domain.AssignmentID]*domain.ProjectAssignment
	assignIDs   []domain.AssignmentID
	entries     map[domain.EntryID]*domain.TimeEntry
	calendar    map[string]domain.DayType
	sessions    map[domain.SessionID]*domain.Session
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		users:       make(map[domain.UserID]*domain.User),
		projects:    make(map[domain.ProjectID]*domain.Project),
		assignments: make(map[domain.AssignmentID]*domain.ProjectAssignment),
		entries:     make(map[domain.EntryID]*domain.TimeEntry),
		calendar:    make(map[string]domain.DayType),
		sessions:    make(map[domain.SessionID]*domain.Session),
	}
}

// Users returns the user repository view of the store.
func (s *Store) Users() ports.UserRepository { return (*userRepo)(s) }

// Projects returns the project repository view of the store.
func (s *Store) Projects() ports.ProjectRepository { return (*projectRepo)(s) }

// Assignments returns the assignment repository view of the store.
func (s *Store) Assignments() ports.AssignmentRepository { return (*assignmentRepo)(s) }

// Entries returns the entry repository view of the store.
func (s *Store) Entries() ports.EntryRepository { return (*entryRepo)(s) }

// Calendar returns the calendar repository view of the store.
func (s *Store) Calendar() ports.CalendarRepository { return (*calendarRepo)(s) }

// Sessions returns the session repository view of the store.
func (s *Store) Sessions() ports.SessionRepository { return (*sessionRepo)(s) }

type userRepo Store

func (r *userRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return domerrors.ErrDuplicateName
		}
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *userRepo) GetByID(_ context.Context, id domain.UserID) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *userRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *userRepo) List(_ context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

type projectRepo Store

func (r *projectRepo) Create(_ context.Context, project *domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.projects {
		if p.Name == project.Name {
			return domerrors.ErrDuplicateName
		}
	}
	cp := *project
	r.projects[project.ID] = &cp
	r.projectIDs = append(r.projectIDs, project.ID)
	return nil
}

func (r *projectRepo) GetByID(_ context.Context, id domain.ProjectID) (*domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if p, ok := r.projects[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *projectRepo) List(_ context.Context, includeSuppressed bool) ([]*domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Project, 0, len(r.projectIDs))
	for _, id := range r.projectIDs {
		p := r.projects[id]
		if !includeSuppressed && p.Suppressed {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *projectRepo) Update(_ context.Context, project *domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.projects[project.ID]; !ok {
		return domerrors.ErrNotFound
	}
	for _, p := range r.projects {
		if p.Name == project.Name && p.ID != project.ID {
			return domerrors.ErrDuplicateName
		}
	}
	cp := *project
	r.projects[project.ID] = &cp
	return nil
}

func (r *projectRepo) SystemProject(_ context.Context) (*domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.projectIDs {
		if p := r.projects[id]; p.IsSystem {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

type assignmentRepo Store

func (r *assignmentRepo) Create(_ context.Context, assignment *domain.ProjectAssignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.assignments {
		if a.UserID == assignment.UserID && a.ProjectID == assignment.ProjectID {
			return domerrors.ErrDuplicateAssignment
		}
	}
	cp := *assignment
	r.assignments[assignment.ID] = &cp
	r.assignIDs = append(r.assignIDs, assignment.ID)
	return nil
}

func (r *assignmentRepo) GetByID(_ context.Context, id domain.AssignmentID) (*domain.ProjectAssignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if a, ok := r.assignments[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func (r *assignmentRepo) ListByUser(_ context.Context, userID domain.UserID, activeOnly bool) ([]*domain.ProjectAssignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domain.ProjectAssignment
	for _, id := range r.assignIDs {
		a := r.assignments[id]
		if a.UserID != userID {
			continue
		}
		if activeOnly && a.Suppressed {
			continue
		}
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

func (r *assignmentRepo) ListByProject(_ context.Context, projectID domain.ProjectID, activeOnly bool) ([]*domain.ProjectAssignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domain.ProjectAssignment
	for _, id := range r.assignIDs {
		a := r.assignments[id]
		if a.ProjectID != projectID {
			continue
		}
		if activeOnly && a.Suppressed {
			continue
		}
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

func (r *assignmentRepo) SetSuppressed(_ context.Context, id domain.AssignmentID, suppressed bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.assignments[id]
	if !ok {
		return domerrors.ErrNotFound
	}
	a.Suppressed = suppressed
	return nil
}

type entryRepo Store

func (r *entryRepo) Create(_ context.Context, entry *domain.TimeEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *entry
	r.entries[entry.ID] = &cp
	return nil
}

func (r *entryRepo) GetByID(_ context.Context, id domain.EntryID) (*domain.TimeEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if e, ok := r.entries[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, nil
}

func (r *entryRepo) Update(_ context.Context, entry *domain.TimeEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[entry.ID]; !ok {
		return domerrors.ErrNotFound
	}
	cp := *entry
	r.entries[entry.ID] = &cp
	return nil
}

func (r *entryRepo) Delete(_ context.Context, id domain.EntryID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[id]; !ok {
		return domerrors.ErrNotFound
	}
	delete(r.entries, id)
	return nil
}

func (r *entryRepo) ListForUserDate(_ context.Context, userID domain.UserID, date string) ([]domain.TimeEntry, error) {
	return r.list(func(e *domain.TimeEntry) bool {
		return e.UserID == userID && e.Date == date
	})
}

func (r *entryRepo) ListForUserRange(_ context.Context, userID domain.UserID, from, to string) ([]domain.TimeEntry, error) {
	return r.list(func(e *domain.TimeEntry) bool {
		return e.UserID == userID && e.Date >= from && e.Date <= to
	})
}

func (r *entryRepo) ListForProjectRange(_ context.Context, projectID domain.ProjectID, from, to string) ([]domain.TimeEntry, error) {
	return r.list(func(e *domain.TimeEntry) bool {
		return e.ProjectID == projectID && e.Date >= from && e.Date <= to
	})
}

func (r *entryRepo) list(keep func(*domain.TimeEntry) bool) ([]domain.TimeEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.TimeEntry
	for _, e := range r.entries {
		if keep(e) {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *entryRepo) ReplaceForDate(_ context.Context, userID domain.UserID, date string, entries []domain.TimeEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, e := range r.entries {
		if e.UserID == userID && e.Date == date {
			delete(r.entries, id)
		}
	}
	for _, e := range entries {
		cp := e
		r.entries[e.ID] = &cp
	}
	return nil
}

type calendarRepo Store

func (r *calendarRepo) Upsert(_ context.Context, day *domain.CalendarDay) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calendar[day.Date] = day.DayType
	return nil
}

func (r *calendarRepo) ListRange(_ context.Context, from, to string) ([]domain.CalendarDay, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.CalendarDay
	for date, dt := range r.calendar {
		if date >= from && date <= to {
			out = append(out, domain.CalendarDay{Date: date, DayType: dt})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

type sessionRepo Store

func (r *sessionRepo) Create(_ context.Context, session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *session
	r.sessions[session.ID] = &cp
	return nil
}

func (r *sessionRepo) GetByID(_ context.Context, id domain.SessionID) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if s, ok := r.sessions[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

func (r *sessionRepo) Delete(_ context.Context, id domain.SessionID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return domerrors.ErrNotFound
	}
	delete(r.sessions, id)
	return nil
}

func (r *sessionRepo) UpdateActiveRole(_ context.Context, id domain.SessionID, role domain.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return domerrors.ErrNotFound
	}
	s.ActiveRole = role
	return nil
}

func (r *sessionRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, s := range r.sessions {
		if !s.ExpiresAt.After(now) {
			delete(r.sessions, id)
			n++
		}
	}
	return n, nil
}

// Compile-time interface checks.
var (
	_ ports.UserRepository       = (*userRepo)(nil)
	_ ports.ProjectRepository    = (*projectRepo)(nil)
	_ ports.AssignmentRepository = (*assignmentRepo)(nil)
	_ ports.EntryRepository      = (*entryRepo)(nil)
	_ ports.CalendarRepository   = (*calendarRepo)(nil)
	_ ports.SessionRepository    = (*sessionRepo)(nil)
)
