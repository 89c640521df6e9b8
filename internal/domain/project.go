package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProjectID is a value object for project identity.
type ProjectID struct{ uuid.UUID }

// NewProjectID creates a new ProjectID from uuid.
func NewProjectID(id uuid.UUID) ProjectID { return ProjectID{UUID: id} }

// String returns the canonical string form.
func (p ProjectID) String() string { return p.UUID.String() }

// Project is a bookable bucket of work. System projects (e.g. the Holiday
// bucket) are created by migration and are immutable from the regular edit
// flows: their name and suppression cannot be changed.
type Project struct {
	ID         ProjectID
	Name       string
	Color      string
	Suppressed bool
	IsSystem   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// AssignmentID is a value object for assignment identity.
type AssignmentID struct{ uuid.UUID }

// NewAssignmentID creates a new AssignmentID from uuid.
func NewAssignmentID(id uuid.UUID) AssignmentID { return AssignmentID{UUID: id} }

// String returns the canonical string form.
func (a AssignmentID) String() string { return a.UUID.String() }

// ProjectAssignment links a user to a project they may book time on.
// Suppressed is a soft delete: the link stops appearing in active lists but
// historical time entries keep referring to it.
type ProjectAssignment struct {
	ID         AssignmentID
	UserID     UserID
	ProjectID  ProjectID
	Suppressed bool
}
