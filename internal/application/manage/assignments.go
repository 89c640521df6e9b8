package manage

import (
	"context"

	"github.com/google/uuid"

	"github.com/timecard-app/timecard/internal/application/ports"
	"github.com/timecard-app/timecard/internal/domain"
	domerrors "github.com/timecard-app/timecard/internal/domain/errors"
)

type AssignProjectInput struct {
	UserID    domain.UserID
	ProjectID domain.ProjectID
}

type AssignProject struct {
	assignments ports.AssignmentRepository
	users       ports.UserRepository
	projects    ports.ProjectRepository
}

func NewAssignProject(assignments ports.AssignmentRepository, users ports.UserRepository, projects ports.ProjectRepository) *AssignProject {
	return &AssignProject{assignments: assignments, users: users, projects: projects}
}

func (uc *AssignProject) Execute(ctx context.Context, input AssignProjectInput) (*domain.ProjectAssignment, error) {
	user, err := uc.users.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domerrors.ErrUserNotFound
	}
	project, err := uc.projects.GetByID(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domerrors.ErrNotFound
	}
	assignment := &domain.ProjectAssignment{
		ID:        domain.NewAssignmentID(uuid.New()),
		UserID:    input.UserID,
		ProjectID: input.ProjectID,
	}
	if err := uc.assignments.Create(ctx, assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

// SuppressAssignment soft-deletes a worker-project link; the worker's
// historical entries on the project stay valid for reporting.
type SuppressAssignment struct {
	assignments ports.AssignmentRepository
}

func NewSuppressAssignment(assignments ports.AssignmentRepository) *SuppressAssignment {
	return &SuppressAssignment{assignments: assignments}
}

func (uc *SuppressAssignment) Execute(ctx context.Context, id domain.AssignmentID) error {
	assignment, err := uc.assignments.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if assignment == nil {
		return domerrors.ErrNotFound
	}
	return uc.assignments.SetSuppressed(ctx, id, true)
}
