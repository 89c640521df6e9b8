// Package manage holds the admin use cases: projects, worker-project
// assignments and the working-day calendar.
package manage

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/timecard-app/timecard/internal/application/ports"
	"github.com/timecard-app/timecard/internal/domain"
	domerrors "github.com/timecard-app/timecard/internal/domain/errors"
	"github.com/timecard-app/timecard/internal/validate"
)

type CreateProjectInput struct {
	Name  string
	Color string
}

type CreateProject struct {
	projects ports.ProjectRepository
}

func NewCreateProject(projects ports.ProjectRepository) *CreateProject {
	return &CreateProject{projects: projects}
}

func (uc *CreateProject) Execute(ctx context.Context, input CreateProjectInput) (*domain.Project, error) {
	if !validate.ProjectName(input.Name) {
		return nil, domerrors.ErrInvalidProjectName
	}
	now := time.Now()
	project := &domain.Project{
		ID:        domain.NewProjectID(uuid.New()),
		Name:      strings.TrimSpace(input.Name),
		Color:     input.Color,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.projects.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// ListProjects returns the project catalogue, optionally including
// suppressed rows.
type ListProjects struct {
	projects ports.ProjectRepository
}

func NewListProjects(projects ports.ProjectRepository) *ListProjects {
	return &ListProjects{projects: projects}
}

func (uc *ListProjects) Execute(ctx context.Context, includeSuppressed bool) ([]*domain.Project, error) {
	return uc.projects.List(ctx, includeSuppressed)
}

type UpdateProjectInput struct {
	ProjectID domain.ProjectID
	Name      string
	Color     string
}

type UpdateProject struct {
	projects ports.ProjectRepository
}

func NewUpdateProject(projects ports.ProjectRepository) *UpdateProject {
	return &UpdateProject{projects: projects}
}

func (uc *UpdateProject) Execute(ctx context.Context, input UpdateProjectInput) (*domain.Project, error) {
	project, err := uc.projects.GetByID(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domerrors.ErrNotFound
	}
	name := strings.TrimSpace(input.Name)
	if project.IsSystem && name != project.Name {
		return nil, domerrors.ErrSystemProject
	}
	if !validate.ProjectName(name) {
		return nil, domerrors.ErrInvalidProjectName
	}
	project.Name = name
	project.Color = input.Color
	project.UpdatedAt = time.Now()
	if err := uc.projects.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// SuppressProject soft-deletes a project: it disappears from active lists
// while historical entries keep aggregating.
type SuppressProject struct {
	projects ports.ProjectRepository
}

func NewSuppressProject(projects ports.ProjectRepository) *SuppressProject {
	return &SuppressProject{projects: projects}
}

func (uc *SuppressProject) Execute(ctx context.Context, id domain.ProjectID) error {
	project, err := uc.projects.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if project == nil {
		return domerrors.ErrNotFound
	}
	if project.IsSystem {
		return domerrors.ErrSystemProject
	}
	project.Suppressed = true
	project.UpdatedAt = time.Now()
	return uc.projects.Update(ctx, project)
}
