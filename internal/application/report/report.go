// Package report builds the manager-facing month tables: one worker across
// projects, or one project across workers.
package report

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/timecard-app/timecard/internal/aggregate"
	"github.com/timecard-app/timecard/internal/application/ports"
	"github.com/timecard-app/timecard/internal/domain"
	domerrors "github.com/timecard-app/timecard/internal/domain/errors"
	"github.com/timecard-app/timecard/internal/validate"
)

// Column is one table column with its display label resolved.
type Column struct {
	ID    uuid.UUID
	Label string
}

// Result is a month table plus resolved column labels.
type Result struct {
	Month   string
	Table   aggregate.Table
	Columns []Column
}

// UnknownLabel marks columns whose backing row no longer exists.
const UnknownLabel = "Unknown"

func monthRange(month string) (first, last string, err error) {
	if !validate.Month(month) {
		return "", "", domerrors.ErrInvalidMonth
	}
	t, _ := time.Parse(validate.MonthLayout, month)
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start.Format(validate.DateLayout), end.Format(validate.DateLayout), nil
}

// WorkerReport builds the per-date × per-project table for one worker.
type WorkerReport struct {
	entries     ports.EntryRepository
	assignments ports.AssignmentRepository
	projects    ports.ProjectRepository
	users       ports.UserRepository
}

func NewWorkerReport(entries ports.EntryRepository, assignments ports.AssignmentRepository, projects ports.ProjectRepository, users ports.UserRepository) *WorkerReport {
	return &WorkerReport{entries: entries, assignments: assignments, projects: projects, users: users}
}

func (uc *WorkerReport) Execute(ctx context.Context, workerID domain.UserID, month string) (*Result, error) {
	first, last, err := monthRange(month)
	if err != nil {
		return nil, err
	}
	worker, err := uc.users.GetByID(ctx, workerID)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, domerrors.ErrUserNotFound
	}

	entries, err := uc.entries.ListForUserRange(ctx, workerID, first, last)
	if err != nil {
		return nil, err
	}

	// Columns: the worker's assignments in creation order (suppressed links
	// included so historical months stay complete), then any project present
	// in the entries but not assigned (the system bucket, mostly).
	assignments, err := uc.assignments.ListByUser(ctx, workerID, false)
	if err != nil {
		return nil, err
	}
	var columns []domain.ProjectID
	seen := make(map[domain.ProjectID]bool)
	for _, a := range assignments {
		if !seen[a.ProjectID] {
			seen[a.ProjectID] = true
			columns = append(columns, a.ProjectID)
		}
	}
	for _, e := range entries {
		if !seen[e.ProjectID] {
			seen[e.ProjectID] = true
			columns = append(columns, e.ProjectID)
		}
	}

	all, err := uc.projects.List(ctx, true)
	if err != nil {
		return nil, err
	}
	names := make(map[domain.ProjectID]string, len(all))
	for _, p := range all {
		names[p.ID] = p.Name
	}

	labeled := make([]Column, 0, len(columns))
	for _, id := range columns {
		label, ok := names[id]
		if !ok {
			label = UnknownLabel
		}
		labeled = append(labeled, Column{ID: id.UUID, Label: label})
	}

	return &Result{
		Month:   month,
		Table:   aggregate.TableByProject(entries, columns),
		Columns: labeled,
	}, nil
}

// ProjectReport builds the per-date × per-worker table for one project.
type ProjectReport struct {
	entries     ports.EntryRepository
	assignments ports.AssignmentRepository
	projects    ports.ProjectRepository
	users       ports.UserRepository
}

func NewProjectReport(entries ports.EntryRepository, assignments ports.AssignmentRepository, projects ports.ProjectRepository, users ports.UserRepository) *ProjectReport {
	return &ProjectReport{entries: entries, assignments: assignments, projects: projects, users: users}
}

func (uc *ProjectReport) Execute(ctx context.Context, projectID domain.ProjectID, month string) (*Result, error) {
	first, last, err := monthRange(month)
	if err != nil {
		return nil, err
	}
	project, err := uc.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domerrors.ErrNotFound
	}

	entries, err := uc.entries.ListForProjectRange(ctx, projectID, first, last)
	if err != nil {
		return nil, err
	}

	assignments, err := uc.assignments.ListByProject(ctx, projectID, false)
	if err != nil {
		return nil, err
	}
	var columns []domain.UserID
	seen := make(map[domain.UserID]bool)
	for _, a := range assignments {
		if !seen[a.UserID] {
			seen[a.UserID] = true
			columns = append(columns, a.UserID)
		}
	}
	for _, e := range entries {
		if !seen[e.UserID] {
			seen[e.UserID] = true
			columns = append(columns, e.UserID)
		}
	}

	labeled := make([]Column, 0, len(columns))
	for _, id := range columns {
		label := UnknownLabel
		if u, err := uc.users.GetByID(ctx, id); err != nil {
			return nil, err
		} else if u != nil {
			label = u.Email
		}
		labeled = append(labeled, Column{ID: id.UUID, Label: label})
	}

	return &Result{
		Month:   month,
		Table:   aggregate.TableByUser(entries, columns),
		Columns: labeled,
	}, nil
}
