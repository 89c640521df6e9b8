// Package timesheet holds the worker-facing use cases: logging, editing and
// batch-replacing the entries of a day, and the day/month summaries.
package timesheet

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/timecard-app/timecard/internal/application/ports"
	"github.com/timecard-app/timecard/internal/domain"
	domerrors "github.com/timecard-app/timecard/internal/domain/errors"
	"github.com/timecard-app/timecard/internal/validate"
)

type AddEntryInput struct {
	UserID    domain.UserID
	ProjectID domain.ProjectID
	Date      string
	Minutes   int
	Comment   string
}

type AddEntry struct {
	entries     ports.EntryRepository
	assignments ports.AssignmentRepository
	projects    ports.ProjectRepository
}

func NewAddEntry(entries ports.EntryRepository, assignments ports.AssignmentRepository, projects ports.ProjectRepository) *AddEntry {
	return &AddEntry{entries: entries, assignments: assignments, projects: projects}
}

func (uc *AddEntry) Execute(ctx context.Context, input AddEntryInput) (*domain.TimeEntry, error) {
	if !validate.Date(input.Date) {
		return nil, domerrors.ErrInvalidDate
	}
	if !validate.Minutes(input.Minutes) {
		return nil, domerrors.ErrInvalidMinutes
	}
	ok, err := userMayBook(ctx, uc.assignments, uc.projects, input.UserID, input.ProjectID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domerrors.ErrNotAssigned
	}
	now := time.Now()
	entry := &domain.TimeEntry{
		ID:        domain.NewEntryID(uuid.New()),
		UserID:    input.UserID,
		ProjectID: input.ProjectID,
		Date:      input.Date,
		Minutes:   input.Minutes,
		Comment:   input.Comment,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.entries.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// userMayBook reports whether the user may log time on the project: an
// active assignment or the system default bucket.
func userMayBook(ctx context.Context, assignments ports.AssignmentRepository, projects ports.ProjectRepository, userID domain.UserID, projectID domain.ProjectID) (bool, error) {
	active, err := assignments.ListByUser(ctx, userID, true)
	if err != nil {
		return false, err
	}
	for _, a := range active {
		if a.ProjectID == projectID {
			return true, nil
		}
	}
	system, err := projects.SystemProject(ctx)
	if err != nil {
		return false, err
	}
	return system != nil && system.ID == projectID, nil
}
