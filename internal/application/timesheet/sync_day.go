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

type SyncDayInput struct {
	UserID   domain.UserID
	Date     string
	Segments []domain.Segment
}

// SyncDay replaces every entry of (user, date) with the given segments, the
// operation behind the drag-slider day editor. The whole batch is validated
// before anything is deleted: a rejected sync leaves the prior entries
// untouched.
type SyncDay struct {
	entries     ports.EntryRepository
	assignments ports.AssignmentRepository
	projects    ports.ProjectRepository
}

func NewSyncDay(entries ports.EntryRepository, assignments ports.AssignmentRepository, projects ports.ProjectRepository) *SyncDay {
	return &SyncDay{entries: entries, assignments: assignments, projects: projects}
}

func (uc *SyncDay) Execute(ctx context.Context, input SyncDayInput) error {
	if !validate.Date(input.Date) {
		return domerrors.ErrInvalidDate
	}

	bookable, err := uc.bookableProjects(ctx, input.UserID)
	if err != nil {
		return err
	}
	for _, seg := range input.Segments {
		if !bookable[seg.ProjectID] {
			return domerrors.ErrNotAssigned
		}
	}
	for _, seg := range input.Segments {
		if !validate.Minutes(seg.Minutes) {
			return domerrors.ErrInvalidMinutes
		}
	}

	now := time.Now()
	replacement := make([]domain.TimeEntry, 0, len(input.Segments))
	for _, seg := range input.Segments {
		replacement = append(replacement, domain.TimeEntry{
			ID:        domain.NewEntryID(uuid.New()),
			UserID:    input.UserID,
			ProjectID: seg.ProjectID,
			Date:      input.Date,
			Minutes:   seg.Minutes,
			Comment:   seg.Comment,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return uc.entries.ReplaceForDate(ctx, input.UserID, input.Date, replacement)
}

func (uc *SyncDay) bookableProjects(ctx context.Context, userID domain.UserID) (map[domain.ProjectID]bool, error) {
	active, err := uc.assignments.ListByUser(ctx, userID, true)
	if err != nil {
		return nil, err
	}
	bookable := make(map[domain.ProjectID]bool, len(active)+1)
	for _, a := range active {
		bookable[a.ProjectID] = true
	}
	system, err := uc.projects.SystemProject(ctx)
	if err != nil {
		return nil, err
	}
	if system != nil {
		bookable[system.ID] = true
	}
	return bookable, nil
}
