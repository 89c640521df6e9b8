package timesheet

import (
	"context"
	"time"

	"github.com/timecard-app/timecard/internal/application/ports"
	"github.com/timecard-app/timecard/internal/domain"
	domerrors "github.com/timecard-app/timecard/internal/domain/errors"
	"github.com/timecard-app/timecard/internal/validate"
)

type UpdateEntryInput struct {
	EntryID   domain.EntryID
	Requester domain.UserID
	Minutes   int
	Comment   string
}

// UpdateEntry changes the minutes and comment of an existing entry. Only the
// owner may edit; project and date are fixed after creation (replace the day
// via sync to move time between projects).
type UpdateEntry struct {
	entries ports.EntryRepository
}

func NewUpdateEntry(entries ports.EntryRepository) *UpdateEntry {
	return &UpdateEntry{entries: entries}
}

func (uc *UpdateEntry) Execute(ctx context.Context, input UpdateEntryInput) (*domain.TimeEntry, error) {
	entry, err := uc.entries.GetByID(ctx, input.EntryID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, domerrors.ErrNotFound
	}
	if entry.UserID != input.Requester {
		return nil, domerrors.ErrNotOwner
	}
	if !validate.Minutes(input.Minutes) {
		return nil, domerrors.ErrInvalidMinutes
	}
	entry.Minutes = input.Minutes
	entry.Comment = input.Comment
	entry.UpdatedAt = time.Now()
	if err := uc.entries.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}
