package timesheet

import (
	"context"

	"github.com/timecard-app/timecard/internal/application/ports"
	"github.com/timecard-app/timecard/internal/domain"
	domerrors "github.com/timecard-app/timecard/internal/domain/errors"
)

type DeleteEntryInput struct {
	EntryID   domain.EntryID
	Requester domain.UserID
}

type DeleteEntry struct {
	entries ports.EntryRepository
}

func NewDeleteEntry(entries ports.EntryRepository) *DeleteEntry {
	return &DeleteEntry{entries: entries}
}

// Execute removes the entry and returns the deleted row so callers can
// re-aggregate its date.
func (uc *DeleteEntry) Execute(ctx context.Context, input DeleteEntryInput) (*domain.TimeEntry, error) {
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
	if err := uc.entries.Delete(ctx, input.EntryID); err != nil {
		return nil, err
	}
	return entry, nil
}
