package domain

import (
	"time"

	"github.com/google/uuid"
)

// EntryID is a value object for time-entry identity.
type EntryID struct{ uuid.UUID }

// NewEntryID creates a new EntryID from uuid.
func NewEntryID(id uuid.UUID) EntryID { return EntryID{UUID: id} }

// String returns the canonical string form.
func (e EntryID) String() string { return e.UUID.String() }

// MaxEntryMinutes is the upper bound for a single entry: one calendar day.
const MaxEntryMinutes = 1440

// TimeEntry is one logged (user, project, date, minutes, comment) record.
// Date is the calendar day in ISO form YYYY-MM-DD; the comment may embed
// #tag tokens that the aggregation layer extracts.
type TimeEntry struct {
	ID        EntryID
	UserID    UserID
	ProjectID ProjectID
	Date      string
	Minutes   int
	Comment   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Segment is a time entry in the batch-sync payload shape: one slice of a
// day's allocation before it is persisted.
type Segment struct {
	ProjectID ProjectID
	Minutes   int
	Comment   string
}

// Principal is the authenticated user resolved for the current request.
// ActiveRole is the role driving navigation when the user holds several.
type Principal struct {
	UserID     UserID
	Email      string
	Roles      []Role
	ActiveRole Role
}

// HasRole reports whether the principal holds the given role.
func (p *Principal) HasRole(role Role) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}
