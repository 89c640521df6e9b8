// Package aggregate derives the daily and monthly status summaries shown on
// timesheets and reports. Everything here is recomputed from the raw entry
// set on each request; nothing is stored and callers pass pre-validated
// dates.
package aggregate

import "github.com/timecard-app/timecard/internal/domain"

// RequiredHoursPerDay is the target for a working day.
const RequiredHoursPerDay = 8.0

// TotalMinutes sums the minutes of the given entries. The same function
// serves a single day and a full month, depending on which set is passed in.
func TotalMinutes(entries []domain.TimeEntry) int {
	total := 0
	for _, e := range entries {
		total += e.Minutes
	}
	return total
}

// MinutesToHours converts minutes to fractional hours without rounding;
// display formatting is a view concern.
func MinutesToHours(m int) float64 {
	return float64(m) / 60
}

// DayStatusKind classifies a single day against its required hours.
type DayStatusKind int

const (
	// DayNotRequired marks a day with no required hours (weekend).
	DayNotRequired DayStatusKind = iota
	// DayComplete marks reported hours exactly matching the target.
	DayComplete
	// DayOverLimit marks reported hours above the target.
	DayOverLimit
	// DayNeedsMore marks reported hours below the target.
	DayNeedsMore
)

func (k DayStatusKind) String() string {
	switch k {
	case DayNotRequired:
		return "not_required"
	case DayComplete:
		return "complete"
	case DayOverLimit:
		return "over_limit"
	default:
		return "needs_more"
	}
}

// DayStatus is a day classification; Remaining is set only for DayNeedsMore.
type DayStatus struct {
	Kind      DayStatusKind
	Remaining float64
}

// ClassifyDay compares reported against required hours for one day.
func ClassifyDay(reported, required float64) DayStatus {
	switch {
	case required == 0:
		return DayStatus{Kind: DayNotRequired}
	case reported > required:
		return DayStatus{Kind: DayOverLimit}
	case reported == required:
		return DayStatus{Kind: DayComplete}
	default:
		return DayStatus{Kind: DayNeedsMore, Remaining: required - reported}
	}
}

// MonthStatus classifies a month's total against its required hours.
type MonthStatus int

const (
	// MonthOnTrack marks a month exactly on target.
	MonthOnTrack MonthStatus = iota
	// MonthBelowTarget marks a month under target.
	MonthBelowTarget
	// MonthOverLimit marks a month over target.
	MonthOverLimit
)

func (s MonthStatus) String() string {
	switch s {
	case MonthOverLimit:
		return "over_limit"
	case MonthBelowTarget:
		return "below_target"
	default:
		return "on_track"
	}
}

// ClassifyMonth compares reported against required hours for one month.
func ClassifyMonth(reported, required float64) MonthStatus {
	switch {
	case reported > required:
		return MonthOverLimit
	case reported < required:
		return MonthBelowTarget
	default:
		return MonthOnTrack
	}
}
