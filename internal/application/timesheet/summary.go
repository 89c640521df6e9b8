package timesheet

import (
	"context"
	"time"

	"github.com/timecard-app/timecard/internal/aggregate"
	"github.com/timecard-app/timecard/internal/application/ports"
	"github.com/timecard-app/timecard/internal/domain"
	domerrors "github.com/timecard-app/timecard/internal/domain/errors"
	"github.com/timecard-app/timecard/internal/validate"
)

// Summary is the daily and monthly classification for one user/date, derived
// fresh from the entry set on every call.
type Summary struct {
	Date                 string
	DailyReportedHours   float64
	DailyRequiredHours   float64
	DailyStatus          aggregate.DayStatus
	MonthlyReportedHours float64
	MonthlyRequiredHours float64
	MonthlyStatus        aggregate.MonthStatus
}

type Summarize struct {
	entries  ports.EntryRepository
	calendar ports.CalendarRepository
}

func NewSummarize(entries ports.EntryRepository, calendar ports.CalendarRepository) *Summarize {
	return &Summarize{entries: entries, calendar: calendar}
}

func (uc *Summarize) Execute(ctx context.Context, userID domain.UserID, date string) (*Summary, error) {
	if !validate.Date(date) {
		return nil, domerrors.ErrInvalidDate
	}
	first, last := aggregate.MonthBounds(date)

	overrideRows, err := uc.calendar.ListRange(ctx, first, last)
	if err != nil {
		return nil, err
	}
	overrides := make(aggregate.Overrides, len(overrideRows))
	for _, o := range overrideRows {
		overrides[o.Date] = o.DayType
	}

	dayEntries, err := uc.entries.ListForUserDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	monthEntries, err := uc.entries.ListForUserRange(ctx, userID, first, last)
	if err != nil {
		return nil, err
	}

	t, _ := time.Parse(validate.DateLayout, date)
	dayReported := aggregate.MinutesToHours(aggregate.TotalMinutes(dayEntries))
	dayRequired := aggregate.RequiredDailyHours(date, overrides)
	monthReported := aggregate.MinutesToHours(aggregate.TotalMinutes(monthEntries))
	monthRequired := aggregate.RequiredMonthlyHours(t.Year(), t.Month(), overrides)

	return &Summary{
		Date:                 date,
		DailyReportedHours:   dayReported,
		DailyRequiredHours:   dayRequired,
		DailyStatus:          aggregate.ClassifyDay(dayReported, dayRequired),
		MonthlyReportedHours: monthReported,
		MonthlyRequiredHours: monthRequired,
		MonthlyStatus:        aggregate.ClassifyMonth(monthReported, monthRequired),
	}, nil
}
