package manage

import (
	"context"
	"time"

	"github.com/timecard-app/timecard/internal/application/ports"
	"github.com/timecard-app/timecard/internal/domain"
	domerrors "github.com/timecard-app/timecard/internal/domain/errors"
	"github.com/timecard-app/timecard/internal/validate"
)

type SetCalendarDayInput struct {
	Date    string
	DayType string
}

type SetCalendarDay struct {
	calendar ports.CalendarRepository
}

func NewSetCalendarDay(calendar ports.CalendarRepository) *SetCalendarDay {
	return &SetCalendarDay{calendar: calendar}
}

func (uc *SetCalendarDay) Execute(ctx context.Context, input SetCalendarDayInput) (*domain.CalendarDay, error) {
	if !validate.Date(input.Date) {
		return nil, domerrors.ErrInvalidDate
	}
	dayType, err := domain.ParseDayType(input.DayType)
	if err != nil {
		return nil, domerrors.ErrInvalidDayType
	}
	day := &domain.CalendarDay{Date: input.Date, DayType: dayType}
	if err := uc.calendar.Upsert(ctx, day); err != nil {
		return nil, err
	}
	return day, nil
}

// MonthOverrides lists the configured day-type overrides of one month.
type MonthOverrides struct {
	calendar ports.CalendarRepository
}

func NewMonthOverrides(calendar ports.CalendarRepository) *MonthOverrides {
	return &MonthOverrides{calendar: calendar}
}

func (uc *MonthOverrides) Execute(ctx context.Context, month string) ([]domain.CalendarDay, error) {
	if !validate.Month(month) {
		return nil, domerrors.ErrInvalidMonth
	}
	t, _ := time.Parse(validate.MonthLayout, month)
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return uc.calendar.ListRange(ctx, start.Format(validate.DateLayout), end.Format(validate.DateLayout))
}
