package aggregate

import (
	"time"

	"github.com/timecard-app/timecard/internal/domain"
	"github.com/timecard-app/timecard/internal/validate"
)

// Overrides maps ISO dates to their configured day type. Dates absent from
// the map fall back to the weekday default: Saturday and Sunday are weekend,
// every other day is a workday.
type Overrides map[string]domain.DayType

// ClassifyDate returns the day type for an ISO date, honoring overrides
// first and the weekday default otherwise.
func ClassifyDate(date string, overrides Overrides) domain.DayType {
	if dt, ok := overrides[date]; ok {
		return dt
	}
	t, err := time.Parse(validate.DateLayout, date)
	if err != nil {
		return domain.DayTypeWeekend
	}
	if wd := t.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return domain.DayTypeWeekend
	}
	return domain.DayTypeWorkday
}

// RequiredDailyHours returns the target for one date: eight hours on a
// workday or public holiday, zero on a weekend.
func RequiredDailyHours(date string, overrides Overrides) float64 {
	switch ClassifyDate(date, overrides) {
	case domain.DayTypeWorkday, domain.DayTypePublicHoliday:
		return RequiredHoursPerDay
	}
	return 0
}

// RequiredMonthlyHours returns the month target: working days times eight.
// Only days classified workday count; public holidays and weekends are
// excluded from the month total even though a public holiday still carries a
// daily target.
func RequiredMonthlyHours(year int, month time.Month, overrides Overrides) float64 {
	return float64(CountWorkingDays(year, month, overrides)) * RequiredHoursPerDay
}

// CountWorkingDays counts the days of the month classified workday, applying
// overrides before the weekday default.
func CountWorkingDays(year int, month time.Month, overrides Overrides) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	count := 0
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		if ClassifyDate(d.Format(validate.DateLayout), overrides) == domain.DayTypeWorkday {
			count++
		}
	}
	return count
}

// MonthBounds returns the first and last ISO dates of the month containing
// the given pre-validated date.
func MonthBounds(date string) (first, last string) {
	t, _ := time.Parse(validate.DateLayout, date)
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start.Format(validate.DateLayout), end.Format(validate.DateLayout)
}
