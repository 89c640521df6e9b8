package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/timecard-app/timecard/internal/domain"
)

func TestTotalMinutes(t *testing.T) {
	assert.Equal(t, 0, TotalMinutes(nil))
	assert.Equal(t, 0, TotalMinutes([]domain.TimeEntry{}))

	entries := []domain.TimeEntry{
		{Minutes: 120},
		{Minutes: 90},
		{Minutes: 270},
	}
	assert.Equal(t, 480, TotalMinutes(entries))
}

func TestMinutesToHours(t *testing.T) {
	assert.Equal(t, 8.0, MinutesToHours(480))
	assert.Equal(t, 0.0, MinutesToHours(0))
	// No rounding inside the engine.
	assert.Equal(t, 90.0/60.0, MinutesToHours(90))
	assert.Equal(t, 1.0/60.0, MinutesToHours(1))
}

func TestClassifyDay(t *testing.T) {
	assert.Equal(t, DayStatus{Kind: DayComplete}, ClassifyDay(8, 8))
	assert.Equal(t, DayStatus{Kind: DayOverLimit}, ClassifyDay(9, 8))
	assert.Equal(t, DayStatus{Kind: DayNeedsMore, Remaining: 3}, ClassifyDay(5, 8))
	assert.Equal(t, DayStatus{Kind: DayNeedsMore, Remaining: 8}, ClassifyDay(0, 8))

	// required == 0 wins over every reported value.
	for _, reported := range []float64{0, 4, 8, 24} {
		assert.Equal(t, DayStatus{Kind: DayNotRequired}, ClassifyDay(reported, 0))
	}
}

func TestClassifyMonth(t *testing.T) {
	assert.Equal(t, MonthOnTrack, ClassifyMonth(160, 160))
	assert.Equal(t, MonthBelowTarget, ClassifyMonth(120, 160))
	assert.Equal(t, MonthOverLimit, ClassifyMonth(161, 160))
	assert.Equal(t, MonthOnTrack, ClassifyMonth(0, 0))
}
