package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/timecard-app/timecard/internal/application/ports"
	"github.com/timecard-app/timecard/internal/domain"
	"github.com/timecard-app/timecard/internal/infrastructure/persistence/db"
	"github.com/timecard-app/timecard/internal/validate"
)

const (
	upsertCalendarDaySQL = `INSERT INTO calendar_days (day, day_type) VALUES ($1, $2)
		ON CONFLICT (day) DO UPDATE SET day_type = EXCLUDED.day_type`
	listCalendarRangeSQL = `SELECT day, day_type FROM calendar_days
		WHERE day BETWEEN $1 AND $2 ORDER BY day`
)

type CalendarRepository struct {
	pool *pgxpool.Pool
}

func NewCalendarRepository(pool *pgxpool.Pool) *CalendarRepository {
	return &CalendarRepository{pool: pool}
}

func (r *CalendarRepository) Upsert(ctx context.Context, day *domain.CalendarDay) error {
	_, err := r.pool.Exec(ctx, upsertCalendarDaySQL, day.Date, string(day.DayType))
	return err
}

func (r *CalendarRepository) ListRange(ctx context.Context, from, to string) ([]domain.CalendarDay, error) {
	rows, err := r.pool.Query(ctx, listCalendarRangeSQL, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var days []domain.CalendarDay
	for rows.Next() {
		var d db.CalendarDay
		if err := rows.Scan(&d.Day, &d.DayType); err != nil {
			return nil, err
		}
		dayType, err := domain.ParseDayType(d.DayType)
		if err != nil {
			continue // skip rows with unknown types rather than fail the report
		}
		days = append(days, domain.CalendarDay{
			Date:    d.Day.Format(validate.DateLayout),
			DayType: dayType,
		})
	}
	return days, rows.Err()
}

var _ ports.CalendarRepository = (*CalendarRepository)(nil)
