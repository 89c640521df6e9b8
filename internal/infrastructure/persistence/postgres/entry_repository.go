package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/timecard-app/timecard/internal/application/ports"
	"github.com/timecard-app/timecard/internal/domain"
	domerrors "github.com/timecard-app/timecard/internal/domain/errors"
	"github.com/timecard-app/timecard/internal/infrastructure/persistence/db"
	"github.com/timecard-app/timecard/internal/validate"
)

const (
	createEntrySQL = `INSERT INTO time_entries (id, user_id, project_id, entry_date, minutes, comment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	getEntrySQL = `SELECT id, user_id, project_id, entry_date, minutes, comment, created_at, updated_at
		FROM time_entries WHERE id = $1`
	updateEntrySQL = `UPDATE time_entries
		SET minutes = $2, comment = $3, updated_at = $4 WHERE id = $1`
	deleteEntrySQL      = `DELETE FROM time_entries WHERE id = $1`
	deleteForDateSQL    = `DELETE FROM time_entries WHERE user_id = $1 AND entry_date = $2`
	listForUserDateSQL  = `SELECT id, user_id, project_id, entry_date, minutes, comment, created_at, updated_at
		FROM time_entries WHERE user_id = $1 AND entry_date = $2 ORDER BY created_at`
	listForUserRangeSQL = `SELECT id, user_id, project_id, entry_date, minutes, comment, created_at, updated_at
		FROM time_entries WHERE user_id = $1 AND entry_date BETWEEN $2 AND $3
		ORDER BY entry_date, created_at`
	listForProjectRangeSQL = `SELECT id, user_id, project_id, entry_date, minutes, comment, created_at, updated_at
		FROM time_entries WHERE project_id = $1 AND entry_date BETWEEN $2 AND $3
		ORDER BY entry_date, created_at`
)

type EntryRepository struct {
	pool *pgxpool.Pool
}

func NewEntryRepository(pool *pgxpool.Pool) *EntryRepository {
	return &EntryRepository{pool: pool}
}

func (r *EntryRepository) Create(ctx context.Context, entry *domain.TimeEntry) error {
	_, err := r.pool.Exec(ctx, createEntrySQL,
		entry.ID.UUID, entry.UserID.UUID, entry.ProjectID.UUID,
		entry.Date, entry.Minutes, entry.Comment, entry.CreatedAt, entry.UpdatedAt)
	return err
}

func (r *EntryRepository) GetByID(ctx context.Context, id domain.EntryID) (*domain.TimeEntry, error) {
	var e db.TimeEntry
	err := r.pool.QueryRow(ctx, getEntrySQL, id.UUID).
		Scan(&e.ID, &e.UserID, &e.ProjectID, &e.EntryDate, &e.Minutes, &e.Comment, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	entry := dbEntryToDomain(e)
	return &entry, nil
}

func (r *EntryRepository) Update(ctx context.Context, entry *domain.TimeEntry) error {
	tag, err := r.pool.Exec(ctx, updateEntrySQL,
		entry.ID.UUID, entry.Minutes, entry.Comment, entry.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domerrors.ErrNotFound
	}
	return nil
}

func (r *EntryRepository) Delete(ctx context.Context, id domain.EntryID) error {
	tag, err := r.pool.Exec(ctx, deleteEntrySQL, id.UUID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domerrors.ErrNotFound
	}
	return nil
}

func (r *EntryRepository) ListForUserDate(ctx context.Context, userID domain.UserID, date string) ([]domain.TimeEntry, error) {
	return r.list(ctx, listForUserDateSQL, userID.UUID, date)
}

func (r *EntryRepository) ListForUserRange(ctx context.Context, userID domain.UserID, from, to string) ([]domain.TimeEntry, error) {
	return r.list(ctx, listForUserRangeSQL, userID.UUID, from, to)
}

func (r *EntryRepository) ListForProjectRange(ctx context.Context, projectID domain.ProjectID, from, to string) ([]domain.TimeEntry, error) {
	return r.list(ctx, listForProjectRangeSQL, projectID.UUID, from, to)
}

func (r *EntryRepository) list(ctx context.Context, query string, args ...any) ([]domain.TimeEntry, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var entries []domain.TimeEntry
	for rows.Next() {
		var e db.TimeEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.ProjectID, &e.EntryDate, &e.Minutes, &e.Comment, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, dbEntryToDomain(e))
	}
	return entries, rows.Err()
}

// ReplaceForDate swaps every entry for (user, date) with the given set in
// one transaction, so a failed insert rolls the delete back.
func (r *EntryRepository) ReplaceForDate(ctx context.Context, userID domain.UserID, date string, entries []domain.TimeEntry) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)
	if _, err := tx.Exec(ctx, deleteForDateSQL, userID.UUID, date); err != nil {
		return err
	}
	for _, entry := range entries {
		if _, err := tx.Exec(ctx, createEntrySQL,
			entry.ID.UUID, entry.UserID.UUID, entry.ProjectID.UUID,
			entry.Date, entry.Minutes, entry.Comment, entry.CreatedAt, entry.UpdatedAt); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func dbEntryToDomain(e db.TimeEntry) domain.TimeEntry {
	return domain.TimeEntry{
		ID:        domain.NewEntryID(e.ID),
		UserID:    domain.NewUserID(e.UserID),
		ProjectID: domain.NewProjectID(e.ProjectID),
		Date:      e.EntryDate.Format(validate.DateLayout),
		Minutes:   int(e.Minutes),
		Comment:   e.Comment,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

var _ ports.EntryRepository = (*EntryRepository)(nil)
