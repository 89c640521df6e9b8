package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/timecard-app/timecard/internal/application/ports"
	"github.com/timecard-app/timecard/internal/domain"
	domerrors "github.com/timecard-app/timecard/internal/domain/errors"
	"github.com/timecard-app/timecard/internal/infrastructure/persistence/db"
)

const (
	createSessionSQL = `INSERT INTO sessions (id, user_id, active_role, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	getSessionSQL = `SELECT id, user_id, active_role, expires_at, created_at
		FROM sessions WHERE id = $1`
	deleteSessionSQL        = `DELETE FROM sessions WHERE id = $1`
	updateSessionRoleSQL    = `UPDATE sessions SET active_role = $2 WHERE id = $1`
	deleteExpiredSessionSQL = `DELETE FROM sessions WHERE expires_at <= $1`
)

type SessionRepository struct {
	pool *pgxpool.Pool
}

func NewSessionRepository(pool *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{pool: pool}
}

func (r *SessionRepository) Create(ctx context.Context, session *domain.Session) error {
	_, err := r.pool.Exec(ctx, createSessionSQL,
		session.ID.UUID, session.UserID.UUID, string(session.ActiveRole),
		session.ExpiresAt, session.CreatedAt)
	return err
}

func (r *SessionRepository) GetByID(ctx context.Context, id domain.SessionID) (*domain.Session, error) {
	var s db.Session
	err := r.pool.QueryRow(ctx, getSessionSQL, id.UUID).
		Scan(&s.ID, &s.UserID, &s.ActiveRole, &s.ExpiresAt, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	role, _ := domain.ParseRole(s.ActiveRole)
	return &domain.Session{
		ID:         domain.NewSessionID(s.ID),
		UserID:     domain.NewUserID(s.UserID),
		ActiveRole: role,
		ExpiresAt:  s.ExpiresAt,
		CreatedAt:  s.CreatedAt,
	}, nil
}

func (r *SessionRepository) Delete(ctx context.Context, id domain.SessionID) error {
	tag, err := r.pool.Exec(ctx, deleteSessionSQL, id.UUID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domerrors.ErrNotFound
	}
	return nil
}

func (r *SessionRepository) UpdateActiveRole(ctx context.Context, id domain.SessionID, role domain.Role) error {
	tag, err := r.pool.Exec(ctx, updateSessionRoleSQL, id.UUID, string(role))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domerrors.ErrNotFound
	}
	return nil
}

func (r *SessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, deleteExpiredSessionSQL, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

var _ ports.SessionRepository = (*SessionRepository)(nil)
