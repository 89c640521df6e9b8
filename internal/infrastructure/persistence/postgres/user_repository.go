package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/timecard-app/timecard/internal/application/ports"
	"github.com/timecard-app/timecard/internal/domain"
	"github.com/timecard-app/timecard/internal/infrastructure/persistence/db"
)

const (
	createUserSQL = `INSERT INTO users (id, email, roles, created_at)
		VALUES ($1, $2, $3, $4)`
	getUserByIDSQL = `SELECT id, email, roles, created_at
		FROM users WHERE id = $1`
	getUserByEmailSQL = `SELECT id, email, roles, created_at
		FROM users WHERE email = $1`
	listUsersSQL = `SELECT id, email, roles, created_at
		FROM users ORDER BY email`
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	roles := make([]string, len(user.Roles))
	for i, role := range user.Roles {
		roles[i] = string(role)
	}
	_, err := r.pool.Exec(ctx, createUserSQL, user.ID.UUID, user.Email, roles, user.CreatedAt)
	return err
}

func (r *UserRepository) GetByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	return r.scanOne(r.pool.QueryRow(ctx, getUserByIDSQL, id.UUID))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.scanOne(r.pool.QueryRow(ctx, getUserByEmailSQL, email))
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	rows, err := r.pool.Query(ctx, listUsersSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var users []*domain.User
	for rows.Next() {
		var u db.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Roles, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, dbUserToDomain(u))
	}
	return users, rows.Err()
}

func (r *UserRepository) scanOne(row pgx.Row) (*domain.User, error) {
	var u db.User
	err := row.Scan(&u.ID, &u.Email, &u.Roles, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return dbUserToDomain(u), nil
}

func dbUserToDomain(u db.User) *domain.User {
	roles := make([]domain.Role, 0, len(u.Roles))
	for _, s := range u.Roles {
		if role, err := domain.ParseRole(s); err == nil {
			roles = append(roles, role)
		}
	}
	return &domain.User{
		ID:        domain.NewUserID(u.ID),
		Email:     u.Email,
		Roles:     roles,
		CreatedAt: u.CreatedAt,
	}
}

var _ ports.UserRepository = (*UserRepository)(nil)
