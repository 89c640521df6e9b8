package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/timecard-app/timecard/internal/application/ports"
	"github.com/timecard-app/timecard/internal/domain"
	domerrors "github.com/timecard-app/timecard/internal/domain/errors"
	"github.com/timecard-app/timecard/internal/infrastructure/persistence/db"
)

const (
	createAssignmentSQL = `INSERT INTO project_assignments (id, user_id, project_id, suppressed)
		VALUES ($1, $2, $3, $4)`
	getAssignmentSQL = `SELECT id, user_id, project_id, suppressed
		FROM project_assignments WHERE id = $1`
	listAssignmentsByUserSQL = `SELECT id, user_id, project_id, suppressed
		FROM project_assignments WHERE user_id = $1 AND ($2 OR NOT suppressed)
		ORDER BY id`
	listAssignmentsByProjectSQL = `SELECT id, user_id, project_id, suppressed
		FROM project_assignments WHERE project_id = $1 AND ($2 OR NOT suppressed)
		ORDER BY id`
	setAssignmentSuppressedSQL = `UPDATE project_assignments SET suppressed = $2 WHERE id = $1`
)

type AssignmentRepository struct {
	pool *pgxpool.Pool
}

func NewAssignmentRepository(pool *pgxpool.Pool) *AssignmentRepository {
	return &AssignmentRepository{pool: pool}
}

func (r *AssignmentRepository) Create(ctx context.Context, assignment *domain.ProjectAssignment) error {
	_, err := r.pool.Exec(ctx, createAssignmentSQL,
		assignment.ID.UUID, assignment.UserID.UUID, assignment.ProjectID.UUID, assignment.Suppressed)
	if isUniqueViolation(err) {
		return domerrors.ErrDuplicateAssignment
	}
	return err
}

func (r *AssignmentRepository) GetByID(ctx context.Context, id domain.AssignmentID) (*domain.ProjectAssignment, error) {
	var a db.ProjectAssignment
	err := r.pool.QueryRow(ctx, getAssignmentSQL, id.UUID).
		Scan(&a.ID, &a.UserID, &a.ProjectID, &a.Suppressed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return dbAssignmentToDomain(a), nil
}

func (r *AssignmentRepository) ListByUser(ctx context.Context, userID domain.UserID, activeOnly bool) ([]*domain.ProjectAssignment, error) {
	return r.list(ctx, listAssignmentsByUserSQL, userID.UUID, !activeOnly)
}

func (r *AssignmentRepository) ListByProject(ctx context.Context, projectID domain.ProjectID, activeOnly bool) ([]*domain.ProjectAssignment, error) {
	return r.list(ctx, listAssignmentsByProjectSQL, projectID.UUID, !activeOnly)
}

func (r *AssignmentRepository) list(ctx context.Context, query string, owner uuid.UUID, includeSuppressed bool) ([]*domain.ProjectAssignment, error) {
	rows, err := r.pool.Query(ctx, query, owner, includeSuppressed)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var assignments []*domain.ProjectAssignment
	for rows.Next() {
		var a db.ProjectAssignment
		if err := rows.Scan(&a.ID, &a.UserID, &a.ProjectID, &a.Suppressed); err != nil {
			return nil, err
		}
		assignments = append(assignments, dbAssignmentToDomain(a))
	}
	return assignments, rows.Err()
}

func (r *AssignmentRepository) SetSuppressed(ctx context.Context, id domain.AssignmentID, suppressed bool) error {
	tag, err := r.pool.Exec(ctx, setAssignmentSuppressedSQL, id.UUID, suppressed)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domerrors.ErrNotFound
	}
	return nil
}

func dbAssignmentToDomain(a db.ProjectAssignment) *domain.ProjectAssignment {
	return &domain.ProjectAssignment{
		ID:         domain.NewAssignmentID(a.ID),
		UserID:     domain.NewUserID(a.UserID),
		ProjectID:  domain.NewProjectID(a.ProjectID),
		Suppressed: a.Suppressed,
	}
}

var _ ports.AssignmentRepository = (*AssignmentRepository)(nil)
