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
)

const (
	createProjectSQL = `INSERT INTO projects (id, name, color, suppressed, is_system, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	getProjectByIDSQL = `SELECT id, name, color, suppressed, is_system, created_at, updated_at
		FROM projects WHERE id = $1`
	listProjectsSQL = `SELECT id, name, color, suppressed, is_system, created_at, updated_at
		FROM projects WHERE ($1 OR NOT suppressed) ORDER BY created_at`
	updateProjectSQL = `UPDATE projects
		SET name = $2, color = $3, suppressed = $4, updated_at = $5 WHERE id = $1`
	systemProjectSQL = `SELECT id, name, color, suppressed, is_system, created_at, updated_at
		FROM projects WHERE is_system ORDER BY created_at LIMIT 1`
)

type ProjectRepository struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	_, err := r.pool.Exec(ctx, createProjectSQL,
		project.ID.UUID, project.Name, project.Color,
		project.Suppressed, project.IsSystem, project.CreatedAt, project.UpdatedAt)
	if isUniqueViolation(err) {
		return domerrors.ErrDuplicateName
	}
	return err
}

func (r *ProjectRepository) GetByID(ctx context.Context, id domain.ProjectID) (*domain.Project, error) {
	return scanProject(r.pool.QueryRow(ctx, getProjectByIDSQL, id.UUID))
}

func (r *ProjectRepository) SystemProject(ctx context.Context) (*domain.Project, error) {
	return scanProject(r.pool.QueryRow(ctx, systemProjectSQL))
}

func (r *ProjectRepository) List(ctx context.Context, includeSuppressed bool) ([]*domain.Project, error) {
	rows, err := r.pool.Query(ctx, listProjectsSQL, includeSuppressed)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var projects []*domain.Project
	for rows.Next() {
		var p db.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Color, &p.Suppressed, &p.IsSystem, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, dbProjectToDomain(p))
	}
	return projects, rows.Err()
}

func (r *ProjectRepository) Update(ctx context.Context, project *domain.Project) error {
	tag, err := r.pool.Exec(ctx, updateProjectSQL,
		project.ID.UUID, project.Name, project.Color, project.Suppressed, project.UpdatedAt)
	if isUniqueViolation(err) {
		return domerrors.ErrDuplicateName
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domerrors.ErrNotFound
	}
	return nil
}

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p db.Project
	err := row.Scan(&p.ID, &p.Name, &p.Color, &p.Suppressed, &p.IsSystem, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return dbProjectToDomain(p), nil
}

func dbProjectToDomain(p db.Project) *domain.Project {
	return &domain.Project{
		ID:         domain.NewProjectID(p.ID),
		Name:       p.Name,
		Color:      p.Color,
		Suppressed: p.Suppressed,
		IsSystem:   p.IsSystem,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

var _ ports.ProjectRepository = (*ProjectRepository)(nil)
