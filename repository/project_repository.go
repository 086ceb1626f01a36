package repository

import (
	"context"
	"fmt"

	"workbindr/domain/entities"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// projectRepository implements the ProjectRepository interface
type projectRepository struct {
	q Queryable
}

const projectColumns = `id, name, description, status, priority, progress, created_at, updated_at`

func scanProject(row pgx.Row) (*entities.Project, error) {
	var project entities.Project
	err := row.Scan(
		&project.ID,
		&project.Name,
		&project.Description,
		&project.Status,
		&project.Priority,
		&project.Progress,
		&project.CreatedAt,
		&project.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetByID retrieves a project by id
func (r *projectRepository) GetByID(ctx context.Context, id string) (*entities.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`

	project, err := scanProject(r.q.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project %s: %w", id, err)
	}
	return project, nil
}

// Create creates a new project
func (r *projectRepository) Create(ctx context.Context, project *entities.Project) error {
	query := `
		INSERT INTO projects (id, name, description, status, priority, progress)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	project.ID = uuid.NewString()
	err := r.q.QueryRow(ctx, query,
		project.ID,
		project.Name,
		project.Description,
		project.Status,
		project.Priority,
		project.Progress,
	).Scan(&project.CreatedAt, &project.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// Update merges a partial update over an existing project
func (r *projectRepository) Update(ctx context.Context, id string, update entities.ProjectUpdate) (*entities.Project, error) {
	query := `
		UPDATE projects SET
			name = COALESCE($2, name),
			description = COALESCE($3, description),
			status = COALESCE($4, status),
			priority = COALESCE($5, priority),
			progress = COALESCE($6, progress),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + projectColumns + `
	`

	project, err := scanProject(r.q.QueryRow(ctx, query,
		id,
		update.Name,
		update.Description,
		update.Status,
		update.Priority,
		update.Progress,
	))
	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("project %s: %w", id, entities.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update project %s: %w", id, err)
	}
	return project, nil
}

// List returns all projects, newest first
func (r *projectRepository) List(ctx context.Context) ([]*entities.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at DESC`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []*entities.Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate projects: %w", err)
	}
	return projects, nil
}
