package repository

import (
	"context"
	"fmt"

	"workbindr/domain/entities"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// taskRepository implements the TaskRepository interface
type taskRepository struct {
	q Queryable
}

const taskColumns = `id, project_id, title, status, priority, created_at, updated_at`

func scanTask(row pgx.Row) (*entities.Task, error) {
	var task entities.Task
	err := row.Scan(
		&task.ID,
		&task.ProjectID,
		&task.Title,
		&task.Status,
		&task.Priority,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// GetByID retrieves a task by id
func (r *taskRepository) GetByID(ctx context.Context, id string) (*entities.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	task, err := scanTask(r.q.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task %s: %w", id, err)
	}
	return task, nil
}

// Create creates a new task
func (r *taskRepository) Create(ctx context.Context, task *entities.Task) error {
	query := `
		INSERT INTO tasks (id, project_id, title, status, priority)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	task.ID = uuid.NewString()
	err := r.q.QueryRow(ctx, query,
		task.ID,
		task.ProjectID,
		task.Title,
		task.Status,
		task.Priority,
	).Scan(&task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// Update merges a partial update over an existing task
func (r *taskRepository) Update(ctx context.Context, id string, update entities.TaskUpdate) (*entities.Task, error) {
	query := `
		UPDATE tasks SET
			title = COALESCE($2, title),
			status = COALESCE($3, status),
			priority = COALESCE($4, priority),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + taskColumns + `
	`

	task, err := scanTask(r.q.QueryRow(ctx, query,
		id,
		update.Title,
		update.Status,
		update.Priority,
	))
	if err == pgx.ErrNoRows {
		return nil, fmt.Errorf("task %s: %w", id, entities.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update task %s: %w", id, err)
	}
	return task, nil
}

// List returns all tasks, newest first
func (r *taskRepository) List(ctx context.Context) ([]*entities.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY created_at DESC`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	return collectTasks(rows)
}

// ListByProject returns a project's tasks, newest first
func (r *taskRepository) ListByProject(ctx context.Context, projectID string) ([]*entities.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE project_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.q.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks for project %s: %w", projectID, err)
	}
	defer rows.Close()

	return collectTasks(rows)
}

func collectTasks(rows pgx.Rows) ([]*entities.Task, error) {
	var tasks []*entities.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}
	return tasks, nil
}
