package memstore

import (
	"context"
	"fmt"
	"sort"

	"workbindr/domain/entities"
)

type taskRepository struct {
	s *Store
}

func (r *taskRepository) GetByID(_ context.Context, id string) (*entities.Task, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	task, ok := r.s.tasks[id]
	if !ok {
		return nil, nil
	}
	return &task, nil
}

func (r *taskRepository) Create(_ context.Context, task *entities.Task) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	task.ID = newID()
	task.CreatedAt = now()
	task.UpdatedAt = task.CreatedAt
	r.s.tasks[task.ID] = *task
	return nil
}

func (r *taskRepository) Update(_ context.Context, id string, update entities.TaskUpdate) (*entities.Task, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	task, ok := r.s.tasks[id]
	if !ok {
		return nil, fmt.Errorf("task %s: %w", id, entities.ErrNotFound)
	}

	if update.Title != nil {
		task.Title = *update.Title
	}
	if update.Status != nil {
		task.Status = *update.Status
	}
	if update.Priority != nil {
		task.Priority = *update.Priority
	}
	task.UpdatedAt = now()
	r.s.tasks[id] = task
	return &task, nil
}

func (r *taskRepository) List(_ context.Context) ([]*entities.Task, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	tasks := make([]*entities.Task, 0, len(r.s.tasks))
	for _, task := range r.s.tasks {
		t := task
		tasks = append(tasks, &t)
	}
	sortTasksNewestFirst(tasks)
	return tasks, nil
}

func (r *taskRepository) ListByProject(_ context.Context, projectID string) ([]*entities.Task, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var tasks []*entities.Task
	for _, task := range r.s.tasks {
		if task.ProjectID == projectID {
			t := task
			tasks = append(tasks, &t)
		}
	}
	sortTasksNewestFirst(tasks)
	return tasks, nil
}

func sortTasksNewestFirst(tasks []*entities.Task) {
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})
}
