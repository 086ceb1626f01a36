package memstore

import (
	"context"
	"fmt"
	"sort"

	"workbindr/domain/entities"
)

type projectRepository struct {
	s *Store
}

func (r *projectRepository) GetByID(_ context.Context, id string) (*entities.Project, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	project, ok := r.s.projects[id]
	if !ok {
		return nil, nil
	}
	return &project, nil
}

func (r *projectRepository) Create(_ context.Context, project *entities.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	project.ID = newID()
	project.CreatedAt = now()
	project.UpdatedAt = project.CreatedAt
	r.s.projects[project.ID] = *project
	return nil
}

func (r *projectRepository) Update(_ context.Context, id string, update entities.ProjectUpdate) (*entities.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	project, ok := r.s.projects[id]
	if !ok {
		return nil, fmt.Errorf("project %s: %w", id, entities.ErrNotFound)
	}

	if update.Name != nil {
		project.Name = *update.Name
	}
	if update.Description != nil {
		project.Description = *update.Description
	}
	if update.Status != nil {
		project.Status = *update.Status
	}
	if update.Priority != nil {
		project.Priority = *update.Priority
	}
	if update.Progress != nil {
		project.Progress = *update.Progress
	}
	project.UpdatedAt = now()
	r.s.projects[id] = project
	return &project, nil
}

func (r *projectRepository) List(_ context.Context) ([]*entities.Project, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	projects := make([]*entities.Project, 0, len(r.s.projects))
	for _, project := range r.s.projects {
		p := project
		projects = append(projects, &p)
	}
	sort.Slice(projects, func(i, j int) bool {
		return projects[i].CreatedAt.After(projects[j].CreatedAt)
	})
	return projects, nil
}
