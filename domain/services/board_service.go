package services

import (
	"context"
	"fmt"

	"workbindr/domain/entities"
	"workbindr/domain/interfaces"
)

// boardService implements the BoardService interface
type boardService struct {
	store interfaces.Store
}

// NewBoardService creates a new board service
func NewBoardService(store interfaces.Store) interfaces.BoardService {
	return &boardService{store: store}
}

// ListProjects returns all projects, newest first
func (s *boardService) ListProjects(ctx context.Context) ([]*entities.Project, error) {
	projects, err := s.store.Projects().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// CreateProject validates and creates a project
func (s *boardService) CreateProject(ctx context.Context, input entities.NewProject) (*entities.Project, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	project := &entities.Project{
		Name:        input.Name,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
	}
	if project.Status == "" {
		project.Status = entities.ProjectStatusPlanning
	}
	if input.Progress != nil {
		project.Progress = *input.Progress
	}
	if err := s.store.Projects().Create(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return project, nil
}

// UpdateProject merges a partial update over an existing project
func (s *boardService) UpdateProject(ctx context.Context, id string, update entities.ProjectUpdate) (*entities.Project, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}
	project, err := s.store.Projects().Update(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update project %s: %w", id, err)
	}
	return project, nil
}

// ListTasks returns all tasks, newest first
func (s *boardService) ListTasks(ctx context.Context) ([]*entities.Task, error) {
	tasks, err := s.store.Tasks().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// ProjectTasks returns a project's tasks, newest first
func (s *boardService) ProjectTasks(ctx context.Context, projectID string) ([]*entities.Task, error) {
	tasks, err := s.store.Tasks().ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks for project %s: %w", projectID, err)
	}
	return tasks, nil
}

// CreateTask validates and creates a task under a project. The project must
// exist; status defaults to the first Kanban column.
func (s *boardService) CreateTask(ctx context.Context, input entities.NewTask) (*entities.Task, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	project, err := s.store.Projects().GetByID(ctx, input.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up project %s: %w", input.ProjectID, err)
	}
	if project == nil {
		return nil, fmt.Errorf("project %s: %w", input.ProjectID, entities.ErrNotFound)
	}

	task := &entities.Task{
		ProjectID: input.ProjectID,
		Title:     input.Title,
		Status:    input.Status,
		Priority:  input.Priority,
	}
	if task.Status == "" {
		task.Status = entities.TaskStatusTodo
	}
	if err := s.store.Tasks().Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

// UpdateTask merges a partial update over an existing task
func (s *boardService) UpdateTask(ctx context.Context, id string, update entities.TaskUpdate) (*entities.Task, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}
	task, err := s.store.Tasks().Update(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update task %s: %w", id, err)
	}
	return task, nil
}

// ListDonors returns all donors, newest first
func (s *boardService) ListDonors(ctx context.Context) ([]*entities.Donor, error) {
	donors, err := s.store.Donors().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list donors: %w", err)
	}
	return donors, nil
}

// CreateDonor validates and creates a donor
func (s *boardService) CreateDonor(ctx context.Context, input entities.NewDonor) (*entities.Donor, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	donor := &entities.Donor{
		Name:         input.Name,
		Email:        input.Email,
		TotalDonated: input.TotalDonated,
		Status:       input.Status,
	}
	if donor.TotalDonated == "" {
		donor.TotalDonated = "0"
	}
	if donor.Status == "" {
		donor.Status = "Active"
	}
	if err := s.store.Donors().Create(ctx, donor); err != nil {
		return nil, fmt.Errorf("failed to create donor: %w", err)
	}
	return donor, nil
}

// UpdateDonor merges a partial update over an existing donor
func (s *boardService) UpdateDonor(ctx context.Context, id string, update entities.DonorUpdate) (*entities.Donor, error) {
	donor, err := s.store.Donors().Update(ctx, id, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update donor %s: %w", id, err)
	}
	return donor, nil
}
