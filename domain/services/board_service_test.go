package services

import (
	"context"
	"testing"

	"workbindr/domain/entities"
	"workbindr/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateTask_RequiresExistingProject(t *testing.T) {
	ctx := context.Background()
	store := testhelpers.NewMockStore()
	service := NewBoardService(store)

	store.ProjectRepo.On("GetByID", ctx, "ghost").Return(nil, nil)

	task, err := service.CreateTask(ctx, entities.NewTask{ProjectID: "ghost", Title: "Write docs"})

	assert.Nil(t, task)
	assert.ErrorIs(t, err, entities.ErrNotFound)
	store.TaskRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateTask_DefaultsToFirstColumn(t *testing.T) {
	ctx := context.Background()
	store := testhelpers.NewMockStore()
	service := NewBoardService(store)

	project := &entities.Project{ID: "proj-1", Name: "Platform"}
	store.ProjectRepo.On("GetByID", ctx, "proj-1").Return(project, nil)
	store.TaskRepo.On("Create", ctx, mock.MatchedBy(func(task *entities.Task) bool {
		return task.Status == entities.TaskStatusTodo
	})).Return(nil)

	task, err := service.CreateTask(ctx, entities.NewTask{ProjectID: "proj-1", Title: "Write docs"})

	require.NoError(t, err)
	assert.Equal(t, entities.TaskStatusTodo, task.Status)
	store.AssertExpectations(t)
}

func TestCreateTask_RejectsUnknownColumn(t *testing.T) {
	ctx := context.Background()
	store := testhelpers.NewMockStore()
	service := NewBoardService(store)

	task, err := service.CreateTask(ctx, entities.NewTask{
		ProjectID: "proj-1",
		Title:     "Write docs",
		Status:    "Blocked",
	})

	assert.Nil(t, task)
	assert.True(t, entities.IsValidation(err))
	store.AssertExpectations(t)
}

func TestUpdateTask_RejectsUnknownColumn(t *testing.T) {
	ctx := context.Background()
	store := testhelpers.NewMockStore()
	service := NewBoardService(store)

	status := "Parked"
	task, err := service.UpdateTask(ctx, "task-1", entities.TaskUpdate{Status: &status})

	assert.Nil(t, task)
	assert.True(t, entities.IsValidation(err))
	store.TaskRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateProject_DefaultsStatusToPlanning(t *testing.T) {
	ctx := context.Background()
	store := testhelpers.NewMockStore()
	service := NewBoardService(store)

	store.ProjectRepo.On("Create", ctx, mock.MatchedBy(func(p *entities.Project) bool {
		return p.Status == entities.ProjectStatusPlanning && p.Progress == 0
	})).Return(nil)

	project, err := service.CreateProject(ctx, entities.NewProject{Name: "Platform"})

	require.NoError(t, err)
	assert.Equal(t, entities.ProjectStatusPlanning, project.Status)
	store.AssertExpectations(t)
}

func TestCreateDonor_DefaultsAmountAndStatus(t *testing.T) {
	ctx := context.Background()
	store := testhelpers.NewMockStore()
	service := NewBoardService(store)

	store.DonorRepo.On("Create", ctx, mock.MatchedBy(func(d *entities.Donor) bool {
		return d.TotalDonated == "0" && d.Status == "Active"
	})).Return(nil)

	donor, err := service.CreateDonor(ctx, entities.NewDonor{Name: "Jordan Lee", Email: "jordan@example.com"})

	require.NoError(t, err)
	assert.Equal(t, "0", donor.TotalDonated)
	store.AssertExpectations(t)
}
