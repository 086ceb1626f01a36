package api

import (
	"encoding/json"
	"net/http"

	"workbindr/domain/entities"
	"workbindr/domain/interfaces"

	"github.com/uptrace/bunrouter"
)

// BoardHandler serves projects, tasks and donors.
type BoardHandler struct {
	board interfaces.BoardService
}

// NewBoardHandler creates a new board handler.
func NewBoardHandler(board interfaces.BoardService) *BoardHandler {
	return &BoardHandler{board: board}
}

// ListProjects returns all projects, newest first.
func (h *BoardHandler) ListProjects(w http.ResponseWriter, req bunrouter.Request) error {
	projects, err := h.board.ListProjects(req.Context())
	if err != nil {
		return handleError(w, req, err)
	}
	return bunrouter.JSON(w, projects)
}

type createProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	Progress    *int   `json:"progress"`
}

// CreateProject validates and creates a project.
func (h *BoardHandler) CreateProject(w http.ResponseWriter, req bunrouter.Request) error {
	var body createProjectRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest(w, "invalid request body")
	}

	project, err := h.board.CreateProject(req.Context(), entities.NewProject{
		Name:        body.Name,
		Description: body.Description,
		Status:      body.Status,
		Priority:    body.Priority,
		Progress:    body.Progress,
	})
	if err != nil {
		return handleError(w, req, err)
	}
	return writeJSON(w, http.StatusCreated, project)
}

type updateProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	Progress    *int    `json:"progress"`
}

// UpdateProject merges a partial update over an existing project.
func (h *BoardHandler) UpdateProject(w http.ResponseWriter, req bunrouter.Request) error {
	var body updateProjectRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest(w, "invalid request body")
	}

	project, err := h.board.UpdateProject(req.Context(), req.Param("id"), entities.ProjectUpdate{
		Name:        body.Name,
		Description: body.Description,
		Status:      body.Status,
		Priority:    body.Priority,
		Progress:    body.Progress,
	})
	if err != nil {
		return handleError(w, req, err)
	}
	return bunrouter.JSON(w, project)
}

// ListTasks returns all tasks, newest first.
func (h *BoardHandler) ListTasks(w http.ResponseWriter, req bunrouter.Request) error {
	tasks, err := h.board.ListTasks(req.Context())
	if err != nil {
		return handleError(w, req, err)
	}
	return bunrouter.JSON(w, tasks)
}

// ProjectTasks returns a project's tasks, newest first.
func (h *BoardHandler) ProjectTasks(w http.ResponseWriter, req bunrouter.Request) error {
	tasks, err := h.board.ProjectTasks(req.Context(), req.Param("id"))
	if err != nil {
		return handleError(w, req, err)
	}
	return bunrouter.JSON(w, tasks)
}

type createTaskRequest struct {
	ProjectID string `json:"projectId"`
	Title     string `json:"title"`
	Status    string `json:"status"`
	Priority  string `json:"priority"`
}

// CreateTask validates and creates a task under a project.
func (h *BoardHandler) CreateTask(w http.ResponseWriter, req bunrouter.Request) error {
	var body createTaskRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest(w, "invalid request body")
	}

	task, err := h.board.CreateTask(req.Context(), entities.NewTask{
		ProjectID: body.ProjectID,
		Title:     body.Title,
		Status:    body.Status,
		Priority:  body.Priority,
	})
	if err != nil {
		return handleError(w, req, err)
	}
	return writeJSON(w, http.StatusCreated, task)
}

type updateTaskRequest struct {
	Title    *string `json:"title"`
	Status   *string `json:"status"`
	Priority *string `json:"priority"`
}

// UpdateTask merges a partial update over an existing task.
func (h *BoardHandler) UpdateTask(w http.ResponseWriter, req bunrouter.Request) error {
	var body updateTaskRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest(w, "invalid request body")
	}

	task, err := h.board.UpdateTask(req.Context(), req.Param("id"), entities.TaskUpdate{
		Title:    body.Title,
		Status:   body.Status,
		Priority: body.Priority,
	})
	if err != nil {
		return handleError(w, req, err)
	}
	return bunrouter.JSON(w, task)
}

// ListDonors returns all donors, newest first.
func (h *BoardHandler) ListDonors(w http.ResponseWriter, req bunrouter.Request) error {
	donors, err := h.board.ListDonors(req.Context())
	if err != nil {
		return handleError(w, req, err)
	}
	return bunrouter.JSON(w, donors)
}

type createDonorRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	TotalDonated string `json:"totalDonated"`
	Status       string `json:"status"`
}

// CreateDonor validates and creates a donor.
func (h *BoardHandler) CreateDonor(w http.ResponseWriter, req bunrouter.Request) error {
	var body createDonorRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest(w, "invalid request body")
	}

	donor, err := h.board.CreateDonor(req.Context(), entities.NewDonor{
		Name:         body.Name,
		Email:        body.Email,
		TotalDonated: body.TotalDonated,
		Status:       body.Status,
	})
	if err != nil {
		return handleError(w, req, err)
	}
	return writeJSON(w, http.StatusCreated, donor)
}

type updateDonorRequest struct {
	Name          *string `json:"name"`
	Email         *string `json:"email"`
	TotalDonated  *string `json:"totalDonated"`
	DonationCount *int    `json:"donationCount"`
	Status        *string `json:"status"`
}

// UpdateDonor merges a partial update over an existing donor.
func (h *BoardHandler) UpdateDonor(w http.ResponseWriter, req bunrouter.Request) error {
	var body updateDonorRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		return badRequest(w, "invalid request body")
	}

	donor, err := h.board.UpdateDonor(req.Context(), req.Param("id"), entities.DonorUpdate{
		Name:          body.Name,
		Email:         body.Email,
		TotalDonated:  body.TotalDonated,
		DonationCount: body.DonationCount,
		Status:        body.Status,
	})
	if err != nil {
		return handleError(w, req, err)
	}
	return bunrouter.JSON(w, donor)
}
