package entities

import (
	"time"
)

// Task statuses drive Kanban column placement.
const (
	TaskStatusTodo       = "To Do"
	TaskStatusInProgress = "In Progress"
	TaskStatusDone       = "Done"
)

// ValidTaskStatus reports whether s is one of the Kanban columns.
func ValidTaskStatus(s string) bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	}
	return false
}

// Task belongs to a project and moves between Kanban columns via partial
// updates.
type Task struct {
	ID        string    `db:"id" json:"id"`
	ProjectID string    `db:"project_id" json:"projectId"`
	Title     string    `db:"title" json:"title"`
	Status    string    `db:"status" json:"status"`
	Priority  string    `db:"priority" json:"priority"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// NewTask holds the fields accepted on create. Status defaults to "To Do".
type NewTask struct {
	ProjectID string
	Title     string
	Status    string
	Priority  string
}

// Validate checks required fields for a task create.
func (n *NewTask) Validate() error {
	ve := &ValidationError{}
	if n.ProjectID == "" {
		ve.Add("projectId", "is required")
	}
	if n.Title == "" {
		ve.Add("title", "is required")
	}
	if n.Status != "" && !ValidTaskStatus(n.Status) {
		ve.Add("status", "must be one of: To Do, In Progress, Done")
	}
	if ve.HasViolations() {
		return ve
	}
	return nil
}

// TaskUpdate carries a partial update; nil fields are left untouched.
type TaskUpdate struct {
	Title    *string
	Status   *string
	Priority *string
}

// Validate rejects unknown Kanban statuses on update.
func (u *TaskUpdate) Validate() error {
	if u.Status != nil && !ValidTaskStatus(*u.Status) {
		return NewValidationError("status", "must be one of: To Do, In Progress, Done")
	}
	return nil
}
