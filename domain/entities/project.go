package entities

import (
	"time"
)

// Project statuses shown on the board overview.
const (
	ProjectStatusPlanning = "Planning"
	ProjectStatusActive   = "Active"
	ProjectStatusOnHold   = "On Hold"
	ProjectStatusDone     = "Completed"
)

// Project is a unit of work tracked on the dashboard. Progress is a whole
// percentage between 0 and 100.
type Project struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Status      string    `db:"status" json:"status"`
	Priority    string    `db:"priority" json:"priority"`
	Progress    int       `db:"progress" json:"progress"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// NewProject holds the fields accepted on create.
type NewProject struct {
	Name        string
	Description string
	Status      string
	Priority    string
	Progress    *int
}

// Validate checks required fields for a project create.
func (n *NewProject) Validate() error {
	ve := &ValidationError{}
	if n.Name == "" {
		ve.Add("name", "is required")
	}
	if n.Progress != nil && (*n.Progress < 0 || *n.Progress > 100) {
		ve.Add("progress", "must be between 0 and 100")
	}
	if ve.HasViolations() {
		return ve
	}
	return nil
}

// ProjectUpdate carries a partial update; nil fields are left untouched.
type ProjectUpdate struct {
	Name        *string
	Description *string
	Status      *string
	Priority    *string
	Progress    *int
}

// Validate rejects out-of-range progress values on update.
func (u *ProjectUpdate) Validate() error {
	if u.Progress != nil && (*u.Progress < 0 || *u.Progress > 100) {
		return NewValidationError("progress", "must be between 0 and 100")
	}
	return nil
}
