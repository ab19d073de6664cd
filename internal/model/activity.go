package model

import "time"

// Activity types recorded by the API.
const (
	ActivityCreateProject = "create_project"
	ActivityDeleteProject = "delete_project"
)

// Activity is an append-only audit log entry. ProjectID is nil for events
// that outlive their project, such as a deletion.
type Activity struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"user_id" db:"user_id"`
	ProjectID   *int64    `json:"project_id,omitempty" db:"project_id"`
	Description string    `json:"description" db:"description"`
	Type        string    `json:"type" db:"type"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
