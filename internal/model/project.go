package model

import "time"

// Project status values.
const (
	ProjectStatusInProgress = "in_progress"
)

// Project is a unit of work owned by exactly one user.
type Project struct {
	ID          int64      `json:"id" db:"id"`
	UserID      int64      `json:"user_id" db:"user_id"`
	Name        string     `json:"name" db:"name"`
	Description *string    `json:"description,omitempty" db:"description"`
	Deadline    *time.Time `json:"deadline,omitempty" db:"deadline"`
	Status      string     `json:"status" db:"status"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
}
