package api

import (
	"time"

	"github.com/nhle/project-tracker/internal/model"
)

const dateLayout = "2006-01-02"

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type userResponse struct {
	UserID int64  `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Token  string `json:"token,omitempty"`
}

type createProjectRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Deadline    *string `json:"deadline"`
}

type projectResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Deadline    *string   `json:"deadline"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func newProjectResponse(p model.Project) projectResponse {
	resp := projectResponse{
		ID:          p.ID,
		UserID:      p.UserID,
		Name:        p.Name,
		Description: p.Description,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
	}
	if p.Deadline != nil {
		d := p.Deadline.Format(dateLayout)
		resp.Deadline = &d
	}
	return resp
}

// parseDeadline accepts a YYYY-MM-DD date; nil or blank means no deadline.
func parseDeadline(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	d, err := time.Parse(dateLayout, *raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

type successResponse struct {
	Success bool `json:"success"`
}
