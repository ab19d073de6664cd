package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nhle/project-tracker/internal/model"
)

// CreateProject stores a project for the caller, then logs a
// create_project activity and notifies the caller. The three writes are
// sequential, not atomic.
func (h *Handler) CreateProject(c *gin.Context) {
	var body createProjectRequest
	if err := c.ShouldBindJSON(&body); err != nil || strings.TrimSpace(body.Name) == "" {
		badRequest(c, "project name is required")
		return
	}
	deadline, err := parseDeadline(body.Deadline)
	if err != nil {
		badRequest(c, "deadline must be a YYYY-MM-DD date")
		return
	}

	ctx := c.Request.Context()
	userID := currentUserID(c)

	projectID, err := h.store.CreateProject(ctx, userID, body.Name, body.Description, deadline)
	if err != nil {
		h.respondError(c, "creating project", err)
		return
	}

	_, err = h.store.AddActivity(ctx, userID, &projectID,
		fmt.Sprintf("New project %q created", body.Name), model.ActivityCreateProject)
	if err != nil {
		h.respondError(c, "logging project activity", err)
		return
	}

	_, err = h.store.AddNotification(ctx, userID, "New Project",
		fmt.Sprintf("Project %q was created successfully!", body.Name))
	if err != nil {
		h.respondError(c, "creating project notification", err)
		return
	}

	h.logger(c).Info("project created", zap.Int64("project_id", projectID), zap.Int64("user_id", userID))
	c.JSON(http.StatusOK, gin.H{"projectId": projectID})
}

// ListProjects returns every project of the caller, newest first.
func (h *Handler) ListProjects(c *gin.Context) {
	projects, err := h.store.ListProjects(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.respondError(c, "listing projects", err)
		return
	}

	resp := make([]projectResponse, 0, len(projects))
	for _, p := range projects {
		resp = append(resp, newProjectResponse(p))
	}
	c.JSON(http.StatusOK, resp)
}

// GetProject returns one project of the caller or 404.
func (h *Handler) GetProject(c *gin.Context) {
	project, ok := h.loadProject(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, newProjectResponse(*project))
}

// DeleteProject verifies ownership, runs the cascade, and records a
// delete_project activity when a row was removed.
func (h *Handler) DeleteProject(c *gin.Context) {
	project, ok := h.loadProject(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	userID := currentUserID(c)

	outcome, err := h.store.DeleteProject(ctx, project.ID, userID)
	if err != nil {
		h.respondError(c, "deleting project", err)
		return
	}

	if outcome.Applied() {
		_, err = h.store.AddActivity(ctx, userID, nil,
			fmt.Sprintf("Project %q was deleted", project.Name), model.ActivityDeleteProject)
		if err != nil {
			h.respondError(c, "logging project activity", err)
			return
		}
		h.logger(c).Info("project deleted", zap.Int64("project_id", project.ID), zap.Int64("user_id", userID))
	}

	c.JSON(http.StatusOK, successResponse{Success: outcome.Applied()})
}

// loadProject resolves the :id path parameter to a project owned by the
// caller, writing a 404 or 500 response and returning false otherwise.
func (h *Handler) loadProject(c *gin.Context) (*model.Project, bool) {
	projectID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return nil, false
	}

	project, err := h.store.GetProject(c.Request.Context(), projectID, currentUserID(c))
	if errors.Is(err, model.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return nil, false
	}
	if err != nil {
		h.respondError(c, "loading project", err)
		return nil, false
	}
	return project, true
}
