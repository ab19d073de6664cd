package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nhle/project-tracker/internal/store"
)

const maxActivityLimit = 100

// ListActivities returns the caller's most recent activities. The page size
// defaults to 10 and may be raised with ?limit= up to 100.
func (h *Handler) ListActivities(c *gin.Context) {
	limit := store.DefaultActivityLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxActivityLimit {
			badRequest(c, "limit must be between 1 and 100")
			return
		}
		limit = n
	}

	activities, err := h.store.ListActivities(c.Request.Context(), currentUserID(c), limit)
	if err != nil {
		h.respondError(c, "listing activities", err)
		return
	}
	c.JSON(http.StatusOK, activities)
}
