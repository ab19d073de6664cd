package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ListNotifications returns all of the caller's notifications, newest first.
func (h *Handler) ListNotifications(c *gin.Context) {
	notifications, err := h.store.ListNotifications(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.respondError(c, "listing notifications", err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// MarkNotificationRead flags one notification as read. success is false
// when the id does not name a notification of the caller.
func (h *Handler) MarkNotificationRead(c *gin.Context) {
	notificationID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusOK, successResponse{Success: false})
		return
	}

	outcome, err := h.store.MarkNotificationRead(c.Request.Context(), notificationID, currentUserID(c))
	if err != nil {
		h.respondError(c, "marking notification read", err)
		return
	}
	c.JSON(http.StatusOK, successResponse{Success: outcome.Applied()})
}

// Counts returns the caller's project, activity, and unread notification
// counters.
func (h *Handler) Counts(c *gin.Context) {
	counts, err := h.store.Counts(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.respondError(c, "reading counts", err)
		return
	}
	c.JSON(http.StatusOK, counts)
}
