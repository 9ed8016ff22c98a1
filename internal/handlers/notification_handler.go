package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glowdesk/salon-manager/internal/httpresp"
	"github.com/glowdesk/salon-manager/internal/registry"
	ucAlerts "github.com/glowdesk/salon-manager/internal/usecase/alerts"
)

type NotificationHandler struct {
	tables *registry.Tables
	sweep  *ucAlerts.Sweep
}

func NewNotificationHandler(tables *registry.Tables, sweep *ucAlerts.Sweep) *NotificationHandler {
	return &NotificationHandler{tables: tables, sweep: sweep}
}

func (h *NotificationHandler) List(c *gin.Context) {
	httpresp.List(c, h.tables.Notifications.GetAll(c.Request.Context()))
}

// UnreadCount backs the badge poll.
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	count := 0
	for _, n := range h.tables.Notifications.GetAll(c.Request.Context()) {
		if !n.Read {
			count++
		}
	}
	c.JSON(http.StatusOK, gin.H{"unread": count})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id := c.Param("id")

	notifications := h.tables.Notifications.GetAll(c.Request.Context())
	idx := -1
	for i := range notifications {
		if notifications[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "notification_not_found"})
		return
	}

	notifications[idx].Read = true
	if err := h.tables.Notifications.Save(c.Request.Context(), notifications); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_mark_read"})
		return
	}

	c.JSON(http.StatusOK, notifications[idx])
}

// Sweep scans inventory and memberships for fresh alerts.
func (h *NotificationHandler) Sweep(c *gin.Context) {
	created, err := h.sweep.Execute(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_sweep"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"created": created})
}
