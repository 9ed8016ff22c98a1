package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glowdesk/salon-manager/internal/httperr"
	"github.com/glowdesk/salon-manager/internal/syncer"
)

type SyncHandler struct {
	orchestrator *syncer.Orchestrator
}

func NewSyncHandler(orchestrator *syncer.Orchestrator) *SyncHandler {
	return &SyncHandler{orchestrator: orchestrator}
}

// Pull overwrites every local table with the mirror's contents. Failure
// is non-fatal: the client shows the message and keeps local data.
func (h *SyncHandler) Pull(c *gin.Context) {
	if !h.orchestrator.Configured() {
		httperr.BadRequest(c, "mirror_not_configured", "no mirror endpoint set")
		return
	}

	if err := h.orchestrator.Pull(c.Request.Context()); err != nil {
		httperr.BadGateway(c, "sync_pull_failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (h *SyncHandler) Push(c *gin.Context) {
	if !h.orchestrator.Configured() {
		httperr.BadRequest(c, "mirror_not_configured", "no mirror endpoint set")
		return
	}

	if err := h.orchestrator.PushAll(c.Request.Context()); err != nil {
		httperr.BadGateway(c, "sync_push_failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
