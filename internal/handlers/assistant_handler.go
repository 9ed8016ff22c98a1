package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glowdesk/salon-manager/internal/assistant"
	"github.com/glowdesk/salon-manager/internal/httperr"
	"github.com/glowdesk/salon-manager/internal/models"
	"github.com/glowdesk/salon-manager/internal/registry"
	"github.com/glowdesk/salon-manager/internal/timezone"
)

type AssistantHandler struct {
	tables *registry.Tables
	client *assistant.Client
}

func NewAssistantHandler(tables *registry.Tables, client *assistant.Client) *AssistantHandler {
	return &AssistantHandler{tables: tables, client: client}
}

type AssistantRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// Generate forwards the prompt with a context built from current low
// stock and today's sales.
func (h *AssistantHandler) Generate(c *gin.Context) {
	if !h.client.IsConfigured() {
		httperr.BadRequest(c, "assistant_not_configured", "no assistant endpoint set")
		return
	}

	var req AssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ctx := c.Request.Context()

	var lowStock []models.InventoryItem
	for _, item := range h.tables.Inventory.GetAll(ctx) {
		if item.LowStock() {
			lowStock = append(lowStock, item)
		}
	}

	today := timezone.Today()
	var todaySales []models.Sale
	for _, s := range h.tables.Sales.GetAll(ctx) {
		if s.Date == today {
			todaySales = append(todaySales, s)
		}
	}

	text, err := h.client.GenerateText(ctx, req.Prompt, assistant.BuildContext(lowStock, todaySales))
	if err != nil {
		httperr.BadGateway(c, "assistant_failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"text": text})
}
