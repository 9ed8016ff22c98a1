package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/glowdesk/salon-manager/internal/httpresp"
	"github.com/glowdesk/salon-manager/internal/models"
	"github.com/glowdesk/salon-manager/internal/registry"
	"github.com/glowdesk/salon-manager/internal/timezone"
)

type InventoryHandler struct {
	tables *registry.Tables
}

func NewInventoryHandler(tables *registry.Tables) *InventoryHandler {
	return &InventoryHandler{tables: tables}
}

// --------- Requests ---------

type CreateInventoryRequest struct {
	Name          string `json:"name" binding:"required"`
	SKU           string `json:"sku"`
	Quantity      int    `json:"quantity" binding:"min=0"`
	Unit          string `json:"unit"`
	Price         int    `json:"price" binding:"min=0"`
	LowStockLevel int    `json:"low_stock_level" binding:"min=0"`
}

type UpdateInventoryRequest struct {
	Name          *string `json:"name,omitempty"`
	SKU           *string `json:"sku,omitempty"`
	Quantity      *int    `json:"quantity,omitempty"`
	Unit          *string `json:"unit,omitempty"`
	Price         *int    `json:"price,omitempty"`
	LowStockLevel *int    `json:"low_stock_level,omitempty"`
}

// --------- Handlers ---------

func (h *InventoryHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))
	lowOnly := c.Query("low_stock") == "true"

	items := h.tables.Inventory.GetAll(c.Request.Context())

	out := make([]models.InventoryItem, 0, len(items))
	for _, item := range items {
		if lowOnly && !item.LowStock() {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(item.Name), query) &&
			!strings.Contains(strings.ToLower(item.SKU), query) {
			continue
		}
		out = append(out, item)
	}

	httpresp.List(c, out)
}

func (h *InventoryHandler) Create(c *gin.Context) {
	var req CreateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	now := timezone.Now()
	item := models.InventoryItem{
		ID:            models.NewID(),
		Name:          req.Name,
		SKU:           req.SKU,
		Quantity:      req.Quantity,
		Unit:          req.Unit,
		Price:         req.Price,
		LowStockLevel: req.LowStockLevel,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := h.tables.Inventory.Add(c.Request.Context(), item); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_item"})
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *InventoryHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	items := h.tables.Inventory.GetAll(c.Request.Context())
	idx := -1
	for i := range items {
		if items[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "item_not_found"})
		return
	}

	if req.Name != nil {
		items[idx].Name = *req.Name
	}
	if req.SKU != nil {
		items[idx].SKU = *req.SKU
	}
	if req.Quantity != nil {
		items[idx].Quantity = *req.Quantity
	}
	if req.Unit != nil {
		items[idx].Unit = *req.Unit
	}
	if req.Price != nil {
		items[idx].Price = *req.Price
	}
	if req.LowStockLevel != nil {
		items[idx].LowStockLevel = *req.LowStockLevel
	}
	items[idx].UpdatedAt = timezone.Now()

	if err := h.tables.Inventory.Save(c.Request.Context(), items); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_item"})
		return
	}

	c.JSON(http.StatusOK, items[idx])
}

func (h *InventoryHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	items := h.tables.Inventory.GetAll(c.Request.Context())
	kept := make([]models.InventoryItem, 0, len(items))
	found := false
	for _, item := range items {
		if item.ID == id {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "item_not_found"})
		return
	}

	if err := h.tables.Inventory.Save(c.Request.Context(), kept); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_item"})
		return
	}

	c.Status(http.StatusNoContent)
}
