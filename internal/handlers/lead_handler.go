package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glowdesk/salon-manager/internal/httperr"
	"github.com/glowdesk/salon-manager/internal/httpresp"
	"github.com/glowdesk/salon-manager/internal/models"
	"github.com/glowdesk/salon-manager/internal/registry"
	"github.com/glowdesk/salon-manager/internal/timezone"
	ucLead "github.com/glowdesk/salon-manager/internal/usecase/lead"
)

type LeadHandler struct {
	tables       *registry.Tables
	updateStatus *ucLead.UpdateStatus
}

func NewLeadHandler(tables *registry.Tables, updateStatus *ucLead.UpdateStatus) *LeadHandler {
	return &LeadHandler{tables: tables, updateStatus: updateStatus}
}

// --------- Requests ---------

type CreateLeadRequest struct {
	Name   string `json:"name" binding:"required"`
	Phone  string `json:"phone" binding:"required"`
	Email  string `json:"email"`
	Source string `json:"source"`
}

type UpdateLeadStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AddLeadCommentRequest struct {
	Text   string `json:"text" binding:"required"`
	Author string `json:"author"`
}

// --------- Handlers ---------

func (h *LeadHandler) List(c *gin.Context) {
	status := c.Query("status")

	leads := h.tables.Leads.GetAll(c.Request.Context())

	out := make([]models.Lead, 0, len(leads))
	for _, l := range leads {
		if status != "" && string(l.Status) != status {
			continue
		}
		out = append(out, l)
	}

	httpresp.List(c, out)
}

func (h *LeadHandler) Create(c *gin.Context) {
	var req CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	now := timezone.Now()
	lead := models.Lead{
		ID:        models.NewID(),
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		Source:    req.Source,
		Status:    models.LeadNew,
		Comments:  []models.LeadComment{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := h.tables.Leads.Add(c.Request.Context(), lead); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_lead"})
		return
	}

	c.JSON(http.StatusCreated, lead)
}

func (h *LeadHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var req UpdateLeadStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	lead, err := h.updateStatus.Execute(c.Request.Context(), id, models.LeadStatus(req.Status))
	if err != nil {
		if httperr.IsBusiness(err, "lead_not_found") {
			httperr.NotFound(c, "lead_not_found", "no such lead")
			return
		}
		if code := httperr.BusinessCode(err); code != "" {
			httperr.BadRequest(c, code, "could not update lead")
			return
		}
		httperr.Internal(c, "failed_to_update_lead", err.Error())
		return
	}

	c.JSON(http.StatusOK, lead)
}

// AddComment appends to the lead's ordered comment list.
func (h *LeadHandler) AddComment(c *gin.Context) {
	id := c.Param("id")

	var req AddLeadCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	leads := h.tables.Leads.GetAll(c.Request.Context())
	idx := -1
	for i := range leads {
		if leads[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "lead_not_found"})
		return
	}

	now := timezone.Now()
	leads[idx].Comments = append(leads[idx].Comments, models.LeadComment{
		Text:      req.Text,
		Author:    req.Author,
		CreatedAt: now,
	})
	leads[idx].UpdatedAt = now

	if err := h.tables.Leads.Save(c.Request.Context(), leads); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_add_comment"})
		return
	}

	c.JSON(http.StatusOK, leads[idx])
}
