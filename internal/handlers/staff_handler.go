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

type StaffHandler struct {
	tables *registry.Tables
}

func NewStaffHandler(tables *registry.Tables) *StaffHandler {
	return &StaffHandler{tables: tables}
}

// --------- Requests ---------

type CreateStaffRequest struct {
	Name          string   `json:"name" binding:"required"`
	Phone         string   `json:"phone"`
	Email         string   `json:"email"`
	Role          string   `json:"role" binding:"required"`
	Specialty     []string `json:"specialty"`
	MonthlyTarget int      `json:"monthly_target"`
	Salary        int      `json:"salary"`
	DeviceID      string   `json:"device_id"`
}

type UpdateStaffRequest struct {
	Name          *string   `json:"name,omitempty"`
	Phone         *string   `json:"phone,omitempty"`
	Email         *string   `json:"email,omitempty"`
	Role          *string   `json:"role,omitempty"`
	Specialty     *[]string `json:"specialty,omitempty"`
	Active        *bool     `json:"active,omitempty"`
	MonthlyTarget *int      `json:"monthly_target,omitempty"`
	Salary        *int      `json:"salary,omitempty"`
	DeviceID      *string   `json:"device_id,omitempty"`
}

// --------- Handlers ---------

func (h *StaffHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))
	activeStr := strings.TrimSpace(c.Query("active"))

	staff := h.tables.Staff.GetAll(c.Request.Context())

	out := make([]models.Staff, 0, len(staff))
	for _, s := range staff {
		if activeStr == "true" && !s.Active {
			continue
		}
		if activeStr == "false" && s.Active {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(s.Name), query) &&
			!strings.Contains(s.Phone, query) {
			continue
		}
		out = append(out, s)
	}

	httpresp.List(c, out)
}

func (h *StaffHandler) Create(c *gin.Context) {
	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	role := models.StaffRole(req.Role)
	if !role.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_role"})
		return
	}

	if req.Specialty == nil {
		req.Specialty = []string{}
	}

	now := timezone.Now()
	staff := models.Staff{
		ID:            models.NewID(),
		Name:          req.Name,
		Phone:         req.Phone,
		Email:         req.Email,
		Role:          role,
		Specialty:     req.Specialty,
		Active:        true,
		MonthlyTarget: req.MonthlyTarget,
		Salary:        req.Salary,
		DeviceID:      req.DeviceID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := h.tables.Staff.Add(c.Request.Context(), staff); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_staff"})
		return
	}

	c.JSON(http.StatusCreated, staff)
}

func (h *StaffHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	staff := h.tables.Staff.GetAll(c.Request.Context())
	idx := -1
	for i := range staff {
		if staff[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "staff_not_found"})
		return
	}

	if req.Name != nil {
		staff[idx].Name = *req.Name
	}
	if req.Phone != nil {
		staff[idx].Phone = *req.Phone
	}
	if req.Email != nil {
		staff[idx].Email = *req.Email
	}
	if req.Role != nil {
		role := models.StaffRole(*req.Role)
		if !role.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_role"})
			return
		}
		staff[idx].Role = role
	}
	if req.Specialty != nil {
		staff[idx].Specialty = *req.Specialty
	}
	if req.Active != nil {
		staff[idx].Active = *req.Active
	}
	if req.MonthlyTarget != nil {
		staff[idx].MonthlyTarget = *req.MonthlyTarget
	}
	if req.Salary != nil {
		staff[idx].Salary = *req.Salary
	}
	if req.DeviceID != nil {
		staff[idx].DeviceID = *req.DeviceID
	}
	staff[idx].UpdatedAt = timezone.Now()

	if err := h.tables.Staff.Save(c.Request.Context(), staff); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_staff"})
		return
	}

	c.JSON(http.StatusOK, staff[idx])
}

func (h *StaffHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	staff := h.tables.Staff.GetAll(c.Request.Context())
	kept := make([]models.Staff, 0, len(staff))
	found := false
	for _, s := range staff {
		if s.ID == id {
			found = true
			continue
		}
		kept = append(kept, s)
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "staff_not_found"})
		return
	}

	if err := h.tables.Staff.Save(c.Request.Context(), kept); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_staff"})
		return
	}

	c.Status(http.StatusNoContent)
}
