package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/glowdesk/salon-manager/internal/domain/attendance"
	"github.com/glowdesk/salon-manager/internal/httperr"
	"github.com/glowdesk/salon-manager/internal/httpresp"
	"github.com/glowdesk/salon-manager/internal/registry"
	"github.com/glowdesk/salon-manager/internal/timezone"
	ucAttendance "github.com/glowdesk/salon-manager/internal/usecase/attendance"
)

type AttendanceHandler struct {
	tables *registry.Tables
	clock  *ucAttendance.Clock
}

func NewAttendanceHandler(tables *registry.Tables, clock *ucAttendance.Clock) *AttendanceHandler {
	return &AttendanceHandler{tables: tables, clock: clock}
}

// --------- Requests ---------

type ClockRequest struct {
	StaffID string `json:"staff_id" binding:"required"`
}

// --------- Handlers ---------

func (h *AttendanceHandler) Login(c *gin.Context) {
	var req ClockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	rec, err := h.clock.Login(c.Request.Context(), req.StaffID)
	if err != nil {
		if httperr.IsBusiness(err, "staff_not_found") {
			httperr.NotFound(c, "staff_not_found", "no such staff member")
			return
		}
		httperr.Internal(c, "failed_to_log_in", err.Error())
		return
	}

	c.JSON(http.StatusCreated, rec)
}

func (h *AttendanceHandler) Logout(c *gin.Context) {
	var req ClockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	rec, err := h.clock.Logout(c.Request.Context(), req.StaffID)
	if err != nil {
		if httperr.IsBusiness(err, "no_open_attendance") {
			httperr.BadRequest(c, "no_open_attendance", "no open login for today")
			return
		}
		httperr.Internal(c, "failed_to_log_out", err.Error())
		return
	}

	c.JSON(http.StatusOK, rec)
}

func (h *AttendanceHandler) List(c *gin.Context) {
	date := c.Query("date")
	staffID := c.Query("staff_id")

	records := h.tables.Attendance.GetAll(c.Request.Context())

	type row struct {
		ID       string  `json:"id"`
		StaffID  string  `json:"staff_id"`
		Date     string  `json:"date"`
		LoginAt  any     `json:"login_at"`
		LogoutAt any     `json:"logout_at"`
		Hours    float64 `json:"hours"`
		Overtime float64 `json:"overtime"`
	}

	out := make([]row, 0, len(records))
	for _, rec := range records {
		if date != "" && rec.Date != date {
			continue
		}
		if staffID != "" && rec.StaffID != staffID {
			continue
		}
		out = append(out, row{
			ID:       rec.ID,
			StaffID:  rec.StaffID,
			Date:     rec.Date,
			LoginAt:  rec.LoginAt,
			LogoutAt: rec.LogoutAt,
			Hours:    domain.HoursWorked(&rec),
			Overtime: domain.Overtime(&rec),
		})
	}

	httpresp.List(c, out)
}

func (h *AttendanceHandler) Summary(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = timezone.Today()
	}

	httpresp.List(c, h.clock.Summary(c.Request.Context(), date))
}
