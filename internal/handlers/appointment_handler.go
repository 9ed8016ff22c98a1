package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glowdesk/salon-manager/internal/httperr"
	"github.com/glowdesk/salon-manager/internal/httpresp"
	"github.com/glowdesk/salon-manager/internal/models"
	"github.com/glowdesk/salon-manager/internal/registry"
	"github.com/glowdesk/salon-manager/internal/timezone"
	ucBooking "github.com/glowdesk/salon-manager/internal/usecase/booking"
)

type AppointmentHandler struct {
	tables   *registry.Tables
	create   *ucBooking.Create
	defaults *ucBooking.Defaults
}

func NewAppointmentHandler(
	tables *registry.Tables,
	create *ucBooking.Create,
	defaults *ucBooking.Defaults,
) *AppointmentHandler {
	return &AppointmentHandler{
		tables:   tables,
		create:   create,
		defaults: defaults,
	}
}

// --------- Requests ---------

type CreateAppointmentRequest struct {
	CustomerID      string `json:"customer_id" binding:"required"`
	StaffID         string `json:"staff_id" binding:"required"`
	ServiceName     string `json:"service_name" binding:"required"`
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	DurationMin     int    `json:"duration_min"`
	ListPrice       int    `json:"list_price" binding:"min=0"`
	DiscountPercent int    `json:"discount_percent"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type BillRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
}

// --------- Handlers ---------

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucBooking.CreateInput{
		CustomerID:      req.CustomerID,
		StaffID:         req.StaffID,
		ServiceName:     req.ServiceName,
		Date:            req.Date,
		Time:            req.Time,
		DurationMin:     req.DurationMin,
		ListPrice:       req.ListPrice,
		DiscountPercent: req.DiscountPercent,
	})
	if err != nil {
		if code := httperr.BusinessCode(err); code != "" {
			httperr.BadRequest(c, code, "could not book appointment")
			return
		}
		httperr.Internal(c, "failed_to_create_appointment", err.Error())
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// Defaults returns the booking-form prefill for a catalog selection.
func (h *AppointmentHandler) Defaults(c *gin.Context) {
	out, err := h.defaults.Execute(
		c.Request.Context(),
		c.Query("customer_id"),
		c.Query("service_id"),
		c.Query("combo_id"),
	)
	if err != nil {
		if code := httperr.BusinessCode(err); code != "" {
			httperr.BadRequest(c, code, "could not resolve selection")
			return
		}
		httperr.Internal(c, "failed_to_compute_defaults", err.Error())
		return
	}

	c.JSON(http.StatusOK, out)
}

func (h *AppointmentHandler) List(c *gin.Context) {
	date := c.Query("date")
	status := c.Query("status")
	customerID := c.Query("customer_id")

	appointments := h.tables.Appointments.GetAll(c.Request.Context())

	out := make([]models.Appointment, 0, len(appointments))
	for _, ap := range appointments {
		if date != "" && ap.Date != date {
			continue
		}
		if status != "" && string(ap.Status) != status {
			continue
		}
		if customerID != "" && ap.CustomerID != customerID {
			continue
		}
		out = append(out, ap)
	}

	httpresp.List(c, out)
}

// UpdateStatus accepts any valid status from any current status.
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	status := models.AppointmentStatus(req.Status)
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_status"})
		return
	}

	appointments := h.tables.Appointments.GetAll(c.Request.Context())
	idx := -1
	for i := range appointments {
		if appointments[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "appointment_not_found"})
		return
	}

	appointments[idx].Status = status
	appointments[idx].UpdatedAt = timezone.Now()

	if err := h.tables.Appointments.Save(c.Request.Context(), appointments); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_appointment"})
		return
	}

	c.JSON(http.StatusOK, appointments[idx])
}

// Bill stamps the payment method on a completed appointment.
func (h *AppointmentHandler) Bill(c *gin.Context) {
	id := c.Param("id")

	var req BillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	method := models.PaymentMethod(req.PaymentMethod)
	if !method.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payment_method"})
		return
	}

	appointments := h.tables.Appointments.GetAll(c.Request.Context())
	idx := -1
	for i := range appointments {
		if appointments[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "appointment_not_found"})
		return
	}

	appointments[idx].PaymentMethod = method
	appointments[idx].UpdatedAt = timezone.Now()

	if err := h.tables.Appointments.Save(c.Request.Context(), appointments); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_bill_appointment"})
		return
	}

	c.JSON(http.StatusOK, appointments[idx])
}

// Invoice groups a customer's completed appointments for one day.
func (h *AppointmentHandler) Invoice(c *gin.Context) {
	customerID := c.Query("customer_id")
	date := c.Query("date")
	if customerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "customer_required"})
		return
	}
	if date == "" {
		date = timezone.Today()
	}

	var lines []models.Appointment
	total := 0
	for _, ap := range h.tables.Appointments.GetAll(c.Request.Context()) {
		if ap.CustomerID != customerID || ap.Date != date || ap.Status != models.StatusCompleted {
			continue
		}
		lines = append(lines, ap)
		total += ap.Price
	}
	if lines == nil {
		lines = []models.Appointment{}
	}

	c.JSON(http.StatusOK, gin.H{
		"customer_id":  customerID,
		"date":         date,
		"appointments": lines,
		"total":        total,
	})
}
