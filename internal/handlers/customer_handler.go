package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/glowdesk/salon-manager/internal/domain/coupon"
	"github.com/glowdesk/salon-manager/internal/httpresp"
	"github.com/glowdesk/salon-manager/internal/models"
	"github.com/glowdesk/salon-manager/internal/registry"
	"github.com/glowdesk/salon-manager/internal/timezone"
	"github.com/glowdesk/salon-manager/internal/validators"
)

type CustomerHandler struct {
	tables *registry.Tables
}

func NewCustomerHandler(tables *registry.Tables) *CustomerHandler {
	return &CustomerHandler{tables: tables}
}

// --------- Requests ---------

type CreateCustomerRequest struct {
	Name        string `json:"name" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	Email       string `json:"email"`
	Birthday    string `json:"birthday"`
	Anniversary string `json:"anniversary"`
}

type UpdateCustomerRequest struct {
	Name             *string    `json:"name,omitempty"`
	Phone            *string    `json:"phone,omitempty"`
	Email            *string    `json:"email,omitempty"`
	Birthday         *string    `json:"birthday,omitempty"`
	Anniversary      *string    `json:"anniversary,omitempty"`
	IsMember         *bool      `json:"is_member,omitempty"`
	MembershipExpiry *time.Time `json:"membership_expiry,omitempty"`
	PackageID        *string    `json:"package_id,omitempty"`
	PackageExpiry    *time.Time `json:"package_expiry,omitempty"`
}

type TopUpRequest struct {
	Amount int `json:"amount" binding:"required,min=1"`
}

type AssignCouponRequest struct {
	TemplateID string `json:"template_id" binding:"required"`
}

// --------- Handlers ---------

func (h *CustomerHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	customers := h.tables.Customers.GetAll(c.Request.Context())

	out := make([]models.Customer, 0, len(customers))
	for _, cust := range customers {
		if query != "" &&
			!strings.Contains(strings.ToLower(cust.Name), query) &&
			!strings.Contains(cust.Phone, query) &&
			!strings.Contains(strings.ToLower(cust.Email), query) {
			continue
		}
		out = append(out, cust)
	}

	httpresp.List(c, out)
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if !validators.IsPhoneValid(req.Phone) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_phone"})
		return
	}

	now := timezone.Now()
	customer := models.Customer{
		ID:          models.NewID(),
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Birthday:    normalizeSameYearDate(req.Birthday),
		Anniversary: normalizeSameYearDate(req.Anniversary),
		Coupons:     []models.Coupon{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.tables.Customers.Add(c.Request.Context(), customer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_customer"})
		return
	}

	c.JSON(http.StatusCreated, customer)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	customers := h.tables.Customers.GetAll(c.Request.Context())
	idx := -1
	for i := range customers {
		if customers[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "customer_not_found"})
		return
	}

	if req.Name != nil {
		customers[idx].Name = *req.Name
	}
	if req.Phone != nil {
		if !validators.IsPhoneValid(*req.Phone) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_phone"})
			return
		}
		customers[idx].Phone = *req.Phone
	}
	if req.Email != nil {
		customers[idx].Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Birthday != nil {
		customers[idx].Birthday = normalizeSameYearDate(*req.Birthday)
	}
	if req.Anniversary != nil {
		customers[idx].Anniversary = normalizeSameYearDate(*req.Anniversary)
	}
	if req.IsMember != nil {
		customers[idx].IsMember = *req.IsMember
	}
	if req.MembershipExpiry != nil {
		customers[idx].MembershipExpiry = req.MembershipExpiry
	}
	if req.PackageID != nil {
		customers[idx].PackageID = *req.PackageID
	}
	if req.PackageExpiry != nil {
		customers[idx].PackageExpiry = req.PackageExpiry
	}
	customers[idx].UpdatedAt = timezone.Now()

	if err := h.tables.Customers.Save(c.Request.Context(), customers); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_customer"})
		return
	}

	c.JSON(http.StatusOK, customers[idx])
}

// TopUp is the only credit path into a wallet.
func (h *CustomerHandler) TopUp(c *gin.Context) {
	id := c.Param("id")

	var req TopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	customers := h.tables.Customers.GetAll(c.Request.Context())
	idx := -1
	for i := range customers {
		if customers[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "customer_not_found"})
		return
	}

	customers[idx].WalletBalance += req.Amount
	customers[idx].UpdatedAt = timezone.Now()

	if err := h.tables.Customers.Save(c.Request.Context(), customers); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_top_up"})
		return
	}

	c.JSON(http.StatusOK, customers[idx])
}

// AssignCoupon issues a frozen copy of a template to the customer.
func (h *CustomerHandler) AssignCoupon(c *gin.Context) {
	id := c.Param("id")

	var req AssignCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var tpl *models.CouponTemplate
	for _, t := range h.tables.CouponTemplates.GetAll(c.Request.Context()) {
		if t.ID == req.TemplateID {
			tpl = &t
			break
		}
	}
	if tpl == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "template_not_found"})
		return
	}

	customers := h.tables.Customers.GetAll(c.Request.Context())
	idx := -1
	for i := range customers {
		if customers[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "customer_not_found"})
		return
	}

	issued := coupon.Issue(tpl, timezone.Now())
	customers[idx].Coupons = append(customers[idx].Coupons, issued)
	customers[idx].UpdatedAt = timezone.Now()

	if err := h.tables.Customers.Save(c.Request.Context(), customers); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_assign_coupon"})
		return
	}

	c.JSON(http.StatusCreated, issued)
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	customers := h.tables.Customers.GetAll(c.Request.Context())
	kept := make([]models.Customer, 0, len(customers))
	found := false
	for _, cust := range customers {
		if cust.ID == id {
			found = true
			continue
		}
		kept = append(kept, cust)
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "customer_not_found"})
		return
	}

	if err := h.tables.Customers.Save(c.Request.Context(), kept); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_customer"})
		return
	}

	c.Status(http.StatusNoContent)
}

// normalizeSameYearDate pins a birthday or anniversary to a fixed year so
// month/day comparisons work across years.
func normalizeSameYearDate(s string) string {
	if s == "" {
		return ""
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return ""
	}
	return time.Date(2000, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).Format("2006-01-02")
}
