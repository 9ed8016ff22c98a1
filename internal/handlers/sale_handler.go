package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glowdesk/salon-manager/internal/httperr"
	"github.com/glowdesk/salon-manager/internal/httpresp"
	"github.com/glowdesk/salon-manager/internal/models"
	"github.com/glowdesk/salon-manager/internal/registry"
	ucSale "github.com/glowdesk/salon-manager/internal/usecase/sale"
)

type SaleHandler struct {
	tables   *registry.Tables
	checkout *ucSale.Checkout
}

func NewSaleHandler(tables *registry.Tables, checkout *ucSale.Checkout) *SaleHandler {
	return &SaleHandler{tables: tables, checkout: checkout}
}

// --------- Requests ---------

type CheckoutRequest struct {
	CustomerID    string            `json:"customer_id"`
	StaffID       string            `json:"staff_id"`
	Items         []models.SaleItem `json:"items" binding:"required"`
	PaymentMethod string            `json:"payment_method" binding:"required"`
}

// --------- Handlers ---------

func (h *SaleHandler) Create(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	sale, err := h.checkout.Execute(c.Request.Context(), ucSale.CheckoutInput{
		CustomerID:    req.CustomerID,
		StaffID:       req.StaffID,
		Items:         req.Items,
		PaymentMethod: models.PaymentMethod(req.PaymentMethod),
	})
	if err != nil {
		if httperr.IsBusiness(err, "insufficient_balance") {
			httperr.Conflict(c, "insufficient_balance", "wallet balance cannot cover this sale")
			return
		}
		if code := httperr.BusinessCode(err); code != "" {
			httperr.BadRequest(c, code, "could not record sale")
			return
		}
		httperr.Internal(c, "failed_to_create_sale", err.Error())
		return
	}

	c.JSON(http.StatusCreated, sale)
}

func (h *SaleHandler) List(c *gin.Context) {
	date := c.Query("date")
	customerID := c.Query("customer_id")
	staffID := c.Query("staff_id")

	sales := h.tables.Sales.GetAll(c.Request.Context())

	out := make([]models.Sale, 0, len(sales))
	for _, s := range sales {
		if date != "" && s.Date != date {
			continue
		}
		if customerID != "" && s.CustomerID != customerID {
			continue
		}
		if staffID != "" && s.StaffID != staffID {
			continue
		}
		out = append(out, s)
	}

	httpresp.List(c, out)
}
