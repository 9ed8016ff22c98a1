package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glowdesk/salon-manager/internal/httpresp"
	"github.com/glowdesk/salon-manager/internal/models"
	"github.com/glowdesk/salon-manager/internal/registry"
	"github.com/glowdesk/salon-manager/internal/timezone"
)

// CatalogHandler covers the definition tables: categories, services,
// combos, packages and coupon templates. Transactional records copy
// values out of these at use time, so edits here never rewrite history.
type CatalogHandler struct {
	tables *registry.Tables
}

func NewCatalogHandler(tables *registry.Tables) *CatalogHandler {
	return &CatalogHandler{tables: tables}
}

// --------- Categories ---------

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	httpresp.List(c, h.tables.Categories.GetAll(c.Request.Context()))
}

func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	category := models.Category{
		ID:        models.NewID(),
		Name:      req.Name,
		CreatedAt: timezone.Now(),
	}
	if err := h.tables.Categories.Add(c.Request.Context(), category); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_category"})
		return
	}
	c.JSON(http.StatusCreated, category)
}

// DeleteCategory does not cascade: services keep their category_id and
// resolve it to nothing at read time.
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	id := c.Param("id")

	categories := h.tables.Categories.GetAll(c.Request.Context())
	kept := make([]models.Category, 0, len(categories))
	found := false
	for _, cat := range categories {
		if cat.ID == id {
			found = true
			continue
		}
		kept = append(kept, cat)
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "category_not_found"})
		return
	}
	if err := h.tables.Categories.Save(c.Request.Context(), kept); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_category"})
		return
	}
	c.Status(http.StatusNoContent)
}

// --------- Services ---------

type CreateServiceRequest struct {
	Name        string `json:"name" binding:"required"`
	CategoryID  string `json:"category_id"`
	Price       int    `json:"price" binding:"min=0"`
	DurationMin int    `json:"duration_min"`
}

type UpdateServiceRequest struct {
	Name        *string `json:"name,omitempty"`
	CategoryID  *string `json:"category_id,omitempty"`
	Price       *int    `json:"price,omitempty"`
	DurationMin *int    `json:"duration_min,omitempty"`
	Active      *bool   `json:"active,omitempty"`
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	httpresp.List(c, h.tables.Services.GetAll(c.Request.Context()))
}

func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	now := timezone.Now()
	service := models.Service{
		ID:          models.NewID(),
		Name:        req.Name,
		CategoryID:  req.CategoryID,
		Price:       req.Price,
		DurationMin: req.DurationMin,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := h.tables.Services.Add(c.Request.Context(), service); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_service"})
		return
	}
	c.JSON(http.StatusCreated, service)
}

func (h *CatalogHandler) UpdateService(c *gin.Context) {
	id := c.Param("id")

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	services := h.tables.Services.GetAll(c.Request.Context())
	idx := -1
	for i := range services {
		if services[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "service_not_found"})
		return
	}

	if req.Name != nil {
		services[idx].Name = *req.Name
	}
	if req.CategoryID != nil {
		services[idx].CategoryID = *req.CategoryID
	}
	if req.Price != nil {
		services[idx].Price = *req.Price
	}
	if req.DurationMin != nil {
		services[idx].DurationMin = *req.DurationMin
	}
	if req.Active != nil {
		services[idx].Active = *req.Active
	}
	services[idx].UpdatedAt = timezone.Now()

	if err := h.tables.Services.Save(c.Request.Context(), services); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_service"})
		return
	}
	c.JSON(http.StatusOK, services[idx])
}

// --------- Combos ---------

type CreateComboRequest struct {
	Name         string   `json:"name" binding:"required"`
	ServiceNames []string `json:"service_names" binding:"required"`
	Price        int      `json:"price" binding:"min=0"`
}

func (h *CatalogHandler) ListCombos(c *gin.Context) {
	httpresp.List(c, h.tables.Combos.GetAll(c.Request.Context()))
}

func (h *CatalogHandler) CreateCombo(c *gin.Context) {
	var req CreateComboRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	now := timezone.Now()
	combo := models.Combo{
		ID:           models.NewID(),
		Name:         req.Name,
		ServiceNames: req.ServiceNames,
		Price:        req.Price,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := h.tables.Combos.Add(c.Request.Context(), combo); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_combo"})
		return
	}
	c.JSON(http.StatusCreated, combo)
}

// --------- Packages ---------

type CreatePackageRequest struct {
	Name         string `json:"name" binding:"required"`
	Price        int    `json:"price" binding:"min=0"`
	ValidityDays int    `json:"validity_days" binding:"required,min=1"`
	Benefits     string `json:"benefits"`
}

func (h *CatalogHandler) ListPackages(c *gin.Context) {
	httpresp.List(c, h.tables.Packages.GetAll(c.Request.Context()))
}

func (h *CatalogHandler) CreatePackage(c *gin.Context) {
	var req CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	now := timezone.Now()
	pkg := models.Package{
		ID:           models.NewID(),
		Name:         req.Name,
		Price:        req.Price,
		ValidityDays: req.ValidityDays,
		Benefits:     req.Benefits,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := h.tables.Packages.Add(c.Request.Context(), pkg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_package"})
		return
	}
	c.JSON(http.StatusCreated, pkg)
}

// --------- Coupon templates ---------

type CreateCouponTemplateRequest struct {
	Name         string `json:"name" binding:"required"`
	Code         string `json:"code" binding:"required"`
	Description  string `json:"description"`
	Value        int    `json:"value" binding:"required,min=1"`
	ValidityDays int    `json:"validity_days" binding:"required,min=1"`
}

type UpdateCouponTemplateRequest struct {
	Name         *string `json:"name,omitempty"`
	Code         *string `json:"code,omitempty"`
	Description  *string `json:"description,omitempty"`
	Value        *int    `json:"value,omitempty"`
	ValidityDays *int    `json:"validity_days,omitempty"`
}

func (h *CatalogHandler) ListCouponTemplates(c *gin.Context) {
	httpresp.List(c, h.tables.CouponTemplates.GetAll(c.Request.Context()))
}

func (h *CatalogHandler) CreateCouponTemplate(c *gin.Context) {
	var req CreateCouponTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	now := timezone.Now()
	tpl := models.CouponTemplate{
		ID:           models.NewID(),
		Name:         req.Name,
		Code:         req.Code,
		Description:  req.Description,
		Value:        req.Value,
		ValidityDays: req.ValidityDays,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := h.tables.CouponTemplates.Add(c.Request.Context(), tpl); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_template"})
		return
	}
	c.JSON(http.StatusCreated, tpl)
}

// UpdateCouponTemplate edits the template only; already-issued coupons
// keep their frozen copy.
func (h *CatalogHandler) UpdateCouponTemplate(c *gin.Context) {
	id := c.Param("id")

	var req UpdateCouponTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request", "details": err.Error()})
		return
	}

	templates := h.tables.CouponTemplates.GetAll(c.Request.Context())
	idx := -1
	for i := range templates {
		if templates[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "template_not_found"})
		return
	}

	if req.Name != nil {
		templates[idx].Name = *req.Name
	}
	if req.Code != nil {
		templates[idx].Code = *req.Code
	}
	if req.Description != nil {
		templates[idx].Description = *req.Description
	}
	if req.Value != nil {
		templates[idx].Value = *req.Value
	}
	if req.ValidityDays != nil {
		templates[idx].ValidityDays = *req.ValidityDays
	}
	templates[idx].UpdatedAt = timezone.Now()

	if err := h.tables.CouponTemplates.Save(c.Request.Context(), templates); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_template"})
		return
	}
	c.JSON(http.StatusOK, templates[idx])
}
