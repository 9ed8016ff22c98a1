package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/glowdesk/salon-manager/internal/export"
	"github.com/glowdesk/salon-manager/internal/httperr"
	"github.com/glowdesk/salon-manager/internal/models"
	"github.com/glowdesk/salon-manager/internal/registry"
	"github.com/glowdesk/salon-manager/internal/timezone"
)

const (
	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type ExportHandler struct {
	tables *registry.Tables
	backup *export.Backup
}

func NewExportHandler(tables *registry.Tables, backup *export.Backup) *ExportHandler {
	return &ExportHandler{tables: tables, backup: backup}
}

// Download streams one table as csv (default) or xlsx.
func (h *ExportHandler) Download(c *gin.Context) {
	table := c.Param("table")
	format := c.DefaultQuery("format", "csv")

	records, ok := h.recordsFor(c.Request.Context(), table)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown_table"})
		return
	}

	data, contentType, ext, err := render(records, format)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_format") {
			httperr.BadRequest(c, "invalid_format", "format must be csv or xlsx")
			return
		}
		httperr.Internal(c, "failed_to_export", err.Error())
		return
	}

	filename := fmt.Sprintf("%s_%s.%s", table, timezone.Now().Format("20060102_150405"), ext)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}

// Backup uploads a table snapshot to S3.
func (h *ExportHandler) Backup(c *gin.Context) {
	if !h.backup.Enabled() {
		httperr.BadRequest(c, "backup_not_configured", "S3 backup credentials not set")
		return
	}

	table := c.Param("table")
	format := c.DefaultQuery("format", "csv")

	records, ok := h.recordsFor(c.Request.Context(), table)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown_table"})
		return
	}

	data, contentType, _, err := render(records, format)
	if err != nil {
		if httperr.IsBusiness(err, "invalid_format") {
			httperr.BadRequest(c, "invalid_format", "format must be csv or xlsx")
			return
		}
		httperr.Internal(c, "failed_to_export", err.Error())
		return
	}

	key, err := h.backup.Upload(c.Request.Context(), table, data, contentType, timezone.Now())
	if err != nil {
		httperr.BadGateway(c, "backup_failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "key": key})
}

func render(records any, format string) (data []byte, contentType, ext string, err error) {
	switch format {
	case "csv":
		data, err = export.CSV(records)
		return data, contentTypeCSV, "csv", err
	case "xlsx", "excel":
		data, err = export.XLSX(records)
		return data, contentTypeXLSX, "xlsx", err
	default:
		return nil, "", "", httperr.ErrBusiness("invalid_format")
	}
}

func (h *ExportHandler) recordsFor(ctx context.Context, table string) (any, bool) {
	switch table {
	case models.TableStaff:
		return h.tables.Staff.GetAll(ctx), true
	case models.TableCustomers:
		return h.tables.Customers.GetAll(ctx), true
	case models.TableAppointments:
		return h.tables.Appointments.GetAll(ctx), true
	case models.TableSales:
		return h.tables.Sales.GetAll(ctx), true
	case models.TableInventory:
		return h.tables.Inventory.GetAll(ctx), true
	case models.TableCategories:
		return h.tables.Categories.GetAll(ctx), true
	case models.TableServices:
		return h.tables.Services.GetAll(ctx), true
	case models.TableCombos:
		return h.tables.Combos.GetAll(ctx), true
	case models.TablePackages:
		return h.tables.Packages.GetAll(ctx), true
	case models.TableLeads:
		return h.tables.Leads.GetAll(ctx), true
	case models.TableAttendance:
		return h.tables.Attendance.GetAll(ctx), true
	case models.TableNotifications:
		return h.tables.Notifications.GetAll(ctx), true
	case models.TableCouponTemplates:
		return h.tables.CouponTemplates.GetAll(ctx), true
	}
	return nil, false
}
