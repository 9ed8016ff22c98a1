package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/glowdesk/salon-manager/internal/assistant"
	"github.com/glowdesk/salon-manager/internal/config"
	"github.com/glowdesk/salon-manager/internal/export"
	"github.com/glowdesk/salon-manager/internal/handlers"
	"github.com/glowdesk/salon-manager/internal/middleware"
	"github.com/glowdesk/salon-manager/internal/registry"
	"github.com/glowdesk/salon-manager/internal/syncer"
	ucAlerts "github.com/glowdesk/salon-manager/internal/usecase/alerts"
	ucAttendance "github.com/glowdesk/salon-manager/internal/usecase/attendance"
	ucBooking "github.com/glowdesk/salon-manager/internal/usecase/booking"
	ucLead "github.com/glowdesk/salon-manager/internal/usecase/lead"
	ucSale "github.com/glowdesk/salon-manager/internal/usecase/sale"
)

func RegisterRoutes(
	r *gin.Engine,
	tables *registry.Tables,
	orchestrator *syncer.Orchestrator,
	backup *export.Backup,
	aiClient *assistant.Client,
	cfg *config.Config,
) {

	// ======================================================
	// USE CASES
	// ======================================================
	createBookingUC := ucBooking.NewCreate(tables)
	bookingDefaultsUC := ucBooking.NewDefaults(tables)
	checkoutUC := ucSale.NewCheckout(tables)
	leadStatusUC := ucLead.NewUpdateStatus(tables)
	clockUC := ucAttendance.NewClock(tables)
	sweepUC := ucAlerts.NewSweep(tables)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(tables, cfg)
	staffHandler := handlers.NewStaffHandler(tables)
	customerHandler := handlers.NewCustomerHandler(tables)
	appointmentHandler := handlers.NewAppointmentHandler(tables, createBookingUC, bookingDefaultsUC)
	saleHandler := handlers.NewSaleHandler(tables, checkoutUC)
	inventoryHandler := handlers.NewInventoryHandler(tables)
	catalogHandler := handlers.NewCatalogHandler(tables)
	leadHandler := handlers.NewLeadHandler(tables, leadStatusUC)
	attendanceHandler := handlers.NewAttendanceHandler(tables, clockUC)
	notificationHandler := handlers.NewNotificationHandler(tables, sweepUC)
	syncHandler := handlers.NewSyncHandler(orchestrator)
	exportHandler := handlers.NewExportHandler(tables, backup)
	assistantHandler := handlers.NewAssistantHandler(tables, aiClient)

	// ======================================================
	// METRICS
	// ======================================================
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// API
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/me")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/staff", staffHandler.List)
			secured.POST("/staff", staffHandler.Create)
			secured.PATCH("/staff/:id", staffHandler.Update)
			secured.DELETE("/staff/:id", staffHandler.Delete)

			secured.GET("/customers", customerHandler.List)
			secured.POST("/customers", customerHandler.Create)
			secured.PATCH("/customers/:id", customerHandler.Update)
			secured.DELETE("/customers/:id", customerHandler.Delete)
			secured.POST("/customers/:id/wallet/topup", customerHandler.TopUp)
			secured.POST("/customers/:id/coupons", customerHandler.AssignCoupon)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/defaults", appointmentHandler.Defaults)
			secured.GET("/appointments/invoice", appointmentHandler.Invoice)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)
			secured.PATCH("/appointments/:id/bill", appointmentHandler.Bill)

			secured.GET("/sales", saleHandler.List)
			secured.POST("/sales", saleHandler.Create)

			secured.GET("/inventory", inventoryHandler.List)
			secured.POST("/inventory", inventoryHandler.Create)
			secured.PATCH("/inventory/:id", inventoryHandler.Update)
			secured.DELETE("/inventory/:id", inventoryHandler.Delete)

			// ------------------------------
			// CATALOG
			// ------------------------------
			secured.GET("/categories", catalogHandler.ListCategories)
			secured.POST("/categories", catalogHandler.CreateCategory)
			secured.DELETE("/categories/:id", catalogHandler.DeleteCategory)

			secured.GET("/services", catalogHandler.ListServices)
			secured.POST("/services", catalogHandler.CreateService)
			secured.PATCH("/services/:id", catalogHandler.UpdateService)

			secured.GET("/combos", catalogHandler.ListCombos)
			secured.POST("/combos", catalogHandler.CreateCombo)

			secured.GET("/packages", catalogHandler.ListPackages)
			secured.POST("/packages", catalogHandler.CreatePackage)

			secured.GET("/coupon-templates", catalogHandler.ListCouponTemplates)
			secured.POST("/coupon-templates", catalogHandler.CreateCouponTemplate)
			secured.PATCH("/coupon-templates/:id", catalogHandler.UpdateCouponTemplate)

			secured.GET("/leads", leadHandler.List)
			secured.POST("/leads", leadHandler.Create)
			secured.PATCH("/leads/:id/status", leadHandler.UpdateStatus)
			secured.POST("/leads/:id/comments", leadHandler.AddComment)

			secured.POST("/attendance/login", attendanceHandler.Login)
			secured.POST("/attendance/logout", attendanceHandler.Logout)
			secured.GET("/attendance", attendanceHandler.List)
			secured.GET("/attendance/summary", attendanceHandler.Summary)

			secured.GET("/notifications", notificationHandler.List)
			secured.GET("/notifications/unread-count", notificationHandler.UnreadCount)
			secured.PATCH("/notifications/:id/read", notificationHandler.MarkRead)
			secured.POST("/notifications/sweep", notificationHandler.Sweep)

			// ------------------------------
			// SYNC / EXPORT / ASSISTANT
			// ------------------------------
			secured.POST("/sync/pull", syncHandler.Pull)
			secured.POST("/sync/push", syncHandler.Push)

			secured.GET("/export/:table", exportHandler.Download)
			secured.POST("/export/:table/backup", exportHandler.Backup)

			secured.POST("/assistant", assistantHandler.Generate)
		}
	}
}
