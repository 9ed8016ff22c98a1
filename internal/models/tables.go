package models

import "github.com/google/uuid"

// Table names double as local storage keys and mirror tab names.
const (
	TableStaff           = "staff"
	TableCustomers       = "customers"
	TableAppointments    = "appointments"
	TableSales           = "sales"
	TableInventory       = "inventory"
	TableCategories      = "categories"
	TableServices        = "services"
	TableCombos          = "combos"
	TablePackages        = "packages"
	TableLeads           = "leads"
	TableAttendance      = "attendance"
	TableNotifications   = "notifications"
	TableCouponTemplates = "coupon_templates"
	TableUsers           = "users"
)

// AllTables is the fixed set the sync orchestrator iterates over.
// Users stay local only: login accounts never leave the machine.
func AllTables() []string {
	return []string{
		TableStaff,
		TableCustomers,
		TableAppointments,
		TableSales,
		TableInventory,
		TableCategories,
		TableServices,
		TableCombos,
		TablePackages,
		TableLeads,
		TableAttendance,
		TableNotifications,
		TableCouponTemplates,
	}
}

func NewID() string {
	return uuid.NewString()
}
