package registry

import (
	"github.com/glowdesk/salon-manager/internal/models"
	"github.com/glowdesk/salon-manager/internal/notify"
	"github.com/glowdesk/salon-manager/internal/store"
)

// Tables holds one typed table store per entity. Everything shares one
// adapter, one notifier and one mirror pusher.
type Tables struct {
	Staff           *store.Table[models.Staff]
	Customers       *store.Table[models.Customer]
	Appointments    *store.Table[models.Appointment]
	Sales           *store.Table[models.Sale]
	Inventory       *store.Table[models.InventoryItem]
	Categories      *store.Table[models.Category]
	Services        *store.Table[models.Service]
	Combos          *store.Table[models.Combo]
	Packages        *store.Table[models.Package]
	Leads           *store.Table[models.Lead]
	Attendance      *store.Table[models.Attendance]
	Notifications   *store.Table[models.Notification]
	CouponTemplates *store.Table[models.CouponTemplate]

	// Local only, never pushed to the mirror.
	Users *store.Table[models.User]
}

func New(adapter store.Adapter, notifier *notify.Notifier, pusher *store.Pusher) *Tables {
	return &Tables{
		Staff:           store.NewTable[models.Staff](models.TableStaff, adapter, notifier, pusher),
		Customers:       store.NewTable[models.Customer](models.TableCustomers, adapter, notifier, pusher),
		Appointments:    store.NewTable[models.Appointment](models.TableAppointments, adapter, notifier, pusher),
		Sales:           store.NewTable[models.Sale](models.TableSales, adapter, notifier, pusher),
		Inventory:       store.NewTable[models.InventoryItem](models.TableInventory, adapter, notifier, pusher),
		Categories:      store.NewTable[models.Category](models.TableCategories, adapter, notifier, pusher),
		Services:        store.NewTable[models.Service](models.TableServices, adapter, notifier, pusher),
		Combos:          store.NewTable[models.Combo](models.TableCombos, adapter, notifier, pusher),
		Packages:        store.NewTable[models.Package](models.TablePackages, adapter, notifier, pusher),
		Leads:           store.NewTable[models.Lead](models.TableLeads, adapter, notifier, pusher),
		Attendance:      store.NewTable[models.Attendance](models.TableAttendance, adapter, notifier, pusher),
		Notifications:   store.NewTable[models.Notification](models.TableNotifications, adapter, notifier, pusher),
		CouponTemplates: store.NewTable[models.CouponTemplate](models.TableCouponTemplates, adapter, notifier, pusher),
		Users:           store.NewTable[models.User](models.TableUsers, adapter, notifier, nil),
	}
}
