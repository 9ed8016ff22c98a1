package booking

import (
	"context"

	"github.com/glowdesk/salon-manager/internal/domain/billing"
	"github.com/glowdesk/salon-manager/internal/httperr"
	"github.com/glowdesk/salon-manager/internal/models"
	"github.com/glowdesk/salon-manager/internal/registry"
	"github.com/glowdesk/salon-manager/internal/timezone"
)

type CreateInput struct {
	CustomerID string
	StaffID    string

	// Copied free text; the appointment never references the catalog.
	ServiceName string

	Date        string
	Time        string
	DurationMin int

	ListPrice       int
	DiscountPercent int
}

type Create struct {
	tables *registry.Tables
}

func NewCreate(tables *registry.Tables) *Create {
	return &Create{tables: tables}
}

func (uc *Create) Execute(ctx context.Context, in CreateInput) (*models.Appointment, error) {
	if in.CustomerID == "" {
		return nil, httperr.ErrBusiness("customer_required")
	}
	if in.StaffID == "" {
		return nil, httperr.ErrBusiness("staff_required")
	}
	if in.ServiceName == "" {
		return nil, httperr.ErrBusiness("service_required")
	}
	if in.DiscountPercent < 0 || in.DiscountPercent > 100 {
		return nil, httperr.ErrBusiness("invalid_discount")
	}
	if _, err := timezone.ParseDate(in.Date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	if _, err := timezone.ParseClock(in.Time); err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	if !uc.customerExists(ctx, in.CustomerID) {
		return nil, httperr.ErrBusiness("customer_not_found")
	}
	if !uc.staffExists(ctx, in.StaffID) {
		return nil, httperr.ErrBusiness("staff_not_found")
	}

	now := timezone.Now()
	ap := models.Appointment{
		ID:          models.NewID(),
		CustomerID:  in.CustomerID,
		StaffID:     in.StaffID,
		ServiceName: in.ServiceName,
		Date:        in.Date,
		Time:        in.Time,
		DurationMin: in.DurationMin,
		Status:      models.StatusScheduled,
		Discount:    billing.Discount(in.ListPrice, in.DiscountPercent),
		Price:       billing.FinalPrice(in.ListPrice, in.DiscountPercent),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.tables.Appointments.Add(ctx, ap); err != nil {
		return nil, err
	}
	return &ap, nil
}

func (uc *Create) customerExists(ctx context.Context, id string) bool {
	for _, c := range uc.tables.Customers.GetAll(ctx) {
		if c.ID == id {
			return true
		}
	}
	return false
}

func (uc *Create) staffExists(ctx context.Context, id string) bool {
	for _, s := range uc.tables.Staff.GetAll(ctx) {
		if s.ID == id {
			return true
		}
	}
	return false
}
