package booking

import (
	"context"

	"github.com/glowdesk/salon-manager/internal/domain/billing"
	"github.com/glowdesk/salon-manager/internal/httperr"
	"github.com/glowdesk/salon-manager/internal/registry"
	"github.com/glowdesk/salon-manager/internal/timezone"
)

// DefaultsOutput is a booking-form prefill, never an enforced price.
type DefaultsOutput struct {
	ServiceName     string `json:"service_name"`
	ListPrice       int    `json:"list_price"`
	DurationMin     int    `json:"duration_min"`
	DiscountPercent int    `json:"discount_percent"`
	Discount        int    `json:"discount"`
	Price           int    `json:"price"`
}

type Defaults struct {
	tables *registry.Tables
}

func NewDefaults(tables *registry.Tables) *Defaults {
	return &Defaults{tables: tables}
}

// Execute resolves a catalog selection (service or combo) for a customer.
// A live member booking a catalog service gets the 10% prefill; combos
// never do.
func (uc *Defaults) Execute(ctx context.Context, customerID, serviceID, comboID string) (*DefaultsOutput, error) {
	out := &DefaultsOutput{}
	isCombo := false

	switch {
	case serviceID != "":
		found := false
		for _, s := range uc.tables.Services.GetAll(ctx) {
			if s.ID == serviceID {
				out.ServiceName = s.Name
				out.ListPrice = s.Price
				out.DurationMin = s.DurationMin
				found = true
				break
			}
		}
		if !found {
			return nil, httperr.ErrBusiness("service_not_found")
		}
	case comboID != "":
		found := false
		for _, cb := range uc.tables.Combos.GetAll(ctx) {
			if cb.ID == comboID {
				out.ServiceName = cb.Name
				out.ListPrice = cb.Price
				found = true
				break
			}
		}
		if !found {
			return nil, httperr.ErrBusiness("combo_not_found")
		}
		isCombo = true
	default:
		return nil, httperr.ErrBusiness("selection_required")
	}

	for _, c := range uc.tables.Customers.GetAll(ctx) {
		if c.ID == customerID {
			out.DiscountPercent = billing.DefaultDiscountPercent(&c, isCombo, timezone.Now())
			break
		}
	}

	out.Discount = billing.Discount(out.ListPrice, out.DiscountPercent)
	out.Price = billing.FinalPrice(out.ListPrice, out.DiscountPercent)
	return out, nil
}
