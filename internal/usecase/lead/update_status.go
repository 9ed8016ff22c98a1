package lead

import (
	"context"

	"github.com/glowdesk/salon-manager/internal/httperr"
	"github.com/glowdesk/salon-manager/internal/models"
	"github.com/glowdesk/salon-manager/internal/registry"
	"github.com/glowdesk/salon-manager/internal/timezone"
)

type UpdateStatus struct {
	tables *registry.Tables
}

func NewUpdateStatus(tables *registry.Tables) *UpdateStatus {
	return &UpdateStatus{tables: tables}
}

// Execute moves a lead through the pipeline. Reaching converted creates
// a customer record as a side effect; the customer write lands before
// the lead write and there is no rollback if the second save fails.
func (uc *UpdateStatus) Execute(ctx context.Context, leadID string, status models.LeadStatus) (*models.Lead, error) {
	if !status.Valid() {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	leads := uc.tables.Leads.GetAll(ctx)
	idx := -1
	for i := range leads {
		if leads[i].ID == leadID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, httperr.ErrBusiness("lead_not_found")
	}

	now := timezone.Now()

	if status == models.LeadConverted && leads[idx].CustomerID == "" {
		customer := models.Customer{
			ID:        models.NewID(),
			Name:      leads[idx].Name,
			Phone:     leads[idx].Phone,
			Email:     leads[idx].Email,
			Coupons:   []models.Coupon{},
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uc.tables.Customers.Add(ctx, customer); err != nil {
			return nil, err
		}
		leads[idx].CustomerID = customer.ID
	}

	leads[idx].Status = status
	leads[idx].UpdatedAt = now

	if err := uc.tables.Leads.Save(ctx, leads); err != nil {
		return nil, err
	}
	return &leads[idx], nil
}
