package lead

import (
	"context"
	"testing"

	"github.com/glowdesk/salon-manager/internal/httperr"
	"github.com/glowdesk/salon-manager/internal/models"
	"github.com/glowdesk/salon-manager/internal/notify"
	"github.com/glowdesk/salon-manager/internal/registry"
	"github.com/glowdesk/salon-manager/internal/store"
)

func seedLead(t *testing.T) (*registry.Tables, models.Lead) {
	t.Helper()
	tables := registry.New(store.NewMemory(), notify.New(), nil)
	lead := models.Lead{
		ID:     "l1",
		Name:   "Ravi",
		Phone:  "9876543210",
		Email:  "ravi@example.com",
		Status: models.LeadInterested,
	}
	if err := tables.Leads.Save(context.Background(), []models.Lead{lead}); err != nil {
		t.Fatal(err)
	}
	return tables, lead
}

func TestConversionCreatesCustomer(t *testing.T) {
	tables, _ := seedLead(t)
	ctx := context.Background()

	uc := NewUpdateStatus(tables)
	updated, err := uc.Execute(ctx, "l1", models.LeadConverted)
	if err != nil {
		t.Fatal(err)
	}

	if updated.Status != models.LeadConverted {
		t.Errorf("Status = %s", updated.Status)
	}
	if updated.CustomerID == "" {
		t.Fatal("conversion did not link a customer")
	}

	customers := tables.Customers.GetAll(ctx)
	if len(customers) != 1 {
		t.Fatalf("expected 1 customer, got %d", len(customers))
	}
	c := customers[0]
	if c.ID != updated.CustomerID || c.Name != "Ravi" || c.Phone != "9876543210" {
		t.Errorf("customer not copied from lead: %+v", c)
	}
}

func TestReconversionDoesNotDuplicateCustomer(t *testing.T) {
	tables, _ := seedLead(t)
	ctx := context.Background()
	uc := NewUpdateStatus(tables)

	if _, err := uc.Execute(ctx, "l1", models.LeadConverted); err != nil {
		t.Fatal(err)
	}
	if _, err := uc.Execute(ctx, "l1", models.LeadConverted); err != nil {
		t.Fatal(err)
	}

	if got := len(tables.Customers.GetAll(ctx)); got != 1 {
		t.Errorf("reconversion created %d customers", got)
	}
}

func TestNonConvertingTransitions(t *testing.T) {
	tables, _ := seedLead(t)
	ctx := context.Background()
	uc := NewUpdateStatus(tables)

	// Any declared status is reachable from any other.
	for _, status := range []models.LeadStatus{
		models.LeadLost, models.LeadNew, models.LeadContacted,
	} {
		updated, err := uc.Execute(ctx, "l1", status)
		if err != nil {
			t.Fatalf("transition to %s: %v", status, err)
		}
		if updated.Status != status {
			t.Errorf("Status = %s, want %s", updated.Status, status)
		}
	}

	if got := len(tables.Customers.GetAll(ctx)); got != 0 {
		t.Errorf("non-converting transition created %d customers", got)
	}
}

func TestUpdateStatusErrors(t *testing.T) {
	tables, _ := seedLead(t)
	ctx := context.Background()
	uc := NewUpdateStatus(tables)

	if _, err := uc.Execute(ctx, "l1", "archived"); !httperr.IsBusiness(err, "invalid_status") {
		t.Errorf("err = %v, want invalid_status", err)
	}
	if _, err := uc.Execute(ctx, "ghost", models.LeadLost); !httperr.IsBusiness(err, "lead_not_found") {
		t.Errorf("err = %v, want lead_not_found", err)
	}
}
