package booking

import (
	"context"
	"testing"
	"time"

	"github.com/glowdesk/salon-manager/internal/httperr"
	"github.com/glowdesk/salon-manager/internal/models"
	"github.com/glowdesk/salon-manager/internal/notify"
	"github.com/glowdesk/salon-manager/internal/registry"
	"github.com/glowdesk/salon-manager/internal/store"
)

func seedTables(t *testing.T) *registry.Tables {
	t.Helper()
	tables := registry.New(store.NewMemory(), notify.New(), nil)
	ctx := context.Background()

	if err := tables.Customers.Save(ctx, []models.Customer{{ID: "c1", Name: "Priya"}}); err != nil {
		t.Fatal(err)
	}
	if err := tables.Staff.Save(ctx, []models.Staff{{ID: "s1", Name: "Asha"}}); err != nil {
		t.Fatal(err)
	}
	return tables
}

func validInput() CreateInput {
	return CreateInput{
		CustomerID:      "c1",
		StaffID:         "s1",
		ServiceName:     "Haircut",
		Date:            "2025-07-01",
		Time:            "14:30",
		DurationMin:     45,
		ListPrice:       1000,
		DiscountPercent: 10,
	}
}

func TestCreateAppointment(t *testing.T) {
	tables := seedTables(t)
	ctx := context.Background()

	ap, err := NewCreate(tables).Execute(ctx, validInput())
	if err != nil {
		t.Fatal(err)
	}

	if ap.Status != models.StatusScheduled {
		t.Errorf("Status = %s, want scheduled", ap.Status)
	}
	if ap.Discount != 100 || ap.Price != 900 {
		t.Errorf("Discount = %d, Price = %d; want 100, 900", ap.Discount, ap.Price)
	}
	if ap.ServiceName != "Haircut" {
		t.Errorf("ServiceName = %q", ap.ServiceName)
	}

	stored := tables.Appointments.GetAll(ctx)
	if len(stored) != 1 || stored[0].ID != ap.ID {
		t.Errorf("appointment was not persisted: %v", stored)
	}
}

func TestCreateValidation(t *testing.T) {
	tables := seedTables(t)
	uc := NewCreate(tables)
	ctx := context.Background()

	tests := []struct {
		name     string
		mutate   func(*CreateInput)
		wantCode string
	}{
		{"missing customer", func(in *CreateInput) { in.CustomerID = "" }, "customer_required"},
		{"missing staff", func(in *CreateInput) { in.StaffID = "" }, "staff_required"},
		{"missing service", func(in *CreateInput) { in.ServiceName = "" }, "service_required"},
		{"negative discount", func(in *CreateInput) { in.DiscountPercent = -1 }, "invalid_discount"},
		{"discount over 100", func(in *CreateInput) { in.DiscountPercent = 101 }, "invalid_discount"},
		{"bad date", func(in *CreateInput) { in.Date = "01/07/2025" }, "invalid_date"},
		{"bad time", func(in *CreateInput) { in.Time = "2pm" }, "invalid_time"},
		{"unknown customer", func(in *CreateInput) { in.CustomerID = "ghost" }, "customer_not_found"},
		{"unknown staff", func(in *CreateInput) { in.StaffID = "ghost" }, "staff_not_found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			_, err := uc.Execute(ctx, in)
			if !httperr.IsBusiness(err, tt.wantCode) {
				t.Errorf("err = %v, want %s", err, tt.wantCode)
			}
		})
	}

	if got := len(tables.Appointments.GetAll(ctx)); got != 0 {
		t.Errorf("rejected inputs persisted %d appointments", got)
	}
}

func TestDefaultsForMemberService(t *testing.T) {
	tables := seedTables(t)
	ctx := context.Background()

	expiry := time.Now().Add(30 * 24 * time.Hour)
	if err := tables.Customers.Save(ctx, []models.Customer{
		{ID: "c1", Name: "Priya", IsMember: true, MembershipExpiry: &expiry},
	}); err != nil {
		t.Fatal(err)
	}
	if err := tables.Services.Save(ctx, []models.Service{
		{ID: "sv1", Name: "Haircut", Price: 1000, DurationMin: 45},
	}); err != nil {
		t.Fatal(err)
	}
	if err := tables.Combos.Save(ctx, []models.Combo{
		{ID: "cb1", Name: "Bridal", Price: 5000},
	}); err != nil {
		t.Fatal(err)
	}

	uc := NewDefaults(tables)

	out, err := uc.Execute(ctx, "c1", "sv1", "")
	if err != nil {
		t.Fatal(err)
	}
	if out.DiscountPercent != 10 || out.Discount != 100 || out.Price != 900 {
		t.Errorf("member service prefill = %+v", out)
	}
	if out.ServiceName != "Haircut" || out.DurationMin != 45 {
		t.Errorf("catalog fields not copied: %+v", out)
	}

	// Combos never get the member prefill.
	out, err = uc.Execute(ctx, "c1", "", "cb1")
	if err != nil {
		t.Fatal(err)
	}
	if out.DiscountPercent != 0 || out.Price != 5000 {
		t.Errorf("combo prefill = %+v", out)
	}
}

func TestDefaultsErrors(t *testing.T) {
	tables := seedTables(t)
	uc := NewDefaults(tables)
	ctx := context.Background()

	if _, err := uc.Execute(ctx, "c1", "ghost", ""); !httperr.IsBusiness(err, "service_not_found") {
		t.Errorf("err = %v, want service_not_found", err)
	}
	if _, err := uc.Execute(ctx, "c1", "", "ghost"); !httperr.IsBusiness(err, "combo_not_found") {
		t.Errorf("err = %v, want combo_not_found", err)
	}
	if _, err := uc.Execute(ctx, "c1", "", ""); !httperr.IsBusiness(err, "selection_required") {
		t.Errorf("err = %v, want selection_required", err)
	}
}
