package alerts

import (
	"context"
	"testing"
	"time"

	"github.com/glowdesk/salon-manager/internal/models"
	"github.com/glowdesk/salon-manager/internal/notify"
	"github.com/glowdesk/salon-manager/internal/registry"
	"github.com/glowdesk/salon-manager/internal/store"
	"github.com/glowdesk/salon-manager/internal/timezone"
)

func newTables(t *testing.T) *registry.Tables {
	t.Helper()
	return registry.New(store.NewMemory(), notify.New(), nil)
}

func TestSweepLowStock(t *testing.T) {
	tables := newTables(t)
	ctx := context.Background()

	if err := tables.Inventory.Save(ctx, []models.InventoryItem{
		{ID: "i1", Name: "Shampoo", Quantity: 2, LowStockLevel: 5},
		{ID: "i2", Name: "Conditioner", Quantity: 50, LowStockLevel: 5},
		{ID: "i3", Name: "Hair Gel", Quantity: 5, LowStockLevel: 5}, // boundary counts
	}); err != nil {
		t.Fatal(err)
	}

	created, err := NewSweep(tables).Execute(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if created != 2 {
		t.Fatalf("created %d notifications, want 2", created)
	}

	related := map[string]bool{}
	for _, n := range tables.Notifications.GetAll(ctx) {
		if n.Type != models.NotifyLowStock {
			t.Errorf("unexpected type %s", n.Type)
		}
		related[n.RelatedID] = true
	}
	if !related["i1"] || !related["i3"] || related["i2"] {
		t.Errorf("wrong items flagged: %v", related)
	}
}

func TestSweepDeduplicatesAgainstUnread(t *testing.T) {
	tables := newTables(t)
	ctx := context.Background()

	if err := tables.Inventory.Save(ctx, []models.InventoryItem{
		{ID: "i1", Name: "Shampoo", Quantity: 2, LowStockLevel: 5},
	}); err != nil {
		t.Fatal(err)
	}

	uc := NewSweep(tables)
	if _, err := uc.Execute(ctx); err != nil {
		t.Fatal(err)
	}
	created, err := uc.Execute(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if created != 0 {
		t.Errorf("second sweep created %d duplicates", created)
	}
	if got := len(tables.Notifications.GetAll(ctx)); got != 1 {
		t.Errorf("notification count = %d, want 1", got)
	}
}

func TestSweepRenotifiesAfterRead(t *testing.T) {
	tables := newTables(t)
	ctx := context.Background()

	if err := tables.Inventory.Save(ctx, []models.InventoryItem{
		{ID: "i1", Name: "Shampoo", Quantity: 2, LowStockLevel: 5},
	}); err != nil {
		t.Fatal(err)
	}

	uc := NewSweep(tables)
	if _, err := uc.Execute(ctx); err != nil {
		t.Fatal(err)
	}

	// Marking the alert read reopens the slot for the next sweep.
	notifications := tables.Notifications.GetAll(ctx)
	notifications[0].Read = true
	if err := tables.Notifications.Save(ctx, notifications); err != nil {
		t.Fatal(err)
	}

	created, err := uc.Execute(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if created != 1 {
		t.Errorf("sweep after read created %d, want 1", created)
	}
}

func TestSweepMembershipExpiry(t *testing.T) {
	tables := newTables(t)
	ctx := context.Background()
	now := timezone.Now()

	soon := now.Add(3 * 24 * time.Hour)
	far := now.Add(60 * 24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	if err := tables.Customers.Save(ctx, []models.Customer{
		{ID: "c1", Name: "Priya", IsMember: true, MembershipExpiry: &soon},
		{ID: "c2", Name: "Ravi", IsMember: true, MembershipExpiry: &far},
		{ID: "c3", Name: "Meena", IsMember: true, MembershipExpiry: &past},
		{ID: "c4", Name: "Anil", IsMember: false, MembershipExpiry: &soon},
		{ID: "c5", Name: "Kiran", IsMember: true},
	}); err != nil {
		t.Fatal(err)
	}

	created, err := NewSweep(tables).Execute(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if created != 2 {
		t.Fatalf("created %d notifications, want 2", created)
	}

	byRelated := map[string]models.Notification{}
	for _, n := range tables.Notifications.GetAll(ctx) {
		byRelated[n.RelatedID] = n
	}
	if _, ok := byRelated["c1"]; !ok {
		t.Error("expiring-soon membership was not flagged")
	}
	if n, ok := byRelated["c3"]; !ok {
		t.Error("expired membership was not flagged")
	} else if want := "Membership for Meena has expired"; n.Message != want {
		t.Errorf("message = %q, want %q", n.Message, want)
	}
	if _, ok := byRelated["c2"]; ok {
		t.Error("far-future membership was flagged")
	}
}

func TestSweepWithNothingToReport(t *testing.T) {
	tables := newTables(t)
	ctx := context.Background()

	created, err := NewSweep(tables).Execute(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if created != 0 {
		t.Errorf("empty sweep created %d notifications", created)
	}
}
