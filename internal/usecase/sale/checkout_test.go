package sale

import (
	"context"
	"testing"

	"github.com/glowdesk/salon-manager/internal/httperr"
	"github.com/glowdesk/salon-manager/internal/models"
	"github.com/glowdesk/salon-manager/internal/notify"
	"github.com/glowdesk/salon-manager/internal/registry"
	"github.com/glowdesk/salon-manager/internal/store"
)

func newTables(t *testing.T) *registry.Tables {
	t.Helper()
	return registry.New(store.NewMemory(), notify.New(), nil)
}

func TestCheckoutCashSale(t *testing.T) {
	tables := newTables(t)
	uc := NewCheckout(tables)
	ctx := context.Background()

	sale, err := uc.Execute(ctx, CheckoutInput{
		StaffID: "s1",
		Items: []models.SaleItem{
			{Name: "Haircut", Price: 300, Quantity: 1, Type: "service"},
			{Name: "Shampoo", Price: 150, Quantity: 2, Type: "product"},
		},
		PaymentMethod: models.PayCash,
	})
	if err != nil {
		t.Fatal(err)
	}

	if sale.Total != 600 {
		t.Errorf("Total = %d, want 600", sale.Total)
	}
	if sale.ID == "" || sale.Date == "" {
		t.Errorf("sale missing id or date: %+v", sale)
	}

	stored := tables.Sales.GetAll(ctx)
	if len(stored) != 1 || stored[0].ID != sale.ID {
		t.Errorf("sale was not persisted: %v", stored)
	}
}

func TestCheckoutWalletDeductsBalance(t *testing.T) {
	tables := newTables(t)
	ctx := context.Background()

	if err := tables.Customers.Save(ctx, []models.Customer{
		{ID: "c1", Name: "Priya", WalletBalance: 500},
	}); err != nil {
		t.Fatal(err)
	}

	uc := NewCheckout(tables)
	sale, err := uc.Execute(ctx, CheckoutInput{
		CustomerID:    "c1",
		Items:         []models.SaleItem{{Name: "Facial", Price: 400, Quantity: 1, Type: "service"}},
		PaymentMethod: models.PayWallet,
	})
	if err != nil {
		t.Fatal(err)
	}
	if sale.Total != 400 {
		t.Errorf("Total = %d, want 400", sale.Total)
	}

	customers := tables.Customers.GetAll(ctx)
	if customers[0].WalletBalance != 100 {
		t.Errorf("WalletBalance = %d, want 100", customers[0].WalletBalance)
	}
}

func TestCheckoutWalletInsufficientBalance(t *testing.T) {
	tables := newTables(t)
	ctx := context.Background()

	if err := tables.Customers.Save(ctx, []models.Customer{
		{ID: "c1", Name: "Priya", WalletBalance: 100},
	}); err != nil {
		t.Fatal(err)
	}

	uc := NewCheckout(tables)
	_, err := uc.Execute(ctx, CheckoutInput{
		CustomerID:    "c1",
		Items:         []models.SaleItem{{Name: "Facial", Price: 150, Quantity: 1, Type: "service"}},
		PaymentMethod: models.PayWallet,
	})
	if !httperr.IsBusiness(err, "insufficient_balance") {
		t.Fatalf("err = %v, want insufficient_balance", err)
	}

	// Rejection happens before any write.
	if got := tables.Sales.GetAll(ctx); len(got) != 0 {
		t.Errorf("rejected checkout recorded a sale: %v", got)
	}
	if bal := tables.Customers.GetAll(ctx)[0].WalletBalance; bal != 100 {
		t.Errorf("rejected checkout changed balance to %d", bal)
	}
}

func TestCheckoutValidation(t *testing.T) {
	tables := newTables(t)
	uc := NewCheckout(tables)
	ctx := context.Background()

	tests := []struct {
		name     string
		in       CheckoutInput
		wantCode string
	}{
		{
			"no items",
			CheckoutInput{PaymentMethod: models.PayCash},
			"empty_sale",
		},
		{
			"bad payment method",
			CheckoutInput{
				Items:         []models.SaleItem{{Name: "x", Price: 10, Quantity: 1}},
				PaymentMethod: "cheque",
			},
			"invalid_payment_method",
		},
		{
			"zero quantity",
			CheckoutInput{
				Items:         []models.SaleItem{{Name: "x", Price: 10, Quantity: 0}},
				PaymentMethod: models.PayCash,
			},
			"invalid_sale_item",
		},
		{
			"wallet without customer",
			CheckoutInput{
				Items:         []models.SaleItem{{Name: "x", Price: 10, Quantity: 1}},
				PaymentMethod: models.PayWallet,
			},
			"wallet_requires_customer",
		},
		{
			"wallet with unknown customer",
			CheckoutInput{
				CustomerID:    "ghost",
				Items:         []models.SaleItem{{Name: "x", Price: 10, Quantity: 1}},
				PaymentMethod: models.PayWallet,
			},
			"customer_not_found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tt.in)
			if !httperr.IsBusiness(err, tt.wantCode) {
				t.Errorf("err = %v, want %s", err, tt.wantCode)
			}
		})
	}
}
