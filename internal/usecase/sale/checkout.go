package sale

import (
	"context"

	"github.com/glowdesk/salon-manager/internal/httperr"
	"github.com/glowdesk/salon-manager/internal/models"
	"github.com/glowdesk/salon-manager/internal/registry"
	"github.com/glowdesk/salon-manager/internal/timezone"
)

type CheckoutInput struct {
	CustomerID    string
	StaffID       string
	Items         []models.SaleItem
	PaymentMethod models.PaymentMethod
}

type Checkout struct {
	tables *registry.Tables
}

func NewCheckout(tables *registry.Tables) *Checkout {
	return &Checkout{tables: tables}
}

// Execute records a point-of-sale transaction. A wallet payment is
// rejected before any write when the balance cannot cover the total;
// past that point the sale write and the balance deduction are two
// independent saves with no rollback path.
func (uc *Checkout) Execute(ctx context.Context, in CheckoutInput) (*models.Sale, error) {
	if len(in.Items) == 0 {
		return nil, httperr.ErrBusiness("empty_sale")
	}
	if !in.PaymentMethod.Valid() {
		return nil, httperr.ErrBusiness("invalid_payment_method")
	}

	total := 0
	for _, item := range in.Items {
		if item.Quantity <= 0 || item.Price < 0 {
			return nil, httperr.ErrBusiness("invalid_sale_item")
		}
		total += item.Price * item.Quantity
	}

	var customers []models.Customer
	payerIdx := -1
	if in.PaymentMethod == models.PayWallet {
		if in.CustomerID == "" {
			return nil, httperr.ErrBusiness("wallet_requires_customer")
		}
		customers = uc.tables.Customers.GetAll(ctx)
		for i := range customers {
			if customers[i].ID == in.CustomerID {
				payerIdx = i
				break
			}
		}
		if payerIdx < 0 {
			return nil, httperr.ErrBusiness("customer_not_found")
		}
		if customers[payerIdx].WalletBalance < total {
			return nil, httperr.ErrBusiness("insufficient_balance")
		}
	}

	now := timezone.Now()
	sale := models.Sale{
		ID:            models.NewID(),
		CustomerID:    in.CustomerID,
		StaffID:       in.StaffID,
		Items:         in.Items,
		Total:         total,
		PaymentMethod: in.PaymentMethod,
		Date:          now.Format("2006-01-02"),
		CreatedAt:     now,
	}

	if err := uc.tables.Sales.Add(ctx, sale); err != nil {
		return nil, err
	}

	if payerIdx >= 0 {
		customers[payerIdx].WalletBalance -= total
		customers[payerIdx].UpdatedAt = now
		if err := uc.tables.Customers.Save(ctx, customers); err != nil {
			// Sale is already persisted; the deduction is lost. Accepted gap.
			return nil, err
		}
	}

	return &sale, nil
}
