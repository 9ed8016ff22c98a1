package models

import "time"

type PaymentMethod string

const (
	PayCash   PaymentMethod = "cash"
	PayCard   PaymentMethod = "card"
	PayUPI    PaymentMethod = "upi"
	PayWallet PaymentMethod = "wallet"
)

func (p PaymentMethod) Valid() bool {
	switch p {
	case PayCash, PayCard, PayUPI, PayWallet:
		return true
	}
	return false
}

type SaleItem struct {
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
	Type     string `json:"type"` // service, product, combo, package, membership
}

// Sale is immutable once created. A wallet sale also deducts the paying
// customer's balance; the two writes are independent saves with no rollback.
type Sale struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id,omitempty"`
	StaffID    string `json:"staff_id,omitempty"`

	Items []SaleItem `json:"items"`
	Total int        `json:"total"`

	PaymentMethod PaymentMethod `json:"payment_method"`

	Date      string    `json:"date"` // 2006-01-02
	CreatedAt time.Time `json:"created_at"`
}
