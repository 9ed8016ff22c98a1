package billing

import (
	"testing"
	"time"

	"github.com/glowdesk/salon-manager/internal/models"
)

func TestDiscount(t *testing.T) {
	tests := []struct {
		name      string
		listPrice int
		percent   int
		want      int
	}{
		{"ten percent of 1000", 1000, 10, 100},
		{"rounds up at half", 150, 33, 50},   // 49.5 -> 50
		{"rounds down below half", 130, 33, 43}, // 42.9 -> 43
		{"zero percent", 1000, 0, 0},
		{"negative percent", 1000, -5, 0},
		{"over 100 clamps", 500, 150, 500},
		{"zero price", 0, 50, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Discount(tt.listPrice, tt.percent); got != tt.want {
				t.Errorf("Discount(%d, %d) = %d, want %d", tt.listPrice, tt.percent, got, tt.want)
			}
		})
	}
}

func TestFinalPricePlusDiscountEqualsList(t *testing.T) {
	for _, listPrice := range []int{1, 99, 100, 999, 1000, 12345} {
		for percent := 0; percent <= 100; percent += 7 {
			final := FinalPrice(listPrice, percent)
			disc := Discount(listPrice, percent)
			if final+disc != listPrice {
				t.Errorf("list %d at %d%%: final %d + discount %d != %d",
					listPrice, percent, final, disc, listPrice)
			}
			if final < 0 {
				t.Errorf("list %d at %d%%: negative final price %d", listPrice, percent, final)
			}
		}
	}
}

func TestDefaultDiscountPercent(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	future := now.Add(30 * 24 * time.Hour)
	past := now.Add(-time.Hour)

	member := &models.Customer{IsMember: true, MembershipExpiry: &future}
	lapsed := &models.Customer{IsMember: true, MembershipExpiry: &past}
	flagOnly := &models.Customer{IsMember: true}
	regular := &models.Customer{}

	tests := []struct {
		name     string
		customer *models.Customer
		isCombo  bool
		want     int
	}{
		{"live member, service", member, false, 10},
		{"live member, combo", member, true, 0},
		{"expired membership", lapsed, false, 0},
		{"member flag without expiry", flagOnly, false, 0},
		{"non-member", regular, false, 0},
		{"no customer", nil, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DefaultDiscountPercent(tt.customer, tt.isCombo, now); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}
