package billing

import (
	"time"

	"github.com/glowdesk/salon-manager/internal/models"
)

// MemberDiscountPercent is the default prefill for catalog services
// booked by a live member. It is a suggestion, not a cap: the operator
// can override it before submitting.
const MemberDiscountPercent = 10

// Discount returns the whole-rupee discount for a list price and a
// percentage in [0,100], rounded to the nearest rupee.
func Discount(listPrice, percent int) int {
	if listPrice <= 0 || percent <= 0 {
		return 0
	}
	if percent > 100 {
		percent = 100
	}
	return (listPrice*percent + 50) / 100
}

// FinalPrice never goes below zero.
func FinalPrice(listPrice, percent int) int {
	final := listPrice - Discount(listPrice, percent)
	if final < 0 {
		return 0
	}
	return final
}

// DefaultDiscountPercent computes the booking-form prefill: 10 for a
// catalog service (never a combo) sold to a customer whose membership
// is live at now, otherwise 0.
func DefaultDiscountPercent(customer *models.Customer, isCombo bool, now time.Time) int {
	if customer == nil || isCombo {
		return 0
	}
	if customer.MemberAt(now) {
		return MemberDiscountPercent
	}
	return 0
}
