package models

import "time"

// Coupon is an issued copy of a CouponTemplate. Fields are frozen at
// assignment time; later template edits never touch issued coupons.
type Coupon struct {
	ID          string    `json:"id"`
	TemplateID  string    `json:"template_id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Description string    `json:"description"`
	Value       int       `json:"value"`
	IssuedAt    time.Time `json:"issued_at"`
	ExpiresAt   time.Time `json:"expires_at"`
	Redeemed    bool      `json:"redeemed"`
}

type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`

	// Stored as normalized same-year dates ("2006-01-02") so month/day
	// comparison works across years.
	Birthday    string `json:"birthday,omitempty"`
	Anniversary string `json:"anniversary,omitempty"`

	// Whole-rupee prepaid credit. Only wallet top-up and sale deduction
	// mutate it; it must never go negative.
	WalletBalance int `json:"wallet_balance"`

	IsMember         bool       `json:"is_member"`
	MembershipExpiry *time.Time `json:"membership_expiry,omitempty"`

	PackageID     string     `json:"package_id,omitempty"`
	PackageExpiry *time.Time `json:"package_expiry,omitempty"`

	Coupons []Coupon `json:"coupons"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MemberAt reports whether the customer holds a live membership at t.
func (c *Customer) MemberAt(t time.Time) bool {
	return c.IsMember && c.MembershipExpiry != nil && c.MembershipExpiry.After(t)
}
