package coupon

import (
	"testing"
	"time"

	"github.com/glowdesk/salon-manager/internal/models"
)

func TestIssueFreezesTemplateFields(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	tpl := &models.CouponTemplate{
		ID:           "tpl-1",
		Name:         "Welcome Offer",
		Code:         "WELCOME50",
		Description:  "Flat 50 off",
		Value:        50,
		ValidityDays: 30,
	}

	c := Issue(tpl, now)

	if c.ID == "" {
		t.Error("issued coupon has no id")
	}
	if c.TemplateID != "tpl-1" || c.Name != "Welcome Offer" || c.Code != "WELCOME50" || c.Value != 50 {
		t.Errorf("issued coupon did not copy template fields: %+v", c)
	}
	if !c.IssuedAt.Equal(now) {
		t.Errorf("IssuedAt = %v, want %v", c.IssuedAt, now)
	}
	wantExpiry := now.AddDate(0, 0, 30)
	if !c.ExpiresAt.Equal(wantExpiry) {
		t.Errorf("ExpiresAt = %v, want %v", c.ExpiresAt, wantExpiry)
	}

	// A later template edit must not touch the issued copy.
	tpl.Value = 500
	tpl.Name = "changed"
	if c.Value != 50 || c.Name != "Welcome Offer" {
		t.Error("issued coupon changed after template edit")
	}
}

func TestUsable(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	fresh := models.Coupon{ExpiresAt: now.AddDate(0, 0, 7)}
	expired := models.Coupon{ExpiresAt: now.AddDate(0, 0, -1)}
	redeemed := models.Coupon{ExpiresAt: now.AddDate(0, 0, 7), Redeemed: true}

	tests := []struct {
		name string
		c    *models.Coupon
		want bool
	}{
		{"fresh", &fresh, true},
		{"expired", &expired, false},
		{"redeemed", &redeemed, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Usable(tt.c, now); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
