package coupon

import (
	"time"

	"github.com/glowdesk/salon-manager/internal/models"
)

// Issue copies a template into an immutable coupon instance. Name, code,
// description and value freeze at assignment; expiry is issue time plus
// the template's validity window.
func Issue(tpl *models.CouponTemplate, now time.Time) models.Coupon {
	return models.Coupon{
		ID:          models.NewID(),
		TemplateID:  tpl.ID,
		Name:        tpl.Name,
		Code:        tpl.Code,
		Description: tpl.Description,
		Value:       tpl.Value,
		IssuedAt:    now,
		ExpiresAt:   now.AddDate(0, 0, tpl.ValidityDays),
	}
}

// Usable reports whether an issued coupon can still be redeemed at t.
func Usable(c *models.Coupon, t time.Time) bool {
	return c != nil && !c.Redeemed && c.ExpiresAt.After(t)
}
