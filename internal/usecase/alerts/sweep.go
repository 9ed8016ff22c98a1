package alerts

import (
	"context"
	"fmt"
	"time"

	"github.com/glowdesk/salon-manager/internal/models"
	"github.com/glowdesk/salon-manager/internal/registry"
	"github.com/glowdesk/salon-manager/internal/timezone"
)

// Memberships within this window of expiry raise an alert.
const expiryWindow = 7 * 24 * time.Hour

type Sweep struct {
	tables *registry.Tables
}

func NewSweep(tables *registry.Tables) *Sweep {
	return &Sweep{tables: tables}
}

// Execute scans inventory and memberships and appends notifications,
// skipping any type+related pair that already has an unread entry.
// Returns how many notifications were created.
func (uc *Sweep) Execute(ctx context.Context) (int, error) {
	notifications := uc.tables.Notifications.GetAll(ctx)

	unread := map[string]bool{}
	for _, n := range notifications {
		if !n.Read {
			unread[string(n.Type)+"|"+n.RelatedID] = true
		}
	}

	now := timezone.Now()
	var fresh []models.Notification

	appendOnce := func(typ models.NotificationType, relatedID, message string) {
		key := string(typ) + "|" + relatedID
		if unread[key] {
			return
		}
		unread[key] = true
		fresh = append(fresh, models.Notification{
			ID:        models.NewID(),
			Type:      typ,
			Message:   message,
			RelatedID: relatedID,
			CreatedAt: now,
		})
	}

	for _, item := range uc.tables.Inventory.GetAll(ctx) {
		if item.LowStock() {
			appendOnce(models.NotifyLowStock, item.ID,
				fmt.Sprintf("%s is low on stock (%d left)", item.Name, item.Quantity))
		}
	}

	for _, c := range uc.tables.Customers.GetAll(ctx) {
		if !c.IsMember || c.MembershipExpiry == nil {
			continue
		}
		if c.MembershipExpiry.Before(now.Add(expiryWindow)) {
			when := "expires " + c.MembershipExpiry.Format("02 Jan 2006")
			if c.MembershipExpiry.Before(now) {
				when = "has expired"
			}
			appendOnce(models.NotifyMembershipExpiry, c.ID,
				fmt.Sprintf("Membership for %s %s", c.Name, when))
		}
	}

	if len(fresh) == 0 {
		return 0, nil
	}

	if err := uc.tables.Notifications.Save(ctx, append(fresh, notifications...)); err != nil {
		return 0, err
	}
	return len(fresh), nil
}
