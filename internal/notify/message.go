package notify

import (
	"fmt"
	"time"

	"github.com/dormledger/dormledger/internal/billing"
	"github.com/dormledger/dormledger/internal/tenant"
)

// TypeTotal asks for a reminder covering the grand total instead of a single
// charge category.
const TypeTotal = "total"

// Message formats the human-readable reminder for one charge category, or for
// the grand total when notificationType is TypeTotal. The amount and the next
// due date are the whole payload; this is a simulation, not a delivery.
func Message(t tenant.Tenant, notificationType string, now time.Time) string {
	due := billing.NextDueDate(t.PaymentDueDate, now).Format("January 2, 2006")

	if notificationType == TypeTotal {
		return fmt.Sprintf("Payment reminder for %s (Room %s): monthly total %s due %s",
			t.FullName, t.RoomNumber, billing.FormatAmount(t.TotalCharge()), due)
	}

	amount := 0.0
	for _, c := range t.Charges() {
		if c.Type == notificationType {
			amount = c.Amount
		}
	}
	return fmt.Sprintf("Payment reminder for %s (Room %s): %s %s due %s",
		t.FullName, t.RoomNumber, billing.ChargeLabel(notificationType),
		billing.FormatAmount(amount), due)
}
