package billing

import (
	"time"

	"github.com/dormledger/dormledger/internal/tenant"
)

// Labels for the charge breakdown lines, keyed by charge type.
var chargeLabels = map[string]string{
	"baseRent":       "Base Rent",
	"electricityFee": "Electricity",
	"waterFee":       "Water",
	"internetFee":    "Internet/WiFi",
	"parkingFee":     "Parking",
}

// Line is one row of a tenant payment record.
type Line struct {
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Formatted   string  `json:"formatted"`
}

// Statement is the printable payment record for a single tenant: identity,
// per-category charge lines, grand total and the next due date.
type Statement struct {
	TenantID       string  `json:"tenantId"`
	FullName       string  `json:"fullName"`
	ContactNumber  string  `json:"contactNumber"`
	RoomNumber     string  `json:"roomNumber"`
	MoveInDate     string  `json:"moveInDate"`
	Lines          []Line  `json:"lines"`
	Total          float64 `json:"total"`
	TotalFormatted string  `json:"totalFormatted"`
	DueDate        string  `json:"dueDate"`
}

// BuildStatement assembles the payment record for t as of now.
func BuildStatement(t tenant.Tenant, now time.Time) Statement {
	lines := make([]Line, 0, 5)
	for _, c := range t.Charges() {
		lines = append(lines, Line{
			Type:        c.Type,
			Description: chargeLabels[c.Type],
			Amount:      c.Amount,
			Formatted:   FormatAmount(c.Amount),
		})
	}

	total := t.TotalCharge()
	return Statement{
		TenantID:       t.ID,
		FullName:       t.FullName,
		ContactNumber:  t.ContactNumber,
		RoomNumber:     t.RoomNumber,
		MoveInDate:     FormatDate(t.MoveInDate),
		Lines:          lines,
		Total:          total,
		TotalFormatted: FormatAmount(total),
		DueDate:        NextDueDate(t.PaymentDueDate, now).Format("January 2, 2006"),
	}
}

// ChargeLabel returns the display label for a charge type, or the type
// itself when unknown.
func ChargeLabel(chargeType string) string {
	if label, ok := chargeLabels[chargeType]; ok {
		return label
	}
	return chargeType
}
