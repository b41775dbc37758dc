package tenant

import (
	"errors"
	"fmt"
	"strings"
)

// Tenant is one dormitory occupant record. Field names (and JSON keys) match
// the stored collection layout; TotalCharge is derived, never stored.
type Tenant struct {
	ID            string `json:"id"`
	FullName      string `json:"fullName"`
	ContactNumber string `json:"contactNumber"`
	RoomNumber    string `json:"roomNumber"`
	MoveInDate    string `json:"moveInDate"`
	CreatedAt     string `json:"createdAt"`

	// Monthly charges
	BaseRent       float64 `json:"baseRent"`
	ElectricityFee float64 `json:"electricityFee"`
	WaterFee       float64 `json:"waterFee"`
	InternetFee    float64 `json:"internetFee"`
	ParkingFee     float64 `json:"parkingFee"`

	// Day of month (1-31) on which rent is due
	PaymentDueDate int `json:"paymentDueDate"`
}

// DefaultDueDay is the system-wide default payment due day of month.
const DefaultDueDay = 5

var (
	ErrTenantNotFound = errors.New("tenant not found")
)

// Charge is a single line of the monthly charge breakdown.
type Charge struct {
	Type   string  `json:"type"`
	Amount float64 `json:"amount"`
}

// TotalCharge returns the sum of the five monthly charges.
func (t *Tenant) TotalCharge() float64 {
	return t.BaseRent + t.ElectricityFee + t.WaterFee + t.InternetFee + t.ParkingFee
}

// Charges returns the monthly charge breakdown in display order.
func (t *Tenant) Charges() []Charge {
	return []Charge{
		{Type: "baseRent", Amount: t.BaseRent},
		{Type: "electricityFee", Amount: t.ElectricityFee},
		{Type: "waterFee", Amount: t.WaterFee},
		{Type: "internetFee", Amount: t.InternetFee},
		{Type: "parkingFee", Amount: t.ParkingFee},
	}
}

// Validate checks the record invariants.
func (t *Tenant) Validate() error {
	if t.FullName == "" || t.ContactNumber == "" || t.RoomNumber == "" || t.MoveInDate == "" {
		return fmt.Errorf("full name, contact number, room number and move-in date are required")
	}
	for _, c := range t.Charges() {
		if c.Amount < 0 {
			return fmt.Errorf("charge %s must not be negative", c.Type)
		}
	}
	if t.PaymentDueDate < 1 || t.PaymentDueDate > 31 {
		return fmt.Errorf("payment due date must be a day of month between 1 and 31")
	}
	return nil
}

// Filter returns the tenants whose full name or room number contains the
// query, case-insensitively. An empty query matches everything.
func Filter(tenants []Tenant, query string) []Tenant {
	if query == "" {
		return tenants
	}
	q := strings.ToLower(query)
	var matched []Tenant
	for _, t := range tenants {
		if strings.Contains(strings.ToLower(t.FullName), q) ||
			strings.Contains(strings.ToLower(t.RoomNumber), q) {
			matched = append(matched, t)
		}
	}
	return matched
}
