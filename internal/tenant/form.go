package tenant

import (
	"errors"
	"strconv"
	"strings"
)

// ErrMissingInformation is reported when a required form field is empty.
// The submission is rejected and no state changes.
var ErrMissingInformation = errors.New("missing information: please fill in all required fields")

// FormData carries the raw field values as submitted by the registration/edit
// form. Charge values arrive as text; empty or unparseable input coerces to
// zero rather than failing the submission.
type FormData struct {
	FullName       string `json:"fullName"`
	ContactNumber  string `json:"contactNumber"`
	RoomNumber     string `json:"roomNumber"`
	MoveInDate     string `json:"moveInDate"`
	BaseRent       string `json:"baseRent"`
	ElectricityFee string `json:"electricityFee"`
	WaterFee       string `json:"waterFee"`
	InternetFee    string `json:"internetFee"`
	ParkingFee     string `json:"parkingFee"`
	PaymentDueDate string `json:"paymentDueDate"`
}

// Validate checks the four required text fields.
func (f FormData) Validate() error {
	if strings.TrimSpace(f.FullName) == "" ||
		strings.TrimSpace(f.ContactNumber) == "" ||
		strings.TrimSpace(f.RoomNumber) == "" ||
		strings.TrimSpace(f.MoveInDate) == "" {
		return ErrMissingInformation
	}
	return nil
}

// ParseAmount converts a charge field to a non-negative amount. Empty and
// invalid input fall back to zero.
func ParseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// ParseDueDay converts a due-day field to a day of month, falling back to
// fallback for empty or out-of-range input.
func ParseDueDay(s string, fallback int) int {
	d, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || d < 1 || d > 31 {
		return fallback
	}
	return d
}

// apply overwrites the mutable fields of t with the form values. ID and
// CreatedAt are left untouched.
func (f FormData) apply(t *Tenant, defaultDueDay int) {
	t.FullName = strings.TrimSpace(f.FullName)
	t.ContactNumber = strings.TrimSpace(f.ContactNumber)
	t.RoomNumber = strings.TrimSpace(f.RoomNumber)
	t.MoveInDate = strings.TrimSpace(f.MoveInDate)
	t.BaseRent = ParseAmount(f.BaseRent)
	t.ElectricityFee = ParseAmount(f.ElectricityFee)
	t.WaterFee = ParseAmount(f.WaterFee)
	t.InternetFee = ParseAmount(f.InternetFee)
	t.ParkingFee = ParseAmount(f.ParkingFee)
	t.PaymentDueDate = ParseDueDay(f.PaymentDueDate, defaultDueDay)
}
