package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dormledger/dormledger/internal/tenant"
)

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "$0.00", FormatAmount(0))
	assert.Equal(t, "$350.00", FormatAmount(350))
	assert.Equal(t, "$1,234.56", FormatAmount(1234.56))
	assert.Equal(t, "$1,234,567.89", FormatAmount(1234567.891))
	assert.Equal(t, "$42.50", FormatAmount(42.5))
}

// TestPurpose: Validates the printable payment record: five breakdown lines in
// display order, the derived total and the next due date relative to now.
// Scope: Unit Test
// Test Case ID: DRM-10
func TestBuildStatement(t *testing.T) {
	tn := tenant.Tenant{
		ID:             "t-1",
		FullName:       "Ana Reyes",
		ContactNumber:  "555-0101",
		RoomNumber:     "12",
		MoveInDate:     "2024-01-15",
		BaseRent:       350,
		ElectricityFee: 42.5,
		WaterFee:       18.25,
		InternetFee:    25,
		ParkingFee:     10,
		PaymentDueDate: 5,
	}

	s := BuildStatement(tn, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "Ana Reyes", s.FullName)
	assert.Equal(t, "January 15, 2024", s.MoveInDate)
	assert.Equal(t, "February 5, 2024", s.DueDate)
	assert.Equal(t, 445.75, s.Total)
	assert.Equal(t, "$445.75", s.TotalFormatted)

	require.Len(t, s.Lines, 5)
	assert.Equal(t, "Base Rent", s.Lines[0].Description)
	assert.Equal(t, "$350.00", s.Lines[0].Formatted)
	assert.Equal(t, "Internet/WiFi", s.Lines[3].Description)
	assert.Equal(t, "Parking", s.Lines[4].Description)
}

func TestBuildStatement_BadMoveInDateShownRaw(t *testing.T) {
	tn := tenant.Tenant{MoveInDate: "early spring", PaymentDueDate: 5}
	s := BuildStatement(tn, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "early spring", s.MoveInDate)
}

func TestChargeLabel(t *testing.T) {
	assert.Equal(t, "Water", ChargeLabel("waterFee"))
	assert.Equal(t, "somethingElse", ChargeLabel("somethingElse"))
}
