package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dormledger/dormledger/internal/tenant"
)

func sampleTenant() tenant.Tenant {
	return tenant.Tenant{
		ID:             "t-1",
		FullName:       "Ana Reyes",
		ContactNumber:  "09171234567",
		RoomNumber:     "3B",
		MoveInDate:     "2024-01-01",
		BaseRent:       350,
		ElectricityFee: 45.25,
		WaterFee:       20,
		InternetFee:    25.50,
		ParkingFee:     5,
		PaymentDueDate: 5,
	}
}

func TestBuildRequest(t *testing.T) {
	req := BuildRequest(sampleTenant(), TypeTotal)

	assert.Equal(t, "t-1", req.ID)
	assert.Equal(t, "Ana Reyes", req.Name)
	assert.Equal(t, "3B", req.Room)
	assert.Equal(t, "09171234567", req.Contact)
	assert.Equal(t, 5, req.PaymentDueDate)
	assert.Equal(t, TypeTotal, req.NotificationType)
	assert.Equal(t, 445.75, req.Charges.Total)

	require.Len(t, req.MonthlyCharges, 5)
	assert.Equal(t, "baseRent", req.MonthlyCharges[0].Type)
	assert.Equal(t, 350.0, req.MonthlyCharges[0].Amount)
	assert.Equal(t, "parkingFee", req.MonthlyCharges[4].Type)
}

// TestPurpose: Verify a successful reminder dispatch and receipt decoding
// Scope: HTTPNotifier.Send
// Expected Result: request body carries the tenant payload; the returned
// receipt exposes the endpoint's QR code and payment data
// Test Case ID: DRM-15
func TestHTTPNotifier_Send_Success(t *testing.T) {
	var got Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/notifications", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(Receipt{
			QRCodeURL: "https://pay.example/qr/t-1",
			PaymentData: &PaymentData{
				PaymentMethod: "gcash",
				Reference:     "REF-123",
				ExpiresIn:     "24h",
				MerchantCode:  "DORM-01",
			},
		})
	}))
	defer server.Close()

	notifier := NewHTTPNotifier(server.URL, 5*time.Second,
		WithHTTPClient(server.Client()))

	receipt, err := notifier.Send(context.Background(), sampleTenant(), TypeTotal)
	require.NoError(t, err)
	require.NotNil(t, receipt)
	assert.Equal(t, "https://pay.example/qr/t-1", receipt.QRCodeURL)
	require.NotNil(t, receipt.PaymentData)
	assert.Equal(t, "REF-123", receipt.PaymentData.Reference)

	assert.Equal(t, "t-1", got.ID)
	assert.Equal(t, TypeTotal, got.NotificationType)
	assert.Equal(t, 445.75, got.Charges.Total)
}

// TestPurpose: Verify non-2xx responses surface as a single failure
// Scope: HTTPNotifier.Send
// Expected Result: an error mentioning the status, nil receipt, no retry
// Test Case ID: DRM-16
func TestHTTPNotifier_Send_ServerError(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	notifier := NewHTTPNotifier(server.URL, 5*time.Second,
		WithHTTPClient(server.Client()))

	receipt, err := notifier.Send(context.Background(), sampleTenant(), TypeTotal)
	require.Error(t, err)
	assert.Nil(t, receipt)
	assert.Contains(t, err.Error(), "500")
	assert.Equal(t, 1, calls)
}

func TestHTTPNotifier_Send_EmptySuccessBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	notifier := NewHTTPNotifier(server.URL, 5*time.Second,
		WithHTTPClient(server.Client()))

	receipt, err := notifier.Send(context.Background(), sampleTenant(), TypeTotal)
	require.NoError(t, err)
	require.NotNil(t, receipt)
	assert.Empty(t, receipt.QRCodeURL)
	assert.Nil(t, receipt.PaymentData)
}

func TestHTTPNotifier_Send_Unreachable(t *testing.T) {
	notifier := NewHTTPNotifier("http://127.0.0.1:1", time.Second)

	receipt, err := notifier.Send(context.Background(), sampleTenant(), TypeTotal)
	require.Error(t, err)
	assert.Nil(t, receipt)
}

func TestMessage_Total(t *testing.T) {
	now := time.Date(2024, time.January, 10, 9, 0, 0, 0, time.UTC)

	msg := Message(sampleTenant(), TypeTotal, now)
	assert.Equal(t, "Payment reminder for Ana Reyes (Room 3B): monthly total $445.75 due February 5, 2024", msg)
}

func TestMessage_SingleCategory(t *testing.T) {
	now := time.Date(2024, time.January, 10, 9, 0, 0, 0, time.UTC)

	msg := Message(sampleTenant(), "electricityFee", now)
	assert.Equal(t, "Payment reminder for Ana Reyes (Room 3B): Electricity $45.25 due February 5, 2024", msg)
}
