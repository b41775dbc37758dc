// Copyright 2026 The DormLedger Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/dormledger/dormledger/internal/tenant"
)

// Request is the body sent to the reminder endpoint. It carries the tenant's
// identity, contact, per-category charges and the due day.
type Request struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Room             string         `json:"room"`
	Contact          string         `json:"contact"`
	MoveInDate       string         `json:"moveInDate"`
	Charges          ChargeSummary  `json:"charges"`
	MonthlyCharges   []MonthlyLine  `json:"monthlyCharges"`
	PaymentDueDate   int            `json:"paymentDueDate"`
	NotificationType string         `json:"notificationType"`
}

// ChargeSummary is the flat per-category view including the derived total.
type ChargeSummary struct {
	BaseRent       float64 `json:"baseRent"`
	ElectricityFee float64 `json:"electricityFee"`
	WaterFee       float64 `json:"waterFee"`
	InternetFee    float64 `json:"internetFee"`
	ParkingFee     float64 `json:"parkingFee"`
	Total          float64 `json:"total"`
}

// MonthlyLine is one entry of the charge breakdown array.
type MonthlyLine struct {
	Type   string  `json:"type"`
	Amount float64 `json:"amount"`
}

// Receipt is whatever confirmation payload the endpoint returns on success.
// Both fields are optional and rendered as-is.
type Receipt struct {
	QRCodeURL   string       `json:"qrCodeUrl,omitempty"`
	PaymentData *PaymentData `json:"paymentData,omitempty"`
}

// PaymentData carries textual payment metadata from the reminder endpoint.
type PaymentData struct {
	PaymentMethod string `json:"paymentMethod"`
	Reference     string `json:"reference"`
	ExpiresIn     string `json:"expiresIn"`
	MerchantCode  string `json:"merchantCode"`
}

// Notifier dispatches a payment reminder for a tenant. Dispatch has no effect
// on the stored records; a failure is reported once with no retry.
type Notifier interface {
	Send(ctx context.Context, t tenant.Tenant, notificationType string) (*Receipt, error)
}

// HTTPNotifier implements Notifier against the local reminder endpoint.
type HTTPNotifier struct {
	baseURL    string
	httpClient *http.Client
}

var _ Notifier = (*HTTPNotifier)(nil)

// Option configures the HTTPNotifier.
type Option func(*HTTPNotifier)

// WithHTTPClient sets a custom HTTP client (for testing).
func WithHTTPClient(client *http.Client) Option {
	return func(n *HTTPNotifier) {
		n.httpClient = client
	}
}

// NewHTTPNotifier creates a notifier posting to baseURL/api/notifications.
func NewHTTPNotifier(baseURL string, timeout time.Duration, opts ...Option) *HTTPNotifier {
	n := &HTTPNotifier{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// BuildRequest assembles the endpoint body for a tenant.
func BuildRequest(t tenant.Tenant, notificationType string) Request {
	lines := make([]MonthlyLine, 0, 5)
	for _, c := range t.Charges() {
		lines = append(lines, MonthlyLine{Type: c.Type, Amount: c.Amount})
	}
	return Request{
		ID:         t.ID,
		Name:       t.FullName,
		Room:       t.RoomNumber,
		Contact:    t.ContactNumber,
		MoveInDate: t.MoveInDate,
		Charges: ChargeSummary{
			BaseRent:       t.BaseRent,
			ElectricityFee: t.ElectricityFee,
			WaterFee:       t.WaterFee,
			InternetFee:    t.InternetFee,
			ParkingFee:     t.ParkingFee,
			Total:          t.TotalCharge(),
		},
		MonthlyCharges:   lines,
		PaymentDueDate:   t.PaymentDueDate,
		NotificationType: notificationType,
	}
}

// Send posts the reminder. Any non-2xx status is a failure; the caller is
// expected to surface it once and move on.
func (n *HTTPNotifier) Send(ctx context.Context, t tenant.Tenant, notificationType string) (*Receipt, error) {
	body, err := json.Marshal(BuildRequest(t, notificationType))
	if err != nil {
		return nil, fmt.Errorf("failed to encode reminder request: %w", err)
	}

	url := n.baseURL + "/api/notifications"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create reminder request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach reminder endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("reminder endpoint returned status %d", resp.StatusCode)
	}

	var receipt Receipt
	if err := json.NewDecoder(resp.Body).Decode(&receipt); err != nil {
		// A success with an empty or non-JSON body still counts as sent.
		return &Receipt{}, nil
	}
	return &receipt, nil
}
