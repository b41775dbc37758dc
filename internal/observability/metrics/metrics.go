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

package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Config holds metrics configuration
type Config struct {
	Enabled bool
}

// Metrics bundles the service's instruments. When disabled, the instruments
// come from a noop meter and record nothing.
type Metrics struct {
	meter metric.Meter

	TenantsRegistered metric.Int64Counter
	TenantsUpdated    metric.Int64Counter
	TenantsRemoved    metric.Int64Counter
	RemindersSent     metric.Int64Counter
	RemindersFailed   metric.Int64Counter
}

// New creates the service instruments from the global meter provider.
func New(ctx context.Context, cfg Config, serviceName string) (*Metrics, error) {
	name := serviceName
	if !cfg.Enabled {
		name = "noop"
	}
	m := &Metrics{meter: otel.Meter(name)}

	var err error
	if m.TenantsRegistered, err = m.counter("tenants_registered_total", "Tenants registered through the form"); err != nil {
		return nil, err
	}
	if m.TenantsUpdated, err = m.counter("tenants_updated_total", "Tenant records edited"); err != nil {
		return nil, err
	}
	if m.TenantsRemoved, err = m.counter("tenants_removed_total", "Tenant records removed after confirmation"); err != nil {
		return nil, err
	}
	if m.RemindersSent, err = m.counter("reminders_sent_total", "Payment reminders dispatched"); err != nil {
		return nil, err
	}
	if m.RemindersFailed, err = m.counter("reminders_failed_total", "Payment reminder dispatch failures"); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Metrics) counter(name, description string) (metric.Int64Counter, error) {
	counter, err := m.meter.Int64Counter(name, metric.WithDescription(description))
	if err != nil {
		return nil, fmt.Errorf("failed to create counter %s: %w", name, err)
	}
	return counter, nil
}
