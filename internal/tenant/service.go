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

package tenant

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dormledger/dormledger/internal/audit"
)

// Service provides tenant record management business logic
type Service struct {
	store         Store
	auditLogger   audit.Logger
	defaultDueDay int
	now           func() time.Time
}

// NewService creates a new tenant service
func NewService(store Store, auditLogger audit.Logger, defaultDueDay int) *Service {
	if defaultDueDay < 1 || defaultDueDay > 31 {
		defaultDueDay = DefaultDueDay
	}
	return &Service{
		store:         store,
		auditLogger:   auditLogger,
		defaultDueDay: defaultDueDay,
		now:           time.Now,
	}
}

// DefaultDueDay returns the configured due day applied when a form leaves it blank.
func (s *Service) DefaultDueDay() int {
	return s.defaultDueDay
}

// Register creates a new tenant from a registration form. The id and creation
// timestamp are assigned here and never change afterwards.
func (s *Service) Register(ctx context.Context, form FormData) (*Tenant, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate tenant id: %w", err)
	}

	t := Tenant{
		ID:        id.String(),
		CreatedAt: s.now().Format(time.RFC3339),
	}
	form.apply(&t, s.defaultDueDay)

	if err := s.store.Add(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to store tenant: %w", err)
	}

	s.auditLogger.Log(ctx, audit.Event{
		Type:     audit.TypeTenantRegistered,
		TenantID: t.ID,
		Room:     t.RoomNumber,
		Metadata: map[string]any{"full_name": t.FullName},
	})

	return &t, nil
}

// Update replaces every field of the tenant with the given id except the id
// itself and the creation timestamp, which are preserved from the original.
func (s *Service) Update(ctx context.Context, id string, form FormData) (*Tenant, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	t := Tenant{
		ID:        existing.ID,
		CreatedAt: existing.CreatedAt,
	}
	form.apply(&t, s.defaultDueDay)

	if err := s.store.UpdateByID(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to update tenant: %w", err)
	}

	s.auditLogger.Log(ctx, audit.Event{
		Type:     audit.TypeTenantUpdated,
		TenantID: t.ID,
		Room:     t.RoomNumber,
	})

	return &t, nil
}

// Remove deletes the tenant with the given id. Removing an id that is not
// present is not an error.
func (s *Service) Remove(ctx context.Context, id string) error {
	if err := s.store.RemoveByID(ctx, id); err != nil {
		return fmt.Errorf("failed to remove tenant: %w", err)
	}

	s.auditLogger.Log(ctx, audit.Event{
		Type:     audit.TypeTenantRemoved,
		TenantID: id,
	})

	return nil
}

// List returns all tenants in insertion order.
func (s *Service) List(ctx context.Context) ([]Tenant, error) {
	return s.store.LoadAll(ctx)
}

// Search returns the tenants matching the query by name or room number.
func (s *Service) Search(ctx context.Context, query string) ([]Tenant, error) {
	tenants, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(tenants, query), nil
}

// Get retrieves a single tenant by id.
func (s *Service) Get(ctx context.Context, id string) (*Tenant, error) {
	tenants, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tenants {
		if tenants[i].ID == id {
			return &tenants[i], nil
		}
	}
	return nil, ErrTenantNotFound
}
