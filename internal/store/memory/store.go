package memory

import (
	"context"
	"sync"

	"github.com/dormledger/dormledger/internal/tenant"
)

// Store keeps the tenant collection in memory. It implements tenant.Store
// and is used by tests and demo mode, where durability does not matter.
type Store struct {
	mu      sync.RWMutex
	tenants []tenant.Tenant
}

var _ tenant.Store = (*Store)(nil)

// New creates an empty in-memory store.
func New() *Store {
	return &Store{}
}

// LoadAll returns a copy of the collection in insertion order.
func (s *Store) LoadAll(ctx context.Context) ([]tenant.Tenant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]tenant.Tenant{}, s.tenants...), nil
}

// SaveAll overwrites the whole collection.
func (s *Store) SaveAll(ctx context.Context, tenants []tenant.Tenant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tenants = append([]tenant.Tenant{}, tenants...)
	return nil
}

// Add appends a tenant to the end of the collection.
func (s *Store) Add(ctx context.Context, t tenant.Tenant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tenants = append(s.tenants, t)
	return nil
}

// RemoveByID drops the matching record. Absent ids are a no-op.
func (s *Store) RemoveByID(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.tenants[:0]
	for _, t := range s.tenants {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.tenants = kept
	return nil
}

// UpdateByID replaces the matching record wholesale. Absent ids are a no-op.
func (s *Store) UpdateByID(ctx context.Context, t tenant.Tenant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.tenants {
		if s.tenants[i].ID == t.ID {
			s.tenants[i] = t
		}
	}
	return nil
}
