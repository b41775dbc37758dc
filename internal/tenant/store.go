package tenant

import (
	"context"
)

// Store defines the interface for the tenant collection storage. The whole
// collection lives under one well-known key; every mutation is a
// read-modify-write of the full ordered sequence.
//
// LoadAll must treat a missing or undecodable payload as an empty collection.
// RemoveByID and UpdateByID are silent no-ops when no record matches the id.
type Store interface {
	LoadAll(ctx context.Context) ([]Tenant, error)
	SaveAll(ctx context.Context, tenants []Tenant) error
	Add(ctx context.Context, t Tenant) error
	RemoveByID(ctx context.Context, id string) error
	UpdateByID(ctx context.Context, t Tenant) error
}

// CollectionKey is the well-known key the tenant collection is stored under.
const CollectionKey = "dormitory_tenants"
