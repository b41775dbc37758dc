package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/dormledger/dormledger/internal/tenant"
)

// CollectionStore implements tenant.Store on top of the collections table.
// The whole tenant sequence is serialized as one JSONB payload under a single
// key, keeping the original one-key read-modify-write contract.
type CollectionStore struct {
	db  *DB
	key string
}

var _ tenant.Store = (*CollectionStore)(nil)

// NewCollectionStore creates a store bound to the given collection key.
func NewCollectionStore(db *DB, key string) *CollectionStore {
	return &CollectionStore{db: db, key: key}
}

// LoadAll reads the stored collection. A missing row or a payload that does
// not decode yields an empty collection, never an error.
func (s *CollectionStore) LoadAll(ctx context.Context) ([]tenant.Tenant, error) {
	var payload []byte
	err := s.db.pool.QueryRow(ctx, `
		SELECT payload FROM collections WHERE key = $1
	`, s.key).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return []tenant.Tenant{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load collection: %w", err)
	}

	var tenants []tenant.Tenant
	if err := json.Unmarshal(payload, &tenants); err != nil {
		slog.WarnContext(ctx, "stored collection failed to decode, treating as empty",
			slog.String("key", s.key), slog.String("error", err.Error()))
		return []tenant.Tenant{}, nil
	}
	return tenants, nil
}

// SaveAll overwrites the stored collection with a single upsert, so no
// partial write is ever observable.
func (s *CollectionStore) SaveAll(ctx context.Context, tenants []tenant.Tenant) error {
	if tenants == nil {
		tenants = []tenant.Tenant{}
	}
	payload, err := json.Marshal(tenants)
	if err != nil {
		return fmt.Errorf("failed to encode collection: %w", err)
	}

	_, err = s.db.pool.Exec(ctx, `
		INSERT INTO collections (key, payload, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()
	`, s.key, payload)
	if err != nil {
		return fmt.Errorf("failed to save collection: %w", err)
	}
	return nil
}

// Add appends the tenant and saves, preserving insertion order.
func (s *CollectionStore) Add(ctx context.Context, t tenant.Tenant) error {
	tenants, err := s.LoadAll(ctx)
	if err != nil {
		return err
	}
	return s.SaveAll(ctx, append(tenants, t))
}

// RemoveByID saves the collection without the matching record. Absent ids
// are a no-op.
func (s *CollectionStore) RemoveByID(ctx context.Context, id string) error {
	tenants, err := s.LoadAll(ctx)
	if err != nil {
		return err
	}
	kept := make([]tenant.Tenant, 0, len(tenants))
	for _, t := range tenants {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	return s.SaveAll(ctx, kept)
}

// UpdateByID replaces the matching record wholesale. Absent ids are a no-op;
// the update is silently dropped.
func (s *CollectionStore) UpdateByID(ctx context.Context, t tenant.Tenant) error {
	tenants, err := s.LoadAll(ctx)
	if err != nil {
		return err
	}
	for i := range tenants {
		if tenants[i].ID == t.ID {
			tenants[i] = t
		}
	}
	return s.SaveAll(ctx, tenants)
}
