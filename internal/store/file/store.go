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

package file

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/dormledger/dormledger/internal/tenant"
)

// Store persists the tenant collection as a JSON array in a single file named
// after the collection key, the durable-local analog of the original single
// storage key. All mutations rewrite the whole file.
type Store struct {
	mu   sync.Mutex
	path string
}

var _ tenant.Store = (*Store)(nil)

// New creates a file store rooted at dir. The collection lives in
// dir/<key>.json.
func New(dir, key string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &Store{path: filepath.Join(dir, key+".json")}, nil
}

// LoadAll reads the stored collection. A missing file or a payload that does
// not decode yields an empty collection, never an error.
func (s *Store) LoadAll(ctx context.Context) ([]tenant.Tenant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked(ctx)
}

func (s *Store) loadLocked(ctx context.Context) ([]tenant.Tenant, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return []tenant.Tenant{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read collection file: %w", err)
	}

	var tenants []tenant.Tenant
	if err := json.Unmarshal(data, &tenants); err != nil {
		slog.WarnContext(ctx, "stored collection failed to decode, treating as empty",
			slog.String("path", s.path), slog.String("error", err.Error()))
		return []tenant.Tenant{}, nil
	}
	return tenants, nil
}

// SaveAll overwrites the stored collection. The write goes through a temp
// file and a rename so a partial write is never observable.
func (s *Store) SaveAll(ctx context.Context, tenants []tenant.Tenant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(tenants)
}

func (s *Store) saveLocked(tenants []tenant.Tenant) error {
	if tenants == nil {
		tenants = []tenant.Tenant{}
	}
	data, err := json.Marshal(tenants)
	if err != nil {
		return fmt.Errorf("failed to encode collection: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write collection file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace collection file: %w", err)
	}
	return nil
}

// Add appends the tenant and saves, preserving insertion order.
func (s *Store) Add(ctx context.Context, t tenant.Tenant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tenants, err := s.loadLocked(ctx)
	if err != nil {
		return err
	}
	return s.saveLocked(append(tenants, t))
}

// RemoveByID saves the collection without the matching record. Absent ids
// are a no-op.
func (s *Store) RemoveByID(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tenants, err := s.loadLocked(ctx)
	if err != nil {
		return err
	}
	kept := make([]tenant.Tenant, 0, len(tenants))
	for _, t := range tenants {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	return s.saveLocked(kept)
}

// UpdateByID replaces the matching record wholesale. Absent ids are a no-op;
// the update is silently dropped.
func (s *Store) UpdateByID(ctx context.Context, t tenant.Tenant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tenants, err := s.loadLocked(ctx)
	if err != nil {
		return err
	}
	for i := range tenants {
		if tenants[i].ID == t.ID {
			tenants[i] = t
		}
	}
	return s.saveLocked(tenants)
}
