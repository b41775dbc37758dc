package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dormledger/dormledger/internal/tenant"
)

func TestStore_RoundTrip(t *testing.T) {
	s := New()
	ctx := context.Background()

	xs := []tenant.Tenant{
		{ID: "a", FullName: "Ana Reyes", RoomNumber: "12"},
		{ID: "b", FullName: "Ben Cruz", RoomNumber: "3B"},
	}
	require.NoError(t, s.SaveAll(ctx, xs))

	got, err := s.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, xs, got)
}

func TestStore_AddPreservesInsertionOrder(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.Add(ctx, tenant.Tenant{ID: "a"}))
	require.NoError(t, s.Add(ctx, tenant.Tenant{ID: "b"}))
	require.NoError(t, s.Add(ctx, tenant.Tenant{ID: "c"}))

	got, err := s.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "c", got[2].ID)
}

func TestStore_RemoveByID(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.SaveAll(ctx, []tenant.Tenant{{ID: "a"}, {ID: "b"}}))
	require.NoError(t, s.RemoveByID(ctx, "a"))

	got, err := s.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)
}

// Removing an id that is not present is deliberately a silent no-op.
func TestStore_RemoveByID_AbsentIsNoOp(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.SaveAll(ctx, []tenant.Tenant{{ID: "a"}}))
	require.NoError(t, s.RemoveByID(ctx, "nope"))

	got, err := s.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestStore_UpdateByID_ReplacesWholesale(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.SaveAll(ctx, []tenant.Tenant{
		{ID: "a", FullName: "Ana Reyes", BaseRent: 350},
		{ID: "b", FullName: "Ben Cruz"},
	}))

	require.NoError(t, s.UpdateByID(ctx, tenant.Tenant{ID: "a", FullName: "Ana R. Santos", BaseRent: 400}))

	got, err := s.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2) // record count unchanged
	assert.Equal(t, "Ana R. Santos", got[0].FullName)
	assert.Equal(t, 400.0, got[0].BaseRent)
	assert.Equal(t, "Ben Cruz", got[1].FullName)
}

// An update whose id matches nothing is silently dropped. This mirrors the
// original behavior and is intentional; see the store contract.
func TestStore_UpdateByID_AbsentIsSilentlyDropped(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.SaveAll(ctx, []tenant.Tenant{{ID: "a", FullName: "Ana Reyes"}}))
	require.NoError(t, s.UpdateByID(ctx, tenant.Tenant{ID: "ghost", FullName: "Nobody"}))

	got, err := s.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Ana Reyes", got[0].FullName)
}

func TestStore_LoadAll_ReturnsCopy(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.SaveAll(ctx, []tenant.Tenant{{ID: "a", FullName: "Ana Reyes"}}))

	got, _ := s.LoadAll(ctx)
	got[0].FullName = "mutated"

	again, _ := s.LoadAll(ctx)
	assert.Equal(t, "Ana Reyes", again[0].FullName)
}
