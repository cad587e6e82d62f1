package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegionStoreSelectGetReset(t *testing.T) {
	store := NewRegionStore(NewMemoryRegionBackend())
	ctx := context.Background()

	// Nothing selected yet
	_, ok, err := store.Selected(ctx, "visitor-1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.SetRegion(ctx, "visitor-1", "cape-town"))

	region, ok, err := store.Selected(ctx, "visitor-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "cape-town", region.ID)
	assert.Equal(t, "Cape Town", region.Name)
	assert.NotEmpty(t, region.LocationID)

	// Other visitors are unaffected
	_, ok, err = store.Selected(ctx, "visitor-2")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.ResetRegion(ctx, "visitor-1"))
	_, ok, err = store.Selected(ctx, "visitor-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRegionStoreRejectsUnknownRegion(t *testing.T) {
	store := NewRegionStore(NewMemoryRegionBackend())
	ctx := context.Background()

	err := store.SetRegion(ctx, "visitor-1", "atlantis")
	assert.ErrorIs(t, err, ErrUnknownRegion)

	// Rejected selection left no state behind
	_, ok, getErr := store.Selected(ctx, "visitor-1")
	require.NoError(t, getErr)
	assert.False(t, ok)
}

func TestRegionStoreOverwriteSelection(t *testing.T) {
	store := NewRegionStore(NewMemoryRegionBackend())
	ctx := context.Background()

	require.NoError(t, store.SetRegion(ctx, "visitor-1", "durban"))
	require.NoError(t, store.SetRegion(ctx, "visitor-1", "johannesburg"))

	region, ok, err := store.Selected(ctx, "visitor-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "johannesburg", region.ID)
}

func TestRegionStoreStaleStoredIDReadsAsUnselected(t *testing.T) {
	backend := NewMemoryRegionBackend()
	store := NewRegionStore(backend)
	ctx := context.Background()

	// Simulate a region that was removed from the table after being stored
	require.NoError(t, backend.Set(ctx, "visitor-1", "port-elizabeth"))

	_, ok, err := store.Selected(ctx, "visitor-1")
	require.NoError(t, err)
	assert.False(t, ok)
}
