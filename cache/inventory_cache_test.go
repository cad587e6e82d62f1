package inventory_cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Caught-Online/caught-online-storefront-backend/models"
)

func TestSetGetRoundTrip(t *testing.T) {
	Invalidate()

	levels := []models.InventoryLevel{
		{LocationID: "loc-1", Available: true, Quantity: 7},
		{LocationID: "loc-2", Available: false, Quantity: 0},
	}
	Set("norwegian-salmon", levels)

	got, ok := Get("norwegian-salmon")
	require.True(t, ok)
	assert.Equal(t, levels, got)

	_, ok = Get("other-handle")
	assert.False(t, ok)
}

func TestInvalidateHandleIsScoped(t *testing.T) {
	Invalidate()

	Set("a", []models.InventoryLevel{{LocationID: "loc-1", Quantity: 1}})
	Set("b", []models.InventoryLevel{{LocationID: "loc-1", Quantity: 2}})

	InvalidateHandle("a")

	_, ok := Get("a")
	assert.False(t, ok)
	_, ok = Get("b")
	assert.True(t, ok)
}

func TestInvalidateDropsEverything(t *testing.T) {
	Set("a", []models.InventoryLevel{{LocationID: "loc-1"}})
	Set("b", []models.InventoryLevel{{LocationID: "loc-2"}})

	Invalidate()

	_, ok := Get("a")
	assert.False(t, ok)
	_, ok = Get("b")
	assert.False(t, ok)
}

func TestExpiredEntryReadsAsMiss(t *testing.T) {
	Invalidate()

	mu.Lock()
	byKey["stale"] = entry{
		levels:    []models.InventoryLevel{{LocationID: "loc-1"}},
		fetchedAt: time.Now().Add(-TTL - time.Second),
	}
	mu.Unlock()

	_, ok := Get("stale")
	assert.False(t, ok)
}
