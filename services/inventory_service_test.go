package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inventory_cache "github.com/Caught-Online/caught-online-storefront-backend/cache"
	"github.com/Caught-Online/caught-online-storefront-backend/models"
)

// fakeCatalog serves canned inventory levels per handle.
type fakeCatalog struct {
	products []models.StorefrontProduct
	levels   map[string][]models.InventoryLevel
	err      error

	// onInventoryFetch runs inside InventoryLevels, before returning.
	onInventoryFetch func(handle string)
}

func (f *fakeCatalog) Products(ctx context.Context, first int) ([]models.StorefrontProduct, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

func (f *fakeCatalog) ProductByHandle(ctx context.Context, handle string) (*models.StorefrontProduct, error) {
	for i := range f.products {
		if f.products[i].Handle == handle {
			return &f.products[i], nil
		}
	}
	return nil, nil
}

func (f *fakeCatalog) InventoryLevels(ctx context.Context, handle string) ([]models.InventoryLevel, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.onInventoryFetch != nil {
		f.onInventoryFetch(handle)
	}
	return f.levels[handle], nil
}

func (f *fakeCatalog) SellingPlans(ctx context.Context, handle string) ([]models.SellingPlan, error) {
	return nil, nil
}

func (f *fakeCatalog) CustomerLogin(ctx context.Context, email, password string) (*models.CustomerToken, *models.Customer, error) {
	return nil, nil, nil
}

const capeTownLocation = "gid://shopify/Location/61019553862"

func TestCheckInventoryResolvesRegionToLocation(t *testing.T) {
	inventory_cache.Invalidate()

	svc := NewInventoryService(&fakeCatalog{
		levels: map[string][]models.InventoryLevel{
			"norwegian-salmon": {
				{LocationID: capeTownLocation, Available: true, Quantity: 12},
				{LocationID: "gid://shopify/Location/61019619398", Available: false, Quantity: 0},
			},
		},
	})

	status, err := svc.CheckInventory(context.Background(), "norwegian-salmon", "cape-town")
	require.NoError(t, err)
	assert.True(t, status.Available)
	assert.Equal(t, 12, status.Quantity)
	assert.Len(t, status.Locations, 2)
}

func TestCheckInventoryAbsenceIsNegativeNotError(t *testing.T) {
	inventory_cache.Invalidate()

	svc := NewInventoryService(&fakeCatalog{
		levels: map[string][]models.InventoryLevel{},
	})

	// Unknown handle: no levels at all
	status, err := svc.CheckInventory(context.Background(), "no-such-product", "cape-town")
	require.NoError(t, err)
	assert.False(t, status.Available)
	assert.Zero(t, status.Quantity)
}

func TestCheckInventoryNoLevelAtRegionLocation(t *testing.T) {
	inventory_cache.Invalidate()

	svc := NewInventoryService(&fakeCatalog{
		levels: map[string][]models.InventoryLevel{
			"tiger-prawns": {
				{LocationID: "gid://shopify/Location/61019619398", Available: true, Quantity: 5},
			},
		},
	})

	// Durban has stock, Cape Town does not: negative answer, nil error
	status, err := svc.CheckInventory(context.Background(), "tiger-prawns", "cape-town")
	require.NoError(t, err)
	assert.False(t, status.Available)
	assert.Zero(t, status.Quantity)
}

func TestCheckInventoryUpstreamFailurePropagates(t *testing.T) {
	inventory_cache.Invalidate()

	svc := NewInventoryService(&fakeCatalog{err: ErrUpstream})

	_, err := svc.CheckInventory(context.Background(), "norwegian-salmon", "cape-town")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestCheckInventorySupersededByNewerCheck(t *testing.T) {
	inventory_cache.Invalidate()

	catalog := &fakeCatalog{
		levels: map[string][]models.InventoryLevel{
			"norwegian-salmon": {
				{LocationID: capeTownLocation, Available: true, Quantity: 12},
			},
		},
	}
	svc := NewInventoryService(catalog)

	// A newer check for the same handle starts while the fetch is in flight
	catalog.onInventoryFetch = func(handle string) {
		svc.begin(handle)
	}

	_, err := svc.CheckInventory(context.Background(), "norwegian-salmon", "cape-town")
	assert.ErrorIs(t, err, ErrSuperseded)

	// Stale result must not have been cached
	_, cached := inventory_cache.Get("norwegian-salmon")
	assert.False(t, cached)
}

func TestCheckInventoryAcceptsRawLocationID(t *testing.T) {
	inventory_cache.Invalidate()

	svc := NewInventoryService(&fakeCatalog{
		levels: map[string][]models.InventoryLevel{
			"west-coast-oysters": {
				{LocationID: "gid://shopify/Location/9999", Available: true, Quantity: 3},
			},
		},
	})

	status, err := svc.CheckInventory(context.Background(), "west-coast-oysters", "gid://shopify/Location/9999")
	require.NoError(t, err)
	assert.True(t, status.Available)
	assert.Equal(t, 3, status.Quantity)
}

func TestListInventoryEmptyRegionAggregatesAcrossLocations(t *testing.T) {
	inventory_cache.Invalidate()

	svc := NewInventoryService(&fakeCatalog{
		products: []models.StorefrontProduct{
			{Handle: "norwegian-salmon"},
			{Handle: "smoked-snoek"},
		},
		levels: map[string][]models.InventoryLevel{
			"norwegian-salmon": {
				{LocationID: capeTownLocation, Available: true, Quantity: 4},
				{LocationID: "gid://shopify/Location/61019619398", Available: true, Quantity: 6},
			},
			"smoked-snoek": {
				{LocationID: capeTownLocation, Available: false, Quantity: 0},
			},
		},
	})

	statuses, err := svc.ListInventory(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, statuses, 2)

	assert.True(t, statuses[0].Available)
	assert.Equal(t, 10, statuses[0].Quantity)
	assert.False(t, statuses[1].Available)
}

func TestListInventoryUpstreamFailurePropagates(t *testing.T) {
	inventory_cache.Invalidate()

	svc := NewInventoryService(&fakeCatalog{err: ErrUpstream})

	_, err := svc.ListInventory(context.Background(), "cape-town")
	assert.ErrorIs(t, err, ErrUpstream)
}
