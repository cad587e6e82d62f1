package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Caught-Online/caught-online-storefront-backend/models"
)

func testCatalog() []models.StorefrontProduct {
	return []models.StorefrontProduct{
		{
			ID: "1", Handle: "norwegian-salmon", Title: "Norwegian Salmon",
			ProductType: "Fish", Tags: []string{"salmon", "fresh", "wild-caught"},
			MinPrice: "249.00", Available: true,
			Variants: []models.Variant{{ID: "v1", Price: "249.00", Available: true}},
		},
		{
			ID: "2", Handle: "tiger-prawns", Title: "Tiger Prawns",
			ProductType: "Shellfish", Tags: []string{"prawns", "frozen"},
			MinPrice: "189.00", Available: true,
			Variants: []models.Variant{{ID: "v2", Price: "189.00", Available: true}},
		},
		{
			ID: "3", Handle: "smoked-snoek", Title: "Smoked Snoek",
			ProductType: "Fish", Tags: []string{"snoek", "smoked", "local"},
			MinPrice: "99.00", Available: false,
			Variants: []models.Variant{{ID: "v3", Price: "99.00", Available: false}},
		},
		{
			ID: "4", Handle: "west-coast-oysters", Title: "West Coast Oysters",
			ProductType: "Shellfish", Tags: []string{"oysters", "fresh", "local"},
			MinPrice: "320.00", Available: true,
			Variants: []models.Variant{{ID: "v4", Price: "320.00", Available: true}},
		},
	}
}

func TestFilterProductsEmptyStateIsIdentity(t *testing.T) {
	products := testCatalog()

	assert.Equal(t, products, FilterProducts(products, models.FilterState{}))
	assert.Equal(t, products, FilterProducts(products, nil))
	assert.Equal(t, products, FilterProducts(products, models.FilterState{
		models.FilterFish: {},
	}))
}

func TestFilterProductsMatchesTagsAndType(t *testing.T) {
	products := testCatalog()

	// Type match, case-insensitive
	fish := FilterProducts(products, models.FilterState{
		models.FilterFish: {"fish"},
	})
	require.Len(t, fish, 2)
	assert.Equal(t, "norwegian-salmon", fish[0].Handle)
	assert.Equal(t, "smoked-snoek", fish[1].Handle)

	// Tag match
	smoked := FilterProducts(products, models.FilterState{
		models.FilterPreparation: {"smoked"},
	})
	require.Len(t, smoked, 1)
	assert.Equal(t, "smoked-snoek", smoked[0].Handle)
}

func TestFilterProductsAnyWithinCategoryAllAcross(t *testing.T) {
	products := testCatalog()

	// Any-of within one category
	either := FilterProducts(products, models.FilterState{
		models.FilterPreparation: {"smoked", "frozen"},
	})
	require.Len(t, either, 2)

	// All categories must pass
	both := FilterProducts(products, models.FilterState{
		models.FilterShellfish: {"shellfish"},
		models.FilterSource:    {"local"},
	})
	require.Len(t, both, 1)
	assert.Equal(t, "west-coast-oysters", both[0].Handle)

	// Unsatisfiable combination
	none := FilterProducts(products, models.FilterState{
		models.FilterFish:        {"fish"},
		models.FilterPreparation: {"frozen"},
	})
	assert.Empty(t, none)
}

func TestFilterProductsIdempotent(t *testing.T) {
	products := testCatalog()
	filters := models.FilterState{models.FilterFish: {"fish"}}

	once := FilterProducts(products, filters)
	twice := FilterProducts(once, filters)
	assert.Equal(t, once, twice)
}

func TestSortProductsAvailablePartitionComesFirst(t *testing.T) {
	products := testCatalog()

	for _, key := range []models.SortKey{models.SortFeatured, models.SortPriceAsc, models.SortPriceDesc} {
		sorted := SortProducts(products, key)
		require.Len(t, sorted, len(products))

		seenUnavailable := false
		for _, p := range sorted {
			if !p.Variants[0].Available {
				seenUnavailable = true
			} else {
				assert.False(t, seenUnavailable,
					"available product %s after unavailable one (key=%s)", p.Handle, key)
			}
		}
	}
}

func TestSortProductsPriceOrder(t *testing.T) {
	products := testCatalog()

	asc := SortProducts(products, models.SortPriceAsc)
	assert.Equal(t, "tiger-prawns", asc[0].Handle)
	assert.Equal(t, "norwegian-salmon", asc[1].Handle)
	assert.Equal(t, "west-coast-oysters", asc[2].Handle)
	assert.Equal(t, "smoked-snoek", asc[3].Handle) // unavailable, last regardless of price

	desc := SortProducts(products, models.SortPriceDesc)
	assert.Equal(t, "west-coast-oysters", desc[0].Handle)
	assert.Equal(t, "norwegian-salmon", desc[1].Handle)
	assert.Equal(t, "tiger-prawns", desc[2].Handle)
}

func TestSortProductsFeaturedKeepsRelativeOrder(t *testing.T) {
	products := testCatalog()

	sorted := SortProducts(products, models.SortFeatured)
	// Incoming order preserved within the available partition
	assert.Equal(t, "norwegian-salmon", sorted[0].Handle)
	assert.Equal(t, "tiger-prawns", sorted[1].Handle)
	assert.Equal(t, "west-coast-oysters", sorted[2].Handle)
	assert.Equal(t, "smoked-snoek", sorted[3].Handle)
}

func TestSortProductsDoesNotMutateInput(t *testing.T) {
	products := testCatalog()
	SortProducts(products, models.SortPriceDesc)
	assert.Equal(t, testCatalog(), products)
}

func TestSortProductsUnparseablePriceSortsAsZero(t *testing.T) {
	products := []models.StorefrontProduct{
		{ID: "1", Handle: "a", MinPrice: "50.00", Available: true},
		{ID: "2", Handle: "b", MinPrice: "not-a-price", Available: true},
	}

	asc := SortProducts(products, models.SortPriceAsc)
	assert.Equal(t, "b", asc[0].Handle)
}

func TestSortProductsVariantAvailabilityWinsOverProduct(t *testing.T) {
	products := []models.StorefrontProduct{
		{
			ID: "1", Handle: "sold-out-variant", Available: true,
			Variants: []models.Variant{{ID: "v1", Price: "10.00", Available: false}},
		},
		{ID: "2", Handle: "no-variants", Available: true, MinPrice: "20.00"},
	}

	sorted := SortProducts(products, models.SortFeatured)
	assert.Equal(t, "no-variants", sorted[0].Handle)
	assert.Equal(t, "sold-out-variant", sorted[1].Handle)
}
