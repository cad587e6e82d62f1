package services

import (
	"sort"
	"strconv"
	"strings"

	"github.com/Caught-Online/caught-online-storefront-backend/models"
)

// ─────────────────────────────────────────────────────────────
// Product filtering and sorting. Pure functions: the product
// list already came from the platform, this only arranges it.
// ─────────────────────────────────────────────────────────────

// FilterProducts keeps the products that satisfy every filter category with
// at least one selected value. Within a category a product passes if its
// tag list or product type matches any selected value (case-insensitive,
// substring or exact). Categories with no selections impose no constraint,
// so an empty FilterState returns the input unchanged.
func FilterProducts(products []models.StorefrontProduct, filters models.FilterState) []models.StorefrontProduct {
	if filters.Empty() {
		return products
	}

	out := make([]models.StorefrontProduct, 0, len(products))
	for _, p := range products {
		if productMatches(p, filters) {
			out = append(out, p)
		}
	}
	return out
}

func productMatches(p models.StorefrontProduct, filters models.FilterState) bool {
	for _, values := range filters {
		if len(values) == 0 {
			continue
		}
		if !matchesAnyValue(p, values) {
			return false
		}
	}
	return true
}

func matchesAnyValue(p models.StorefrontProduct, values []string) bool {
	productType := strings.ToLower(p.ProductType)
	for _, v := range values {
		needle := strings.ToLower(strings.TrimSpace(v))
		if needle == "" {
			continue
		}
		if strings.Contains(productType, needle) {
			return true
		}
		for _, tag := range p.Tags {
			if strings.Contains(strings.ToLower(tag), needle) {
				return true
			}
		}
	}
	return false
}

// SortProducts partitions products into available-first (variant-level
// availability when a variant exists, product-level otherwise), orders each
// partition by price for the price keys, and returns available followed by
// unavailable. SortFeatured keeps the incoming order within each partition.
// The input slice is not mutated.
func SortProducts(products []models.StorefrontProduct, key models.SortKey) []models.StorefrontProduct {
	available := make([]models.StorefrontProduct, 0, len(products))
	unavailable := make([]models.StorefrontProduct, 0)

	for _, p := range products {
		if isAvailable(p) {
			available = append(available, p)
		} else {
			unavailable = append(unavailable, p)
		}
	}

	switch key {
	case models.SortPriceAsc:
		sortByPrice(available, true)
		sortByPrice(unavailable, true)
	case models.SortPriceDesc:
		sortByPrice(available, false)
		sortByPrice(unavailable, false)
	}
	// SortFeatured (and anything unrecognized): partition only.

	return append(available, unavailable...)
}

func isAvailable(p models.StorefrontProduct) bool {
	if len(p.Variants) > 0 {
		return p.Variants[0].Available
	}
	return p.Available
}

func sortByPrice(products []models.StorefrontProduct, asc bool) {
	sort.SliceStable(products, func(i, j int) bool {
		pi, pj := effectivePrice(products[i]), effectivePrice(products[j])
		if asc {
			return pi < pj
		}
		return pi > pj
	})
}

// effectivePrice is the first variant's price, falling back to the aggregate
// minimum. Unparseable prices sort as zero.
func effectivePrice(p models.StorefrontProduct) float64 {
	raw := p.MinPrice
	if len(p.Variants) > 0 && p.Variants[0].Price != "" {
		raw = p.Variants[0].Price
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return price
}
