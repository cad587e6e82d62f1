// models/filters.go
package models

// FilterCategory is one of the fixed storefront filter groups.
type FilterCategory string

const (
	FilterFish        FilterCategory = "fish"
	FilterShellfish   FilterCategory = "shellfish"
	FilterPreparation FilterCategory = "preparation"
	FilterSource      FilterCategory = "source"
)

// FilterCategories lists the fixed set in display order.
var FilterCategories = []FilterCategory{
	FilterFish,
	FilterShellfish,
	FilterPreparation,
	FilterSource,
}

// FilterState maps each category to its selected values. An empty (or
// absent) set for a category means no constraint from that category.
type FilterState map[FilterCategory][]string

// Empty reports whether no category has any selection.
func (f FilterState) Empty() bool {
	for _, values := range f {
		if len(values) > 0 {
			return false
		}
	}
	return true
}

// SortKey selects the storefront product ordering.
type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
)

// FilterMetadata describes the filter options the storefront can render.
type FilterMetadata struct {
	Categories map[FilterCategory][]FilterOption `json:"categories"`
	SortKeys   []SortKey                         `json:"sort_keys"`
}

// FilterOption is a single selectable filter value.
type FilterOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Count int    `json:"count"`
}
