// ════════════════════════════════════════════════════════════
// STOREFRONT CATALOG MODELS
// File: models/product.go
// ════════════════════════════════════════════════════════════

package models

// StorefrontProduct is a product as fetched from the commerce platform,
// trimmed to what the storefront renders and filters on.
type StorefrontProduct struct {
	ID          string    `json:"id"`
	Handle      string    `json:"handle"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	ProductType string    `json:"product_type"`
	Tags        []string  `json:"tags"`
	Image       string    `json:"image,omitempty"`
	MinPrice    string    `json:"min_price"` // aggregate minimum, decimal string
	Available   bool      `json:"available"`
	Variants    []Variant `json:"variants,omitempty"`
}

// Variant is a purchasable configuration of a product. Price comes back from
// the platform as a decimal string; it is parsed only when sorting.
type Variant struct {
	ID        string `json:"id"`
	Title     string `json:"title,omitempty"`
	SKU       string `json:"sku,omitempty"`
	Price     string `json:"price"`
	Available bool   `json:"available"`
}

// InventoryLevel is per-variant stock at one fulfilment location.
// Ephemeral: fetched per query, cached only briefly.
type InventoryLevel struct {
	LocationID string `json:"location_id"`
	Available  bool   `json:"available"`
	Quantity   int    `json:"quantity"`
}

// ProductInventoryStatus aggregates the per-location levels for one product.
// Available/Quantity mirror the entry for the requested region when one was
// given, or the platform-wide default otherwise.
type ProductInventoryStatus struct {
	Handle    string                    `json:"handle"`
	Available bool                      `json:"available"`
	Quantity  int                       `json:"quantity"`
	Locations map[string]InventoryLevel `json:"locations,omitempty"`
}

// SellingPlan is a recurring-delivery option attached to a product
// (weekly box, monthly box, that sort of thing).
type SellingPlan struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
