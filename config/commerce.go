// ════════════════════════════════════════════════════════════
// Path: config/commerce.go
// Commerce platform (Shopify) endpoint configuration
// ════════════════════════════════════════════════════════════

package config

import (
	"fmt"
	"log"
	"os"
)

// CommerceConfig holds everything needed to reach the commerce platform:
// the GraphQL endpoints for catalog/customer data and the plain JSON cart
// endpoints used by the cart synchronizer.
type CommerceConfig struct {
	ShopDomain      string // e.g. caught-online.myshopify.com
	StorefrontToken string // Storefront API access token (catalog, customers)
	AdminToken      string // Admin API token (per-location inventory levels)
	WebhookSecret   string // shared secret for webhook HMAC verification
	APIVersion      string
}

var Commerce *CommerceConfig

func InitCommerce() {
	shopDomain := os.Getenv("SHOP_DOMAIN")
	storefrontToken := os.Getenv("STOREFRONT_API_TOKEN")
	adminToken := os.Getenv("ADMIN_API_TOKEN")

	if shopDomain == "" || storefrontToken == "" {
		log.Fatal("❌ SHOP_DOMAIN and STOREFRONT_API_TOKEN must be set in .env")
	}
	if adminToken == "" {
		log.Println("⚠️  ADMIN_API_TOKEN not set, per-location inventory lookups will fail")
	}

	Commerce = &CommerceConfig{
		ShopDomain:      shopDomain,
		StorefrontToken: storefrontToken,
		AdminToken:      adminToken,
		WebhookSecret:   os.Getenv("COMMERCE_WEBHOOK_SECRET"),
		APIVersion:      getEnv("COMMERCE_API_VERSION", "2024-10"),
	}

	log.Println("✅ Commerce platform config loaded for", shopDomain)
}

// StorefrontGraphQLURL is the endpoint for catalog/customer queries.
func (c *CommerceConfig) StorefrontGraphQLURL() string {
	return fmt.Sprintf("https://%s/api/%s/graphql.json", c.ShopDomain, c.APIVersion)
}

// AdminGraphQLURL is the endpoint for per-location inventory queries.
func (c *CommerceConfig) AdminGraphQLURL() string {
	return fmt.Sprintf("https://%s/admin/api/%s/graphql.json", c.ShopDomain, c.APIVersion)
}

// CartURL builds a JSON cart endpoint (clear.js, add.js, cart.js style).
func (c *CommerceConfig) CartURL(path string) string {
	return fmt.Sprintf("https://%s%s", c.ShopDomain, path)
}
