package main

import (
	"fmt"
	"log"

	"github.com/Caught-Online/caught-online-storefront-backend/config"
	"github.com/Caught-Online/caught-online-storefront-backend/models"
	"github.com/joho/godotenv"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main migrates the storefront's own tables. Catalog, customers and carts
// live on the commerce platform; only events, webhook receipts and stock
// alerts are stored locally.
// Usage: go run cmd/migrate/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("CAUGHT ONLINE STOREFRONT - Schema Migrator")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	// Initialize database connections
	config.InitDB()
	defer config.CloseDB()
	log.Println("✓ Connected to database")

	if err := config.StorefrontGorm.AutoMigrate(
		&models.AnalyticsEvent{},
		&models.WebhookReceipt{},
		&models.StockAlert{},
	); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Schema migrated successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("Tables: analytics_events, webhook_receipts, stock_alerts")
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Register platform webhooks pointing at POST /api/v1/webhooks/commerce")
	fmt.Println()
}
