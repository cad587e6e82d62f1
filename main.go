// @title Caught Online Storefront API
// @version 1.0
// @description Storefront backend for the Caught Online seafood store: delivery regions, catalog, per-region inventory, cart sync and webhooks.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Caught-Online/caught-online-storefront-backend/config"
	_ "github.com/Caught-Online/caught-online-storefront-backend/docs"
	"github.com/Caught-Online/caught-online-storefront-backend/middleware"
	"github.com/Caught-Online/caught-online-storefront-backend/routes/storefront_routes"
	"github.com/Caught-Online/caught-online-storefront-backend/routes/webhook_routes"
	"github.com/Caught-Online/caught-online-storefront-backend/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	// Redis connection
	config.ConnectRedis()
	// Commerce platform endpoints
	config.InitCommerce()

	// Platform clients
	services.InitCatalogClient()
	services.InitCartAPI()
	services.InitCartSyncService(services.GetCartAPI())
	services.InitInventoryService(services.GetCatalogClient())
	services.InitRegionStore(services.RedisRegionBackend{})
	services.InitReviewsClient()
	services.InitResendClient()

	// Initialize Cloudinary service for review photos
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	if err := services.InitCloudinary(cloudName, apiKey, apiSecret); err != nil {
		log.Fatalf("Failed to initialize Cloudinary: %v", err)
	}

	// ✅ Initialize JWT Service for customer sessions
	if err := services.InitJWTService(os.Getenv("JWT_SECRET")); err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	log.Println("✅ JWT Service initialized")

	// ✅ Initialize Google OAuth
	config.InitGoogleOAuth()

	corsCfg := cors.Config{
		AllowOrigins:     []string{config.GetFrontendURL(), "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", middleware.RegionHeader},
		ExposeHeaders:    []string{middleware.RegionHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")

	// Webhooks first, no browser middleware on them
	webhook_routes.SetupWebhookRoutes(api)

	// Storefront surface: visitor cookie + region context on everything
	store := api.Group("")
	store.Use(middleware.RegionMiddleware())
	store.Use(middleware.RateLimiter(300, time.Minute))

	storefront_routes.SetupStorefrontRoutes(store)
	storefront_routes.SetupAuthRoutes(store)
	storefront_routes.SetupAnalyticsRoutes(store)
	log.Println("✅ Storefront routes registered")

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	fmt.Println("🚀 Server is running on http://localhost:8080")
	router.Run(":8080")
}
