package storefront_routes

import (
	"time"

	"github.com/Caught-Online/caught-online-storefront-backend/controllers/storefront/cart_controller"
	"github.com/Caught-Online/caught-online-storefront-backend/controllers/storefront/inventory_controller"
	"github.com/Caught-Online/caught-online-storefront-backend/controllers/storefront/product_controller"
	"github.com/Caught-Online/caught-online-storefront-backend/controllers/storefront/region_controller"
	"github.com/Caught-Online/caught-online-storefront-backend/controllers/storefront/review_controller"
	"github.com/Caught-Online/caught-online-storefront-backend/controllers/storefront/subscription_controller"
	"github.com/Caught-Online/caught-online-storefront-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupStorefrontRoutes registers the public storefront surface: delivery
// regions, catalog, inventory, cart sync and reviews.
func SetupStorefrontRoutes(router *gin.RouterGroup) {
	store := router.Group("/store")

	// Region routes
	regions := store.Group("/regions")
	{
		regions.GET("", region_controller.GetRegions)
		regions.POST("/resolve", region_controller.ResolveRegion)
		regions.GET("/selected", region_controller.GetSelectedRegion)
		regions.PUT("/selected", region_controller.SetRegion)
		regions.DELETE("/selected", region_controller.ResetRegion)
	}

	// Product routes
	products := store.Group("/products")
	{
		products.GET("", product_controller.GetProducts)
		products.GET("/:handle", product_controller.GetProductByHandle)
		products.GET("/:handle/selling-plans", product_controller.GetSellingPlans)
		products.GET("/:handle/reviews", review_controller.GetReviews)
	}

	// Inventory routes
	inventory := store.Group("/inventory")
	{
		inventory.GET("", inventory_controller.ListInventory)
		inventory.GET("/check", inventory_controller.CheckInventory)
	}

	// Cart routes, heavier rate limit since every sync fans out to the platform
	cart := store.Group("/cart")
	cart.Use(middleware.RateLimiter(30, time.Minute))
	{
		cart.GET("", cart_controller.GetCart)
		cart.POST("/sync", cart_controller.SyncCart)
	}

	// Review submission
	reviews := store.Group("/reviews")
	{
		reviews.POST("", review_controller.CreateReview)
		reviews.POST("/photos", review_controller.UploadReviewPhoto)
	}

	router.POST("/stock-alerts", subscription_controller.CreateStockAlert)
}
