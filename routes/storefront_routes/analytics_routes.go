package storefront_routes

import (
	"time"

	"github.com/Caught-Online/caught-online-storefront-backend/controllers/storefront/analytics_controller"
	"github.com/Caught-Online/caught-online-storefront-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAnalyticsRoutes sets up the event tracking routes
func SetupAnalyticsRoutes(router *gin.RouterGroup) {
	analytics := router.Group("/analytics")
	analytics.Use(middleware.RateLimiter(120, time.Minute))
	{
		analytics.POST("/events", analytics_controller.TrackEvent)
		analytics.GET("/events/stats", analytics_controller.GetEventStats)
	}
}
