package webhook_routes

import (
	"github.com/Caught-Online/caught-online-storefront-backend/controllers/webhooks/webhook_controller"
	"github.com/gin-gonic/gin"
)

// SetupWebhookRoutes registers the commerce platform webhook endpoint.
// No rate limiting and no region middleware here: deliveries come from the
// platform, not from browsers, and are authenticated by signature.
func SetupWebhookRoutes(router *gin.RouterGroup) {
	webhooks := router.Group("/webhooks")
	{
		webhooks.POST("/commerce", webhook_controller.ReceiveWebhook)
	}
}
