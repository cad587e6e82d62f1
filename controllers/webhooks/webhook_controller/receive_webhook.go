// ════════════════════════════════════════════════════════════
// Path: controllers/webhooks/webhook_controller/receive_webhook.go
// Commerce Platform Webhook Receiver
// ════════════════════════════════════════════════════════════

package webhook_controller

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	inventory_cache "github.com/Caught-Online/caught-online-storefront-backend/cache"
	"github.com/Caught-Online/caught-online-storefront-backend/config"
	"github.com/Caught-Online/caught-online-storefront-backend/models"
	"github.com/Caught-Online/caught-online-storefront-backend/services"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

const signatureHeader = "X-Shopify-Hmac-Sha256"
const topicHeader = "X-Shopify-Topic"

// ReceiveWebhook godoc
// @Summary Receive a commerce platform webhook
// @Description Verifies the HMAC signature over the raw body, records the delivery, and reacts to inventory-affecting topics: product updates invalidate the inventory cache for the handle and fire pending back-in-stock alerts; inventory level updates flush the cache. Unrecognized topics are accepted as a no-op.
// @Tags Webhooks
// @Accept json
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse "Signature mismatch"
// @Router /webhooks/commerce [post]
func ReceiveWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Failed to read request body"))
		return
	}

	signature := c.GetHeader(signatureHeader)
	if !VerifySignature(config.Commerce.WebhookSecret, body, signature) {
		log.Printf("❌ Webhook signature mismatch (topic=%s)", c.GetHeader(topicHeader))
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid webhook signature"))
		return
	}

	topic := c.GetHeader(topicHeader)
	handled := false

	switch topic {
	case "products/update", "products/create":
		var payload struct {
			Handle string `json:"handle"`
		}
		if err := json.Unmarshal(body, &payload); err == nil && payload.Handle != "" {
			inventory_cache.InvalidateHandle(payload.Handle)
			log.Printf("♻️  Inventory cache invalidated for %s (topic=%s)", payload.Handle, topic)
			notifyPendingAlerts(c, payload.Handle)
			handled = true
		}
	case "inventory_levels/update":
		// No handle in the payload, flush everything
		inventory_cache.Invalidate()
		log.Printf("♻️  Inventory cache flushed (topic=%s)", topic)
		handled = true
	default:
		log.Printf("⚠️  Unrecognized webhook topic: %s (accepted, no-op)", topic)
	}

	recordReceipt(topic, body, handled)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Webhook received", gin.H{
		"topic":   topic,
		"handled": handled,
	}))
}

// recordReceipt persists every verified delivery so replays and gaps can be
// diagnosed. A failed insert never fails the webhook response.
func recordReceipt(topic string, body []byte, handled bool) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	receipt := models.WebhookReceipt{
		Topic:   topic,
		Payload: datatypes.JSON(body),
		Handled: handled,
	}
	if err := config.StorefrontGorm.WithContext(ctx).Create(&receipt).Error; err != nil {
		log.Printf("[webhooks.receive] ERROR recording receipt topic=%s err=%v", topic, err)
	}
}

// notifyPendingAlerts fires back-in-stock emails for a product that just
// changed, if it is actually available again. Alerts that fail to send stay
// pending and get another chance on the next webhook for the same handle.
func notifyPendingAlerts(c *gin.Context, handle string) {
	product, err := services.GetCatalogClient().ProductByHandle(c.Request.Context(), handle)
	if err != nil || product == nil || !product.Available {
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var pending []models.StockAlert
	if err := config.StorefrontGorm.WithContext(ctx).
		Where("handle = ? AND notified_at IS NULL", handle).
		Find(&pending).Error; err != nil {
		log.Printf("[webhooks.receive] ERROR loading stock alerts handle=%s err=%v", handle, err)
		return
	}
	if len(pending) == 0 {
		return
	}

	resend := services.GetResendClient()
	if resend == nil {
		log.Printf("⚠️  Resend client not configured, %d stock alert(s) stay pending for %s", len(pending), handle)
		return
	}

	sent := resend.NotifyStockAlerts(pending, *product, config.GetFrontendURL())
	if len(sent) == 0 {
		return
	}

	now := time.Now().UTC()
	ids := make([]interface{}, 0, len(sent))
	for _, a := range sent {
		ids = append(ids, a.ID)
	}
	if err := config.StorefrontGorm.WithContext(ctx).
		Model(&models.StockAlert{}).
		Where("id IN ?", ids).
		Update("notified_at", now).Error; err != nil {
		log.Printf("[webhooks.receive] ERROR marking stock alerts handle=%s err=%v", handle, err)
	}

	log.Printf("✅ Back-in-stock alerts sent: %d for %s", len(sent), handle)
}
