package cart_controller

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/Caught-Online/caught-online-storefront-backend/config"
	"github.com/Caught-Online/caught-online-storefront-backend/middleware"
	"github.com/Caught-Online/caught-online-storefront-backend/models"
	"github.com/Caught-Online/caught-online-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

const cartSnapshotTTL = 5 * time.Minute

type syncCartRequest struct {
	Items []models.CartItem `json:"items"`
}

// SyncCart godoc
// @Summary Mirror the local cart onto the platform cart
// @Description Clears the remote cart, re-adds every item in order, then reads the cart back for diagnostics. A failed clear fails the sync; failed adds are recorded in the step list but do not.
// @Tags Storefront - Cart
// @Accept json
// @Produce json
// @Param body body syncCartRequest true "Local cart items"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Malformed body"
// @Router /store/cart/sync [post]
func SyncCart(c *gin.Context) {
	var req syncCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Malformed cart payload"))
		return
	}

	report := services.GetCartSyncService().SyncCart(c.Request.Context(), req.Items)

	if report.Success && report.RemoteCart != nil {
		cacheCartSnapshot(c, report.RemoteCart)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart sync completed", report))
}

// cacheCartSnapshot keeps the last verified remote cart per visitor so a
// read during a platform outage can still show something.
func cacheCartSnapshot(c *gin.Context, cart *models.RemoteCart) {
	visitorID, ok := middleware.GetVisitorIDFromContext(c)
	if !ok {
		return
	}
	buf, err := json.Marshal(cart)
	if err != nil {
		return
	}
	key := config.RedisKey("cart-snapshot", visitorID)
	if err := config.RedisClient.Set(c.Request.Context(), key, buf, cartSnapshotTTL).Err(); err != nil {
		log.Printf("[store.cart-sync] snapshot cache write failed: %v", err)
	}
}
