package cart_controller

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Caught-Online/caught-online-storefront-backend/config"
	"github.com/Caught-Online/caught-online-storefront-backend/middleware"
	"github.com/Caught-Online/caught-online-storefront-backend/models"
	"github.com/Caught-Online/caught-online-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// GetCart godoc
// @Summary Read the remote platform cart
// @Description Reads the platform cart live; if the platform is unreachable, falls back to the visitor's last verified snapshot.
// @Tags Storefront - Cart
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse "Commerce platform unavailable and no snapshot"
// @Router /store/cart [get]
func GetCart(c *gin.Context) {
	cart, err := services.GetCartAPI().ReadCart(c.Request.Context())
	if err == nil {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart fetched successfully", cart))
		return
	}

	log.Printf("[store.cart] live read failed, trying snapshot err=%v", err)

	if snapshot, ok := readCartSnapshot(c); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart fetched from snapshot", gin.H{
			"cart":     snapshot,
			"snapshot": true,
		}))
		return
	}

	c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to read cart"))
}

func readCartSnapshot(c *gin.Context) (*models.RemoteCart, bool) {
	visitorID, ok := middleware.GetVisitorIDFromContext(c)
	if !ok {
		return nil, false
	}
	key := config.RedisKey("cart-snapshot", visitorID)
	buf, err := config.RedisClient.Get(c.Request.Context(), key).Bytes()
	if err != nil {
		return nil, false
	}
	var cart models.RemoteCart
	if err := json.Unmarshal(buf, &cart); err != nil {
		return nil, false
	}
	return &cart, true
}
