package region_controller

import (
	"log"
	"net/http"

	"github.com/Caught-Online/caught-online-storefront-backend/middleware"
	"github.com/Caught-Online/caught-online-storefront-backend/models"
	"github.com/Caught-Online/caught-online-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// ResetRegion godoc
// @Summary Clear the visitor's delivery region
// @Description Explicitly resets the selection back to "none selected".
// @Tags Storefront - Regions
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/regions/selected [delete]
func ResetRegion(c *gin.Context) {
	visitorID, _ := middleware.GetVisitorIDFromContext(c)

	if err := services.GetRegionStore().ResetRegion(c.Request.Context(), visitorID); err != nil {
		log.Printf("[store.region-reset] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to clear region selection"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Delivery region cleared", nil))
}
