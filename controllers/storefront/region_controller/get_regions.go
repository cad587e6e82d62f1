package region_controller

import (
	"net/http"

	"github.com/Caught-Online/caught-online-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// GetRegions godoc
// @Summary List delivery regions
// @Description Returns the static delivery region table with display names, delivery cadence, and postal code ranges.
// @Tags Storefront - Regions
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /store/regions [get]
func GetRegions(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Delivery regions fetched successfully", models.DeliveryRegions))
}
