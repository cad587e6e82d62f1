package region_controller

import (
	"net/http"

	"github.com/Caught-Online/caught-online-storefront-backend/models"
	"github.com/Caught-Online/caught-online-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

type resolveRegionRequest struct {
	PostalCode string `json:"postal_code" binding:"required"`
}

// ResolveRegion godoc
// @Summary Resolve a postal code to a delivery region
// @Description Matches a postal code against the delivery region ranges. A code outside every range is a valid "not available" answer, not an error.
// @Tags Storefront - Regions
// @Accept json
// @Produce json
// @Param body body resolveRegionRequest true "Postal code"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Missing postal code"
// @Router /store/regions/resolve [post]
func ResolveRegion(c *gin.Context) {
	var req resolveRegionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "postal_code is required"))
		return
	}

	regionID, ok := services.ResolveRegion(req.PostalCode)
	if !ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Delivery not available for this postal code", gin.H{
			"available": false,
		}))
		return
	}

	region, _ := models.RegionByID(regionID)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Delivery region resolved", gin.H{
		"available": true,
		"region":    region,
	}))
}
