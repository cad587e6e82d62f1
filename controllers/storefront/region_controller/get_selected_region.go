package region_controller

import (
	"log"
	"net/http"

	"github.com/Caught-Online/caught-online-storefront-backend/middleware"
	"github.com/Caught-Online/caught-online-storefront-backend/models"
	"github.com/Caught-Online/caught-online-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// GetSelectedRegion godoc
// @Summary Get the visitor's selected delivery region
// @Description Returns the currently selected region, or selected=false when the visitor has never chosen one.
// @Tags Storefront - Regions
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/regions/selected [get]
func GetSelectedRegion(c *gin.Context) {
	visitorID, _ := middleware.GetVisitorIDFromContext(c)

	region, ok, err := services.GetRegionStore().Selected(c.Request.Context(), visitorID)
	if err != nil {
		log.Printf("[store.region-selected] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load region selection"))
		return
	}
	if !ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "No delivery region selected", gin.H{
			"selected": false,
		}))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Selected delivery region fetched", gin.H{
		"selected": true,
		"region":   region,
	}))
}
