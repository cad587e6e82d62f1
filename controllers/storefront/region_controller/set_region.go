package region_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Caught-Online/caught-online-storefront-backend/middleware"
	"github.com/Caught-Online/caught-online-storefront-backend/models"
	"github.com/Caught-Online/caught-online-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

type setRegionRequest struct {
	RegionID string `json:"region_id" binding:"required"`
}

// SetRegion godoc
// @Summary Select a delivery region
// @Description Stores the visitor's delivery region. This is the only path that mutates the selection.
// @Tags Storefront - Regions
// @Accept json
// @Produce json
// @Param body body setRegionRequest true "Region ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Unknown region"
// @Failure 500 {object} models.ApiResponse
// @Router /store/regions/selected [put]
func SetRegion(c *gin.Context) {
	var req setRegionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "region_id is required"))
		return
	}

	visitorID, _ := middleware.GetVisitorIDFromContext(c)

	if err := services.GetRegionStore().SetRegion(c.Request.Context(), visitorID, req.RegionID); err != nil {
		if errors.Is(err, services.ErrUnknownRegion) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown delivery region"))
			return
		}
		log.Printf("[store.region-set] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save region selection"))
		return
	}

	region, _ := models.RegionByID(req.RegionID)
	c.Header(middleware.RegionHeader, region.ID)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Delivery region selected", region))
}
