package inventory_controller

import (
	"log"
	"net/http"

	"github.com/Caught-Online/caught-online-storefront-backend/middleware"
	"github.com/Caught-Online/caught-online-storefront-backend/models"
	"github.com/Caught-Online/caught-online-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// ListInventory godoc
// @Summary Store-wide inventory breakdown
// @Description Returns the per-product, per-location availability breakdown, with the top-level pair reflecting the visitor's region when one is selected.
// @Tags Storefront - Inventory
// @Produce json
// @Param region query string false "Region ID or platform location ID"
// @Success 200 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse "Commerce platform unavailable"
// @Router /store/inventory [get]
func ListInventory(c *gin.Context) {
	region := c.Query("region")
	if region == "" {
		region, _ = middleware.GetRegionIDFromContext(c)
	}

	statuses, err := services.GetInventoryService().ListInventory(c.Request.Context(), region)
	if err != nil {
		log.Printf("[store.inventory-list] ERROR region=%s err=%v", region, err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to list inventory"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Inventory listed successfully", statuses))
}
