package inventory_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/Caught-Online/caught-online-storefront-backend/middleware"
	"github.com/Caught-Online/caught-online-storefront-backend/models"
	"github.com/Caught-Online/caught-online-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// CheckInventory godoc
// @Summary Check product availability for a delivery region
// @Description Resolves a product's stock for a region. Unknown product, variant, or location is {available:false, quantity:0}, not an error; only a platform failure is reported as one, so the UI can tell "out of stock" from "couldn't check".
// @Tags Storefront - Inventory
// @Produce json
// @Param handle query string true "Product handle"
// @Param region query string false "Region ID or platform location ID (defaults to the visitor's selected region)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Missing handle, or no region given and none selected"
// @Failure 502 {object} models.ApiResponse "Commerce platform unavailable"
// @Router /store/inventory/check [get]
func CheckInventory(c *gin.Context) {
	handle := c.Query("handle")
	if handle == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "handle is required"))
		return
	}

	region := c.Query("region")
	if region == "" {
		// Fall back to the visitor's persisted selection.
		region, _ = middleware.GetRegionIDFromContext(c)
	}
	if region == "" {
		// No region anywhere: answering {available:false} here would report
		// a validation problem as an out-of-stock product.
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "region is required when no delivery region is selected"))
		return
	}

	status, err := services.GetInventoryService().CheckInventory(c.Request.Context(), handle, region)
	if err != nil {
		if errors.Is(err, services.ErrSuperseded) {
			// A newer check for this handle is already in flight; this
			// response would be stale, so drop it.
			c.JSON(http.StatusOK, models.SuccessResponse(c, "Inventory check superseded", nil))
			return
		}
		log.Printf("[store.inventory-check] ERROR handle=%s region=%s err=%v", handle, region, err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to check inventory"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Inventory checked successfully", status))
}
