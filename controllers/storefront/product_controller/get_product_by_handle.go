package product_controller

import (
	"log"
	"net/http"

	"github.com/Caught-Online/caught-online-storefront-backend/models"
	"github.com/Caught-Online/caught-online-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// GetProductByHandle godoc
// @Summary Get a single storefront product
// @Description Fetches one product by its handle from the commerce platform.
// @Tags Storefront - Products
// @Produce json
// @Param handle path string true "Product handle"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Failure 502 {object} models.ApiResponse "Commerce platform unavailable"
// @Router /store/products/{handle} [get]
func GetProductByHandle(c *gin.Context) {
	handle := c.Param("handle")

	product, err := services.GetCatalogClient().ProductByHandle(c.Request.Context(), handle)
	if err != nil {
		log.Printf("[store.product] ERROR fetching handle=%s err=%v", handle, err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", product))
}
