package product_controller

import (
	"log"
	"net/http"

	"github.com/Caught-Online/caught-online-storefront-backend/models"
	"github.com/Caught-Online/caught-online-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// GetSellingPlans godoc
// @Summary Get recurring delivery plans for a product
// @Description Lists the subscription selling plans the commerce platform offers for a product. A product with no plans returns an empty list.
// @Tags Storefront - Products
// @Produce json
// @Param handle path string true "Product handle"
// @Success 200 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse "Commerce platform unavailable"
// @Router /store/products/{handle}/selling-plans [get]
func GetSellingPlans(c *gin.Context) {
	handle := c.Param("handle")

	plans, err := services.GetCatalogClient().SellingPlans(c.Request.Context(), handle)
	if err != nil {
		log.Printf("[store.selling-plans] ERROR handle=%s err=%v", handle, err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch selling plans"))
		return
	}

	if plans == nil {
		plans = []models.SellingPlan{}
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Selling plans fetched successfully", plans))
}
