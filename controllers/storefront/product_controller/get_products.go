package product_controller

import (
	"log"
	"net/http"

	"github.com/Caught-Online/caught-online-storefront-backend/models"
	"github.com/Caught-Online/caught-online-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// GetProducts godoc
// @Summary Get storefront products with filters
// @Description Fetches the product list from the commerce platform, then applies tag/type filtering, in-stock-first sorting, and pagination client-side.
// @Tags Storefront - Products
// @Produce json
// @Param fish query []string false "Fish filter values (repeatable)"
// @Param shellfish query []string false "Shellfish filter values (repeatable)"
// @Param preparation query []string false "Preparation filter values (repeatable)"
// @Param source query []string false "Source filter values (repeatable)"
// @Param sortBy query string false "Sort key (featured | price-asc | price-desc)" default(featured)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.ApiResponse "Products fetched successfully"
// @Failure 502 {object} models.ApiResponse "Commerce platform unavailable"
// @Router /store/products [get]
func GetProducts(c *gin.Context) {
	page, limit := parsePagination(c)
	filters := parseFilterState(c)
	sortKey := parseSortKey(c)

	products, err := services.GetCatalogClient().Products(c.Request.Context(), 100)
	if err != nil {
		log.Printf("[store.products] ERROR fetching products err=%v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	filtered := services.FilterProducts(products, filters)
	sorted := services.SortProducts(filtered, sortKey)

	totalCount := len(sorted)
	totalPages := (totalCount + limit - 1) / limit

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Products fetched successfully",
		paginate(sorted, page, limit),
		&models.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      totalCount,
			TotalPages: totalPages,
		},
	))
}
