package review_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/Caught-Online/caught-online-storefront-backend/models"
	"github.com/Caught-Online/caught-online-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// GetReviews godoc
// @Summary List reviews for a product
// @Description Proxies the third-party reviews platform for a product handle.
// @Tags Storefront - Reviews
// @Produce json
// @Param handle path string true "Product handle"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.ApiResponse
// @Failure 502 {object} models.ApiResponse "Reviews platform unavailable"
// @Router /store/products/{handle}/reviews [get]
func GetReviews(c *gin.Context) {
	handle := c.Param("handle")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}

	reviews, total, err := services.GetReviewsClient().ListReviews(c.Request.Context(), handle, page, limit)
	if err != nil {
		log.Printf("[store.reviews] ERROR handle=%s err=%v", handle, err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to fetch reviews"))
		return
	}

	totalPages := (total + limit - 1) / limit
	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Reviews fetched successfully",
		reviews,
		&models.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
		},
	))
}
