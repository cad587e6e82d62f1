package review_controller

import (
	"log"
	"net/http"

	"github.com/Caught-Online/caught-online-storefront-backend/models"
	"github.com/Caught-Online/caught-online-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// CreateReview godoc
// @Summary Submit a product review
// @Description Validates and forwards a customer review to the reviews platform.
// @Tags Storefront - Reviews
// @Accept json
// @Produce json
// @Param body body models.ReviewSubmission true "Review"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Missing or invalid fields"
// @Failure 502 {object} models.ApiResponse "Reviews platform unavailable"
// @Router /store/reviews [post]
func CreateReview(c *gin.Context) {
	var submission models.ReviewSubmission
	if err := c.ShouldBindJSON(&submission); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid review payload"))
		return
	}

	if err := services.GetReviewsClient().SubmitReview(c.Request.Context(), submission); err != nil {
		log.Printf("[store.reviews-create] ERROR handle=%s err=%v", submission.Handle, err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to submit review"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Review submitted successfully", nil))
}
