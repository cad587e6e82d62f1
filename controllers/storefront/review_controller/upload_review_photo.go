package review_controller

import (
	"log"
	"net/http"

	"github.com/Caught-Online/caught-online-storefront-backend/models"
	"github.com/Caught-Online/caught-online-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// UploadReviewPhoto godoc
// @Summary Upload a review photo
// @Description Stores a customer photo for an upcoming review and returns its URL.
// @Tags Storefront - Reviews
// @Accept multipart/form-data
// @Produce json
// @Param photo formData file true "Photo file"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "No file provided"
// @Failure 500 {object} models.ApiResponse "Upload failed"
// @Router /store/reviews/photos [post]
func UploadReviewPhoto(c *gin.Context) {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "photo file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Could not read uploaded file"))
		return
	}
	defer file.Close()

	url, err := services.GetCloudinaryService().UploadReviewPhoto(c.Request.Context(), file, "")
	if err != nil {
		log.Printf("[store.review-photo] ERROR upload err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload photo"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Photo uploaded successfully", gin.H{
		"url": url,
	}))
}
