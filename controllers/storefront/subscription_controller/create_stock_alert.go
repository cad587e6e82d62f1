// Path: controllers/storefront/subscription_controller/create_stock_alert.go

package subscription_controller

import (
	"log"
	"net/http"

	"github.com/Caught-Online/caught-online-storefront-backend/config"
	"github.com/Caught-Online/caught-online-storefront-backend/middleware"
	"github.com/Caught-Online/caught-online-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

type stockAlertRequest struct {
	Email  string `json:"email" binding:"required,email"`
	Handle string `json:"handle" binding:"required"`
}

// CreateStockAlert godoc
// @Summary Request a back-in-stock alert
// @Description Registers an email to be notified when a product comes back in stock in the visitor's delivery region. Duplicate pending requests for the same email+handle are collapsed into one.
// @Tags Subscriptions
// @Accept json
// @Produce json
// @Param body body stockAlertRequest true "Alert request"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Missing email or handle"
// @Failure 500 {object} models.ApiResponse "Database error"
// @Router /stock-alerts [post]
func CreateStockAlert(c *gin.Context) {
	var req stockAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "A valid email and product handle are required"))
		return
	}

	regionID, _ := middleware.GetRegionIDFromContext(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Collapse duplicate pending requests
	var existing models.StockAlert
	err := config.StorefrontGorm.WithContext(ctx).
		Where("email = ? AND handle = ? AND notified_at IS NULL", req.Email, req.Handle).
		First(&existing).Error
	if err == nil {
		c.JSON(http.StatusCreated, models.SuccessResponse(c, "Stock alert already registered", existing))
		return
	}

	alert := models.StockAlert{
		Email:    req.Email,
		Handle:   req.Handle,
		RegionID: regionID,
	}
	if err := config.StorefrontGorm.WithContext(ctx).Create(&alert).Error; err != nil {
		log.Printf("[subscription.create_stock_alert] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to register stock alert"))
		return
	}

	log.Printf("✅ Stock alert registered: %s → %s (region=%s)", req.Email, req.Handle, regionID)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Stock alert registered", alert))
}
