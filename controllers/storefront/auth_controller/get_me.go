// Path: controllers/storefront/auth_controller/get_me.go

package auth_controller

import (
	"net/http"

	"github.com/Caught-Online/caught-online-storefront-backend/middleware"
	"github.com/Caught-Online/caught-online-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// GetMe godoc
// @Summary Current customer
// @Description Returns the customer identity carried by the session cookie.
// @Tags Auth
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse "Not logged in"
// @Router /auth/me [get]
// @Security ApiKeyAuth
func GetMe(c *gin.Context) {
	customerID, ok := middleware.GetCustomerIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not logged in"))
		return
	}

	email, _ := middleware.GetCustomerEmailFromContext(c)
	name, _ := c.Get("customerName")

	customer := models.Customer{
		ID:    customerID,
		Email: email,
	}
	if n, ok := name.(string); ok {
		customer.FirstName = n
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Session active", customer))
}
