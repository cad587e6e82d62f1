// Path: controllers/storefront/auth_controller/logout.go

package auth_controller

import (
	"log"
	"net/http"

	"github.com/Caught-Online/caught-online-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// Logout godoc
// @Summary Customer logout
// @Description Clears the session cookie. The platform customer token inside the session simply expires server-side.
// @Tags Auth
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Router /auth/logout [post]
func Logout(c *gin.Context) {
	clearSessionCookie(c)
	log.Println("✅ Session cleared")
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out successfully", nil))
}
