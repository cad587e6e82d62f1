package auth_controller

import (
	"log"
	"net/http"

	"github.com/Caught-Online/caught-online-storefront-backend/models"
	"github.com/Caught-Online/caught-online-storefront-backend/services"
	"github.com/Caught-Online/caught-online-storefront-backend/utils"
	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Customer login
// @Description Exchanges credentials for a commerce platform customer token and issues a first-party session cookie. Customer identity lives on the platform; nothing is stored locally.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body loginRequest true "Credentials"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Missing credentials"
// @Failure 401 {object} models.ApiResponse "Invalid credentials"
// @Failure 502 {object} models.ApiResponse "Commerce platform unavailable"
// @Router /auth/login [post]
func Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "email and password are required"))
		return
	}

	token, customer, err := services.GetCatalogClient().CustomerLogin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		log.Printf("[auth.login] ERROR err=%v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Login temporarily unavailable"))
		return
	}
	if token == nil || customer == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
		return
	}

	name := customer.FirstName
	if customer.LastName != "" {
		name += " " + customer.LastName
	}
	if err := setSessionCookie(c, customer.ID, customer.Email, name, token.AccessToken); err != nil {
		log.Printf("[auth.login] ERROR issuing session err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create session"))
		return
	}

	if err := utils.LogLoginEvent(c, customer.ID); err != nil {
		log.Printf("⚠️  Failed to log login event: %v", err)
	}

	log.Printf("✅ Login successful: %s", customer.Email)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged in successfully", customer))
}
