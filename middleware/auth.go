package middleware

import (
	"net/http"
	"strings"

	"github.com/Caught-Online/caught-online-storefront-backend/models"
	"github.com/Caught-Online/caught-online-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the session JWT from cookie or Authorization header
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		// Try to get token from cookie first
		cookieToken, err := c.Cookie("session_token")
		if err == nil && cookieToken != "" {
			token = cookieToken
		} else {
			// Fallback to Authorization header
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authorization header required"))
				c.Abort()
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid authorization header format"))
				c.Abort()
				return
			}

			token = parts[1]
		}

		claims, err := services.VerifySessionJWT(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid or expired token"))
			c.Abort()
			return
		}

		// Set customer info in context
		c.Set("customerID", claims.CustomerID)
		c.Set("customerEmail", claims.Email)
		c.Set("customerName", claims.Name)
		c.Set("platformToken", claims.PlatformToken)

		c.Next()
	}
}

func GetCustomerIDFromContext(c *gin.Context) (string, bool) {
	customerID, exists := c.Get("customerID")
	if !exists {
		return "", false
	}
	return customerID.(string), true
}

func GetCustomerEmailFromContext(c *gin.Context) (string, bool) {
	email, exists := c.Get("customerEmail")
	if !exists {
		return "", false
	}
	return email.(string), true
}
