package storefront_routes

import (
	"github.com/Caught-Online/caught-online-storefront-backend/controllers/storefront/auth_controller"
	"github.com/Caught-Online/caught-online-storefront-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up all customer authentication routes
func SetupAuthRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/login", auth_controller.Login)
		auth.POST("/logout", auth_controller.Logout)

		// Google OAuth routes
		auth.GET("/google", auth_controller.GoogleLogin)
		auth.GET("/google/callback", auth_controller.GoogleCallback)

		auth.GET("/me", middleware.AuthMiddleware(), auth_controller.GetMe)
	}
}
