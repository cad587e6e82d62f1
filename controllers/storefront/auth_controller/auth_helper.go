package auth_controller

import (
	"fmt"
	"net/http"
	"os"

	"github.com/Caught-Online/caught-online-storefront-backend/config"
	"github.com/Caught-Online/caught-online-storefront-backend/services"
	"github.com/gin-gonic/gin"
)

const sessionCookieMaxAge = 7 * 24 * 60 * 60

// setSessionCookie issues the HTTP-only session cookie carrying the JWT.
func setSessionCookie(c *gin.Context, customerID, email, name, platformToken string) error {
	token, err := services.GenerateSessionJWT(customerID, email, name, platformToken)
	if err != nil {
		return err
	}

	isProd := os.Getenv("ENV") == "production"
	c.SetCookie(
		"session_token",
		token,
		sessionCookieMaxAge,
		"/",
		"",
		isProd,
		true, // httpOnly
	)
	return nil
}

func clearSessionCookie(c *gin.Context) {
	isProd := os.Getenv("ENV") == "production"
	// must match name, path, domain, secure, httpOnly used when setting
	c.SetCookie(
		"session_token",
		"",
		-1, // MaxAge < 0 -> delete
		"/",
		"",
		isProd,
		true,
	)
}

func redirectToFrontendWithError(c *gin.Context, errorMsg string) {
	frontendURL := config.GetFrontendURL()
	redirectURL := fmt.Sprintf("%s/auth/error?message=%s", frontendURL, errorMsg)
	c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}
