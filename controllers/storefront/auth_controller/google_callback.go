// ════════════════════════════════════════════════════════════
// Path: controllers/storefront/auth_controller/google_callback.go
// Google OAuth Callback Handler
// ════════════════════════════════════════════════════════════

package auth_controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/Caught-Online/caught-online-storefront-backend/config"
	"github.com/Caught-Online/caught-online-storefront-backend/models"
	"github.com/Caught-Online/caught-online-storefront-backend/utils"
	"github.com/gin-gonic/gin"
)

// exchangeGoogleUser trades the authorization code for a verified Google
// profile. The claims come from the ID token, checked against Google's
// signing keys and our client ID, not from the userinfo endpoint. Swappable
// for tests.
var exchangeGoogleUser = func(ctx context.Context, code string) (models.GoogleUserInfo, error) {
	var user models.GoogleUserInfo

	token, err := config.GoogleOAuthConfig.Exchange(ctx, code)
	if err != nil {
		return user, fmt.Errorf("code exchange failed: %w", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return user, errors.New("no id_token in exchange response")
	}

	idToken, err := config.OIDCVerifier.Verify(ctx, rawIDToken)
	if err != nil {
		return user, fmt.Errorf("id_token verification failed: %w", err)
	}

	if err := idToken.Claims(&user); err != nil {
		return user, fmt.Errorf("failed to decode id_token claims: %w", err)
	}
	return user, nil
}

// GoogleCallback godoc
// @Summary Google OAuth callback
// @Description Handles the callback from Google OAuth. Verifies the state token, exchanges the authorization code, verifies the ID token signature and issues a session cookie. Customer identity stays with Google / the commerce platform; nothing is stored locally.
// @Tags Auth - Google OAuth
// @Produce json
// @Success 307 "Redirect to frontend after successful login"
// @Failure 400 {object} models.ApiResponse "Invalid state or missing authorization code"
// @Failure 401 {object} models.ApiResponse "Unauthorized or token exchange failure"
// @Router /auth/google/callback [get]
func GoogleCallback(c *gin.Context) {
	state := c.Query("state")
	savedState, err := c.Cookie("oauth_state")
	if err != nil || state != savedState {
		log.Printf("❌ State mismatch")
		redirectToFrontendWithError(c, "Invalid state token")
		return
	}

	// Clear state cookie
	c.SetCookie("oauth_state", "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		log.Printf("❌ No code")
		redirectToFrontendWithError(c, "No authorization code")
		return
	}

	log.Printf("🔄 Exchanging code and verifying ID token...")
	googleUser, err := exchangeGoogleUser(c.Request.Context(), code)
	if err != nil {
		log.Printf("❌ %v", err)
		redirectToFrontendWithError(c, "Failed to verify Google login")
		return
	}

	if googleUser.Sub == "" {
		log.Printf("❌ No Google ID")
		redirectToFrontendWithError(c, "Google ID not found")
		return
	}
	if !googleUser.EmailVerified {
		log.Printf("❌ Google email not verified: %s", googleUser.Email)
		redirectToFrontendWithError(c, "Google email not verified")
		return
	}

	log.Printf("✅ Got user: %s (Google ID: %s)", googleUser.Email, googleUser.Sub)

	// Google-authenticated sessions carry no platform customer token; checkout
	// links the customer on the platform side by email.
	if err := setSessionCookie(c, "google:"+googleUser.Sub, googleUser.Email, googleUser.Name, ""); err != nil {
		log.Printf("❌ Session error: %v", err)
		redirectToFrontendWithError(c, "Failed to create session")
		return
	}

	if err := utils.LogLoginEvent(c, "google:"+googleUser.Sub); err != nil {
		log.Printf("⚠️  Failed to log login event: %v", err)
	}

	log.Printf("✅ Login successful: %s", googleUser.Email)

	frontendURL := config.GetFrontendURL()
	redirectURL := fmt.Sprintf("%s/auth-popup", frontendURL)

	c.Redirect(http.StatusTemporaryRedirect, redirectURL)
}
