// ════════════════════════════════════════════════════════════
// Path: utils/login_tracker.go
// Track customer login events
// ════════════════════════════════════════════════════════════

package utils

import (
	"encoding/json"
	"errors"
	"log"
	"strings"

	"github.com/Caught-Online/caught-online-storefront-backend/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LogLoginEvent records a customer login into the analytics events table.
// Logins land in the same stream as page views and cart events so the
// funnel can be read out of one table.
func LogLoginEvent(c *gin.Context, customerID string) error {
	if config.StorefrontDB == nil {
		return errors.New("analytics pool not initialized")
	}

	ctx := c.Request.Context()

	userAgent := c.GetHeader("User-Agent")

	props, err := json.Marshal(map[string]string{
		"customer_id": customerID,
		"ip_address":  c.ClientIP(),
		"device_type": parseDeviceType(userAgent),
		"browser":     parseBrowser(userAgent),
		"os":          parseOS(userAgent),
	})
	if err != nil {
		return err
	}

	visitorID, _ := c.Get("visitorID")
	regionID, _ := c.Get("regionID")

	query := `
		INSERT INTO analytics_events (
			id, name, visitor_id, region_id, properties, created_at
		) VALUES ($1, 'customer_login', $2, $3, $4, NOW())
	`

	_, err = config.StorefrontDB.Exec(ctx, query,
		uuid.Must(uuid.NewV7()).String(),
		toString(visitorID),
		toString(regionID),
		props,
	)
	if err != nil {
		log.Printf("❌ Failed to log login event: %v", err)
		return err
	}

	log.Printf("✅ Login event logged for customer: %s from IP: %s", customerID, c.ClientIP())
	return nil
}

func toString(v any) string {
	s, _ := v.(string)
	return s
}

// parseDeviceType determines if the request is from mobile, tablet, or desktop
func parseDeviceType(userAgent string) string {
	ua := strings.ToLower(userAgent)

	if strings.Contains(ua, "mobile") || strings.Contains(ua, "android") {
		return "mobile"
	}
	if strings.Contains(ua, "tablet") || strings.Contains(ua, "ipad") {
		return "tablet"
	}
	return "desktop"
}

// parseBrowser extracts browser name from user agent
func parseBrowser(userAgent string) string {
	ua := strings.ToLower(userAgent)

	if strings.Contains(ua, "edg") {
		return "Edge"
	}
	if strings.Contains(ua, "chrome") && !strings.Contains(ua, "edg") {
		return "Chrome"
	}
	if strings.Contains(ua, "firefox") {
		return "Firefox"
	}
	if strings.Contains(ua, "safari") && !strings.Contains(ua, "chrome") {
		return "Safari"
	}
	return "Other"
}

// parseOS extracts operating system from user agent
func parseOS(userAgent string) string {
	ua := strings.ToLower(userAgent)

	if strings.Contains(ua, "windows") {
		return "Windows"
	}
	if strings.Contains(ua, "mac os") {
		return "macOS"
	}
	if strings.Contains(ua, "linux") {
		return "Linux"
	}
	if strings.Contains(ua, "android") {
		return "Android"
	}
	if strings.Contains(ua, "iphone") || strings.Contains(ua, "ipad") {
		return "iOS"
	}
	return "Other"
}
