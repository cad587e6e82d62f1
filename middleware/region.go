package middleware

import (
	"log"

	"github.com/Caught-Online/caught-online-storefront-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// VisitorCookie identifies the browser across sessions; the region
	// selection is keyed on it server-side.
	VisitorCookie = "visitor_id"

	// RegionHeader annotates responses (and downstream requests) with the
	// visitor's delivery region.
	RegionHeader = "X-Delivery-Region"

	visitorCookieMaxAge = 365 * 24 * 60 * 60
)

// RegionMiddleware assigns a visitor ID on first contact and loads the
// visitor's selected delivery region into the request context. It only ever
// reads the region; writes go through the region controller.
func RegionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		visitorID, err := c.Cookie(VisitorCookie)
		if err != nil || visitorID == "" {
			visitorID = uuid.New().String()
			c.SetCookie(VisitorCookie, visitorID, visitorCookieMaxAge, "/", "", false, true)
		}
		c.Set("visitorID", visitorID)

		region, ok, err := services.GetRegionStore().Selected(c.Request.Context(), visitorID)
		if err != nil {
			// A persistence hiccup must not take the storefront down; the
			// visitor just browses without a region until the next request.
			log.Printf("[region] failed to load selection for %s: %v", visitorID, err)
			c.Next()
			return
		}
		if ok {
			c.Set("regionID", region.ID)
			c.Header(RegionHeader, region.ID)
		}

		c.Next()
	}
}

// GetVisitorIDFromContext returns the visitor ID set by RegionMiddleware.
func GetVisitorIDFromContext(c *gin.Context) (string, bool) {
	visitorID, exists := c.Get("visitorID")
	if !exists {
		return "", false
	}
	return visitorID.(string), true
}

// GetRegionIDFromContext returns the selected region, if any.
func GetRegionIDFromContext(c *gin.Context) (string, bool) {
	regionID, exists := c.Get("regionID")
	if !exists {
		return "", false
	}
	return regionID.(string), true
}
