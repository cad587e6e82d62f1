// Path: controllers/storefront/analytics_controller/track_event.go

package analytics_controller

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Caught-Online/caught-online-storefront-backend/config"
	"github.com/Caught-Online/caught-online-storefront-backend/middleware"
	"github.com/Caught-Online/caught-online-storefront-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

type trackEventRequest struct {
	Name       string         `json:"name" binding:"required"`
	Properties map[string]any `json:"properties"`
}

// TrackEvent godoc
// @Summary Record a storefront event
// @Description Records one server-side marketing event (page view, add to cart, region selected, checkout started). Visitor and region are taken from the request context, not the body.
// @Tags Analytics
// @Accept json
// @Produce json
// @Param body body trackEventRequest true "Event"
// @Success 202 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Missing event name"
// @Failure 500 {object} models.ApiResponse "Database error"
// @Router /analytics/events [post]
func TrackEvent(c *gin.Context) {
	var req trackEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Event name is required"))
		return
	}

	visitorID, _ := middleware.GetVisitorIDFromContext(c)
	regionID, _ := middleware.GetRegionIDFromContext(c)

	event := models.AnalyticsEvent{
		Name:      req.Name,
		VisitorID: visitorID,
		RegionID:  regionID,
	}
	if len(req.Properties) > 0 {
		props, err := json.Marshal(req.Properties)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Event properties must be JSON-serializable"))
			return
		}
		event.Properties = datatypes.JSON(props)
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.StorefrontGorm.WithContext(ctx).Create(&event).Error; err != nil {
		log.Printf("[analytics.track_event] ERROR name=%s err=%v", req.Name, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to record event"))
		return
	}

	c.JSON(http.StatusAccepted, models.SuccessResponse(c, "Event recorded", gin.H{"id": event.ID}))
}
