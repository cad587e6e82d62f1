// Path: controllers/storefront/analytics_controller/get_event_stats.go

package analytics_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/Caught-Online/caught-online-storefront-backend/config"
	"github.com/Caught-Online/caught-online-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// GetEventStats godoc
// @Summary Aggregate event counts
// @Description Returns per-day counts of each event name over the last N days (default 7, max 90). Uses the raw pgx pool for the aggregate; GORM handles only the model-backed writes.
// @Tags Analytics
// @Produce json
// @Param days query int false "Window size in days" default(7)
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse "Database error"
// @Router /analytics/events/stats [get]
func GetEventStats(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil || days < 1 {
		days = 7
	}
	if days > 90 {
		days = 90
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	rows, err := config.StorefrontDB.Query(ctx, `
		SELECT name, to_char(date_trunc('day', created_at), 'YYYY-MM-DD') AS day, COUNT(*) AS count
		FROM analytics_events
		WHERE created_at >= NOW() - ($1 || ' days')::interval
		GROUP BY name, day
		ORDER BY day DESC, count DESC`, strconv.Itoa(days))
	if err != nil {
		log.Printf("[analytics.get_event_stats] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to aggregate events"))
		return
	}
	defer rows.Close()

	stats := []models.EventStat{}
	for rows.Next() {
		var s models.EventStat
		if err := rows.Scan(&s.Name, &s.Day, &s.Count); err != nil {
			log.Printf("[analytics.get_event_stats] ERROR scan err=%v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to read event stats"))
			return
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		log.Printf("[analytics.get_event_stats] ERROR rows err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to read event stats"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Event stats computed", gin.H{
		"days":  days,
		"stats": stats,
	}))
}
