package product_controller

import (
	"strconv"

	"github.com/Caught-Online/caught-online-storefront-backend/models"
	"github.com/gin-gonic/gin"
)

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

// parseFilterState reads the repeatable per-category query params into a
// FilterState. Absent categories carry an empty (unconstraining) set.
func parseFilterState(c *gin.Context) models.FilterState {
	filters := models.FilterState{}
	for _, category := range models.FilterCategories {
		filters[category] = c.QueryArray(string(category))
	}
	return filters
}

func parseSortKey(c *gin.Context) models.SortKey {
	switch c.DefaultQuery("sortBy", string(models.SortFeatured)) {
	case string(models.SortPriceAsc):
		return models.SortPriceAsc
	case string(models.SortPriceDesc):
		return models.SortPriceDesc
	default:
		return models.SortFeatured
	}
}

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "12"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}

	return page, limit
}

// paginate slices an already filtered+sorted product list.
func paginate(products []models.StorefrontProduct, page, limit int) []models.StorefrontProduct {
	start := (page - 1) * limit
	if start >= len(products) {
		return []models.StorefrontProduct{}
	}
	end := start + limit
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}
