package inventory_controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inventory_cache "github.com/Caught-Online/caught-online-storefront-backend/cache"
	"github.com/Caught-Online/caught-online-storefront-backend/models"
	"github.com/Caught-Online/caught-online-storefront-backend/services"
)

// stubCatalog serves the same in-stock level at every location.
type stubCatalog struct {
	levels []models.InventoryLevel
}

func (s *stubCatalog) Products(ctx context.Context, first int) ([]models.StorefrontProduct, error) {
	return nil, nil
}

func (s *stubCatalog) ProductByHandle(ctx context.Context, handle string) (*models.StorefrontProduct, error) {
	return nil, nil
}

func (s *stubCatalog) InventoryLevels(ctx context.Context, handle string) ([]models.InventoryLevel, error) {
	return s.levels, nil
}

func (s *stubCatalog) SellingPlans(ctx context.Context, handle string) ([]models.SellingPlan, error) {
	return nil, nil
}

func (s *stubCatalog) CustomerLogin(ctx context.Context, email, password string) (*models.CustomerToken, *models.Customer, error) {
	return nil, nil, nil
}

func checkRouter(regionInContext string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if regionInContext != "" {
		r.Use(func(c *gin.Context) {
			c.Set("regionID", regionInContext)
			c.Next()
		})
	}
	r.GET("/store/inventory/check", CheckInventory)
	return r
}

func TestCheckInventoryMissingRegionIsClientError(t *testing.T) {
	inventory_cache.Invalidate()
	services.InitInventoryService(&stubCatalog{
		levels: []models.InventoryLevel{
			{LocationID: "gid://shopify/Location/61019553862", Available: true, Quantity: 12},
		},
	})

	// In stock everywhere, but no region in the query and none selected:
	// the handler must refuse, not answer {available:false}.
	r := checkRouter("")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/store/inventory/check?handle=norwegian-salmon", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error bool `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Error)
}

func TestCheckInventoryMissingHandle(t *testing.T) {
	r := checkRouter("cape-town")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/store/inventory/check", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckInventoryRegionFromQuery(t *testing.T) {
	inventory_cache.Invalidate()
	services.InitInventoryService(&stubCatalog{
		levels: []models.InventoryLevel{
			{LocationID: "gid://shopify/Location/61019553862", Available: true, Quantity: 7},
		},
	})

	r := checkRouter("")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/store/inventory/check?handle=norwegian-salmon&region=cape-town", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data models.ProductInventoryStatus `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.Available)
	assert.Equal(t, 7, resp.Data.Quantity)
}

func TestCheckInventoryRegionFromSelection(t *testing.T) {
	inventory_cache.Invalidate()
	services.InitInventoryService(&stubCatalog{
		levels: []models.InventoryLevel{
			{LocationID: "gid://shopify/Location/61019553862", Available: true, Quantity: 3},
		},
	})

	// No region in the query, but the visitor has a selection in context.
	r := checkRouter("cape-town")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/store/inventory/check?handle=norwegian-salmon", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data models.ProductInventoryStatus `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.Available)
}
