package region_controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/store/regions", GetRegions)
	r.POST("/store/regions/resolve", ResolveRegion)
	return r
}

func TestGetRegionsReturnsStaticTable(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/store/regions", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []struct {
			ID      string `json:"id"`
			Name    string `json:"name"`
			Cadence string `json:"cadence"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 4)
	assert.Equal(t, "cape-town", resp.Data[0].ID)
	assert.NotEmpty(t, resp.Data[0].Cadence)
}

func TestResolveRegionCovered(t *testing.T) {
	r := testRouter()

	body, _ := json.Marshal(gin.H{"postal_code": "8001"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/store/regions/resolve", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Available bool `json:"available"`
			Region    struct {
				ID string `json:"id"`
			} `json:"region"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.Available)
	assert.Equal(t, "cape-town", resp.Data.Region.ID)
}

func TestResolveRegionNotCoveredIsOKNotError(t *testing.T) {
	r := testRouter()

	body, _ := json.Marshal(gin.H{"postal_code": "9999"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/store/regions/resolve", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	// Out-of-range is a valid negative answer
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Available bool `json:"available"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Data.Available)
}

func TestResolveRegionMissingPostalCode(t *testing.T) {
	r := testRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/store/regions/resolve", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
