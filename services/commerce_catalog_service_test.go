package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Caught-Online/caught-online-storefront-backend/config"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func jsonResponse(body string) *http.Response {
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func testCatalogService(rt roundTripperFunc) *CommerceCatalogService {
	return &CommerceCatalogService{
		cfg: &config.CommerceConfig{
			ShopDomain:      "example.myshopify.com",
			StorefrontToken: "token",
			APIVersion:      "2024-10",
		},
		httpClient: &http.Client{Transport: rt},
	}
}

func TestProductsFollowsCursorToTheEnd(t *testing.T) {
	var cursors []interface{}
	svc := testCatalogService(func(req *http.Request) (*http.Response, error) {
		body, err := io.ReadAll(req.Body)
		require.NoError(t, err)

		var gql struct {
			Variables map[string]interface{} `json:"variables"`
		}
		require.NoError(t, json.Unmarshal(body, &gql))
		cursors = append(cursors, gql.Variables["after"])

		if gql.Variables["after"] == nil {
			return jsonResponse(`{"data":{"products":{
				"pageInfo":{"hasNextPage":true,"endCursor":"cursor-1"},
				"edges":[{"node":{"handle":"norwegian-salmon","title":"Norwegian Salmon"}}]
			}}}`), nil
		}
		return jsonResponse(`{"data":{"products":{
			"pageInfo":{"hasNextPage":false,"endCursor":""},
			"edges":[{"node":{"handle":"tiger-prawns","title":"Tiger Prawns"}}]
		}}}`), nil
	})

	products, err := svc.Products(context.Background(), 1)
	require.NoError(t, err)

	// Both pages land in one list, and the second request carried the cursor.
	require.Len(t, products, 2)
	assert.Equal(t, "norwegian-salmon", products[0].Handle)
	assert.Equal(t, "tiger-prawns", products[1].Handle)
	require.Len(t, cursors, 2)
	assert.Nil(t, cursors[0])
	assert.Equal(t, "cursor-1", cursors[1])
}

func TestProductsSinglePageStops(t *testing.T) {
	calls := 0
	svc := testCatalogService(func(req *http.Request) (*http.Response, error) {
		calls++
		return jsonResponse(`{"data":{"products":{
			"pageInfo":{"hasNextPage":false,"endCursor":""},
			"edges":[{"node":{"handle":"smoked-snoek","title":"Smoked Snoek"}}]
		}}}`), nil
	})

	products, err := svc.Products(context.Background(), 100)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, 1, calls)
}

func TestProductsUpstreamFailureMidPagination(t *testing.T) {
	calls := 0
	svc := testCatalogService(func(req *http.Request) (*http.Response, error) {
		calls++
		if calls == 1 {
			return jsonResponse(`{"data":{"products":{
				"pageInfo":{"hasNextPage":true,"endCursor":"cursor-1"},
				"edges":[{"node":{"handle":"norwegian-salmon"}}]
			}}}`), nil
		}
		return &http.Response{
			StatusCode: http.StatusBadGateway,
			Body:       io.NopCloser(strings.NewReader("upstream down")),
		}, nil
	})

	_, err := svc.Products(context.Background(), 1)
	assert.ErrorIs(t, err, ErrUpstream)
}
