package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/Caught-Online/caught-online-storefront-backend/config"
	"github.com/Caught-Online/caught-online-storefront-backend/models"
)

// CartAPI is the platform's session cart: clear, add one item, read back.
// Plain JSON over HTTP, no custom framing.
type CartAPI interface {
	ClearCart(ctx context.Context) error
	AddItem(ctx context.Context, variantID string, quantity int) error
	ReadCart(ctx context.Context) (*models.RemoteCart, error)
}

// CommerceCartService drives the platform's AJAX cart endpoints
// (/cart/clear.js, /cart/add.js, /cart.js).
type CommerceCartService struct {
	cfg        *config.CommerceConfig
	httpClient *http.Client
}

var cartAPI CartAPI

func InitCartAPI() {
	cartAPI = &CommerceCartService{
		cfg:        config.Commerce,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	log.Println("✅ Commerce cart client initialized")
}

func GetCartAPI() CartAPI {
	return cartAPI
}

// SetCartAPI swaps the client; used by tests.
func SetCartAPI(c CartAPI) {
	cartAPI = c
}

func (s *CommerceCartService) post(ctx context.Context, path string, payload interface{}) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal payload: %w", err)
		}
		body = bytes.NewBuffer(buf)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.CartURL(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", ErrUpstream, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("[commerce.cart] %s status %d: %s", path, resp.StatusCode, string(respBody))
		return nil, fmt.Errorf("%w: %s status %d", ErrUpstream, path, resp.StatusCode)
	}
	return respBody, nil
}

func (s *CommerceCartService) ClearCart(ctx context.Context) error {
	_, err := s.post(ctx, "/cart/clear.js", nil)
	return err
}

func (s *CommerceCartService) AddItem(ctx context.Context, variantID string, quantity int) error {
	payload := map[string]interface{}{
		"id":       variantID,
		"quantity": quantity,
	}
	_, err := s.post(ctx, "/cart/add.js", payload)
	return err
}

func (s *CommerceCartService) ReadCart(ctx context.Context) (*models.RemoteCart, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.CartURL("/cart.js"), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", ErrUpstream, err)
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("[commerce.cart] /cart.js status %d: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("%w: /cart.js status %d", ErrUpstream, resp.StatusCode)
	}

	var wire struct {
		Token     string `json:"token"`
		ItemCount int    `json:"item_count"`
		Items     []struct {
			VariantID int64  `json:"variant_id"`
			Quantity  int    `json:"quantity"`
			Title     string `json:"title"`
		} `json:"items"`
	}
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("%w: decoding cart: %v", ErrUpstream, err)
	}

	cart := &models.RemoteCart{
		Token:     wire.Token,
		ItemCount: wire.ItemCount,
		Items:     make([]models.RemoteCartItem, 0, len(wire.Items)),
	}
	for _, item := range wire.Items {
		cart.Items = append(cart.Items, models.RemoteCartItem{
			VariantID: strconv.FormatInt(item.VariantID, 10),
			Quantity:  item.Quantity,
			Title:     item.Title,
		})
	}
	return cart, nil
}
