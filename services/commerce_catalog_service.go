package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/Caught-Online/caught-online-storefront-backend/config"
	"github.com/Caught-Online/caught-online-storefront-backend/models"
)

// ErrUpstream marks a commerce platform failure (network, 5xx, GraphQL
// errors). Callers use it to tell "we could not check" apart from a
// negative-but-valid "not found / out of stock" answer.
var ErrUpstream = errors.New("commerce platform unavailable")

// CatalogClient is the slice of the commerce platform the storefront reads:
// products, per-location inventory, selling plans, customer tokens.
type CatalogClient interface {
	Products(ctx context.Context, first int) ([]models.StorefrontProduct, error)
	ProductByHandle(ctx context.Context, handle string) (*models.StorefrontProduct, error)
	InventoryLevels(ctx context.Context, handle string) ([]models.InventoryLevel, error)
	SellingPlans(ctx context.Context, handle string) ([]models.SellingPlan, error)
	CustomerLogin(ctx context.Context, email, password string) (*models.CustomerToken, *models.Customer, error)
}

// CommerceCatalogService talks GraphQL to the platform. Catalog and customer
// queries go to the storefront endpoint; per-location inventory needs the
// admin endpoint.
type CommerceCatalogService struct {
	cfg        *config.CommerceConfig
	httpClient *http.Client
}

var catalogClient CatalogClient

func InitCatalogClient() {
	catalogClient = &CommerceCatalogService{
		cfg:        config.Commerce,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	log.Println("✅ Commerce catalog client initialized")
}

func GetCatalogClient() CatalogClient {
	return catalogClient
}

// SetCatalogClient swaps the client; used by tests.
func SetCatalogClient(c CatalogClient) {
	catalogClient = c
}

// ─────────────────────────────────────────────────────────────
// GraphQL plumbing
// ─────────────────────────────────────────────────────────────

type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

type graphQLError struct {
	Message string `json:"message"`
}

func (s *CommerceCatalogService) query(ctx context.Context, url, token, tokenHeader, query string, variables map[string]interface{}, out interface{}) error {
	payload, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("failed to marshal query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(tokenHeader, token)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", ErrUpstream, err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("[commerce.graphql] status %d: %s", resp.StatusCode, string(body))
		return fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	envelope := struct {
		Data   json.RawMessage `json:"data"`
		Errors []graphQLError  `json:"errors"`
	}{}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("%w: decoding envelope: %v", ErrUpstream, err)
	}
	if len(envelope.Errors) > 0 {
		log.Printf("[commerce.graphql] errors: %v", envelope.Errors)
		return fmt.Errorf("%w: %s", ErrUpstream, envelope.Errors[0].Message)
	}

	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("%w: decoding data: %v", ErrUpstream, err)
	}
	return nil
}

func (s *CommerceCatalogService) storefrontQuery(ctx context.Context, query string, variables map[string]interface{}, out interface{}) error {
	return s.query(ctx, s.cfg.StorefrontGraphQLURL(), s.cfg.StorefrontToken, "X-Shopify-Storefront-Access-Token", query, variables, out)
}

func (s *CommerceCatalogService) adminQuery(ctx context.Context, query string, variables map[string]interface{}, out interface{}) error {
	return s.query(ctx, s.cfg.AdminGraphQLURL(), s.cfg.AdminToken, "X-Shopify-Access-Token", query, variables, out)
}

// ─────────────────────────────────────────────────────────────
// Wire shapes
// ─────────────────────────────────────────────────────────────

type wireVariant struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	SKU          string `json:"sku"`
	Available    bool   `json:"availableForSale"`
	Price        struct {
		Amount string `json:"amount"`
	} `json:"price"`
}

type wireProduct struct {
	ID          string   `json:"id"`
	Handle      string   `json:"handle"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ProductType string   `json:"productType"`
	Tags        []string `json:"tags"`
	Available   bool     `json:"availableForSale"`
	Image       struct {
		URL string `json:"url"`
	} `json:"featuredImage"`
	PriceRange struct {
		MinVariantPrice struct {
			Amount string `json:"amount"`
		} `json:"minVariantPrice"`
	} `json:"priceRange"`
	Variants struct {
		Edges []struct {
			Node wireVariant `json:"node"`
		} `json:"edges"`
	} `json:"variants"`
}

func (w wireProduct) toModel() models.StorefrontProduct {
	p := models.StorefrontProduct{
		ID:          w.ID,
		Handle:      w.Handle,
		Title:       w.Title,
		Description: w.Description,
		ProductType: w.ProductType,
		Tags:        w.Tags,
		Image:       w.Image.URL,
		MinPrice:    w.PriceRange.MinVariantPrice.Amount,
		Available:   w.Available,
	}
	for _, e := range w.Variants.Edges {
		p.Variants = append(p.Variants, models.Variant{
			ID:        e.Node.ID,
			Title:     e.Node.Title,
			SKU:       e.Node.SKU,
			Price:     e.Node.Price.Amount,
			Available: e.Node.Available,
		})
	}
	return p
}

const productFields = `
	id
	handle
	title
	description
	productType
	tags
	availableForSale
	featuredImage { url }
	priceRange { minVariantPrice { amount } }
	variants(first: 10) {
		edges { node { id title sku availableForSale price { amount } } }
	}`

// ─────────────────────────────────────────────────────────────
// Catalog
// ─────────────────────────────────────────────────────────────

// Products returns the whole catalog, paging through the platform's cursor
// in chunks of first.
func (s *CommerceCatalogService) Products(ctx context.Context, first int) ([]models.StorefrontProduct, error) {
	query := fmt.Sprintf(`query Products($first: Int!, $after: String) {
		products(first: $first, after: $after) {
			pageInfo { hasNextPage endCursor }
			edges { node { %s } }
		}
	}`, productFields)

	var products []models.StorefrontProduct
	var after interface{}
	for {
		var data struct {
			Products struct {
				PageInfo struct {
					HasNextPage bool   `json:"hasNextPage"`
					EndCursor   string `json:"endCursor"`
				} `json:"pageInfo"`
				Edges []struct {
					Node wireProduct `json:"node"`
				} `json:"edges"`
			} `json:"products"`
		}
		variables := map[string]interface{}{"first": first}
		if after != nil {
			variables["after"] = after
		}
		if err := s.storefrontQuery(ctx, query, variables, &data); err != nil {
			return nil, err
		}

		for _, e := range data.Products.Edges {
			products = append(products, e.Node.toModel())
		}
		if !data.Products.PageInfo.HasNextPage || len(data.Products.Edges) == 0 {
			return products, nil
		}
		after = data.Products.PageInfo.EndCursor
	}
}

// ProductByHandle returns nil (and no error) when the handle does not exist.
func (s *CommerceCatalogService) ProductByHandle(ctx context.Context, handle string) (*models.StorefrontProduct, error) {
	query := fmt.Sprintf(`query ProductByHandle($handle: String!) {
		productByHandle(handle: $handle) { %s }
	}`, productFields)

	var data struct {
		ProductByHandle *wireProduct `json:"productByHandle"`
	}
	if err := s.storefrontQuery(ctx, query, map[string]interface{}{"handle": handle}, &data); err != nil {
		return nil, err
	}
	if data.ProductByHandle == nil {
		return nil, nil
	}
	p := data.ProductByHandle.toModel()
	return &p, nil
}

// InventoryLevels reads the first variant's stock at every fulfilment
// location. Missing product or variant is reported as an empty slice, not an
// error: no stock data means not available.
func (s *CommerceCatalogService) InventoryLevels(ctx context.Context, handle string) ([]models.InventoryLevel, error) {
	query := `query InventoryByHandle($query: String!) {
		products(first: 1, query: $query) {
			edges {
				node {
					variants(first: 1) {
						edges {
							node {
								inventoryItem {
									inventoryLevels(first: 10) {
										edges {
											node {
												location { id }
												quantities(names: ["available"]) { quantity }
											}
										}
									}
								}
							}
						}
					}
				}
			}
		}
	}`

	var data struct {
		Products struct {
			Edges []struct {
				Node struct {
					Variants struct {
						Edges []struct {
							Node struct {
								InventoryItem struct {
									InventoryLevels struct {
										Edges []struct {
											Node struct {
												Location struct {
													ID string `json:"id"`
												} `json:"location"`
												Quantities []struct {
													Quantity int `json:"quantity"`
												} `json:"quantities"`
											} `json:"node"`
										} `json:"edges"`
									} `json:"inventoryLevels"`
								} `json:"inventoryItem"`
							} `json:"node"`
						} `json:"edges"`
					} `json:"variants"`
				} `json:"node"`
			} `json:"edges"`
		} `json:"products"`
	}
	variables := map[string]interface{}{"query": fmt.Sprintf("handle:%s", handle)}
	if err := s.adminQuery(ctx, query, variables, &data); err != nil {
		return nil, err
	}

	if len(data.Products.Edges) == 0 || len(data.Products.Edges[0].Node.Variants.Edges) == 0 {
		return nil, nil
	}

	var levels []models.InventoryLevel
	for _, e := range data.Products.Edges[0].Node.Variants.Edges[0].Node.InventoryItem.InventoryLevels.Edges {
		qty := 0
		if len(e.Node.Quantities) > 0 {
			qty = e.Node.Quantities[0].Quantity
		}
		levels = append(levels, models.InventoryLevel{
			LocationID: e.Node.Location.ID,
			Available:  qty > 0,
			Quantity:   qty,
		})
	}
	return levels, nil
}

func (s *CommerceCatalogService) SellingPlans(ctx context.Context, handle string) ([]models.SellingPlan, error) {
	query := `query SellingPlans($handle: String!) {
		productByHandle(handle: $handle) {
			sellingPlanGroups(first: 5) {
				edges {
					node {
						sellingPlans(first: 10) {
							edges { node { id name description } }
						}
					}
				}
			}
		}
	}`

	var data struct {
		ProductByHandle *struct {
			SellingPlanGroups struct {
				Edges []struct {
					Node struct {
						SellingPlans struct {
							Edges []struct {
								Node models.SellingPlan `json:"node"`
							} `json:"edges"`
						} `json:"sellingPlans"`
					} `json:"node"`
				} `json:"edges"`
			} `json:"sellingPlanGroups"`
		} `json:"productByHandle"`
	}
	if err := s.storefrontQuery(ctx, query, map[string]interface{}{"handle": handle}, &data); err != nil {
		return nil, err
	}
	if data.ProductByHandle == nil {
		return nil, nil
	}

	var plans []models.SellingPlan
	for _, g := range data.ProductByHandle.SellingPlanGroups.Edges {
		for _, p := range g.Node.SellingPlans.Edges {
			plans = append(plans, p.Node)
		}
	}
	return plans, nil
}

// ─────────────────────────────────────────────────────────────
// Customers
// ─────────────────────────────────────────────────────────────

// CustomerLogin exchanges credentials for a platform customer token and
// fetches the customer profile. Wrong credentials come back as a nil token
// with a nil error; only transport problems are errors.
func (s *CommerceCatalogService) CustomerLogin(ctx context.Context, email, password string) (*models.CustomerToken, *models.Customer, error) {
	mutation := `mutation CustomerLogin($input: CustomerAccessTokenCreateInput!) {
		customerAccessTokenCreate(input: $input) {
			customerAccessToken { accessToken expiresAt }
			customerUserErrors { message }
		}
	}`

	var data struct {
		CustomerAccessTokenCreate struct {
			CustomerAccessToken *struct {
				AccessToken string `json:"accessToken"`
				ExpiresAt   string `json:"expiresAt"`
			} `json:"customerAccessToken"`
			CustomerUserErrors []struct {
				Message string `json:"message"`
			} `json:"customerUserErrors"`
		} `json:"customerAccessTokenCreate"`
	}
	variables := map[string]interface{}{
		"input": map[string]interface{}{"email": email, "password": password},
	}
	if err := s.storefrontQuery(ctx, mutation, variables, &data); err != nil {
		return nil, nil, err
	}

	if data.CustomerAccessTokenCreate.CustomerAccessToken == nil {
		return nil, nil, nil
	}

	token := &models.CustomerToken{
		AccessToken: data.CustomerAccessTokenCreate.CustomerAccessToken.AccessToken,
		ExpiresAt:   data.CustomerAccessTokenCreate.CustomerAccessToken.ExpiresAt,
	}

	customerQuery := `query Customer($token: String!) {
		customer(customerAccessToken: $token) { id email firstName lastName }
	}`
	var customerData struct {
		Customer *struct {
			ID        string `json:"id"`
			Email     string `json:"email"`
			FirstName string `json:"firstName"`
			LastName  string `json:"lastName"`
		} `json:"customer"`
	}
	if err := s.storefrontQuery(ctx, customerQuery, map[string]interface{}{"token": token.AccessToken}, &customerData); err != nil {
		return nil, nil, err
	}
	if customerData.Customer == nil {
		return token, nil, nil
	}

	return token, &models.Customer{
		ID:        customerData.Customer.ID,
		Email:     customerData.Customer.Email,
		FirstName: customerData.Customer.FirstName,
		LastName:  customerData.Customer.LastName,
	}, nil
}
