package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/Caught-Online/caught-online-storefront-backend/models"
)

// ReviewsClient proxies the third-party reviews platform. The storefront
// never stores reviews itself.
type ReviewsClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var reviewsClient *ReviewsClient

func InitReviewsClient() {
	baseURL := os.Getenv("REVIEWS_API_URL")
	if baseURL == "" {
		baseURL = "https://api.reviews.example.com/v1"
		log.Println("⚠️  REVIEWS_API_URL not set, using default:", baseURL)
	}
	apiKey := os.Getenv("REVIEWS_API_KEY")
	if apiKey == "" {
		log.Println("⚠️  REVIEWS_API_KEY not set, review calls will be rejected upstream")
	}

	reviewsClient = &ReviewsClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	log.Println("✅ Reviews client initialized")
}

func GetReviewsClient() *ReviewsClient {
	return reviewsClient
}

// ListReviews fetches a page of reviews for a product handle. An unknown
// handle is an empty page, not an error.
func (r *ReviewsClient) ListReviews(ctx context.Context, handle string, page, limit int) ([]models.Review, int, error) {
	endpoint := fmt.Sprintf("%s/reviews?%s", r.baseURL, url.Values{
		"handle": {handle},
		"page":   {strconv.Itoa(page)},
		"limit":  {strconv.Itoa(limit)},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: reading response: %v", ErrUpstream, err)
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("[reviews] list status %d: %s", resp.StatusCode, string(body))
		return nil, 0, fmt.Errorf("%w: reviews api status %d", ErrUpstream, resp.StatusCode)
	}

	var wire struct {
		Reviews []models.Review `json:"reviews"`
		Total   int             `json:"total"`
	}
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, 0, fmt.Errorf("%w: decoding reviews: %v", ErrUpstream, err)
	}
	return wire.Reviews, wire.Total, nil
}

// SubmitReview forwards a customer review to the reviews platform.
func (r *ReviewsClient) SubmitReview(ctx context.Context, submission models.ReviewSubmission) error {
	payload, err := json.Marshal(submission)
	if err != nil {
		return fmt.Errorf("failed to marshal review: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/reviews", bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		log.Printf("[reviews] submit status %d: %s", resp.StatusCode, string(body))
		return fmt.Errorf("%w: reviews api status %d", ErrUpstream, resp.StatusCode)
	}

	log.Printf("[reviews] review submitted for %s by %s", submission.Handle, submission.Author)
	return nil
}
