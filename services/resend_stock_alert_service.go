package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/Caught-Online/caught-online-storefront-backend/models"
)

// ResendClient handles email sending via Resend API
type ResendClient struct {
	apiKey string
	from   string
}

var resendClient *ResendClient

// InitResendClient configures the Resend client at startup. Without an API
// key the client stays nil and stock alert emails are disabled; webhooks keep
// working and the alerts stay pending.
func InitResendClient() {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		log.Println("⚠️  RESEND_API_KEY not set, stock alert emails disabled")
		return
	}

	from := os.Getenv("RESEND_FROM_EMAIL")
	if from == "" {
		from = "noreply@caughtonline.co.za" // Default from address
	}

	resendClient = &ResendClient{
		apiKey: apiKey,
		from:   from,
	}
	log.Println("✅ Resend client initialized")
}

// GetResendClient returns the configured client, or nil when emails are
// disabled.
func GetResendClient() *ResendClient {
	return resendClient
}

// StockAlertEmailData holds data for a back-in-stock email
type StockAlertEmailData struct {
	Email        string
	ProductTitle string
	ProductURL   string
	RegionName   string
	Cadence      string
}

// SendStockAlertEmail tells a customer their product is back in stock in
// their delivery region.
func (r *ResendClient) SendStockAlertEmail(data StockAlertEmailData) error {
	htmlBody := r.buildStockAlertHTML(data)

	payload := map[string]interface{}{
		"from":    r.from,
		"to":      data.Email,
		"subject": fmt.Sprintf("%s is back in stock", data.ProductTitle),
		"html":    htmlBody,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[resend] failed to marshal payload: %v", err)
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewBuffer(jsonPayload))
	if err != nil {
		log.Printf("[resend] failed to create request: %v", err)
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", r.apiKey))
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		log.Printf("[resend] failed to send request: %v", err)
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[resend] failed to read response: %v", err)
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Printf("[resend] api returned status %d: %s", resp.StatusCode, string(body))
		return fmt.Errorf("resend api error: status %d", resp.StatusCode)
	}

	log.Printf("[resend] stock alert sent to %s for %s", data.Email, data.ProductTitle)
	return nil
}

// NotifyStockAlerts sends the alert email for each pending request and
// returns the alerts that were actually mailed so the caller can mark them.
func (r *ResendClient) NotifyStockAlerts(alerts []models.StockAlert, product models.StorefrontProduct, frontendURL string) []models.StockAlert {
	var sent []models.StockAlert
	for _, alert := range alerts {
		regionName, cadence := "", ""
		if region, ok := models.RegionByID(alert.RegionID); ok {
			regionName = region.Name
			cadence = region.Cadence
		}

		err := r.SendStockAlertEmail(StockAlertEmailData{
			Email:        alert.Email,
			ProductTitle: product.Title,
			ProductURL:   fmt.Sprintf("%s/products/%s", frontendURL, product.Handle),
			RegionName:   regionName,
			Cadence:      cadence,
		})
		if err != nil {
			// Leave the alert pending, the next inventory webhook retries it.
			log.Printf("[resend] stock alert to %s failed: %v", alert.Email, err)
			continue
		}
		sent = append(sent, alert)
	}
	return sent
}

// buildStockAlertHTML creates the HTML body for a back-in-stock email with inline styles
func (r *ResendClient) buildStockAlertHTML(data StockAlertEmailData) string {
	regionLine := ""
	if data.RegionName != "" {
		regionLine = fmt.Sprintf(
			`<p style="font-size: 15px; color: #626262; line-height: 1.8; margin: 0 0 24px 0;">Delivering to <span style="color: #000000; font-weight: 600;">%s</span> &mdash; %s.</p>`,
			data.RegionName, data.Cadence,
		)
	}

	return fmt.Sprintf(`<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>Back in stock</title>
  </head>
  <body style="margin: 0; padding: 0; box-sizing: border-box; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Roboto', 'Oxygen', 'Ubuntu', 'Cantarell', 'Fira Sans', 'Droid Sans', 'Helvetica Neue', sans-serif; background-color: #ffffff; color: #1a1a1a; line-height: 1.6;">
    <div style="background-color: #ffffff; padding: 60px 20px;">
      <div style="max-width: 600px; margin: 0 auto; background: #ffffff;">
        <div style="padding: 0 0 60px 0; text-align: left;">
          <div style="font-size: 24px; font-weight: 700; color: #1a1a1a; letter-spacing: -0.3px;">Caught Online</div>
        </div>

        <div style="padding: 0;">
          <p style="font-size: 32px; font-weight: 700; color: #000000; margin: 0 0 24px 0; letter-spacing: -0.8px; line-height: 1.2;">%s is back</p>

          <p style="font-size: 17px; color: #626262; line-height: 1.8; margin: 0 0 24px 0;">
            Good news &mdash; the product you asked us about is back in stock. Fresh catches sell out quickly, so grab it while it lasts.
          </p>

          %s

          <div style="text-align: left; margin: 40px 0 60px 0;">
            <a href="%s" style="display: inline-block; padding: 16px 32px; background: #000000; color: #ffffff; text-decoration: none; border-radius: 6px; font-weight: 600; font-size: 16px;">Shop now</a>
          </div>
        </div>

        <div style="padding: 40px 0 0 0; text-align: left;">
          <p style="font-size: 13px; color: #626262; line-height: 1.8; margin: 0 0 8px 0;">You received this because you asked to be notified when this product returned.</p>
          <p style="font-size: 13px; color: #626262; line-height: 1.8; margin: 0;">
            Questions?
            <a href="mailto:support@caughtonline.co.za" style="color: #0066cc; text-decoration: none; font-size: 13px; font-weight: 500;">Contact support</a>
          </p>
        </div>
      </div>
    </div>
  </body>
</html>`, data.ProductTitle, regionLine, data.ProductURL)
}
