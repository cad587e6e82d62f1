// Path: controllers/webhooks/webhook_controller/verify_signature.go

package webhook_controller

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// VerifySignature checks the platform's webhook signature: HMAC-SHA256 over
// the raw body with the shared secret, base64-encoded, compared byte-for-byte
// against the header value.
func VerifySignature(secret string, body []byte, signature string) bool {
	if secret == "" || signature == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	return expected == signature
}
