package models

// Customer is the storefront's view of a platform customer. Identity lives on
// the commerce platform; nothing here is persisted locally.
type Customer struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// CustomerToken is an access token issued by the commerce platform's
// customer token mutation.
type CustomerToken struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   string `json:"expires_at"`
}

// GoogleUserInfo is the profile carried in the verified Google ID token
// during the OAuth callback.
type GoogleUserInfo struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
