package services

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims represents the JWT claims for customer session tokens
type SessionClaims struct {
	CustomerID    string `json:"customer_id"`
	Email         string `json:"email"`
	Name          string `json:"name,omitempty"`
	PlatformToken string `json:"platform_token,omitempty"`
	jwt.RegisteredClaims
}

// JWTService handles session token generation and verification
type JWTService struct {
	secretKey string
}

var jwtService *JWTService

// InitJWTService initializes the JWT service with a secret key
func InitJWTService(secretKey string) error {
	if secretKey == "" {
		return errors.New("JWT secret key cannot be empty")
	}
	jwtService = &JWTService{
		secretKey: secretKey,
	}
	return nil
}

// GetJWTService returns the initialized JWT service
func GetJWTService() *JWTService {
	if jwtService == nil {
		// Fallback to environment variable if not initialized
		secretKey := os.Getenv("JWT_SECRET")
		if secretKey == "" {
			secretKey = "dev-secret-key-change-in-production"
		}
		jwtService = &JWTService{secretKey: secretKey}
	}
	return jwtService
}

// GenerateSessionJWT creates a session token for a logged-in customer.
// Token expires in 7 days, matching the platform customer token lifetime.
func (j *JWTService) GenerateSessionJWT(customerID, email, name, platformToken string) (string, error) {
	if customerID == "" || email == "" {
		return "", errors.New("customerID and email cannot be empty")
	}

	now := time.Now()
	expiresAt := now.Add(7 * 24 * time.Hour)

	claims := SessionClaims{
		CustomerID:    customerID,
		Email:         email,
		Name:          name,
		PlatformToken: platformToken,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "caught-online-storefront",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// VerifySessionJWT verifies and parses a session token
func (j *JWTService) VerifySessionJWT(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	if claims.CustomerID == "" || claims.Email == "" {
		return nil, errors.New("token missing required claims")
	}

	return claims, nil
}

// Convenience functions that use the global service

func GenerateSessionJWT(customerID, email, name, platformToken string) (string, error) {
	return GetJWTService().GenerateSessionJWT(customerID, email, name, platformToken)
}

func VerifySessionJWT(tokenString string) (*SessionClaims, error) {
	return GetJWTService().VerifySessionJWT(tokenString)
}
