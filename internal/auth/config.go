package auth

import (
	"fmt"
	"time"

	"problem-selection-backend/internal/config"
)

// AuthConfig holds the token settings used by the auth service
type AuthConfig struct {
	JWTSecret   string
	Issuer      string
	TokenExpiry time.Duration
}

// NewAuthConfig derives the auth configuration from the application configuration
func NewAuthConfig(cfg *config.Config) *AuthConfig {
	return &AuthConfig{
		JWTSecret:   cfg.JWTSecret,
		Issuer:      cfg.JWTIssuer,
		TokenExpiry: cfg.JWTExpiry,
	}
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if c.TokenExpiry <= 0 {
		return fmt.Errorf("token expiry must be positive")
	}

	if c.Issuer == "" {
		return fmt.Errorf("token issuer is required")
	}

	return nil
}
