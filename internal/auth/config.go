package auth

import (
	"fmt"
	"time"

	"gtm-crm-backend/internal/config"
)

const defaultIssuer = "gtm-crm-backend"

// AuthConfig holds all authentication configuration for the application
type AuthConfig struct {
	JWTSecret          string
	TokenTTL           time.Duration
	Issuer             string
	PersistenceTimeout time.Duration
}

// NewAuthConfig derives the auth configuration from the application config
func NewAuthConfig(cfg *config.Config) *AuthConfig {
	return &AuthConfig{
		JWTSecret:          cfg.JWTSecret,
		TokenTTL:           cfg.TokenTTL(),
		Issuer:             defaultIssuer,
		PersistenceTimeout: cfg.PersistenceTimeout(),
	}
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token TTL must be positive")
	}
	if c.Issuer == "" {
		c.Issuer = defaultIssuer
	}
	if c.PersistenceTimeout <= 0 {
		c.PersistenceTimeout = 5 * time.Second
	}
	return nil
}
