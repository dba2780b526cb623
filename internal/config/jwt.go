package config

import (
	"fmt"
	"os"
)

// JWTConfig holds configuration for verifying tokens issued by the external
// identity provider. This service never issues tokens.
type JWTConfig struct {
	Secret string
}

// NewJWTConfig creates a new JWT configuration from environment variables.
// It reads JWT_SECRET (required).
func NewJWTConfig() (*JWTConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	return &JWTConfig{Secret: secret}, nil
}
