package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds the application configuration
type Config struct {
	Port                string        // Service port
	SessionDBPath       string        // Durable session store location
	IdentityProviderURL string        // External identity provider base URL
	ProviderTimeout     time.Duration // Per-call timeout toward the provider
	TokenSecret         string        // Secret for signing bearer tokens
	TokenIssuer         string        // JWT issuer claim
	TokenAudience       string        // JWT audience claim
	AccessTokenTTL      time.Duration // Access token TTL
	RefreshTokenTTL     time.Duration // Refresh token TTL
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	config := &Config{
		Port:                getEnv("PORT", "8888"),
		SessionDBPath:       getEnv("SESSION_DB_PATH", "certgate-session.db"),
		IdentityProviderURL: getEnv("IDENTITY_PROVIDER_URL", "http://kratos:4433"),
		ProviderTimeout:     5 * time.Second,
		TokenSecret:         getEnv("TOKEN_SECRET", ""),
		TokenIssuer:         getEnv("TOKEN_ISSUER", "certgate"),
		TokenAudience:       getEnv("TOKEN_AUDIENCE", "cert-portal"),
		AccessTokenTTL:      24 * time.Hour,
		RefreshTokenTTL:     7 * 24 * time.Hour,
	}

	// Parse PROVIDER_TIMEOUT if provided
	if timeoutStr := os.Getenv("PROVIDER_TIMEOUT"); timeoutStr != "" {
		duration, err := time.ParseDuration(timeoutStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PROVIDER_TIMEOUT format: %w", err)
		}
		config.ProviderTimeout = duration
	}

	// Parse ACCESS_TOKEN_TTL if provided
	if ttlStr := os.Getenv("ACCESS_TOKEN_TTL"); ttlStr != "" {
		duration, err := time.ParseDuration(ttlStr)
		if err != nil {
			return nil, fmt.Errorf("invalid ACCESS_TOKEN_TTL format: %w", err)
		}
		config.AccessTokenTTL = duration
	}

	// Parse REFRESH_TOKEN_TTL if provided
	if ttlStr := os.Getenv("REFRESH_TOKEN_TTL"); ttlStr != "" {
		duration, err := time.ParseDuration(ttlStr)
		if err != nil {
			return nil, fmt.Errorf("invalid REFRESH_TOKEN_TTL format: %w", err)
		}
		config.RefreshTokenTTL = duration
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}

	if c.SessionDBPath == "" {
		return fmt.Errorf("SESSION_DB_PATH cannot be empty")
	}

	if c.IdentityProviderURL == "" {
		return fmt.Errorf("IDENTITY_PROVIDER_URL cannot be empty")
	}

	if c.ProviderTimeout <= 0 {
		return fmt.Errorf("PROVIDER_TIMEOUT must be positive")
	}

	return nil
}

// getEnv retrieves an environment variable or returns a fallback value
func getEnv(key, fallback string) string {
	// Check for _FILE suffix
	if fileValue := os.Getenv(key + "_FILE"); fileValue != "" {
		content, err := os.ReadFile(fileValue)
		if err == nil {
			return strings.TrimSpace(string(content))
		}
	}

	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
