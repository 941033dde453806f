package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the application configuration
type Config struct {
	Port                  string        // Service port
	AWSRegion             string        // Region hosting the Studio domains
	AWSAccountID          string        // Account owning the execution roles
	ListDomainsMaxResults int32         // Page size hint for domain lookups
	SageMakerTimeout      time.Duration // Per-call timeout for SageMaker API calls
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	config := &Config{
		Port:                  getEnv("PORT", "8889"),
		AWSRegion:             getEnv("AWS_REGION", "eu-west-1"),
		AWSAccountID:          getEnv("AWS_ACCOUNT_ID", ""),
		ListDomainsMaxResults: 10,
		SageMakerTimeout:      10 * time.Second, // Default 10 seconds
	}

	if maxStr := os.Getenv("LIST_DOMAINS_MAX_RESULTS"); maxStr != "" {
		n, err := strconv.ParseInt(maxStr, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid LIST_DOMAINS_MAX_RESULTS format: %w", err)
		}
		config.ListDomainsMaxResults = int32(n)
	}

	if timeoutStr := os.Getenv("SAGEMAKER_TIMEOUT"); timeoutStr != "" {
		duration, err := time.ParseDuration(timeoutStr)
		if err != nil {
			return nil, fmt.Errorf("invalid SAGEMAKER_TIMEOUT format: %w", err)
		}
		config.SageMakerTimeout = duration
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

	if c.AWSAccountID == "" {
		return fmt.Errorf("AWS_ACCOUNT_ID cannot be empty")
	}

	if c.ListDomainsMaxResults <= 0 {
		return fmt.Errorf("LIST_DOMAINS_MAX_RESULTS must be positive")
	}

	if c.SageMakerTimeout <= 0 {
		return fmt.Errorf("SAGEMAKER_TIMEOUT must be positive")
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
