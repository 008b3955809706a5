package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	cn "github.com/amberstream/lib-exposure-go/constant"
)

// ClientConfig holds the configuration for the exposure client
type ClientConfig struct {
	BaseURL      string // Exposure API base URL (e.g. "https://exposure.example.tv")
	Customer     string
	BusinessUnit string
	SessionToken string

	// HTTP configuration
	HTTPTimeout   time.Duration
	EnableTracing bool

	// Analytics dispatch configuration
	FlushInterval time.Duration
}

// NewDefaultConfig creates a new config with sensible defaults
func NewDefaultConfig() ClientConfig {
	return ClientConfig{
		HTTPTimeout:   cn.DefaultHTTPTimeoutSeconds * time.Second,
		FlushInterval: cn.DefaultFlushIntervalSeconds * time.Second,
	}
}

// Validate checks if the configuration is valid
func (c *ClientConfig) Validate() error {
	if c.BaseURL == "" {
		return errors.New("base URL is required")
	}

	if c.Customer == "" {
		return errors.New("customer is required")
	}

	if c.BusinessUnit == "" {
		return errors.New("business unit is required")
	}

	return nil
}

// APIBaseURL returns the versioned URL prefix for customer-scoped endpoints
func (c *ClientConfig) APIBaseURL() string {
	return fmt.Sprintf("%s/v2/customer/%s/businessunit/%s",
		strings.TrimRight(c.BaseURL, "/"), c.Customer, c.BusinessUnit)
}
