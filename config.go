package sdk

import (
	"os"

	cn "github.com/amberstream/lib-exposure-go/constant"
)

// Config holds runtime configuration for the exposure client.
type Config struct {
	BaseURL      string
	Customer     string
	BusinessUnit string
	SessionToken string
}

// LoadFromEnv builds the Config from the process environment.
func LoadFromEnv() Config {
	return Config{
		BaseURL:      os.Getenv(cn.EnvExposureBaseURL),
		Customer:     os.Getenv(cn.EnvCustomer),
		BusinessUnit: os.Getenv(cn.EnvBusinessUnit),
		SessionToken: os.Getenv(cn.EnvSessionToken),
	}
}
