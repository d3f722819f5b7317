package config

import (
	"cfpurge/pkg/cdn/cloudflare"
	"cfpurge/pkg/serrors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure. Every value is
// sourced from the environment exactly once at startup; no component reads
// the environment after Load returns.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development"`

	// API contains Cloudflare API client settings and credentials
	API struct {
		// Token is the API token used for bearer authentication (preferred)
		Token string `env:"CF_API_TOKEN"`
		// Key is the legacy global API key, used together with Email
		Key string `env:"CF_API_KEY"`
		// Email is the account email paired with the legacy API key
		Email string `env:"CF_EMAIL"`
		// BaseURL is the Cloudflare v4 API endpoint
		BaseURL string `env:"CF_API_URL" env-default:"https://api.cloudflare.com/client/v4"`
		// Timeout bounds each outbound HTTP call
		Timeout time.Duration `env:"CF_HTTP_TIMEOUT" env-default:"30s"`
	}

	// Purge contains provider limits applied during target validation
	Purge struct {
		// PrefixLimit caps how many prefix targets a single purge call may carry.
		// 30 is Cloudflare's documented limit; override it if the provider's changes.
		PrefixLimit int `env:"CF_PURGE_PREFIX_LIMIT" env-default:"30"`
	}
}

// Load reads configuration from the environment and returns a filled Config struct.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}

// Credentials resolves the credential mode for the run. A token wins over the
// legacy key/email pair; having neither is a configuration error and must be
// reported before any network call is attempted.
func (c *Config) Credentials() (cloudflare.Credentials, error) {
	if c.API.Token != "" {
		return cloudflare.Credentials{Token: c.API.Token}, nil
	}
	if c.API.Key != "" && c.API.Email != "" {
		return cloudflare.Credentials{Key: c.API.Key, Email: c.API.Email}, nil
	}

	return cloudflare.Credentials{}, serrors.With(serrors.ErrConfiguration,
		"no credentials found: set CF_API_TOKEN, or both CF_API_KEY and CF_EMAIL")
}
