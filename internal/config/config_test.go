package config_test

import (
	"cfpurge/internal/config"
	"cfpurge/pkg/cdn/cloudflare"
	"cfpurge/pkg/serrors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func clearCredentialEnv(t *testing.T) {
	t.Helper()

	// make sure ambient credentials do not leak into the test
	t.Setenv("CF_API_TOKEN", "")
	t.Setenv("CF_API_KEY", "")
	t.Setenv("CF_EMAIL", "")
}

func TestLoad_Defaults(t *testing.T) {
	clearCredentialEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "https://api.cloudflare.com/client/v4", cfg.API.BaseURL)
	require.Equal(t, 30*time.Second, cfg.API.Timeout)
	require.Equal(t, 30, cfg.Purge.PrefixLimit)
}

func TestLoad_Overrides(t *testing.T) {
	clearCredentialEnv(t)
	t.Setenv("CF_API_URL", "https://cf.example.test/v4")
	t.Setenv("CF_HTTP_TIMEOUT", "5s")
	t.Setenv("CF_PURGE_PREFIX_LIMIT", "10")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "https://cf.example.test/v4", cfg.API.BaseURL)
	require.Equal(t, 5*time.Second, cfg.API.Timeout)
	require.Equal(t, 10, cfg.Purge.PrefixLimit)
}

func TestCredentials_TokenMode(t *testing.T) {
	clearCredentialEnv(t)
	t.Setenv("CF_API_TOKEN", "tok-123")

	cfg, err := config.Load()
	require.NoError(t, err)

	creds, err := cfg.Credentials()
	require.NoError(t, err)
	require.Equal(t, cloudflare.Credentials{Token: "tok-123"}, creds)
}

func TestCredentials_TokenWinsOverKeyEmail(t *testing.T) {
	clearCredentialEnv(t)
	t.Setenv("CF_API_TOKEN", "tok-123")
	t.Setenv("CF_API_KEY", "key-456")
	t.Setenv("CF_EMAIL", "ops@example.com")

	cfg, err := config.Load()
	require.NoError(t, err)

	creds, err := cfg.Credentials()
	require.NoError(t, err)
	require.Equal(t, cloudflare.Credentials{Token: "tok-123"}, creds)
}

func TestCredentials_KeyEmailMode(t *testing.T) {
	clearCredentialEnv(t)
	t.Setenv("CF_API_KEY", "key-456")
	t.Setenv("CF_EMAIL", "ops@example.com")

	cfg, err := config.Load()
	require.NoError(t, err)

	creds, err := cfg.Credentials()
	require.NoError(t, err)
	require.Equal(t, cloudflare.Credentials{Key: "key-456", Email: "ops@example.com"}, creds)
}

func TestCredentials_KeyWithoutEmailFails(t *testing.T) {
	clearCredentialEnv(t)
	t.Setenv("CF_API_KEY", "key-456")

	cfg, err := config.Load()
	require.NoError(t, err)

	_, err = cfg.Credentials()
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrConfiguration)
}

func TestCredentials_MissingBothFails(t *testing.T) {
	clearCredentialEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	_, err = cfg.Credentials()
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrConfiguration)
	require.Contains(t, err.Error(), "CF_API_TOKEN")
}
