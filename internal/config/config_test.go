package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigRequiresCMSProject(t *testing.T) {
	err := DefaultConfig().Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ProjectID")
}

func TestFromEnvOverridesDefaults(t *testing.T) {
	t.Setenv("MONEYPATH_ENV", "prod")
	t.Setenv("MONEYPATH_LOCALE", "es")
	t.Setenv("MONEYPATH_CMS_PROJECT_ID", "abc123")
	t.Setenv("MONEYPATH_CMS_CDN", "false")
	t.Setenv("MONEYPATH_CMS_TIMEOUT", "3s")
	t.Setenv("MONEYPATH_CORS_ORIGINS", "https://app.example.org, http://localhost:3000,")
	t.Setenv("MONEYPATH_PREMIUM_GRACE", "24h")
	t.Setenv("MONEYPATH_PATH", "money-basics")

	cfg := FromEnv()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "es", cfg.Locale)
	assert.Equal(t, "abc123", cfg.Content.ProjectID)
	assert.False(t, cfg.Content.UseCDN)
	assert.Equal(t, 3*time.Second, cfg.Content.Timeout)
	assert.Equal(t, []string{"https://app.example.org", "http://localhost:3000"}, cfg.HTTP.CORSOrigins)
	assert.Equal(t, 24*time.Hour, cfg.PremiumGrace)
	assert.Equal(t, "money-basics", cfg.PathSlug)
}

func TestFileSourceNeedsFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Content.Source = "file"
	require.Error(t, cfg.Validate())

	cfg.Content.File = "content.yaml"
	require.NoError(t, cfg.Validate())
}

func TestRejectsUnknownLocale(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Content.ProjectID = "abc123"
	cfg.Locale = "fr"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Locale")
}

func TestMalformedValuesKeepDefaults(t *testing.T) {
	t.Setenv("MONEYPATH_CMS_CDN", "maybe")
	t.Setenv("MONEYPATH_CMS_TIMEOUT", "soon")

	cfg := FromEnv()
	assert.True(t, cfg.Content.UseCDN)
	assert.Equal(t, 15*time.Second, cfg.Content.Timeout)
}
