package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "http://localhost:12000/api", cfg.API.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.Equal(t, "admin_token", cfg.Cookie.Name)
	assert.Equal(t, 604800, cfg.Cookie.MaxAge)
	assert.Equal(t, "https://delote-beauty.fr", cfg.Site.BaseURL)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfigEnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "8080")
	t.Setenv("API_URL", "https://api.internal/api")
	t.Setenv("PUBLIC_API_URL", "https://api.delote-beauty.fr")
	t.Setenv("COOKIE_MAX_AGE", "3600")
	t.Setenv("REDIS_URL", "redis://localhost:6379/1")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "https://api.internal/api", cfg.API.BaseURL)
	assert.Equal(t, "https://api.delote-beauty.fr", cfg.API.PublicBaseURL)
	assert.Equal(t, 3600, cfg.Cookie.MaxAge)
	assert.Equal(t, "redis://localhost:6379/1", cfg.Cache.RedisURL)
	assert.True(t, cfg.IsProduction())
}
