package config_test

import (
	"testing"

	"reviewdesk/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api", cfg.BackendBaseURL)
	assert.Equal(t, "rd_auth_token", cfg.CookieName)
	assert.Equal(t, "Lax", cfg.CookieSameSite)
	assert.True(t, cfg.CookieHTTPOnly)
	assert.Equal(t, "3000", cfg.ServerPort)
}

func TestLoadConfig_TrimsTrailingSlash(t *testing.T) {
	t.Setenv("BACKEND_BASE_URL", "http://reviews.internal/api/")

	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "http://reviews.internal/api", cfg.BackendBaseURL)
}

func TestLoadConfig_NormalizesSameSite(t *testing.T) {
	t.Setenv("COOKIE_SAME_SITE", "strict")

	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "Strict", cfg.CookieSameSite)
}

func TestLoadConfig_RejectsBadSameSite(t *testing.T) {
	t.Setenv("COOKIE_SAME_SITE", "sideways")

	cfg, err := config.LoadConfig()

	assert.Error(t, err)
	assert.Nil(t, cfg)
}
