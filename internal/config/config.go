package config

import (
	"errors"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

// Config holds all configuration for the review console.
type Config struct {
	// Backend API
	BackendBaseURL string        `env:"BACKEND_BASE_URL" envDefault:"http://localhost:8080/api"`
	HTTPTimeout    time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`

	// HTTP server
	ServerHost string `env:"SERVER_HOST" envDefault:"localhost"`
	ServerPort string `env:"SERVER_PORT" envDefault:"3000"`

	// Credential cookie. CookieName is the single fixed storage key the
	// session credential lives under.
	CookieName     string `env:"COOKIE_NAME" envDefault:"rd_auth_token"`
	CookiePath     string `env:"COOKIE_PATH" envDefault:"/"`
	CookieDomain   string `env:"COOKIE_DOMAIN" envDefault:""`
	CookieSecure   bool   `env:"COOKIE_SECURE" envDefault:"false"`
	CookieHTTPOnly bool   `env:"COOKIE_HTTP_ONLY" envDefault:"true"`
	CookieSameSite string `env:"COOKIE_SAME_SITE" envDefault:"Lax"`
	CookieMaxAge   int    `env:"COOKIE_MAX_AGE" envDefault:"86400"`
}

// LoadConfig loads configuration from environment variables and applies defaults.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.New("failed to load configuration from environment: " + err.Error())
	}

	if cfg.BackendBaseURL == "" {
		return nil, errors.New("backend_base_url is required")
	}
	cfg.BackendBaseURL = strings.TrimRight(cfg.BackendBaseURL, "/")

	cfg.CookieSameSite = normalizeSameSite(cfg.CookieSameSite)
	if cfg.CookieSameSite == "" {
		return nil, errors.New("cookie_same_site must be one of 'Lax', 'Strict', or 'None'")
	}

	return cfg, nil
}

func normalizeSameSite(v string) string {
	switch strings.ToLower(v) {
	case "lax":
		return "Lax"
	case "strict":
		return "Strict"
	case "none":
		return "None"
	default:
		return ""
	}
}
