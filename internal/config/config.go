package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"portfolio.dev/internal/content"
	"portfolio.dev/internal/models"
)

// Config holds all application configuration
type Config struct {
	ServerAddr      string        `env:"SERVER_ADDR" envDefault:":8080"`
	BasePath        string        `env:"BASE_PATH"`
	Environment     string        `env:"APP_ENV" envDefault:"development"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	GitHubUser      string        `env:"GITHUB_USER" envDefault:"your-github"`
	APIRateLimit    float64       `env:"API_RATE_LIMIT" envDefault:"20"`
	APIRateBurst    int           `env:"API_RATE_BURST" envDefault:"40"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	Projects *models.ProjectList
	Site     *models.Site
}

// Load reads the environment (and an optional .env file) and the embedded content
func Load() (*Config, error) {
	// A missing .env is normal outside local development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg, err := FromEnv()
	if err != nil {
		return nil, err
	}

	projects, err := content.LoadProjects()
	if err != nil {
		return nil, err
	}
	site, err := content.LoadSite()
	if err != nil {
		return nil, err
	}
	cfg.Projects = projects
	cfg.Site = site

	return cfg, nil
}

// FromEnv parses and validates the environment-backed settings only
func FromEnv() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate normalizes the base path and checks numeric limits
func (c *Config) Validate() error {
	if c.ServerAddr == "" {
		return fmt.Errorf("SERVER_ADDR is required")
	}

	base, err := NormalizeBasePath(c.BasePath)
	if err != nil {
		return err
	}
	c.BasePath = base

	if c.APIRateLimit <= 0 {
		return fmt.Errorf("API_RATE_LIMIT must be positive, got %v", c.APIRateLimit)
	}
	if c.APIRateBurst <= 0 {
		return fmt.Errorf("API_RATE_BURST must be positive, got %d", c.APIRateBurst)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout)
	}
	return nil
}

// IsDevelopment reports whether the app runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// NormalizeBasePath returns "" for the root or "/segment" without a trailing slash
func NormalizeBasePath(p string) (string, error) {
	p = strings.TrimSpace(p)
	if p == "" || p == "/" {
		return "", nil
	}
	if !strings.HasPrefix(p, "/") {
		return "", fmt.Errorf("BASE_PATH must start with '/', got %q", p)
	}
	if strings.ContainsAny(p, "?#") {
		return "", fmt.Errorf("BASE_PATH must be a plain path, got %q", p)
	}
	return strings.TrimRight(p, "/"), nil
}
