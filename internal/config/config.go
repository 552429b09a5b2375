// Package config loads storefront settings: environment first, with an
// optional .env file and an optional YAML file overriding it.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

type Config struct {
	// APIBaseURL is the marketplace backend.
	APIBaseURL string
	// StorePath is where the persisted store lives.
	StorePath string
	// StoreBackend is BackendFile or BackendSQLite.
	StoreBackend string
	HTTPTimeout  time.Duration
	// PollInterval drives the badge fallback poll and payment watching.
	PollInterval time.Duration
	LogLevel     string
}

// fileConfig is the YAML shape; durations are strings so "10s" parses.
type fileConfig struct {
	APIBaseURL   string `yaml:"api_base_url"`
	StorePath    string `yaml:"store_path"`
	StoreBackend string `yaml:"store_backend"`
	HTTPTimeout  string `yaml:"http_timeout"`
	PollInterval string `yaml:"poll_interval"`
	LogLevel     string `yaml:"log_level"`
}

// Load builds the config from env vars (after loading an optional .env in
// the working directory), then applies overrides from path when given.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		APIBaseURL:   getenv("API_URL", "http://localhost:8080"),
		StorePath:    getenv("STORE_PATH", defaultStorePath()),
		StoreBackend: getenv("STORE_BACKEND", BackendFile),
		HTTPTimeout:  parseDuration(getenv("HTTP_TIMEOUT", "10s"), 10*time.Second),
		PollInterval: parseDuration(getenv("POLL_INTERVAL", "1s"), time.Second),
		LogLevel:     getenv("LOG_LEVEL", "info"),
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		var fc fileConfig
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
		cfg.apply(fc)
	}

	if cfg.StoreBackend != BackendFile && cfg.StoreBackend != BackendSQLite {
		return Config{}, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
	if cfg.PollInterval <= 0 {
		return Config{}, fmt.Errorf("poll interval must be positive, got %v", cfg.PollInterval)
	}
	if cfg.HTTPTimeout <= 0 {
		return Config{}, fmt.Errorf("http timeout must be positive, got %v", cfg.HTTPTimeout)
	}
	return cfg, nil
}

func (c *Config) apply(fc fileConfig) {
	if fc.APIBaseURL != "" {
		c.APIBaseURL = fc.APIBaseURL
	}
	if fc.StorePath != "" {
		c.StorePath = fc.StorePath
	}
	if fc.StoreBackend != "" {
		c.StoreBackend = fc.StoreBackend
	}
	if fc.HTTPTimeout != "" {
		c.HTTPTimeout = parseDuration(fc.HTTPTimeout, c.HTTPTimeout)
	}
	if fc.PollInterval != "" {
		c.PollInterval = parseDuration(fc.PollInterval, c.PollInterval)
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
}

func defaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".storefront", "store.json")
}

func getenv(k, def string) string {
	if v := os.Getenv(k); strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

func parseDuration(v string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
