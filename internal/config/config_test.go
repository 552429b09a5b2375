package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"API_URL", "STORE_PATH", "STORE_BACKEND", "HTTP_TIMEOUT", "POLL_INTERVAL", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIBaseURL != "http://localhost:8080" {
		t.Fatalf("api base url = %q", cfg.APIBaseURL)
	}
	if cfg.StoreBackend != BackendFile {
		t.Fatalf("store backend = %q", cfg.StoreBackend)
	}
	if cfg.HTTPTimeout != 10*time.Second {
		t.Fatalf("http timeout = %v", cfg.HTTPTimeout)
	}
	if cfg.PollInterval != time.Second {
		t.Fatalf("poll interval = %v", cfg.PollInterval)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("log level = %q", cfg.LogLevel)
	}
	if cfg.StorePath == "" {
		t.Fatal("store path is empty")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("API_URL", "https://market.example")
	t.Setenv("STORE_BACKEND", BackendSQLite)
	t.Setenv("HTTP_TIMEOUT", "3s")
	t.Setenv("POLL_INTERVAL", "250ms")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIBaseURL != "https://market.example" {
		t.Fatalf("api base url = %q", cfg.APIBaseURL)
	}
	if cfg.StoreBackend != BackendSQLite {
		t.Fatalf("store backend = %q", cfg.StoreBackend)
	}
	if cfg.HTTPTimeout != 3*time.Second {
		t.Fatalf("http timeout = %v", cfg.HTTPTimeout)
	}
	if cfg.PollInterval != 250*time.Millisecond {
		t.Fatalf("poll interval = %v", cfg.PollInterval)
	}
}

func TestLoadFileOverrides(t *testing.T) {
	t.Setenv("API_URL", "http://from-env:8080")
	t.Setenv("POLL_INTERVAL", "1s")

	path := filepath.Join(t.TempDir(), "storefront.yaml")
	doc := "api_base_url: http://from-file:9090\npoll_interval: 5s\nlog_level: warn\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIBaseURL != "http://from-file:9090" {
		t.Fatalf("file override lost: %q", cfg.APIBaseURL)
	}
	if cfg.PollInterval != 5*time.Second {
		t.Fatalf("poll interval = %v", cfg.PollInterval)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("log level = %q", cfg.LogLevel)
	}
	// Fields the file omits keep their env values.
	if cfg.StoreBackend != BackendFile {
		t.Fatalf("store backend = %q", cfg.StoreBackend)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
			t.Fatal("expected error for a missing config file")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.yaml")
		if err := os.WriteFile(path, []byte("api_base_url: [unclosed"), 0o644); err != nil {
			t.Fatalf("write config: %v", err)
		}
		if _, err := Load(path); err == nil {
			t.Fatal("expected error for malformed yaml")
		}
	})

	t.Run("unknown backend", func(t *testing.T) {
		t.Setenv("STORE_BACKEND", "redis")
		if _, err := Load(""); err == nil {
			t.Fatal("expected error for an unknown backend")
		}
	})

	t.Run("zero poll interval", func(t *testing.T) {
		t.Setenv("STORE_BACKEND", "")
		t.Setenv("POLL_INTERVAL", "0s")
		if _, err := Load(""); err == nil {
			t.Fatal("expected error for a zero poll interval")
		}
	})

	t.Run("negative http timeout", func(t *testing.T) {
		t.Setenv("STORE_BACKEND", "")
		t.Setenv("POLL_INTERVAL", "")
		t.Setenv("HTTP_TIMEOUT", "-1s")
		if _, err := Load(""); err == nil {
			t.Fatal("expected error for a negative http timeout")
		}
	})

	t.Run("bad duration falls back", func(t *testing.T) {
		t.Setenv("STORE_BACKEND", "")
		t.Setenv("HTTP_TIMEOUT", "soon")
		cfg, err := Load("")
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if cfg.HTTPTimeout != 10*time.Second {
			t.Fatalf("http timeout = %v, want default", cfg.HTTPTimeout)
		}
	})
}
