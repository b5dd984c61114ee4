package config

import (
	"os"
	"path/filepath"
	"testing"
)

var validConfigYAML = `listen_addr: ":9090"
rate_limit_burst: 10
rate_limit_window_sec: 30
cache_enabled: true
redis_addr: "localhost:6379"
cache_ttl_sec: 300
development_logs: true
`

var invalidConfigYAML = `listen_addr: ""
rate_limit_burst: -1
`

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return configPath
}

func TestLoadConfig_Defaults(t *testing.T) {

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ListenAddr != DefaultListenAddr {
		t.Errorf("expected default listen addr %q, got %q", DefaultListenAddr, cfg.ListenAddr)
	}
	if cfg.RateLimitBurst != DefaultRateLimitBurst {
		t.Errorf("expected default burst %d, got %d", DefaultRateLimitBurst, cfg.RateLimitBurst)
	}
	if cfg.CacheEnabled {
		t.Error("cache should be disabled by default")
	}
}

func TestLoadConfig_FromFile(t *testing.T) {

	configPath := writeTestConfig(t, validConfigYAML)

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.ListenAddr != ":9090" {
		t.Errorf("expected listen addr :9090, got %q", cfg.ListenAddr)
	}
	if cfg.RateLimitBurst != 10 {
		t.Errorf("expected burst 10, got %d", cfg.RateLimitBurst)
	}
	if !cfg.CacheEnabled {
		t.Error("expected cache enabled")
	}
	if cfg.CacheTTLSec != 300 {
		t.Errorf("expected cache ttl 300, got %d", cfg.CacheTTLSec)
	}

	// defaults still fill unset keys
	if cfg.ReadTimeoutSec != DefaultReadTimeoutSec {
		t.Errorf("expected default read timeout, got %d", cfg.ReadTimeoutSec)
	}
}

func TestLoadConfig_InvalidValues(t *testing.T) {

	configPath := writeTestConfig(t, invalidConfigYAML)

	if _, err := LoadConfig(configPath); err == nil {
		t.Error("expected error for invalid configuration")
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}
