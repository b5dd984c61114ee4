package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	ListenAddr      string `mapstructure:"listen_addr"`
	ReadTimeoutSec  int    `mapstructure:"read_timeout_sec"`
	WriteTimeoutSec int    `mapstructure:"write_timeout_sec"`
	IdleTimeoutSec  int    `mapstructure:"idle_timeout_sec"`
	RateLimitBurst  int    `mapstructure:"rate_limit_burst"`
	RateLimitWindow int    `mapstructure:"rate_limit_window_sec"`
	RedisAddr       string `mapstructure:"redis_addr"`
	CacheEnabled    bool   `mapstructure:"cache_enabled"`
	CacheTTLSec     int    `mapstructure:"cache_ttl_sec"`
	DevelopmentLogs bool   `mapstructure:"development_logs"`
}

const (
	DefaultListenAddr      = ":8080"
	DefaultReadTimeoutSec  = 15
	DefaultWriteTimeoutSec = 15
	DefaultIdleTimeoutSec  = 60
	DefaultRateLimitBurst  = 5
	DefaultRateLimitWindow = 60
	DefaultRedisAddr       = "localhost:6379"
	DefaultCacheTTLSec     = 0 // no expiry
)

// LoadConfig reads the service configuration from the optional file at
// path, applying defaults and SIP_-prefixed environment overrides.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	defaults := map[string]interface{}{
		"listen_addr":           DefaultListenAddr,
		"read_timeout_sec":      DefaultReadTimeoutSec,
		"write_timeout_sec":     DefaultWriteTimeoutSec,
		"idle_timeout_sec":      DefaultIdleTimeoutSec,
		"rate_limit_burst":      DefaultRateLimitBurst,
		"rate_limit_window_sec": DefaultRateLimitWindow,
		"redis_addr":            DefaultRedisAddr,
		"cache_enabled":         false,
		"cache_ttl_sec":         DefaultCacheTTLSec,
		"development_logs":      false,
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.AutomaticEnv()
	v.SetEnvPrefix("SIP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, validateConfig(&cfg)
}

func validateConfig(cfg *Config) error {
	if cfg.ListenAddr == "" {
		return errors.New("missing listen_addr in configuration")
	}
	if cfg.ReadTimeoutSec <= 0 || cfg.WriteTimeoutSec <= 0 || cfg.IdleTimeoutSec <= 0 {
		return errors.New("server timeouts must be positive")
	}
	if cfg.RateLimitBurst <= 0 {
		return errors.New("invalid rate_limit_burst")
	}
	if cfg.RateLimitWindow <= 0 {
		return errors.New("invalid rate_limit_window_sec")
	}
	if cfg.CacheTTLSec < 0 {
		return errors.New("invalid cache_ttl_sec")
	}
	if cfg.CacheEnabled && cfg.RedisAddr == "" {
		return errors.New("cache_enabled requires redis_addr")
	}
	return nil
}
