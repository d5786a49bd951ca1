package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds CLI settings loaded from the optional config file at
// $XDG_CONFIG_HOME/vpic/config.toml (or ~/.config/vpic/config.toml).
// Command-line flags override everything here.
type Config struct {
	// BaseURL points at an alternative vPIC instance.
	BaseURL string `toml:"base_url"`
	// TimeoutSeconds is the per-request timeout.
	TimeoutSeconds int `toml:"timeout_seconds"`
	// UserAgent overrides the User-Agent header.
	UserAgent string `toml:"user_agent"`
	// RawNames disables field-name normalization.
	RawNames bool `toml:"raw_names"`

	Cache CacheConfig `toml:"cache"`
}

// CacheConfig selects a response cache backend.
type CacheConfig struct {
	// Backend is "file", "redis" or "" (no caching).
	Backend string `toml:"backend"`
	// TTLHours is how long entries stay fresh. Zero means no expiry.
	TTLHours int `toml:"ttl_hours"`
	// Dir overrides the file backend's directory.
	Dir string `toml:"dir"`
	// RedisAddr is the redis backend's host:port.
	RedisAddr string `toml:"redis_addr"`
}

// configPath returns the config file location, honoring
// XDG_CONFIG_HOME.
func configPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "vpic", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "vpic", "config.toml"), nil
}

// loadConfig reads the config file if it exists. A missing file yields
// the zero config; a malformed file is an error.
func loadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		var err error
		path, err = configPath()
		if err != nil {
			return cfg, err
		}
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// cacheDir returns the file cache directory, honoring the config
// override and XDG_CACHE_HOME.
func cacheDir(cfg CacheConfig) (string, error) {
	if cfg.Dir != "" {
		return cfg.Dir, nil
	}
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, "vpic"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", "vpic"), nil
}
