package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg != (Config{}) {
		t.Errorf("cfg = %+v, want zero config for missing file", cfg)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
base_url = "https://vpic.example.com/api/vehicles/"
timeout_seconds = 10
raw_names = true

[cache]
backend = "file"
ttl_hours = 48
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.BaseURL != "https://vpic.example.com/api/vehicles/" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.TimeoutSeconds != 10 {
		t.Errorf("TimeoutSeconds = %d", cfg.TimeoutSeconds)
	}
	if !cfg.RawNames {
		t.Error("RawNames = false, want true")
	}
	if cfg.Cache.Backend != "file" || cfg.Cache.TTLHours != 48 {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("base_url = [broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(path); err == nil {
		t.Error("loadConfig = nil error, want parse error")
	}
}

func TestCacheDir(t *testing.T) {
	if dir, err := cacheDir(CacheConfig{Dir: "/tmp/custom"}); err != nil || dir != "/tmp/custom" {
		t.Errorf("cacheDir = %q, %v; want configured override", dir, err)
	}

	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg")
	if dir, err := cacheDir(CacheConfig{}); err != nil || dir != filepath.Join("/tmp/xdg", "vpic") {
		t.Errorf("cacheDir = %q, %v; want XDG_CACHE_HOME honored", dir, err)
	}
}
