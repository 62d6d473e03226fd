package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	wantDir, err := expandPath(defaultDataDir)
	if err != nil {
		t.Fatalf("expandPath(defaultDataDir) returned error: %v", err)
	}
	if cfg.DataDir != wantDir {
		t.Fatalf("DataDir = %q, want %q", cfg.DataDir, wantDir)
	}
	if cfg.QuotaBytes != defaultQuotaBytes {
		t.Fatalf("QuotaBytes = %d, want %d", cfg.QuotaBytes, defaultQuotaBytes)
	}
	if cfg.Throttle() != 250*time.Millisecond {
		t.Fatalf("Throttle = %v, want 250ms", cfg.Throttle())
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
data_dir = "  ~/.matchbook-data  "
quota_bytes = 4096
throttle_ms = 100
user_name = "  Ada  "
user_phone = "+15550009"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.DataDir != filepath.Join(home, ".matchbook-data") {
		t.Fatalf("DataDir = %q, want under HOME %q", cfg.DataDir, home)
	}
	if cfg.QuotaBytes != 4096 {
		t.Fatalf("QuotaBytes = %d, want 4096", cfg.QuotaBytes)
	}
	if cfg.Throttle() != 100*time.Millisecond {
		t.Fatalf("Throttle = %v, want 100ms", cfg.Throttle())
	}
	if cfg.UserName != "Ada" {
		t.Fatalf("UserName = %q, want Ada", cfg.UserName)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("quota_bytes = 4096\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Setenv("MATCHBOOK_QUOTA_BYTES", "8192")
	t.Setenv("MATCHBOOK_USER_NAME", "Grace")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.QuotaBytes != 8192 {
		t.Fatalf("QuotaBytes = %d, want env override 8192", cfg.QuotaBytes)
	}
	if cfg.UserName != "Grace" {
		t.Fatalf("UserName = %q, want env override Grace", cfg.UserName)
	}
}

func TestLoad_RejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("quota_bytes = {{"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load accepted malformed TOML")
	}
}

func TestLoad_NonPositiveValuesFallBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("quota_bytes = -5\nthrottle_ms = 0\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.QuotaBytes != defaultQuotaBytes {
		t.Fatalf("QuotaBytes = %d, want default", cfg.QuotaBytes)
	}
	if cfg.ThrottleMS != defaultThrottleMS {
		t.Fatalf("ThrottleMS = %d, want default", cfg.ThrottleMS)
	}
}
