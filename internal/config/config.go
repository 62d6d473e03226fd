package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the runtime settings for matchbook.
type Config struct {
	DataDir    string `env:"MATCHBOOK_DATA_DIR"`
	QuotaBytes int64  `env:"MATCHBOOK_QUOTA_BYTES"`
	ThrottleMS int    `env:"MATCHBOOK_THROTTLE_MS"`
	UserName   string `env:"MATCHBOOK_USER_NAME"`
	UserPhone  string `env:"MATCHBOOK_USER_PHONE"`
}

const (
	defaultConfigPath = "~/.config/matchbook/config.toml"
	defaultDataDir    = "~/.local/share/matchbook"
	defaultQuotaBytes = 5 << 20
	defaultThrottleMS = 250
)

// Load locates and parses the matchbook config, falling back to
// defaults when the file is missing. Environment variables override
// whatever the file says.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		DataDir:    defaultDataDir,
		QuotaBytes: defaultQuotaBytes,
		ThrottleMS: defaultThrottleMS,
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return finish(cfg)
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		DataDir    string `toml:"data_dir"`
		QuotaBytes int64  `toml:"quota_bytes"`
		ThrottleMS int    `toml:"throttle_ms"`
		UserName   string `toml:"user_name"`
		UserPhone  string `toml:"user_phone"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if dir := strings.TrimSpace(raw.DataDir); dir != "" {
		cfg.DataDir = dir
	}
	if raw.QuotaBytes > 0 {
		cfg.QuotaBytes = raw.QuotaBytes
	}
	if raw.ThrottleMS > 0 {
		cfg.ThrottleMS = raw.ThrottleMS
	}
	cfg.UserName = strings.TrimSpace(raw.UserName)
	cfg.UserPhone = strings.TrimSpace(raw.UserPhone)

	return finish(cfg)
}

// finish applies environment overrides and expands the data dir.
func finish(cfg Config) (Config, error) {
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.DataDir = mustExpand(cfg.DataDir)
	if cfg.QuotaBytes <= 0 {
		cfg.QuotaBytes = defaultQuotaBytes
	}
	if cfg.ThrottleMS <= 0 {
		cfg.ThrottleMS = defaultThrottleMS
	}
	return cfg, nil
}

// Throttle returns the resize throttle window.
func (c Config) Throttle() time.Duration {
	return time.Duration(c.ThrottleMS) * time.Millisecond
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
