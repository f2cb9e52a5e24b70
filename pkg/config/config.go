// Package config provides optional runtime defaults for the framepipe
// binaries. No configuration is ever required: all pipeline behavior
// is driven by CLI flags, and this file only tunes ambient defaults
// (encode quality, HTTP fetch behavior, the viewer window title).
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable pointing at the
// optional YAML config file. Typically set through .env.
const EnvConfigPath = "FRAMEPIPE_CONFIG"

// Config holds the tunable defaults.
type Config struct {
	// JPEGQuality is the quality used when encoding .jpg/.jpeg outputs (1-100).
	JPEGQuality int `yaml:"jpeg_quality"`

	// HTTPTimeoutSec bounds a single URL fetch in the reader.
	HTTPTimeoutSec int `yaml:"http_timeout_sec"`

	// UserAgent overrides the reader's HTTP User-Agent header.
	UserAgent string `yaml:"user_agent"`

	// WindowTitle is the viewer's base window title.
	WindowTitle string `yaml:"window_title"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		JPEGQuality:    90,
		HTTPTimeoutSec: 30,
		WindowTitle:    "framepipe",
	}
}

// Load returns the defaults, overlaid with the file named by
// FRAMEPIPE_CONFIG when that variable is set. A missing variable is
// not an error; a set variable pointing at an unreadable or invalid
// file is.
func Load() (Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads a YAML config file over the defaults.
func LoadFile(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.JPEGQuality <= 0 || cfg.JPEGQuality > 100 {
		cfg.JPEGQuality = Default().JPEGQuality
	}
	if cfg.HTTPTimeoutSec <= 0 {
		cfg.HTTPTimeoutSec = Default().HTTPTimeoutSec
	}
	if cfg.WindowTitle == "" {
		cfg.WindowTitle = Default().WindowTitle
	}
	return cfg, nil
}

// HTTPTimeout returns the fetch timeout as a duration.
func (c Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSec) * time.Second
}
