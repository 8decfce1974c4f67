package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment variable the client reads.
const EnvPrefix = "HN_"

const (
	defaultAPIBase   = "https://hacker-news.firebaseio.com/v0"
	defaultTimeout   = 30 * time.Second
	defaultWrapWidth = 70
	minWrapWidth     = 20
)

// Config holds application-level configuration.
type Config struct {
	APIBase   string        `koanf:"api_base"`   // e.g. "https://hacker-news.firebaseio.com/v0"
	StorePath string        `koanf:"store_path"` // File holding the last listing
	Timeout   time.Duration `koanf:"timeout"`    // Per-request HTTP timeout
	WrapWidth int           `koanf:"wrap_width"` // Comment body width, before indentation
	Prune     bool          `koanf:"prune"`      // Stop fetching comments once the budget is spent
	LogLevel  string        `koanf:"log_level"`
	NoColor   bool          `koanf:"no_color"`
}

// Dir returns the directory holding the config file and the listing store.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %w", err)
	}
	return filepath.Join(base, "hn"), nil
}

// Load reads configuration from defaults, an optional TOML file, and the
// environment, in that order of precedence (later wins).
//
//	HN_API_BASE     API base URL (default: https://hacker-news.firebaseio.com/v0)
//	HN_STORE_PATH   listing store (default: <user config dir>/hn/listing.json)
//	HN_TIMEOUT      request timeout, e.g. "10s" (default: 30s)
//	HN_WRAP_WIDTH   comment wrap width (default: 70)
//	HN_PRUNE        stop fetching comments past the budget (default: false)
//	HN_LOG_LEVEL    zerolog level (default: warn)
//	HN_NO_COLOR     disable styling (default: false)
//
// An explicit path must exist. Without one, <user config dir>/hn/config.toml
// is read when present.
func Load(path string) (Config, error) {
	// The config directory is only needed for defaults; its absence is an
	// error only if no store_path is configured.
	dir, dirErr := Dir()

	defaults := map[string]interface{}{
		"api_base":   defaultAPIBase,
		"timeout":    defaultTimeout.String(),
		"wrap_width": defaultWrapWidth,
		"prune":      false,
		"log_level":  "warn",
		"no_color":   false,
	}
	if dirErr == nil {
		defaults["store_path"] = filepath.Join(dir, "listing.json")
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return Config{}, fmt.Errorf("loading defaults: %w", err)
	}

	if path == "" && dirErr == nil {
		candidate := filepath.Join(dir, "config.toml")
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
		}
	}
	if path != "" {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return Config{}, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return Config{}, fmt.Errorf("loading environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if cfg.StorePath == "" && dirErr != nil {
		return Config{}, fmt.Errorf("no store_path set: %w", dirErr)
	}
	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalize() error {
	parsed, err := url.Parse(c.APIBase)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "https" && parsed.Scheme != "http") {
		return fmt.Errorf("invalid api_base %q: must be an absolute http(s) URL", c.APIBase)
	}
	c.APIBase = strings.TrimRight(parsed.String(), "/")

	if c.StorePath == "" {
		return errors.New("store_path must not be empty")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("invalid timeout %s: must be positive", c.Timeout)
	}
	if c.WrapWidth < minWrapWidth {
		return fmt.Errorf("invalid wrap_width %d: must be at least %d", c.WrapWidth, minWrapWidth)
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	return nil
}
