// Package config provides configuration management for the satdl downloader.
// It handles loading, validating, and saving application settings. The package
// supports YAML configuration files and provides sensible defaults while
// allowing for customization through configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/wxtools/satdl/pkg/errors"
	"github.com/wxtools/satdl/pkg/fsutil"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Settings Settings `yaml:"settings"`
}

// Settings represents general application settings.
type Settings struct {
	// Repository settings
	RepositoryDir string `yaml:"repository_dir,omitempty"` // Base directory for downloaded products

	// Listing cache settings
	CacheTTL        time.Duration `yaml:"cache_ttl"`
	CacheMaxEntries int           `yaml:"cache_max_entries"`

	// Discovery settings
	TimeTolerance time.Duration `yaml:"time_tolerance"`

	// Network settings
	HTTPTimeout   time.Duration `yaml:"http_timeout"`
	MaxConcurrent int           `yaml:"max_concurrent_downloads"`

	// Output settings
	LogLevel string `yaml:"log_level"` // error, warn, info, debug
}

// Default configuration values.
const (
	// DefaultCacheTTL is the default time-to-live for cached directory listings.
	DefaultCacheTTL = 5 * time.Minute

	// DefaultCacheMaxEntries is the default size bound of the listing cache.
	DefaultCacheMaxEntries = 256

	// DefaultTimeTolerance is the default symmetric time buffer applied to
	// requested windows.
	DefaultTimeTolerance = 60 * time.Second

	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultMaxConcurrent is the default maximum number of concurrent downloads.
	DefaultMaxConcurrent = 4
)

// DefaultConfig returns a configuration populated with default settings.
func DefaultConfig() *Config {
	return &Config{
		Settings: Settings{
			RepositoryDir:   ".",
			CacheTTL:        DefaultCacheTTL,
			CacheMaxEntries: DefaultCacheMaxEntries,
			TimeTolerance:   DefaultTimeTolerance,
			HTTPTimeout:     DefaultHTTPTimeout,
			MaxConcurrent:   DefaultMaxConcurrent,
			LogLevel:        "info",
		},
	}
}

// LoadConfig loads the configuration from the given path, applying defaults
// for unset values and validating the result.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.ErrEmptyConfigPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(errors.ErrConfigParse, err.Error())
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveConfig writes the configuration to the given path in YAML format,
// creating parent directories as needed.
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		return errors.ErrEmptyConfigPath
	}
	if err := fsutil.EnsureDir(filepath.Dir(path)); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to encode config")
	}
	return os.WriteFile(path, data, fsutil.FileModeDefault)
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	s := c.Settings
	if s.CacheTTL < 0 {
		return errors.Wrap(errors.ErrConfigValidation, "cache_ttl must not be negative")
	}
	if s.CacheMaxEntries <= 0 {
		return errors.Wrap(errors.ErrConfigValidation, "cache_max_entries must be positive")
	}
	if s.TimeTolerance < 0 {
		return errors.Wrap(errors.ErrConfigValidation, "time_tolerance must not be negative")
	}
	if s.HTTPTimeout <= 0 {
		return errors.Wrap(errors.ErrConfigValidation, "http_timeout must be positive")
	}
	if s.MaxConcurrent <= 0 {
		return errors.Wrap(errors.ErrConfigValidation,
			fmt.Sprintf("max_concurrent_downloads must be positive, got %d", s.MaxConcurrent))
	}
	return nil
}
