package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gobwas/glob"
	"github.com/sirupsen/logrus"

	"tracklist/internal/domain"
)

const (
	DefaultDesignDir = "~/.local/share/tracklist/designs"
	DefaultIndexPath = "~/.cache/tracklist/index.db"
	DefaultPort      = 8088
)

// Environment variables read by FromEnv.
const (
	EnvConfig    = "TRACKLIST_CONFIG"
	EnvDesignDir = "TRACKLIST_DESIGN_DIR"
	EnvManager   = "TRACKLIST_MANAGER"
)

// Config is the tracklist configuration file.
type Config struct {
	Designs DesignsConfig `yaml:"designs"`
	Index   IndexConfig   `yaml:"index"`
	Log     LogConfig     `yaml:"log"`
	HTTP    HTTPConfig    `yaml:"http"`
	// Units is "metric" or "imperial".
	Units string `yaml:"units"`
	// Manager starts the list in manager mode (no build-custom row).
	Manager bool `yaml:"manager"`
	// RideTypes overrides the sort category of ride types, keyed by ride
	// type number.
	RideTypes map[int]string `yaml:"ride_types"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Designs.Validate(); err != nil {
		return fmt.Errorf("designs: %w", err)
	}
	if err := c.Index.Validate(); err != nil {
		return fmt.Errorf("index: %w", err)
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := c.HTTP.Validate(); err != nil {
		return fmt.Errorf("http: %w", err)
	}
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Units, validation.Required, validation.In("metric", "imperial")),
	); err != nil {
		return err
	}
	for rt, name := range c.RideTypes {
		if rt < 0 || rt > 0xFF {
			return fmt.Errorf("ride_types: ride type %d out of range", rt)
		}
		if _, err := domain.ParseSortCategory(name); err != nil {
			return fmt.Errorf("ride_types: %w", err)
		}
	}
	return nil
}

// MeasurementFormat returns the configured units.
func (c *Config) MeasurementFormat() domain.MeasurementFormat {
	f, err := domain.ParseMeasurementFormat(c.Units)
	if err != nil {
		return domain.Metric
	}
	return f
}

// RideTypeTable returns the built-in ride types with the configured
// category overrides applied.
func (c *Config) RideTypeTable() domain.RideTypeTable {
	table := domain.DefaultRideTypes()
	for rt, name := range c.RideTypes {
		cat, err := domain.ParseSortCategory(name)
		if err != nil {
			continue
		}
		info := table.Lookup(domain.RideType(rt))
		info.Category = cat
		table[domain.RideType(rt)] = info
	}
	return table
}

// DesignsConfig holds the design directories and file name patterns.
type DesignsConfig struct {
	Dirs     []string `yaml:"dirs"`
	Patterns []string `yaml:"patterns"`
}

// Validate validates the designs configuration.
func (c *DesignsConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Dirs, validation.Required, validation.Each(validation.Required)),
		validation.Field(&c.Patterns, validation.Each(validation.By(compiles))),
	)
}

func compiles(value any) error {
	p, _ := value.(string)
	if _, err := glob.Compile(p); err != nil {
		return fmt.Errorf("invalid pattern %q", p)
	}
	return nil
}

// IndexConfig holds the SQLite catalogue index settings.
type IndexConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Validate validates the index configuration.
func (c *IndexConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.When(c.Enabled, validation.Required)),
	)
}

// LogConfig holds logging settings. An empty File means stderr.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
	JSON  bool   `yaml:"json"`
}

// Validate validates the log configuration.
func (c *LogConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Level, validation.Required, validation.By(func(value any) error {
			_, err := logrus.ParseLevel(value.(string))
			return err
		})),
	)
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Port int `yaml:"port"`
}

// Address returns the HTTP listen address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the HTTP configuration.
func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Designs: DesignsConfig{Dirs: []string{DefaultDesignDir}},
		Index:   IndexConfig{Path: DefaultIndexPath},
		Log:     LogConfig{Level: "info"},
		HTTP:    HTTPConfig{Port: DefaultPort},
		Units:   "metric",
	}
}

// DefaultConfigPath returns the config file path used when TRACKLIST_CONFIG
// is unset.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "tracklist.yaml"
	}
	return filepath.Join(dir, "tracklist", "config.yaml")
}

// FromEnv builds the configuration: defaults, then the config file named by
// TRACKLIST_CONFIG (or the default path when it exists), then the
// TRACKLIST_DESIGN_DIR and TRACKLIST_MANAGER overrides.
func FromEnv() (*Config, error) {
	cfg := NewDefaultConfig()

	path := os.Getenv(EnvConfig)
	if path == "" {
		if p := DefaultConfigPath(); fileExists(p) {
			path = p
		}
	}
	if path != "" {
		if err := Load(path, cfg); err != nil {
			return nil, err
		}
	}

	if dir := os.Getenv(EnvDesignDir); dir != "" {
		cfg.Designs.Dirs = filepath.SplitList(dir)
	}
	if v := os.Getenv(EnvManager); v != "" {
		manager, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvManager, err)
		}
		cfg.Manager = manager
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
