package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tracklist/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestNewDefaultConfig_Valid(t *testing.T) {
	if err := NewDefaultConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestLoad_ExpandsEnv(t *testing.T) {
	t.Setenv("DESIGN_HOME", "/srv/designs")
	path := writeConfig(t, `
designs:
  dirs: ["${DESIGN_HOME}/rct2"]
units: imperial
http:
  port: 9000
`)

	cfg := NewDefaultConfig()
	if err := Load(path, cfg); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Designs.Dirs[0] != "/srv/designs/rct2" {
		t.Errorf("dir = %q, want expanded env var", cfg.Designs.Dirs[0])
	}
	if cfg.MeasurementFormat() != domain.Imperial {
		t.Error("expected imperial units")
	}
	if cfg.HTTP.Address() != ":9000" {
		t.Errorf("Address = %q", cfg.HTTP.Address())
	}
	if cfg.Log.Level != "info" {
		t.Errorf("absent fields should keep defaults, got level %q", cfg.Log.Level)
	}
}

func TestLoad_Errors(t *testing.T) {
	if err := Load(filepath.Join(t.TempDir(), "missing.yaml"), NewDefaultConfig()); err == nil {
		t.Error("expected error for missing file")
	}

	path := writeConfig(t, "designs: [")
	if err := Load(path, NewDefaultConfig()); err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("expected parse error, got %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"no dirs", func(c *Config) { c.Designs.Dirs = nil }, "dirs"},
		{"bad pattern", func(c *Config) { c.Designs.Patterns = []string{"[abc"} }, "invalid pattern"},
		{"bad units", func(c *Config) { c.Units = "furlongs" }, "units"},
		{"bad port", func(c *Config) { c.HTTP.Port = 70000 }, "port"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "level"},
		{"index without path", func(c *Config) { c.Index = IndexConfig{Enabled: true} }, "path"},
		{"unknown category", func(c *Config) { c.RideTypes = map[int]string{52: "teacups"} }, "unknown sort category"},
		{"ride type out of range", func(c *Config) { c.RideTypes = map[int]string{300: "flat"} }, "out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
			}
		})
	}
}

func TestConfig_RideTypeTable(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.RideTypes = map[int]string{52: "flat", 200: "water"}

	table := cfg.RideTypeTable()
	if got := table.Lookup(52); got.Category != domain.CategoryFlat || got.Name != "Wooden Roller Coaster" {
		t.Errorf("override lost name or category: %+v", got)
	}
	if got := table.Lookup(200).Category; got != domain.CategoryWater {
		t.Errorf("unknown ride type override = %v, want water", got)
	}
	if domain.DefaultRideTypes().Lookup(52).Category != domain.CategoryRollerCoaster {
		t.Error("default table was modified")
	}
}

func TestFromEnv(t *testing.T) {
	path := writeConfig(t, "units: imperial\n")
	t.Setenv(EnvConfig, path)
	t.Setenv(EnvDesignDir, "/a"+string(os.PathListSeparator)+"/b")
	t.Setenv(EnvManager, "true")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}
	if len(cfg.Designs.Dirs) != 2 || cfg.Designs.Dirs[1] != "/b" {
		t.Errorf("dirs = %v", cfg.Designs.Dirs)
	}
	if !cfg.Manager {
		t.Error("expected manager mode")
	}
	if cfg.Units != "imperial" {
		t.Errorf("units = %q", cfg.Units)
	}
}

func TestFromEnv_BadManager(t *testing.T) {
	t.Setenv(EnvConfig, writeConfig(t, "units: metric\n"))
	t.Setenv(EnvManager, "sometimes")

	if _, err := FromEnv(); err == nil {
		t.Error("expected error for invalid TRACKLIST_MANAGER")
	}
}
