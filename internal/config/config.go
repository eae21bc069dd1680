// Package config loads winsnap's optional YAML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/winsnap/winsnap/internal/imaging"
	"github.com/winsnap/winsnap/internal/platform"
)

// Config carries the capture defaults that flags fall back to.
type Config struct {
	Threshold int     `yaml:"threshold"`
	Format    string  `yaml:"format"`
	Quality   int     `yaml:"quality"`
	Scale     float64 `yaml:"scale"`
	Method    string  `yaml:"method"`
	OutputDir string  `yaml:"output_dir"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Threshold: 70,
		Format:    imaging.FormatPNG,
		Quality:   85,
		Scale:     1.0,
		Method:    "window",
		OutputDir: "",
	}
}

// DefaultPath returns the per-user config location, or "" when the OS
// provides no user config directory.
func DefaultPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "winsnap", "config.yaml")
}

// Load reads filename over the defaults. A missing file is not an
// error; a malformed or invalid one is.
func Load(filename string) (*Config, error) {
	cfg := Default()
	if filename == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", filename, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", filename, err)
	}
	return cfg, nil
}

// Validate checks that configured values are usable.
func (c *Config) Validate() error {
	if c.Threshold < 0 || c.Threshold > 100 {
		return fmt.Errorf("threshold must be between 0 and 100, got %d", c.Threshold)
	}
	if _, err := imaging.ParseFormat(c.Format); err != nil {
		return err
	}
	if c.Quality < 1 || c.Quality > 100 {
		return fmt.Errorf("quality must be between 1 and 100, got %d", c.Quality)
	}
	if c.Scale <= 0 || c.Scale > 1 {
		return fmt.Errorf("scale must be in (0, 1], got %g", c.Scale)
	}
	if _, err := platform.ParseCaptureMethod(c.Method); err != nil {
		return err
	}
	return nil
}
