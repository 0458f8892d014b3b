// Package config loads devicecheck.toml.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

// FileName is the config file looked up in the working directory
const FileName = "devicecheck.toml"

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatTOML = "toml"
)

// Config represents the devicecheck.toml configuration file
type Config struct {
	Display DisplayConfig `toml:"display"`
	Preview PreviewConfig `toml:"preview"`
}

type DisplayConfig struct {
	// Title shown above the list
	Title string `toml:"title"`
	// Output format: text, json or toml
	Format string `toml:"format"`
	// Colored section headers in text output
	Color bool `toml:"color"`
}

// PreviewConfig pins the rendered platform instead of detecting it
type PreviewConfig struct {
	// Platform label, e.g. "iPad". Empty means detect.
	Platform string `toml:"platform"`
}

// DefaultConfig returns the configuration used when no file exists
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			Title:  "Device Checker",
			Format: FormatText,
			Color:  true,
		},
	}
}

// Validate checks values that cannot be caught by the TOML decoder
func (c Config) Validate() error {
	switch c.Display.Format {
	case FormatText, FormatJSON, FormatTOML:
		return nil
	default:
		return fmt.Errorf("invalid display format %q (want %s, %s or %s)",
			c.Display.Format, FormatText, FormatJSON, FormatTOML)
	}
}

// Load reads the configuration at path. A missing file yields DefaultConfig.
func Load(afs afero.Fs, path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := afero.ReadFile(afs, path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	} else if err != nil {
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	// Apply defaults for empty values
	defaults := DefaultConfig()
	if cfg.Display.Title == "" {
		cfg.Display.Title = defaults.Display.Title
	}
	if cfg.Display.Format == "" {
		cfg.Display.Format = defaults.Display.Format
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Save writes cfg to path, creating parent directories
func Save(afs afero.Fs, path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := afs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	if err := afero.WriteFile(afs, path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
