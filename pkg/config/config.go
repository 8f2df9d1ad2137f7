// Package config loads jetplot's TOML configuration.
//
// The file lives at $XDG_CONFIG_HOME/jetplot/config.toml (falling back to
// ~/.config/jetplot/config.toml). Every key is optional; a missing file
// yields [Default]. Example:
//
//	[figure]
//	width = 800
//	height = 600
//
//	[style]
//	font_size = 18
//	color = "#444444"
//	breathe = true
//	tick_direction = "out"
//	no_spines = false
//	palette = "rainbow"
//
//	[cache]
//	enabled = true
//	ttl = "168h"
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/jetplot/jetplot/pkg/chart"
	"github.com/jetplot/jetplot/pkg/colors"
	"github.com/jetplot/jetplot/pkg/errors"
)

const appName = "jetplot"

// Config is the decoded configuration file.
type Config struct {
	Figure Figure `toml:"figure"`
	Style  Style  `toml:"style"`
	Cache  Cache  `toml:"cache"`
}

// Figure holds the default output size in pixels.
type Figure struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// Style holds the styling applied by `jetplot plot` unless overridden by
// flags.
type Style struct {
	FontSize      float64 `toml:"font_size"`
	Color         string  `toml:"color"`
	Breathe       bool    `toml:"breathe"`
	TickDirection string  `toml:"tick_direction"`
	NoSpines      bool    `toml:"no_spines"`
	Palette       string  `toml:"palette"`
}

// Cache controls the rendered-artifact cache.
type Cache struct {
	Enabled bool     `toml:"enabled"`
	TTL     Duration `toml:"ttl"`
}

// Duration is a time.Duration written as a Go duration string ("36h").
type Duration struct{ time.Duration }

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText formats the duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Figure: Figure{Width: chart.DefaultWidth, Height: chart.DefaultHeight},
		Style: Style{
			FontSize:      chart.DefaultFontSize,
			Color:         chart.DefaultAxisColor,
			TickDirection: string(chart.TickOut),
			Palette:       "rainbow",
		},
		Cache: Cache{Enabled: true, TTL: Duration{7 * 24 * time.Hour}},
	}
}

// Dir returns the configuration directory.
func Dir() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// Path returns the default configuration file path.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads path over the defaults. A missing file is not an error.
// Unknown keys and invalid values are INVALID_CONFIG errors.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := cfg.decode(data, path); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode(data []byte, path string) error {
	md, err := toml.Decode(string(data), c)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return c.Validate()
}

// Validate checks value ranges and names.
func (c *Config) Validate() error {
	if c.Figure.Width <= 0 || c.Figure.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "figure size must be positive, got %gx%g", c.Figure.Width, c.Figure.Height)
	}
	if c.Style.FontSize <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "style.font_size must be positive, got %g", c.Style.FontSize)
	}
	if err := errors.ValidateColor(c.Style.Color); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "style.color")
	}
	if _, err := chart.ParseTickDirection(c.Style.TickDirection); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "style.tick_direction")
	}
	if _, ok := colors.Group(c.Style.Palette); !ok {
		return errors.New(errors.ErrCodeInvalidConfig, "style.palette: unknown palette %q", c.Style.Palette)
	}
	if c.Cache.TTL.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.ttl must not be negative")
	}
	return nil
}

// Encode returns c as TOML.
func (c *Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes c to path, creating parent directories.
func (c *Config) Save(path string) error {
	data, err := c.Encode()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
