package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jetplot/jetplot/pkg/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[figure]
width = 800

[style]
breathe = true
tick_direction = "in"
palette = "dark"

[cache]
ttl = "36h"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 800.0, cfg.Figure.Width)
	assert.Equal(t, Default().Figure.Height, cfg.Figure.Height)
	assert.True(t, cfg.Style.Breathe)
	assert.Equal(t, "in", cfg.Style.TickDirection)
	assert.Equal(t, "dark", cfg.Style.Palette)
	assert.Equal(t, 36*time.Hour, cfg.Cache.TTL.Duration)
	assert.True(t, cfg.Cache.Enabled)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"syntax", "[figure\nwidth = 1"},
		{"unknown key", "[style]\nfont = 3"},
		{"bad width", "[figure]\nwidth = -1"},
		{"bad color", "[style]\ncolor = \"blue\""},
		{"bad direction", "[style]\ntick_direction = \"up\""},
		{"bad palette", "[style]\npalette = \"plaid\""},
		{"bad ttl", "[cache]\nttl = \"soon\""},
		{"zero font", "[style]\nfont_size = 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfig), "got %v", err)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Style.Color = "#112233"
	cfg.Cache.TTL = Duration{90 * time.Minute}

	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	require.NoError(t, cfg.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestPathXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	p, err := Path()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "jetplot", "config.toml"), p)
}

func TestPathHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	p, err := Path()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "jetplot", "config.toml"), p)
}
