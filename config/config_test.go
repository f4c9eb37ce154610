package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "width: 16\nheight: 8\npalette: vga16\npolicy: fit\nlog_level: debug\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{Width: 16, Height: 8, Palette: "vga16", Policy: "fit", LogLevel: "debug"}, cfg)
	assert.Equal(t, "16", cfg.Vars()["width"])
}

func TestLoadNormalizesSizes(t *testing.T) {
	cfg, err := Load(writeConfig(t, "width: 0\nheight: 99\n"))
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Width)
	assert.Equal(t, 10, cfg.Height)
}

func TestLoadInvalid(t *testing.T) {
	_, err := Load(writeConfig(t, "width: [\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "policy: clamp\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "log_level: loud\n"))
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, l)
}
