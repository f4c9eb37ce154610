package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"pixgrid/bitmap"
	"pixgrid/grid"

	"gopkg.in/yaml.v3"
)

// Config holds the editor defaults read from the config file.
type Config struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Palette  string `yaml:"palette"`
	Policy   string `yaml:"policy"`
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Width:    grid.DefaultWidth,
		Height:   grid.DefaultHeight,
		Palette:  "default",
		Policy:   bitmap.PolicyReject.String(),
		LogLevel: "info",
	}
}

// Dir returns the directory holding the config file and the editor log.
func Dir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "pixgrid")
}

// Path returns the default config file location.
func Path() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Load reads the configuration at path, or at Path when empty. A missing file
// yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = Path()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("could not read config %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("could not parse config %q: %w", path, err)
	}

	if !grid.ValidSize(cfg.Width, grid.MinSide) {
		cfg.Width = grid.DefaultWidth
	}
	if !grid.ValidSize(grid.MinSide, cfg.Height) {
		cfg.Height = grid.DefaultHeight
	}
	if _, err := bitmap.ParsePolicy(cfg.Policy); err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}

	return cfg, nil
}

// Vars exposes the config as interpolation variables for CLI defaults.
func (c *Config) Vars() map[string]string {
	return map[string]string{
		"width":     strconv.Itoa(c.Width),
		"height":    strconv.Itoa(c.Height),
		"palette":   c.Palette,
		"policy":    c.Policy,
		"log_level": c.LogLevel,
	}
}

// ParseLevel reads a slog level name.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return l, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return l, nil
}
