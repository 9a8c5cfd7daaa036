// Package config loads and watches editcore's TOML configuration.
package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrNotFound indicates the configuration file doesn't exist.
	ErrNotFound = errors.New("config file not found")

	// ErrInvalidValue indicates a setting holds an unsupported value.
	ErrInvalidValue = errors.New("invalid config value")
)

// Config is the root configuration. Missing sections and fields keep
// their defaults, so a config file only needs the settings it changes.
type Config struct {
	// LiveReload reloads the configuration when the file changes.
	LiveReload bool `toml:"live_reload"`

	Log    LogConfig    `toml:"log"`
	Keymap KeymapConfig `toml:"keymap"`
	UI     UIConfig     `toml:"ui"`
}

// LogConfig controls logging output.
type LogConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string `toml:"level"`

	// File is the log output path. Empty disables logging, since
	// stderr is not usable while the terminal UI is active.
	File string `toml:"file"`
}

// KeymapConfig holds user key bindings layered over the defaults.
type KeymapConfig struct {
	// Bindings maps key specifications to action names,
	// e.g. "Ctrl+I" = "editor.indent".
	Bindings map[string]string `toml:"bindings"`
}

// UIConfig controls the terminal display.
type UIConfig struct {
	// StatusLine shows the status line at the bottom.
	StatusLine bool `toml:"status_line"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		LiveReload: true,
		Log: LogConfig{
			Level: "info",
		},
		Keymap: KeymapConfig{
			Bindings: map[string]string{},
		},
		UI: UIConfig{
			StatusLine: true,
		},
	}
}

// validLogLevels are the accepted log.level values.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks setting values. Key bindings are validated when they
// are applied to a keymap, not here, so the config package stays free
// of input dependencies.
func (c *Config) Validate() error {
	if !validLogLevels[c.Log.Level] {
		return fmt.Errorf("%w: log.level %q", ErrInvalidValue, c.Log.Level)
	}
	return nil
}
