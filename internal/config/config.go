// Package config holds the resourcecmd configuration file model.
package config

import (
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/renato0307/resourcecmd/internal/activator"
	"github.com/renato0307/resourcecmd/internal/components"
	"github.com/renato0307/resourcecmd/internal/keyboard"
	"github.com/renato0307/resourcecmd/internal/logging"
	"github.com/renato0307/resourcecmd/internal/ui"
)

// Config represents the application configuration.
type Config struct {
	UI        UIConfig        `yaml:"ui"`
	Keys      KeysConfig      `yaml:"keys"`
	Activator ActivatorConfig `yaml:"activator"`
	Notices   NoticesConfig   `yaml:"notices"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Log       LogConfig       `yaml:"log"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.UI.Validate(); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	if err := c.Keys.Validate(); err != nil {
		return fmt.Errorf("keys: %w", err)
	}
	if err := c.Activator.Validate(); err != nil {
		return fmt.Errorf("activator: %w", err)
	}
	if err := c.Notices.Validate(); err != nil {
		return fmt.Errorf("notices: %w", err)
	}
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}

// UIConfig holds look and feel settings.
type UIConfig struct {
	Theme string `yaml:"theme"`
}

// Validate validates the UI configuration.
func (c *UIConfig) Validate() error {
	themes := make([]any, 0)
	for _, name := range ui.AvailableThemes() {
		themes = append(themes, name)
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.Theme, validation.Required, validation.In(themes...)),
	)
}

// KeysConfig overrides the default chords. Empty values keep the default.
type KeysConfig struct {
	Palette       string `yaml:"palette"`
	ResourceChord string `yaml:"resource_chord"`
	Quit          string `yaml:"quit"`
}

// Validate validates the keys configuration.
func (c *KeysConfig) Validate() error {
	keys := c.Keys()
	if keys.PaletteActivate == keys.ResourceChord {
		return fmt.Errorf("palette and resource_chord are both %q", keys.ResourceChord)
	}
	if keys.Quit == keys.ResourceChord || keys.Quit == keys.PaletteActivate {
		return fmt.Errorf("quit chord %q is already bound", keys.Quit)
	}
	return nil
}

// Keys returns the default key configuration with the overrides applied.
func (c *KeysConfig) Keys() *keyboard.Keys {
	return keyboard.Default().Merge(keyboard.Keys{
		PaletteActivate: c.Palette,
		ResourceChord:   c.ResourceChord,
		Quit:            c.Quit,
	})
}

// ActivatorConfig holds two-step activation settings.
type ActivatorConfig struct {
	Timeout time.Duration `yaml:"timeout"`
}

// Validate validates the activator configuration.
func (c *ActivatorConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Timeout, validation.Required, validation.Min(100*time.Millisecond), validation.Max(time.Minute)),
	)
}

// NoticesConfig holds transient notice settings.
type NoticesConfig struct {
	Duration time.Duration `yaml:"duration"`
}

// Validate validates the notices configuration.
func (c *NoticesConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Duration, validation.Required, validation.Min(500*time.Millisecond)),
	)
}

// CatalogConfig points at an optional resource catalog file. An empty path
// uses the built-in catalog.
type CatalogConfig struct {
	Path string `yaml:"path"`
}

// LogConfig holds log output settings.
type LogConfig struct {
	File       string `yaml:"file"`
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

// Validate validates the log configuration.
func (c *LogConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Level, validation.Required, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.Format, validation.Required, validation.In("text", "json")),
		validation.Field(&c.MaxSizeMB, validation.Min(1)),
		validation.Field(&c.MaxBackups, validation.Min(0)),
	)
}

// Logging converts the log section to a logging.Config.
func (c *LogConfig) Logging() (logging.Config, error) {
	level, err := logging.ParseLevel(c.Level)
	if err != nil {
		return logging.Config{}, err
	}
	format, err := logging.ParseFormat(c.Format)
	if err != nil {
		return logging.Config{}, err
	}
	return logging.Config{
		FilePath:   c.File,
		Level:      level,
		Format:     format,
		MaxSizeMB:  c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
	}, nil
}

// Default returns a new Config with sensible default values.
func Default() *Config {
	keys := keyboard.Default()
	return &Config{
		UI: UIConfig{
			Theme: "charm",
		},
		Keys: KeysConfig{
			Palette:       keys.PaletteActivate,
			ResourceChord: keys.ResourceChord,
			Quit:          keys.Quit,
		},
		Activator: ActivatorConfig{
			Timeout: activator.DefaultTimeout,
		},
		Notices: NoticesConfig{
			Duration: components.NoticeDisplayDuration,
		},
		Log: LogConfig{
			Level:      "info",
			Format:     "text",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}
