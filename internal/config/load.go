package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppName names the config directory.
const AppName = "resourcecmd"

// DefaultPath returns the config file location under the user config
// directory, or "" when that directory is unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, "config.yaml")
}

// Load reads a YAML config file over the defaults, expanding environment
// variables, and validates the result.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filename, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", filename, err)
	}
	return cfg, nil
}

// Parse decodes YAML config data over the defaults and validates it.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault loads filename. A missing file is only tolerated when
// filename is the default location, in which case Default() is returned.
func LoadOrDefault(filename string) (*Config, error) {
	if filename == "" {
		return Default(), nil
	}

	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		if filename == DefaultPath() {
			return Default(), nil
		}
		return nil, fmt.Errorf("config file not found: %s", filename)
	}
	return Load(filename)
}
