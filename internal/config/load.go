package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Try to load from file (explicit path takes priority)
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	// Apply CLI flags (highest priority)
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the simulation cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Vehicle.Radius < 1:
		return fmt.Errorf("vehicle.radius must be at least 1, got %d", c.Vehicle.Radius)
	case c.Vehicle.MaxRadius < c.Vehicle.Radius:
		return fmt.Errorf("vehicle.max_radius %d is below vehicle.radius %d", c.Vehicle.MaxRadius, c.Vehicle.Radius)
	case c.Vehicle.Speed <= 0:
		return fmt.Errorf("vehicle.speed must be positive, got %v", c.Vehicle.Speed)
	case c.Vehicle.Length <= 0 || c.Vehicle.Width <= 0:
		return fmt.Errorf("vehicle footprint must be positive, got %dx%d", c.Vehicle.Length, c.Vehicle.Width)
	case c.Export.FPS <= 0:
		return fmt.Errorf("export.fps must be positive, got %d", c.Export.FPS)
	}
	return nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "MovingCar")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "MovingCar")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "movingcar")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "movingcar")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
