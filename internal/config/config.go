// Package config handles configuration loading and management.
package config

import (
	"runtime"
	"time"

	"github.com/Faultbox/movingcar/internal/path"
	"github.com/Faultbox/movingcar/internal/vehicle"
)

// Config holds all settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Vehicle VehicleConfig `yaml:"vehicle"`
	Logging LoggingConfig `yaml:"logging"`
	Export  ExportConfig  `yaml:"export"`
}

// WindowConfig holds display settings for the interactive demo.
type WindowConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// VehicleConfig holds the car and planning settings.
type VehicleConfig struct {
	Radius          int     `yaml:"radius"`     // turning radius
	MaxRadius       int     `yaml:"max_radius"` // upper end of the radius control
	Speed           float64 `yaml:"speed"`      // units per second
	Length          int     `yaml:"length"`
	Width           int     `yaml:"width"`
	ShowDestination bool    `yaml:"show_destination"`
	SampleStep      float64 `yaml:"sample_step"` // planner sampling distance
}

// Footprint returns the configured car size.
func (v VehicleConfig) Footprint() vehicle.Footprint {
	return vehicle.Footprint{Length: v.Length, Width: v.Width}
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// ExportConfig holds headless frame export settings.
type ExportConfig struct {
	Dir     string        `yaml:"dir"`
	FPS     int           `yaml:"fps"`
	Workers int           `yaml:"workers"`
	Width   int           `yaml:"width"`
	Height  int           `yaml:"height"`
	Tail    time.Duration `yaml:"tail"` // extra time recorded after the last run ends
	Taps    []Tap         `yaml:"taps"`
}

// Tap is a scripted destination request.
type Tap struct {
	At time.Duration `yaml:"at"`
	X  float64       `yaml:"x"`
	Y  float64       `yaml:"y"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:      720,
			Height:     1280,
			Fullscreen: false,
			VSync:      true,
		},
		Vehicle: VehicleConfig{
			Radius:          200,
			MaxRadius:       600,
			Speed:           vehicle.DefaultSpeed,
			Length:          vehicle.DefaultLength,
			Width:           vehicle.DefaultWidth,
			ShowDestination: false,
			SampleStep:      path.DefaultStep,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Export: ExportConfig{
			Dir:     "frames",
			FPS:     30,
			Workers: runtime.NumCPU(),
			Width:   720,
			Height:  1280,
			Tail:    time.Second,
		},
	}
}
