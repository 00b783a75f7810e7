package config

import "flag"

var (
	flagConfig          = flag.String("config", "", "Path to config file")
	flagDebug           = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed        = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen      = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth           = flag.Int("width", 0, "Viewport width")
	flagHeight          = flag.Int("height", 0, "Viewport height")
	flagRadius          = flag.Int("radius", 0, "Turning radius")
	flagSpeed           = flag.Float64("speed", 0, "Car speed in units per second")
	flagShowDestination = flag.Bool("show-destination", false, "Draw the destination ghost")
	flagOut             = flag.String("out", "", "Frame export directory")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWindowed {
		cfg.Window.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
		cfg.Export.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
		cfg.Export.Height = *flagHeight
	}
	if *flagRadius > 0 {
		cfg.Vehicle.Radius = *flagRadius
	}
	if *flagSpeed > 0 {
		cfg.Vehicle.Speed = *flagSpeed
	}
	if *flagShowDestination {
		cfg.Vehicle.ShowDestination = true
	}
	if *flagOut != "" {
		cfg.Export.Dir = *flagOut
	}
}
