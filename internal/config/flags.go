package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file (.yaml or .toml)")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagWidth   = flag.Int("width", 0, "Window width")
	flagHeight  = flag.Int("height", 0, "Window height")
	flagLatency = flag.String("latency", "", "Redraw latency: off, low, medium, high, veryhigh")
	flagPlane   = flag.String("plane", "", "Projection plane: front, side, top, isometric, ground, live")
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
func applyFlags(cfg *Config) error {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagLatency != "" {
		if err := cfg.Viewer.Latency.UnmarshalText([]byte(*flagLatency)); err != nil {
			return err
		}
	}
	if *flagPlane != "" {
		if err := cfg.Viewer.Plane.UnmarshalText([]byte(*flagPlane)); err != nil {
			return err
		}
	}
	return nil
}
