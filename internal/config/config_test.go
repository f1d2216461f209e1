package config

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/Faultbox/partradar/internal/engine/palette"
	"github.com/Faultbox/partradar/internal/engine/settings"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Test window defaults
	if cfg.Window.Width != 512 {
		t.Errorf("expected width 512, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 512 {
		t.Errorf("expected height 512, got %d", cfg.Window.Height)
	}
	if !cfg.Window.VSync {
		t.Error("expected vsync to be true by default")
	}

	// Test viewer defaults
	if cfg.Viewer != settings.DefaultBase() {
		t.Errorf("expected viewer defaults %+v, got %+v", settings.DefaultBase(), cfg.Viewer)
	}

	// Test logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"negative scale", func(c *Config) { c.Viewer.Scale = -1 }},
		{"no stages", func(c *Config) { c.Demo.Stages = 0 }},
		{"negative boosters", func(c *Config) { c.Demo.Boosters = -2 }},
		{"zero throttle period", func(c *Config) { c.Demo.ThrottlePeriod = 0 }},
		{"unknown level", func(c *Config) { c.Logging.Level = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
viewer:
  spin_speed: fast
  spin_axis: x
  plane: isometric
  margin: large
  rescale: best
  wire_mode: heat
  latency: medium
  show_axes: true

window:
  width: 800
  height: 600
  vsync: false
  fps_limit: 60

logging:
  level: "debug"
  log_file: "radar.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Load config
	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Verify values were loaded
	if cfg.Viewer.SpinSpeed != settings.SpinFast {
		t.Errorf("expected spin speed fast, got %v", cfg.Viewer.SpinSpeed)
	}
	if cfg.Viewer.SpinAxis != settings.AxisX {
		t.Errorf("expected spin axis x, got %v", cfg.Viewer.SpinAxis)
	}
	if cfg.Viewer.Plane != settings.PlaneIsometric {
		t.Errorf("expected plane isometric, got %v", cfg.Viewer.Plane)
	}
	if cfg.Viewer.Margin != settings.MarginLarge {
		t.Errorf("expected margin large, got %v", cfg.Viewer.Margin)
	}
	if cfg.Viewer.Rescale != settings.RescaleBest {
		t.Errorf("expected rescale best, got %v", cfg.Viewer.Rescale)
	}
	if cfg.Viewer.WireMode != palette.ModeHeat {
		t.Errorf("expected wire mode heat, got %v", cfg.Viewer.WireMode)
	}
	if cfg.Viewer.Latency != settings.LatencyMedium {
		t.Errorf("expected latency medium, got %v", cfg.Viewer.Latency)
	}
	if !cfg.Viewer.ShowAxes {
		t.Error("expected show_axes to be true")
	}
	// Untouched keys keep their defaults
	if !cfg.Viewer.AutoCenter {
		t.Error("expected auto_center to keep its default")
	}

	if cfg.Window.Width != 800 {
		t.Errorf("expected width 800, got %d", cfg.Window.Width)
	}
	if cfg.Window.VSync {
		t.Error("expected vsync to be false")
	}
	if cfg.Window.FPSLimit != 60 {
		t.Errorf("expected fps limit 60, got %d", cfg.Window.FPSLimit)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "radar.log" {
		t.Errorf("expected log file 'radar.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	tomlContent := `
[viewer]
plane = "top"
ground = "plane"
scale = 12.5

[demo]
stages = 5
`

	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Viewer.Plane != settings.PlaneTop {
		t.Errorf("expected plane top, got %v", cfg.Viewer.Plane)
	}
	if cfg.Viewer.Ground != settings.GroundPlane {
		t.Errorf("expected ground plane, got %v", cfg.Viewer.Ground)
	}
	if cfg.Viewer.Scale != 12.5 {
		t.Errorf("expected scale 12.5, got %v", cfg.Viewer.Scale)
	}
	if cfg.Demo.Stages != 5 {
		t.Errorf("expected 5 stages, got %d", cfg.Demo.Stages)
	}
	if cfg.Demo.Boosters != 2 {
		t.Errorf("expected boosters to keep default 2, got %d", cfg.Demo.Boosters)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"bad yaml", "invalid.yaml", "window:\n  width: not a number\n  invalid syntax here\n"},
		{"bad enum", "enum.yaml", "viewer:\n  plane: sideways\n"},
		{"bad toml", "invalid.toml", "[window\nwidth = 3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(configPath, []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to write test config: %v", err)
			}

			cfg := Default()
			if err := loadFromFile(cfg, configPath); err == nil {
				t.Error("expected error loading invalid config, got nil")
			}
		})
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	// Just verify it returns a non-empty path
	// Actual path depends on OS
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}

	// Verify path is absolute
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	// Save current directory
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	// Keep the user's real config out of the search
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	// Create temp directory and change to it
	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	// No config file exists - should return empty
	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	// A toml file is found as well
	tomlPath := filepath.Join(tmpDir, "config.toml")
	if err := os.WriteFile(tomlPath, []byte("[window]\nwidth = 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}
	if path = findConfigFile(); filepath.Base(path) != "config.toml" {
		t.Errorf("expected to find config.toml, got %q", path)
	}

	// yaml wins when both exist
	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("window:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}
	if path = findConfigFile(); filepath.Base(path) != "config.yaml" {
		t.Errorf("expected to find config.yaml, got %q", path)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
		wantErr  bool
	}{
		{
			name: "debug flag",
			setup: func() {
				*flagDebug = true
			},
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() {
				*flagDebug = false
			},
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 1024
				*flagHeight = 768
			},
			verify: func(cfg *Config) {
				if cfg.Window.Width != 1024 {
					t.Errorf("expected width 1024, got %d", cfg.Window.Width)
				}
				if cfg.Window.Height != 768 {
					t.Errorf("expected height 768, got %d", cfg.Window.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name: "latency flag",
			setup: func() {
				*flagLatency = "veryhigh"
			},
			verify: func(cfg *Config) {
				if cfg.Viewer.Latency != settings.LatencyVeryHigh {
					t.Errorf("expected latency veryhigh, got %v", cfg.Viewer.Latency)
				}
			},
			teardown: func() {
				*flagLatency = ""
			},
		},
		{
			name: "plane flag",
			setup: func() {
				*flagPlane = "side"
			},
			verify: func(cfg *Config) {
				if cfg.Viewer.Plane != settings.PlaneSide {
					t.Errorf("expected plane side, got %v", cfg.Viewer.Plane)
				}
			},
			teardown: func() {
				*flagPlane = ""
			},
		},
		{
			name: "bad plane flag",
			setup: func() {
				*flagPlane = "diagonal"
			},
			verify:   func(*Config) {},
			teardown: func() { *flagPlane = "" },
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			tt.setup()
			defer tt.teardown()

			// Apply flags to default config
			cfg := Default()
			err := applyFlags(cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("applyFlags error = %v, wantErr %v", err, tt.wantErr)
			}

			// Verify
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	// Create temporary config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1600
  height: 900
viewer:
  plane: top
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set flag to override config file
	*flagConfig = configPath
	*flagWidth = 1920
	*flagPlane = "ground"
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
		*flagPlane = ""
	}()

	// Load config
	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width should be from flag (1920), not file (1600)
	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}

	// Height should be from file (900) since no flag override
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}

	if cfg.Viewer.Plane != settings.PlaneGround {
		t.Errorf("expected plane ground from flag, got %v", cfg.Viewer.Plane)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	for _, name := range []string{"out.yaml", "out.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)

			cfg := Default()
			cfg.Viewer.Plane = settings.PlaneIsometric
			cfg.Viewer.FillMode = palette.ModeFuel
			cfg.Window.Width = 640
			if err := cfg.SaveTo(path); err != nil {
				t.Fatalf("failed to save config: %v", err)
			}

			got, err := LoadFile(path)
			if err != nil {
				t.Fatalf("failed to reload config: %v", err)
			}
			if *got != *cfg {
				t.Errorf("round trip mismatch:\n got %+v\nwant %+v", *got, *cfg)
			}
		})
	}
}

func TestWatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("window:\n  width: 300\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan *Config, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(c *Config) { changes <- c }, nil)
	}()

	// The watcher starts asynchronously, so keep rewriting until a reload shows up.
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case c := <-changes:
			if c.Window.Width != 800 {
				continue
			}
			cancel()
			if err := <-done; err != nil {
				t.Errorf("Watch returned %v", err)
			}
			return
		case <-tick.C:
			if err := os.WriteFile(path, []byte("window:\n  width: 800\n"), 0644); err != nil {
				t.Fatalf("failed to rewrite config: %v", err)
			}
		case <-deadline:
			t.Fatal("no reload observed")
		}
	}
}

func TestReloadValidatesAfterFlags(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(body), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}
		return path
	}

	*flagWidth = 640
	defer func() { *flagWidth = 0 }()

	// the flag repairs a width the file alone would fail on
	cfg, err := reload(write("zero.yaml", "window:\n  width: 0\n"))
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if cfg.Window.Width != 640 {
		t.Errorf("expected width 640, got %d", cfg.Window.Width)
	}

	// a flagged config is still validated
	if _, err := reload(write("stages.yaml", "demo:\n  stages: 0\n")); err == nil {
		t.Error("expected error for zero stages")
	}
}

func TestOfferKeepsNewest(t *testing.T) {
	ch := make(chan *Config, 1)
	first, second := Default(), Default()
	second.Window.Width = 999

	Offer(ch, first)
	Offer(ch, second)
	if got := <-ch; got != second {
		t.Errorf("expected newest config, got width %d", got.Window.Width)
	}
}

func TestOfferNeverBlocksAgainstReader(t *testing.T) {
	ch := make(chan *Config, 1)
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ch:
			case <-stop:
				return
			}
		}
	}()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10000; i++ {
			Offer(ch, Default())
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Offer blocked while the reader drained the channel")
	}
	close(stop)
	wg.Wait()
}
