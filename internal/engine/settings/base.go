// Package settings holds the radar's visual toggles and resolves them each
// redraw from the base configuration and an optional override set.
package settings

import "github.com/Faultbox/partradar/internal/engine/palette"

// Base is the user configuration of the radar.
type Base struct {
	SpinSpeed SpinSpeed `yaml:"spin_speed" toml:"spin_speed"`
	SpinAxis  Axis      `yaml:"spin_axis" toml:"spin_axis"`
	Plane     Plane     `yaml:"plane" toml:"plane"`

	// OffsetX/OffsetY and Scale are the starting screen transform; auto
	// centering replaces them at runtime.
	OffsetX int     `yaml:"offset_x" toml:"offset_x"`
	OffsetY int     `yaml:"offset_y" toml:"offset_y"`
	Scale   float32 `yaml:"scale" toml:"scale"`

	AutoCenter    bool    `yaml:"auto_center" toml:"auto_center"`
	Margin        Margin  `yaml:"margin" toml:"margin"`
	CenterOnRootH bool    `yaml:"center_on_root_h" toml:"center_on_root_h"`
	CenterOnRootV bool    `yaml:"center_on_root_v" toml:"center_on_root_v"`
	Rescale       Rescale `yaml:"rescale" toml:"rescale"`

	FillMode palette.Mode `yaml:"fill_mode" toml:"fill_mode"`
	WireMode palette.Mode `yaml:"wire_mode" toml:"wire_mode"`
	BoxMode  palette.Mode `yaml:"box_mode" toml:"box_mode"`
	FillDull bool         `yaml:"fill_dull" toml:"fill_dull"`
	WireDull bool         `yaml:"wire_dull" toml:"wire_dull"`
	BoxDull  bool         `yaml:"box_dull" toml:"box_dull"`

	ShowEngines bool       `yaml:"show_engines" toml:"show_engines"`
	ShowCoM     bool       `yaml:"show_com" toml:"show_com"`
	Ground      GroundMode `yaml:"ground" toml:"ground"`
	ShowAxes    bool       `yaml:"show_axes" toml:"show_axes"`

	Latency       Latency `yaml:"latency" toml:"latency"`
	ScreenVisible bool    `yaml:"screen_visible" toml:"screen_visible"`

	// GroundMaxAltitude hides the ground indicator above this height (m).
	GroundMaxAltitude float64 `yaml:"ground_max_altitude" toml:"ground_max_altitude"`
}

// DefaultBase returns the settings a fresh radar starts with.
func DefaultBase() Base {
	return Base{
		SpinSpeed:         SpinOff,
		SpinAxis:          AxisY,
		Plane:             PlaneFront,
		Scale:             5,
		AutoCenter:        true,
		Margin:            MarginMedium,
		Rescale:           RescaleClose,
		FillMode:          palette.ModeHide,
		WireMode:          palette.ModeStage,
		BoxMode:           palette.ModeHide,
		ShowEngines:       true,
		ShowCoM:           true,
		Ground:            GroundNormal,
		Latency:           LatencyOff,
		ScreenVisible:     true,
		GroundMaxAltitude: 250,
	}
}
