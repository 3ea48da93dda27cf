package aspen

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultDragThresholdPx     = 4.0
	defaultHoldTimeMs          = 500
	defaultWheelZoomStep       = 1.1
	defaultDoubleClickWindowMs = 400
	defaultFocusZoom           = 2.0
	defaultFocusDurationMs     = 300.0
)

// Config holds gesture thresholds and camera-animation tuning. It is supplied
// once at engine construction and never mutated by the engine. Values are not
// validated: a zero DragThresholdPx makes every move a drag, exactly as the
// classification formulas dictate.
type Config struct {
	// DragThresholdPx is the Euclidean pixel distance a contact must travel
	// from its start position before it is reclassified from pending tap to
	// dragging.
	DragThresholdPx float64 `yaml:"drag_threshold_px"`
	// HoldTimeMs is the minimum press duration for a click-and-hold.
	HoldTimeMs int `yaml:"hold_time_ms"`
	// WheelZoomStep is the multiplicative zoom factor per normalized wheel
	// step.
	WheelZoomStep float64 `yaml:"wheel_zoom_step"`
	// DoubleClickWindowMs is the tap window used by sources without native
	// click repeat counts (see PollSource). Platform-delivered click events
	// carry their own repeat count and ignore this.
	DoubleClickWindowMs int `yaml:"double_click_window_ms"`
	// FocusZoom and FocusDurationMs tune the zoom-to-entity camera animation
	// started by a double click.
	FocusZoom       float64 `yaml:"focus_zoom"`
	FocusDurationMs float64 `yaml:"focus_duration_ms"`
}

// DefaultConfig returns the built-in tuning.
func DefaultConfig() Config {
	return Config{
		DragThresholdPx:     defaultDragThresholdPx,
		HoldTimeMs:          defaultHoldTimeMs,
		WheelZoomStep:       defaultWheelZoomStep,
		DoubleClickWindowMs: defaultDoubleClickWindowMs,
		FocusZoom:           defaultFocusZoom,
		FocusDurationMs:     defaultFocusDurationMs,
	}
}

// LoadConfig reads YAML tuning overrides from path, overlaid on the defaults.
// A missing file is not an error: the defaults are returned unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveConfig writes the configuration to path as YAML.
func SaveConfig(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
