// internal/config/config.go
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Link      LinkConfig      `yaml:"link"`
	Input     InputConfig     `yaml:"input"`
	Recording RecordingConfig `yaml:"recording"`
}

// ---- LINK ----

type LinkConfig struct {
	Address        string `yaml:"address"`
	Port           int    `yaml:"port"`
	IntervalMs     int    `yaml:"interval_ms"`
	WriteTimeoutMs int    `yaml:"write_timeout_ms"`

	// Stop after this many consecutive send failures. 0 = never.
	MaxConsecutiveFailures int `yaml:"max_consecutive_failures"`
}

// ---- INPUT ----

type InputConfig struct {
	// Joystick device path, e.g. /dev/input/js0. Empty = no device;
	// the link then transmits neutral state.
	Device string `yaml:"device"`

	Deadzone *float64 `yaml:"deadzone"`

	Axes    AxesConfig    `yaml:"axes"`
	Buttons ButtonsConfig `yaml:"buttons"`
}

type AxisConfig struct {
	Index    *int `yaml:"index"`
	Inverted bool `yaml:"inverted"`
}

type AxesConfig struct {
	Throttle AxisConfig `yaml:"throttle"`
	Rudder   AxisConfig `yaml:"rudder"`
	Elevator AxisConfig `yaml:"elevator"`
	Aileron  AxisConfig `yaml:"aileron"`
}

// ButtonsConfig assigns joystick button numbers to functions.
// Every assignment is optional.
type ButtonsConfig struct {
	Takeoff       *int `yaml:"takeoff"`
	Land          *int `yaml:"land"`
	Flip          *int `yaml:"flip"`
	Engine        *int `yaml:"engine"`
	EmergencyStop *int `yaml:"emergency_stop"`
	UpwardEvasion *int `yaml:"upward_evasion"`
	ReturnHome    *int `yaml:"return_home"`
	Headless      *int `yaml:"headless"`
	HighSpeed     *int `yaml:"high_speed"`
	Lights        *int `yaml:"lights"`

	ThrottleTrimDec *int `yaml:"throttle_trim_dec"`
	ThrottleTrimInc *int `yaml:"throttle_trim_inc"`
	RudderTrimDec   *int `yaml:"rudder_trim_dec"`
	RudderTrimInc   *int `yaml:"rudder_trim_inc"`
	ElevatorTrimDec *int `yaml:"elevator_trim_dec"`
	ElevatorTrimInc *int `yaml:"elevator_trim_inc"`
	AileronTrimDec  *int `yaml:"aileron_trim_dec"`
	AileronTrimInc  *int `yaml:"aileron_trim_inc"`
}

// ---- RECORDING ----

type RecordingConfig struct {
	// Sqlite database path. Empty disables frame recording.
	Path string `yaml:"path"`
}

// Load reads and parses a config file. It performs no validation.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return &cfg, nil
}
