// internal/config/validate.go
package config

import (
	"fmt"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	// ------------------------------------------------------------
	// LINK
	// ------------------------------------------------------------

	if cfg.Link.Port < 0 || cfg.Link.Port > 65535 {
		return fmt.Errorf("link: port %d out of range", cfg.Link.Port)
	}
	if cfg.Link.IntervalMs < 0 {
		return fmt.Errorf("link: interval_ms must not be negative")
	}
	if cfg.Link.WriteTimeoutMs < 0 {
		return fmt.Errorf("link: write_timeout_ms must not be negative")
	}
	if cfg.Link.MaxConsecutiveFailures < 0 {
		return fmt.Errorf("link: max_consecutive_failures must not be negative")
	}

	// ------------------------------------------------------------
	// INPUT: DEADZONE + AXIS GEOMETRY
	// ------------------------------------------------------------

	if dz := cfg.Input.Deadzone; dz != nil {
		if *dz < 0 || *dz >= 1 {
			return fmt.Errorf("input: deadzone %v outside [0,1)", *dz)
		}
	}

	axes := map[string]AxisConfig{
		"throttle": cfg.Input.Axes.Throttle,
		"rudder":   cfg.Input.Axes.Rudder,
		"elevator": cfg.Input.Axes.Elevator,
		"aileron":  cfg.Input.Axes.Aileron,
	}
	axisOwner := make(map[int]string)
	for name, a := range axes {
		if a.Index == nil {
			continue
		}
		if *a.Index < 0 {
			return fmt.Errorf("input: axis %q has negative index %d", name, *a.Index)
		}
		if prev, exists := axisOwner[*a.Index]; exists {
			return fmt.Errorf(
				"input: axis index collision: %d assigned to both %q and %q",
				*a.Index, prev, name,
			)
		}
		axisOwner[*a.Index] = name
	}

	// ------------------------------------------------------------
	// INPUT: BUTTON ASSIGNMENTS
	// ------------------------------------------------------------

	buttonOwner := make(map[int]string)
	for name, b := range namedButtons(&cfg.Input.Buttons) {
		if b == nil {
			continue
		}
		if *b < 0 {
			return fmt.Errorf("input: button %q has negative number %d", name, *b)
		}
		if prev, exists := buttonOwner[*b]; exists {
			return fmt.Errorf(
				"input: button collision: %d assigned to both %q and %q",
				*b, prev, name,
			)
		}
		buttonOwner[*b] = name
	}

	return nil
}

// namedButtons flattens the button struct for uniform checks.
func namedButtons(b *ButtonsConfig) map[string]*int {
	return map[string]*int{
		"takeoff":           b.Takeoff,
		"land":              b.Land,
		"flip":              b.Flip,
		"engine":            b.Engine,
		"emergency_stop":    b.EmergencyStop,
		"upward_evasion":    b.UpwardEvasion,
		"return_home":       b.ReturnHome,
		"headless":          b.Headless,
		"high_speed":        b.HighSpeed,
		"lights":            b.Lights,
		"throttle_trim_dec": b.ThrottleTrimDec,
		"throttle_trim_inc": b.ThrottleTrimInc,
		"rudder_trim_dec":   b.RudderTrimDec,
		"rudder_trim_inc":   b.RudderTrimInc,
		"elevator_trim_dec": b.ElevatorTrimDec,
		"elevator_trim_inc": b.ElevatorTrimInc,
		"aileron_trim_dec":  b.AileronTrimDec,
		"aileron_trim_inc":  b.AileronTrimInc,
	}
}
