// internal/config/validate_test.go
package config

import "testing"

func intp(v int) *int           { return &v }
func floatp(v float64) *float64 { return &v }

func validConfig() *Config {
	return &Config{
		Link: LinkConfig{
			Address:    "192.168.99.1",
			Port:       9001,
			IntervalMs: 50,
		},
		Input: InputConfig{
			Deadzone: floatp(0.1),
			Axes: AxesConfig{
				Throttle: AxisConfig{Index: intp(1), Inverted: true},
				Rudder:   AxisConfig{Index: intp(0)},
			},
			Buttons: ButtonsConfig{
				Takeoff: intp(3),
				Land:    intp(6),
			},
		},
	}
}

func TestValidateOK(t *testing.T) {
	if err := Validate(validConfig()); err != nil {
		t.Fatalf("Validate() err=%v", err)
	}
}

func TestValidatePortRange(t *testing.T) {
	cfg := validConfig()
	cfg.Link.Port = 70000
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for out-of-range port")
	}
}

func TestValidateNegativeInterval(t *testing.T) {
	cfg := validConfig()
	cfg.Link.IntervalMs = -50
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for negative interval")
	}
}

func TestValidateDeadzoneDomain(t *testing.T) {
	for _, dz := range []float64{-0.1, 1.0, 2.5} {
		cfg := validConfig()
		cfg.Input.Deadzone = floatp(dz)
		if err := Validate(cfg); err == nil {
			t.Errorf("expected error for deadzone %v", dz)
		}
	}
}

func TestValidateAxisCollision(t *testing.T) {
	cfg := validConfig()
	cfg.Input.Axes.Aileron = AxisConfig{Index: intp(1)} // same as throttle
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for duplicate axis index")
	}
}

func TestValidateButtonCollision(t *testing.T) {
	cfg := validConfig()
	cfg.Input.Buttons.Flip = intp(3) // same as takeoff
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for duplicate button number")
	}
}

func TestValidateNegativeButton(t *testing.T) {
	cfg := validConfig()
	cfg.Input.Buttons.Lights = intp(-1)
	if err := Validate(cfg); err == nil {
		t.Fatalf("expected error for negative button number")
	}
}

func TestNormalizeDefaults(t *testing.T) {
	cfg := &Config{}
	Normalize(cfg)

	if cfg.Link.Address != DefaultAddress {
		t.Errorf("address = %q, want %q", cfg.Link.Address, DefaultAddress)
	}
	if cfg.Link.Port != DefaultPort {
		t.Errorf("port = %d, want %d", cfg.Link.Port, DefaultPort)
	}
	if cfg.Link.IntervalMs != DefaultIntervalMs {
		t.Errorf("interval_ms = %d, want %d", cfg.Link.IntervalMs, DefaultIntervalMs)
	}
	if cfg.Input.Deadzone == nil || *cfg.Input.Deadzone != DefaultDeadzone {
		t.Errorf("deadzone not defaulted: %v", cfg.Input.Deadzone)
	}
}

func TestNormalizeKeepsExplicitValues(t *testing.T) {
	cfg := validConfig()
	cfg.Link.Address = "10.0.0.5"
	cfg.Link.IntervalMs = 20

	Normalize(cfg)

	if cfg.Link.Address != "10.0.0.5" || cfg.Link.IntervalMs != 20 {
		t.Errorf("explicit values overwritten: %+v", cfg.Link)
	}
}
