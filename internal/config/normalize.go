// internal/config/normalize.go
package config

// Defaults applied by Normalize. The drone's factory network identity
// and update cadence; overriding them in config is for bench setups.
const (
	DefaultAddress    = "192.168.99.1"
	DefaultPort       = 9001
	DefaultIntervalMs = 50

	DefaultWriteTimeoutMs = 500
	DefaultDeadzone       = 0.1
)

// Normalize applies post-validation defaults.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Link.Address == "" {
		cfg.Link.Address = DefaultAddress
	}
	if cfg.Link.Port == 0 {
		cfg.Link.Port = DefaultPort
	}
	if cfg.Link.IntervalMs == 0 {
		cfg.Link.IntervalMs = DefaultIntervalMs
	}
	if cfg.Link.WriteTimeoutMs == 0 {
		cfg.Link.WriteTimeoutMs = DefaultWriteTimeoutMs
	}

	if cfg.Input.Deadzone == nil {
		dz := DefaultDeadzone
		cfg.Input.Deadzone = &dz
	}
}
