//go:build !linux

// internal/input/joystick_stub.go
package input

import "errors"

var errNoJoystick = errors.New("input: joystick devices are only supported on linux")

// Joystick is unavailable on this platform.
type Joystick struct{}

func OpenJoystick(path string) (*Joystick, error) {
	return nil, errNoJoystick
}

func (j *Joystick) Run(h Handler) error {
	return errNoJoystick
}

func (j *Joystick) Close() error {
	return nil
}
