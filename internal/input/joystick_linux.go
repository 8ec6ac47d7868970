//go:build linux

// internal/input/joystick_linux.go
package input

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Linux joystick interface (joydev). Every read yields one 8-byte
// record: u32 timestamp ms, s16 value, u8 type, u8 number.
const (
	jsEventButton = 0x01
	jsEventAxis   = 0x02
	jsEventInit   = 0x80 // synthetic state replay on open

	axisScale = 32767.0
)

// Joystick reads /dev/input/js* and forwards normalized events.
type Joystick struct {
	f *os.File
}

// OpenJoystick opens a joystick device node.
func OpenJoystick(path string) (*Joystick, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input: opening joystick: %w", err)
	}
	return &Joystick{f: f}, nil
}

// Run forwards device events to h until a read fails (device unplugged
// or Close called). Init records are applied like live ones, so the
// mapper picks up the device's absolute state on open.
func (j *Joystick) Run(h Handler) error {
	var buf [8]byte
	for {
		if _, err := io.ReadFull(j.f, buf[:]); err != nil {
			return fmt.Errorf("input: reading joystick: %w", err)
		}

		value := int16(binary.LittleEndian.Uint16(buf[4:6]))
		kind := buf[6] &^ jsEventInit
		num := int(buf[7])

		switch kind {
		case jsEventButton:
			if value != 0 {
				h.HandleEvent(Event{Kind: ButtonDown, Index: num})
			} else {
				h.HandleEvent(Event{Kind: ButtonUp, Index: num})
			}
		case jsEventAxis:
			h.HandleEvent(Event{Kind: AxisMove, Index: num, Value: float64(value) / axisScale})
		}
	}
}

// Close releases the device node; a blocked Run returns.
func (j *Joystick) Close() error {
	return j.f.Close()
}
