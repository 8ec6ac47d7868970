// internal/packet/packet.go
package packet

import "github.com/klaussner/quadlink/internal/control"

// Frame is one complete control packet as sent on the wire.
type Frame [Length]byte

// Counter returns the rolling frame counter byte.
func (f Frame) Counter() uint8 {
	return f[idxCounter]
}

// Encode builds the next frame from its predecessor, the current control
// snapshot and the momentary command bits active this tick.
// Pure function: no IO, no side effects, no hidden state. The previous
// frame supplies the counter seed and the diff checksum baseline; pass
// the zero Frame before the first transmission.
func Encode(prev Frame, st control.State, active control.ActionSet) Frame {
	st = st.Clamped()

	f := Frame{
		0x5B, 0x52, 0x74, 0x3E, 0x1A, 0x00, 0x01,
		prev[idxCounter] + 1,
		0xE0, 0x00,
		0x00, // diff checksum, filled last
		0x00,
		0xFF, 0x02,
	}

	f[idxThrottle] = st.Throttle
	f[idxRudder] = st.Rudder
	f[idxElevator] = st.Elevator
	f[idxAileron] = st.Aileron

	f[idxThrottleTrim] = st.ThrottleTrim
	f[idxAileronTrim] = st.AileronTrim
	f[idxElevatorTrim] = st.ElevatorTrim
	f[idxRudderTrim] = st.RudderTrim

	if st.Headless {
		f[idxFlagsA] |= flagAHeadless
	}
	if st.HighSpeed {
		f[idxFlagsA] |= flagAHighSpeed
	}
	if active.Has(control.Flip) {
		f[idxFlagsA] |= flagAFlip
	}
	if active.Has(control.EngineStartStop) {
		f[idxFlagsA] |= flagAEngine
	}
	if active.Has(control.Land) {
		f[idxFlagsA] |= flagALand
	}
	if active.Has(control.Takeoff) {
		f[idxFlagsA] |= flagATakeoff
	}

	// Return-home is only meaningful while headless mode is on.
	if active.Has(control.ReturnHome) && st.Headless {
		f[idxFlagsB] |= flagBReturnHome
	}
	if active.Has(control.EmergencyStop) {
		f[idxFlagsB] |= flagBEmergencyStop
	}
	if active.Has(control.UpwardEvasion) {
		f[idxFlagsB] |= flagBUpwardEvasion
	}
	f[idxFlagsB] |= productType << productTypeShift

	if st.Lights {
		f[idxFlagsC] |= flagCLights
	}

	// 7-bit sum over the command bytes. Guards the command payload
	// independently of frame history.
	var sum int
	for i := cmdChecksumFrom; i < cmdChecksumTo; i++ {
		sum += int(f[i])
	}
	f[idxChecksum] = byte(sum & 0x7F)

	// Diff checksum, binding this frame to its predecessor. Computed
	// over all 26 bytes with this byte itself held at zero, then
	// reduced mod 255 into [0,255).
	var diff int
	for i := 0; i < Length; i++ {
		diff += int(prev[i]) - int(f[i])
	}
	f[idxDiffChecksum] = byte(((diff % 255) + 255) % 255)

	return f
}
