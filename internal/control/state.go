// internal/control/state.go
package control

// Axis and trim domains are protocol-locked.
// These values define the wire contract and MUST NOT be configurable.

// ---- AXES ----

// AxisMin is the lowest encodable axis value (full negative deflection).
const AxisMin uint8 = 0x00

// AxisMax is the highest encodable axis value (full positive deflection).
const AxisMax uint8 = 0x7F

// AxisNeutral is the centered stick position.
const AxisNeutral uint8 = 0x40

// ---- TRIMS ----

// TrimMin is the lowest encodable trim value.
const TrimMin uint8 = 0x00

// TrimMax is the highest encodable trim value.
const TrimMax uint8 = 0x3F

// TrimNeutral is the centered trim position.
const TrimNeutral uint8 = 0x20

// State is the latest control snapshot delivered by the input side.
// It carries axis and trim positions plus the persistent toggles.
// Momentary commands are NOT part of State; they travel as an ActionSet.
type State struct {
	Throttle uint8
	Rudder   uint8
	Elevator uint8
	Aileron  uint8

	ThrottleTrim uint8
	AileronTrim  uint8
	ElevatorTrim uint8
	RudderTrim   uint8

	// Persistent toggles, flipped on edge-triggered input events.
	Headless  bool
	HighSpeed bool
	Lights    bool
}

// Neutral returns a State with all axes and trims centered and all
// toggles off. This is what the link transmits before the first sample.
func Neutral() State {
	return State{
		Throttle: AxisNeutral,
		Rudder:   AxisNeutral,
		Elevator: AxisNeutral,
		Aileron:  AxisNeutral,

		ThrottleTrim: TrimNeutral,
		AileronTrim:  TrimNeutral,
		ElevatorTrim: TrimNeutral,
		RudderTrim:   TrimNeutral,
	}
}

// ClampAxis forces v into the documented axis domain.
// Out-of-domain values are a caller contract violation; clamping here
// only prevents overflow into adjacent bit fields on the wire.
func ClampAxis(v uint8) uint8 {
	if v > AxisMax {
		return AxisMax
	}
	return v
}

// ClampTrim forces v into the documented trim domain.
func ClampTrim(v uint8) uint8 {
	if v > TrimMax {
		return TrimMax
	}
	return v
}

// Clamped returns a copy of s with every axis and trim forced into its
// documented domain.
func (s State) Clamped() State {
	s.Throttle = ClampAxis(s.Throttle)
	s.Rudder = ClampAxis(s.Rudder)
	s.Elevator = ClampAxis(s.Elevator)
	s.Aileron = ClampAxis(s.Aileron)

	s.ThrottleTrim = ClampTrim(s.ThrottleTrim)
	s.AileronTrim = ClampTrim(s.AileronTrim)
	s.ElevatorTrim = ClampTrim(s.ElevatorTrim)
	s.RudderTrim = ClampTrim(s.RudderTrim)

	return s
}
