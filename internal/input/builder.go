// internal/input/builder.go
package input

import (
	cfg "github.com/klaussner/quadlink/internal/config"
)

// Build constructs a Mapper from the input section of the config.
// Unbound functions are left unassigned; a config with no bindings
// yields a mapper that samples neutral state forever.
func Build(ic cfg.InputConfig) *Mapper {
	m := Mapping{
		Deadzone: cfg.DefaultDeadzone,

		Throttle: axisMapping(ic.Axes.Throttle),
		Rudder:   axisMapping(ic.Axes.Rudder),
		Elevator: axisMapping(ic.Axes.Elevator),
		Aileron:  axisMapping(ic.Axes.Aileron),

		Takeoff: button(ic.Buttons.Takeoff),
		Land:    button(ic.Buttons.Land),
		Flip:    button(ic.Buttons.Flip),
		Engine:  button(ic.Buttons.Engine),

		EmergencyStop: button(ic.Buttons.EmergencyStop),
		UpwardEvasion: button(ic.Buttons.UpwardEvasion),

		ReturnHome: button(ic.Buttons.ReturnHome),
		Headless:   button(ic.Buttons.Headless),
		HighSpeed:  button(ic.Buttons.HighSpeed),
		Lights:     button(ic.Buttons.Lights),

		ThrottleTrimDec: button(ic.Buttons.ThrottleTrimDec),
		ThrottleTrimInc: button(ic.Buttons.ThrottleTrimInc),
		RudderTrimDec:   button(ic.Buttons.RudderTrimDec),
		RudderTrimInc:   button(ic.Buttons.RudderTrimInc),
		ElevatorTrimDec: button(ic.Buttons.ElevatorTrimDec),
		ElevatorTrimInc: button(ic.Buttons.ElevatorTrimInc),
		AileronTrimDec:  button(ic.Buttons.AileronTrimDec),
		AileronTrimInc:  button(ic.Buttons.AileronTrimInc),
	}

	if ic.Deadzone != nil {
		m.Deadzone = *ic.Deadzone
	}

	return NewMapper(m)
}

func axisMapping(a cfg.AxisConfig) AxisMapping {
	if a.Index == nil {
		return AxisMapping{Index: Unassigned}
	}
	return AxisMapping{Index: *a.Index, Inverted: a.Inverted}
}

func button(b *int) int {
	if b == nil {
		return Unassigned
	}
	return *b
}
