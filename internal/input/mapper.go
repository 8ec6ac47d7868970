// internal/input/mapper.go
package input

import (
	"math"
	"sync"

	"github.com/klaussner/quadlink/internal/control"
)

// Unassigned marks an axis or button function with no device binding.
const Unassigned = -1

// trimStep is one trim click, 1/32 of the half-range.
const trimStep = 2.0 / 64

// AxisMapping binds one control axis to a device axis number.
type AxisMapping struct {
	Index    int // Unassigned if not bound
	Inverted bool
}

// Mapping binds device axes and buttons to control functions.
// Unbound functions stay at Unassigned.
type Mapping struct {
	Deadzone float64

	Throttle AxisMapping
	Rudder   AxisMapping
	Elevator AxisMapping
	Aileron  AxisMapping

	// One-shot request buttons: a press fires the action once.
	Takeoff int
	Land    int
	Flip    int
	Engine  int

	// Push buttons: the action is requested while held down.
	EmergencyStop int
	UpwardEvasion int

	// Toggle buttons: a press flips persistent state.
	ReturnHome int
	Headless   int
	HighSpeed  int
	Lights     int

	ThrottleTrimDec, ThrottleTrimInc int
	RudderTrimDec, RudderTrimInc     int
	ElevatorTrimDec, ElevatorTrimInc int
	AileronTrimDec, AileronTrimInc   int
}

// Mapper folds device events into the control snapshot the link samples
// every tick. HandleEvent and Sample may be called from different
// goroutines; a mutex keeps snapshots tear-free.
type Mapper struct {
	mu sync.Mutex
	m  Mapping

	throttle, rudder, elevator, aileron             float64
	throttleTrim, rudderTrim, elevatorTrim, aileronTrim float64

	headless, highSpeed, lights, returnHome bool
	stopHeld, upHeld                        bool

	// One-shot requests armed by presses, drained by the next Sample.
	pending control.ActionSet
}

// NewMapper creates a mapper with centered axes. Lights start on,
// matching the drone's power-up state.
func NewMapper(m Mapping) *Mapper {
	return &Mapper{m: m, lights: true}
}

// HandleEvent applies one device event. Implements Handler.
func (mp *Mapper) HandleEvent(ev Event) {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	switch ev.Kind {
	case AxisMove:
		mp.axisMove(ev.Index, ev.Value)
	case ButtonDown:
		mp.buttonDown(ev.Index)
	case ButtonUp:
		mp.buttonUp(ev.Index)
	}
}

func (mp *Mapper) axisMove(idx int, raw float64) {
	v := mp.normalize(raw)

	for _, ax := range []struct {
		m   AxisMapping
		dst *float64
	}{
		{mp.m.Throttle, &mp.throttle},
		{mp.m.Rudder, &mp.rudder},
		{mp.m.Elevator, &mp.elevator},
		{mp.m.Aileron, &mp.aileron},
	} {
		if ax.m.Index != idx || ax.m.Index == Unassigned {
			continue
		}
		if ax.m.Inverted {
			*ax.dst = -v
		} else {
			*ax.dst = v
		}
	}
}

// normalize clamps to [-1,1] and rescales the live range outside the
// deadzone back to the full interval.
func (mp *Mapper) normalize(v float64) float64 {
	v = math.Max(-1, math.Min(1, v))
	abs := math.Abs(v)
	if abs < mp.m.Deadzone {
		return 0
	}
	norm := (abs - mp.m.Deadzone) / (1 - mp.m.Deadzone)
	norm = math.Min(1, norm)
	if v < 0 {
		norm = -norm
	}
	return norm
}

func (mp *Mapper) buttonDown(idx int) {
	hit := func(assigned int) bool {
		return assigned != Unassigned && assigned == idx
	}

	switch {
	// One-shots.
	case hit(mp.m.Takeoff):
		mp.pending = mp.pending.With(control.Takeoff)
	case hit(mp.m.Land):
		mp.pending = mp.pending.With(control.Land)
	case hit(mp.m.Flip):
		mp.pending = mp.pending.With(control.Flip)
	case hit(mp.m.Engine):
		mp.pending = mp.pending.With(control.EngineStartStop)

	// Pushes. Stop and evasion exclude each other.
	case hit(mp.m.EmergencyStop):
		mp.stopHeld = true
		mp.upHeld = false
	case hit(mp.m.UpwardEvasion):
		mp.upHeld = true
		mp.stopHeld = false

	// Toggles.
	case hit(mp.m.Headless):
		mp.headless = !mp.headless
		// Leaving or entering headless mode always drops return-home.
		mp.returnHome = false
	case hit(mp.m.ReturnHome):
		mp.returnHome = !mp.returnHome
	case hit(mp.m.HighSpeed):
		mp.highSpeed = !mp.highSpeed
	case hit(mp.m.Lights):
		mp.lights = !mp.lights

	// Trims.
	case hit(mp.m.ThrottleTrimDec):
		mp.throttleTrim = clampUnit(mp.throttleTrim - trimStep)
	case hit(mp.m.ThrottleTrimInc):
		mp.throttleTrim = clampUnit(mp.throttleTrim + trimStep)
	case hit(mp.m.RudderTrimDec):
		mp.rudderTrim = clampUnit(mp.rudderTrim - trimStep)
	case hit(mp.m.RudderTrimInc):
		mp.rudderTrim = clampUnit(mp.rudderTrim + trimStep)
	case hit(mp.m.ElevatorTrimDec):
		mp.elevatorTrim = clampUnit(mp.elevatorTrim - trimStep)
	case hit(mp.m.ElevatorTrimInc):
		mp.elevatorTrim = clampUnit(mp.elevatorTrim + trimStep)
	case hit(mp.m.AileronTrimDec):
		mp.aileronTrim = clampUnit(mp.aileronTrim - trimStep)
	case hit(mp.m.AileronTrimInc):
		mp.aileronTrim = clampUnit(mp.aileronTrim + trimStep)
	}
}

func (mp *Mapper) buttonUp(idx int) {
	hit := func(assigned int) bool {
		return assigned != Unassigned && assigned == idx
	}

	switch {
	case hit(mp.m.EmergencyStop):
		mp.stopHeld = false
	case hit(mp.m.UpwardEvasion):
		mp.upHeld = false
	}
}

// Sample returns the current control snapshot and the actions requested
// since the previous sample. One-shot requests are drained; push
// requests persist while their button is held. Implements link.Sampler.
func (mp *Mapper) Sample() (control.State, control.ActionSet, bool) {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	st := control.State{
		Throttle: axisByte(mp.throttle),
		Rudder:   axisByte(mp.rudder),
		Elevator: axisByte(mp.elevator),
		Aileron:  axisByte(mp.aileron),

		ThrottleTrim: trimByte(mp.throttleTrim),
		AileronTrim:  trimByte(mp.aileronTrim),
		ElevatorTrim: trimByte(mp.elevatorTrim),
		RudderTrim:   trimByte(mp.rudderTrim),

		Headless:  mp.headless,
		HighSpeed: mp.highSpeed,
		Lights:    mp.lights,
	}

	requested := mp.pending
	mp.pending = 0

	// Evasion wins when both push buttons are held.
	if mp.upHeld {
		requested = requested.With(control.UpwardEvasion)
	} else if mp.stopHeld {
		requested = requested.With(control.EmergencyStop)
	}

	if mp.returnHome && mp.headless {
		requested = requested.With(control.ReturnHome)
	}

	return st, requested, true
}

func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

// axisByte quantizes [-1,1] into the protocol's 7-bit axis domain.
func axisByte(v float64) uint8 {
	b := int(math.Floor(v*64)) + 64
	if b > int(control.AxisMax) {
		b = int(control.AxisMax)
	}
	if b < 0 {
		b = 0
	}
	return uint8(b)
}

// trimByte quantizes [-1,1] into the protocol's 6-bit trim domain.
func trimByte(v float64) uint8 {
	b := int(math.Floor(v*32)) + 32
	if b > int(control.TrimMax) {
		b = int(control.TrimMax)
	}
	if b < 0 {
		b = 0
	}
	return uint8(b)
}
