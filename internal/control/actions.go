// internal/control/actions.go
package control

import "time"

// Action is a discrete command requested by the input side.
type Action uint8

const (
	// Flip requests a 360 degree roll.
	Flip Action = iota

	// EngineStartStop arms or disarms the motors.
	EngineStartStop

	// Land requests an automatic landing.
	Land

	// Takeoff requests an automatic take-off.
	Takeoff

	// ReturnHome steers back towards the operator.
	// Only honored by the drone while headless mode is on.
	ReturnHome

	// EmergencyStop cuts the motors immediately.
	EmergencyStop

	// UpwardEvasion climbs away from an obstacle.
	UpwardEvasion

	numActions
)

func (a Action) String() string {
	switch a {
	case Flip:
		return "flip"
	case EngineStartStop:
		return "engine"
	case Land:
		return "land"
	case Takeoff:
		return "takeoff"
	case ReturnHome:
		return "return-home"
	case EmergencyStop:
		return "emergency-stop"
	case UpwardEvasion:
		return "upward-evasion"
	}
	return "unknown"
}

// HoldDuration is how long the action's command bit must stay asserted
// once triggered, regardless of how long the input event lasts.
// Zero means the action is a pulse: its bit simply mirrors the request.
func (a Action) HoldDuration() time.Duration {
	switch a {
	case Flip:
		return 500 * time.Millisecond
	case EngineStartStop, Land, Takeoff:
		return time.Second
	}
	return 0
}

// ActionSet is a set of Actions packed into a bitmask.
// Bits outside the known action range are ignored everywhere.
type ActionSet uint8

// Has reports whether a is in the set.
func (s ActionSet) Has(a Action) bool {
	return s&(1<<a) != 0
}

// With returns the set including a.
func (s ActionSet) With(a Action) ActionSet {
	return s | 1<<a
}

// Without returns the set excluding a.
func (s ActionSet) Without(a Action) ActionSet {
	return s &^ (1 << a)
}

// Empty reports whether the set holds no actions.
func (s ActionSet) Empty() bool {
	return s == 0
}
