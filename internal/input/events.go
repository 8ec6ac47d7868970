// internal/input/events.go
package input

// EventKind classifies a device event.
type EventKind uint8

const (
	// AxisMove carries a new absolute axis position in [-1,1].
	AxisMove EventKind = iota

	// ButtonDown fires once when a button is pressed.
	ButtonDown

	// ButtonUp fires once when a button is released.
	ButtonUp
)

// Event is one normalized input-device event. Device-specific readers
// (joystick, test harness) produce these; the Mapper consumes them.
type Event struct {
	Kind  EventKind
	Index int

	// Value is the axis position for AxisMove; unused for buttons.
	Value float64
}

// Handler consumes device events.
type Handler interface {
	HandleEvent(Event)
}
