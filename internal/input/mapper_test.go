// internal/input/mapper_test.go
package input

import (
	"testing"

	"github.com/klaussner/quadlink/internal/control"
)

func testMapping() Mapping {
	return Mapping{
		Deadzone: 0.1,

		Throttle: AxisMapping{Index: 1, Inverted: true},
		Rudder:   AxisMapping{Index: 0},
		Elevator: AxisMapping{Index: 3, Inverted: true},
		Aileron:  AxisMapping{Index: 2},

		Takeoff: 3,
		Land:    6,
		Flip:    4,
		Engine:  1,

		EmergencyStop: 7,
		UpwardEvasion: 5,

		ReturnHome: 2,
		Headless:   0,
		HighSpeed:  9,
		Lights:     8,

		ThrottleTrimDec: Unassigned,
		ThrottleTrimInc: Unassigned,
		RudderTrimDec:   Unassigned,
		RudderTrimInc:   Unassigned,
		ElevatorTrimDec: 10,
		ElevatorTrimInc: 11,
		AileronTrimDec:  Unassigned,
		AileronTrimInc:  Unassigned,
	}
}

func press(mp *Mapper, btn int) {
	mp.HandleEvent(Event{Kind: ButtonDown, Index: btn})
	mp.HandleEvent(Event{Kind: ButtonUp, Index: btn})
}

func TestSampleNeutralByDefault(t *testing.T) {
	mp := NewMapper(testMapping())

	st, requested, ok := mp.Sample()
	if !ok {
		t.Fatalf("Sample not ok")
	}
	if !requested.Empty() {
		t.Fatalf("unexpected requests: %08b", requested)
	}
	if st.Throttle != control.AxisNeutral || st.ThrottleTrim != control.TrimNeutral {
		t.Errorf("axes not neutral: %+v", st)
	}
	if !st.Lights {
		t.Errorf("lights off at power-up, want on")
	}
}

func TestAxisQuantization(t *testing.T) {
	mp := NewMapper(testMapping())

	// Full positive deflection on rudder (axis 0, not inverted).
	mp.HandleEvent(Event{Kind: AxisMove, Index: 0, Value: 1})
	// Full positive on throttle's device axis, inverted mapping.
	mp.HandleEvent(Event{Kind: AxisMove, Index: 1, Value: 1})

	st, _, _ := mp.Sample()
	if st.Rudder != control.AxisMax {
		t.Errorf("rudder = %#02x, want %#02x", st.Rudder, control.AxisMax)
	}
	if st.Throttle != control.AxisMin {
		t.Errorf("inverted throttle = %#02x, want %#02x", st.Throttle, control.AxisMin)
	}

	// Center must map exactly to neutral.
	mp.HandleEvent(Event{Kind: AxisMove, Index: 0, Value: 0})
	st, _, _ = mp.Sample()
	if st.Rudder != control.AxisNeutral {
		t.Errorf("centered rudder = %#02x, want %#02x", st.Rudder, control.AxisNeutral)
	}
}

func TestDeadzone(t *testing.T) {
	mp := NewMapper(testMapping())

	mp.HandleEvent(Event{Kind: AxisMove, Index: 0, Value: 0.05})
	st, _, _ := mp.Sample()
	if st.Rudder != control.AxisNeutral {
		t.Errorf("deadzone not applied: rudder = %#02x", st.Rudder)
	}

	mp.HandleEvent(Event{Kind: AxisMove, Index: 0, Value: 0.5})
	st, _, _ = mp.Sample()
	if st.Rudder <= control.AxisNeutral {
		t.Errorf("live range collapsed: rudder = %#02x", st.Rudder)
	}
}

func TestOneShotRequestsDrain(t *testing.T) {
	mp := NewMapper(testMapping())

	press(mp, 3) // takeoff

	_, requested, _ := mp.Sample()
	if !requested.Has(control.Takeoff) {
		t.Fatalf("takeoff not requested after press")
	}

	// Drained: the request must not repeat on the next tick.
	_, requested, _ = mp.Sample()
	if requested.Has(control.Takeoff) {
		t.Fatalf("takeoff request repeated without a new press")
	}
}

func TestPushHeldAndExclusion(t *testing.T) {
	mp := NewMapper(testMapping())

	mp.HandleEvent(Event{Kind: ButtonDown, Index: 7}) // stop
	_, requested, _ := mp.Sample()
	if !requested.Has(control.EmergencyStop) {
		t.Fatalf("stop not requested while held")
	}

	// Still held on the next tick.
	_, requested, _ = mp.Sample()
	if !requested.Has(control.EmergencyStop) {
		t.Fatalf("stop dropped while still held")
	}

	// Evasion pressed while stop held: evasion wins.
	mp.HandleEvent(Event{Kind: ButtonDown, Index: 5})
	_, requested, _ = mp.Sample()
	if requested.Has(control.EmergencyStop) || !requested.Has(control.UpwardEvasion) {
		t.Fatalf("exclusion wrong: %08b", requested)
	}

	mp.HandleEvent(Event{Kind: ButtonUp, Index: 5})
	_, requested, _ = mp.Sample()
	if requested.Has(control.UpwardEvasion) {
		t.Fatalf("evasion still requested after release")
	}
}

func TestToggles(t *testing.T) {
	mp := NewMapper(testMapping())

	press(mp, 9) // high speed on
	st, _, _ := mp.Sample()
	if !st.HighSpeed {
		t.Fatalf("high speed not toggled on")
	}

	press(mp, 9) // off again
	st, _, _ = mp.Sample()
	if st.HighSpeed {
		t.Fatalf("high speed not toggled off")
	}

	press(mp, 8) // lights start on, press turns them off
	st, _, _ = mp.Sample()
	if st.Lights {
		t.Fatalf("lights not toggled off")
	}
}

func TestReturnHomeNeedsHeadless(t *testing.T) {
	mp := NewMapper(testMapping())

	press(mp, 2) // return home toggle, headless off
	_, requested, _ := mp.Sample()
	if requested.Has(control.ReturnHome) {
		t.Fatalf("return-home requested without headless mode")
	}

	mp = NewMapper(testMapping())
	press(mp, 0) // headless on
	press(mp, 2) // return home on
	_, requested, _ = mp.Sample()
	if !requested.Has(control.ReturnHome) {
		t.Fatalf("return-home not requested in headless mode")
	}

	// Leaving headless mode drops the return-home toggle entirely.
	press(mp, 0)
	press(mp, 0) // back on: return home must not resurface
	_, requested, _ = mp.Sample()
	if requested.Has(control.ReturnHome) {
		t.Fatalf("return-home survived a headless toggle cycle")
	}
}

func TestTrimStepping(t *testing.T) {
	mp := NewMapper(testMapping())

	press(mp, 11) // elevator trim +
	st, _, _ := mp.Sample()
	if st.ElevatorTrim != control.TrimNeutral+1 {
		t.Errorf("trim after one click = %#02x, want %#02x", st.ElevatorTrim, control.TrimNeutral+1)
	}

	// Clicks accumulate and clamp at the domain edge.
	for i := 0; i < 100; i++ {
		press(mp, 10) // elevator trim -
	}
	st, _, _ = mp.Sample()
	if st.ElevatorTrim != control.TrimMin {
		t.Errorf("trim not clamped at min: %#02x", st.ElevatorTrim)
	}
}
