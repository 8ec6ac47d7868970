// internal/control/holds.go
package control

import "time"

// HoldTimer stretches momentary action requests into fixed-duration
// command windows. It is owned by the transmission loop: only one
// goroutine may call Update.
//
// Semantics:
//   - A held action (HoldDuration > 0) is armed on the rising edge of
//     its request and stays active for exactly its hold duration.
//   - Arming is insert-if-absent: re-requesting an already held action
//     neither resets nor extends its window (first edge wins).
//   - A request held asserted across the window's expiry does not
//     re-arm; the action must be released and requested again.
//   - Pulse actions (HoldDuration == 0) are active exactly on the
//     ticks where they are requested.
type HoldTimer struct {
	active map[Action]time.Time
	prev   ActionSet
}

// NewHoldTimer returns an empty timer.
func NewHoldTimer() *HoldTimer {
	return &HoldTimer{active: make(map[Action]time.Time)}
}

// Update advances the timer to now with the currently requested actions
// and returns the set of actions whose command bits are active this tick.
func (t *HoldTimer) Update(now time.Time, requested ActionSet) ActionSet {
	// Arm newly requested held actions.
	for a := Action(0); a < numActions; a++ {
		if a.HoldDuration() == 0 {
			continue
		}
		if !requested.Has(a) || t.prev.Has(a) {
			continue
		}
		if _, held := t.active[a]; !held {
			t.active[a] = now
		}
	}

	// Expire elapsed windows.
	for a, since := range t.active {
		if now.Sub(since) >= a.HoldDuration() {
			delete(t.active, a)
		}
	}

	t.prev = requested

	var out ActionSet
	for a := range t.active {
		out = out.With(a)
	}

	// Pulses pass straight through.
	for a := Action(0); a < numActions; a++ {
		if a.HoldDuration() == 0 && requested.Has(a) {
			out = out.With(a)
		}
	}

	return out
}
