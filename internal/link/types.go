// internal/link/types.go
package link

import (
	"time"

	"github.com/klaussner/quadlink/internal/control"
	"github.com/klaussner/quadlink/internal/packet"
)

// Sampler supplies the latest control snapshot once per tick.
// Sample must never block. ok == false means no fresh data is available
// this tick; the scheduler then reuses its last-known state so the
// 50 ms cadence never breaks.
type Sampler interface {
	Sample() (st control.State, requested control.ActionSet, ok bool)
}

// Sink delivers one encoded frame to the drone. Fire-and-forget:
// no retries happen at this layer, the protocol's checksums are the
// only correctness backstop.
type Sink interface {
	Send(f packet.Frame) error
}

// Config is the minimal runtime config the scheduler needs.
type Config struct {
	// Interval between frames. The receiver expects 50 ms.
	Interval time.Duration
}

// TickResult is the outcome of one transmission tick.
type TickResult struct {
	At    time.Time
	Frame packet.Frame

	Err error // non-nil means the send failed; the loop keeps ticking
}
