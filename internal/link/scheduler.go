// internal/link/scheduler.go
package link

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/klaussner/quadlink/internal/control"
	"github.com/klaussner/quadlink/internal/packet"
)

// Scheduler drives the periodic transmission loop: sample, advance the
// hold timer, encode against the previous frame, send. Frames are
// strictly sequential (each depends on its predecessor), so there is
// exactly one Scheduler per link and only its own loop mutates state.
type Scheduler struct {
	cfg     Config
	sampler Sampler
	sink    Sink

	holds *control.HoldTimer
	prev  packet.Frame
	last  control.State
}

// New creates a scheduler with immutable config. Before the first
// sample arrives it transmits neutral state against an all-zero
// previous frame.
func New(cfg Config, sampler Sampler, sink Sink) (*Scheduler, error) {
	if cfg.Interval <= 0 {
		return nil, errors.New("link: interval must be > 0")
	}
	if sampler == nil {
		return nil, errors.New("link: sampler required")
	}
	if sink == nil {
		return nil, errors.New("link: sink required")
	}
	return &Scheduler{
		cfg:     cfg,
		sampler: sampler,
		sink:    sink,
		holds:   control.NewHoldTimer(),
		last:    control.Neutral(),
	}, nil
}

// TickOnce performs exactly one transmission cycle at time now.
// The encoded frame becomes the new previous frame before the send is
// attempted, so counter continuity survives transport failures.
func (s *Scheduler) TickOnce(now time.Time) TickResult {
	st, requested, ok := s.sampler.Sample()
	if ok {
		s.last = st
	} else {
		// Stale tick: keep last-known state, request nothing new.
		// Dropping the frame entirely would break the cadence the
		// receiver depends on.
		requested = 0
	}

	active := s.holds.Update(now, requested)

	f := packet.Encode(s.prev, s.last, active)
	s.prev = f

	res := TickResult{At: now, Frame: f}
	if err := s.sink.Send(f); err != nil {
		res.Err = fmt.Errorf("link: send: %w", err)
	}
	return res
}

// Run starts the ticker loop and emits a TickResult per frame on out.
// Results are delivered non-blocking: a slow consumer loses results but
// can never delay a tick. A nil out discards them. The ticker supplies
// absolute deadlines, so the cadence does not accumulate drift.
func (s *Scheduler) Run(ctx context.Context, out chan<- TickResult) {
	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			res := s.TickOnce(now)
			if out == nil {
				continue
			}
			select {
			case out <- res:
			default:
			}
		}
	}
}
