// Package scheduler runs delayed and recurring callbacks whose lifetime is
// bound to a Scope. Closing the scope stops every task and waits for it.
package scheduler

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/andareed/astrodash/logging"
)

type Scope struct {
	ctx    context.Context
	cancel context.CancelFunc
	group  *errgroup.Group
	clock  clockwork.Clock
}

// New returns a Scope that lives until parent is done or Close is called.
// A nil clock means the real wall clock.
func New(parent context.Context, clock clockwork.Clock) *Scope {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	ctx, cancel := context.WithCancel(parent)
	group, ctx := errgroup.WithContext(ctx)
	return &Scope{ctx: ctx, cancel: cancel, group: group, clock: clock}
}

func (s *Scope) Context() context.Context { return s.ctx }

// After runs fn once, d after the call, unless the scope ends first.
func (s *Scope) After(d time.Duration, fn func(time.Time)) {
	timer := s.clock.NewTimer(d)
	s.group.Go(func() error {
		defer timer.Stop()
		select {
		case <-s.ctx.Done():
			logging.Debugf("scheduler: one-shot task (%s) cancelled", d)
			return nil
		case now := <-timer.Chan():
			if s.ctx.Err() != nil {
				return nil
			}
			fn(now)
			return nil
		}
	})
}

// Every runs fn at each tick of period d until the scope ends. A slow fn
// delays later ticks rather than overlapping them.
func (s *Scope) Every(d time.Duration, fn func(time.Time)) {
	ticker := s.clock.NewTicker(d)
	s.group.Go(func() error {
		defer ticker.Stop()
		for {
			select {
			case <-s.ctx.Done():
				logging.Debugf("scheduler: recurring task (%s) stopped", d)
				return nil
			case now := <-ticker.Chan():
				if s.ctx.Err() != nil {
					return nil
				}
				fn(now)
			}
		}
	})
}

// Close cancels every task and blocks until all of them have returned.
// It is safe to call more than once.
func (s *Scope) Close() error {
	s.cancel()
	return s.group.Wait()
}
