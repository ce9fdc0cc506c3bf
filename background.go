package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/astrodash/almanac"
	"github.com/andareed/astrodash/logging"
	"github.com/andareed/astrodash/scheduler"
)

// sender is the part of *tea.Program the background tasks talk to.
type sender interface {
	Send(msg tea.Msg)
}

// startBackground schedules the delayed record load and the clock ticker on
// s. Both stop when s is closed.
func startBackground(s *scheduler.Scope, p sender, opts options) {
	s.After(opts.loadDelay, func(time.Time) {
		records := almanac.Reference()
		logging.Debugf("background: delivering %d records", len(records))
		p.Send(recordsLoadedMsg{records: records})
	})
	s.Every(opts.tick, func(now time.Time) {
		p.Send(clockTickMsg{now: now})
	})
}
