package main

import (
	"time"

	"github.com/andareed/astrodash/almanac"
)

// recordsLoadedMsg delivers the almanac once the simulated fetch completes.
type recordsLoadedMsg struct{ records []almanac.Record }

type clockTickMsg struct{ now time.Time }
