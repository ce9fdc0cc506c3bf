package main

import (
	"github.com/andareed/astrodash/logging"
	"github.com/andareed/astrodash/moon"
)

const (
	sliderStep = 1.0
	bucketStep = moon.BucketStep
)

func (m *model) nudgeSlider(delta float64) {
	before := m.dash.Bucket()
	m.dash.NudgeSlider(delta)
	logging.Debugf("Slider %.1f -> bucket %s", m.dash.Slider(), m.dash.Bucket())
	m.refreshView("slider", before != m.dash.Bucket())
}

func (m *model) cyclePhase(step int) {
	m.dash.CyclePhase(step)
	logging.Debugf("Phase selector -> %s", m.dash.Bucket())
	m.refreshView("phase-select", true)
}

func (m *model) clearFilters() {
	m.dash.ClearFilters()
	logging.Infof("Filters cleared")
	m.refreshView("clear-filters", true)
}

// filterLabel summarises the active filter for the footer.
func (m *model) filterLabel() string {
	term := m.dash.SearchTerm()
	bucket := m.dash.Bucket()
	switch {
	case term == "" && bucket == moon.BucketAll:
		return "None"
	case term == "":
		return bucket
	case bucket == moon.BucketAll:
		return "\"" + term + "\""
	default:
		return "\"" + term + "\" · " + bucket
	}
}
