// Package dashboard is the view model behind the AstroDash screens. It owns
// the record set and the filter inputs and derives everything the screens
// display; it knows nothing about rendering.
package dashboard

import (
	"github.com/jonboulle/clockwork"

	"github.com/andareed/astrodash/almanac"
	"github.com/andareed/astrodash/logging"
	"github.com/andareed/astrodash/moon"
)

// DefaultGlyph is shown until a record for today turns up.
var DefaultGlyph = moon.WaxingCrescent.Glyph()

const (
	SliderMin = 0.0
	SliderMax = 100.0
)

type Model struct {
	clock clockwork.Clock

	records []almanac.Record
	loading bool

	searchTerm     string
	slider         float64
	active         View
	resultsVisible bool
	currentGlyph   string
}

// New returns a model in the loading state with no records. A nil clock
// means the real wall clock.
func New(clock clockwork.Clock) *Model {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Model{
		clock:        clock,
		loading:      true,
		active:       ViewDashboard,
		currentGlyph: DefaultGlyph,
	}
}

// SetRecords replaces the record set, leaves the loading state and
// re-resolves today's phase glyph. On a miss the previous glyph is kept.
func (m *Model) SetRecords(records []almanac.Record) {
	m.records = append([]almanac.Record(nil), records...)
	m.loading = false

	today := m.Today()
	if r, ok := almanac.FindByDate(m.records, today); ok {
		m.currentGlyph = r.Glyph()
		logging.Debugf("dashboard: today %s is %s", today, r.Phase)
		return
	}
	logging.Debugf("dashboard: no record for %s, keeping glyph %s", today, m.currentGlyph)
}

// Today is the local calendar date in record form.
func (m *Model) Today() string {
	return m.clock.Now().Local().Format(almanac.DateLayout)
}

func (m *Model) Loading() bool { return m.loading }

func (m *Model) Records() []almanac.Record {
	return append([]almanac.Record(nil), m.records...)
}

func (m *Model) CurrentGlyph() string { return m.currentGlyph }

// region Filter inputs

func (m *Model) SearchTerm() string { return m.searchTerm }

func (m *Model) SetSearchTerm(term string) { m.searchTerm = term }

func (m *Model) Slider() float64 { return m.slider }

// SetSlider stores v clamped to the slider's 0-100 range.
func (m *Model) SetSlider(v float64) {
	switch {
	case v < SliderMin:
		v = SliderMin
	case v > SliderMax:
		v = SliderMax
	}
	m.slider = v
}

func (m *Model) NudgeSlider(delta float64) { m.SetSlider(m.slider + delta) }

// SelectPhase points the slider at the start of label's bucket.
func (m *Model) SelectPhase(label string) { m.SetSlider(moon.BucketValue(label)) }

// CyclePhase moves the phase selector step labels along, wrapping at both ends.
func (m *Model) CyclePhase(step int) {
	labels := moon.BucketLabels()
	idx := moon.BucketIndex(m.Bucket())
	n := len(labels)
	idx = ((idx+step)%n + n) % n
	m.SelectPhase(labels[idx])
}

func (m *Model) ClearFilters() {
	m.searchTerm = ""
	m.slider = SliderMin
}

// Bucket is the phase bucket currently selected by the slider.
func (m *Model) Bucket() string { return moon.ResolveBucket(m.slider) }

// endregion

// Filtered returns the records passing the search term and phase bucket.
func (m *Model) Filtered() []almanac.Record {
	return almanac.Filter(m.records, m.searchTerm, m.Bucket())
}

// Summary covers the full record set regardless of any filter.
func (m *Model) Summary() almanac.Summary {
	return almanac.Summarize(m.records)
}

// region Navigation

func (m *Model) Active() View { return m.active }

func (m *Model) ResultsVisible() bool { return m.resultsVisible }

// Navigate switches to v. Search results are visible exactly while the
// search view is the one selected.
func (m *Model) Navigate(v View) {
	m.active = v
	m.resultsVisible = v == ViewSearch
}

func (m *Model) NextView() { m.Navigate(m.active.next()) }

// SubmitSearch reveals the results section and moves to the search view.
// The filtered results themselves are already live.
func (m *Model) SubmitSearch() {
	m.resultsVisible = true
	m.active = ViewSearch
}

// endregion
