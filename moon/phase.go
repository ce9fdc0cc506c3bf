// Package moon holds the lunar phase enumeration and the coarse phase
// buckets used by the dashboard slider.
package moon

import (
	"errors"
	"fmt"
	"strings"
)

type Phase int

const (
	NewMoon Phase = iota
	WaxingCrescent
	FirstQuarter
	WaxingGibbous
	FullMoon
	WaningGibbous
	LastQuarter
	WaningCrescent
)

// ErrUnknownPhase is returned by ParsePhase for names outside the enumeration.
var ErrUnknownPhase = errors.New("unknown moon phase")

// phaseTable is the only place a phase is paired with its glyph.
var phaseTable = [...]struct {
	name  string
	glyph string
}{
	NewMoon:        {"New Moon", "🌑"},
	WaxingCrescent: {"Waxing Crescent", "🌒"},
	FirstQuarter:   {"First Quarter", "🌓"},
	WaxingGibbous:  {"Waxing Gibbous", "🌔"},
	FullMoon:       {"Full Moon", "🌕"},
	WaningGibbous:  {"Waning Gibbous", "🌖"},
	LastQuarter:    {"Last Quarter", "🌗"},
	WaningCrescent: {"Waning Crescent", "🌘"},
}

func (p Phase) Valid() bool {
	return p >= NewMoon && int(p) < len(phaseTable)
}

func (p Phase) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Phase(%d)", int(p))
	}
	return phaseTable[p].name
}

// Glyph returns the display glyph for the phase, or "" when p is out of range.
func (p Phase) Glyph() string {
	if !p.Valid() {
		return ""
	}
	return phaseTable[p].glyph
}

// Phases lists every phase in lunar-cycle order.
func Phases() []Phase {
	out := make([]Phase, len(phaseTable))
	for i := range phaseTable {
		out[i] = Phase(i)
	}
	return out
}

// ParsePhase matches a phase name case-insensitively, ignoring outer spaces.
func ParsePhase(s string) (Phase, error) {
	name := strings.TrimSpace(s)
	for i, info := range phaseTable {
		if strings.EqualFold(info.name, name) {
			return Phase(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPhase, s)
}

func (p Phase) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPhase, int(p))
	}
	return []byte(p.String()), nil
}

func (p *Phase) UnmarshalText(b []byte) error {
	parsed, err := ParsePhase(string(b))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
