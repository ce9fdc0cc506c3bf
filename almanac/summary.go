package almanac

import (
	"fmt"
	"math"

	"github.com/andareed/astrodash/moon"
)

type Summary struct {
	TotalItems     int
	AvgTemperature float64 // rounded to one decimal place
	UniquePhases   int
}

// Summarize computes the summary over records. The dashboard always passes
// the full set, never the filtered one.
func Summarize(records []Record) Summary {
	s := Summary{TotalItems: len(records)}
	if len(records) == 0 {
		return s
	}

	sum := 0
	seen := make(map[moon.Phase]struct{}, len(records))
	for _, r := range records {
		sum += r.TemperatureF
		seen[r.Phase] = struct{}{}
	}
	mean := float64(sum) / float64(len(records))
	s.AvgTemperature = math.Round(mean*10) / 10
	s.UniquePhases = len(seen)
	return s
}

// AvgLabel formats the average the way the dashboard shows it: one decimal,
// or a bare "0" when there was nothing to average.
func (s Summary) AvgLabel() string {
	if s.TotalItems == 0 {
		return "0"
	}
	return fmt.Sprintf("%.1f", s.AvgTemperature)
}
