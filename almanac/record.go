// Package almanac holds the static weather/moon records shown by the
// dashboard and the pure functions that derive views of them.
package almanac

import "github.com/andareed/astrodash/moon"

// DateLayout is the layout of Record.Date.
const DateLayout = "2006-01-02"

// Record is one day of mock weather data. Date is the only identity.
type Record struct {
	Date         string     `json:"date"`
	TemperatureF int        `json:"temperatureF"`
	Time         string     `json:"time"` // moonrise, HH:MM
	Phase        moon.Phase `json:"phase"`
}

func (r Record) Glyph() string {
	return r.Phase.Glyph()
}

var reference = []Record{
	{Date: "2025-01-16", TemperatureF: 76, Time: "23:37", Phase: moon.WaxingCrescent},
	{Date: "2025-01-17", TemperatureF: 76, Time: "00:02", Phase: moon.WaxingCrescent},
	{Date: "2025-01-18", TemperatureF: 74, Time: "00:09", Phase: moon.FirstQuarter},
	{Date: "2025-01-19", TemperatureF: 78, Time: "01:04", Phase: moon.WaxingGibbous},
	{Date: "2025-01-20", TemperatureF: 79, Time: "01:42", Phase: moon.WaxingGibbous},
	{Date: "2025-01-21", TemperatureF: 81, Time: "02:18", Phase: moon.FullMoon},
	{Date: "2025-01-22", TemperatureF: 80, Time: "03:19", Phase: moon.WaningGibbous},
	{Date: "2025-01-23", TemperatureF: 77, Time: "04:21", Phase: moon.WaningGibbous},
	{Date: "2025-01-24", TemperatureF: 75, Time: "05:29", Phase: moon.LastQuarter},
	{Date: "2025-01-25", TemperatureF: 72, Time: "06:58", Phase: moon.WaningCrescent},
	{Date: "2025-01-26", TemperatureF: 70, Time: "08:39", Phase: moon.WaningCrescent},
	{Date: "2025-01-27", TemperatureF: 68, Time: "10:07", Phase: moon.NewMoon},
	{Date: "2025-01-28", TemperatureF: 69, Time: "12:25", Phase: moon.WaxingCrescent},
	{Date: "2025-01-29", TemperatureF: 73, Time: "14:35", Phase: moon.WaxingCrescent},
	{Date: "2025-01-30", TemperatureF: 76, Time: "16:58", Phase: moon.WaxingCrescent},
}

// Reference returns a fresh copy of the fifteen fixed records, oldest first.
func Reference() []Record {
	return append([]Record(nil), reference...)
}

// FindByDate returns the first record whose Date equals date exactly.
func FindByDate(records []Record, date string) (Record, bool) {
	for _, r := range records {
		if r.Date == date {
			return r, true
		}
	}
	return Record{}, false
}
