package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/andareed/astrodash/almanac"
)

// recordRow is a record laid out as table cells.
type recordRow struct {
	cells []string
}

func newRecordRow(r almanac.Record) recordRow {
	return recordRow{cells: []string{
		r.Date,
		fmt.Sprintf("%d °F", r.TemperatureF),
		r.Time,
		r.Glyph() + " " + r.Phase.String(),
	}}
}

// Join the cells with sep; tabs make a good clipboard format.
func (r recordRow) Join(sep string) string {
	return strings.Join(r.cells, sep)
}

func (r recordRow) String() string {
	return r.Join("\t")
}

// highlighted returns a copy of r with query matches marked in the date and
// phase cells, the two fields the search term is matched against.
func (r recordRow) highlighted(query string) recordRow {
	if query == "" {
		return r
	}
	cells := append([]string(nil), r.cells...)
	cells[0] = highlightMatches(cells[0], query)
	cells[3] = highlightMatches(cells[3], query)
	return recordRow{cells: cells}
}

func (r recordRow) Render(style lipgloss.Style, cols []ColumnMeta) string {
	rendered := make([]string, 0, len(r.cells))
	for i, text := range r.cells {
		if i >= len(cols) {
			break
		}
		if cols[i].Width <= 0 {
			continue
		}
		rendered = append(rendered, style.Width(cols[i].Width).MaxWidth(cols[i].Width).Render(text))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
