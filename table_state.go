package main

import "github.com/andareed/astrodash/almanac"

// dataState caches what the records table is currently showing. It is
// rebuilt from the dashboard model on every refreshView.
type dataState struct {
	columns []ColumnMeta
	visible []almanac.Record // filtered records in display order
}

func (d *dataState) current(cursor int) (almanac.Record, bool) {
	if cursor < 0 || cursor >= len(d.visible) {
		return almanac.Record{}, false
	}
	return d.visible[cursor], true
}
